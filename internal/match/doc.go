// Package match finds likely intended names for misspelled identifiers.
//
// Names are compared after folding case and dropping '_', '-' and spaces, so
// "re_viewer" and "Reviewer" are identical and "Auther" is close to "Author".
package match
