// Package cli implements the clone-generator command line.
//
// Settings come from flags, CLONEGEN_* environment variables and an optional
// clonegen.yaml file, in that order of precedence.
package cli
