// Package pipeline wires discovery, policy resolution, planning and emission
// into the operations exposed by the command line: generate, plan, check and
// watch.
//
// Diagnostics with error severity never hide the results of healthy types: the
// files of every plannable type are still produced, and the error is returned
// alongside them.
package pipeline
