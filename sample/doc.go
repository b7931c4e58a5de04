// Package sample holds cloneable types together with their generated Clone
// and CloneSafe methods.
//
// The *_clone.go files are produced by running
//
//	clone-generator generate -p ./sample
//
// and are checked by the tests of this package and by the check command.
package sample
