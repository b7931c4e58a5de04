// Command clone-generator generates deep clone methods for Go structs marked
// with a "+clone" doc comment.
//
// Usage:
//
//	clone-generator generate -p ./...
//	clone-generator check -p ./...
//	clone-generator plan --format yaml
//	clone-generator watch
package main

import (
	"os"

	"clone-generator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
