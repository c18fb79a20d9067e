// cmd/eduqual/main.go
package main

import (
	cmd "github.com/mwiater/eduqual/internal/cli"
)

// main starts the eduqual CLI application by delegating to the
// cobra root command defined in the eduqual package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
