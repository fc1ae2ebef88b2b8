// Command genchem generates random artificial chemistries, builds every
// mass-conserving reaction between their species and prints the result.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "genchem:", err)
		os.Exit(1)
	}
}
