// Command safecalc evaluates integer expressions with the safeint operators.
package main

import (
	"os"

	"github.com/cobalamin/safe-int/cmd/safecalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
