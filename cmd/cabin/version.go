package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yssource/cabin/internal/buildinfo"
	"github.com/yssource/cabin/internal/compiler"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printVersion()
		return nil
	},
}

// printVersion renders "cabin <version> (<short-hash> <date>)"; with
// -v or -vv it additionally prints the detected compiler (spec.md
// §8, S6 — -vV and -Vv must be byte-identical).
func printVersion() {
	fmt.Println(buildinfo.LongVersion())
	if verboseFlag > 0 {
		cxx, err := compiler.Detect(globalCtx, os.Getenv)
		if err != nil {
			fmt.Printf("compiler: unknown (%v)\n", err)
			return
		}
		fmt.Printf("compiler: %s\n", cxx)
	}
}
