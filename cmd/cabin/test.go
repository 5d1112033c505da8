package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/process"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Build and run unit tests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, result, err := runBuild(profileName(buildRelease))
		if err != nil {
			return err
		}

		testBinaries := result.TestBinaries
		if len(testBinaries) == 0 {
			shell.Warn("no unit tests found")
			return nil
		}

		var failed []string
		for _, bin := range testBinaries {
			shell.Status("Running", bin)
			child, err := process.New(bin).Spawn(globalCtx)
			if err != nil {
				return cabinerr.Wrap(cabinerr.KindSubprocess, "failed to start "+bin, err)
			}
			status, err := child.Wait()
			if err != nil {
				return cabinerr.Wrap(cabinerr.KindSubprocess, "failed to run "+bin, err)
			}
			if !status.Success() {
				failed = append(failed, bin)
			}
		}

		if len(failed) > 0 {
			return cabinerr.New(cabinerr.KindSubprocess, fmt.Sprintf("%d test binary(ies) failed: %v", len(failed), failed))
		}
		return nil
	},
}
