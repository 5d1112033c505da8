package main

import (
	"github.com/spf13/cobra"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/process"
)

var runRelease bool
var runJobs int

var runCmd = &cobra.Command{
	Use:   "run [args…]",
	Short: "Build and run the package's binary",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		savedJobs := buildJobs
		buildJobs = runJobs
		defer func() { buildJobs = savedJobs }()

		_, result, err := runBuild(profileName(runRelease))
		if err != nil {
			return err
		}
		if !result.HasBinary {
			return cabinerr.New(cabinerr.KindUserInput, "this package does not produce a binary")
		}

		child, err := process.New(result.BinaryPath, args...).Spawn(globalCtx)
		if err != nil {
			return cabinerr.Wrap(cabinerr.KindSubprocess, "failed to start "+result.BinaryPath, err)
		}
		status, err := child.Wait()
		if err != nil {
			return cabinerr.Wrap(cabinerr.KindSubprocess, "failed to run "+result.BinaryPath, err)
		}
		if !status.Success() {
			return cabinerr.New(cabinerr.KindSubprocess, result.BinaryPath+" "+status.String())
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVarP(&runRelease, "release", "r", false, "run in release profile")
	runCmd.Flags().IntVarP(&runJobs, "jobs", "j", 0, "parallelism for -MM extraction (default: NumCPU)")
}
