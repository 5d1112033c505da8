package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/process"
)

var (
	tidyFix  bool
	tidyJobs int
)

var tidyCmd = &cobra.Command{
	Use:   "tidy",
	Short: "Run clang-tidy over the project's sources",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		savedJobs := buildJobs
		buildJobs = tidyJobs
		defer func() { buildJobs = savedJobs }()

		proj, _, err := runBuild(profileName(buildRelease))
		if err != nil {
			return err
		}

		makefilePath := proj.OutBasePath() + "/Makefile"
		makeArgs := []string{"-f", makefilePath, "-j", fmt.Sprint(defaultParallelism(tidyJobs)), "-C", proj.OutBasePath()}
		if tidyFix {
			makeArgs = append(makeArgs, "CABIN_TIDY_FLAGS=--fix")
		}
		makeArgs = append(makeArgs, "tidy")

		child, err := process.New("make", makeArgs...).Spawn(globalCtx)
		if err != nil {
			return cabinerr.Wrap(cabinerr.KindSubprocess, "failed to run clang-tidy", err)
		}
		status, err := child.Wait()
		if err != nil {
			return cabinerr.Wrap(cabinerr.KindSubprocess, "failed to run clang-tidy", err)
		}
		if !status.Success() {
			return cabinerr.New(cabinerr.KindSubprocess, "clang-tidy "+status.String())
		}
		shell.Status("Checked", "clang-tidy")
		return nil
	},
}

func init() {
	tidyCmd.Flags().BoolVar(&tidyFix, "fix", false, "apply clang-tidy's suggested fixes")
	tidyCmd.Flags().IntVarP(&tidyJobs, "jobs", "j", 0, "parallelism (default: NumCPU)")
}
