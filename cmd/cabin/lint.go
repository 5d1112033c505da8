package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/config"
	"github.com/yssource/cabin/internal/manifest"
	"github.com/yssource/cabin/internal/process"
)

var lintExclude []string

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint the project's sources with cpplint",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Parse(".", true)
		if err != nil {
			return err
		}
		root := filepath.Dir(m.Path)

		files, err := sourceFiles(root, lintExclude)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			shell.Warn("no sources found to lint")
			return nil
		}

		bin := "cpplint"
		if override := os.Getenv(config.EnvLint); override != "" {
			bin = override
		}

		var cmdArgs []string
		if len(m.Lint.Cpplint.Filters) > 0 {
			cmdArgs = append(cmdArgs, "--filter="+strings.Join(m.Lint.Cpplint.Filters, ","))
		}
		cmdArgs = append(cmdArgs, files...)

		child, err := process.New(bin, cmdArgs...).Spawn(globalCtx)
		if err != nil {
			return cabinerr.Wrap(cabinerr.KindSubprocess, "failed to run cpplint", err)
		}
		status, err := child.Wait()
		if err != nil {
			return cabinerr.Wrap(cabinerr.KindSubprocess, "failed to run cpplint", err)
		}
		if !status.Success() {
			return cabinerr.New(cabinerr.KindSubprocess, "cpplint "+status.String())
		}

		shell.Status("Checked", "lint")
		return nil
	},
}

func init() {
	lintCmd.Flags().StringArrayVar(&lintExclude, "exclude", nil, "glob pattern excluding matching files (repeatable)")
}
