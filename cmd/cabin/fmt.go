package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yssource/cabin/internal/buildgraph"
	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/config"
	"github.com/yssource/cabin/internal/manifest"
	"github.com/yssource/cabin/internal/process"
)

var (
	fmtCheck   bool
	fmtExclude []string
)

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Format the project's sources with clang-format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Parse(".", true)
		if err != nil {
			return err
		}
		root := filepath.Dir(m.Path)

		files, err := sourceFiles(root, fmtExclude)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			shell.Warn("no sources found to format")
			return nil
		}

		bin := "clang-format"
		if override := os.Getenv(config.EnvFmt); override != "" {
			bin = override
		}

		cmdArgs := []string{"-i"}
		if fmtCheck {
			cmdArgs = []string{"--dry-run", "--Werror"}
		}
		cmdArgs = append(cmdArgs, files...)

		child, err := process.New(bin, cmdArgs...).Spawn(globalCtx)
		if err != nil {
			return cabinerr.Wrap(cabinerr.KindSubprocess, "failed to run clang-format", err)
		}
		status, err := child.Wait()
		if err != nil {
			return cabinerr.Wrap(cabinerr.KindSubprocess, "failed to run clang-format", err)
		}
		if !status.Success() {
			return cabinerr.New(cabinerr.KindSubprocess, "clang-format "+status.String())
		}

		shell.Status("Checked", "formatting")
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "report formatting violations without rewriting files")
	fmtCmd.Flags().StringArrayVar(&fmtExclude, "exclude", nil, "glob pattern excluding matching files (repeatable)")
}

// sourceFiles walks root's src/ and include/ trees, returning every
// source/header file whose path does not match any exclude glob.
func sourceFiles(root string, exclude []string) ([]string, error) {
	var out []string
	for _, dir := range []string{filepath.Join(root, "src"), filepath.Join(root, "include")} {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			if !buildgraph.IsSource(path) && !buildgraph.IsHeader(path) {
				return nil
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = path
			}
			for _, pattern := range exclude {
				if matched, _ := filepath.Match(pattern, rel); matched {
					return nil
				}
				if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
					return nil
				}
			}
			out = append(out, path)
			return nil
		})
		if err != nil {
			return nil, cabinerr.Wrap(cabinerr.KindIO, "failed to walk "+dir, err)
		}
	}
	return out, nil
}
