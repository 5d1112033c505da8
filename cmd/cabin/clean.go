package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/manifest"
)

var cleanProfile string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated build artifacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Parse(".", true)
		if err != nil {
			return err
		}
		root := filepath.Dir(m.Path)
		outRoot := filepath.Join(root, "cabin-out")

		target := outRoot
		switch cleanProfile {
		case "":
		case "dev":
			target = filepath.Join(outRoot, "debug")
		case "release":
			target = filepath.Join(outRoot, "release")
		default:
			return cabinerr.New(cabinerr.KindUserInput, "unknown profile "+cleanProfile+"; expected dev or release")
		}

		if err := os.RemoveAll(target); err != nil {
			return cabinerr.Wrap(cabinerr.KindIO, "failed to remove "+target, err)
		}
		shell.Status("Removed", target)
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanProfile, "profile", "p", "", "dev or release; default removes both")
}
