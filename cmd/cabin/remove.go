package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/yssource/cabin/internal/manifest"
)

var removeCmd = &cobra.Command{
	Use:   "remove <dep>…",
	Short: "Remove one or more dependencies from cabin.toml",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Parse(".", true)
		if err != nil {
			return err
		}

		var removed []string
		for _, name := range args {
			if m.RemoveDependency(name) {
				removed = append(removed, name)
			} else {
				shell.Warn("Dependency `" + name + "` not found in " + m.Path)
			}
		}

		if len(removed) == 0 {
			return nil
		}
		if err := m.Save(m.Path); err != nil {
			return err
		}
		shell.Status("Removed", strings.Join(removed, ", ")+" from "+m.Path)
		return nil
	},
}
