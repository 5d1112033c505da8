package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/manifest"
	"github.com/yssource/cabin/internal/semver"
)

var (
	addSys    bool
	addVer    string
	addTag    string
	addRev    string
	addBranch string
	addGit    string
	addPath   string
	addDev    bool
)

var addCmd = &cobra.Command{
	Use:   "add <dep>…",
	Short: "Add one or more dependencies to cabin.toml",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Parse(".", true)
		if err != nil {
			return err
		}

		for _, name := range args {
			dep, err := buildDependency(name)
			if err != nil {
				return err
			}
			m.AddDependency(dep, addDev)
		}

		if err := m.Save(m.Path); err != nil {
			return err
		}
		shell.Status("Added", strings.Join(args, ", ")+" to "+m.Path)
		return nil
	},
}

func init() {
	addCmd.Flags().BoolVar(&addSys, "sys", false, "resolve via pkg-config instead of cloning")
	addCmd.Flags().StringVar(&addVer, "version", "", "version requirement (system dependencies)")
	addCmd.Flags().StringVar(&addTag, "tag", "", "git tag to pin to")
	addCmd.Flags().StringVar(&addRev, "rev", "", "git revision to pin to")
	addCmd.Flags().StringVar(&addBranch, "branch", "", "git branch to track")
	addCmd.Flags().StringVar(&addGit, "git", "", "git URL (defaults to the dependency name as a shorthand URL)")
	addCmd.Flags().StringVar(&addPath, "path", "", "local path dependency")
	addCmd.Flags().BoolVar(&addDev, "dev", false, "add as a dev-dependency")
}

func buildDependency(name string) (manifest.Dependency, error) {
	switch {
	case addSys:
		if addVer == "" {
			return manifest.Dependency{}, cabinerr.New(cabinerr.KindUserInput, "--version is required for --sys dependencies")
		}
		req, err := semver.ParseVersionReq(addVer)
		if err != nil {
			return manifest.Dependency{}, cabinerr.Wrap(cabinerr.KindUserInput, "invalid version requirement", err)
		}
		return manifest.Dependency{Name: name, Kind: manifest.DependencySystem, VersionReq: req}, nil

	case addPath != "":
		return manifest.Dependency{Name: name, Kind: manifest.DependencyPath, Path: addPath}, nil

	default:
		url := addGit
		if url == "" {
			url = "https://github.com/" + name + "/" + name
		}
		return manifest.Dependency{
			Name:   name,
			Kind:   manifest.DependencyGit,
			URL:    url,
			Target: manifest.GitTarget{Rev: addRev, Tag: addTag, Branch: addBranch},
		}, nil
	}
}
