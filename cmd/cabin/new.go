package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/process"
)

var newLib bool
var newBin bool

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new cabin package in a new directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cabinerr.New(cabinerr.KindUserInput, "package name must not be empty")
		}
		name := args[0]
		if err := os.Mkdir(name, 0o755); err != nil {
			return cabinerr.Wrap(cabinerr.KindIO, "failed to create package directory", err)
		}
		return scaffold(name, name, newLib)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new cabin package in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return cabinerr.Wrap(cabinerr.KindIO, "failed to determine current directory", err)
		}
		name := filepath.Base(cwd)
		return scaffold(".", name, newLib)
	},
}

func init() {
	for _, c := range []*cobra.Command{newCmd, initCmd} {
		c.Flags().BoolVar(&newLib, "lib", false, "create a library package")
		c.Flags().BoolVar(&newBin, "bin", false, "create a binary package (default)")
	}
}

// scaffold lays out a fresh package at dir: cabin.toml, .gitignore, a
// git repository, and either src/main.cc (binary) or include/<name>.hpp
// + src/lib.cc (library), per spec.md §8 S1/S2.
func scaffold(dir, name string, lib bool) error {
	if err := os.MkdirAll(filepath.Join(dir, "src"), 0o755); err != nil {
		return cabinerr.Wrap(cabinerr.KindIO, "failed to create src/", err)
	}

	manifestBody := fmt.Sprintf(`[package]
name = "%s"
edition = "20"
version = "0.1.0"
`, name)
	if err := os.WriteFile(filepath.Join(dir, "cabin.toml"), []byte(manifestBody), 0o644); err != nil {
		return cabinerr.Wrap(cabinerr.KindIO, "failed to write cabin.toml", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("/cabin-out\n"), 0o644); err != nil {
		return cabinerr.Wrap(cabinerr.KindIO, "failed to write .gitignore", err)
	}

	kind := "binary (application)"
	if lib {
		kind = "library"
		if err := os.MkdirAll(filepath.Join(dir, "include"), 0o755); err != nil {
			return cabinerr.Wrap(cabinerr.KindIO, "failed to create include/", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "include", name+".hpp"), []byte(libHeader()), 0o644); err != nil {
			return cabinerr.Wrap(cabinerr.KindIO, "failed to write include header", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "src", "lib.cc"), []byte(libSource(name)), 0o644); err != nil {
			return cabinerr.Wrap(cabinerr.KindIO, "failed to write src/lib.cc", err)
		}
	} else {
		if err := os.WriteFile(filepath.Join(dir, "src", "main.cc"), []byte(mainSource), 0o644); err != nil {
			return cabinerr.Wrap(cabinerr.KindIO, "failed to write src/main.cc", err)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, ".git")); os.IsNotExist(err) {
		out, gitErr := process.New("git", "init", "-q", dir).Output(globalCtx)
		if gitErr != nil {
			return cabinerr.Wrap(cabinerr.KindSubprocess, "failed to initialize git repository", gitErr)
		}
		if !out.Status.Success() {
			return cabinerr.New(cabinerr.KindSubprocess, "git init "+out.Status.String())
		}
	}

	shell.Status("Created", fmt.Sprintf("%s `%s` package", kind, name))
	return nil
}

const mainSource = `#include <iostream>

int main() {
  std::cout << "Hello, world!" << std::endl;
}
`

func libHeader() string {
	return "#pragma once\n\nvoid hello();\n"
}

func libSource(name string) string {
	return fmt.Sprintf(`#include "%s.hpp"

#include <iostream>

void hello() { std::cout << "Hello, world!" << std::endl; }
`, name)
}
