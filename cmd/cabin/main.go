package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/cli"
	"github.com/yssource/cabin/internal/config"
	"github.com/yssource/cabin/internal/log"
	"github.com/yssource/cabin/internal/termcolor"
)

var (
	verboseFlag int
	quietFlag   bool
	colorFlag   string
	listFlag    bool
	versionFlag bool
)

// globalCtx is canceled on SIGINT/SIGTERM so subcommands can abandon
// in-flight subprocesses.
var globalCtx context.Context
var globalCancel context.CancelFunc

var shell *termcolor.Shell

var rootCmd = &cobra.Command{
	Use:   "cabin",
	Short: "A Cargo-inspired build tool and package manager for C++",
	Long: `cabin manages C++ package manifests, resolves git/path/pkg-config
dependencies, and emits a deterministic Makefile and
compile_commands.json for your project.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			printVersion()
			return
		}
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verboseFlag, "verbose", "v", "increase verbosity (-v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "show errors only")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&listFlag, "list", false, "print all subcommands, including hidden ones")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "print version information")
	rootCmd.PersistentPreRun = initShell

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(tidyCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	globalCtx, globalCancel = context.WithCancel(context.Background())
	defer globalCancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		fmt.Fprintf(os.Stderr, "\nreceived %s, canceling...\n", sig)
		globalCancel()
		<-sigChan
		os.Exit(130)
	}()

	if listFlag || containsListFlag(os.Args[1:]) {
		printAllCommands(rootCmd)
		return
	}

	expanded, err := expandOSArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	rootCmd.SetArgs(expanded)

	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// expandOSArgs applies the CLI's pre-processing transforms (spec.md
// §4.6) ahead of cobra's own parsing: --long=value splitting and
// short-option bundle expansion, registered against every short flag
// across the command tree.
func expandOSArgs(args []string) ([]string, error) {
	return cli.ExpandArgs(args, collectShortOptions(rootCmd))
}

func collectShortOptions(root *cobra.Command) []cli.ShortOption {
	seen := map[byte]cli.ShortOption{}
	collectFromFlagSet(root.PersistentFlags(), seen)
	collectFromFlagSet(root.Flags(), seen)
	for _, sub := range root.Commands() {
		collectFromFlagSet(sub.Flags(), seen)
	}
	out := make([]cli.ShortOption, 0, len(seen))
	for _, o := range seen {
		out = append(out, o)
	}
	return out
}

func collectFromFlagSet(fs *pflag.FlagSet, seen map[byte]cli.ShortOption) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Shorthand == "" {
			return
		}
		letter := f.Shorthand[0]
		takesArg := f.Value.Type() != "bool" && f.Value.Type() != "count"
		seen[letter] = cli.ShortOption{Letter: letter, TakesArg: takesArg}
	})
}

func containsListFlag(args []string) bool {
	for _, a := range args {
		if a == "--list" {
			return true
		}
	}
	return false
}

func printAllCommands(root *cobra.Command) {
	fmt.Println("Available commands:")
	for _, c := range root.Commands() {
		fmt.Printf("  %-10s %s\n", c.Name(), c.Short)
	}
}

// initShell resolves the color mode and verbosity once, wiring both
// the process-wide logger and the Cargo-style status Shell used by
// every subcommand (spec.md §5: color mode and verbosity are
// read-only after argument parsing).
func initShell(cmd *cobra.Command, args []string) {
	mode, err := config.ParseColorMode(colorFlag)
	if err != nil {
		mode = config.DefaultColorMode()
	}
	shell = termcolor.NewStdio(mode)

	level := slog.LevelWarn
	switch {
	case quietFlag:
		level = slog.LevelError
	case verboseFlag >= 2:
		level = slog.LevelDebug
	case verboseFlag == 1:
		level = slog.LevelInfo
	}
	log.SetDefault(log.New(log.NewCLIHandler(level)))
}

// reportError renders a single red "Error:" line plus any "Caused
// by:" chain, matching spec.md §4.6/§7's dispatcher contract.
func reportError(err error) {
	if shell == nil {
		shell = termcolor.NewStdio(config.DefaultColorMode())
	}
	chain := cabinerr.Causes(err)
	if len(chain) == 0 {
		shell.Error(err.Error())
		return
	}
	shell.Error(chain[0], chain[1:]...)
}

func defaultParallelism(flagValue int) int {
	return config.Parallelism(flagValue, runtime.NumCPU())
}
