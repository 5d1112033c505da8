package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yssource/cabin/internal/buildgraph"
	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/process"
	"github.com/yssource/cabin/internal/project"
)

var (
	buildRelease bool
	buildDebug   bool
	buildCompDB  bool
	buildJobs    int
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the current package",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, err := runBuild(profileName(buildRelease))
		return err
	},
}

func init() {
	for _, c := range []*cobra.Command{buildCmd, testCmd} {
		c.Flags().BoolVarP(&buildRelease, "release", "r", false, "build in release profile")
		c.Flags().BoolVarP(&buildDebug, "debug", "d", false, "build in dev profile (default)")
		c.Flags().IntVarP(&buildJobs, "jobs", "j", 0, "parallelism for -MM extraction (default: NumCPU)")
	}
	buildCmd.Flags().BoolVar(&buildCompDB, "compdb", false, "also emit compile_commands.json")
}

// runBuild loads the project, constructs the build graph, writes the
// Makefile (and optionally compile_commands.json), and invokes make.
// Returns the constructed project and graph-construction result so
// callers like `run`/`test` can locate produced artifacts without
// reloading.
func runBuild(profile string) (*project.Project, *buildgraph.Result, error) {
	start := time.Now()

	proj, err := loadProject(globalCtx, profile)
	if err != nil {
		return nil, nil, err
	}

	shell.Status("Compiling", fmt.Sprintf("%s v%s (%s)", proj.Manifest.Package.Name, proj.Manifest.Package.Version.String(), proj.Root))

	parallelism := defaultParallelism(buildJobs)
	result, err := buildgraph.Construct(globalCtx, proj, parallelism)
	if err != nil {
		return nil, nil, err
	}
	for _, w := range result.Warnings {
		shell.Warn(w)
	}

	if err := os.MkdirAll(proj.OutBasePath(), 0o755); err != nil {
		return nil, nil, cabinerr.Wrap(cabinerr.KindIO, "failed to create output directory", err)
	}

	makefileText, err := result.Graph.Render()
	if err != nil {
		return nil, nil, err
	}
	makefilePath := proj.OutBasePath() + "/Makefile"
	if err := os.WriteFile(makefilePath, []byte(makefileText), 0o644); err != nil {
		return nil, nil, cabinerr.Wrap(cabinerr.KindIO, "failed to write Makefile", err)
	}

	if buildCompDB || proj.Profile.CompDB {
		data, err := buildgraph.CompileCommands(proj.Root, proj.CXX, proj.Options.CFlags.Tokens(), result.CompileRecords)
		if err != nil {
			return nil, nil, err
		}
		cdbPath := proj.OutBasePath() + "/compile_commands.json"
		if err := os.WriteFile(cdbPath, data, 0o644); err != nil {
			return nil, nil, cabinerr.Wrap(cabinerr.KindIO, "failed to write compile_commands.json", err)
		}
	}

	child, err := process.New("make", "-f", makefilePath, "-j", fmt.Sprint(parallelism), "-C", proj.OutBasePath()).Spawn(globalCtx)
	if err != nil {
		return nil, nil, cabinerr.Wrap(cabinerr.KindSubprocess, "failed to invoke make", err)
	}
	status, err := child.Wait()
	if err != nil {
		return nil, nil, cabinerr.Wrap(cabinerr.KindSubprocess, "failed to invoke make", err)
	}
	if !status.Success() {
		return nil, nil, cabinerr.New(cabinerr.KindSubprocess, "make "+status.String())
	}

	elapsed := time.Since(start).Seconds()
	shell.Status("Finished", fmt.Sprintf("%s target(s) in %.2fs", profileDescription(proj), elapsed))

	return proj, result, nil
}
