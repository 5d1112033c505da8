package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/compiler"
	"github.com/yssource/cabin/internal/config"
	"github.com/yssource/cabin/internal/process"
)

// InstallDeps resolves every dependency (and, if includeDevDeps,
// every dev-dependency) into compiler.Options: Git dependencies are
// cloned into the shared cache, Path dependencies are canonicalized,
// System dependencies are resolved via pkg-config (spec.md §4.1).
func (m *Manifest) InstallDeps(ctx context.Context, includeDevDeps bool) ([]compiler.Options, error) {
	deps := m.Dependencies
	if includeDevDeps {
		deps = append(append([]Dependency{}, deps...), m.DevDependencies...)
	}

	opts := make([]compiler.Options, 0, len(deps))
	for _, dep := range deps {
		o, err := installOne(ctx, dep, filepath.Dir(m.Path))
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, nil
}

func installOne(ctx context.Context, dep Dependency, projectRoot string) (compiler.Options, error) {
	switch dep.Kind {
	case DependencyGit:
		return installGit(ctx, dep)
	case DependencyPath:
		return installPath(dep, projectRoot)
	case DependencySystem:
		return installSystem(ctx, dep)
	default:
		return compiler.Options{}, cabinerr.New(cabinerr.KindDependency, fmt.Sprintf("unknown dependency kind for %q", dep.Name))
	}
}

func includeDirFor(dest string) compiler.IncludeDir {
	includeSub := filepath.Join(dest, "include")
	if info, err := os.Stat(includeSub); err == nil && info.IsDir() {
		return compiler.IncludeDir{Path: includeSub, IsSystem: true}
	}
	return compiler.IncludeDir{Path: dest, IsSystem: true}
}

func installGit(ctx context.Context, dep Dependency) (compiler.Options, error) {
	cacheRoot, err := config.GitCacheDir()
	if err != nil {
		return compiler.Options{}, cabinerr.Wrap(cabinerr.KindEnvironment, "failed to resolve git cache directory", err)
	}

	destName := dep.Name
	if ref, _ := dep.Target.Ref(); ref != "" {
		destName = fmt.Sprintf("%s-%s", dep.Name, ref)
	}
	dest := filepath.Join(cacheRoot, destName)

	if entries, err := os.ReadDir(dest); err == nil && len(entries) > 0 {
		return compiler.Options{CFlags: compiler.CFlags{IncludeDirs: []compiler.IncludeDir{includeDirFor(dest)}}}, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return compiler.Options{}, cabinerr.Wrap(cabinerr.KindIO, "failed to create git cache directory", err)
	}

	clone := process.New("git", "clone", dep.URL, dest)
	out, err := process.RetryOutput(ctx, 3, func() *process.Command { return clone })
	if err != nil || !out.Status.Success() {
		return compiler.Options{}, cabinerr.Wrap(cabinerr.KindDependency,
			fmt.Sprintf("failed to clone dependency %q", dep.Name), subprocessError(out, err))
	}

	if ref, kind := dep.Target.Ref(); ref != "" {
		revParse := process.New("git", "rev-parse", ref)
		revParse.Cwd = dest
		rpOut, err := revParse.Output(ctx)
		if err != nil || !rpOut.Status.Success() {
			return compiler.Options{}, cabinerr.Wrap(cabinerr.KindDependency,
				fmt.Sprintf("dependency %q: failed to resolve %s %q", dep.Name, kind, ref), subprocessError(rpOut, err))
		}
		oid := strings.TrimSpace(string(rpOut.Stdout))

		checkout := process.New("git", "checkout", "--detach", oid)
		checkout.Cwd = dest
		coOut, err := checkout.Output(ctx)
		if err != nil || !coOut.Status.Success() {
			return compiler.Options{}, cabinerr.Wrap(cabinerr.KindDependency,
				fmt.Sprintf("dependency %q: failed to checkout %s", dep.Name, oid), subprocessError(coOut, err))
		}
	}

	return compiler.Options{CFlags: compiler.CFlags{IncludeDirs: []compiler.IncludeDir{includeDirFor(dest)}}}, nil
}

func installPath(dep Dependency, projectRoot string) (compiler.Options, error) {
	path := dep.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(projectRoot, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return compiler.Options{}, cabinerr.Wrap(cabinerr.KindDependency,
			fmt.Sprintf("dependency %q: invalid path", dep.Name), err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return compiler.Options{}, cabinerr.Wrap(cabinerr.KindDependency,
			fmt.Sprintf("dependency %q: path %q does not exist", dep.Name, dep.Path), err)
	}
	if !info.IsDir() {
		return compiler.Options{}, cabinerr.New(cabinerr.KindDependency,
			fmt.Sprintf("dependency %q: path %q is not a directory", dep.Name, dep.Path))
	}

	return compiler.Options{CFlags: compiler.CFlags{IncludeDirs: []compiler.IncludeDir{includeDirFor(abs)}}}, nil
}

func installSystem(ctx context.Context, dep Dependency) (compiler.Options, error) {
	spec := dep.VersionReq.ToPkgConfigString(dep.Name)

	cflagsOut, err := pkgConfig(ctx, "--cflags", dep.Name, spec)
	if err != nil {
		return compiler.Options{}, err
	}
	libsOut, err := pkgConfig(ctx, "--libs", dep.Name, spec)
	if err != nil {
		return compiler.Options{}, err
	}

	return compiler.Options{
		CFlags:  parseCFlagsTokens(cflagsOut),
		LdFlags: parseLdFlagsTokens(libsOut),
	}, nil
}

func pkgConfig(ctx context.Context, mode, name, spec string) (string, error) {
	args := []string{mode}
	if spec != "" {
		args = append(args, spec)
	} else {
		args = append(args, name)
	}
	out, err := process.RetryOutput(ctx, 3, func() *process.Command {
		return process.New("pkg-config", args...)
	})
	if err != nil || !out.Status.Success() {
		return "", cabinerr.Wrap(cabinerr.KindDependency,
			fmt.Sprintf("pkg-config failed for dependency %q", name), subprocessError(out, err))
	}
	return strings.TrimRight(string(out.Stdout), "\n"), nil
}

func parseCFlagsTokens(s string) compiler.CFlags {
	var cf compiler.CFlags
	for _, tok := range strings.Fields(s) {
		switch {
		case strings.HasPrefix(tok, "-D"):
			kv := strings.SplitN(tok[2:], "=", 2)
			m := compiler.Macro{Name: kv[0]}
			if len(kv) == 2 {
				m.Value = kv[1]
			}
			cf.Macros = append(cf.Macros, m)
		case strings.HasPrefix(tok, "-I"):
			cf.IncludeDirs = append(cf.IncludeDirs, compiler.IncludeDir{Path: tok[2:]})
		default:
			cf.Other = append(cf.Other, tok)
		}
	}
	return cf
}

func parseLdFlagsTokens(s string) compiler.LdFlags {
	var lf compiler.LdFlags
	for _, tok := range strings.Fields(s) {
		switch {
		case strings.HasPrefix(tok, "-L"):
			lf.LibDirs = append(lf.LibDirs, compiler.LibDir{Path: tok[2:]})
		case strings.HasPrefix(tok, "-l"):
			lf.Libs = append(lf.Libs, compiler.Lib{Name: tok[2:]})
		default:
			lf.Other = append(lf.Other, tok)
		}
	}
	return lf
}

func subprocessError(out process.CommandOutput, err error) error {
	if err != nil {
		return err
	}
	stderr := strings.TrimSpace(string(out.Stderr))
	if stderr == "" {
		stderr = out.Status.String()
	}
	return fmt.Errorf("%s", stderr)
}
