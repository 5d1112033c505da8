package buildgraph

import (
	"io/fs"
	"os"
	"path/filepath"
)

// IsFresh reports whether artifactPath (the Makefile or
// compile_commands.json) exists and is at least as new as every file
// under srcDir and manifestPath (spec.md §4.5 "Up-to-date checks").
// The build path does not consult it: `cabin build` rewrites the
// Makefile on every run, and building is always delegated to `make`.
func IsFresh(artifactPath, srcDir, manifestPath string) (bool, error) {
	artifactInfo, err := os.Stat(artifactPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	artifactTime := artifactInfo.ModTime()

	manifestInfo, err := os.Stat(manifestPath)
	if err != nil {
		return false, err
	}
	if manifestInfo.ModTime().After(artifactTime) {
		return false, nil
	}

	fresh := true
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().After(artifactTime) {
			fresh = false
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return fresh, nil
}
