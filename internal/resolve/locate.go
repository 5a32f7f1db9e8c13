package resolve

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/oshokin/jnistage/internal/domain/artifact"
	"github.com/oshokin/jnistage/internal/platform"
)

// Locate finds the single compiled file for library inside the unit output directory.
// The directory is searched recursively; file names follow profile.LibraryFileNames.
// A missing output directory means the unit was never built and yields ArtifactNotFoundError.
func Locate(unit artifact.BuildUnit, library string, profile platform.Profile) (artifact.Artifact, error) {
	names := make(map[string]struct{}, len(profile.LibraryExtensions)*2)
	for _, name := range profile.LibraryFileNames(library) {
		names[name] = struct{}{}
	}

	var candidates []string

	root := filepath.Clean(unit.OutputDirectory)

	notFound := &ArtifactNotFoundError{
		Unit:      unit.Name,
		Library:   library,
		Directory: root,
	}

	// WalkDir does not follow a symlinked root.
	walkRoot, err := filepath.EvalSymlinks(root)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return artifact.Artifact{}, notFound
	case err != nil:
		return artifact.Artifact{}, fmt.Errorf("search %s: %w", root, err)
	}

	err = filepath.WalkDir(walkRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		if _, ok := names[entry.Name()]; !ok {
			return nil
		}

		if !isRegularFile(path, entry) {
			return nil
		}

		// Report candidates under the configured directory, not the link target.
		rel, relErr := filepath.Rel(walkRoot, path)
		if relErr != nil {
			return relErr
		}

		candidates = append(candidates, filepath.Join(root, rel))

		return nil
	})

	switch {
	case errors.Is(err, fs.ErrNotExist) && len(candidates) == 0:
		return artifact.Artifact{}, notFound
	case err != nil:
		return artifact.Artifact{}, fmt.Errorf("search %s: %w", root, err)
	}

	switch len(candidates) {
	case 0:
		return artifact.Artifact{}, notFound
	case 1:
		return artifact.NewArtifact(candidates[0]), nil
	default:
		return artifact.Artifact{}, &AmbiguousArtifactError{
			Unit:       unit.Name,
			Library:    library,
			Candidates: candidates,
		}
	}
}

// isRegularFile reports whether entry is a regular file or a symlink resolving to one.
func isRegularFile(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}

	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}
