package resolve

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/oshokin/jnistage/internal/domain/artifact"
)

// DefaultKeepFragments lists the Boost components the bindings link against.
//
//nolint:gochecknoglobals // Read-only keep-list shared by the stager and tests.
var DefaultKeepFragments = []string{
	"chrono",
	"system",
	"filesystem",
	"locale",
	"thread",
	"regex",
	"program_options",
}

// Collect returns the files directly inside pkg.LibraryDirectory whose name
// contains at least one of keepFragments and ends with one of extensions.
//
// Fragment matching is a case-sensitive, unanchored substring test: "thread"
// keeps libboost_thread.so as well as any other *thread* library. An empty
// result is valid and is not an error.
func Collect(pkg artifact.DependencyPackage, keepFragments, extensions []string) ([]artifact.Artifact, error) {
	dir := filepath.Clean(pkg.LibraryDirectory)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &DependencyDirectoryError{
			Package:   pkg.Name,
			Directory: dir,
			Err:       err,
		}
	}

	var result []artifact.Artifact

	for _, entry := range entries {
		name := entry.Name()

		if !containsAny(name, keepFragments) || !hasAnySuffix(name, extensions) {
			continue
		}

		path := filepath.Join(dir, name)
		if !isRegularFile(path, entry) {
			continue
		}

		result = append(result, artifact.NewArtifact(path))
	}

	return result, nil
}

func containsAny(name string, fragments []string) bool {
	return slices.ContainsFunc(fragments, func(fragment string) bool {
		return strings.Contains(name, fragment)
	})
}

func hasAnySuffix(name string, suffixes []string) bool {
	return slices.ContainsFunc(suffixes, func(suffix string) bool {
		return strings.HasSuffix(name, suffix)
	})
}
