package resolve

import (
	"context"
	"fmt"

	"github.com/oshokin/jnistage/internal/domain/artifact"
	"github.com/oshokin/jnistage/internal/logger"
	"github.com/oshokin/jnistage/internal/platform"
)

// BuildUnitResolver maps a project name to its build unit.
type BuildUnitResolver interface {
	BuildUnit(name string) (artifact.BuildUnit, error)
}

// Build resolves every manifest entry, then appends the dependency package
// libraries selected by keepFragments and the profile extensions.
//
// It stops at the first entry that cannot be resolved; core artifacts come
// first in the result. Two artifacts with the same base name are rejected,
// since the second one would overwrite the first at install time.
func Build(
	ctx context.Context,
	profile platform.Profile,
	manifest []artifact.ManifestEntry,
	units BuildUnitResolver,
	pkg artifact.DependencyPackage,
	keepFragments []string,
) ([]artifact.Artifact, error) {
	artifacts := make([]artifact.Artifact, 0, len(manifest))

	for _, entry := range manifest {
		unit, err := units.BuildUnit(entry.Unit)
		if err != nil {
			return nil, fmt.Errorf("resolve build unit %s: %w", entry.Unit, err)
		}

		found, err := Locate(unit, entry.Library, profile)
		if err != nil {
			return nil, err
		}

		logger.DebugKV(ctx, "Located library", "unit", entry.Unit, "library", entry.Library, "path", found.SourcePath)

		artifacts = append(artifacts, found)
	}

	dependencies, err := Collect(pkg, keepFragments, profile.LibraryExtensions)
	if err != nil {
		return nil, err
	}

	if len(dependencies) == 0 {
		logger.DebugKV(ctx, "No dependency libraries matched", "package", pkg.Name, "directory", pkg.LibraryDirectory)
	}

	artifacts = append(artifacts, dependencies...)

	if err = checkDuplicates(artifacts); err != nil {
		return nil, err
	}

	return artifacts, nil
}

func checkDuplicates(artifacts []artifact.Artifact) error {
	seen := make(map[string]string, len(artifacts))

	for _, a := range artifacts {
		if first, ok := seen[a.BaseName]; ok {
			return &DuplicateArtifactError{
				BaseName: a.BaseName,
				First:    first,
				Second:   a.SourcePath,
			}
		}

		seen[a.BaseName] = a.SourcePath
	}

	return nil
}
