package artifact

import "path/filepath"

// BuildUnit is an independently compiled project with its own output directory.
type BuildUnit struct {
	// Name is the project name in the worktree, e.g. "libqi".
	Name string
	// OutputDirectory holds the compiled artifacts of the unit.
	OutputDirectory string
}

// DependencyPackage is a third-party distribution exposed by the toolchain.
type DependencyPackage struct {
	// Name is the toolchain package name, e.g. "boost".
	Name string
	// LibraryDirectory contains the prebuilt libraries of the package.
	LibraryDirectory string
}

// ManifestEntry declares that a library owned by a build unit must be staged.
type ManifestEntry struct {
	// Unit is the owning build unit name.
	Unit string
	// Library is the library base name, without prefix or extension.
	Library string
}

// Artifact is a file resolved for installation.
type Artifact struct {
	// SourcePath is the location of the artifact produced by the build.
	SourcePath string
	// BaseName is the file name used in the destination directory.
	BaseName string
}

// NewArtifact builds an Artifact whose base name is taken from path.
func NewArtifact(path string) Artifact {
	return Artifact{
		SourcePath: path,
		BaseName:   filepath.Base(path),
	}
}

// Destination is the directory consumed by the packaging step.
type Destination struct {
	Directory string
}

// PathFor returns where an artifact lands inside the destination.
func (d Destination) PathFor(a Artifact) string {
	return filepath.Join(d.Directory, a.BaseName)
}
