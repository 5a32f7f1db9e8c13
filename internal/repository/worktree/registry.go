package worktree

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/oshokin/jnistage/internal/config"
	"github.com/oshokin/jnistage/internal/domain/artifact"
	"github.com/oshokin/jnistage/internal/platform"
)

// sdkDirName is the directory inside a build directory holding installed outputs.
const sdkDirName = "sdk"

var (
	// ErrUnknownProject is returned for a project missing from the settings.
	ErrUnknownProject = errors.New("unknown project")
	// ErrUnknownPackage is returned for a toolchain package missing from the settings.
	ErrUnknownPackage = errors.New("unknown package")
)

// Registry resolves names declared in the settings file.
type Registry struct {
	// root is the worktree root directory.
	root string
	// buildDir is the per-project build directory name, e.g. build-linux64.
	buildDir string
	// libSubdir is the library subdirectory of toolchain packages.
	libSubdir string
	// projects maps names to paths relative to root.
	projects map[string]string
	// packages maps names to installation roots.
	packages map[string]string
}

// NewRegistry creates a registry for the worktree described by cfg.
func NewRegistry(cfg *config.Config, profile platform.Profile) *Registry {
	return &Registry{
		root:      filepath.Clean(cfg.Worktree),
		buildDir:  BuildDirName(cfg.BuildConfig, profile.HostOS, runtime.GOARCH),
		libSubdir: profile.DependencyLibrarySubdir,
		projects:  cfg.Projects,
		packages:  cfg.Packages,
	}
}

// machineNames maps Go architecture names to the machine names used in host build directories.
var machineNames = map[string]string{
	"amd64":   "x86_64",
	"386":     "i686",
	"arm64":   "aarch64",
	"arm":     "armv7l",
	"ppc64le": "ppc64le",
}

// BuildDirName returns the build directory name for a build configuration.
// Without a configuration the host system directory, e.g. build-sys-linux-x86_64, is used.
func BuildDirName(buildConfig, goos, goarch string) string {
	if buildConfig == "" {
		return fmt.Sprintf("build-sys-%s-%s", goos, MachineName(goos, goarch))
	}

	return "build-" + buildConfig
}

// MachineName returns the host machine name for a Go architecture.
// Unknown architectures keep their Go name, and so does arm64 on darwin.
func MachineName(goos, goarch string) string {
	if goos == "darwin" && goarch == "arm64" {
		return goarch
	}

	if name, ok := machineNames[goarch]; ok {
		return name
	}

	return goarch
}

// PathInWorktree resolves a path relative to the worktree root.
// Absolute paths are returned cleaned.
func (r *Registry) PathInWorktree(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(r.root, path)
}

// ProjectPath returns the location of a declared project.
func (r *Registry) ProjectPath(name string) (string, error) {
	rel, ok := r.projects[name]
	if !ok {
		return "", fmt.Errorf("%s: %w", name, ErrUnknownProject)
	}

	return r.PathInWorktree(rel), nil
}

// BuildUnit returns the build unit of a project: its sdk output directory.
func (r *Registry) BuildUnit(name string) (artifact.BuildUnit, error) {
	path, err := r.ProjectPath(name)
	if err != nil {
		return artifact.BuildUnit{}, err
	}

	return artifact.BuildUnit{
		Name:            name,
		OutputDirectory: filepath.Join(path, r.buildDir, sdkDirName),
	}, nil
}

// Package returns the toolchain package with its platform library directory.
// Relative package roots are resolved against the worktree root.
func (r *Registry) Package(name string) (artifact.DependencyPackage, error) {
	root, ok := r.packages[name]
	if !ok {
		return artifact.DependencyPackage{}, fmt.Errorf("%s: %w", name, ErrUnknownPackage)
	}

	return artifact.DependencyPackage{
		Name:             name,
		LibraryDirectory: filepath.Join(r.PathInWorktree(root), r.libSubdir),
	}, nil
}
