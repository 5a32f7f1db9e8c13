package platform

import (
	"runtime"
	"slices"
	"strings"
)

// Strategy selects how artifacts are placed into the destination directory.
type Strategy int

const (
	// StrategySymlink links each destination entry to its source artifact.
	StrategySymlink Strategy = iota
	// StrategyCopy writes a byte-identical copy of each artifact.
	StrategyCopy
)

const (
	// CrossVariantMarker identifies the cross-compiled build configuration.
	CrossVariantMarker = "android"

	windowsFamily = "windows"
)

// String returns the strategy name used in logs.
func (s Strategy) String() string {
	switch s {
	case StrategySymlink:
		return "symlink"
	case StrategyCopy:
		return "copy"
	default:
		return "unknown"
	}
}

// Profile holds everything downstream components need to know about the host.
type Profile struct {
	// VariantID is the build configuration name the profile was derived from.
	VariantID string
	// HostOS is the operating system identifier, as in runtime.GOOS.
	HostOS string
	// IsCrossVariant is set when VariantID contains CrossVariantMarker.
	IsCrossVariant bool
	// LibraryExtensions lists the shared library suffixes accepted on this host.
	LibraryExtensions []string
	// Strategy is the install strategy supported by the host.
	Strategy Strategy
	// DependencyLibrarySubdir is where toolchain packages keep shared libraries.
	DependencyLibrarySubdir string
	// isWindows reports the Windows family; it drives library naming.
	isWindows bool
}

// Derive computes a Profile from a build variant identifier and a host OS name.
// It is a pure function of its inputs.
func Derive(variantID, hostOS string) Profile {
	windows := strings.Contains(strings.ToLower(hostOS), windowsFamily)

	profile := Profile{
		VariantID:               variantID,
		HostOS:                  hostOS,
		IsCrossVariant:          strings.Contains(variantID, CrossVariantMarker),
		LibraryExtensions:       []string{".so", ".dylib"},
		Strategy:                StrategySymlink,
		DependencyLibrarySubdir: "lib",
		isWindows:               windows,
	}

	if windows {
		profile.LibraryExtensions = []string{".dll"}
		profile.Strategy = StrategyCopy
		profile.DependencyLibrarySubdir = "bin"
	}

	return profile
}

// Host derives the profile of the running host for the given build variant.
func Host(variantID string) Profile {
	return Derive(variantID, runtime.GOOS)
}

// HostSupportsSymlink reports whether artifacts are installed as symlinks.
func (p Profile) HostSupportsSymlink() bool {
	return p.Strategy == StrategySymlink
}

// IsWindows reports whether the profile describes a Windows-family host.
func (p Profile) IsWindows() bool {
	return p.isWindows
}

// HasLibraryExtension reports whether name ends with one of the shared library extensions.
func (p Profile) HasLibraryExtension(name string) bool {
	return slices.ContainsFunc(p.LibraryExtensions, func(ext string) bool {
		return strings.HasSuffix(name, ext)
	})
}

// LibraryFileNames returns the file names a built library called base may have,
// e.g. libqi.so and libqi.dylib, or qi.dll and libqi.dll on Windows.
func (p Profile) LibraryFileNames(base string) []string {
	names := make([]string, 0, 2*len(p.LibraryExtensions))

	for _, ext := range p.LibraryExtensions {
		if p.isWindows {
			names = append(names, base+ext)
		}

		names = append(names, "lib"+base+ext)
	}

	return names
}
