package resolve

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrArtifactNotFound reports a manifest entry without compiled output.
	ErrArtifactNotFound = errors.New("artifact not found")
	// ErrAmbiguousArtifact reports a manifest entry matching several files.
	ErrAmbiguousArtifact = errors.New("ambiguous artifact")
	// ErrDependencyDirectoryUnavailable reports an unreadable package library directory.
	ErrDependencyDirectoryUnavailable = errors.New("dependency directory unavailable")
	// ErrDuplicateArtifact reports two artifacts sharing a destination name.
	ErrDuplicateArtifact = errors.New("duplicate artifact")
)

// ArtifactNotFoundError is returned when a build unit has no file for a library.
type ArtifactNotFoundError struct {
	Unit    string
	Library string
	// Directory is the output directory that was searched.
	Directory string
}

func (e *ArtifactNotFoundError) Error() string {
	return fmt.Sprintf("%s: library %q of %q in %s", ErrArtifactNotFound, e.Library, e.Unit, e.Directory)
}

func (e *ArtifactNotFoundError) Unwrap() error { return ErrArtifactNotFound }

// AmbiguousArtifactError is returned when more than one file matches a library.
type AmbiguousArtifactError struct {
	Unit       string
	Library    string
	Candidates []string
}

func (e *AmbiguousArtifactError) Error() string {
	return fmt.Sprintf("%s: library %q of %q matches %s",
		ErrAmbiguousArtifact, e.Library, e.Unit, strings.Join(e.Candidates, ", "))
}

func (e *AmbiguousArtifactError) Unwrap() error { return ErrAmbiguousArtifact }

// DependencyDirectoryError is returned when a package library directory cannot be listed.
type DependencyDirectoryError struct {
	Package   string
	Directory string
	Err       error
}

func (e *DependencyDirectoryError) Error() string {
	return fmt.Sprintf("%s: package %q, %s: %v", ErrDependencyDirectoryUnavailable, e.Package, e.Directory, e.Err)
}

// Unwrap exposes both the sentinel and the underlying I/O error.
func (e *DependencyDirectoryError) Unwrap() []error {
	return []error{ErrDependencyDirectoryUnavailable, e.Err}
}

// DuplicateArtifactError is returned when two resolved files share a base name.
type DuplicateArtifactError struct {
	BaseName string
	First    string
	Second   string
}

func (e *DuplicateArtifactError) Error() string {
	return fmt.Sprintf("%s: %q provided by both %s and %s", ErrDuplicateArtifact, e.BaseName, e.First, e.Second)
}

func (e *DuplicateArtifactError) Unwrap() error { return ErrDuplicateArtifact }
