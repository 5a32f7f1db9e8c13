package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	goupdate "github.com/doitdistributed/go-update"

	"github.com/oshokin/jnistage/internal/domain/artifact"
	"github.com/oshokin/jnistage/internal/logger"
	"github.com/oshokin/jnistage/internal/platform"
)

// DefaultDirMode is used when creating the destination directory.
const DefaultDirMode os.FileMode = 0o755

// applyFunc installs a single source file at target.
type applyFunc func(source, target string) error

// Install ensures destination exists and installs every artifact into it
// using the strategy of profile. The first failure is returned; artifacts
// installed before it are left in place.
func Install(
	ctx context.Context,
	destination artifact.Destination,
	artifacts []artifact.Artifact,
	profile platform.Profile,
) error {
	apply, err := strategyFor(profile.Strategy)
	if err != nil {
		return err
	}

	dir := filepath.Clean(destination.Directory)
	if err = os.MkdirAll(dir, DefaultDirMode); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}

	for _, a := range artifacts {
		target := destination.PathFor(a)

		logger.DebugKV(ctx, "Installing artifact",
			"source", a.SourcePath, "target", target, "strategy", profile.Strategy.String())

		if err = apply(a.SourcePath, target); err != nil {
			return err
		}
	}

	return nil
}

func strategyFor(strategy platform.Strategy) (applyFunc, error) {
	switch strategy {
	case platform.StrategySymlink:
		return linkArtifact, nil
	case platform.StrategyCopy:
		return copyArtifact, nil
	default:
		return nil, fmt.Errorf("%w: %d", errUnknownStrategy, strategy)
	}
}

// linkArtifact replaces whatever exists at target with a symlink to source.
func linkArtifact(source, target string) error {
	absSource, err := filepath.Abs(source)
	if err != nil {
		return &IOError{Op: "resolve", Path: source, Err: err}
	}

	if _, err = os.Stat(absSource); err != nil {
		return &IOError{Op: "stat", Path: absSource, Err: err}
	}

	if err = removeExisting(target); err != nil {
		return err
	}

	if err = os.Symlink(absSource, target); err != nil {
		return &IOError{Op: "symlink", Path: target, Err: err}
	}

	return nil
}

// removeExisting deletes a file or a (possibly stale) symlink at target.
func removeExisting(target string) error {
	_, err := os.Lstat(target)

	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return &IOError{Op: "stat", Path: target, Err: err}
	}

	if err = os.Remove(target); err != nil {
		return &IOError{Op: "remove", Path: target, Err: err}
	}

	return nil
}

// copyArtifact writes a byte-identical copy of source at target.
// go-update swaps the new file in and verifies it against the source checksum.
func copyArtifact(source, target string) error {
	info, err := os.Stat(source)
	if err != nil {
		return &IOError{Op: "stat", Path: source, Err: err}
	}

	checksum, err := FileChecksum(source)
	if err != nil {
		return &IOError{Op: "checksum", Path: source, Err: err}
	}

	file, err := os.Open(filepath.Clean(source))
	if err != nil {
		return &IOError{Op: "open", Path: source, Err: err}
	}

	defer func() {
		_ = file.Close()
	}()

	return replaceFile(file, target, info.Mode().Perm(), checksum)
}

// replaceFile applies content at target when it matches checksum.
// A target created only for the swap is removed again on failure.
func replaceFile(content io.Reader, target string, mode os.FileMode, checksum []byte) error {
	// go-update renames the current target aside, so it has to exist.
	created, err := ensureTarget(target, mode)
	if err != nil {
		return err
	}

	options := goupdate.Options{
		TargetPath: target,
		TargetMode: mode,
		Checksum:   checksum,
		Hash:       ChecksumFunction,
	}

	if err = goupdate.Apply(content, options); err != nil {
		if created {
			_ = os.Remove(target)
		}

		return &IOError{Op: "copy", Path: target, Err: err}
	}

	return removeOldCopy(target)
}

// oldCopyPath is where go-update moves the previous target during Apply.
func oldCopyPath(target string) string {
	dir, name := filepath.Split(target)

	return filepath.Join(dir, "."+name+".old")
}

// removeOldCopy deletes the previous target go-update could not remove itself.
func removeOldCopy(target string) error {
	old := oldCopyPath(target)

	err := os.Remove(old)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return &IOError{Op: "remove", Path: old, Err: err}
	}

	return nil
}

// ensureTarget creates an empty target when none exists and reports whether it did.
func ensureTarget(target string, mode os.FileMode) (bool, error) {
	_, err := os.Lstat(target)

	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, os.ErrNotExist):
		return false, &IOError{Op: "stat", Path: target, Err: err}
	}

	placeholder, err := os.OpenFile(filepath.Clean(target), os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		return false, &IOError{Op: "create", Path: target, Err: err}
	}

	if err = placeholder.Close(); err != nil {
		_ = os.Remove(target)

		return false, &IOError{Op: "create", Path: target, Err: err}
	}

	return true, nil
}
