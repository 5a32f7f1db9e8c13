package install

import (
	"errors"
	"fmt"
)

var (
	// ErrInstallIO reports a filesystem failure while installing an artifact.
	ErrInstallIO = errors.New("install failed")

	errUnknownStrategy = errors.New("unknown install strategy")
	errHashUnavailable = errors.New("hash function unavailable")
)

// IOError describes which filesystem operation failed and on which path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrInstallIO, e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrInstallIO and the underlying error.
func (e *IOError) Unwrap() []error {
	return []error{ErrInstallIO, e.Err}
}
