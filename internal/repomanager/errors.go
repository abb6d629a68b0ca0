package repomanager

import (
	"errors"
	"fmt"
)

var (
	ErrMissingArgument   = errors.New("missing required argument")
	ErrInvalidRepository = errors.New("directory does not contain a valid git repository")
	ErrMissingParent     = errors.New("parent directory does not exist")
)

// InvalidRepositoryError names an existing directory that failed the
// repository check. The directory is never modified.
type InvalidRepositoryError struct {
	Dir string
	Err error
}

func (e *InvalidRepositoryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("a directory with an invalid repository found at %s", e.Dir)
	}
	return fmt.Sprintf("a directory with an invalid repository found at %s: %v", e.Dir, e.Err)
}

func (e *InvalidRepositoryError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidRepository}
	}
	return []error{ErrInvalidRepository, e.Err}
}

// MissingParentError reports a clone target whose parent directory is absent.
type MissingParentError struct {
	Dir    string
	Parent string
}

func (e *MissingParentError) Error() string {
	return fmt.Sprintf("parent of %s must exist (%s)", e.Dir, e.Parent)
}

func (e *MissingParentError) Unwrap() error {
	return ErrMissingParent
}

func missingArg(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingArgument, name)
}
