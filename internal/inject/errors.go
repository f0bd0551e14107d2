package inject

import "errors"

var (
	// ErrInvalidRoot indicates a planned installation root is not an
	// existing directory.
	ErrInvalidRoot = errors.New("not an existing directory")
)
