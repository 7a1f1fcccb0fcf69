package catalog

import "errors"

var (
	// ErrDuplicateName indicates two catalog entries share a name.
	ErrDuplicateName = errors.New("duplicate icon name")
)
