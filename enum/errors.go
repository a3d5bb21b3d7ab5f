package enum

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyExists is returned when a list already holds the value being added.
	ErrAlreadyExists = errors.New("enum: value already exists")
	// ErrNoMemory is returned when a list or record cannot be grown.
	ErrNoMemory = errors.New("enum: out of memory")
	// ErrOutOfBounds is returned when indexed coordinates exceed the table bounds.
	ErrOutOfBounds = errors.New("enum: index out of bounds")
	// ErrInvalidBounds is returned by Init for a zero-sized table.
	ErrInvalidBounds = errors.New("enum: invalid table bounds")
	// ErrNotInitialized is returned by indexed insertion before Init. It
	// matches ErrOutOfBounds under errors.Is, since an absent table has no
	// valid coordinates.
	ErrNotInitialized = fmt.Errorf("enum: table not initialized: %w", ErrOutOfBounds)
)
