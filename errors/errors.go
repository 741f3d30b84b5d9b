// Package errors defines all exported error sentinels for the
// imaginarylistsearch library.
//
// This is the single source of truth for error values. Both the top-level
// listsearch package and the supporting internal packages import from
// here, ensuring errors.Is checks work across package boundaries.
package errors

import "errors"

// Search configuration errors
var (
	ErrNoRestarts     = errors.New("listsearch: restart count must be positive")
	ErrNegativePasses = errors.New("listsearch: hillclimb pass count cannot be negative")
	ErrEmptyBlock     = errors.New("listsearch: cannot search an empty block")
)

// Data file errors
var (
	ErrTruncatedData = errors.New("listsearch: data file is smaller than one value")
)
