package schema

import "errors"

// Errors returned by schema lookups and edits.
var (
	// ErrColumnNotFound is returned when no column matches a name.
	ErrColumnNotFound = errors.New("column not found")

	// ErrIndexOutOfRange is returned when a position or range lies outside the list.
	ErrIndexOutOfRange = errors.New("column index out of range")

	// ErrNameMismatch is returned when a definition is stored under a different name.
	ErrNameMismatch = errors.New("column name does not match key")

	// ErrUnknownType is returned for an unrecognised column type name.
	ErrUnknownType = errors.New("unknown column type")

	// ErrUnknownEditability is returned for an unrecognised editability name.
	ErrUnknownEditability = errors.New("unknown editability")
)
