package searchql

import "errors"

var (
	// ErrEmptyCatalog is returned when a catalog would have no fields.
	ErrEmptyCatalog = errors.New("catalog has no fields")

	// ErrDuplicateField is returned when two fields share a name.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrUnknownKind is returned for an unrecognized value kind name.
	ErrUnknownKind = errors.New("unknown value kind")
)
