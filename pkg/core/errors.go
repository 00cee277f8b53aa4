package core

import "errors"

// Common errors.
var (
	// ErrWrongExtension is returned when a file does not carry the extension
	// the requested operation reads or writes.
	ErrWrongExtension = errors.New("wrong file extension")

	// ErrDuplicateKey is returned when a key is already taken in the library.
	// The record already stored under the key is kept.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnknownField is returned for a marker that maps to no field, or a
	// field that cannot be applied in the current state of the record.
	ErrUnknownField = errors.New("field not recognised")

	// ErrNoOpenRecord is returned when a field arrives before any index marker.
	ErrNoOpenRecord = errors.New("no open record")

	// ErrUnknownKind is returned when rendering a Zettel of an unknown kind.
	ErrUnknownKind = errors.New("zettel kind not recognised")
)
