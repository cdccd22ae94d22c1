package domain

import "errors"

var (
	// ErrNotFound signals a missing field definition or value record.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a name collision (e.g. renaming onto a taken name).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidName signals a name that does not match the allowed pattern.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidField signals a field definition that failed validation.
	ErrInvalidField = errors.New("invalid field definition")
	// ErrInvalidValue signals a value that failed its field's validation.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidFilter signals a malformed value filter.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrUnknownFieldType signals a field referencing an unregistered type.
	ErrUnknownFieldType = errors.New("unknown field type")
	// ErrTypeImmutable signals an attempt to change the type of a stored field.
	ErrTypeImmutable = errors.New("field type is immutable")
	// ErrTypeRegistered signals a duplicate field type registration.
	ErrTypeRegistered = errors.New("field type already registered")
)
