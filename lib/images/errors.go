package images

import "errors"

var (
	// ErrNotFound is returned when a referenced image does not exist
	ErrNotFound = errors.New("image not found")

	// ErrInvalidReference is returned for empty, absolute or traversing names
	ErrInvalidReference = errors.New("invalid image reference")
)
