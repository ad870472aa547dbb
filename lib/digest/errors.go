package digest

import "errors"

var (
	// ErrIO is returned when the file being digested cannot be read
	ErrIO = errors.New("digest: read failed")
)
