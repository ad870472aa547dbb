package convert

import "errors"

var (
	// ErrUnknownBackend is returned for an unrecognized converter backend name
	ErrUnknownBackend = errors.New("unknown converter backend")

	// ErrUnsupportedFormat is returned when a backend cannot produce the target format
	ErrUnsupportedFormat = errors.New("unsupported target format")

	// ErrJobNotFound is returned when a job ID is unknown
	ErrJobNotFound = errors.New("job not found")

	// ErrJobFinished is returned when cancelling a job that already completed
	ErrJobFinished = errors.New("job already finished")

	// ErrQueueClosed is returned when submitting after shutdown
	ErrQueueClosed = errors.New("job queue closed")
)
