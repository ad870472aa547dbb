package operations

import (
	"errors"
	"fmt"

	"github.com/onkernel/diskprobe/lib/images"
)

var (
	// ErrUnsupportedOperation is returned for an operation name outside the known set
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrMissingField is returned when the operation or filename is empty
	ErrMissingField = fmt.Errorf("%w: operation and filename required", images.ErrInvalidReference)
)
