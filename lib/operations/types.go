package operations

import "fmt"

// Operation is a dispatchable unit of work on a single stored image.
type Operation string

const (
	OpValidate Operation = "validate"
	OpOptimize Operation = "optimize"
)

// AllOperations lists every operation handled by Dispatch.
var AllOperations = []Operation{OpValidate, OpOptimize}

// ParseOperation maps a name to an Operation. Names are matched exactly,
// without trimming or case folding.
func ParseOperation(name string) (Operation, error) {
	op := Operation(name)
	for _, known := range AllOperations {
		if op == known {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedOperation, name)
}

// State is the lifecycle position of a dispatched request.
type State string

const (
	StateReceived  State = "received"
	StateValidated State = "validated"
	StateExecuting State = "executing"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Request names an operation and its target image.
type Request struct {
	Operation string `json:"operation"`
	Filename  string `json:"filename"`
}

// Result is the outcome of an operation. Optional fields are set only by
// the operations that produce them.
type Result struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Valid        *bool  `json:"valid,omitempty"`
	Reason       string `json:"reason,omitempty"`
	OriginalSize *int64 `json:"original_size,omitempty"`
	Output       string `json:"output,omitempty"`
	JobID        string `json:"job_id,omitempty"`
}
