package oracle

import (
	"errors"
	"fmt"
)

var (
	// ErrSimulationTimeout is returned when the simulation executable does not
	// finish before the deadline.
	ErrSimulationTimeout = errors.New("simulation timed out")

	// ErrSimulationFailed is returned when the simulation executable cannot be
	// started or exits with a failure.
	ErrSimulationFailed = errors.New("simulation failed")

	// ErrMissingResult is returned when no result file exists after a
	// successful simulation.
	ErrMissingResult = errors.New("missing result file")

	// ErrMalformedResult is returned when a result file does not hold exactly
	// four 0x-prefixed 8-digit hex words.
	ErrMalformedResult = errors.New("malformed result")
)

// Error is an oracle failure for one operand pair.
type Error struct {
	Key  string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("oracle %s (%s): %v", e.Key, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
