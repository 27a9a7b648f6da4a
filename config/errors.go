package config

import (
	"errors"
	"fmt"

	"github.com/sarchlab/fpdiff/oracle"
)

// Exit codes of the commands.
const (
	ExitSuccess  = 0 // Success
	ExitDiverged = 1 // Divergences found, or any other runtime failure
	ExitStartup  = 2 // Config, output file or trace could not be opened
	ExitOracle   = 3 // The simulation failed or its result is unusable
)

// ErrDiverged is returned by a run that found divergences and was asked to
// fail on them.
var ErrDiverged = errors.New("divergences found")

// StartupError is a failure to set up a run, tied to the file it concerns.
type StartupError struct {
	Path string
	Err  error
}

func (e *StartupError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("startup: %v", e.Err)
	}
	return fmt.Sprintf("startup %s: %v", e.Path, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var startupErr *StartupError
	if errors.As(err, &startupErr) {
		return ExitStartup
	}

	var oracleErr *oracle.Error
	if errors.As(err, &oracleErr) {
		return ExitOracle
	}

	return ExitDiverged
}
