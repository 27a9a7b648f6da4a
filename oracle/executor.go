package oracle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sarchlab/fpdiff/fp"
)

// Invocation is one run of the simulation executable.
type Invocation struct {
	ResultPath string
	TracePath  string
	LHS, RHS   fp.Value
}

// Args returns the command-line arguments of the simulation executable.
func (inv Invocation) Args() []string {
	return []string{
		inv.ResultPath,
		inv.TracePath,
		fmt.Sprintf("%08x", inv.LHS.Bits()),
		fmt.Sprintf("%08x", inv.RHS.Bits()),
	}
}

// Executor runs the simulation for one operand pair. It must write the result
// line to inv.ResultPath and return once the file is complete. A waveform, if
// any, goes to inv.TracePath. Both are temporary paths, moved into the cache
// when Run succeeds.
type Executor interface {
	Run(ctx context.Context, inv Invocation) error
}

// ProcessExecutor runs a prebuilt simulation executable. Command is the argv
// prefix; the invocation arguments are appended to it.
type ProcessExecutor struct {
	Command []string
}

// Run starts the process and waits for it. The process is killed when ctx is
// done.
func (e ProcessExecutor) Run(ctx context.Context, inv Invocation) error {
	if len(e.Command) == 0 {
		return fmt.Errorf("%w: no simulator command", ErrSimulationFailed)
	}

	args := append(append([]string(nil), e.Command[1:]...), inv.Args()...)

	cmd := exec.CommandContext(ctx, e.Command[0], args...)
	cmd.WaitDelay = time.Second

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrSimulationTimeout, err)
	}

	return fmt.Errorf("%w: %s: %v (output: %s)", ErrSimulationFailed,
		e.Command[0], err, strings.TrimSpace(output.String()))
}
