// Package oracle obtains reference results from a simulation executable run
// out of process, one run per operand pair. Results are cached on disk and
// reused across runs; a cached result is never invalidated.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/sarchlab/fpdiff/core"
	"github.com/sarchlab/fpdiff/fp"
	"github.com/sarchlab/fpdiff/vector"
)

// DefaultTimeout bounds a single simulation run.
const DefaultTimeout = 30 * time.Second

// tmpSeq numbers temporary files process-wide, so oracles sharing a cache
// directory never write to the same temporary file.
var tmpSeq atomic.Uint64

// Builder can create oracles.
type Builder struct {
	executor Executor
	cacheDir string
	timeout  time.Duration
	workers  int
}

func NewBuilder() Builder {
	return Builder{
		timeout: DefaultTimeout,
		workers: runtime.NumCPU(),
	}
}

// WithExecutor sets the executor that runs the simulation.
func (b Builder) WithExecutor(e Executor) Builder {
	b.executor = e
	return b
}

// WithCacheDir sets the root of the result cache.
func (b Builder) WithCacheDir(dir string) Builder {
	b.cacheDir = dir
	return b
}

// WithTimeout sets the deadline of one simulation run.
func (b Builder) WithTimeout(timeout time.Duration) Builder {
	if timeout <= 0 {
		panic("timeout must be positive")
	}
	b.timeout = timeout
	return b
}

// WithWorkers sets how many simulations Prefetch runs at once.
func (b Builder) WithWorkers(n int) Builder {
	if n < 1 {
		panic("need at least one worker")
	}
	b.workers = n
	return b
}

// Build creates an oracle.
func (b Builder) Build() *Oracle {
	if b.executor == nil {
		panic("oracle needs an executor")
	}

	if b.cacheDir == "" {
		panic("oracle needs a cache directory")
	}

	return &Oracle{
		executor: b.executor,
		cache:    Cache{Root: b.cacheDir},
		timeout:  b.timeout,
		workers:  b.workers,
	}
}

// Oracle answers queries from the cache and runs the simulation on a miss.
// It is safe for concurrent use.
type Oracle struct {
	executor Executor
	cache    Cache
	timeout  time.Duration
	workers  int

	group       singleflight.Group
	invocations atomic.Int64
}

// Cache returns the result cache.
func (o *Oracle) Cache() Cache {
	return o.cache
}

// Invocations returns the number of simulation runs issued so far.
func (o *Oracle) Invocations() int64 {
	return o.invocations.Load()
}

// Query returns the result of lhs op rhs for every operation. Concurrent
// queries of the same pair share a single simulation run.
func (o *Oracle) Query(ctx context.Context, lhs, rhs fp.Value) (Result, error) {
	key := vector.Pair{LHS: lhs, RHS: rhs}.Key()

	v, err, _ := o.group.Do(key, func() (any, error) {
		return o.query(ctx, key, lhs, rhs)
	})
	if err != nil {
		return Result{}, err
	}

	return v.(Result), nil
}

// Prefetch fills the cache for every pair, running up to the configured
// number of simulations at once. It stops at the first failure.
func (o *Oracle) Prefetch(ctx context.Context, pairs []vector.Pair) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for _, p := range pairs {
		p := p
		g.Go(func() error {
			_, err := o.Query(ctx, p.LHS, p.RHS)
			return err
		})
	}

	return g.Wait()
}

func (o *Oracle) query(
	ctx context.Context,
	key string,
	lhs, rhs fp.Value,
) (Result, error) {
	path := o.cache.ResultPath(lhs, rhs)

	cached, err := o.cache.Has(lhs, rhs)
	if err != nil {
		return Result{}, &Error{Key: key, Path: path, Err: err}
	}

	if !cached {
		err = o.simulate(ctx, key, lhs, rhs)
		if err != nil {
			return Result{}, err
		}
	}

	r, err := o.cache.Load(lhs, rhs)
	if err != nil {
		return Result{}, &Error{Key: key, Path: path, Err: err}
	}

	return r, nil
}

func (o *Oracle) simulate(
	ctx context.Context,
	key string,
	lhs, rhs fp.Value,
) error {
	path := o.cache.ResultPath(lhs, rhs)
	tracePath := o.cache.TracePath(lhs, rhs)

	dir := o.cache.Dir(lhs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &Error{Key: key, Path: dir, Err: err}
	}

	seq := tmpSeq.Add(1)
	inv := Invocation{
		ResultPath: tempPath(path, seq),
		TracePath:  tempPath(tracePath, seq),
		LHS:        lhs,
		RHS:        rhs,
	}
	defer os.Remove(inv.ResultPath)
	defer os.Remove(inv.TracePath)

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	o.invocations.Add(1)
	core.Trace("Simulate", "Key", key, "Path", path)

	start := time.Now()
	err := o.executor.Run(ctx, inv)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, ErrSimulationTimeout) {
			err = fmt.Errorf("%w after %s: %v", ErrSimulationTimeout, o.timeout, err)
		} else if !errors.Is(err, ErrSimulationTimeout) && !errors.Is(err, ErrSimulationFailed) {
			err = fmt.Errorf("%w: %v", ErrSimulationFailed, err)
		}

		return &Error{Key: key, Path: path, Err: err}
	}

	err = os.Rename(inv.ResultPath, path)
	if errors.Is(err, fs.ErrNotExist) {
		err = ErrMissingResult
		if cached, _ := o.cache.Has(lhs, rhs); cached {
			err = nil
		}
	}
	if err != nil {
		return &Error{Key: key, Path: path, Err: err}
	}

	err = os.Rename(inv.TracePath, tracePath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &Error{Key: key, Path: tracePath, Err: err}
	}

	core.Trace("Simulated", "Key", key, "Duration", time.Since(start))

	return nil
}

// tempPath returns a per-run name next to path. The rename to path replaces
// any result written by a concurrent run of the same pair.
func tempPath(path string, seq uint64) string {
	return fmt.Sprintf("%s.%d.%d.tmp", path, os.Getpid(), seq)
}
