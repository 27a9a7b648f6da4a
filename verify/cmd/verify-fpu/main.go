// Command verify-fpu compares the arithmetic unit with the software reference
// over the edge-case catalogue. Results of the unit are cached in the build
// directory; the expected, result and difference tables are written next to
// them and the number of divergences per operation is printed.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/fpdiff/config"
	"github.com/sarchlab/fpdiff/vector"
	"github.com/sarchlab/fpdiff/verify"
)

func run() error {
	cfg, path, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	err = config.SetupLogging(cfg)
	if err != nil {
		return err
	}

	slog.Info("Config", "Path", path, "BuildDir", cfg.BuildDir, "Simulator", cfg.Simulator)

	err = os.MkdirAll(cfg.BuildDir, 0o755)
	if err != nil {
		return &config.StartupError{Path: cfg.BuildDir, Err: err}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	o := config.NewOracle(cfg)
	report, err := verify.Run(ctx, o, vector.Floats(vector.ThemeArith))
	if err != nil {
		return err
	}

	slog.Info("Oracle", "Invocations", o.Invocations())

	err = report.SaveToDir(cfg.BuildDir)
	if err != nil {
		return &config.StartupError{Path: cfg.BuildDir, Err: err}
	}

	if cfg.Verbose {
		report.WriteReport(os.Stdout)
	} else {
		report.WriteSummary(os.Stdout)
	}

	if cfg.FailOnDivergence && report.Counters.Total() > 0 {
		return config.ErrDiverged
	}

	return nil
}

func main() {
	err := run()
	if err != nil && !errors.Is(err, config.ErrDiverged) {
		fmt.Fprintln(os.Stderr, err)
	}

	atexit.Exit(config.ExitCode(err))
}
