// Command verify-fconv runs the conversion benches. The float-to-integer and
// integer-to-float tables are written to fconv-ftoi.csv and fconv-itof.csv in
// the build directory, with a waveform for each.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/fpdiff/api"
	"github.com/sarchlab/fpdiff/config"
	"github.com/sarchlab/fpdiff/vector"
	"github.com/sarchlab/fpdiff/verify"
)

type bench struct {
	name string
	run  func(d api.Driver) (*verify.ConversionTable, error)
}

var benches = []bench{
	{
		name: "ftoi",
		run: func(d api.Driver) (*verify.ConversionTable, error) {
			return verify.RunFloatToInt(d, vector.Floats(vector.ThemeConvert))
		},
	},
	{
		name: "itof",
		run: func(d api.Driver) (*verify.ConversionTable, error) {
			return verify.RunIntToFloat(d, vector.Ints())
		},
	},
}

func runBench(cfg config.Config, b bench) (int, error) {
	csvPath := filepath.Join(cfg.BuildDir, "fconv-"+b.name+".csv")
	tracePath := filepath.Join(cfg.BuildDir, "fconv-"+b.name+".vcd")

	f, err := os.Create(csvPath)
	if err != nil {
		return 0, &config.StartupError{Path: csvPath, Err: err}
	}
	defer f.Close()

	d, err := config.NewBenchBuilder(cfg).BuildConverter("FConv", tracePath)
	if err != nil {
		return 0, err
	}

	table, err := b.run(d)
	if cerr := d.Close(); err == nil && cerr != nil {
		err = &config.StartupError{Path: tracePath, Err: cerr}
	}
	if err != nil {
		return 0, err
	}

	err = table.WriteCSV(f)
	if err == nil {
		err = f.Close()
	}
	if err != nil {
		return 0, &config.StartupError{Path: csvPath, Err: err}
	}

	for _, m := range table.Mismatches {
		slog.Warn("Mismatch", "Bench", b.name, "Detail", m.String())
		fmt.Println(m)
	}
	fmt.Printf("%s: %d rows, %d mismatches\n", b.name, len(table.Rows), len(table.Mismatches))

	return len(table.Mismatches), nil
}

func run() error {
	cfg, _, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	err = config.SetupLogging(cfg)
	if err != nil {
		return err
	}

	err = os.MkdirAll(cfg.BuildDir, 0o755)
	if err != nil {
		return &config.StartupError{Path: cfg.BuildDir, Err: err}
	}

	mismatches := 0
	for _, b := range benches {
		n, err := runBench(cfg, b)
		if err != nil {
			return err
		}
		mismatches += n
	}

	if cfg.FailOnDivergence && mismatches > 0 {
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
