package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/fpdiff/dut"
	"github.com/sarchlab/fpdiff/fp"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// PrintState renders every register of the unit as a table.
func PrintState(w io.Writer, name string, u dut.Unit) {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("State@%s", name))
	t.AppendHeader(table.Row{"Port", "Dir", "Width", "Hex", "Token"})

	for _, p := range u.Ports() {
		dir := "in"
		if p.Output {
			dir = "out"
		}

		v := u.Get(p.Name)
		token := ""
		if p.Width == 32 {
			token = fp.Format(fp.Value(v))
		}

		t.AppendRow(table.Row{p.Name, dir, p.Width, fmt.Sprintf("0x%08x", v), token})
	}

	fmt.Fprintln(w, t.Render())
}

// LogState writes a debug checkpoint of the unit registers.
func LogState(name string, u dut.Unit) {
	args := []any{"Unit", name}
	for _, p := range u.Ports() {
		args = append(args, p.Name, fmt.Sprintf("0x%08x", u.Get(p.Name)))
	}

	slog.Debug("StateCheckpoint", args...)
}
