package dut

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// VCD writes samples in Value Change Dump format. Only ports whose value
// changed since the previous sample are written.
type VCD struct {
	w      *bufio.Writer
	closer io.Closer

	ports   []Port
	ids     []string
	last    []uint32
	started bool
	seeded  bool
	err     error
}

// NewVCD creates a VCD trace on w. Close flushes w but does not close it.
func NewVCD(w io.Writer) *VCD {
	return &VCD{w: bufio.NewWriter(w)}
}

// CreateVCD creates the file at path and returns a VCD trace writing to it.
func CreateVCD(path string) (*VCD, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}

	t := NewVCD(f)
	t.closer = f

	return t, nil
}

// Dump records the ports of u at timestamp.
func (t *VCD) Dump(timestamp uint64, u Unit) {
	if t.err != nil {
		return
	}

	if !t.started {
		t.writeHeader(u.Ports())
	}

	t.printf("#%d\n", timestamp)
	for i, p := range t.ports {
		v := u.Get(p.Name) & widthMask(p.Width)
		if t.seeded && t.last[i] == v {
			continue
		}

		t.last[i] = v
		if p.Width == 1 {
			t.printf("%d%s\n", v, t.ids[i])
		} else {
			t.printf("b%0*b %s\n", p.Width, v, t.ids[i])
		}
	}
	t.seeded = true
}

// Close flushes the trace and returns the first error encountered while
// writing it.
func (t *VCD) Close() error {
	if err := t.w.Flush(); err != nil && t.err == nil {
		t.err = err
	}

	if t.closer != nil {
		if err := t.closer.Close(); err != nil && t.err == nil {
			t.err = err
		}
		t.closer = nil
	}

	return t.err
}

func (t *VCD) writeHeader(ports []Port) {
	t.started = true
	t.ports = append([]Port(nil), ports...)
	t.ids = make([]string, len(ports))
	t.last = make([]uint32, len(ports))

	t.printf("$timescale 1ns $end\n")
	t.printf("$scope module top $end\n")
	for i, p := range t.ports {
		t.ids[i] = identifier(i)
		t.printf("$var wire %d %s %s $end\n", p.Width, t.ids[i], p.Name)
	}
	t.printf("$upscope $end\n")
	t.printf("$enddefinitions $end\n")
}

func (t *VCD) printf(format string, args ...any) {
	if t.err != nil {
		return
	}

	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// identifier returns the VCD short identifier of the i-th signal, built from
// the 94 printable ASCII characters.
func identifier(i int) string {
	const first, count = '!', 94

	id := []byte{byte(first + i%count)}
	for i /= count; i > 0; i /= count {
		i--
		id = append(id, byte(first+i%count))
	}

	return string(id)
}

func widthMask(width int) uint32 {
	if width >= 32 {
		return 0xffffffff
	}

	return 1<<uint(width) - 1
}
