// Package driver implements the line-oriented "process stdin or a list
// of files" shell shared by the encoder and decoder CLI commands. It is
// deliberately kept outside pkg/ahtree: the core codec never depends on
// I/O, filenames, or flag parsing. The model is the product; this
// package is a thin collaborator around it.
package driver

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// LineFunc processes one line of input and returns the line to write to
// output.
type LineFunc func(line string) string

// Driver processes stdin or a list of named files, one line at a time.
type Driver struct {
	Out io.Writer
	Log zerolog.Logger
}

// New constructs a Driver writing to out and logging diagnostics to log.
func New(out io.Writer, log zerolog.Logger) *Driver {
	return &Driver{Out: out, Log: log}
}

// Run processes stdin (if filenames is empty, or contains only "-") or
// each named file in turn, calling fn once per line of input.
func (d *Driver) Run(filenames []string, fn LineFunc) {
	if len(filenames) == 0 {
		d.processFile("-", fn)
		return
	}
	for _, name := range filenames {
		d.processFile(name, fn)
	}
}

// processFile opens filename (stdin for "-"), advisory-locks it for the
// duration of the read so a concurrent writer can't mutate it mid-pass,
// and streams it through fn. An unopenable or unlockable file is logged
// to the diagnostic stream and skipped; the exit code is unaffected.
func (d *Driver) processFile(filename string, fn LineFunc) {
	if filename == "-" {
		d.processStream(os.Stdin, fn)
		return
	}

	f, err := os.Open(filename)
	if err != nil {
		d.Log.Error().Err(err).Str("file", filename).Msg("cannot open input file")
		return
	}
	defer f.Close()

	if err := lockFile(f); err != nil {
		d.Log.Error().Err(err).Str("file", filename).Msg("cannot lock input file")
		return
	}
	defer unlockFile(f)

	d.processStream(f, fn)
}

// processStream iterates the lines of r, writing fn's result for each.
func (d *Driver) processStream(r io.Reader, fn LineFunc) {
	w := bufio.NewWriter(d.Out)
	defer w.Flush()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		fmt.Fprintln(w, fn(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		d.Log.Error().Err(err).Msg("error reading input")
	}
}
