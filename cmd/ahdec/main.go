// Command ahdec is the adaptive-Huffman decoder driver.
//
// It reads its input line by line, from stdin or each named file in
// turn, constructing a fresh model for each line and decoding the
// whole line in one Decode call.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"adhuff/internal/driver"
	"adhuff/pkg/ahtree"
)

func main() {
	var split bool
	pflag.BoolVarP(&split, "split", "s", false, "accepted for symmetry with the encoder; has no effect since non-bit characters are already treated as navigation no-ops")
	pflag.Parse()
	_ = split

	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	d := driver.New(os.Stdout, log)
	d.Run(pflag.Args(), func(line string) string {
		model := ahtree.NewModel()
		return string(model.Decode(line))
	})
}
