// Command ahenc is the adaptive-Huffman encoder driver.
//
// It reads its input line by line, from stdin or each named file in
// turn, and for each line emits one line of '0'/'1' output, encoding
// one byte at a time with a fresh model per line (so the decoder's
// per-line model reset keeps both sides in lockstep across a
// multi-line file).
package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"adhuff/internal/driver"
	"adhuff/pkg/ahtree"
)

func main() {
	var split bool
	pflag.BoolVarP(&split, "split", "s", false, "cosmetically group emitted bits into 8-bit chunks separated by spaces")
	pflag.Parse()

	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	d := driver.New(os.Stdout, log)
	d.Run(pflag.Args(), func(line string) string {
		return encodeLine(line, split)
	})
}

func encodeLine(line string, split bool) string {
	model := ahtree.NewModel()

	var sb strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		sb.WriteString(model.Encode(c))
		model.UpdateModel(c)
	}

	out := sb.String()
	if split {
		out = groupBits(out, 8)
	}
	return out
}

// groupBits is purely cosmetic: it inserts a space every size characters
// so a human reading the encoder's output can see byte boundaries. The
// decoder ignores these separators entirely.
func groupBits(bits string, size int) string {
	if len(bits) == 0 {
		return bits
	}
	var sb strings.Builder
	for i := 0; i < len(bits); i += size {
		if i > 0 {
			sb.WriteByte(' ')
		}
		end := i + size
		if end > len(bits) {
			end = len(bits)
		}
		sb.WriteString(bits[i:end])
	}
	return sb.String()
}
