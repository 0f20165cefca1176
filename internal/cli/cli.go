// Package cli holds what the huffzip subcommands share: file naming, output and logging.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const Extension = ".hz"

// SetupLogging sends human readable logs to stderr, at debug level if verbose.
func SetupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// OutputName constructs an output file name from the input name.
func OutputName(in string, decompress bool) string {
	if !decompress {
		return in + Extension
	}
	if strings.HasSuffix(in, Extension) && len(in) > len(Extension) {
		return in[:len(in)-len(Extension)]
	}
	return in + ".decompressed"
}

// OutputFlags are the output options common to compress and decompress.
type OutputFlags struct {
	Output string
	NoOut  bool
	Report bool
}

// Emit writes out to the requested destination and reports the compression ratio if asked.
func (f *OutputFlags) Emit(w io.Writer, in string, out []byte, decompress bool, lenC, lenD int) error {
	if !f.NoOut {
		path := f.Output
		if path == "" {
			path = OutputName(in, decompress)
		}
		if err := os.WriteFile(path, out, 0600); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}
		log.Debug().Str("path", path).Int("bytes", len(out)).Msg("output written")
	}

	if f.Report {
		return ReportRatio(w, lenC, lenD)
	}
	return nil
}

// ReportRatio prints the compressed and decompressed sizes and their ratio.
func ReportRatio(w io.Writer, lenC, lenD int) error {
	ratioPct := 0
	if lenD != 0 {
		ratioPct = lenC * 100 / lenD
	}
	_, err := fmt.Fprintf(w, "%dB -> %dB compression ratio %d.%02d\n", lenD, lenC, ratioPct/100, ratioPct%100)
	return err
}

// ReadInput reads a whole input file.
func ReadInput(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	log.Debug().Str("path", path).Int("bytes", len(d)).Msg("input read")
	return d, nil
}
