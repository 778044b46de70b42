// Package logging provides a file-backed debug logger. The editor owns the
// TTY while running, so stdout/stderr are never available for diagnostics
// until shutdown; this is the only place events can go in the meantime.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger writing newline-delimited JSON to path. An
// empty path yields a no-op logger (zerolog.Nop()) so call sites never need
// to check whether logging is enabled.
func New(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	logger := zerolog.New(io.Writer(f)).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}
