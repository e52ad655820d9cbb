package logging

import (
	"io"

	"go.uber.org/multierr"
)

// teeWriter writes every log line to all writers. A failing writer (full disk)
// must not silence stdout, so its error is collected and the rest still get the line.
type teeWriter struct {
	writers []io.Writer
}

func (tw *teeWriter) Write(p []byte) (int, error) {
	var errs error
	for _, w := range tw.writers {
		if _, err := w.Write(p); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return 0, errs
	}
	return len(p), nil
}
