package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans a single write out to all the writers, e.g. logs to
// STDOUT and to a rotated log file. A write counts as done if at least one
// writer took it; errors of all failed writers are combined.
type CombinedWriter struct {
	Writers []io.Writer
	// LastErr holds the combined error of the latest write, nil if it went through everywhere.
	LastErr error
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer{}, writers...),
	}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	delivered := false
	for _, w := range cw.Writers {
		n, werr := w.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		delivered = true
	}

	cw.LastErr = err
	if !delivered {
		return 0, err
	}
	return len(p), err
}
