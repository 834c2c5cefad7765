package ioport

import (
	"io"

	"github.com/pkg/errors"
)

// errWriter latches the first write error and keeps returning it on every
// subsequent write instead of retrying (and re-failing) a syscall per
// byte.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	if err != nil {
		w.err = errors.Wrap(err, "write failed")
	}
	return n, w.err
}

func newErrWriter(w io.Writer) *errWriter {
	return &errWriter{w: w}
}
