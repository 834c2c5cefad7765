// Package diag holds the diagnostic formatting shared by cmd/carve and
// cmd/run: terse default messages, and a fuller --verbose cause chain
// printed with pkg/errors' %+v.
package diag

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/rsantos/stonemachine/scroll"
)

// AssemblyFailure writes the carver's error contract to w: "Error on
// line <N>." by default, or the full collected batch when verbose.
func AssemblyFailure(w io.Writer, err error, verbose bool) {
	var batch scroll.ErrBatch
	if errors.As(err, &batch) {
		if verbose {
			fmt.Fprintln(w, batch.Error())
			return
		}
		fmt.Fprintf(w, "Error on line %d.\n", batch.FirstLine())
		return
	}
	if verbose {
		fmt.Fprintf(w, "%+v\n", err)
		return
	}
	fmt.Fprintln(w, err)
}

// RunFailure writes the runner's error contract to w: "The machine
// failed" by default, or the full cause chain when verbose.
func RunFailure(w io.Writer, err error, verbose bool) {
	if verbose {
		fmt.Fprintf(w, "%+v\n", err)
		return
	}
	fmt.Fprintln(w, "The machine failed")
}
