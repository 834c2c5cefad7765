package scroll

import (
	"fmt"
	"strings"
)

// ErrItem is a single assembly error, tied to the 1-based scroll line it
// occurred on.
type ErrItem struct {
	Line int
	Msg  string
}

func (e ErrItem) String() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ErrBatch collects assembly errors: parsing and emission continue past
// the first error, up to a cap, so a --verbose caller can report
// everything wrong with a scroll in one pass. The default CLI output
// only surfaces the first entry, formatted as "Error on line <N>.".
type ErrBatch []ErrItem

func (e ErrBatch) Error() string {
	lines := make([]string, len(e))
	for i, item := range e {
		lines[i] = item.String()
	}
	return strings.Join(lines, "\n")
}

// FirstLine reports the line number of the first collected error,
// matching the CLI's "Error on line <N>." contract.
func (e ErrBatch) FirstLine() int {
	if len(e) == 0 {
		return 0
	}
	return e[0].Line
}
