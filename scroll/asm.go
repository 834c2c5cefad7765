package scroll

import (
	"bufio"
	"io"

	"github.com/rsantos/stonemachine/platter"
)

// DefaultMaxErrors bounds how many errors Assemble accumulates into an
// ErrBatch before giving up on a scroll.
const DefaultMaxErrors = 32

// Assemble reads scroll source from r and returns the emitted stone as
// a slice of platters. Assemble performs no file I/O of its own: the
// caller owns the destination path and is responsible for deleting a
// partially written stone file on error. Assemble simply never returns
// a partial result, since emission only happens after both passes
// succeed.
//
// maxErrors caps how many ErrItems are collected before pass 2 stops
// early; pass 0 or a negative value selects DefaultMaxErrors.
func Assemble(r io.Reader, maxErrors int) ([]platter.Word, error) {
	if maxErrors <= 0 {
		maxErrors = DefaultMaxErrors
	}

	items, batch := parseAll(r, maxErrors)
	if len(batch) > 0 {
		return nil, batch
	}

	syms := newSymbolTable()
	var statements []Statement
	index := 0
	for _, item := range items {
		switch item.Kind {
		case ItemLabel:
			if err := syms.define(item.Label, index, item.Line); err != nil {
				batch = appendErr(batch, item.Line, err.Error(), maxErrors)
			}
		case ItemStatement:
			statements = append(statements, item.Stmt)
			index++
		}
	}
	if len(batch) > 0 {
		return nil, batch
	}

	words := make([]platter.Word, 0, len(statements))
	for _, stmt := range statements {
		w, err := emit(stmt, syms)
		if err != nil {
			batch = appendErr(batch, stmt.Line, err.Error(), maxErrors)
			if len(batch) >= maxErrors {
				break
			}
			continue
		}
		words = append(words, w)
	}
	if len(batch) > 0 {
		return nil, batch
	}
	return words, nil
}

// parseAll lexes and parses every line of r, collecting parse errors
// into a capped batch instead of stopping at the first one.
func parseAll(r io.Reader, maxErrors int) ([]Item, ErrBatch) {
	var items []Item
	var batch ErrBatch

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		item, err := parseLine(scanner.Text(), lineNo)
		if err != nil {
			batch = appendErr(batch, lineNo, err.Error(), maxErrors)
			if len(batch) >= maxErrors {
				break
			}
			continue
		}
		items = append(items, item)
	}
	return items, batch
}

func appendErr(batch ErrBatch, line int, msg string, maxErrors int) ErrBatch {
	if len(batch) >= maxErrors {
		return batch
	}
	return append(batch, ErrItem{Line: line, Msg: msg})
}
