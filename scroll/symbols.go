package scroll

import "github.com/pkg/errors"

// symbolTable maps label names to instruction indices, built during the
// layout pass. Indices, not byte offsets: each instruction and each
// Data word occupies exactly one platter.
type symbolTable struct {
	indices map[string]int
}

func newSymbolTable() *symbolTable {
	return &symbolTable{indices: make(map[string]int)}
}

// define records name at the given instruction index. It reports an
// error if name was already defined.
func (t *symbolTable) define(name string, index int, line int) error {
	if _, exists := t.indices[name]; exists {
		return errors.Errorf("line %d: duplicate label %q", line, name)
	}
	t.indices[name] = index
	return nil
}

// resolve looks up name's instruction index.
func (t *symbolTable) resolve(name string) (int, bool) {
	idx, ok := t.indices[name]
	return idx, ok
}
