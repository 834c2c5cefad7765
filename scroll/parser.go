package scroll

import "github.com/pkg/errors"

// ParamKind tags the syntactic form a statement parameter took in the
// source text. Arity and kind validity against the opcode's contract are
// checked later, during emission. The grammar alone does not
// distinguish "register" from "expression" parameters.
type ParamKind int

const (
	// ParamRegister is a single uppercase letter A..H.
	ParamRegister ParamKind = iota
	// ParamLiteral is a decimal or 0x-prefixed integer literal.
	ParamLiteral
	// ParamChar is a single-quoted ASCII character literal.
	ParamChar
	// ParamLabel is a bare identifier referring to a label.
	ParamLabel
)

// Param is one parsed statement parameter.
type Param struct {
	Kind     ParamKind
	Register uint8  // valid when Kind == ParamRegister: 0..7
	Value    uint32 // valid when Kind == ParamLiteral or ParamChar
	Label    string // valid when Kind == ParamLabel
}

// Statement is a parsed, not-yet-resolved operator line.
type Statement struct {
	Opcode string
	Params []Param
	Line   int
}

// ItemKind tags what a scroll line turned into.
type ItemKind int

const (
	ItemBlank ItemKind = iota
	ItemLabel
	ItemStatement
)

// Item is the parser's output for one non-continuation scroll line.
type Item struct {
	Kind  ItemKind
	Label string
	Stmt  Statement
	Line  int
}

// classifyIdent turns a bare identifier token into either a register
// parameter (single letter A..H) or a label reference. A is 0, H is 7.
func classifyIdent(text string) Param {
	if len(text) == 1 && text[0] >= 'A' && text[0] <= 'H' {
		return Param{Kind: ParamRegister, Register: text[0] - 'A'}
	}
	return Param{Kind: ParamLabel, Label: text}
}

// parseLine parses one scroll line (no trailing newline) into an Item.
// lineNo is the 1-based line number used in error messages.
func parseLine(line string, lineNo int) (Item, error) {
	toks, err := lexLine(line)
	if err != nil {
		return Item{}, errors.Errorf("line %d: %v", lineNo, err)
	}
	if len(toks) == 0 {
		return Item{Kind: ItemBlank, Line: lineNo}, nil
	}

	if toks[0].kind != tokIdent {
		return Item{}, errors.Errorf("line %d: expected identifier, got %q", lineNo, toks[0].text)
	}

	if len(toks) >= 2 && toks[1].kind == tokColon {
		if len(toks) > 2 {
			return Item{}, errors.Errorf("line %d: a label definition cannot share a line with a statement", lineNo)
		}
		return Item{Kind: ItemLabel, Label: toks[0].text, Line: lineNo}, nil
	}

	if !isOpcode(toks[0].text) {
		return Item{}, errors.Errorf("line %d: unknown opcode %q", lineNo, toks[0].text)
	}

	stmt := Statement{Opcode: toks[0].text, Line: lineNo}
	rest := toks[1:]
	if len(rest) > 0 {
		wantParam := true
		for _, tok := range rest {
			if wantParam {
				p, err := paramFromToken(tok, lineNo)
				if err != nil {
					return Item{}, err
				}
				stmt.Params = append(stmt.Params, p)
				wantParam = false
			} else {
				if tok.kind != tokComma {
					return Item{}, errors.Errorf("line %d: expected ',' before %q", lineNo, tok.text)
				}
				wantParam = true
			}
		}
		if wantParam {
			return Item{}, errors.Errorf("line %d: trailing ',' with no parameter", lineNo)
		}
	}
	return Item{Kind: ItemStatement, Stmt: stmt, Line: lineNo}, nil
}

func paramFromToken(tok token, lineNo int) (Param, error) {
	switch tok.kind {
	case tokIdent:
		return classifyIdent(tok.text), nil
	case tokNumber:
		return Param{Kind: ParamLiteral, Value: tok.value}, nil
	case tokChar:
		return Param{Kind: ParamChar, Value: tok.value}, nil
	default:
		return Param{}, errors.Errorf("line %d: expected a parameter, got %q", lineNo, tok.text)
	}
}
