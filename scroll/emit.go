package scroll

import (
	"github.com/pkg/errors"

	"github.com/rsantos/stonemachine/platter"
)

// emit resolves stmt's parameters against syms and encodes it to a
// platter, enforcing each opcode's arity and parameter-kind contract.
func emit(stmt Statement, syms *symbolTable) (platter.Word, error) {
	if stmt.Opcode == dataPseudoOp {
		return emitData(stmt, syms)
	}

	def, ok := opcodes[stmt.Opcode]
	if !ok {
		return 0, errors.Errorf("unknown opcode %q", stmt.Opcode)
	}
	if len(stmt.Params) != len(def.params) {
		return 0, errors.Errorf("%s expects %d parameter(s), got %d", stmt.Opcode, len(def.params), len(stmt.Params))
	}

	ins := platter.Instruction{Op: def.op}
	regs := make([]uint8, 0, 3)
	for i, p := range stmt.Params {
		switch def.params[i] {
		case specRegister:
			if p.Kind != ParamRegister {
				return 0, errors.Errorf("%s: parameter %d must be a register", stmt.Opcode, i+1)
			}
			regs = append(regs, p.Register)
		case specExpression:
			v, err := resolveExpression(p, syms)
			if err != nil {
				return 0, errors.Wrapf(err, "%s", stmt.Opcode)
			}
			ins.Immediate = v
		}
	}

	switch def.op {
	case platter.OpOrthography:
		ins.A = regs[0]
	default:
		switch len(regs) {
		case 3:
			ins.A, ins.B, ins.C = regs[0], regs[1], regs[2]
		case 2:
			ins.B, ins.C = regs[0], regs[1]
		case 1:
			ins.C = regs[0]
		}
	}

	return platter.Encode(ins)
}

func emitData(stmt Statement, syms *symbolTable) (platter.Word, error) {
	if len(stmt.Params) != 1 {
		return 0, errors.Errorf("Data expects 1 parameter, got %d", len(stmt.Params))
	}
	v, err := resolveExpression(stmt.Params[0], syms)
	if err != nil {
		return 0, errors.Wrap(err, "Data")
	}
	return platter.Word(v), nil
}

// resolveExpression turns a ParamLiteral, ParamChar, or ParamLabel
// into its 32-bit value. A ParamRegister here is a kind error: only
// Orthography and Data take expression parameters, and a register
// token (a bare A..H identifier) is never a valid expression.
func resolveExpression(p Param, syms *symbolTable) (uint32, error) {
	switch p.Kind {
	case ParamLiteral, ParamChar:
		return p.Value, nil
	case ParamLabel:
		idx, ok := syms.resolve(p.Label)
		if !ok {
			return 0, errors.Errorf("undefined label %q", p.Label)
		}
		return uint32(idx), nil
	default:
		return 0, errors.New("expected an expression, got a register")
	}
}
