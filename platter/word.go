package platter

import (
	"fmt"

	"github.com/pkg/errors"
)

// Word is a raw 32-bit platter as it appears in a stone file.
type Word uint32

// Op identifies one of the fourteen Universal Machine operators.
type Op uint8

// Operator codes, per the instruction encoding table.
const (
	OpCondMove Op = iota
	OpIndex
	OpAmend
	OpAdd
	OpMult
	OpDiv
	OpNand
	OpHalt
	OpAlloc
	OpAbandon
	OpOutput
	OpInput
	OpLoad
	OpOrthography
)

// ImmediateBits is the width of Orthography's immediate field.
const ImmediateBits = 25

// MaxImmediate is the largest value Orthography's immediate field can hold.
const MaxImmediate = 1<<ImmediateBits - 1

var opNames = [...]string{
	OpCondMove:    "CondMove",
	OpIndex:       "Index",
	OpAmend:       "Amend",
	OpAdd:         "Add",
	OpMult:        "Mult",
	OpDiv:         "Div",
	OpNand:        "Nand",
	OpHalt:        "Halt",
	OpAlloc:       "Alloc",
	OpAbandon:     "Abandon",
	OpOutput:      "Output",
	OpInput:       "Input",
	OpLoad:        "Load",
	OpOrthography: "Orthography",
}

// String returns the canonical mnemonic for op, or "Op(n)" for an operator
// code outside 0..13.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", op)
}

// Instruction is the decoded form of a platter. Only the fields relevant to
// Op are meaningful: A, B, C hold register indices (0..7); for
// OpOrthography, A holds the destination register and Immediate holds the
// 25-bit literal.
type Instruction struct {
	Op        Op
	A, B, C   uint8
	Immediate uint32
}

// Encode packs ins into its 32-bit platter representation. It fails if a
// register index is out of range (0..7) or if an Orthography immediate
// does not fit in 25 bits.
func Encode(ins Instruction) (Word, error) {
	if ins.Op == OpOrthography {
		if ins.A > 7 {
			return 0, errors.Errorf("register index %d out of range", ins.A)
		}
		if ins.Immediate > MaxImmediate {
			return 0, errors.Errorf("immediate %d exceeds %d bits", ins.Immediate, ImmediateBits)
		}
		w := Word(OpOrthography)<<28 | Word(ins.A)<<25 | Word(ins.Immediate)
		return w, nil
	}
	if ins.Op > OpOrthography {
		return 0, errors.Errorf("invalid operator %d", ins.Op)
	}
	for _, r := range [...]uint8{ins.A, ins.B, ins.C} {
		if r > 7 {
			return 0, errors.Errorf("register index %d out of range", r)
		}
	}
	w := Word(ins.Op)<<28 | Word(ins.A)<<6 | Word(ins.B)<<3 | Word(ins.C)
	return w, nil
}

// Decode unpacks a 32-bit platter into its Instruction form. It fails for
// the two reserved operator codes (14, 15); the Universal Machine traps on
// them at runtime.
func Decode(w Word) (Instruction, error) {
	op := Op(w >> 28)
	if op == OpOrthography {
		return Instruction{
			Op:        OpOrthography,
			A:         uint8((w >> 25) & 0x7),
			Immediate: uint32(w & MaxImmediate),
		}, nil
	}
	if op > OpOrthography {
		return Instruction{}, errors.Errorf("invalid operator %d", op)
	}
	return Instruction{
		Op: op,
		A:  uint8((w >> 6) & 0x7),
		B:  uint8((w >> 3) & 0x7),
		C:  uint8(w & 0x7),
	}, nil
}
