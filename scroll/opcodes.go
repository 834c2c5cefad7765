package scroll

import "github.com/rsantos/stonemachine/platter"

// paramSpec names the expected kind of one operator parameter, for
// arity and kind checking at emission time.
type paramSpec int

const (
	specRegister paramSpec = iota
	specExpression
)

// opcodeDef is the emission contract for one mnemonic: its operator
// code and the ordered kinds its parameters must take.
type opcodeDef struct {
	op     platter.Op
	params []paramSpec
}

// dataPseudoOp is not a platter.Op: Data bypasses the operator field
// entirely and emits its literal value verbatim.
const dataPseudoOp = "Data"

var opcodes = map[string]opcodeDef{
	"CondMove": {platter.OpCondMove, []paramSpec{specRegister, specRegister, specRegister}},
	"Index":    {platter.OpIndex, []paramSpec{specRegister, specRegister, specRegister}},
	"Amend":    {platter.OpAmend, []paramSpec{specRegister, specRegister, specRegister}},
	"Add":      {platter.OpAdd, []paramSpec{specRegister, specRegister, specRegister}},
	"Mult":     {platter.OpMult, []paramSpec{specRegister, specRegister, specRegister}},
	"Div":      {platter.OpDiv, []paramSpec{specRegister, specRegister, specRegister}},
	"Nand":     {platter.OpNand, []paramSpec{specRegister, specRegister, specRegister}},
	"Halt":     {platter.OpHalt, nil},
	"Alloc":    {platter.OpAlloc, []paramSpec{specRegister, specRegister}},
	"Abandon":  {platter.OpAbandon, []paramSpec{specRegister}},
	"Output":   {platter.OpOutput, []paramSpec{specRegister}},
	"Input":    {platter.OpInput, []paramSpec{specRegister}},
	"Load":     {platter.OpLoad, []paramSpec{specRegister, specRegister}},
	"Orthography": {
		platter.OpOrthography,
		[]paramSpec{specRegister, specExpression},
	},
}

// isOpcode reports whether name is a recognised mnemonic, including the
// Data pseudo-op which carries no platter.Op.
func isOpcode(name string) bool {
	if name == dataPseudoOp {
		return true
	}
	_, ok := opcodes[name]
	return ok
}
