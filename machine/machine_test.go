package machine_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rsantos/stonemachine/machine"
	"github.com/rsantos/stonemachine/platter"
)

func enc(t *testing.T, instructions ...platter.Instruction) []platter.Word {
	t.Helper()
	words := make([]platter.Word, len(instructions))
	for i, ins := range instructions {
		w, err := platter.Encode(ins)
		require.NoError(t, err)
		words[i] = w
	}
	return words
}

func runStone(t *testing.T, program []platter.Word, stdin string) string {
	t.Helper()
	var out bytes.Buffer
	m := machine.New(program, &out, strings.NewReader(stdin), 0)
	require.NoError(t, m.Run())
	return out.String()
}

// scenario A: Orthography A,72 ; Output A ; Orthography A,105 ; Output A ; Halt => "Hi"
func TestScenarioAHi(t *testing.T) {
	prog := enc(t,
		platter.Instruction{Op: platter.OpOrthography, A: 0, Immediate: 72},
		platter.Instruction{Op: platter.OpOutput, C: 0},
		platter.Instruction{Op: platter.OpOrthography, A: 0, Immediate: 105},
		platter.Instruction{Op: platter.OpOutput, C: 0},
		platter.Instruction{Op: platter.OpHalt},
	)
	require.Equal(t, "Hi", runStone(t, prog, ""))
}

// scenario B: A=1, B=2, C=A+B, D=51, C=C+D, Output C, Halt => "6" (0x36)
func TestScenarioBDigitSix(t *testing.T) {
	prog := enc(t,
		platter.Instruction{Op: platter.OpOrthography, A: 0, Immediate: 1},
		platter.Instruction{Op: platter.OpOrthography, A: 1, Immediate: 2},
		platter.Instruction{Op: platter.OpAdd, A: 2, B: 0, C: 1},
		platter.Instruction{Op: platter.OpOrthography, A: 3, Immediate: 51},
		platter.Instruction{Op: platter.OpAdd, A: 2, B: 2, C: 3},
		platter.Instruction{Op: platter.OpOutput, C: 2},
		platter.Instruction{Op: platter.OpHalt},
	)
	require.Equal(t, "6", runStone(t, prog, ""))
}

// scenario C: Alloc a 2-word array, store 'O' and 'K', Index both, Output each, Halt => "OK"
func TestScenarioCAllocIndexOutput(t *testing.T) {
	prog := enc(t,
		platter.Instruction{Op: platter.OpOrthography, A: 7, Immediate: 2}, // R7 = size
		platter.Instruction{Op: platter.OpAlloc, B: 6, C: 7},               // R6 = array id
		platter.Instruction{Op: platter.OpOrthography, A: 0, Immediate: 0}, // offset 0
		platter.Instruction{Op: platter.OpOrthography, A: 1, Immediate: 'O'},
		platter.Instruction{Op: platter.OpAmend, A: 6, B: 0, C: 1},
		platter.Instruction{Op: platter.OpOrthography, A: 0, Immediate: 1}, // offset 1
		platter.Instruction{Op: platter.OpOrthography, A: 1, Immediate: 'K'},
		platter.Instruction{Op: platter.OpAmend, A: 6, B: 0, C: 1},
		platter.Instruction{Op: platter.OpOrthography, A: 0, Immediate: 0},
		platter.Instruction{Op: platter.OpIndex, A: 2, B: 6, C: 0},
		platter.Instruction{Op: platter.OpOutput, C: 2},
		platter.Instruction{Op: platter.OpOrthography, A: 0, Immediate: 1},
		platter.Instruction{Op: platter.OpIndex, A: 2, B: 6, C: 0},
		platter.Instruction{Op: platter.OpOutput, C: 2},
		platter.Instruction{Op: platter.OpHalt},
	)
	require.Equal(t, "OK", runStone(t, prog, ""))
}

// scenario D: a second array holds "Orthography A,33 ; Output A ; Halt",
// raw Data words embedded directly the way the assembler's Data statement
// would emit them (Data bypasses the 25-bit Orthography immediate limit
// entirely, so this is written straight into the target slot rather than
// built up instruction-by-instruction). Load from it at offset 0 => the
// machine continues execution in the new array and outputs "!".
func TestScenarioDLoadSwitchesProgram(t *testing.T) {
	target := enc(t,
		platter.Instruction{Op: platter.OpOrthography, A: 0, Immediate: 33},
		platter.Instruction{Op: platter.OpOutput, C: 0},
		platter.Instruction{Op: platter.OpHalt},
	)

	prog := enc(t, platter.Instruction{Op: platter.OpHalt})
	var out bytes.Buffer
	m := machine.New(prog, &out, strings.NewReader(""), 0)

	id := m.Heap.Allocate(uint32(len(target)))
	for i, w := range target {
		require.NoError(t, m.Heap.Write(id, uint32(i), w))
	}

	m.CPU.Registers[1] = platter.Word(id) // B: source slot
	m.CPU.Registers[2] = 0                // C: new finger
	load, err := platter.Encode(platter.Instruction{Op: platter.OpLoad, B: 1, C: 2})
	require.NoError(t, err)
	require.NoError(t, m.Heap.Write(0, 0, load))

	require.NoError(t, m.Run())
	require.Equal(t, "!", out.String())
}

func TestLoadStoneRejectsTrailingPartialWord(t *testing.T) {
	_, err := machine.LoadStone(bytes.NewReader([]byte{0, 1, 2}))
	require.Error(t, err)
}

func TestLoadStoneAcceptsExactMultipleOfFour(t *testing.T) {
	words, err := machine.LoadStone(bytes.NewReader([]byte{0, 0, 0, 7, 0, 0, 0, 8}))
	require.NoError(t, err)
	require.Equal(t, []platter.Word{7, 8}, words)
}

func TestWriteStoneThenLoadStoneRoundTrips(t *testing.T) {
	want := []platter.Word{0x70000000, 0xDEADBEEF, 1}
	var buf bytes.Buffer
	require.NoError(t, machine.WriteStone(&buf, want))
	got, err := machine.LoadStone(&buf)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
