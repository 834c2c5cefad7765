package cpu_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsantos/stonemachine/cpu"
	"github.com/rsantos/stonemachine/heap"
	"github.com/rsantos/stonemachine/ioport"
	"github.com/rsantos/stonemachine/platter"
)

func assemble(t *testing.T, instructions ...platter.Instruction) []platter.Word {
	t.Helper()
	words := make([]platter.Word, len(instructions))
	for i, ins := range instructions {
		w, err := platter.Encode(ins)
		require.NoError(t, err)
		words[i] = w
	}
	return words
}

func TestHaltTerminatesWithNoOutput(t *testing.T) {
	img := assemble(t, platter.Instruction{Op: platter.OpHalt})
	h := heap.New(img, 0)
	var out bytes.Buffer
	io := ioport.New(&out, strings.NewReader(""))
	c := cpu.New()

	for !c.Halted {
		require.NoError(t, c.Step(h, io))
	}
	require.NoError(t, io.Flush())
	assert.Empty(t, out.String())
}

func TestOrthographyThenOutputEmitsOneByte(t *testing.T) {
	img := assemble(t,
		platter.Instruction{Op: platter.OpOrthography, A: 0, Immediate: 65},
		platter.Instruction{Op: platter.OpOutput, C: 0},
		platter.Instruction{Op: platter.OpHalt},
	)
	h := heap.New(img, 0)
	var out bytes.Buffer
	io := ioport.New(&out, strings.NewReader(""))
	c := cpu.New()
	for !c.Halted {
		require.NoError(t, c.Step(h, io))
	}
	require.NoError(t, io.Flush())
	assert.Equal(t, "A", out.String())
}

func TestAllocThenAbandonReturnsSameSlotTwice(t *testing.T) {
	img := assemble(t,
		platter.Instruction{Op: platter.OpOrthography, A: 2, Immediate: 3}, // R2 = size
		platter.Instruction{Op: platter.OpAlloc, B: 1, C: 2},               // R1 = alloc(R2)
		platter.Instruction{Op: platter.OpAbandon, C: 1},                   // abandon(R1)
		platter.Instruction{Op: platter.OpAlloc, B: 1, C: 2},               // R1 = alloc(R2) again
		platter.Instruction{Op: platter.OpHalt},
	)
	h := heap.New(img, 0)
	var out bytes.Buffer
	io := ioport.New(&out, strings.NewReader(""))
	c := cpu.New()

	require.NoError(t, c.Step(h, io)) // Orthography
	require.NoError(t, c.Step(h, io)) // Alloc
	firstID := c.Registers[1]
	require.NoError(t, c.Step(h, io)) // Abandon
	require.NoError(t, c.Step(h, io)) // Alloc again
	secondID := c.Registers[1]

	assert.Equal(t, firstID, secondID)
}

func TestDivisionByZeroTraps(t *testing.T) {
	img := assemble(t,
		platter.Instruction{Op: platter.OpOrthography, A: 0, Immediate: 10},
		platter.Instruction{Op: platter.OpOrthography, A: 1, Immediate: 0},
		platter.Instruction{Op: platter.OpDiv, A: 2, B: 0, C: 1},
	)
	h := heap.New(img, 0)
	var out bytes.Buffer
	io := ioport.New(&out, strings.NewReader(""))
	c := cpu.New()

	require.NoError(t, c.Step(h, io))
	require.NoError(t, c.Step(h, io))
	err := c.Step(h, io)
	assert.Error(t, err)
}

func TestInputReturnsEOFSentinel(t *testing.T) {
	img := assemble(t, platter.Instruction{Op: platter.OpInput, C: 3})
	h := heap.New(img, 0)
	var out bytes.Buffer
	io := ioport.New(&out, strings.NewReader(""))
	c := cpu.New()
	require.NoError(t, c.Step(h, io))
	assert.Equal(t, ioport.EOFSentinel, c.Registers[3])
}

func TestSwitchProgramReplacesArrayZero(t *testing.T) {
	// slot 0: a single Halt, overwritten below by Load B,C; the allocated
	// slot holds Orthography F,33 ; Halt.
	target := []platter.Word{}
	w, err := platter.Encode(platter.Instruction{Op: platter.OpOrthography, A: 5, Immediate: 33})
	require.NoError(t, err)
	target = append(target, w)
	w, err = platter.Encode(platter.Instruction{Op: platter.OpHalt})
	require.NoError(t, err)
	target = append(target, w)

	img := assemble(t, platter.Instruction{Op: platter.OpHalt})
	h := heap.New(img, 0)
	id := h.Allocate(uint32(len(target)))
	for i, w := range target {
		require.NoError(t, h.Write(id, uint32(i), w))
	}

	var out bytes.Buffer
	io := ioport.New(&out, strings.NewReader(""))
	c := cpu.New()
	c.Registers[1] = platter.Word(id) // B
	c.Registers[2] = 0                // C: new finger

	loadWord, err := platter.Encode(platter.Instruction{Op: platter.OpLoad, B: 1, C: 2})
	require.NoError(t, err)
	require.NoError(t, h.Write(0, 0, loadWord))

	require.NoError(t, c.Step(h, io)) // Load
	require.EqualValues(t, 0, c.Finger)
	require.NoError(t, c.Step(h, io)) // Orthography A=5,33 from the switched-in program
	assert.EqualValues(t, 33, c.Registers[5])
}
