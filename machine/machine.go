package machine

import (
	"io"

	"github.com/pkg/errors"

	"github.com/rsantos/stonemachine/cpu"
	"github.com/rsantos/stonemachine/heap"
	"github.com/rsantos/stonemachine/ioport"
	"github.com/rsantos/stonemachine/platter"
)

// Machine wires a Heap, an I/O Port and a CPU together for the duration of
// one run. It is the sole owner of all three; the CPU only ever borrows
// them for a single Step.
type Machine struct {
	Heap     *heap.Heap
	IO       *ioport.Port
	CPU      *cpu.CPU
	insCount uint64
}

// New creates a Machine whose array zero is program. capacity pre-sizes
// the heap's slot table (see config.Config.Heap.InitialCapacity); 0 picks
// the package default.
func New(program []platter.Word, out io.Writer, in io.Reader, capacity int) *Machine {
	return &Machine{
		Heap: heap.New(program, capacity),
		IO:   ioport.New(out, in),
		CPU:  cpu.New(),
	}
}

// Run steps the CPU until it halts or a runtime trap occurs. Output is
// flushed before returning, whether or not an error occurred, so that any
// bytes written before a trap still reach the stream.
func (m *Machine) Run() error {
	for !m.CPU.Halted {
		if err := m.CPU.Step(m.Heap, m.IO); err != nil {
			_ = m.IO.Flush()
			return errors.Wrap(err, "run")
		}
		m.insCount++
	}
	return m.IO.Flush()
}

// InstructionCount returns the number of instructions executed so far,
// for the optional --stats diagnostic.
func (m *Machine) InstructionCount() uint64 {
	return m.insCount
}
