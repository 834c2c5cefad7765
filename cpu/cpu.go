package cpu

import (
	"github.com/pkg/errors"

	"github.com/rsantos/stonemachine/platter"
)

// Memory is the subset of heap.Heap's behaviour the CPU needs to execute
// platter-addressing operators. Accepting an interface here keeps the CPU
// decoupled from the heap's representation.
type Memory interface {
	Read(id, offset uint32) (platter.Word, error)
	Write(id, offset uint32, value platter.Word) error
	Allocate(size uint32) uint32
	Abandon(id uint32) error
	SwitchProgram(id uint32) error
}

// IO is the subset of ioport.Port's behaviour the CPU needs for the
// Output and Input operators.
type IO interface {
	Write(v platter.Word) error
	Read() (platter.Word, error)
}

// CPU is the Universal Machine's register file, execution finger, and
// dispatch loop.
type CPU struct {
	Registers [8]platter.Word
	Finger    uint32
	Halted    bool
}

// New returns a CPU with all registers zeroed and the finger at 0, per
// the Universal Machine's reset state.
func New() *CPU {
	return &CPU{}
}

// Step fetches, decodes, and executes one instruction from mem's slot 0 at
// the current finger, borrowing mem and io for the duration of the call.
// It is a no-op once Halted is set.
func (c *CPU) Step(mem Memory, io IO) error {
	if c.Halted {
		return nil
	}

	word, err := mem.Read(0, c.Finger)
	if err != nil {
		return trap(platter.OpHalt, c.Finger, errors.Wrap(err, "fetch"))
	}
	finger := c.Finger
	c.Finger++

	ins, err := platter.Decode(word)
	if err != nil {
		return trap(platter.Op(word>>28), finger, err)
	}

	switch ins.Op {
	case platter.OpCondMove:
		if c.Registers[ins.C] != 0 {
			c.Registers[ins.A] = c.Registers[ins.B]
		}
	case platter.OpIndex:
		v, err := mem.Read(uint32(c.Registers[ins.B]), uint32(c.Registers[ins.C]))
		if err != nil {
			return trap(ins.Op, finger, err)
		}
		c.Registers[ins.A] = v
	case platter.OpAmend:
		if err := mem.Write(uint32(c.Registers[ins.A]), uint32(c.Registers[ins.B]), c.Registers[ins.C]); err != nil {
			return trap(ins.Op, finger, err)
		}
	case platter.OpAdd:
		c.Registers[ins.A] = c.Registers[ins.B] + c.Registers[ins.C]
	case platter.OpMult:
		c.Registers[ins.A] = c.Registers[ins.B] * c.Registers[ins.C]
	case platter.OpDiv:
		if c.Registers[ins.C] == 0 {
			return trap(ins.Op, finger, errors.New("division by zero"))
		}
		c.Registers[ins.A] = c.Registers[ins.B] / c.Registers[ins.C]
	case platter.OpNand:
		c.Registers[ins.A] = ^(c.Registers[ins.B] & c.Registers[ins.C])
	case platter.OpHalt:
		c.Halted = true
	case platter.OpAlloc:
		c.Registers[ins.B] = platter.Word(mem.Allocate(uint32(c.Registers[ins.C])))
	case platter.OpAbandon:
		if err := mem.Abandon(uint32(c.Registers[ins.C])); err != nil {
			return trap(ins.Op, finger, err)
		}
	case platter.OpOutput:
		if err := io.Write(c.Registers[ins.C]); err != nil {
			return trap(ins.Op, finger, err)
		}
	case platter.OpInput:
		v, err := io.Read()
		if err != nil {
			return trap(ins.Op, finger, err)
		}
		c.Registers[ins.C] = v
	case platter.OpLoad:
		if err := mem.SwitchProgram(uint32(c.Registers[ins.B])); err != nil {
			return trap(ins.Op, finger, err)
		}
		c.Finger = uint32(c.Registers[ins.C])
	case platter.OpOrthography:
		c.Registers[ins.A] = platter.Word(ins.Immediate)
	default:
		return trap(ins.Op, finger, errors.New("invalid operator"))
	}
	return nil
}
