package heap

import (
	"github.com/pkg/errors"

	"github.com/rsantos/stonemachine/platter"
)

// DefaultCapacity is the number of slots to pre-allocate in the slot
// table before the first growth, tunable via config.Config.
const DefaultCapacity = 64

// Heap is the Universal Machine's platter store: a sequence of slots, each
// either vacant (nil) or owning a platter array. Slot 0 is the program
// array and is always occupied while a Heap is in use.
type Heap struct {
	slots  []*[]platter.Word
	vacant vacancies
}

// New creates a Heap whose slot 0 holds program, a copy of the supplied
// platters. capacity pre-sizes the slot table; it is purely a performance
// hint, matching config.Config.Heap.InitialCapacity.
func New(program []platter.Word, capacity int) *Heap {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	slots := make([]*[]platter.Word, 1, capacity)
	arr := make([]platter.Word, len(program))
	copy(arr, program)
	slots[0] = &arr
	return &Heap{slots: slots}
}

// Allocate returns the lowest-index vacant slot, initialised to size zero
// platters, appending a new slot if none is vacant.
func (h *Heap) Allocate(size uint32) uint32 {
	arr := make([]platter.Word, size)
	if len(h.vacant) > 0 {
		id := h.vacant.pop()
		h.slots[id] = &arr
		return uint32(id)
	}
	h.slots = append(h.slots, &arr)
	return uint32(len(h.slots) - 1)
}

// Abandon marks id vacant and releases its backing array. It is fatal to
// abandon slot 0 or an already-vacant slot.
func (h *Heap) Abandon(id uint32) error {
	if id == 0 {
		return errors.Wrap(ErrZeroSlot, "abandon")
	}
	if int(id) >= len(h.slots) || h.slots[id] == nil {
		return errors.Wrapf(ErrVacantSlot, "abandon slot %d", id)
	}
	h.slots[id] = nil
	h.vacant.push(int(id))
	return nil
}

// Read returns the platter at offset in slot id.
func (h *Heap) Read(id, offset uint32) (platter.Word, error) {
	arr, err := h.array(id)
	if err != nil {
		return 0, errors.Wrap(err, "read")
	}
	if int(offset) >= len(*arr) {
		return 0, errors.Wrapf(ErrOutOfBounds, "read slot %d offset %d (len %d)", id, offset, len(*arr))
	}
	return (*arr)[offset], nil
}

// Write stores value at offset in slot id.
func (h *Heap) Write(id, offset uint32, value platter.Word) error {
	arr, err := h.array(id)
	if err != nil {
		return errors.Wrap(err, "write")
	}
	if int(offset) >= len(*arr) {
		return errors.Wrapf(ErrOutOfBounds, "write slot %d offset %d (len %d)", id, offset, len(*arr))
	}
	(*arr)[offset] = value
	return nil
}

// SwitchProgram replaces slot 0's array with a deep copy of slot id's
// array. If id is 0, it is a no-op: slot 0 already holds the running
// program. The source slot remains allocated and unchanged.
func (h *Heap) SwitchProgram(id uint32) error {
	if id == 0 {
		return nil
	}
	arr, err := h.array(id)
	if err != nil {
		return errors.Wrap(err, "switch_program")
	}
	cp := make([]platter.Word, len(*arr))
	copy(cp, *arr)
	h.slots[0] = &cp
	return nil
}

func (h *Heap) array(id uint32) (*[]platter.Word, error) {
	if int(id) >= len(h.slots) || h.slots[id] == nil {
		return nil, errors.Wrapf(ErrVacantSlot, "slot %d", id)
	}
	return h.slots[id], nil
}
