// Package cpu implements the Universal Machine's CPU core: eight
// registers, the execution finger, and the dispatch loop over the
// fourteen operators.
//
// A CPU borrows a *heap.Heap and an *ioport.Port for the duration of a
// single Step call; it owns neither. The owning driver (package machine)
// holds both and loops Step until halt or a runtime trap.
package cpu
