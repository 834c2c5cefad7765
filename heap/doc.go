// Package heap implements the Universal Machine's platter heap: a
// collection of variable-length platter arrays addressed by stable
// identifiers, with vacant-slot reuse.
//
// Slot 0 always holds the running program and is never vacant while a
// machine owns the heap. Identifiers of abandoned slots may be handed back
// out by a later Allocate, per the lowest-vacant-index policy.
package heap
