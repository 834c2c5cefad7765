// Package platter implements the Universal Machine's 32-bit instruction
// encoding: the word layout shared by the carver (assembler) and the
// runner (interpreter).
//
// A platter is a raw 32-bit word. An Instruction is its decoded form.
// Encode and Decode are pure and have no knowledge of scrolls, stones,
// or running machines.
package platter
