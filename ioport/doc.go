// Package ioport implements the Universal Machine's byte-granular I/O
// port: Output writes a single byte to standard output, Input reads a
// single byte from standard input and returns the UM EOF sentinel
// (0xFFFFFFFF) once the stream is exhausted.
package ioport
