// Package scroll implements the carver's front end: a line-oriented
// recursive-descent lexer and parser that turn scroll text into tagged
// items (label definitions, statements, blanks), a symbol table, and the
// two-pass driver (Assemble) that resolves labels and emits a stone.
//
// Canonical label syntax is a suffix colon on a line by itself:
//
//	L:
//	Halt
//
// A label sharing a line with a statement (e.g. "L: Halt") is rejected;
// the prefix ":name" and same-line forms seen in historical scrolls are
// not accepted.
//
// The mnemonic for operator 13 is spelled "Orthography"; the "Ortography"
// misspelling found in some historical sources is not accepted.
package scroll
