//go:build windows

package ioport

import "github.com/pkg/errors"

// setRawIO is not implemented on Windows; --raw is silently unavailable
// there and Input falls back to buffered reads, which is sufficient for
// non-interactive (piped/file) stdin.
func setRawIO(fd uintptr) (func(), error) {
	return nil, errors.New("raw stdin not supported on windows")
}
