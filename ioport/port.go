package ioport

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/rsantos/stonemachine/platter"
)

// EOFSentinel is the value Read returns once standard input is exhausted,
// per the Universal Machine's I/O specification.
const EOFSentinel platter.Word = 0xFFFFFFFF

// ErrByteOverflow is the cause wrapped when Output is asked to write a
// value that does not fit in a single byte.
var ErrByteOverflow = errors.New("output value exceeds 0xFF")

// Port is the Universal Machine's standard I/O adapter: byte-granular,
// blocking, with no internal buffering semantics beyond what bufio gives
// for throughput.
type Port struct {
	out      *errWriter
	buf      *bufio.Writer
	in       *bufio.Reader
	teardown func()
}

// New creates a Port writing to out and reading from in. Output is
// line-buffered via bufio and must be flushed with Flush (Machine.Run
// does this when execution halts or traps).
func New(out io.Writer, in io.Reader) *Port {
	ew := newErrWriter(out)
	return &Port{
		out: ew,
		buf: bufio.NewWriter(ew),
		in:  bufio.NewReader(in),
	}
}

// SetRaw attempts to switch the port's input source to unbuffered raw tty
// mode (see term_unix.go / term_windows.go). On success, teardown restores
// the terminal's previous settings and must be called once execution
// ends; it is a no-op if raw mode could not be enabled.
func (p *Port) SetRaw(fd uintptr) error {
	teardown, err := setRawIO(fd)
	if err != nil {
		return errors.Wrap(err, "enable raw stdin")
	}
	p.teardown = teardown
	return nil
}

// Close restores any raw terminal settings applied by SetRaw.
func (p *Port) Close() {
	if p.teardown != nil {
		p.teardown()
		p.teardown = nil
	}
}

// Write implements the Output operator: it is fatal if v does not fit in a
// single byte.
func (p *Port) Write(v platter.Word) error {
	if v > 0xFF {
		return errors.Wrapf(ErrByteOverflow, "value %d", v)
	}
	if _, err := p.buf.Write([]byte{byte(v)}); err != nil {
		return errors.Wrap(err, "output")
	}
	if v == '\n' {
		return errors.Wrap(p.buf.Flush(), "output")
	}
	return nil
}

// Read implements the Input operator: it returns the next byte from
// standard input, or EOFSentinel once the stream is exhausted.
func (p *Port) Read() (platter.Word, error) {
	b, err := p.in.ReadByte()
	if err != nil {
		if err == io.EOF {
			return EOFSentinel, nil
		}
		return 0, errors.Wrap(err, "input")
	}
	return platter.Word(b), nil
}

// Flush flushes any buffered output. It must be called on Halt and on
// abnormal exit so the last bytes written via Write reach the stream.
func (p *Port) Flush() error {
	return errors.Wrap(p.buf.Flush(), "flush output")
}
