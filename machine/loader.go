package machine

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/rsantos/stonemachine/platter"
)

// LoadStone reads a stone file from r: a flat sequence of big-endian
// 32-bit platters with no header or padding. A trailing partial word
// indicates corruption and is rejected, per the stone file format.
func LoadStone(r io.Reader) ([]platter.Word, error) {
	var words []platter.Word
	buf := make([]byte, 4)
	for {
		n, err := io.ReadFull(r, buf)
		switch err {
		case nil:
			words = append(words, platter.Word(binary.BigEndian.Uint32(buf)))
		case io.EOF:
			return words, nil
		case io.ErrUnexpectedEOF:
			return nil, errors.Errorf("corrupt stone: trailing partial word (%d of 4 bytes)", n)
		default:
			return nil, errors.Wrap(err, "read stone")
		}
	}
}

// WriteStone writes words to w as a flat sequence of big-endian 32-bit
// platters, the mirror image of LoadStone.
func WriteStone(w io.Writer, words []platter.Word) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 4)
	for _, word := range words {
		binary.BigEndian.PutUint32(buf, uint32(word))
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "write stone")
		}
	}
	return errors.Wrap(bw.Flush(), "flush stone")
}
