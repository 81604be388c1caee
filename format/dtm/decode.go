package dtm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ugparu/dtminfo/utils"
)

// cursor is the one read position over the source. It is owned by a single
// Decode call.
type cursor struct {
	r       io.Reader
	offset  int
	scratch [maxFieldWidth]byte
}

// next reads exactly width bytes for the named field.
func (c *cursor) next(name string, width int) ([]byte, error) {
	b := c.scratch[:width]
	n, err := io.ReadFull(c.r, b)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &TruncatedInputError{Field: name, Offset: c.offset, Want: width, Got: n}
		}
		return nil, fmt.Errorf("dtm: read %s at offset %d: %w", name, c.offset, err)
	}
	c.offset += width
	return b, nil
}

// Decode reads the movie header from the start of r. Exactly HeaderSize bytes
// are consumed on success; anything after the header is left unread. No
// partially decoded header is ever returned.
func Decode(r io.Reader) (Header, error) {
	c := &cursor{r: r}

	magic, err := c.next("magic", MagicSize)
	if err != nil {
		return Header{}, err
	}
	if !bytes.Equal(magic, Magic[:]) {
		e := &InvalidMagicError{}
		copy(e.Magic[:], magic)
		return Header{}, e
	}

	var h Header
	for _, f := range layout {
		b, err := c.next(f.name, f.width)
		if err != nil {
			return Header{}, err
		}
		if f.decode != nil {
			f.decode(&h, b)
		}
	}
	return h, nil
}

// DecodeBytes decodes the header at the start of b.
func DecodeBytes(b []byte) (Header, error) {
	return Decode(bytes.NewReader(b))
}

// ReadFile opens path, decodes its header and closes the file. A file that
// cannot be opened is reported as *utils.SourceUnavailableError.
func ReadFile(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, &utils.SourceUnavailableError{Path: path, Err: err}
	}
	defer f.Close()

	return Decode(f)
}
