// Package bits provides the bounds-checked bit cursor used to walk A/52
// frame headers.
package bits

import "errors"

var (
	// ErrOutOfBits is returned when a read or skip would pass the end of
	// the attached buffer. The cursor position is left unchanged.
	ErrOutOfBits = errors.New("bits: read past end of buffer")

	// ErrInvalidWidth is returned for field widths outside 1..32.
	ErrInvalidWidth = errors.New("bits: field width must be 1-32")
)

// Cursor reads big-endian bit fields from a byte buffer, MSB first.
//
// The cursor is a slice plus a bit offset. The offset only moves forward
// until Reset attaches a new buffer; there is no resynchronization logic.
type Cursor struct {
	data []byte
	pos  int // bit offset of the next unread bit
	end  int // len(data) * 8
}

// NewCursor returns a Cursor positioned at the first bit of data.
func NewCursor(data []byte) *Cursor {
	c := &Cursor{}
	c.Reset(data)
	return c
}

// Reset attaches data and rewinds to its first bit.
func (c *Cursor) Reset(data []byte) {
	c.data = data
	c.pos = 0
	c.end = len(data) * 8
}

// Position returns the number of bits consumed since the last Reset.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining returns the number of unread bits.
func (c *Cursor) Remaining() int {
	return c.end - c.pos
}

// loadWord fetches the 32-bit big-endian word starting at byte offset.
// Bytes past the end of the buffer read as zero.
func (c *Cursor) loadWord(offset int) uint32 {
	if offset >= len(c.data) {
		return 0
	}

	remaining := len(c.data) - offset
	if remaining >= 4 {
		return uint32(c.data[offset])<<24 |
			uint32(c.data[offset+1])<<16 |
			uint32(c.data[offset+2])<<8 |
			uint32(c.data[offset+3])
	}

	var result uint32
	switch remaining {
	case 3:
		result = uint32(c.data[offset])<<24 |
			uint32(c.data[offset+1])<<16 |
			uint32(c.data[offset+2])<<8
	case 2:
		result = uint32(c.data[offset])<<24 |
			uint32(c.data[offset+1])<<16
	case 1:
		result = uint32(c.data[offset]) << 24
	}
	return result
}

// check validates a width-n access at the current position.
func (c *Cursor) check(n uint) error {
	if n == 0 || n > 32 {
		return ErrInvalidWidth
	}
	if c.pos+int(n) > c.end {
		return ErrOutOfBits
	}
	return nil
}

// show returns the next n bits without consuming them. The caller has
// already validated n.
func (c *Cursor) show(n uint) uint32 {
	byteOff := c.pos >> 3
	shift := uint(c.pos & 7)

	// shift+n <= 39, so two words always cover the field.
	window := uint64(c.loadWord(byteOff))<<32 | uint64(c.loadWord(byteOff+4))
	return uint32(window << shift >> (64 - n))
}

// Peek returns the next n bits (1-32) without consuming them.
func (c *Cursor) Peek(n uint) (uint32, error) {
	if err := c.check(n); err != nil {
		return 0, err
	}
	return c.show(n), nil
}

// Read consumes the next n bits (1-32) and returns them as an unsigned value.
func (c *Cursor) Read(n uint) (uint32, error) {
	if err := c.check(n); err != nil {
		return 0, err
	}
	v := c.show(n)
	c.pos += int(n)
	return v, nil
}

// ReadBool consumes one bit and reports whether it was set.
func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.Read(1)
	return v == 1, err
}

// ReadSigned consumes n bits and sign-extends them as a two's-complement
// value.
func (c *Cursor) ReadSigned(n uint) (int32, error) {
	v, err := c.Read(n)
	if err != nil {
		return 0, err
	}
	shift := 32 - n
	return int32(v<<shift) >> shift, nil
}

// Skip advances n bits without materializing them. Unlike Read, n may
// exceed 32.
func (c *Cursor) Skip(n uint) error {
	if c.pos+int(n) > c.end {
		return ErrOutOfBits
	}
	c.pos += int(n)
	return nil
}
