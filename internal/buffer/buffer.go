// Package buffer implements the text buffer: a growable byte buffer
// specialised for UTF-8 accumulation with char-granular (not byte-granular)
// trimming and strict literal tests.
package buffer

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// minCapacity is the smallest backing array the buffer will allocate.
const minCapacity = 32

// Buffer is a contiguous byte buffer with a running UTF-8 char count.
// Capacity grows by the next Fibonacci number at or above the size needed,
// matching the teacher's zero-alloc "pre-size once, append often" style
// rather than Go's default doubling growth.
type Buffer struct {
	data    []byte
	nrChars int
}

// New returns an empty buffer with an initial capacity of minCapacity.
func New() *Buffer {
	return &Buffer{data: make([]byte, 0, minCapacity)}
}

// Reset empties the buffer without releasing its backing array.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.nrChars = 0
}

// AppendRune appends the UTF-8 encoding of r.
func (b *Buffer) AppendRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	b.AppendBytes(buf[:n])
}

// AppendBytes appends raw bytes, growing the backing array per the
// Fibonacci strategy when needed, and updates the char count by counting
// UTF-8 leading bytes (those whose top two bits are not '10').
func (b *Buffer) AppendBytes(p []byte) {
	need := len(b.data) + len(p)
	if need > cap(b.data) {
		b.grow(need)
	}
	b.data = append(b.data, p...)
	for _, c := range p {
		if c&0xC0 != 0x80 {
			b.nrChars++
		}
	}
}

// AppendAnother appends the full contents of another buffer.
func (b *Buffer) AppendAnother(other *Buffer) {
	b.AppendBytes(other.Bytes())
}

// grow enlarges the backing array to the next Fibonacci number >= need,
// with a floor of minCapacity.
func (b *Buffer) grow(need int) {
	newCap := minCapacity
	a, c := 1, 1
	for newCap < need {
		a, c = c, a+c
		if c > newCap {
			newCap = c
		}
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// Bytes returns the buffer's current content. The slice aliases the
// buffer's internal storage and is invalidated by the next mutation.
func (b *Buffer) Bytes() []byte { return b.data }

// String returns a copy of the buffer's content as a string.
func (b *Buffer) String() string { return string(b.data) }

// IsEmpty reports whether the buffer holds no bytes.
func (b *Buffer) IsEmpty() bool { return len(b.data) == 0 }

// NumChars returns the number of UTF-8 code points currently buffered.
func (b *Buffer) NumChars() int { return b.nrChars }

// EqualsBytes reports whether the buffer's content equals s exactly.
func (b *Buffer) EqualsBytes(s string) bool {
	return string(b.data) == s
}

// EndsWithBytes reports whether the buffer's content ends with suffix.
func (b *Buffer) EndsWithBytes(suffix string) bool {
	return strings.HasSuffix(string(b.data), suffix)
}

// LastChar returns the last complete code point in the buffer, or 0 if the
// buffer is empty.
func (b *Buffer) LastChar() rune {
	if len(b.data) == 0 {
		return 0
	}
	// Walk back to the start of the last leading byte.
	i := len(b.data) - 1
	for i > 0 && b.data[i]&0xC0 == 0x80 {
		i--
	}
	r, _ := utf8.DecodeRune(b.data[i:])
	return r
}

// DeleteHeadChars removes n UTF-8 code points from the start of the
// buffer, shifting the remainder down.
func (b *Buffer) DeleteHeadChars(n int) {
	if n <= 0 || len(b.data) == 0 {
		return
	}
	i, seen := 0, 0
	for i < len(b.data) && seen < n {
		i++
		for i < len(b.data) && b.data[i]&0xC0 == 0x80 {
			i++
		}
		seen++
	}
	copy(b.data, b.data[i:])
	b.data = b.data[:len(b.data)-i]
	b.nrChars -= seen
}

// DeleteTailChars removes n UTF-8 code points from the end of the buffer.
func (b *Buffer) DeleteTailChars(n int) {
	if n <= 0 || len(b.data) == 0 {
		return
	}
	i, seen := len(b.data), 0
	for i > 0 && seen < n {
		i--
		for i > 0 && b.data[i]&0xC0 == 0x80 {
			i--
		}
		seen++
	}
	b.data = b.data[:i]
	b.nrChars -= seen
}

// IsIntegerLiteral reports whether the whole buffer is consumed by a
// strict base-10 integer parse (optional leading '-' or '+', at least one
// digit, nothing else).
func (b *Buffer) IsIntegerLiteral() bool {
	if len(b.data) == 0 {
		return false
	}
	_, err := strconv.ParseInt(string(b.data), 10, 64)
	return err == nil
}

// IsNumberLiteral reports whether the whole buffer is consumed by a
// strict floating-point parse.
func (b *Buffer) IsNumberLiteral() bool {
	if len(b.data) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(string(b.data), 64)
	return err == nil
}

// IsWhitespace reports whether every byte in the buffer is one of
// space, line feed, horizontal tab, or form feed.
func (b *Buffer) IsWhitespace() bool {
	if len(b.data) == 0 {
		return false
	}
	for _, c := range b.data {
		switch c {
		case ' ', '\n', '\t', '\f':
		default:
			return false
		}
	}
	return true
}
