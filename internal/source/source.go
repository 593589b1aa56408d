// Package source implements the character source: a UTF-8 decoder over an
// io.Reader with line/column tracking, bounded reconsume, and a short
// consumed-history ring used to implement reconsume without unbounded
// look-back.
package source

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// Sentinel code point values.
const (
	// EOF is returned once the underlying stream is exhausted.
	EOF rune = 0
	// Invalid is returned when the stream yields a byte sequence that is
	// not valid UTF-8. The caller must treat this as a fatal encoding error.
	// Its 32-bit pattern is 0xFFFFFFFF.
	Invalid rune = -1
)

// historyCap bounds the consumed-history ring (spec: 10 entries).
const historyCap = 10

// CodePoint is a decoded Unicode scalar paired with its source position.
type CodePoint struct {
	Rune         rune
	Line         int // 1-based
	Column       int // 1-based, resets to 1 after LF
	BytePosition int // 0-based byte offset of this code point in the stream
}

// Source decodes UTF-8 text from an io.Reader one code point at a time,
// tracking line/column and supporting a bounded reconsume of previously
// consumed code points.
type Source struct {
	r   *bufio.Reader
	pos int

	line   int
	column int

	// reconsume holds code points pushed back for re-examination. At most
	// two are ever pushed back in practice (triple-quote lookahead), but
	// the slice has no fixed cap — BufferChars (test harness) may seed more.
	reconsume []CodePoint

	// history is a fixed ring of the most recently consumed code points,
	// used by ReconsumeLast to step backwards without unbounded memory.
	history    [historyCap]CodePoint
	historyLen int
	historyPos int // index of the oldest entry in history
}

// New wraps r as a character source, starting at line 1, column 0 (the
// first call to Next reports column 1).
func New(r io.Reader) *Source {
	return &Source{
		r:      bufio.NewReader(r),
		line:   1,
		column: 0,
	}
}

// Next returns the next code point: a reconsumed one if any are pending,
// otherwise a freshly decoded one from the stream. Every returned code
// point (other than EOF/Invalid) is appended to the consumed-history ring.
func (s *Source) Next() CodePoint {
	var cp CodePoint
	if n := len(s.reconsume); n > 0 {
		cp = s.reconsume[0]
		s.reconsume = s.reconsume[1:]
	} else {
		cp = s.decode()
	}

	if cp.Rune == EOF || cp.Rune == Invalid {
		return cp
	}

	if cp.Rune == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}
	cp.Line, cp.Column = s.line, s.column

	s.pushHistory(cp)
	return cp
}

// decode reads one UTF-8 code point from the underlying stream.
func (s *Source) decode() CodePoint {
	r, size, err := s.r.ReadRune()
	pos := s.pos
	if err != nil {
		if err == io.EOF {
			return CodePoint{Rune: EOF, BytePosition: pos}
		}
		return CodePoint{Rune: Invalid, BytePosition: pos}
	}
	if r == utf8.RuneError && size == 1 {
		// bufio.Reader reports invalid UTF-8 as RuneError with width 1.
		return CodePoint{Rune: Invalid, BytePosition: pos}
	}
	s.pos += size
	return CodePoint{Rune: r, BytePosition: pos}
}

func (s *Source) pushHistory(cp CodePoint) {
	idx := (s.historyPos + s.historyLen) % historyCap
	s.history[idx] = cp
	if s.historyLen < historyCap {
		s.historyLen++
	} else {
		s.historyPos = (s.historyPos + 1) % historyCap
	}
}

// ReconsumeLast moves the most recently consumed code point back onto the
// front of the reconsume queue. Safe no-op when history is empty. May be
// called repeatedly to step back up to historyCap code points.
func (s *Source) ReconsumeLast() {
	if s.historyLen == 0 {
		return
	}
	last := (s.historyPos + s.historyLen - 1) % historyCap
	cp := s.history[last]
	s.historyLen--

	s.reconsume = append([]CodePoint{cp}, s.reconsume...)
}

// BufferChars pushes a sequence of code points to the front of the
// reconsume queue, in order, so they are yielded by the next calls to
// Next. Test-harness only.
func (s *Source) BufferChars(cps []CodePoint) {
	s.reconsume = append(append([]CodePoint{}, cps...), s.reconsume...)
}
