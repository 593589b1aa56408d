package vcm

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strconv"
)

// NewByteSequenceFromHex decodes a run of hex digit pairs (as they appear
// between the `x` and the closing quote/brace of a `bx...` literal) into a
// ByteSequence node. An odd number of digits is padded with a trailing
// zero nibble, matching the original bx-literal behaviour.
func NewByteSequenceFromHex(digits []byte) (*Node, error) {
	if len(digits)%2 != 0 {
		digits = append(append([]byte(nil), digits...), '0')
	}
	out := make([]byte, len(digits)/2)
	for i := 0; i < len(out); i++ {
		hi, err := hexNibble(digits[2*i])
		if err != nil {
			return nil, err
		}
		lo, err := hexNibble(digits[2*i+1])
		if err != nil {
			return nil, err
		}
		out[i] = hi<<4 | lo
	}
	return NewByteSequence(out), nil
}

func hexNibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", c)
	}
}

// NewByteSequenceFromBinary decodes a run of '0'/'1' characters (and
// ignorable '.' separators as in `bb0000.1111`) into a ByteSequence node.
// The bit count is padded up to a byte boundary with trailing zero bits.
func NewByteSequenceFromBinary(digits []byte) (*Node, error) {
	bits := make([]byte, 0, len(digits))
	for _, c := range digits {
		switch c {
		case '0', '1':
			bits = append(bits, c)
		case '.':
			// separator, ignored
		default:
			return nil, fmt.Errorf("invalid binary digit %q", c)
		}
	}
	for len(bits)%8 != 0 {
		bits = append(bits, '0')
	}
	out := make([]byte, len(bits)/8)
	for i := range out {
		var b byte
		for j := 0; j < 8; j++ {
			b <<= 1
			if bits[i*8+j] == '1' {
				b |= 1
			}
		}
		out[i] = b
	}
	return NewByteSequence(out), nil
}

// NewByteSequenceFromBase64 decodes a standard (or URL-safe) base64
// payload, as it appears in a `b64...` literal. `=` padding is only ever
// legal at the end of the payload, so its presence selects a padded
// decoder rather than being stripped.
func NewByteSequenceFromBase64(payload []byte) (*Node, error) {
	if bytes.ContainsRune(payload, '=') {
		out, err := base64.StdEncoding.DecodeString(string(payload))
		if err != nil {
			out, err = base64.URLEncoding.DecodeString(string(payload))
			if err != nil {
				return nil, fmt.Errorf("invalid base64 payload: %w", err)
			}
		}
		return NewByteSequence(out), nil
	}

	out, err := base64.StdEncoding.WithPadding(base64.NoPadding).DecodeString(string(payload))
	if err != nil {
		out, err = base64.RawURLEncoding.DecodeString(string(payload))
		if err != nil {
			return nil, fmt.Errorf("invalid base64 payload: %w", err)
		}
	}
	return NewByteSequence(out), nil
}

// Uint32 is a convenience accessor that reads a decoded byte sequence's
// first 4 bytes as a big-endian integer.
func Uint32(n *Node) (uint32, error) {
	if n.Tag != ByteSequence || len(n.Bytes) < 4 {
		return 0, fmt.Errorf("not a 4+ byte ByteSequence node")
	}
	return binary.BigEndian.Uint32(n.Bytes[:4]), nil
}

// ParseNumericSuffix maps the eJSON numeric-literal type suffixes (L, UL,
// F, FL) to the scalar factory appropriate for the accumulated digits.
// digits must already have the suffix stripped.
func ParseNumericSuffix(digits string, suffix string) (*Node, error) {
	switch suffix {
	case "L":
		i, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return nil, err
		}
		return NewLongInt(i), nil
	case "UL":
		u, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return nil, err
		}
		return NewULongInt(u), nil
	case "FL":
		f, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return nil, err
		}
		return NewLongDouble(f), nil
	case "F", "":
		f, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return nil, err
		}
		return NewNumber(f), nil
	default:
		return nil, fmt.Errorf("unknown numeric suffix %q", suffix)
	}
}
