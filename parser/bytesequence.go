package parser

import (
	"github.com/purc-go/ejson/vcm"
)

// stateByteSequence dispatches on the character right after the leading
// `b`: `x` for hex, a second `b` for binary, `6` (of `b64`) for base64.
func (p *Parser) stateByteSequence() verdict {
	r := p.curr.Rune
	switch r {
	case 'x':
		p.tempBuffer.Reset()
		p.returnState = hexByteSequence
		return advanceTo(hexByteSequence)
	case 'b':
		p.tempBuffer.Reset()
		p.returnState = binaryByteSequence
		return advanceTo(binaryByteSequence)
	case '6':
		p.returnState = base64ByteSequence
		return advanceTo(base64ByteSequence)
	}
	return fail(UnexpectedCharacter)
}

func isHexDigit(r rune) bool {
	return isAsciiDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (p *Parser) stateHexByteSequence() verdict {
	r := p.curr.Rune
	if isHexDigit(r) {
		p.tempBuffer.AppendRune(r)
		return advanceTo(hexByteSequence)
	}
	return reconsumeIn(afterByteSequence)
}

func (p *Parser) stateBinaryByteSequence() verdict {
	r := p.curr.Rune
	if r == '0' || r == '1' || r == '.' {
		p.tempBuffer.AppendRune(r)
		return advanceTo(binaryByteSequence)
	}
	return reconsumeIn(afterByteSequence)
}

func isBase64Char(r rune) bool {
	return isAsciiAlpha(r) || isAsciiDigit(r) || r == '+' || r == '-'
}

// stateBase64ByteSequence accumulates the payload following `b64`. CONTROL
// consumes the `b` and BYTE_SEQUENCE the `6` (the literal form is
// `b64AAAA==`), so the first character this state sees is the `4`, which
// it skips while the buffer is still empty. Once a `=`
// padding character has been seen, only further `=` may follow; any other
// character there is UNEXPECTED_BASE64 rather than silently accepted.
func (p *Parser) stateBase64ByteSequence() verdict {
	r := p.curr.Rune
	if p.tempBuffer.IsEmpty() && r == '4' {
		return advanceTo(base64ByteSequence)
	}
	if r == '=' {
		if p.tempBuffer.IsEmpty() {
			return fail(UnexpectedBase64)
		}
		p.tempBuffer.AppendRune(r)
		return advanceTo(base64ByteSequence)
	}
	if isBase64Char(r) {
		if p.tempBuffer.EndsWithBytes("=") {
			return fail(UnexpectedBase64)
		}
		p.tempBuffer.AppendRune(r)
		return advanceTo(base64ByteSequence)
	}
	return reconsumeIn(afterByteSequence)
}

// stateAfterByteSequence decodes the accumulated digits per the variant
// recorded when BYTE_SEQUENCE opened.
func (p *Parser) stateAfterByteSequence() verdict {
	var node *vcm.Node
	var err error
	switch p.returnState {
	case hexByteSequence:
		node, err = vcm.NewByteSequenceFromHex(p.tempBuffer.Bytes())
	case binaryByteSequence:
		node, err = vcm.NewByteSequenceFromBinary(p.tempBuffer.Bytes())
	default:
		node, err = vcm.NewByteSequenceFromBase64(p.tempBuffer.Bytes())
	}
	p.tempBuffer.Reset()
	if err != nil {
		return fail(UnexpectedCharacter)
	}
	return p.emit(node)
}
