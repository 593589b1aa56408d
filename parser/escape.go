package parser

import "strconv"

// stateStringEscape handles the character right after a `\` inside any
// quoted/interpolated string context, then resumes whatever state set
// p.returnState via setReturnState.
func (p *Parser) stateStringEscape() verdict {
	r := p.curr.Rune
	switch r {
	case 'b', 'f', 'n', 'r', 't':
		// Preserved as the literal two-character escape; downstream
		// consumers decode it, per the original's STRING_ESCAPE state.
		p.tempBuffer.AppendRune('\\')
		p.tempBuffer.AppendRune(r)
	case '$', '{', '}', '<', '>', '/', '\\', '"', '\'':
		p.tempBuffer.AppendRune(r)
	case 'u':
		p.stringBuffer.Reset()
		return advanceTo(stringEscapeFourHexDigits)
	default:
		return fail(BadJSONStringEscapeEntity)
	}
	return advanceTo(p.returnState)
}

// stateStringEscapeFourHexDigits collects the 4 hex digits of a `\uXXXX`
// escape and appends the decoded code point to tempBuffer.
func (p *Parser) stateStringEscapeFourHexDigits() verdict {
	r := p.curr.Rune
	if !isHexDigit(r) {
		return fail(BadJSONStringEscapeEntity)
	}
	p.stringBuffer.AppendRune(r)
	if len(p.stringBuffer.String()) < 4 {
		return advanceTo(stringEscapeFourHexDigits)
	}

	val, err := strconv.ParseUint(p.stringBuffer.String(), 16, 32)
	p.stringBuffer.Reset()
	if err != nil {
		return fail(BadJSONStringEscapeEntity)
	}
	p.tempBuffer.AppendRune(rune(val))
	return advanceTo(p.returnState)
}
