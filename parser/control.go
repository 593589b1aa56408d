package parser

import (
	"github.com/purc-go/ejson/internal/source"
	"github.com/purc-go/ejson/internal/stack"
	"github.com/purc-go/ejson/vcm"
)

// stateData skips leading whitespace and a leading BOM, then hands off to
// the central dispatcher. EOF here means nothing was ever parsed.
func (p *Parser) stateData() verdict {
	r := p.curr.Rune
	if r == source.EOF {
		return fail(UnexpectedEOF)
	}
	if isWhitespace(r) || r == 0xFEFF {
		return advanceTo(data)
	}
	return reconsumeIn(control)
}

func isQuoteOrConcatMarker(m byte) bool {
	switch m {
	case stack.MarkerDoubleQuoted, stack.MarkerSingleQuoted, stack.MarkerUnquoted:
		return true
	}
	return false
}

func isOpenMarker(m byte) bool {
	switch m {
	case stack.MarkerObject, stack.MarkerArray, stack.MarkerGetter, stack.MarkerColon:
		return true
	}
	return false
}

// stateControl is the central dispatcher: branches on ejson_stack's top
// marker and the current code point. See spec.md §4.4.2 CONTROL.
func (p *Parser) stateControl() verdict {
	r := p.curr.Rune
	top := p.ejsonStack.Top()

	if r == ',' && p.pendingDoubleComma {
		return fail(UnexpectedComma)
	}

	if r == source.EOF {
		if p.vcmNode != nil {
			return reconsumeIn(finished)
		}
		return fail(UnexpectedEOF)
	}

	if isWhitespace(r) {
		if p.ejsonStack.IsEmpty() {
			return reconsumeIn(finished)
		}
		if isQuoteOrConcatMarker(top) {
			return reconsumeIn(afterJSONEEString)
		}
		return advanceTo(control)
	}

	switch r {
	case '{':
		return reconsumeIn(leftBrace)
	case '}':
		if p.vcmNode != nil && p.vcmNode.Tag == vcm.ConcatString && isQuoteOrConcatMarker(top) {
			return reconsumeIn(afterJSONEEString)
		}
		return reconsumeIn(rightBrace)
	case '[':
		return reconsumeIn(leftBracket)
	case ']':
		if p.vcmNode != nil && p.vcmNode.Tag == vcm.ConcatString && isQuoteOrConcatMarker(top) {
			return reconsumeIn(afterJSONEEString)
		}
		return reconsumeIn(rightBracket)
	case '(':
		return reconsumeIn(leftParen)
	case ')':
		return reconsumeIn(rightParen)
	case '<', '>', '/':
		if p.ejsonStack.IsEmpty() && p.vcmNode != nil {
			return reconsumeIn(finished)
		}
		return fail(UnexpectedCharacter)
	case '$':
		// DOLLAR examines the character *after* this `$`, so consume it
		// here rather than reconsuming it.
		return advanceTo(dollar)
	case '"':
		if top == stack.MarkerDoubleQuoted {
			return reconsumeIn(afterJSONEEString)
		}
		p.tempBuffer.Reset()
		p.nrQuoted = 0
		return advanceTo(valueDoubleQuoted)
	case '\'':
		p.tempBuffer.Reset()
		return advanceTo(valueSingleQuoted)
	case 'b':
		return advanceTo(byteSequence)
	case 't', 'f', 'n':
		p.tempBuffer.Reset()
		p.tempBuffer.AppendRune(r)
		return advanceTo(keyword)
	case 'I':
		p.tempBuffer.Reset()
		p.tempBuffer.AppendRune(r)
		return advanceTo(numberInfinity)
	case 'N':
		p.tempBuffer.Reset()
		p.tempBuffer.AppendRune(r)
		return advanceTo(numberNaN)
	case ',':
		switch top {
		case stack.MarkerObject:
			p.ejsonStack.Pop()
			return advanceTo(beforeName)
		case stack.MarkerArray, stack.MarkerGetter, stack.MarkerSetter:
			return advanceTo(control)
		case stack.MarkerColon:
			p.ejsonStack.Pop()
			return advanceTo(beforeName)
		case stack.MarkerDoubleQuoted:
			return reconsumeIn(jsoneeString)
		default:
			return fail(UnexpectedCharacter)
		}
	case '.':
		return reconsumeIn(jsoneeFullStop)
	}

	if isAsciiDigit(r) || r == '-' {
		p.tempBuffer.Reset()
		return reconsumeIn(numberState)
	}

	return reconsumeIn(jsoneeString)
}

// stateFinished is the terminal state: only whitespace/EOF are legal. It
// unwinds any still-open vcm_stack parents before checking that no
// required close marker was left dangling.
func (p *Parser) stateFinished() verdict {
	r := p.curr.Rune
	if !isWhitespace(r) && r != source.EOF {
		return fail(UnexpectedCharacter)
	}

	for !p.vcmStack.IsEmpty() {
		p.popAsParent()
	}

	if r == source.EOF {
		if !p.ejsonStack.IsEmpty() && isOpenMarker(p.ejsonStack.Top()) {
			return fail(UnexpectedEOF)
		}
		return done()
	}
	return advanceTo(finished)
}
