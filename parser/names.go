package parser

import (
	"github.com/purc-go/ejson/internal/source"
	"github.com/purc-go/ejson/internal/stack"
	"github.com/purc-go/ejson/vcm"
)

// stateBeforeName expects an object key: a quoted string, an unquoted
// bareword, `$`, or an immediate `}` (empty object).
func (p *Parser) stateBeforeName() verdict {
	r := p.curr.Rune
	switch r {
	case '"':
		p.tempBuffer.Reset()
		p.ejsonStack.Push(stack.MarkerColon)
		return advanceTo(nameDoubleQuoted)
	case '\'':
		p.tempBuffer.Reset()
		p.ejsonStack.Push(stack.MarkerColon)
		return advanceTo(nameSingleQuoted)
	case '}':
		return reconsumeIn(rightBrace)
	case '$':
		return reconsumeIn(control)
	case ',':
		if p.pendingDoubleComma {
			return fail(UnexpectedComma)
		}
	}
	if isAsciiAlpha(r) {
		p.tempBuffer.Reset()
		return reconsumeIn(nameUnquoted)
	}
	return fail(UnexpectedCharacter)
}

// stateNameUnquoted accumulates a bareword object key.
func (p *Parser) stateNameUnquoted() verdict {
	r := p.curr.Rune
	if isNameChar(r) {
		p.tempBuffer.AppendRune(r)
		return advanceTo(nameUnquoted)
	}
	if r == '$' {
		concat := vcm.NewConcatString()
		p.ejsonStack.Push(stack.MarkerUnquoted)
		p.pushParentAndFocus(concat)
		p.flushTempBufferAsStringChild()
		return reconsumeIn(control)
	}
	if isWhitespace(r) || r == ':' {
		p.ejsonStack.Push(stack.MarkerColon)
		return reconsumeIn(afterName)
	}
	return fail(UnexpectedCharacter)
}

// stateNameQuoted accumulates a single- or double-quoted object key up to
// the matching quote, with `\` escapes and (for double-quoted keys) `$`
// variable interpolation.
func (p *Parser) stateNameQuoted(quote rune) verdict {
	r := p.curr.Rune
	switch r {
	case source.EOF:
		return fail(UnexpectedEOF)
	case '\\':
		return p.setReturnState(stateForQuote(quote))
	case '$':
		if quote == '"' {
			concat := vcm.NewConcatString()
			p.ejsonStack.Push(stack.MarkerDoubleQuoted)
			p.pushParentAndFocus(concat)
			p.flushTempBufferAsStringChild()
			return reconsumeIn(control)
		}
		p.tempBuffer.AppendRune(r)
		return advanceTo(stateForQuote(quote))
	}
	if r == quote {
		return advanceTo(afterName)
	}
	p.tempBuffer.AppendRune(r)
	return advanceTo(stateForQuote(quote))
}

func stateForQuote(quote rune) state {
	if quote == '"' {
		return nameDoubleQuoted
	}
	return nameSingleQuoted
}

// stateAfterName expects `:` and flushes the accumulated key.
func (p *Parser) stateAfterName() verdict {
	r := p.curr.Rune
	if isWhitespace(r) {
		return advanceTo(afterName)
	}
	if r != ':' {
		return fail(UnexpectedCharacter)
	}
	p.flushTempBufferAsStringChild()
	return advanceTo(control)
}
