package parser

import (
	"github.com/purc-go/ejson/internal/source"
	"github.com/purc-go/ejson/internal/stack"
	"github.com/purc-go/ejson/vcm"
)

// stateValueSingleQuoted accumulates a '...' string. No interpolation is
// recognised inside single quotes, only the \ escape forms.
func (p *Parser) stateValueSingleQuoted() verdict {
	r := p.curr.Rune
	switch r {
	case source.EOF:
		return fail(UnexpectedEOF)
	case '\'':
		return p.emitConsumed(vcm.NewString(p.tempBuffer.Bytes()))
	case '\\':
		return p.setReturnState(valueSingleQuoted)
	}
	p.tempBuffer.AppendRune(r)
	return advanceTo(valueSingleQuoted)
}

// stateValueDoubleQuoted handles the three double-quoted forms. A lone
// closing `"` right after the opening quote probes for the empty string
// vs. a triple-quoted block string (VALUE_TWO_DOUBLE_QUOTED); a `$`
// switches to implicit-concat mode exactly like an unquoted bareword.
func (p *Parser) stateValueDoubleQuoted() verdict {
	r := p.curr.Rune
	switch r {
	case source.EOF:
		return fail(UnexpectedEOF)
	case '"':
		if p.tempBuffer.IsEmpty() {
			return advanceTo(valueTwoDoubleQuoted)
		}
		return p.emitConsumed(vcm.NewString(p.tempBuffer.Bytes()))
	case '\\':
		return p.setReturnState(valueDoubleQuoted)
	case '$':
		concat := vcm.NewConcatString()
		p.ejsonStack.Push(stack.MarkerDoubleQuoted)
		p.pushParentAndFocus(concat)
		p.flushTempBufferAsStringChild()
		return reconsumeIn(control)
	}
	p.tempBuffer.AppendRune(r)
	return advanceTo(valueDoubleQuoted)
}

// stateValueTwoDoubleQuoted disambiguates `""` (empty string) from
// `"""` (the start of a triple-quoted block string).
func (p *Parser) stateValueTwoDoubleQuoted() verdict {
	if p.curr.Rune == '"' {
		p.tempBuffer.Reset()
		return advanceTo(valueThreeDoubleQuoted)
	}
	return p.emit(vcm.NewString(nil))
}

// stateValueThreeDoubleQuoted accumulates a block string terminated by
// `"""`, verbatim aside from \ escapes.
func (p *Parser) stateValueThreeDoubleQuoted() verdict {
	r := p.curr.Rune
	switch r {
	case source.EOF:
		return fail(UnexpectedEOF)
	case '\\':
		return p.setReturnState(valueThreeDoubleQuoted)
	case '"':
		if p.tempBuffer.EndsWithBytes(`""`) {
			p.tempBuffer.DeleteTailChars(2)
			return p.emitConsumed(vcm.NewString(p.tempBuffer.Bytes()))
		}
		p.tempBuffer.AppendRune(r)
		return advanceTo(valueThreeDoubleQuoted)
	}
	p.tempBuffer.AppendRune(r)
	return advanceTo(valueThreeDoubleQuoted)
}
