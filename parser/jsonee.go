package parser

import (
	"github.com/purc-go/ejson/internal/source"
	"github.com/purc-go/ejson/internal/stack"
	"github.com/purc-go/ejson/vcm"
)

// isChainContinuation reports whether r extends a variable/member-access
// expression rather than terminating it, i.e. `.member`, `[index]`, or
// `(args)` immediately following a completed GET_VARIABLE/GET_ELEMENT.
func isChainContinuation(r rune) bool {
	return r == '.' || r == '[' || r == '('
}

func isContextVariableChar(r rune) bool {
	switch r {
	case '?', '<', '@', '!', ':', '=', '%':
		return true
	}
	return false
}

// stateDollar handles `$`, including nested `$$…` chains and the `${…}`
// protected form. Every `$` seen here opens a fresh GET_VARIABLE focus,
// so a run of N dollars yields N nested GET_VARIABLE wrappers.
func (p *Parser) stateDollar() verdict {
	r := p.curr.Rune
	switch r {
	case '$':
		p.ejsonStack.Push(stack.MarkerDollar)
		p.pushParentAndFocus(vcm.NewGetVariable())
		return advanceTo(dollar)
	case '{':
		p.ejsonStack.Push(stack.MarkerProtected)
		p.pushParentAndFocus(vcm.NewGetVariable())
		return advanceTo(jsoneeVariable)
	default:
		p.pushParentAndFocus(vcm.NewGetVariable())
		return reconsumeIn(jsoneeVariable)
	}
}

func (p *Parser) unwindDollarMarkers() {
	for p.ejsonStack.Top() == stack.MarkerDollar {
		p.ejsonStack.Pop()
		p.popAsParent()
	}
}

// stateJSONEEVariable accumulates a `$name` variable name. On a
// chain-continuation character (`.`, `[`, `(`) the completed
// GET_VARIABLE is left as the focus so the next dispatch can extend it;
// on any other terminator it is attached to its enclosing parent.
func (p *Parser) stateJSONEEVariable() verdict {
	r := p.curr.Rune

	if isNameChar(r) {
		p.tempBuffer.AppendRune(r)
		return advanceTo(jsoneeVariable)
	}
	if isContextVariableChar(r) && (p.tempBuffer.IsEmpty() || p.tempBuffer.IsIntegerLiteral()) {
		p.tempBuffer.AppendRune(r)
		return advanceTo(jsoneeVariable)
	}
	if isTerminator(r) || isChainContinuation(r) {
		if p.tempBuffer.IsEmpty() {
			return fail(BadJSONEEVariableName)
		}
		p.flushTempBufferAsStringChild()
		p.unwindDollarMarkers()
		if !isChainContinuation(r) {
			p.popAsParent()
		}
		return reconsumeIn(control)
	}
	return fail(BadJSONEEVariableName)
}

// stateJSONEEFullStop opens member access `.member` on the current
// GET_VARIABLE/GET_ELEMENT/CALL_GETTER/CALL_SETTER focus.
func (p *Parser) stateJSONEEFullStop() verdict {
	if p.vcmNode == nil {
		return fail(UnexpectedCharacter)
	}
	switch p.vcmNode.Tag {
	case vcm.GetVariable, vcm.GetElement, vcm.CallGetter, vcm.CallSetter:
	default:
		return fail(UnexpectedCharacter)
	}

	getElem := vcm.NewGetElement()
	vcm.AppendChild(getElem, p.vcmNode)
	p.vcmNode = getElem
	p.ejsonStack.Push(stack.MarkerMember)
	p.tempBuffer.Reset()
	return advanceTo(jsoneeKeyword)
}

// stateJSONEEKeyword accumulates the member name after `.`.
func (p *Parser) stateJSONEEKeyword() verdict {
	r := p.curr.Rune
	if isNameChar(r) {
		p.tempBuffer.AppendRune(r)
		return advanceTo(jsoneeKeyword)
	}
	if isTerminator(r) || isChainContinuation(r) {
		if p.tempBuffer.IsEmpty() {
			return fail(BadJSONEEKeyword)
		}
		p.flushTempBufferAsStringChild()
		if p.ejsonStack.Top() == stack.MarkerMember {
			p.ejsonStack.Pop()
		}
		if !isChainContinuation(r) {
			p.popAsParent()
		}
		return reconsumeIn(control)
	}
	return fail(BadJSONEEKeyword)
}

// stateJSONEEString accumulates a top-level JSONEE template string
// (text mixed with `$` interpolation, not inside explicit quotes).
func (p *Parser) stateJSONEEString() verdict {
	r := p.curr.Rune
	switch r {
	case source.EOF:
		if !p.tempBuffer.IsEmpty() {
			p.flushTempBufferAsStringChild()
		}
		return reconsumeIn(finished)
	case '\\':
		return p.setReturnState(jsoneeString)
	case '"':
		p.flushTempBufferAsStringChild()
		return reconsumeIn(afterJSONEEString)
	case '$':
		concat := vcm.NewConcatString()
		p.ejsonStack.Push(stack.MarkerDoubleQuoted)
		p.pushParentAndFocus(concat)
		p.flushTempBufferAsStringChild()
		return reconsumeIn(control)
	}
	p.tempBuffer.AppendRune(r)
	return advanceTo(jsoneeString)
}

// stateAfterJSONEEString closes whichever quote/unquoted context is open
// on top of ejson_stack (", ', or U) and reattaches the completed
// concat-string (or plain string) to its enclosing parent. The closing
// quote character itself, if any, is consumed; a structural character
// that merely terminated an unquoted run is left for CONTROL to see.
func (p *Parser) stateAfterJSONEEString() verdict {
	switch p.ejsonStack.Top() {
	case stack.MarkerDoubleQuoted, stack.MarkerSingleQuoted, stack.MarkerUnquoted:
		p.ejsonStack.Pop()
	}
	p.popAsParent()

	r := p.curr.Rune
	if r == '"' || r == '\'' {
		return advanceTo(control)
	}
	return reconsumeIn(control)
}
