package parser

import (
	"github.com/purc-go/ejson/internal/source"
	"github.com/purc-go/ejson/internal/stack"
	"github.com/purc-go/ejson/vcm"
)

// stateLeftBrace opens an object literal, or promotes a pending ${
// protected-variable marker into the `${{ ... }}` embedded-object form.
func (p *Parser) stateLeftBrace() verdict {
	r := p.curr.Rune
	if r != '{' {
		return fail(UnexpectedCharacter)
	}

	if p.ejsonStack.Top() == stack.MarkerProtected {
		p.ejsonStack.Pop()
		p.ejsonStack.Push(stack.MarkerObject)
		if v, ok := p.incDepth(); !ok {
			return v
		}
		p.pushParentAndFocus(vcm.NewObject())
		return advanceTo(beforeName)
	}

	p.ejsonStack.Push(stack.MarkerObject)
	if v, ok := p.incDepth(); !ok {
		return v
	}
	p.pushParentAndFocus(vcm.NewObject())
	return advanceTo(beforeName)
}

// stateRightBrace closes an object, a ${...} sugar expression, or
// returns control to a getter/setter/string context, per the marker on
// top of ejson_stack.
func (p *Parser) stateRightBrace() verdict {
	if p.curr.Rune != '}' {
		return fail(UnexpectedRightBrace)
	}

	if p.ejsonStack.Top() == stack.MarkerColon {
		p.ejsonStack.Pop()
	}

	top := p.ejsonStack.Top()
	switch top {
	case stack.MarkerObject:
		p.ejsonStack.Pop()
		p.decDepth()
		p.popAsParent()
		if p.ejsonStack.IsEmpty() {
			return advanceTo(finished)
		}
		return advanceTo(afterValue)
	case stack.MarkerProtected:
		p.ejsonStack.Pop()
		p.vcmNode.ToggleFlag(vcm.Protect)
		p.vcmNode.SetFlag(vcm.Sugar)
		p.popAsParent()
		return advanceTo(afterValue)
	case stack.MarkerGetter, stack.MarkerSetter, stack.MarkerDoubleQuoted:
		return advanceTo(control)
	default:
		return fail(UnexpectedRightBrace)
	}
}

// stateLeftBracket opens element access (`$x[0]`, `.member[0]`) or a
// plain array literal, depending on the current focus and stack top.
func (p *Parser) stateLeftBracket() verdict {
	if p.curr.Rune != '[' {
		return fail(UnexpectedCharacter)
	}

	if p.vcmNode != nil && p.ejsonStack.IsEmpty() {
		getElem := vcm.NewGetElement()
		vcm.AppendChild(getElem, p.vcmNode) // receiver becomes child 0
		p.vcmNode = getElem
		p.ejsonStack.Push(stack.MarkerArray)
		if v, ok := p.incDepth(); !ok {
			return v
		}
		return advanceTo(control)
	}
	if p.vcmNode != nil && (p.vcmNode.Tag == vcm.GetVariable || p.vcmNode.Tag == vcm.GetElement) {
		getElem := vcm.NewGetElement()
		vcm.AppendChild(getElem, p.vcmNode) // receiver becomes child 0
		p.vcmNode = getElem
		p.ejsonStack.Push(stack.MarkerMember)
		return advanceTo(control)
	}

	top := p.ejsonStack.Top()
	switch top {
	case stack.MarkerGetter, stack.MarkerSetter, stack.MarkerArray, stack.MarkerColon, stack.MarkerDoubleQuoted, 0:
		p.ejsonStack.Push(stack.MarkerArray)
		if v, ok := p.incDepth(); !ok {
			return v
		}
		p.pushParentAndFocus(vcm.NewArray())
		return advanceTo(control)
	default:
		return fail(UnexpectedCharacter)
	}
}

// stateRightBracket closes member access (`.` marker) or an array
// literal (`[` marker).
func (p *Parser) stateRightBracket() verdict {
	r := p.curr.Rune
	if r == source.EOF {
		return fail(UnexpectedEOF)
	}
	if r != ']' {
		return fail(UnexpectedRightBracket)
	}

	top := p.ejsonStack.Top()
	switch top {
	case stack.MarkerMember:
		p.ejsonStack.Pop()
		p.popAsParent()
		return advanceTo(afterValue)
	case stack.MarkerArray:
		p.ejsonStack.Pop()
		p.decDepth()
		p.popAsParent()
		if p.ejsonStack.IsEmpty() {
			return advanceTo(finished)
		}
		return advanceTo(afterValue)
	default:
		return fail(UnexpectedRightBracket)
	}
}

// stateLeftParen opens a getter call `f(...)` or a setter call `f(! ...)`.
func (p *Parser) stateLeftParen() verdict {
	if p.curr.Rune != '(' {
		return fail(UnexpectedCharacter)
	}
	p.ejsonStack.Push(stack.MarkerGetter)
	if v, ok := p.incDepth(); !ok {
		return v
	}
	call := vcm.NewCallGetter()
	if p.vcmNode != nil {
		vcm.AppendChild(call, p.vcmNode)
	}
	p.vcmNode = call
	return advanceTo(leftParenBang)
}

// leftParenBang distinguishes `(` from `(!` immediately after opening a
// call, promoting to CALL_SETTER when a `!` follows.
func (p *Parser) stateLeftParenBang() verdict {
	if p.curr.Rune == '!' {
		p.ejsonStack.Pop()
		p.ejsonStack.Push(stack.MarkerSetter)
		p.vcmNode.Tag = vcm.CallSetter
		return advanceTo(control)
	}
	return reconsumeIn(control)
}

// stateRightParen closes a getter/setter call.
func (p *Parser) stateRightParen() verdict {
	if p.curr.Rune != ')' {
		return fail(UnexpectedCharacter)
	}
	top := p.ejsonStack.Top()
	if top != stack.MarkerGetter && top != stack.MarkerSetter {
		return fail(UnexpectedCharacter)
	}
	p.ejsonStack.Pop()
	p.decDepth()
	if !p.vcmStack.IsEmpty() {
		p.popAsParent()
	}
	return advanceTo(control)
}

// stateAfterValue consumes trailing whitespace after a completed value
// and routes close markers/commas back to their handlers.
func (p *Parser) stateAfterValue() verdict {
	r := p.curr.Rune

	if isWhitespace(r) {
		return advanceTo(afterValue)
	}

	top := p.ejsonStack.Top()
	switch r {
	case '}':
		return reconsumeIn(rightBrace)
	case ']':
		return reconsumeIn(rightBracket)
	case ')':
		return reconsumeIn(rightParen)
	case ',':
		return reconsumeIn(control)
	case '"':
		if top == stack.MarkerDoubleQuoted {
			return reconsumeIn(afterJSONEEString)
		}
	case '\'':
		if top == stack.MarkerSingleQuoted {
			return reconsumeIn(afterJSONEEString)
		}
	case '<', '.':
		return reconsumeIn(control)
	}

	if isQuoteOrConcatMarker(top) {
		return reconsumeIn(control)
	}
	if r == source.EOF {
		return reconsumeIn(control)
	}
	return fail(UnexpectedCharacter)
}
