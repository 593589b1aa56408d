// Package parser implements the eJSON/JSONEE tokenizer and VCM tree
// builder: a streaming, character-driven state machine that turns an
// HVML-embedded data/expression language into a Virtual Conditional
// Model tree.
package parser

import (
	"io"
	"log/slog"
	"os"
	"unicode"

	"github.com/purc-go/ejson/internal/buffer"
	"github.com/purc-go/ejson/internal/source"
	"github.com/purc-go/ejson/internal/stack"
	"github.com/purc-go/ejson/vcm"
)

// Flags is a bitfield passed to New/Reset. Only PrintLog is recognised.
type Flags uint32

const (
	// PrintLog enables verbose state-transition tracing, tooling-only.
	PrintLog Flags = 1 << iota
)

// DefaultMaxDepth is used when New is given a max depth of zero.
const DefaultMaxDepth = 32

// Parser is a reusable eJSON tokenizer/tree-builder. A single instance
// should be driven by one goroutine at a time; it keeps no shared state
// across Parse calls other than what Reset explicitly preserves.
type Parser struct {
	maxDepth int
	flags    Flags
	logger   *slog.Logger

	src *source.Source

	state              state
	returnState        state
	reconsumeRequested bool

	depth int

	curr         source.CodePoint
	tempBuffer   *buffer.Buffer
	stringBuffer *buffer.Buffer
	vcmNode      *vcm.Node
	vcmStack     *stack.NodeStack[*vcm.Node]
	ejsonStack   *stack.MarkerStack

	prevSeparator      rune
	pendingDoubleComma bool
	nrQuoted           int
}

// New returns a parser ready to Parse. maxDepth of zero uses
// DefaultMaxDepth.
func New(maxDepth int, flags Flags) *Parser {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	logLevel := slog.LevelInfo
	if flags&PrintLog != 0 || os.Getenv("EJSON_DEBUG_PARSER") != "" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	p := &Parser{
		maxDepth:     maxDepth,
		flags:        flags,
		logger:       logger,
		tempBuffer:   buffer.New(),
		stringBuffer: buffer.New(),
		vcmStack:     stack.NewNodeStack[*vcm.Node](),
		ejsonStack:   stack.NewMarkerStack(),
	}
	return p
}

// Reset returns the parser to a fresh state, optionally changing
// maxDepth/flags (zero maxDepth keeps the existing one).
func (p *Parser) Reset(maxDepth int, flags Flags) {
	if maxDepth > 0 {
		p.maxDepth = maxDepth
	}
	p.flags = flags
	p.src = nil
	p.state = data
	p.returnState = data
	p.reconsumeRequested = false
	p.depth = 0
	p.curr = source.CodePoint{}
	p.tempBuffer.Reset()
	p.stringBuffer.Reset()
	if p.vcmNode != nil {
		vcm.Destroy(p.vcmNode)
		p.vcmNode = nil
	}
	p.vcmStack.Reset()
	p.ejsonStack.Reset()
	p.prevSeparator = 0
	p.pendingDoubleComma = false
	p.nrQuoted = 0
}

// Parse consumes r to completion or error and returns the root VCM node.
// On error the parser owns and has already destroyed any partially built
// tree; the returned *ParseError carries the failure location.
func (p *Parser) Parse(r io.Reader) (*vcm.Node, error) {
	p.Reset(p.maxDepth, p.flags)
	p.src = source.New(r)

	for {
		if !p.reconsumeRequested {
			cp := p.src.Next()
			if cp.Rune == source.Invalid {
				return nil, p.fail(BadEncoding, cp)
			}
			p.curr = cp
			p.pendingDoubleComma = cp.Rune == ',' && p.prevSeparator == ','
			p.trackSeparator(cp.Rune)
		}
		p.reconsumeRequested = false

		p.logger.Debug("dispatch", "state", p.state, "rune", string(p.curr.Rune))

		v := p.dispatch()
		switch v.kind {
		case vAdvance:
			p.state = v.next
		case vReconsume:
			p.state = v.next
			p.reconsumeRequested = true
		case vFail:
			err := p.fail(v.err, p.curr)
			if p.vcmNode != nil {
				vcm.Destroy(p.vcmNode)
				p.vcmNode = nil
			}
			for parent, ok := p.vcmStack.Pop(); ok; parent, ok = p.vcmStack.Pop() {
				vcm.Destroy(parent)
			}
			return nil, err
		case vDone:
			root := p.vcmNode
			p.vcmNode = nil
			return root, nil
		}
	}
}

// trackSeparator implements the dispatch-loop preamble from spec.md §4.4.1:
// it remembers the last structural separator seen (reset on any other
// non-whitespace). The loop sets pendingDoubleComma when the current comma
// follows another, and CONTROL and BEFORE_NAME reject it as UNEXPECTED_COMMA.
func (p *Parser) trackSeparator(r rune) {
	switch r {
	case '{', '}', '[', ']', '(', ')', ',':
		p.prevSeparator = r
	default:
		if !isWhitespace(r) {
			p.prevSeparator = 0
		}
	}
}

func (p *Parser) fail(kind ErrorKind, cp source.CodePoint) *ParseError {
	pe := &ParseError{Kind: kind, Line: cp.Line, Column: cp.Column, Culprit: cp.Rune}
	if kind == UnexpectedJSONKeyword {
		pe.Suggestion = suggestKeyword(p.tempBuffer.String())
	}
	return pe
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isAsciiAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAsciiDigit(r rune) bool { return r >= '0' && r <= '9' }

func isNameChar(r rune) bool {
	return isAsciiAlpha(r) || isAsciiDigit(r) || r == '_' || r == '-'
}

func isTerminator(r rune) bool {
	if isWhitespace(r) || r == source.EOF {
		return true
	}
	switch r {
	case '}', ']', ')', ',', ':', '"', '<', '>', '=':
		return true
	}
	return false
}

// unicodeIsSpace reports whether r is any Unicode space character. No state
// calls it; triple-quoted strings keep every character verbatim without
// consulting it.
func unicodeIsSpace(r rune) bool { return unicode.IsSpace(r) }

// pushParentAndFocus stashes the current focus onto vcmStack and makes
// newFocus the new focus node, the "open a container" idiom used at every
// LEFT_* transition.
func (p *Parser) pushParentAndFocus(newFocus *vcm.Node) {
	if p.vcmNode != nil {
		p.vcmStack.Push(p.vcmNode)
	}
	p.vcmNode = newFocus
}

// popAsParent appends the current focus as the last child of the parent
// on top of vcmStack, then makes that parent the new focus. It is the
// "close a container" idiom used at every RIGHT_*/terminator transition.
// A no-op (beyond leaving focus as-is) when vcmStack is empty.
func (p *Parser) popAsParent() {
	parent, ok := p.vcmStack.Pop()
	if !ok {
		return
	}
	if p.vcmNode != nil {
		vcm.AppendChild(parent, p.vcmNode)
	}
	p.vcmNode = parent
}

// incDepth increments the nesting depth guard, returning a failing
// verdict if max_depth is exceeded.
func (p *Parser) incDepth() (verdict, bool) {
	p.depth++
	if p.depth > p.maxDepth {
		return fail(MaxDepthExceeded), false
	}
	return verdict{}, true
}

func (p *Parser) decDepth() {
	if p.depth > 0 {
		p.depth--
	}
}

// flushTempBufferAsStringChild appends a STRING node built from
// tempBuffer's contents as a child of the current focus, then clears
// tempBuffer. Used for object keys, JSONEE names, and member keys.
func (p *Parser) flushTempBufferAsStringChild() {
	s := vcm.NewString(p.tempBuffer.Bytes())
	vcm.AppendChild(p.vcmNode, s)
	p.tempBuffer.Reset()
}

// emit attaches a just-completed scalar value (number, string, keyword,
// byte sequence) to the current container focus. At top level, where
// there is no enclosing container yet, the scalar becomes the result
// itself. Unlike containers, scalars never become the focus: they have
// no further children to accumulate.
func (p *Parser) emit(node *vcm.Node) verdict {
	if p.vcmNode != nil {
		vcm.AppendChild(p.vcmNode, node)
	} else {
		p.vcmNode = node
	}
	return reconsumeIn(afterValue)
}

// emitConsumed is emit's counterpart for values whose current code point
// is itself the closing delimiter (a matching quote, the final `y` of
// Infinity) rather than a lookahead terminator: the delimiter is
// consumed, not re-examined by AFTER_VALUE.
func (p *Parser) emitConsumed(node *vcm.Node) verdict {
	if p.vcmNode != nil {
		vcm.AppendChild(p.vcmNode, node)
	} else {
		p.vcmNode = node
	}
	return advanceTo(afterValue)
}
