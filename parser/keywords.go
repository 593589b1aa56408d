package parser

import (
	"github.com/purc-go/ejson/internal/source"
	"github.com/purc-go/ejson/vcm"
)

var keywordLiterals = []string{"true", "false", "null"}

// matchingKeywordPrefix returns the literal(s) that text could still be a
// prefix of.
func matchingKeywordPrefix(text string) []string {
	var out []string
	for _, k := range keywordLiterals {
		if len(text) <= len(k) && k[:len(text)] == text {
			out = append(out, k)
		}
	}
	return out
}

// stateKeyword accumulates `true`/`false`/`null` one character at a
// time, failing as soon as the buffer stops being a prefix of any
// candidate.
func (p *Parser) stateKeyword() verdict {
	r := p.curr.Rune
	if r == source.EOF {
		return fail(UnexpectedEOF)
	}
	candidate := p.tempBuffer.String() + string(r)
	if len(matchingKeywordPrefix(candidate)) == 0 {
		return fail(UnexpectedJSONKeyword)
	}
	p.tempBuffer.AppendRune(r)
	if matchesExactKeyword(p.tempBuffer.String()) {
		return advanceTo(afterKeyword)
	}
	return advanceTo(keyword)
}

func matchesExactKeyword(text string) bool {
	for _, k := range keywordLiterals {
		if text == k {
			return true
		}
	}
	return false
}

// stateAfterKeyword checks that a keyword match is followed by a
// legitimate terminator, then emits the matching BOOLEAN/NULL node.
func (p *Parser) stateAfterKeyword() verdict {
	r := p.curr.Rune
	if r != source.EOF && !isTerminator(r) && !isChainContinuation(r) {
		return fail(UnexpectedJSONKeyword)
	}

	text := p.tempBuffer.String()
	p.tempBuffer.Reset()
	switch text {
	case "true":
		return p.emit(vcm.NewBoolean(true))
	case "false":
		return p.emit(vcm.NewBoolean(false))
	case "null":
		return p.emit(vcm.NewNull())
	}
	return fail(UnexpectedJSONKeyword)
}
