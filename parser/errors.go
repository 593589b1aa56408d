package parser

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrorKind identifies why a parse failed.
type ErrorKind uint8

const (
	BadEncoding ErrorKind = iota
	UnexpectedEOF
	UnexpectedCharacter
	UnexpectedComma
	UnexpectedRightBrace
	UnexpectedRightBracket
	UnexpectedJSONKeyword
	BadJSONNumber
	UnexpectedJSONNumber
	UnexpectedBase64
	BadJSONStringEscapeEntity
	BadJSONEEVariableName
	BadJSONEEKeyword
	BadJSONEEName
	MaxDepthExceeded
	OutOfMemory
)

func (k ErrorKind) String() string {
	switch k {
	case BadEncoding:
		return "BAD_ENCODING"
	case UnexpectedEOF:
		return "UNEXPECTED_EOF"
	case UnexpectedCharacter:
		return "UNEXPECTED_CHARACTER"
	case UnexpectedComma:
		return "UNEXPECTED_COMMA"
	case UnexpectedRightBrace:
		return "UNEXPECTED_RIGHT_BRACE"
	case UnexpectedRightBracket:
		return "UNEXPECTED_RIGHT_BRACKET"
	case UnexpectedJSONKeyword:
		return "UNEXPECTED_JSON_KEYWORD"
	case BadJSONNumber:
		return "BAD_JSON_NUMBER"
	case UnexpectedJSONNumber:
		return "UNEXPECTED_JSON_NUMBER"
	case UnexpectedBase64:
		return "UNEXPECTED_BASE64"
	case BadJSONStringEscapeEntity:
		return "BAD_JSON_STRING_ESCAPE_ENTITY"
	case BadJSONEEVariableName:
		return "BAD_JSONEE_VARIABLE_NAME"
	case BadJSONEEKeyword:
		return "BAD_JSONEE_KEYWORD"
	case BadJSONEEName:
		return "BAD_JSONEE_NAME"
	case MaxDepthExceeded:
		return "MAX_DEPTH_EXCEEDED"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	default:
		return "UNKNOWN_ERROR"
	}
}

// ParseError reports where and why a parse failed, in the teacher's
// Rust/Clang-flavoured snippet style: a one-line summary plus a
// `-->` location line and a caret pointing at the offending column.
type ParseError struct {
	Kind    ErrorKind
	Line    int
	Column  int
	Culprit rune

	// Source and Filename are set by callers (e.g. the CLI) that have the
	// full input text available, to render a caret snippet. The parser
	// itself only knows line/column/rune.
	Source   string
	Filename string

	// Suggestion is filled in for keyword-shaped errors by fuzzy-matching
	// the offending lexeme against the known keyword set.
	Suggestion string
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("%d:%d", e.Line, e.Column)
	msg := fmt.Sprintf("%s at %s", e.Kind, loc)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	if e.Filename != "" {
		msg = e.Filename + ":" + msg
	}
	if snippet := e.snippet(); snippet != "" {
		msg += "\n" + snippet
	}
	return msg
}

// snippet renders a two-line `-->`/caret location indicator when Source
// was populated by the caller.
func (e *ParseError) snippet() string {
	if e.Source == "" {
		return ""
	}
	lineText := sourceLine(e.Source, e.Line)
	if lineText == "" {
		return ""
	}
	caretPos := e.Column - 1
	if caretPos < 0 {
		caretPos = 0
	}
	if caretPos > len(lineText) {
		caretPos = len(lineText)
	}
	caret := fmt.Sprintf("%*s^", caretPos, "")
	return fmt.Sprintf(" --> line %d, column %d\n%s\n%s", e.Line, e.Column, lineText, caret)
}

func sourceLine(src string, line int) string {
	n := 1
	start := 0
	for i := 0; i < len(src); i++ {
		if n == line {
			end := i
			for end < len(src) && src[end] != '\n' {
				end++
			}
			return src[start:end]
		}
		if src[i] == '\n' {
			n++
			start = i + 1
		}
	}
	if n == line {
		return src[start:]
	}
	return ""
}

// keywordCandidates lists the literal keywords the tokenizer recognises,
// used to produce "did you mean" suggestions for UNEXPECTED_JSON_KEYWORD.
var keywordCandidates = []string{"true", "false", "null", "Infinity", "-Infinity", "NaN"}

// suggestKeyword returns the closest known keyword to lexeme, or "" if
// nothing is within a reasonable edit distance.
func suggestKeyword(lexeme string) string {
	if lexeme == "" {
		return ""
	}
	best := fuzzy.RankFindNormalizedFold(lexeme, keywordCandidates)
	if len(best) == 0 {
		return ""
	}
	// RankFindNormalizedFold does not sort its results; pick the smallest
	// distance.
	closest := best[0]
	for _, r := range best {
		if r.Distance < closest.Distance {
			closest = r
		}
	}
	if closest.Distance > 3 {
		return ""
	}
	return closest.Target
}
