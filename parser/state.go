package parser

// state names the ~45 tokenizer states from spec.md §4.4. Initial state
// is always data.
type state uint8

const (
	data state = iota
	control
	finished

	leftBrace
	rightBrace
	leftBracket
	rightBracket
	leftParen
	leftParenBang
	rightParen

	afterValue

	beforeName
	nameUnquoted
	nameSingleQuoted
	nameDoubleQuoted
	afterName

	valueSingleQuoted
	valueDoubleQuoted
	valueTwoDoubleQuoted
	valueThreeDoubleQuoted

	numberState
	numberInteger
	numberFraction
	numberExponent
	numberExponentInteger
	numberSuffixInteger
	afterValueNumber
	numberInfinity
	numberNaN

	byteSequence
	hexByteSequence
	binaryByteSequence
	base64ByteSequence
	afterByteSequence

	keyword
	afterKeyword

	stringEscape
	stringEscapeFourHexDigits

	dollar
	jsoneeVariable
	jsoneeFullStop
	jsoneeKeyword

	jsoneeString
	afterJSONEEString
)

// verdictKind is the action a state handler requests of the dispatch loop.
type verdictKind uint8

const (
	vAdvance verdictKind = iota
	vReconsume
	vSetReturn
	vFail
	vDone
)

// verdict is what a state handler returns: either "move to state X" (with
// or without consuming a fresh code point), a terminal failure, or success.
// The resume point after an escape digression is stored on the parser by
// setReturnState, which returns a plain advance; no handler returns
// vSetReturn.
type verdict struct {
	kind verdictKind
	next state
	err  ErrorKind
}

func advanceTo(s state) verdict   { return verdict{kind: vAdvance, next: s} }
func reconsumeIn(s state) verdict { return verdict{kind: vReconsume, next: s} }
func fail(k ErrorKind) verdict    { return verdict{kind: vFail, err: k} }
func done() verdict               { return verdict{kind: vDone} }

// setReturnState records where STRING_ESCAPE should resume and switches
// to the escape state, consuming the `\` it was just handed.
func (p *Parser) setReturnState(s state) verdict {
	p.returnState = s
	return advanceTo(stringEscape)
}
