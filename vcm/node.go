// Package vcm implements the Virtual Conditional Model tree: the typed
// expression tree the parser builds. A VCM tree is evaluated later against
// a runtime variable environment; this package only constructs and shapes
// it.
package vcm

import "fmt"

// Tag identifies the kind of value or expression a Node represents.
//
// IMPORTANT: new tags are always added at the end, before the closing
// parenthesis, so existing tag values never shift.
type Tag uint8

const (
	Null Tag = iota
	Boolean
	Number
	LongInt
	ULongInt
	LongDouble
	String
	ByteSequence

	Array
	Object

	ConcatString // lazy concatenation of children

	GetVariable // $name -> lookup by first child (a String node) in env
	GetElement  // member/subscript: child[0]=receiver, child[1]=key
	CallGetter  // f(...)
	CallSetter  // f(! ...)
)

func (t Tag) String() string {
	switch t {
	case Null:
		return "NULL"
	case Boolean:
		return "BOOLEAN"
	case Number:
		return "NUMBER"
	case LongInt:
		return "LONG_INT"
	case ULongInt:
		return "U_LONG_INT"
	case LongDouble:
		return "LONG_DOUBLE"
	case String:
		return "STRING"
	case ByteSequence:
		return "BYTE_SEQUENCE"
	case Array:
		return "ARRAY"
	case Object:
		return "OBJECT"
	case ConcatString:
		return "CONCAT_STRING"
	case GetVariable:
		return "GET_VARIABLE"
	case GetElement:
		return "GET_ELEMENT"
	case CallGetter:
		return "CALL_GETTER"
	case CallSetter:
		return "CALL_SETTER"
	default:
		return "UNKNOWN"
	}
}

// Flag is a bitfield of node-level extra bookkeeping. Both bits are set and
// read only by the ${...} sugar-expression handling in the parser.
type Flag uint8

const (
	// Protect marks a node that came from a protected ${...} form, one
	// that must not be silently unwrapped by the evaluator.
	Protect Flag = 1 << iota
	// Sugar marks a node built from the ${...} shorthand rather than an
	// explicit getter/setter call.
	Sugar
)

// Node is one element of a VCM tree. Children are an ordered doubly-linked
// list anchored at the parent; last is tracked so AppendChild is O(1).
type Node struct {
	Tag   Tag
	Extra Flag

	// Scalar payload. Only the field matching Tag is meaningful.
	Bool       bool
	Int        int64
	Uint       uint64
	Float      float64
	Bytes      []byte // String and ByteSequence payload
	IsBinary   bool   // ByteSequence: true if decoded from hex/binary/base64 literal

	parent      *Node
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node
	nrChildren  int
}

// New returns an orphan node of the given tag with no payload set.
func New(tag Tag) *Node { return &Node{Tag: tag} }

func NewNull() *Node { return New(Null) }

func NewBoolean(b bool) *Node {
	n := New(Boolean)
	n.Bool = b
	return n
}

func NewNumber(d float64) *Node {
	n := New(Number)
	n.Float = d
	return n
}

func NewLongInt(i int64) *Node {
	n := New(LongInt)
	n.Int = i
	return n
}

func NewULongInt(u uint64) *Node {
	n := New(ULongInt)
	n.Uint = u
	return n
}

func NewLongDouble(ld float64) *Node {
	n := New(LongDouble)
	n.Float = ld
	return n
}

func NewString(b []byte) *Node {
	n := New(String)
	n.Bytes = append([]byte(nil), b...)
	return n
}

func NewByteSequence(b []byte) *Node {
	n := New(ByteSequence)
	n.Bytes = append([]byte(nil), b...)
	n.IsBinary = true
	return n
}

func NewArray() *Node        { return New(Array) }
func NewObject() *Node       { return New(Object) }
func NewConcatString() *Node { return New(ConcatString) }
func NewGetVariable() *Node  { return New(GetVariable) }
func NewGetElement() *Node   { return New(GetElement) }
func NewCallGetter() *Node   { return New(CallGetter) }
func NewCallSetter() *Node   { return New(CallSetter) }

// AppendChild appends child to the end of parent's children, updating the
// sibling chain and nrChildren in O(1).
func AppendChild(parent, child *Node) {
	child.parent = parent
	child.prevSibling = parent.lastChild
	child.nextSibling = nil

	if parent.lastChild != nil {
		parent.lastChild.nextSibling = child
	} else {
		parent.firstChild = child
	}
	parent.lastChild = child
	parent.nrChildren++
}

func (n *Node) ChildrenCount() int    { return n.nrChildren }
func (n *Node) FirstChild() *Node     { return n.firstChild }
func (n *Node) LastChild() *Node      { return n.lastChild }
func (n *Node) Parent() *Node         { return n.parent }
func (n *Node) NextSibling() *Node    { return n.nextSibling }
func (n *Node) PrevSibling() *Node    { return n.prevSibling }
func (n *Node) HasFlag(f Flag) bool   { return n.Extra&f != 0 }
func (n *Node) SetFlag(f Flag)        { n.Extra |= f }
func (n *Node) ClearFlag(f Flag)      { n.Extra &^= f }
func (n *Node) ToggleFlag(f Flag)     { n.Extra ^= f }

// Destroy releases n and its entire subtree, post-order. Go's GC reclaims
// the memory; Destroy exists to sever parent/child/sibling pointers so a
// caller that keeps a stale reference to a node inside a failed parse
// cannot observe a half-unlinked tree, and to mirror the teacher's
// explicit-ownership discipline (spec's "on failure, the parser owns all
// nodes and must destroy them").
func Destroy(n *Node) {
	if n == nil {
		return
	}
	for c := n.firstChild; c != nil; {
		next := c.nextSibling
		Destroy(c)
		c = next
	}
	n.parent = nil
	n.firstChild = nil
	n.lastChild = nil
	n.prevSibling = nil
	n.nextSibling = nil
	n.nrChildren = 0
}

// String renders a one-line debug form: tag plus scalar payload where
// applicable. Not used by the parser itself; handy in tests and the CLI's
// --format=tree debug mode.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Tag {
	case Null:
		return "NULL"
	case Boolean:
		return fmt.Sprintf("BOOLEAN(%v)", n.Bool)
	case Number:
		return fmt.Sprintf("NUMBER(%v)", n.Float)
	case LongInt:
		return fmt.Sprintf("LONG_INT(%d)", n.Int)
	case ULongInt:
		return fmt.Sprintf("U_LONG_INT(%d)", n.Uint)
	case LongDouble:
		return fmt.Sprintf("LONG_DOUBLE(%v)", n.Float)
	case String:
		return fmt.Sprintf("STRING(%q)", n.Bytes)
	case ByteSequence:
		return fmt.Sprintf("BYTE_SEQUENCE(% x)", n.Bytes)
	default:
		return fmt.Sprintf("%s(%d children)", n.Tag, n.nrChildren)
	}
}

// GoString supports %#v for debug dumps; delegates to String.
func (n *Node) GoString() string { return n.String() }
