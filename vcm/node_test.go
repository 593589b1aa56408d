package vcm

import "testing"

func TestAppendChildOrdering(t *testing.T) {
	parent := NewArray()
	a := NewLongInt(1)
	b := NewLongInt(2)
	c := NewLongInt(3)

	AppendChild(parent, a)
	AppendChild(parent, b)
	AppendChild(parent, c)

	if got := parent.ChildrenCount(); got != 3 {
		t.Fatalf("ChildrenCount() = %d, want 3", got)
	}
	if parent.FirstChild() != a {
		t.Fatalf("FirstChild() = %v, want a", parent.FirstChild())
	}
	if parent.LastChild() != c {
		t.Fatalf("LastChild() = %v, want c", parent.LastChild())
	}
	if a.NextSibling() != b || b.NextSibling() != c {
		t.Fatalf("sibling chain broken")
	}
	if c.PrevSibling() != b || b.PrevSibling() != a {
		t.Fatalf("prev sibling chain broken")
	}
	if a.Parent() != parent || b.Parent() != parent || c.Parent() != parent {
		t.Fatalf("child parent pointer wrong")
	}
}

func TestFlags(t *testing.T) {
	n := NewObject()
	if n.HasFlag(Protect) || n.HasFlag(Sugar) {
		t.Fatalf("new node should have no flags set")
	}
	n.SetFlag(Sugar)
	if !n.HasFlag(Sugar) {
		t.Fatalf("SetFlag(Sugar) did not stick")
	}
	n.ToggleFlag(Sugar)
	if n.HasFlag(Sugar) {
		t.Fatalf("ToggleFlag did not clear Sugar")
	}
	n.SetFlag(Protect)
	n.ClearFlag(Sugar)
	if !n.HasFlag(Protect) {
		t.Fatalf("ClearFlag(Sugar) should not affect Protect")
	}
}

func TestDestroyPostOrder(t *testing.T) {
	root := NewObject()
	child := NewArray()
	leaf := NewLongInt(7)
	AppendChild(root, child)
	AppendChild(child, leaf)

	Destroy(root)

	if root.FirstChild() != nil || root.ChildrenCount() != 0 {
		t.Fatalf("Destroy did not unlink root's children")
	}
	if child.Parent() != nil {
		t.Fatalf("Destroy did not sever child's parent pointer")
	}
}

func TestByteSequenceFromHex(t *testing.T) {
	n, err := NewByteSequenceFromHex([]byte("deadbeef"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0xde, 0xad, 0xbe, 0xef}
	if string(n.Bytes) != string(want) {
		t.Fatalf("got % x, want % x", n.Bytes, want)
	}
}

func TestByteSequenceFromHexOddPads(t *testing.T) {
	n, err := NewByteSequenceFromHex([]byte("abc"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0xab, 0xc0}
	if string(n.Bytes) != string(want) {
		t.Fatalf("got % x, want % x", n.Bytes, want)
	}
}

func TestByteSequenceFromBinary(t *testing.T) {
	n, err := NewByteSequenceFromBinary([]byte("0000.1111"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x0F}
	if string(n.Bytes) != string(want) {
		t.Fatalf("got % x, want % x", n.Bytes, want)
	}
}

func TestByteSequenceFromBase64(t *testing.T) {
	n, err := NewByteSequenceFromBase64([]byte("aGVsbG8"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(n.Bytes) != "hello" {
		t.Fatalf("got %q, want %q", n.Bytes, "hello")
	}
}

func TestByteSequenceFromBase64Padded(t *testing.T) {
	n, err := NewByteSequenceFromBase64([]byte("QQ=="))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(n.Bytes) != "A" {
		t.Fatalf("got %q, want %q", n.Bytes, "A")
	}
}

func TestParseNumericSuffix(t *testing.T) {
	tests := []struct {
		name    string
		digits  string
		suffix  string
		wantTag Tag
	}{
		{"plain", "42", "", Number},
		{"long", "42", "L", LongInt},
		{"unsigned long", "42", "UL", ULongInt},
		{"float", "4.2", "F", Number},
		{"long double", "4.2", "FL", LongDouble},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseNumericSuffix(tt.digits, tt.suffix)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.Tag != tt.wantTag {
				t.Fatalf("tag = %v, want %v", n.Tag, tt.wantTag)
			}
		})
	}
}
