package fixtures

import (
	"fmt"

	"github.com/purc-go/ejson/vcm"
)

// Match reports whether got's VCM subtree matches want, returning a
// descriptive error identifying the first point of divergence rather than
// a bare boolean, so conformance test failures are readable without a
// debugger.
func Match(got *vcm.Node, want Node) error {
	if got == nil {
		return fmt.Errorf("got nil node, want %s", want.Tag)
	}
	if got.Tag.String() != want.Tag {
		return fmt.Errorf("tag mismatch: got %s, want %s", got.Tag, want.Tag)
	}

	switch got.Tag {
	case vcm.Boolean:
		if got.Bool != want.Bool {
			return fmt.Errorf("%s: bool mismatch: got %v, want %v", want.Tag, got.Bool, want.Bool)
		}
	case vcm.Number, vcm.LongDouble:
		if got.Float != want.Float {
			return fmt.Errorf("%s: float mismatch: got %v, want %v", want.Tag, got.Float, want.Float)
		}
	case vcm.LongInt:
		if got.Int != want.Int {
			return fmt.Errorf("%s: int mismatch: got %v, want %v", want.Tag, got.Int, want.Int)
		}
	case vcm.ULongInt:
		if got.Uint != want.Uint {
			return fmt.Errorf("%s: uint mismatch: got %v, want %v", want.Tag, got.Uint, want.Uint)
		}
	case vcm.String, vcm.ByteSequence:
		if string(got.Bytes) != want.Bytes {
			return fmt.Errorf("%s: bytes mismatch: got %q, want %q", want.Tag, got.Bytes, want.Bytes)
		}
	}

	if got.ChildrenCount() != len(want.Children) {
		return fmt.Errorf("%s: child count mismatch: got %d, want %d", want.Tag, got.ChildrenCount(), len(want.Children))
	}
	i := 0
	for c := got.FirstChild(); c != nil; c = c.NextSibling() {
		if err := Match(c, want.Children[i]); err != nil {
			return fmt.Errorf("%s: child %d: %w", want.Tag, i, err)
		}
		i++
	}
	return nil
}
