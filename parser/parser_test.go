package parser

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/purc-go/ejson/vcm"
)

func mustParse(t *testing.T, input string) *vcm.Node {
	t.Helper()
	p := New(0, 0)
	root, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.NotNil(t, root)
	return root
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		tag   vcm.Tag
	}{
		{"number", "42", vcm.Number},
		{"negative infinity", "-Infinity", vcm.Number},
		{"unsigned long", "123UL", vcm.ULongInt},
		{"long double suffix", "12.5FL", vcm.LongDouble},
		{"true", "true", vcm.Boolean},
		{"false", "false", vcm.Boolean},
		{"null", "null", vcm.Null},
		{"byte sequence hex", "bx48656c6c6f", vcm.ByteSequence},
		{"byte sequence base64 padded", "b64QQ==", vcm.ByteSequence},
		{"empty string", `""`, vcm.String},
		{"triple quoted string", "\"\"\"line1\nline2\"\"\"", vcm.String},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := mustParse(t, tc.input)
			require.Equal(t, tc.tag, root.Tag)
		})
	}
}

func TestParseNumberValues(t *testing.T) {
	root := mustParse(t, "42")
	require.Equal(t, float64(42), root.Float)

	root = mustParse(t, "123UL")
	require.Equal(t, uint64(123), root.Uint)

	root = mustParse(t, "12.5FL")
	require.Equal(t, 12.5, root.Float)

	root = mustParse(t, "-Infinity")
	require.Equal(t, vcm.Number, root.Tag)
	require.True(t, math.IsInf(root.Float, -1))

	root = mustParse(t, "NaN")
	require.Equal(t, vcm.Number, root.Tag)
	require.True(t, math.IsNaN(root.Float))
}

func TestParseArray(t *testing.T) {
	root := mustParse(t, "[1,2,3]")
	require.Equal(t, vcm.Array, root.Tag)
	require.Equal(t, 3, root.ChildrenCount())
	i := 1.0
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		require.Equal(t, vcm.Number, c.Tag)
		require.Equal(t, i, c.Float)
		i++
	}
}

func TestParseObject(t *testing.T) {
	root := mustParse(t, `{"k":"v"}`)
	require.Equal(t, vcm.Object, root.Tag)
	require.Equal(t, 2, root.ChildrenCount())
	require.Equal(t, vcm.String, root.FirstChild().Tag)
	require.Equal(t, "k", string(root.FirstChild().Bytes))
	require.Equal(t, "v", string(root.LastChild().Bytes))
}

func TestParseUnquotedKeys(t *testing.T) {
	root := mustParse(t, "{x:1,y:2}")
	require.Equal(t, vcm.Object, root.Tag)
	require.Equal(t, 4, root.ChildrenCount())
	keys := []string{}
	i := 0
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		if i%2 == 0 {
			keys = append(keys, string(c.Bytes))
		}
		i++
	}
	require.Equal(t, []string{"x", "y"}, keys)
}

func TestParseGetVariable(t *testing.T) {
	root := mustParse(t, "$name")
	require.Equal(t, vcm.GetVariable, root.Tag)
	require.Equal(t, 1, root.ChildrenCount())
	require.Equal(t, "name", string(root.FirstChild().Bytes))
}

func TestParseGetElementMember(t *testing.T) {
	root := mustParse(t, "$obj.member")
	require.Equal(t, vcm.GetElement, root.Tag)
	require.Equal(t, 2, root.ChildrenCount())
	require.Equal(t, vcm.GetVariable, root.FirstChild().Tag)
	require.Equal(t, "member", string(root.LastChild().Bytes))
}

func TestParseCallGetter(t *testing.T) {
	root := mustParse(t, "$f(1,2)")
	require.Equal(t, vcm.CallGetter, root.Tag)
	require.Equal(t, 3, root.ChildrenCount())
	require.Equal(t, vcm.GetVariable, root.FirstChild().Tag)
	require.Equal(t, float64(1), root.FirstChild().NextSibling().Float)
	require.Equal(t, float64(2), root.LastChild().Float)
}

func TestParseConcatString(t *testing.T) {
	root := mustParse(t, `"hello $name"`)
	require.Equal(t, vcm.ConcatString, root.Tag)
	require.Equal(t, 2, root.ChildrenCount())
	require.Equal(t, vcm.String, root.FirstChild().Tag)
	require.Equal(t, "hello ", string(root.FirstChild().Bytes))
	require.Equal(t, vcm.GetVariable, root.LastChild().Tag)
}

func TestParseStringEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline kept literal", `"a\nb"`, `a\nb`},
		{"tab kept literal", `"a\tb"`, `a\tb`},
		{"backspace kept literal", `"a\bb"`, `a\bb`},
		{"form feed kept literal", `"a\fb"`, `a\fb`},
		{"carriage return kept literal", `"a\rb"`, `a\rb`},
		{"backslash decoded", `"a\\b"`, `a\b`},
		{"quote decoded", `"a\"b"`, `a"b`},
		{"dollar decoded", `"a\$b"`, `a$b`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := mustParse(t, tc.input)
			require.Equal(t, vcm.String, root.Tag)
			require.Equal(t, tc.want, string(root.Bytes))
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"double comma", "[1,,2]", UnexpectedComma},
		{"truncated true", "tru", UnexpectedEOF},
		{"truncated false", "fals", UnexpectedEOF},
		{"truncated null", "nul", UnexpectedEOF},
		{"bad keyword", "tRue", UnexpectedJSONKeyword},
		{"base64 char after padding", "b64QQ=Q", UnexpectedBase64},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New(0, 0)
			_, err := p.Parse(strings.NewReader(tc.input))
			require.Error(t, err)
			pe, ok := err.(*ParseError)
			require.True(t, ok)
			require.Equal(t, tc.kind, pe.Kind)
		})
	}
}

func TestMaxDepthExceeded(t *testing.T) {
	p := New(2, 0)
	deep := strings.Repeat("[", 3) + strings.Repeat("]", 3)
	_, err := p.Parse(strings.NewReader(deep))
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	require.Equal(t, MaxDepthExceeded, pe.Kind)
}

func TestMaxDepthWithinBudget(t *testing.T) {
	p := New(3, 0)
	ok := strings.Repeat("[", 3) + strings.Repeat("]", 3)
	_, err := p.Parse(strings.NewReader(ok))
	require.NoError(t, err)
}

func TestResetReusesParser(t *testing.T) {
	p := New(0, 0)
	_, err := p.Parse(strings.NewReader("[1,2]"))
	require.NoError(t, err)

	root, err := p.Parse(strings.NewReader(`{"a":1}`))
	require.NoError(t, err)
	require.Equal(t, vcm.Object, root.Tag)
}
