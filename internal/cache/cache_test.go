package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/purc-go/ejson/parser"
	"github.com/purc-go/ejson/vcm"
)

func TestKeyStableAndSensitiveToInputs(t *testing.T) {
	k1, err := Key([]byte(`{"a":1}`), 32, 0)
	require.NoError(t, err)
	k2, err := Key([]byte(`{"a":1}`), 32, 0)
	require.NoError(t, err)
	require.Equal(t, k1, k2)

	k3, err := Key([]byte(`{"a":2}`), 32, 0)
	require.NoError(t, err)
	require.NotEqual(t, k1, k3)

	k4, err := Key([]byte(`{"a":1}`), 16, 0)
	require.NoError(t, err)
	require.NotEqual(t, k1, k4)

	k5, err := Key([]byte(`{"a":1}`), 32, parser.PrintLog)
	require.NoError(t, err)
	require.NotEqual(t, k1, k5)
}

func TestPutGetRoundTrip(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	p := parser.New(0, 0)
	root, err := p.Parse(strings.NewReader(`{"k":[1,2,"$x"]}`))
	require.NoError(t, err)

	key := "deadbeef"
	require.NoError(t, c.Put(key, root))

	got, ok, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, vcm.Object, got.Tag)
	require.Equal(t, root.ChildrenCount(), got.ChildrenCount())

	arr := got.LastChild()
	require.Equal(t, vcm.Array, arr.Tag)
	require.Equal(t, 3, arr.ChildrenCount())
	require.Equal(t, vcm.ConcatString, arr.LastChild().Tag)
}

func TestGetMissingIsNotError(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	_, ok, err := c.Get("does-not-exist")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEvict(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Put("k", vcm.NewNull()))
	require.NoError(t, c.Evict("k"))

	_, ok, err := c.Get("k")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Evict("k")) // evicting again is a no-op
}
