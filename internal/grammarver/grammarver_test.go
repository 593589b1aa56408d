package grammarver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	require.True(t, Valid("v1.0.0"))
	require.True(t, Valid("1.0.0"))
	require.False(t, Valid("not-a-version"))
}

func TestCompare(t *testing.T) {
	require.Equal(t, 0, Compare("1.0.0", "v1.0.0"))
	require.Equal(t, -1, Compare("0.9.0", Current))
	require.Equal(t, 1, Compare("2.0.0", Current))
}

func TestCheckSupported(t *testing.T) {
	require.NoError(t, CheckSupported("1.0.0"))
	require.NoError(t, CheckSupported("0.5.0"))
	require.Error(t, CheckSupported("2.0.0"))
	require.Error(t, CheckSupported("garbage"))
}
