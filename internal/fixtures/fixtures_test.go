package fixtures

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/purc-go/ejson/parser"
)

func TestLoadConformanceFixtures(t *testing.T) {
	schema, err := Schema(DefaultSchema)
	require.NoError(t, err)

	fixtures, err := Load("../../testdata/conformance", schema)
	require.NoError(t, err)
	require.NotEmpty(t, fixtures)

	for _, f := range fixtures {
		t.Run(f.Name, func(t *testing.T) {
			p := parser.New(0, 0)
			root, err := p.Parse(strings.NewReader(f.Input))
			if f.Error != "" {
				require.Error(t, err)
				pe, ok := err.(*parser.ParseError)
				require.True(t, ok)
				require.Equal(t, f.Error, pe.Kind.String())
				return
			}
			require.NoError(t, err)
			require.NoError(t, Match(root, f.Expect))
		})
	}
}

func TestLoadRejectsMalformedFixture(t *testing.T) {
	schema, err := Schema(DefaultSchema)
	require.NoError(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"input":"1","expect":{"tag":"NUMBER"},"unexpected_field":true}`), 0o644))

	_, err = Load(dir, schema)
	require.Error(t, err)
}
