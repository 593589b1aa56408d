package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/purc-go/ejson/parser"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, parser.DefaultMaxDepth, cfg.MaxDepth)
	require.Equal(t, parser.Flags(0), cfg.Flags())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := "max_depth: 64\nprint_log: true\nfixture_schema: schema.json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 64, cfg.MaxDepth)
	require.True(t, cfg.PrintLog)
	require.Equal(t, "schema.json", cfg.FixtureSchema)
	require.Equal(t, parser.PrintLog, cfg.Flags())
}

func TestLoadZeroMaxDepthFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("print_log: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, parser.DefaultMaxDepth, cfg.MaxDepth)
}

func TestFindWalksUpToParent(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("max_depth: 10\n"), 0o644))

	cfg, found, err := Find(child)
	require.NoError(t, err)
	require.NotEmpty(t, found)
	require.Equal(t, 10, cfg.MaxDepth)
}

func TestFindReturnsDefaultWhenMissing(t *testing.T) {
	dir := t.TempDir()
	cfg, found, err := Find(dir)
	require.NoError(t, err)
	require.Empty(t, found)
	require.Equal(t, Default(), cfg)
}
