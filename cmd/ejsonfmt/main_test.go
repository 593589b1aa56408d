package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/purc-go/ejson/internal/config"
)

func newTestRoot() (*cobra.Command, *rootFlags) {
	var flags rootFlags
	root := &cobra.Command{Use: "ejsonfmt", SilenceErrors: true, SilenceUsage: true}
	root.PersistentFlags().IntVar(&flags.maxDepth, "max-depth", 0, "")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "")
	root.AddCommand(newParseCmd(&flags), newFmtCmd(&flags), newWatchCmd(&flags), newCacheCmd(&flags))
	return root, &flags
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root, _ := newTestRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseCmdSucceedsOnValidDocument(t *testing.T) {
	file := writeTemp(t, `{"k":"v"}`)
	out, err := run(t, "parse", file)
	require.NoError(t, err)
	require.Contains(t, out, "ok:")
}

func TestParseCmdFailsOnInvalidDocument(t *testing.T) {
	file := writeTemp(t, `[1,,2]`)
	_, err := run(t, "parse", file)
	require.Error(t, err)
	require.Contains(t, err.Error(), "UNEXPECTED_COMMA")
}

func TestFmtCmdTreeFormat(t *testing.T) {
	file := writeTemp(t, `[1,2]`)
	out, err := run(t, "fmt", "--format=tree", file)
	require.NoError(t, err)
	require.Contains(t, out, "ARRAY")
	require.Contains(t, out, "NUMBER(1)")
}

func TestFmtCmdRejectsUnknownFormat(t *testing.T) {
	file := writeTemp(t, `1`)
	_, err := run(t, "fmt", "--format=bogus", file)
	require.Error(t, err)
}

func TestCacheCmdMissThenHit(t *testing.T) {
	file := writeTemp(t, `{"k":1}`)
	dir := t.TempDir()

	out, err := run(t, "cache", "--dir", dir, file)
	require.NoError(t, err)
	require.Contains(t, out, "miss")

	out, err = run(t, "cache", "--dir", dir, file)
	require.NoError(t, err)
	require.Contains(t, out, "hit")
}

func TestCacheCmdEvict(t *testing.T) {
	file := writeTemp(t, `{"k":1}`)
	dir := t.TempDir()

	_, err := run(t, "cache", "--dir", dir, file)
	require.NoError(t, err)

	out, err := run(t, "cache", "--dir", dir, "--evict", file)
	require.NoError(t, err)
	require.Contains(t, out, "evicted")

	out, err = run(t, "cache", "--dir", dir, file)
	require.NoError(t, err)
	require.Contains(t, out, "miss")
}

func TestResolveParserArgsFallsBackToDefault(t *testing.T) {
	flags := &rootFlags{}
	maxDepth, pflags := resolveParserArgs(flags)
	require.Equal(t, config.Default().MaxDepth, maxDepth)
	require.Zero(t, pflags)
}

func TestResolveParserArgsFlagOverridesConfig(t *testing.T) {
	flags := &rootFlags{maxDepth: 7}
	maxDepth, _ := resolveParserArgs(flags)
	require.Equal(t, 7, maxDepth)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.ejson")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
