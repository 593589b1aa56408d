// Command ejsonfmt is a small CLI around the ejson parser: parse a file or
// stdin, print its VCM tree, watch a file and re-parse on every save, or
// inspect the on-disk parse cache.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/purc-go/ejson/internal/config"
	"github.com/purc-go/ejson/parser"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	maxDepth int
	debug    bool
	noColor  bool
}

func main() {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:           "ejsonfmt",
		Short:         "Parse and inspect eJSON/JSONEE documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().IntVar(&flags.maxDepth, "max-depth", 0, "maximum container nesting depth (0 = use config/default)")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable EJSON_DEBUG_PARSER-equivalent state tracing")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored diagnostics")

	rootCmd.AddCommand(
		newParseCmd(&flags),
		newFmtCmd(&flags),
		newWatchCmd(&flags),
		newCacheCmd(&flags),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveParserArgs merges the persistent flags with the project's
// .ejsonfmt.yaml (if any), flags taking precedence.
func resolveParserArgs(flags *rootFlags) (maxDepth int, pflags parser.Flags) {
	cfg, _, err := config.Find(".")
	if err != nil {
		cfg = config.Default()
	}

	maxDepth = cfg.MaxDepth
	if flags.maxDepth > 0 {
		maxDepth = flags.maxDepth
	}

	pflags = cfg.Flags()
	if flags.debug {
		pflags |= parser.PrintLog
	}
	return maxDepth, pflags
}

// readInput returns the file's contents, or stdin's when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
