package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/purc-go/ejson/parser"
)

func newParseCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a document and report success or the first error",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			src, err := readInput(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			maxDepth, pflags := resolveParserArgs(flags)
			p := parser.New(maxDepth, pflags)
			root, err := p.Parse(bytes.NewReader(src))
			if err != nil {
				if pe, ok := err.(*parser.ParseError); ok && path != "-" {
					pe.Filename = path
					pe.Source = string(src)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", root.String())
			return nil
		},
	}
	return cmd
}
