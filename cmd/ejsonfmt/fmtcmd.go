package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/purc-go/ejson/parser"
)

func newFmtCmd(flags *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Parse a document and print its VCM tree",
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

			switch format {
			case "tree":
				renderTree(cmd.OutOrStdout(), root)
			case "", "debug":
				fmt.Fprintln(cmd.OutOrStdout(), root.String())
			default:
				return fmt.Errorf("unknown --format %q (want tree or debug)", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "debug", "output format: debug or tree")
	return cmd
}
