package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/purc-go/ejson/parser"
)

func newWatchCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-parse a file and print its tree on every save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			defer watcher.Close()

			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}

			reparse := func() {
				src, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "read:", err)
					return
				}
				maxDepth, pflags := resolveParserArgs(flags)
				p := parser.New(maxDepth, pflags)
				root, err := p.Parse(bytes.NewReader(src))
				if err != nil {
					if pe, ok := err.(*parser.ParseError); ok {
						pe.Filename = path
						pe.Source = string(src)
					}
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return
				}
				renderTree(cmd.OutOrStdout(), root)
			}

			reparse()

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
						reparse()
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintln(cmd.ErrOrStderr(), "watch:", err)
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				}
			}
		},
	}
	return cmd
}
