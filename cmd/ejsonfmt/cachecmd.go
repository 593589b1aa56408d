package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/purc-go/ejson/internal/cache"
	"github.com/purc-go/ejson/parser"
)

func newCacheCmd(flags *rootFlags) *cobra.Command {
	var dir string
	var evict bool

	cmd := &cobra.Command{
		Use:   "cache <file>",
		Short: "Parse a file through the on-disk VCM cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			maxDepth, pflags := resolveParserArgs(flags)
			key, err := cache.Key(src, maxDepth, pflags)
			if err != nil {
				return err
			}

			c, err := cache.Open(dir)
			if err != nil {
				return err
			}

			if evict {
				if err := c.Evict(key); err != nil {
					return fmt.Errorf("evict %s: %w", key, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "evicted %s\n", key)
				return nil
			}

			if root, ok, err := c.Get(key); err != nil {
				return fmt.Errorf("read cache entry %s: %w", key, err)
			} else if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "hit %s: %s\n", key, root.String())
				return nil
			}

			p := parser.New(maxDepth, pflags)
			root, err := p.Parse(bytes.NewReader(src))
			if err != nil {
				if pe, ok := err.(*parser.ParseError); ok {
					pe.Filename = path
					pe.Source = string(src)
				}
				return err
			}
			if err := c.Put(key, root); err != nil {
				return fmt.Errorf("write cache entry %s: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "miss %s: %s\n", key, root.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", filepath.Join(os.TempDir(), "ejsonfmt-cache"), "cache directory")
	cmd.Flags().BoolVar(&evict, "evict", false, "remove the cache entry for <file> instead of parsing")
	return cmd
}
