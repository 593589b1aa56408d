// Package cache provides a content-addressed, on-disk cache of parsed VCM
// trees: the CLI hashes a source file's bytes plus the (max_depth, flags) it
// would be parsed with, and skips reparsing when an entry for that key
// already exists. The parser library itself has no notion of a cache; this
// package only exists for cmd/ejsonfmt.
package cache

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/purc-go/ejson/parser"
	"github.com/purc-go/ejson/vcm"
)

// entry is the CBOR-serializable mirror of a vcm.Node subtree. vcm.Node
// keeps its tree-linkage fields unexported, so entry is the wire shape;
// toEntry/toNode convert between the two.
type entry struct {
	Tag      vcm.Tag  `cbor:"tag"`
	Extra    vcm.Flag `cbor:"extra"`
	Bool     bool     `cbor:"bool,omitempty"`
	Int      int64    `cbor:"int,omitempty"`
	Uint     uint64   `cbor:"uint,omitempty"`
	Float    float64  `cbor:"float,omitempty"`
	Bytes    []byte   `cbor:"bytes,omitempty"`
	IsBinary bool     `cbor:"is_binary,omitempty"`
	Children []*entry `cbor:"children,omitempty"`
}

func toEntry(n *vcm.Node) *entry {
	if n == nil {
		return nil
	}
	e := &entry{
		Tag:      n.Tag,
		Extra:    n.Extra,
		Bool:     n.Bool,
		Int:      n.Int,
		Uint:     n.Uint,
		Float:    n.Float,
		Bytes:    n.Bytes,
		IsBinary: n.IsBinary,
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		e.Children = append(e.Children, toEntry(c))
	}
	return e
}

func (e *entry) toNode() *vcm.Node {
	if e == nil {
		return nil
	}
	n := vcm.New(e.Tag)
	n.Extra = e.Extra
	n.Bool = e.Bool
	n.Int = e.Int
	n.Uint = e.Uint
	n.Float = e.Float
	n.Bytes = e.Bytes
	n.IsBinary = e.IsBinary
	for _, c := range e.Children {
		vcm.AppendChild(n, c.toNode())
	}
	return n
}

// Key computes the cache key for src parsed with the given maxDepth/flags:
// BLAKE2b-256 over the source bytes followed by the two parameters, encoded
// as hex so it doubles as a safe filename.
func Key(src []byte, maxDepth int, flags parser.Flags) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("create hasher: %w", err)
	}
	h.Write(src)
	h.Write([]byte{
		byte(maxDepth), byte(maxDepth >> 8), byte(maxDepth >> 16), byte(maxDepth >> 24),
		byte(flags), byte(flags >> 8), byte(flags >> 16), byte(flags >> 24),
	})
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Cache is a directory of CBOR-encoded VCM trees, one file per key.
type Cache struct {
	dir string
}

// Open returns a Cache rooted at dir, creating dir if it does not exist.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".cbor")
}

// Get returns the cached tree for key, or ok=false if absent.
func (c *Cache) Get(key string) (root *vcm.Node, ok bool, err error) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var e entry
	if err := cbor.Unmarshal(data, &e); err != nil {
		return nil, false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	return e.toNode(), true, nil
}

// Put stores root under key, overwriting any existing entry.
func (c *Cache) Put(key string, root *vcm.Node) error {
	data, err := cbor.Marshal(toEntry(root))
	if err != nil {
		return fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	return os.WriteFile(c.path(key), data, 0o644)
}

// Evict removes the cache entry for key, if present.
func (c *Cache) Evict(key string) error {
	err := os.Remove(c.path(key))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
