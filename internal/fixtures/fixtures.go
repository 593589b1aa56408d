// Package fixtures loads and validates the conformance fixtures under
// testdata/conformance: JSON files each holding an eJSON input string and
// the VCM tree shape it should parse to. Every fixture is checked against
// DefaultSchema before the conformance suite runs it, so a malformed
// fixture fails loudly instead of silently matching nothing.
package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// DefaultSchema describes the shape every testdata/conformance/*.json file
// must have: an "input" string and an "expect" node tree.
const DefaultSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["input", "expect"],
	"additionalProperties": false,
	"properties": {
		"input": {"type": "string"},
		"error": {"type": "string"},
		"expect": {"$ref": "#/$defs/node"}
	},
	"$defs": {
		"node": {
			"type": "object",
			"required": ["tag"],
			"additionalProperties": false,
			"properties": {
				"tag": {"type": "string"},
				"bool": {"type": "boolean"},
				"int": {"type": "integer"},
				"uint": {"type": "integer", "minimum": 0},
				"float": {"type": "number"},
				"bytes": {"type": "string"},
				"children": {"type": "array", "items": {"$ref": "#/$defs/node"}}
			}
		}
	}
}`

// Node is the expected-shape description of one VCM node, as found under a
// fixture's "expect" key.
type Node struct {
	Tag      string  `json:"tag"`
	Bool     bool    `json:"bool,omitempty"`
	Int      int64   `json:"int,omitempty"`
	Uint     uint64  `json:"uint,omitempty"`
	Float    float64 `json:"float,omitempty"`
	Bytes    string  `json:"bytes,omitempty"`
	Children []Node  `json:"children,omitempty"`
}

// Fixture is one conformance case: an eJSON input and either the tree it
// must parse to, or the error kind name it must fail with.
type Fixture struct {
	Name   string
	Input  string `json:"input"`
	Error  string `json:"error,omitempty"`
	Expect Node   `json:"expect"`
}

// Schema compiles schemaSource, the schema's JSON text (the tests pass
// DefaultSchema), once for repeated use by Load.
func Schema(schemaSource string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("fixture.json", strings.NewReader(schemaSource)); err != nil {
		return nil, fmt.Errorf("add fixture schema: %w", err)
	}
	return compiler.Compile("fixture.json")
}

// Load reads every *.json file in dir, validates each against schema, and
// decodes it into a Fixture. Fixtures are returned sorted by Name for
// deterministic test output.
func Load(dir string, schema *jsonschema.Schema) ([]Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var out []Fixture
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, ent.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		var raw any
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if err := schema.Validate(raw); err != nil {
			return nil, fmt.Errorf("fixture %s failed schema validation: %w", path, err)
		}

		var f Fixture
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		f.Name = strings.TrimSuffix(ent.Name(), ".json")
		out = append(out, f)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
