// Package config loads the ejsonfmt CLI's project file, .ejsonfmt.yaml.
// The library itself never reads this file: parser.New takes max_depth and
// flags as explicit arguments, per spec.md §6.3. Only cmd/ejsonfmt consults
// config to fill in those arguments' defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/purc-go/ejson/parser"
)

// FileName is the project config file the CLI looks for, starting in the
// current directory and walking up to the filesystem root.
const FileName = ".ejsonfmt.yaml"

// Config mirrors the shape of .ejsonfmt.yaml.
type Config struct {
	// MaxDepth overrides parser.DefaultMaxDepth for every parse the CLI
	// performs, unless overridden again by a command-line flag.
	MaxDepth int `yaml:"max_depth"`
	// PrintLog turns on EJSON_DEBUG_PARSER-equivalent tracing by default.
	PrintLog bool `yaml:"print_log"`
	// FixtureSchema is a JSON Schema path loaded from the file. No code
	// reads it: internal/fixtures is always compiled from the schema text
	// its caller passes, which the conformance tests set to
	// fixtures.DefaultSchema.
	FixtureSchema string `yaml:"fixture_schema"`
}

// Default returns the configuration used when no .ejsonfmt.yaml is found.
func Default() Config {
	return Config{MaxDepth: parser.DefaultMaxDepth}
}

// Flags translates the loaded config into parser.Flags for parser.New/Reset.
func (c Config) Flags() parser.Flags {
	var f parser.Flags
	if c.PrintLog {
		f |= parser.PrintLog
	}
	return f
}

// Load reads and parses the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = parser.DefaultMaxDepth
	}
	return cfg, nil
}

// Find walks up from dir looking for FileName, returning Default() with no
// error when none is found anywhere up to the filesystem root.
func Find(dir string) (Config, string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return Config{}, "", err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			cfg, err := Load(candidate)
			return cfg, candidate, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), "", nil
		}
		dir = parent
	}
}
