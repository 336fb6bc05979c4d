package symspell

import "github.com/go-symspell/symspell/internal/config"

// Config is the dictionary's full configuration: engine tunables, load
// field selection, and CLI defaults. See internal/config for the TOML
// field names.
type Config = config.Config

// DefaultConfig returns the spec's documented defaults:
// max edit distance 2, prefix length 7, count threshold 1.
func DefaultConfig() Config { return config.Default() }

// LoadConfig reads a TOML file and overlays it onto DefaultConfig().
func LoadConfig(path string) (Config, error) { return config.Load(path) }
