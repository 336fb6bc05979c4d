// Package config parses the TOML configuration file that tunes a
// dictionary's engine parameters, load behavior, and CLI defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the entire configuration structure for a dictionary.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Load   LoadConfig   `toml:"load"`
	CLI    CLIConfig    `toml:"cli"`
}

// EngineConfig controls the core SymSpell parameters and memory layout.
type EngineConfig struct {
	MaxEditDistance     int   `toml:"max_edit_distance"`
	PrefixLength        int   `toml:"prefix_length"`
	CountThreshold      int64 `toml:"count_threshold"`
	StringArenaBytes    int   `toml:"string_arena_bytes"`
	EntryArenaCapacity  int   `toml:"entry_arena_capacity"`
	DeleteQueueCapacity int   `toml:"delete_queue_capacity"`
}

// LoadConfig selects which whitespace-separated fields of a dictionary
// file line hold the term and the frequency.
type LoadConfig struct {
	TermColumn  int `toml:"term_column"`
	CountColumn int `toml:"count_column"`
}

// CLIConfig holds the [cli] table's settings. The cmd/symspell harness does
// not read them: it always asks Lookup for the single Top suggestion.
type CLIConfig struct {
	DefaultMaxSuggestions int    `toml:"default_max_suggestions"`
	DefaultVerbosity      string `toml:"default_verbosity"`
}

const (
	defaultStringArenaBytes    = 128 * 1024 * 1024
	defaultEntryArenaCapacity  = 2_000_000
	defaultDeleteQueueCapacity = 10_000
)

// Default returns the configuration documented as the engine's defaults:
// max edit distance 2, prefix length 7, count threshold 1.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			MaxEditDistance:     2,
			PrefixLength:        7,
			CountThreshold:      1,
			StringArenaBytes:    defaultStringArenaBytes,
			EntryArenaCapacity:  defaultEntryArenaCapacity,
			DeleteQueueCapacity: defaultDeleteQueueCapacity,
		},
		Load: LoadConfig{
			TermColumn:  0,
			CountColumn: 1,
		},
		CLI: CLIConfig{
			DefaultMaxSuggestions: 5,
			DefaultVerbosity:      "top",
		},
	}
}

// Load reads a TOML file and overlays it onto Default(); fields absent
// from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
