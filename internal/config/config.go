// Package config holds the harness configuration: which chapter to check,
// which idiom literals force a skip, and the probe table for the chapter's
// teaching functions.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"snipvet/internal/execute"
)

// DefaultPath is where Load looks when no explicit config path is given.
const DefaultPath = ".snipvet.yaml"

// EnvChapter overrides the configured chapter path when set.
const EnvChapter = "SNIPVET_CHAPTER"

// Config holds all snipvet configuration.
type Config struct {
	// Chapter is the documentation source to validate.
	Chapter string `yaml:"chapter"`

	// SkipLiterals are exact, case-sensitive substrings; any block
	// containing one is skipped, never executed.
	SkipLiterals []string `yaml:"skip_literals"`

	// EntryGuard marks the start of a block's driver section; only the
	// text before its first occurrence is executed.
	EntryGuard string `yaml:"entry_guard"`

	// Probes map the chapter's exemplar symbols to literal invocations.
	// Kept in sync manually when the chapter's function names change.
	Probes []execute.Probe `yaml:"probes"`
}

// Default returns the built-in configuration: the concurrency chapter, the
// known unsafe-idiom denylist, and the probe table for its teaching
// functions.
func Default() Config {
	return Config{
		Chapter:      "book/11-concurrency.qmd",
		SkipLiterals: execute.DefaultSkipLiterals(),
		EntryGuard:   execute.DefaultGuard,
		Probes: []execute.Probe{
			{Symbol: "Square", Call: "Square(5)"},
			{Symbol: "MapWords", Call: `MapWords("hello world hello")`},
			{Symbol: "ReduceCounts", Call: `ReduceCounts(map[string]int{"hello": 2}, map[string]int{"world": 1})`},
			{Symbol: "SquareMapper", Call: "SquareMapper(5)"},
			{Symbol: "SumReducer", Call: "SumReducer(10, 20)"},
		},
	}
}

// Load reads the config at path on top of the defaults. A missing file is
// not an error: the defaults apply. The SNIPVET_CHAPTER environment variable
// wins over both.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults apply.
	default:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if chapter := os.Getenv(EnvChapter); chapter != "" {
		cfg.Chapter = chapter
	}
	if len(cfg.SkipLiterals) == 0 {
		cfg.SkipLiterals = execute.DefaultSkipLiterals()
	}
	if cfg.EntryGuard == "" {
		cfg.EntryGuard = execute.DefaultGuard
	}
	return cfg, nil
}
