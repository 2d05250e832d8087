// config.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file defines the engine's runtime configuration, loaded from
// a .env file (github.com/joho/godotenv, kept from the teacher's own
// go.mod) and overridable by flags in the cmd/ entry points.

package skrafl

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings needed to stand up a Board and Evaluator:
// which language's tile set and codec extras to use, where the
// wordlist lives, and the evaluator's sampling parameters.
type Config struct {
	Language    Language
	WordlistDir string
	Seed        int64
	Samples     int
}

// DefaultConfig returns the engine's built-in defaults.
func DefaultConfig() Config {
	return Config{
		Language:    English,
		WordlistDir: "wordlists",
		Seed:        DefaultSeed,
		Samples:     DefaultSampleCount,
	}
}

// LoadConfig starts from DefaultConfig, then applies any of
// WORDFEUD_LANGUAGE / WORDFEUD_WORDLIST_DIR / WORDFEUD_SEED /
// WORDFEUD_SAMPLES found in envFile (if it exists) or the process
// environment. A missing envFile is not an error: godotenv.Load is
// best-effort, matching the teacher's own use of the package.
func LoadConfig(envFile string) Config {
	_ = godotenv.Load(envFile)
	cfg := DefaultConfig()
	if v, ok := os.LookupEnv("WORDFEUD_LANGUAGE"); ok {
		cfg.Language = LanguageFromName(v)
	}
	if v, ok := os.LookupEnv("WORDFEUD_WORDLIST_DIR"); ok {
		cfg.WordlistDir = v
	}
	if v, ok := os.LookupEnv("WORDFEUD_SEED"); ok {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v, ok := os.LookupEnv("WORDFEUD_SAMPLES"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Samples = n
		}
	}
	return cfg
}

// LanguageFromName maps a short language code (en, nl, is, pl, no) to
// a Language, defaulting to English for anything unrecognized.
func LanguageFromName(name string) Language {
	switch name {
	case "nl":
		return Dutch
	case "is":
		return Icelandic
	case "pl":
		return Polish
	case "no":
		return Norwegian
	default:
		return English
	}
}
