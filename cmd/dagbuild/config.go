package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lytics/confl"
)

// Variants accepted in the config.
const (
	VariantDFA = "dfa"
	VariantPC  = "pc"
)

var (
	// ErrNoAlphabet is returned for a config without symbols.
	ErrNoAlphabet = errors.New("dagbuild: alphabet is empty")

	// ErrUnknownVariant is returned for a variant other than dfa or pc.
	ErrUnknownVariant = errors.New("dagbuild: unknown variant")
)

type (
	// Config drives one build: the alphabet, the labeled samples to insert,
	// the words to look up afterwards and optional outputs.
	Config struct {
		LogLevel string   `json:"log_level"` // [debug,info,warn,error]
		Variant  string   `json:"variant"`   // dfa or pc
		Alphabet string   `json:"alphabet"`  // one symbol per character
		Samples  []Sample `json:"samples"`   // inserted in order
		Queries  []string `json:"queries"`   // looked up after all samples
		Title    string   `json:"title"`     // DOT graph title
		DotOut   string   `json:"dot_out"`   // DOT output path; empty skips
		Table    bool     `json:"table"`     // print the transition table
	}

	// Sample is one labeled word.
	Sample struct {
		Word   string `json:"word"`
		Accept bool   `json:"accept"`
	}
)

// LoadConfigFromFile reads a confl formatted config file, expanding
// environment variables.
func LoadConfigFromFile(filename string) (*Config, error) {
	confBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return LoadConfig(string(confBytes))
}

// LoadConfig parses a confl formatted config and fills in defaults.
func LoadConfig(conf string) (*Config, error) {
	c := Config{LogLevel: "info", Variant: VariantDFA}
	if _, err := confl.Decode(os.ExpandEnv(conf), &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks the fields a build cannot do without.
func (c *Config) Validate() error {
	if c.Alphabet == "" {
		return ErrNoAlphabet
	}
	switch c.Variant {
	case VariantDFA, VariantPC:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVariant, c.Variant)
	}

	return nil
}
