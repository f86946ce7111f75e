// Package config loads shoe and sort-order presets from HCL files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/lox/cardkit/cards"
	"github.com/lox/cardkit/internal/fileutil"
)

var (
	ErrUnknownShoe     = errors.New("config: unknown shoe")
	ErrUnknownOrdering = errors.New("config: unknown ordering")
	ErrInvalid         = errors.New("config: invalid")
)

// Config represents a complete cardkit configuration file
type Config struct {
	Logging   *LoggingConfig   `hcl:"logging,block"`
	Shoes     []ShoeConfig     `hcl:"shoe,block"`
	Orderings []OrderingConfig `hcl:"ordering,block"`
}

// LoggingConfig controls the logger handed to decks built from a shoe.
type LoggingConfig struct {
	Level  string `hcl:"level,optional"`
	Prefix string `hcl:"prefix,optional"`
}

// ShoeConfig describes a deck preset.
type ShoeConfig struct {
	Name     string `hcl:"name,label"`
	Decks    *int   `hcl:"decks,optional"`
	Standard bool   `hcl:"standard,optional"`
	Seed     *int64 `hcl:"seed,optional"`
	Shuffle  bool   `hcl:"shuffle,optional"`
}

// OrderingConfig is a named sort order written in card shorthand.
type OrderingConfig struct {
	Name  string   `hcl:"name,label"`
	Ranks []string `hcl:"ranks,optional"`
	Suits []string `hcl:"suits,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Logging: &LoggingConfig{Level: "info"},
		Shoes: []ShoeConfig{
			{Name: "standard", Decks: intPtr(1), Standard: true, Shuffle: true},
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Logging == nil {
		cfg.Logging = &LoggingConfig{}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	// an explicit decks = 0 is kept: it builds an empty deck
	for i := range cfg.Shoes {
		if cfg.Shoes[i].Decks == nil {
			cfg.Shoes[i].Decks = intPtr(1)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Encode renders the configuration as HCL.
func (c *Config) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(c, f.Body())
	return f.Bytes()
}

// Save validates the configuration and writes it to filename atomically.
func (c *Config) Save(filename string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := fileutil.WriteAtomic(filename, c.Encode(), 0o644); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Validate checks levels, deck counts, names and orderings.
func (c *Config) Validate() error {
	if c.Logging != nil {
		if _, err := log.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("%w: logging level %q", ErrInvalid, c.Logging.Level)
		}
	}

	seen := make(map[string]bool)
	for _, shoe := range c.Shoes {
		if seen[shoe.Name] {
			return fmt.Errorf("%w: duplicate shoe %q", ErrInvalid, shoe.Name)
		}
		seen[shoe.Name] = true
		if shoe.Decks != nil && *shoe.Decks < 0 {
			return fmt.Errorf("%w: shoe %s: decks must not be negative", ErrInvalid, shoe.Name)
		}
	}

	clear(seen)
	for _, ord := range c.Orderings {
		if seen[ord.Name] {
			return fmt.Errorf("%w: duplicate ordering %q", ErrInvalid, ord.Name)
		}
		seen[ord.Name] = true
		if _, err := ord.SortOptions(); err != nil {
			return fmt.Errorf("%w: ordering %s: %w", ErrInvalid, ord.Name, err)
		}
	}
	return nil
}

// Shoe returns the named shoe preset.
func (c *Config) Shoe(name string) (*ShoeConfig, error) {
	for i := range c.Shoes {
		if c.Shoes[i].Name == name {
			return &c.Shoes[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShoe, name)
}

// Ordering returns the named ordering preset.
func (c *Config) Ordering(name string) (*OrderingConfig, error) {
	for i := range c.Orderings {
		if c.Orderings[i].Name == name {
			return &c.Orderings[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOrdering, name)
}

// NewLogger builds a logger writing to w at the configured level.
func (l *LoggingConfig) NewLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging level %q", ErrInvalid, l.Level)
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: l.Prefix,
	}), nil
}

// DeckCount returns the configured number of decks, one when unset.
func (s *ShoeConfig) DeckCount() int {
	if s.Decks == nil {
		return 1
	}
	return *s.Decks
}

// NewDeck builds the deck the shoe describes, shuffled if the shoe asks for
// it. A nil logger leaves the deck silent.
func (s *ShoeConfig) NewDeck(logger *log.Logger) (*cards.Deck, error) {
	opts := []cards.Option{cards.WithDeckCount(s.DeckCount())}
	if s.Standard {
		opts = append(opts, cards.Standard())
	}
	if s.Seed != nil {
		opts = append(opts, cards.WithSeed(*s.Seed))
	}
	if logger != nil {
		opts = append(opts, cards.WithLogger(logger))
	}

	deck, err := cards.NewDeck(opts...)
	if err != nil {
		return nil, fmt.Errorf("shoe %s: %w", s.Name, err)
	}
	if s.Shuffle {
		deck.Shuffle()
	}
	return deck, nil
}

// SortOptions converts the ordering into options for Pile.Sort. Empty rank
// or suit lists keep the defaults.
func (o *OrderingConfig) SortOptions() ([]cards.SortOption, error) {
	var opts []cards.SortOption
	if len(o.Ranks) > 0 {
		ranks := make([]cards.Rank, len(o.Ranks))
		for i, s := range o.Ranks {
			r, err := cards.ParseRank(s)
			if err != nil {
				return nil, err
			}
			ranks[i] = r
		}
		opts = append(opts, cards.RankOrder(ranks...))
	}
	if len(o.Suits) > 0 {
		suits := make([]cards.Suit, len(o.Suits))
		for i, s := range o.Suits {
			suit, err := cards.ParseSuit(s)
			if err != nil {
				return nil, err
			}
			suits[i] = suit
		}
		opts = append(opts, cards.SuitOrder(suits...))
	}
	return opts, nil
}

func intPtr(n int) *int { return &n }
