package cards

import (
	"fmt"
	"slices"
)

// SortOption configures Pile.Sort.
type SortOption func(*sortConfig)

type sortConfig struct {
	ranks      []Rank
	suits      []Suit
	descending bool
}

// RankOrder replaces the default rank order (see Ranks) for one sort.
func RankOrder(ranks ...Rank) SortOption {
	return func(c *sortConfig) { c.ranks = ranks }
}

// SuitOrder replaces the default suit order (see Suits) for one sort.
func SuitOrder(suits ...Suit) SortOption {
	return func(c *sortConfig) { c.suits = suits }
}

// Descending sorts highest first.
func Descending() SortOption {
	return func(c *sortConfig) { c.descending = true }
}

// Sort orders the pile by rank position, then suit position. The sort is
// stable. If a custom order omits a rank or suit present in the pile the
// pile is left untouched and ErrInvalidOrdering is returned.
func (p *Pile) Sort(opts ...SortOption) error {
	cfg := sortConfig{ranks: rankOrder, suits: suitOrder}
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, c := range p.cards {
		if c.rank.position(cfg.ranks) < 0 {
			return fmt.Errorf("%w: rank %s missing from order", ErrInvalidOrdering, c.rank.Name())
		}
		if c.suit.position(cfg.suits) < 0 {
			return fmt.Errorf("%w: suit %s missing from order", ErrInvalidOrdering, c.suit.Name())
		}
	}

	slices.SortStableFunc(p.cards, func(a, b *Card) int {
		d := a.rank.position(cfg.ranks) - b.rank.position(cfg.ranks)
		if d == 0 {
			d = a.suit.position(cfg.suits) - b.suit.position(cfg.suits)
		}
		if cfg.descending {
			return -d
		}
		return d
	})
	p.debug("Sorted pile", "descending", cfg.descending)
	return nil
}
