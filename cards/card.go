package cards

import (
	"fmt"
	"unicode/utf8"
)

// StandardSize is the number of cards in one standard deck.
const StandardSize = 52

// ContainerID identifies a Deck or Hand. Cards hold container IDs rather
// than pointers; the container owns the card, not the reverse.
type ContainerID string

// Card represents a playing card. Its identity is the (rank, suit) pair;
// face state and container references are mutable and excluded from equality.
// Cards are created face down.
type Card struct {
	rank   Rank
	suit   Suit
	color  Color
	faceUp bool
	deck   ContainerID
	hand   ContainerID
}

// CardOption configures a card at construction.
type CardOption func(*Card)

// FaceUp sets the initial face state.
func FaceUp(up bool) CardOption {
	return func(c *Card) { c.faceUp = up }
}

// InDeck records the deck the card belongs to.
func InDeck(id ContainerID) CardOption {
	return func(c *Card) { c.deck = id }
}

// InHand records the hand the card belongs to.
func InHand(id ContainerID) CardOption {
	return func(c *Card) { c.hand = id }
}

// NewCard creates a card from enum values.
func NewCard(rank Rank, suit Suit, opts ...CardOption) (*Card, error) {
	if !rank.Valid() {
		return nil, fmt.Errorf("%w: rank %d", ErrInvalidType, int(rank))
	}
	if !suit.Valid() {
		return nil, fmt.Errorf("%w: suit %d", ErrInvalidType, int(suit))
	}
	c := &Card{rank: rank, suit: suit, color: suit.Color()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ParseCard creates a card from rank and suit shorthand, e.g. ("10", "h").
func ParseCard(rank, suit string, opts ...CardOption) (*Card, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return nil, err
	}
	s, err := ParseSuit(suit)
	if err != nil {
		return nil, err
	}
	return NewCard(r, s, opts...)
}

// Parse parses a combined shorthand such as "A♠", "10h" or "qD".
func Parse(s string) (*Card, error) {
	suit, size := utf8.DecodeLastRuneInString(s)
	if suit == utf8.RuneError || size == len(s) {
		return nil, invalidValue("card", s)
	}
	return ParseCard(s[:len(s)-size], string(suit))
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) *Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func invalidValue(what, s string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidValue, what, s)
}

func (c *Card) Rank() Rank { return c.rank }

func (c *Card) Suit() Suit { return c.suit }

// Color returns the color derived from the card's suit.
func (c *Card) Color() Color { return c.color }

// SetRank changes the card's rank.
func (c *Card) SetRank(r Rank) error {
	if !r.Valid() {
		return fmt.Errorf("%w: rank %d", ErrInvalidType, int(r))
	}
	c.rank = r
	return nil
}

// SetRankString changes the card's rank from its display string.
func (c *Card) SetRankString(s string) error {
	r, err := ParseRank(s)
	if err != nil {
		return err
	}
	c.rank = r
	return nil
}

// SetSuit changes the card's suit and recomputes its color.
func (c *Card) SetSuit(s Suit) error {
	if !s.Valid() {
		return fmt.Errorf("%w: suit %d", ErrInvalidType, int(s))
	}
	c.suit = s
	c.color = s.Color()
	return nil
}

// SetSuitString changes the card's suit from its symbol or initial.
func (c *Card) SetSuitString(s string) error {
	suit, err := ParseSuit(s)
	if err != nil {
		return err
	}
	return c.SetSuit(suit)
}

// SetColor always fails: color follows the suit.
func (c *Card) SetColor(Color) error {
	return fmt.Errorf("%w: color is determined by suit", ErrImmutable)
}

func (c *Card) FaceUp() bool { return c.faceUp }

// SetFaceUp sets the face state and returns the card for chaining.
func (c *Card) SetFaceUp(up bool) *Card {
	c.faceUp = up
	return c
}

// Flip turns the card over and returns it for chaining.
func (c *Card) Flip() *Card {
	c.faceUp = !c.faceUp
	return c
}

// IsFace reports whether the card is a jack, queen or king.
func (c *Card) IsFace() bool {
	return c.rank.IsFace()
}

func (c *Card) DeckID() ContainerID { return c.deck }

func (c *Card) HandID() ContainerID { return c.hand }

func (c *Card) SetDeckID(id ContainerID) { c.deck = id }

func (c *Card) SetHandID(id ContainerID) { c.hand = id }

// Equal reports whether two cards share rank and suit.
func (c *Card) Equal(other *Card) bool {
	if c == nil || other == nil {
		return false
	}
	return c.rank == other.rank && c.suit == other.suit
}

// Less reports whether c ranks below other. Suits are ignored.
func (c *Card) Less(other *Card) bool {
	if c == nil || other == nil {
		return false
	}
	return c.rank.position(rankOrder) < other.rank.position(rankOrder)
}

// Greater reports whether c ranks above other. Suits are ignored.
func (c *Card) Greater(other *Card) bool {
	if c == nil || other == nil {
		return false
	}
	return c.rank.position(rankOrder) > other.rank.position(rankOrder)
}

// CompareCards orders two cards by rank position, returning -1, 0 or +1.
func CompareCards(a, b *Card) (int, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("%w: cannot compare nil card", ErrInvalidType)
	}
	switch {
	case a.Less(b):
		return -1, nil
	case a.Greater(b):
		return 1, nil
	default:
		return 0, nil
	}
}

// Clone returns an independent copy of the card.
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

// String returns the full form, e.g. "ACE of SPADES ♠".
func (c *Card) String() string {
	return fmt.Sprintf("%s of %s %s", c.rank.Name(), c.suit.Name(), c.suit)
}

// Display returns one of the short forms: "rank" ("A"), "suit" ("♠") or
// "color" ("black").
func (c *Card) Display(key string) (string, error) {
	switch key {
	case "rank":
		return c.rank.String(), nil
	case "suit":
		return c.suit.String(), nil
	case "color":
		return c.color.String(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, key)
	}
}
