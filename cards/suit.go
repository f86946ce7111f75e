package cards

import (
	"slices"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota + 1
	Diamonds
	Clubs
	Spades
)

var suitOrder = []Suit{Spades, Hearts, Diamonds, Clubs}

// Suits returns the default suit order used for sorting. The result is a copy.
func Suits() []Suit {
	return slices.Clone(suitOrder)
}

// declaredSuits is the order standard decks are built in.
var declaredSuits = []Suit{Hearts, Diamonds, Clubs, Spades}

// String returns the unicode symbol of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Name returns the upper-case name of a suit, e.g. "HEARTS".
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "SPADES"
	case Hearts:
		return "HEARTS"
	case Diamonds:
		return "DIAMONDS"
	case Clubs:
		return "CLUBS"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Spades
}

// Color returns the color a suit implies.
func (s Suit) Color() Color {
	switch s {
	case Hearts, Diamonds:
		return Red
	case Spades, Clubs:
		return Black
	default:
		return 0
	}
}

func (s Suit) position(order []Suit) int {
	for i, o := range order {
		if o == s {
			return i
		}
	}
	return -1
}

// ParseSuit parses a suit from its symbol ("♥") or the first letter of its
// name in either case ("H", "h").
func ParseSuit(s string) (Suit, error) {
	for _, suit := range declaredSuits {
		if s == suit.String() || (len(s) == 1 && strings.EqualFold(s, suit.Name()[:1])) {
			return suit, nil
		}
	}
	return 0, invalidValue("suit", s)
}

// Color is the color of a card, derived from its suit.
type Color int

const (
	Red Color = iota + 1
	Black
)

// String returns "red" or "black".
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "?"
	}
}
