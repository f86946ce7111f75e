package cards

import (
	"slices"
	"strings"
)

// Rank represents a card rank. Ranks carry no numeric value; their order is
// defined by an explicit table (see Ranks).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankOrder = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Ranks returns the canonical rank order, lowest first. It is the default for
// comparisons and sorting. The result is a copy.
func Ranks() []Rank {
	return slices.Clone(rankOrder)
}

var rankNames = map[Rank]string{
	Two: "TWO", Three: "THREE", Four: "FOUR", Five: "FIVE", Six: "SIX",
	Seven: "SEVEN", Eight: "EIGHT", Nine: "NINE", Ten: "TEN",
	Jack: "JACK", Queen: "QUEEN", King: "KING", Ace: "ACE",
}

// String returns the short display string of a rank ("2".."10", "J", "Q", "K", "A").
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Name returns the upper-case name of a rank, e.g. "QUEEN".
func (r Rank) Name() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// IsFace reports whether the rank is a face rank (J, Q, K).
func (r Rank) IsFace() bool {
	return r >= Jack && r <= King
}

// position returns the index of r in order, or -1.
func (r Rank) position(order []Rank) int {
	for i, o := range order {
		if o == r {
			return i
		}
	}
	return -1
}

// ParseRank parses a rank display string. Letters are case-insensitive.
func ParseRank(s string) (Rank, error) {
	for _, r := range rankOrder {
		if strings.EqualFold(r.String(), s) {
			return r, nil
		}
	}
	return 0, invalidValue("rank", s)
}
