package cards

import "errors"

var (
	// ErrInvalidType indicates an argument that is not a card, or an enum
	// value outside its closed set (for example Rank(42)).
	ErrInvalidType = errors.New("cards: invalid type")

	// ErrInvalidValue indicates a shorthand string that names no rank or suit.
	ErrInvalidValue = errors.New("cards: invalid value")

	// ErrInvalidArgument indicates a well-typed but out-of-domain argument,
	// such as a negative multiplier or deck count.
	ErrInvalidArgument = errors.New("cards: invalid argument")

	ErrInvalidIndex    = errors.New("cards: invalid index")
	ErrInvalidOrdering = errors.New("cards: invalid ordering")
	ErrInvalidFormat   = errors.New("cards: invalid format")

	// ErrImmutable is returned when a derived field (color) is written.
	ErrImmutable = errors.New("cards: immutable")

	ErrEmptyContainer    = errors.New("cards: empty container")
	ErrInsufficientCards = errors.New("cards: insufficient cards")
	ErrNotFound          = errors.New("cards: not found")
)
