// Package cards models a standard deck of playing cards and the containers
// that hold them.
//
// A Card has a fixed identity, its rank and suit, plus mutable state: whether
// it is face up and which deck or hand it belongs to. Equality, counting and
// searching use identity only.
//
// Deck and Hand share one container algebra through the embedded Pile type.
// Index 0 is the bottom of a pile and the last index is the top; Draw, Play
// and Peek work from the top.
//
// # Basic Usage
//
//	deck, _ := cards.NewDeck(cards.Standard(), cards.WithSeed(42))
//	deck.Shuffle()
//	players, _ := deck.Deal(4, 2)
//	top, _ := deck.Draw()
//
// # Shoes
//
// WithDeckCount builds a multi-deck shoe. Each copy is an independent card
// value, so flipping one copy leaves the others alone:
//
//	shoe, _ := cards.NewDeck(cards.Standard(), cards.WithDeckCount(6))
//
// # Deterministic Shuffles
//
// Shuffle uses the random source given with WithRand or WithSeed, falling
// back to the math/rand/v2 global source. Tests should always seed.
//
// # Errors
//
// Every failure wraps one of the sentinel errors (ErrEmptyContainer,
// ErrInsufficientCards, ...) and can be matched with errors.Is. Operations
// on several cards check everything up front and leave the container
// unchanged when they fail.
package cards
