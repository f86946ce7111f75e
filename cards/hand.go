package cards

import "fmt"

// Hand is a pile held by a player. Cards leave a hand by being played.
type Hand struct {
	Pile
	origin ContainerID
}

// NewHand creates a hand. Standard and WithDeckCount are deck-only options
// and are rejected.
func NewHand(opts ...Option) (*Hand, error) {
	o := buildOptions("hand", opts)
	if o.standard || o.deckCountSet {
		return nil, fmt.Errorf("%w: hands cannot be built from standard decks", ErrInvalidArgument)
	}
	if err := checkCards(o.cards); err != nil {
		return nil, err
	}
	h := &Hand{Pile: newPile(o), origin: o.origin}
	h.cards = append(h.cards, o.cards...)
	return h, nil
}

// Origin returns the deck the hand was dealt from, if known.
func (h *Hand) Origin() ContainerID { return h.origin }

// Play removes and returns the top card of the hand.
func (h *Hand) Play() (*Card, error) {
	return h.pop()
}

// PlayN plays n cards; the first element is the card that was on top.
func (h *Hand) PlayN(n int) (Cards, error) {
	return h.popN(n)
}

// Copy returns a new hand over the same card instances.
func (h *Hand) Copy() *Hand {
	cp := &Hand{Pile: newPile(h.derive("hand")), origin: h.origin}
	cp.cards = h.Cards()
	return cp
}

// Concat returns a new hand holding h's cards followed by src's.
func (h *Hand) Concat(src CardSource) (*Hand, error) {
	cp := h.Copy()
	if err := cp.Merge(src); err != nil {
		return nil, err
	}
	return cp, nil
}

// Repeat returns a new hand with n independent copies of each card.
func (h *Hand) Repeat(n int) (*Hand, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: multiplier %d", ErrInvalidArgument, n)
	}
	cp := &Hand{Pile: newPile(h.derive("hand")), origin: h.origin}
	cp.cards = repeatCards(h.cards, n)
	return cp, nil
}

func (h *Hand) String() string {
	return fmt.Sprintf("Hand (%d): %s", len(h.cards), Cards(h.cards))
}
