package cards

import (
	"fmt"

	"github.com/lox/cardkit/internal/randutil"
)

// Deck is a pile that cards are drawn from. Use Standard and WithDeckCount
// to build a full deck or a multi-deck shoe.
type Deck struct {
	Pile
}

// NewDeck creates a deck. With Standard the 52-card set is laid down first,
// then any WithCards on top; WithDeckCount then duplicates the whole result.
func NewDeck(opts ...Option) (*Deck, error) {
	o := buildOptions("deck", opts)
	if o.deckCount < 0 {
		return nil, fmt.Errorf("%w: deck count %d", ErrInvalidArgument, o.deckCount)
	}
	if err := checkCards(o.cards); err != nil {
		return nil, err
	}

	d := &Deck{Pile: newPile(o)}
	if o.standard {
		d.cards = standardSet(d.id)
	}
	d.cards = append(d.cards, o.cards...)
	if err := d.Multiply(o.deckCount); err != nil {
		return nil, err
	}

	d.debug("Created deck", "cards", len(d.cards), "decks", o.deckCount)
	return d, nil
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (*Card, error) {
	return d.pop()
}

// DrawN draws n cards; the first element is the card that was on top.
func (d *Deck) DrawN(n int) (Cards, error) {
	return d.popN(n)
}

// Deal gives cardsPerPlayer cards to each of numPlayers players, one card per
// player per round, drawing from the top. Nothing is drawn unless the deck
// can cover the whole deal.
func (d *Deck) Deal(numPlayers, cardsPerPlayer int) ([]Cards, error) {
	if numPlayers < 0 || cardsPerPlayer < 0 {
		return nil, fmt.Errorf("%w: deal %d cards to %d players", ErrInvalidArgument, cardsPerPlayer, numPlayers)
	}
	if need := numPlayers * cardsPerPlayer; need > len(d.cards) {
		return nil, fmt.Errorf("%w: dealing %d cards to %d players needs %d, have %d",
			ErrInsufficientCards, cardsPerPlayer, numPlayers, need, len(d.cards))
	}

	hands := make([]Cards, numPlayers)
	for i := range hands {
		hands[i] = make(Cards, 0, cardsPerPlayer)
	}
	for range cardsPerPlayer {
		for i := range hands {
			c, _ := d.pop()
			hands[i] = append(hands[i], c)
		}
	}

	d.debug("Dealt cards", "players", numPlayers, "perPlayer", cardsPerPlayer, "remaining", len(d.cards))
	return hands, nil
}

// DealHands deals like Deal and wraps each player's cards in a Hand that
// records this deck as its origin. Dealt cards point back at their hand.
func (d *Deck) DealHands(numPlayers, cardsPerPlayer int) ([]*Hand, error) {
	dealt, err := d.Deal(numPlayers, cardsPerPlayer)
	if err != nil {
		return nil, err
	}
	hands := make([]*Hand, len(dealt))
	for i, cards := range dealt {
		o := buildOptions("hand", []Option{
			WithRand(randutil.Derive(d.rng)),
			WithLogger(d.logger),
			FromDeck(d.id),
		})
		h := &Hand{Pile: newPile(o), origin: o.origin}
		for _, c := range cards {
			c.SetHandID(h.id)
		}
		h.cards = cards
		hands[i] = h
	}
	return hands, nil
}

// Fill empties the deck and refills it with deckCount standard sets owned by
// this deck. Hands have no equivalent; they only hold cards dealt to them.
func (d *Deck) Fill(deckCount int) error {
	if deckCount < 0 {
		return fmt.Errorf("%w: deck count %d", ErrInvalidArgument, deckCount)
	}
	d.Clear()
	if deckCount > 0 {
		d.cards = repeatCards(standardSet(d.id), deckCount)
	}
	d.debug("Filled deck", "decks", deckCount, "cards", len(d.cards))
	return nil
}

// Copy returns a new deck over the same card instances.
func (d *Deck) Copy() *Deck {
	cp := &Deck{Pile: newPile(d.derive("deck"))}
	cp.cards = d.Cards()
	return cp
}

// Concat returns a new deck holding d's cards followed by src's.
func (d *Deck) Concat(src CardSource) (*Deck, error) {
	cp := d.Copy()
	if err := cp.Merge(src); err != nil {
		return nil, err
	}
	return cp, nil
}

// Repeat returns a new deck with n independent copies of each card.
func (d *Deck) Repeat(n int) (*Deck, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: multiplier %d", ErrInvalidArgument, n)
	}
	cp := &Deck{Pile: newPile(d.derive("deck"))}
	cp.cards = repeatCards(d.cards, n)
	return cp, nil
}

func (d *Deck) String() string {
	return fmt.Sprintf("Deck of %d cards: %s", len(d.cards), Cards(d.cards))
}
