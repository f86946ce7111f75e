package cards

import (
	"fmt"
	"iter"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// Cards is a plain ordered list of cards, as returned by draws and deals.
type Cards []*Card

// All iterates the list in order.
func (cs Cards) All() iter.Seq[*Card] {
	return slices.Values(cs)
}

func (cs Cards) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// CardSource is anything that can list cards: Deck, Hand and Cards all are.
type CardSource interface {
	All() iter.Seq[*Card]
}

// Pile is the ordered card container shared by Deck and Hand. Index 0 is the
// bottom and the highest index is the top. Duplicate cards are allowed.
//
// A Pile is not safe for concurrent mutation; see Shared.
type Pile struct {
	id     ContainerID
	cards  []*Card
	rng    *rand.Rand
	logger *log.Logger
}

func newPile(o *options) Pile {
	return Pile{id: o.id, rng: o.rng, logger: o.logger}
}

// derive returns an empty pile sharing p's random source and logger.
func (p *Pile) derive(kind string) *options {
	return buildOptions(kind, []Option{WithRand(p.rng), WithLogger(p.logger)})
}

func (p *Pile) debug(msg string, keyvals ...any) {
	if p.logger == nil {
		return
	}
	p.logger.Debug(msg, append([]any{"container", p.id}, keyvals...)...)
}

func (p *Pile) ID() ContainerID { return p.id }

func (p *Pile) Len() int { return len(p.cards) }

func (p *Pile) IsEmpty() bool { return len(p.cards) == 0 }

// Cards returns a snapshot of the pile, bottom to top.
func (p *Pile) Cards() Cards {
	return slices.Clone(Cards(p.cards))
}

// All iterates the pile bottom to top. Each iteration reads the pile as it
// is at that step, so cards appended during iteration are visited and
// iteration stops early if the pile shrinks.
func (p *Pile) All() iter.Seq[*Card] {
	return func(yield func(*Card) bool) {
		for i := 0; i < len(p.cards); i++ {
			if !yield(p.cards[i]) {
				return
			}
		}
	}
}

func checkCard(c *Card) error {
	if c == nil {
		return fmt.Errorf("%w: nil card", ErrInvalidType)
	}
	return nil
}

func checkCards(cards []*Card) error {
	for i, c := range cards {
		if c == nil {
			return fmt.Errorf("%w: nil card at position %d", ErrInvalidType, i)
		}
	}
	return nil
}

// collect reads src fully before anything is mutated, so a pile can be merged
// with itself.
func collect(src CardSource) ([]*Card, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil card source", ErrInvalidType)
	}
	var out []*Card
	for c := range src.All() {
		out = append(out, c)
	}
	if err := checkCards(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Append puts a card on top.
func (p *Pile) Append(c *Card) error {
	if err := checkCard(c); err != nil {
		return err
	}
	p.cards = append(p.cards, c)
	return nil
}

// Extend puts cards on top in order. Nothing is added if any card is nil.
func (p *Pile) Extend(cards ...*Card) error {
	if err := checkCards(cards); err != nil {
		return err
	}
	p.cards = append(p.cards, cards...)
	return nil
}

// Merge extends the pile with every card of src.
func (p *Pile) Merge(src CardSource) error {
	cards, err := collect(src)
	if err != nil {
		return err
	}
	p.cards = append(p.cards, cards...)
	return nil
}

// Insert places a card at index i, shifting the cards at and above i up.
func (p *Pile) Insert(i int, c *Card) error {
	if err := checkCard(c); err != nil {
		return err
	}
	if i < 0 || i > len(p.cards) {
		return fmt.Errorf("%w: insert at %d in pile of %d", ErrInvalidIndex, i, len(p.cards))
	}
	p.cards = slices.Insert(p.cards, i, c)
	return nil
}

// Remove deletes the lowest card equal to c.
func (p *Pile) Remove(c *Card) error {
	i, err := p.Index(c)
	if err != nil {
		return err
	}
	p.cards = slices.Delete(p.cards, i, i+1)
	return nil
}

// Index returns the position of the lowest card equal to c.
func (p *Pile) Index(c *Card) (int, error) {
	return p.IndexRange(c, 0, len(p.cards))
}

// IndexRange returns the first position in [start, stop) holding a card
// equal to c. Bounds follow slice-expression rules: negative values count
// back from the top and anything outside the pile is clamped, so an empty
// window reports ErrNotFound rather than an index error.
func (p *Pile) IndexRange(c *Card, start, stop int) (int, error) {
	if err := checkCard(c); err != nil {
		return -1, err
	}
	start, stop = clampBound(start, len(p.cards)), clampBound(stop, len(p.cards))
	for i := start; i < stop; i++ {
		if p.cards[i].Equal(c) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrNotFound, c)
}

func clampBound(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}

// Count returns how many cards equal c.
func (p *Pile) Count(c *Card) (int, error) {
	if err := checkCard(c); err != nil {
		return 0, err
	}
	n := 0
	for _, held := range p.cards {
		if held.Equal(c) {
			n++
		}
	}
	return n, nil
}

// Contains reports whether any card equals c.
func (p *Pile) Contains(c *Card) (bool, error) {
	n, err := p.Count(c)
	return n > 0, err
}

func (p *Pile) pop() (*Card, error) {
	if len(p.cards) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyContainer, p.id)
	}
	top := p.cards[len(p.cards)-1]
	p.cards[len(p.cards)-1] = nil
	p.cards = p.cards[:len(p.cards)-1]
	return top, nil
}

// popN removes n cards, top first. It fails before removing anything.
func (p *Pile) popN(n int) (Cards, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: count %d", ErrInvalidArgument, n)
	}
	if n > len(p.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientCards, n, len(p.cards))
	}
	out := make(Cards, 0, n)
	for range n {
		c, _ := p.pop()
		out = append(out, c)
	}
	return out, nil
}

// Peek returns the top card without removing it.
func (p *Pile) Peek() (*Card, error) {
	if len(p.cards) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyContainer, p.id)
	}
	return p.cards[len(p.cards)-1], nil
}

// PeekBottom returns the bottom card without removing it.
func (p *Pile) PeekBottom() (*Card, error) {
	if len(p.cards) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyContainer, p.id)
	}
	return p.cards[0], nil
}

// PeekN returns n cards from the top (or bottom) end without removing them.
// The result keeps pile order, bottom to top.
func (p *Pile) PeekN(n int, fromTop bool) (Cards, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: count %d", ErrInvalidArgument, n)
	}
	if n > len(p.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientCards, n, len(p.cards))
	}
	if fromTop {
		return slices.Clone(Cards(p.cards[len(p.cards)-n:])), nil
	}
	return slices.Clone(Cards(p.cards[:n])), nil
}

// Cut moves the cards at and above i to the bottom: new = old[i:] + old[:i].
func (p *Pile) Cut(i int) error {
	if i < 0 || i > len(p.cards) {
		return fmt.Errorf("%w: cut at %d in pile of %d", ErrInvalidIndex, i, len(p.cards))
	}
	p.cards = append(p.cards[i:len(p.cards):len(p.cards)], p.cards[:i]...)
	p.debug("Cut pile", "index", i)
	return nil
}

// CutHalf cuts at Len()/2.
func (p *Pile) CutHalf() {
	_ = p.Cut(len(p.cards) / 2)
}

func (p *Pile) Reverse() {
	slices.Reverse(p.cards)
}

// Shuffle randomizes the order of the pile using Fisher-Yates.
func (p *Pile) Shuffle() {
	for i := len(p.cards) - 1; i > 0; i-- {
		var j int
		if p.rng != nil {
			j = p.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
	}
	p.debug("Shuffled pile", "cards", len(p.cards))
}

// Clear empties the pile.
func (p *Pile) Clear() {
	clear(p.cards)
	p.cards = p.cards[:0]
}

// Multiply replaces every card with n independent copies of it, so a pile
// [a, b] becomes [a, a, b, b] for n = 2. Zero empties the pile and one
// leaves it unchanged.
func (p *Pile) Multiply(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: multiplier %d", ErrInvalidArgument, n)
	}
	switch n {
	case 0:
		p.Clear()
	case 1:
	default:
		p.cards = repeatCards(p.cards, n)
	}
	p.debug("Multiplied pile", "factor", n, "cards", len(p.cards))
	return nil
}

func repeatCards(cards []*Card, n int) []*Card {
	out := make([]*Card, 0, len(cards)*n)
	for _, c := range cards {
		for range n {
			out = append(out, c.Clone())
		}
	}
	return out
}

// standardSet builds the 52 standard cards in canonical order, owned by deck.
func standardSet(deck ContainerID) []*Card {
	out := make([]*Card, 0, StandardSize)
	for _, r := range rankOrder {
		for _, s := range declaredSuits {
			out = append(out, &Card{rank: r, suit: s, color: s.Color(), deck: deck})
		}
	}
	return out
}

func (p *Pile) checkIndex(i int) error {
	if i < 0 || i >= len(p.cards) {
		return fmt.Errorf("%w: %d in pile of %d", ErrInvalidIndex, i, len(p.cards))
	}
	return nil
}

func (p *Pile) checkRange(i, j int) error {
	if i < 0 || j > len(p.cards) || i > j {
		return fmt.Errorf("%w: range [%d, %d) in pile of %d", ErrInvalidIndex, i, j, len(p.cards))
	}
	return nil
}

// At returns the card at index i.
func (p *Pile) At(i int) (*Card, error) {
	if err := p.checkIndex(i); err != nil {
		return nil, err
	}
	return p.cards[i], nil
}

// Slice returns a copy of the cards in [i, j).
func (p *Pile) Slice(i, j int) (Cards, error) {
	if err := p.checkRange(i, j); err != nil {
		return nil, err
	}
	return slices.Clone(Cards(p.cards[i:j])), nil
}

// Set replaces the card at index i.
func (p *Pile) Set(i int, c *Card) error {
	if err := checkCard(c); err != nil {
		return err
	}
	if err := p.checkIndex(i); err != nil {
		return err
	}
	p.cards[i] = c
	return nil
}

// SetRange replaces the cards in [i, j) with cards, which may be of a
// different length.
func (p *Pile) SetRange(i, j int, cards ...*Card) error {
	if err := checkCards(cards); err != nil {
		return err
	}
	if err := p.checkRange(i, j); err != nil {
		return err
	}
	p.cards = slices.Replace(p.cards, i, j, cards...)
	return nil
}

// Delete removes the card at index i.
func (p *Pile) Delete(i int) error {
	if err := p.checkIndex(i); err != nil {
		return err
	}
	p.cards = slices.Delete(p.cards, i, i+1)
	return nil
}

// DeleteRange removes the cards in [i, j).
func (p *Pile) DeleteRange(i, j int) error {
	if err := p.checkRange(i, j); err != nil {
		return err
	}
	p.cards = slices.Delete(p.cards, i, j)
	return nil
}
