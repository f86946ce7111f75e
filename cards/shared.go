package cards

import "sync"

// Shared guards a Deck with a mutex for hosts that draw from one shoe on
// several goroutines. Every method holds the lock for its whole call.
type Shared struct {
	mu   sync.Mutex
	deck *Deck
}

// NewShared wraps d. The caller must not use d directly afterwards.
func NewShared(d *Deck) *Shared {
	return &Shared{deck: d}
}

func (s *Shared) Draw() (*Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Draw()
}

func (s *Shared) DrawN(n int) (Cards, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.DrawN(n)
}

func (s *Shared) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Len()
}

// Do runs fn with exclusive access to the deck, for sequences that must not
// interleave with other callers (shuffle then deal, say).
func (s *Shared) Do(fn func(*Deck) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.deck)
}
