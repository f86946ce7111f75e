package cards

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSharedConcurrentDraws(t *testing.T) {
	t.Parallel()
	shoe, err := NewDeck(Standard(), WithDeckCount(3), WithSeed(1))
	require.NoError(t, err)
	shoe.Shuffle()
	s := NewShared(shoe)

	var (
		mu    sync.Mutex
		drawn = make(map[*Card]struct{})
		names = make(map[string]int)
	)

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			for {
				c, err := s.Draw()
				if errors.Is(err, ErrEmptyContainer) {
					return nil
				}
				if err != nil {
					return err
				}
				mu.Lock()
				drawn[c] = struct{}{}
				names[c.String()]++
				mu.Unlock()
			}
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, drawn, 3*StandardSize, "every card instance drawn exactly once")
	assert.Len(t, names, StandardSize)
	for name, n := range names {
		assert.Equal(t, 3, n, name)
	}
	assert.Zero(t, s.Len())
}

func TestSharedDrawN(t *testing.T) {
	t.Parallel()
	d, err := NewDeck(Standard())
	require.NoError(t, err)
	s := NewShared(d)

	var g errgroup.Group
	for range 4 {
		g.Go(func() error {
			_, err := s.DrawN(13)
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Zero(t, s.Len())

	_, err = s.DrawN(1)
	assert.ErrorIs(t, err, ErrInsufficientCards)
}

func TestSharedDo(t *testing.T) {
	t.Parallel()
	d, err := NewDeck(Standard(), WithSeed(3))
	require.NoError(t, err)
	s := NewShared(d)

	var hands []Cards
	err = s.Do(func(d *Deck) error {
		d.Shuffle()
		var err error
		hands, err = d.Deal(2, 2)
		return err
	})
	require.NoError(t, err)
	assert.Len(t, hands, 2)
	assert.Equal(t, 48, s.Len())

	err = s.Do(func(d *Deck) error {
		_, err := d.Deal(100, 1)
		return err
	})
	assert.ErrorIs(t, err, ErrInsufficientCards)
	assert.Equal(t, 48, s.Len())
}
