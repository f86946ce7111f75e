package cards

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/cardkit/internal/containerid"
	"github.com/lox/cardkit/internal/randutil"
)

var ids = containerid.NewGenerator(nil, nil)

// Option configures a Deck or Hand at construction.
type Option func(*options)

type options struct {
	id           ContainerID
	cards        []*Card
	standard     bool
	deckCount    int
	deckCountSet bool
	origin       ContainerID
	rng          *rand.Rand
	logger       *log.Logger
}

func buildOptions(kind string, opts []Option) *options {
	o := &options{deckCount: 1}
	for _, opt := range opts {
		opt(o)
	}
	if o.id == "" {
		o.id = ContainerID(ids.Generate(kind))
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	return o
}

// WithCards adds cards to the container; for a standard deck they go on top
// of the standard set.
func WithCards(cards ...*Card) Option {
	return func(o *options) { o.cards = append(o.cards, cards...) }
}

// Standard fills a deck with the 52 standard cards before any WithCards.
func Standard() Option {
	return func(o *options) { o.standard = true }
}

// WithDeckCount duplicates the deck's resulting cards n times to build a shoe.
func WithDeckCount(n int) Option {
	return func(o *options) {
		o.deckCount = n
		o.deckCountSet = true
	}
}

// FromDeck records the deck a hand was dealt from.
func FromDeck(id ContainerID) Option {
	return func(o *options) { o.origin = id }
}

// WithRand sets the random source used by Shuffle.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed is WithRand with a deterministic source built from seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = randutil.New(seed) }
}

func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithID overrides the generated container ID.
func WithID(id ContainerID) Option {
	return func(o *options) { o.id = id }
}
