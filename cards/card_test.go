package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantRank Rank
		wantSuit Suit
		wantErr  error
	}{
		{name: "ace of spades unicode", input: "A♠", wantRank: Ace, wantSuit: Spades},
		{name: "ten of hearts letter", input: "10h", wantRank: Ten, wantSuit: Hearts},
		{name: "ten of hearts upper", input: "10H", wantRank: Ten, wantSuit: Hearts},
		{name: "queen of diamonds lower", input: "qd", wantRank: Queen, wantSuit: Diamonds},
		{name: "two of clubs", input: "2♣", wantRank: Two, wantSuit: Clubs},
		{name: "mixed case", input: "aS", wantRank: Ace, wantSuit: Spades},
		{name: "invalid rank", input: "1h", wantErr: ErrInvalidValue},
		{name: "invalid suit", input: "Ax", wantErr: ErrInvalidValue},
		{name: "reverse order", input: "♠A", wantErr: ErrInvalidValue},
		{name: "too short", input: "A", wantErr: ErrInvalidValue},
		{name: "empty", input: "", wantErr: ErrInvalidValue},
		{name: "number too large", input: "11s", wantErr: ErrInvalidValue},
		{name: "trailing space", input: "As ", wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRank, c.Rank())
			assert.Equal(t, tt.wantSuit, c.Suit())
			assert.False(t, c.FaceUp(), "cards are created face down")
		})
	}
}

func TestParseCardNamesOffendingInput(t *testing.T) {
	t.Parallel()
	_, err := ParseCard("Z", "h")
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), `"Z"`)

	_, err = ParseCard("K", "x")
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestParseSuit(t *testing.T) {
	t.Parallel()
	for _, tt := range []struct {
		input string
		want  Suit
	}{
		{"♥", Hearts}, {"H", Hearts}, {"h", Hearts},
		{"♦", Diamonds}, {"D", Diamonds}, {"d", Diamonds},
		{"♣", Clubs}, {"C", Clubs}, {"c", Clubs},
		{"♠", Spades}, {"S", Spades}, {"s", Spades},
	} {
		got, err := ParseSuit(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	for _, bad := range []string{"", "Hearts", "x", "HH"} {
		_, err := ParseSuit(bad)
		assert.ErrorIs(t, err, ErrInvalidValue, bad)
	}
}

func TestNewCardRejectsOutOfRangeEnums(t *testing.T) {
	t.Parallel()
	_, err := NewCard(Rank(42), Spades)
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = NewCard(Ace, Suit(0))
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestNewCardOptions(t *testing.T) {
	t.Parallel()
	c, err := NewCard(King, Hearts, FaceUp(true), InDeck("deck_a"), InHand("hand_b"))
	require.NoError(t, err)

	assert.True(t, c.FaceUp())
	assert.Equal(t, ContainerID("deck_a"), c.DeckID())
	assert.Equal(t, ContainerID("hand_b"), c.HandID())
	assert.True(t, c.IsFace())
}

func TestColorFollowsSuit(t *testing.T) {
	t.Parallel()
	for _, r := range Ranks() {
		for _, s := range Suits() {
			c, err := NewCard(r, s)
			require.NoError(t, err)
			want := Black
			if s == Hearts || s == Diamonds {
				want = Red
			}
			assert.Equal(t, want, c.Color(), "%s", c)
		}
	}

	c := MustParse("A♠")
	require.Equal(t, Black, c.Color())

	require.NoError(t, c.SetSuit(Diamonds))
	assert.Equal(t, Red, c.Color())

	require.NoError(t, c.SetSuitString("c"))
	assert.Equal(t, Clubs, c.Suit())
	assert.Equal(t, Black, c.Color())
}

func TestSetColorIsImmutable(t *testing.T) {
	t.Parallel()
	c := MustParse("2♣")
	err := c.SetColor(Red)
	assert.ErrorIs(t, err, ErrImmutable)
	assert.Equal(t, Black, c.Color())
}

func TestSetters(t *testing.T) {
	t.Parallel()
	c := MustParse("5♥")

	require.NoError(t, c.SetRank(Jack))
	assert.Equal(t, Jack, c.Rank())

	require.NoError(t, c.SetRankString("10"))
	assert.Equal(t, Ten, c.Rank())

	assert.ErrorIs(t, c.SetRank(Rank(1)), ErrInvalidType)
	assert.ErrorIs(t, c.SetSuit(Suit(9)), ErrInvalidType)
	assert.ErrorIs(t, c.SetRankString("one"), ErrInvalidValue)
	assert.ErrorIs(t, c.SetSuitString("?"), ErrInvalidValue)

	// failed sets leave the card alone
	assert.Equal(t, Ten, c.Rank())
	assert.Equal(t, Hearts, c.Suit())
	assert.Equal(t, Red, c.Color())
}

func TestFlipChains(t *testing.T) {
	t.Parallel()
	c := MustParse("K♦")
	assert.Same(t, c, c.Flip())
	assert.True(t, c.FaceUp())

	assert.False(t, c.Flip().Flip().Flip().FaceUp())
	assert.True(t, c.SetFaceUp(true).FaceUp())
}

func TestEquality(t *testing.T) {
	t.Parallel()
	for _, r := range Ranks() {
		for _, s := range Suits() {
			a, _ := NewCard(r, s)
			b, _ := NewCard(r, s, FaceUp(true), InDeck("deck_x"))
			assert.True(t, a.Equal(b), "%s", a)
		}
	}

	assert.False(t, MustParse("A♠").Equal(MustParse("A♥")))
	assert.False(t, MustParse("A♠").Equal(MustParse("K♠")))
	assert.False(t, MustParse("A♠").Equal(nil))
}

func TestOrdering(t *testing.T) {
	t.Parallel()
	two, ace := MustParse("2♠"), MustParse("A♣")

	assert.True(t, two.Less(ace))
	assert.True(t, ace.Greater(two))
	assert.False(t, two.Greater(ace))
	assert.False(t, MustParse("7♥").Less(MustParse("7♠")), "suit does not affect ordering")
	assert.False(t, two.Less(nil))

	cmp, err := CompareCards(ace, two)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	cmp, err = CompareCards(MustParse("9♦"), MustParse("9♣"))
	require.NoError(t, err)
	assert.Zero(t, cmp)

	_, err = CompareCards(two, nil)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card string
		want string
	}{
		{"A♠", "ACE of SPADES ♠"},
		{"10♥", "TEN of HEARTS ♥"},
		{"2♦", "TWO of DIAMONDS ♦"},
		{"Q♣", "QUEEN of CLUBS ♣"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MustParse(tt.card).String())
	}
}

func TestDisplay(t *testing.T) {
	t.Parallel()
	c := MustParse("10♦")

	for key, want := range map[string]string{"rank": "10", "suit": "♦", "color": "red"} {
		got, err := c.Display(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}

	got, err := MustParse("J♠").Display("color")
	require.NoError(t, err)
	assert.Equal(t, "black", got)

	_, err = c.Display("name")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestClone(t *testing.T) {
	t.Parallel()
	orig, err := NewCard(Nine, Clubs, InDeck("deck_1"))
	require.NoError(t, err)

	cp := orig.Clone()
	assert.NotSame(t, orig, cp)
	assert.True(t, orig.Equal(cp))
	assert.Equal(t, orig.DeckID(), cp.DeckID())

	cp.Flip()
	assert.False(t, orig.FaceUp())
}

func TestMustParsePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParse("invalid") })
}

func TestOrderTablesAreCopies(t *testing.T) {
	t.Parallel()
	ranks := Ranks()
	ranks[0] = Ace
	suits := Suits()
	suits[0] = Clubs

	assert.Equal(t, Two, Ranks()[0])
	assert.Equal(t, Spades, Suits()[0])
	assert.True(t, MustParse("2♠").Less(MustParse("3♠")))

	r, err := ParseRank("2")
	require.NoError(t, err)
	assert.Equal(t, Two, r)
}
