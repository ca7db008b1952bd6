package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	t.Parallel()

	card, err := NewCard(Ace, Spades)
	require.NoError(t, err)
	assert.Equal(t, Ace, card.Rank)
	assert.Equal(t, Spades, card.Suit)
	assert.Equal(t, "AS", card.String())

	_, err = NewCard(0, Spades)
	assert.ErrorIs(t, err, ErrInvalidRank)
	_, err = NewCard(Ace+1, Spades)
	assert.ErrorIs(t, err, ErrInvalidRank)
	_, err = NewCard(Two, Spades+1)
	assert.ErrorIs(t, err, ErrInvalidSuit)

	_, err = NewRank(15)
	assert.ErrorIs(t, err, ErrInvalidRank)
	_, err = NewSuit(-1)
	assert.ErrorIs(t, err, ErrInvalidSuit)
	r, err := NewRank(1)
	require.NoError(t, err)
	assert.Equal(t, AceLow, r)
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "AS", wantCard: Card{Ace, Spades}},
		{name: "two of hearts", input: "2H", wantCard: Card{Two, Hearts}},
		{name: "king of diamonds lower case", input: "kd", wantCard: Card{King, Diamonds}},
		{name: "ten of clubs", input: "TC", wantCard: Card{Ten, Clubs}},
		{name: "nine of spades", input: "9s", wantCard: Card{Nine, Spades}},
		{name: "invalid rank", input: "XS", wantErr: true},
		{name: "invalid suit", input: "AX", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "ASD", wantErr: true},
		{name: "ten as digits", input: "10S", wantErr: true},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCard, card)
		})
	}
}

func TestAll52CardsRoundTrip(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for _, card := range FullDeck() {
		str := card.String()
		if seen[str] {
			t.Errorf("Duplicate card: %s", str)
		}
		seen[str] = true

		parsed, err := ParseCard(str)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", str, err)
		}
		if parsed != card {
			t.Errorf("Round-trip failed for %s", str)
		}
	}
	if len(seen) != DeckSize {
		t.Errorf("Expected 52 unique cards, got %d", len(seen))
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("AS KD 2C")
	require.NoError(t, err)
	assert.Equal(t, Cards{{Ace, Spades}, {King, Diamonds}, {Two, Clubs}}, cards)
	assert.Equal(t, "AS KD 2C", cards.String())

	run, err := ParseCards("ASKD2C")
	require.NoError(t, err)
	assert.Equal(t, cards, run)

	empty, err := ParseCards("  ")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseCards("AS KX")
	assert.ErrorIs(t, err, ErrParse)
	_, err = ParseCards("ASK")
	assert.ErrorIs(t, err, ErrParse)
}

func TestCompareRanks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b Rank
		mode AceMode
		want int
	}{
		{Ace, King, AcesHigh, 1},
		{Ace, Two, AcesLow, -1},
		{AceLow, Ace, AcesHigh, 0},
		{AceLow, Ace, AcesLow, 0},
		{Two, Three, AcesHigh, -1},
		{Queen, Queen, AcesLow, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CompareRanks(tc.a, tc.b, tc.mode), "%s vs %s mode %d", tc.a, tc.b, tc.mode)
	}

	ace, two := MustParseCard("AH"), MustParseCard("2S")
	assert.Equal(t, 1, ace.Compare(two, AcesHigh))
	assert.Equal(t, -1, ace.Compare(two, AcesLow))
}

func TestAceConversionIsPure(t *testing.T) {
	t.Parallel()

	original := MustParseCards("AS KD AC 5H")
	low := original.Low()
	assert.Equal(t, Cards{{AceLow, Spades}, {King, Diamonds}, {AceLow, Clubs}, {Five, Hearts}}, low)
	// the source slice is untouched
	assert.Equal(t, MustParseCards("AS KD AC 5H"), original)

	assert.Equal(t, original, low.High())
	assert.Equal(t, original, original.Low().High().Low().High())
	assert.Equal(t, low, low.Low())
	assert.Equal(t, original, original.High())
	assert.Equal(t, "A", AceLow.String())
}

func TestSorted(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("5S AC 9D 2H")
	assert.Equal(t, "AC 9D 5S 2H", cards.Sorted(AcesHigh).String())
	assert.Equal(t, "9D 5S 2H AC", cards.Sorted(AcesLow).String())
	assert.Equal(t, "5S AC 9D 2H", cards.String())
}

func TestRankNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "King", King.Name())
	assert.Equal(t, "Sixes", Six.Plural())
	assert.Equal(t, "Aces", AceLow.Plural())
	assert.Equal(t, "?", Rank(0).String())
}
