package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandRankPacking(t *testing.T) {
	t.Parallel()

	hr := PairRank(King, Four, Ace, Nine)
	assert.Equal(t, Pair, hr.Type())
	assert.Equal(t, King, hr.Primary())
	assert.Equal(t, Rank(0), hr.Secondary())
	assert.Equal(t, []Rank{Ace, Nine, Four}, hr.Kickers())
	assert.Equal(t, HandRank(1<<24|13<<20|14<<12|9<<8|4<<4), hr)
}

func TestHandRankKickerTruncation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		rank    HandRank
		kickers []Rank
	}{
		{"high card keeps four", HighCardRank(King, Two, Nine, Jack, Five, Three), []Rank{Jack, Nine, Five, Three}},
		{"pair keeps three", PairRank(Two, Three, Four, Five, Six), []Rank{Six, Five, Four}},
		{"two pair keeps one", TwoPairRank(Nine, Four, Two, King), []Rank{King}},
		{"trips keeps two", ThreeOfAKindRank(Seven, Two, Ace, Ten), []Rank{Ace, Ten}},
		{"quads keeps one", FourOfAKindRank(Three, Two, Queen), []Rank{Queen}},
		{"flush keeps four", FlushRank(Ace, Two, Four, Six, Eight, Ten), []Rank{Ten, Eight, Six, Four}},
		{"straight keeps none", pack(Straight, Nine, 0, []Rank{Eight}), nil},
		{"full house keeps none", pack(FullHouse, Nine, Eight, []Rank{Two}), nil},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.kickers, tc.rank.Kickers(), tc.name)
	}
}

func TestHandRankOrdering(t *testing.T) {
	t.Parallel()

	// category dominates everything below it
	assert.Greater(t, PairRank(Two, Three, Four, Five), HighCardRank(Ace, King, Queen, Jack, Nine))
	assert.Greater(t, StraightFlushRank(Five), FourOfAKindRank(Ace, King))
	assert.Greater(t, FullHouseRank(Two, Three), FlushRank(Ace, King, Queen, Jack, Nine))

	// then primary, secondary, kickers
	assert.Greater(t, TwoPairRank(Queen, Jack, Two), TwoPairRank(Queen, Ten, Ace))
	assert.Greater(t, TwoPairRank(Queen, Jack, Three), TwoPairRank(Queen, Jack, Two))
	assert.Equal(t, TwoPairRank(Jack, Queen, Two), TwoPairRank(Queen, Jack, Two))
	assert.Equal(t, 1, CompareHands(FullHouseRank(King, Jack), FullHouseRank(King, Ten)))
	assert.Equal(t, -1, PairRank(Nine, Ace, Two, Three).Compare(PairRank(Nine, Ace, Two, Four)))
	assert.Equal(t, 0, HighCardRank(Ace, King).Compare(HighCardRank(Ace, King)))
}

func TestNewHandRank(t *testing.T) {
	t.Parallel()

	hr, err := NewHandRank(FullHouse, King, Jack)
	require.NoError(t, err)
	assert.Equal(t, FullHouseRank(King, Jack), hr)

	hr, err = NewHandRank(Pair, Ten, Nine, Ace, Two, Three, Four)
	require.NoError(t, err)
	assert.Equal(t, Rank(0), hr.Secondary(), "pair ignores secondary")
	assert.Equal(t, []Rank{Ace, Four, Three}, hr.Kickers())

	_, err = NewHandRank(StraightFlush+1, Ace, 0)
	assert.ErrorIs(t, err, ErrInvalidHandType)
	_, err = NewHandRank(Straight, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidRank)
	_, err = NewHandRank(TwoPair, King, 0, Two)
	assert.ErrorIs(t, err, ErrInvalidRank)
	_, err = NewHandRank(HighCard, King, 0, 15)
	assert.ErrorIs(t, err, ErrInvalidRank)
}

func TestHandRankString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		rank HandRank
		want string
	}{
		{HighCardRank(Ace, King, Nine, Four, Two), "High Card Ace"},
		{PairRank(Six, Ace, King, Two), "Pair of Sixes"},
		{TwoPairRank(Queen, Jack, Two), "Two Pair Queens and Jacks"},
		{ThreeOfAKindRank(Four, Queen, Nine), "Three of a Kind Fours"},
		{StraightRank(Five), "Straight Five high"},
		{FlushRank(King, Jack, Ten, Seven, Three), "Flush King high"},
		{FullHouseRank(King, Jack), "Full House Kings full of Jacks"},
		{FourOfAKindRank(Ace, Ten), "Four of a Kind Aces"},
		{StraightFlushRank(King), "Straight Flush King high"},
		{StraightFlushRank(Ace), "Royal Flush"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.rank.String())
	}
	assert.Equal(t, "Q J 2", TwoPairRank(Queen, Jack, Two).Ranks())
}
