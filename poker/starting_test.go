package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartingHandRank(t *testing.T) {
	t.Parallel()

	rank := StartingHandRank(MustParseCard("2C"), MustParseCard("8D"))
	assert.Equal(t, HighCard, rank.Type())
	assert.Equal(t, Eight, rank.Primary())
	assert.Equal(t, []Rank{Two}, rank.Kickers())

	rank = StartingHandRank(MustParseCard("5C"), MustParseCard("5D"))
	assert.Equal(t, Pair, rank.Type())
	assert.Equal(t, Five, rank.Primary())
	assert.Empty(t, rank.Kickers())

	assert.Greater(t, StartingHandRank(MustParseCard("2C"), MustParseCard("2D")),
		StartingHandRank(MustParseCard("AS"), MustParseCard("KS")))
	assert.Greater(t, StartingHandRank(MustParseCard("AS"), MustParseCard("3D")),
		StartingHandRank(MustParseCard("KS"), MustParseCard("QS")))
	assert.Equal(t, StartingHandRank(MustParseCard("AS"), MustParseCard("KD")),
		StartingHandRank(MustParseCard("KS"), MustParseCard("AD")))
}

func TestCategorizeHoleCards(t *testing.T) {
	tests := []struct {
		name     string
		card1    string
		card2    string
		expected HoleCardCategory
	}{
		// Premium hands
		{"Pocket Aces", "AS", "AH", CategoryPremium},
		{"Pocket Kings", "KH", "KD", CategoryPremium},
		{"Pocket Jacks", "JH", "JD", CategoryPremium},
		{"Ace King offsuit", "AC", "KH", CategoryPremium},

		// Strong hands
		{"Pocket Tens", "TC", "TH", CategoryStrong},
		{"Ace Queen suited", "AS", "QS", CategoryStrong},
		{"Ace Jack offsuit", "AD", "JC", CategoryStrong},

		// Medium hands
		{"Pocket Nines", "9C", "9H", CategoryMedium},
		{"Pocket Sevens", "7H", "7C", CategoryMedium},
		{"King Queen suited", "KS", "QS", CategoryMedium},
		{"Queen Jack suited", "QD", "JD", CategoryMedium},

		// Weak hands
		{"Pocket Sixes", "6C", "6H", CategoryWeak},
		{"Pocket Twos", "2C", "2H", CategoryWeak},
		{"Suited connectors 76s", "7H", "6H", CategoryWeak},
		{"Suited one gapper 53s", "5D", "3D", CategoryWeak},

		// Trash hands
		{"Seven Two offsuit", "7C", "2H", CategoryTrash},
		{"King Queen offsuit", "KC", "QH", CategoryTrash},
		{"Jack Four offsuit", "JH", "4C", CategoryTrash},

		{"Same card twice", "JH", "JH", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CategorizeHoleCards(MustParseCard(tt.card1), MustParseCard(tt.card2))
			if result != tt.expected {
				t.Errorf("CategorizeHoleCards(%s, %s) = %s, want %s",
					tt.card1, tt.card2, result, tt.expected)
			}
		})
	}

	if got := CategorizeHoleCards(Card{}, MustParseCard("AS")); got != CategoryUnknown {
		t.Errorf("invalid card categorized as %s", got)
	}
}
