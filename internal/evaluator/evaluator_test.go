package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/balancedbot/internal/deck"
)

func cards(t *testing.T, s string) []deck.Card {
	t.Helper()
	cs, err := deck.ParseCards(s)
	require.NoError(t, err)
	return cs
}

func TestBestHandCategories(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected HandType
	}{
		{"high card", "As Kd 9h 7c 2s", HighCard},
		{"pair", "As Ah 9d 7c 2s", Pair},
		{"two pair", "As Ah 9d 9c 2s", TwoPair},
		{"three of a kind", "As Ah Ad 9c 2s", ThreeOfAKind},
		{"straight", "9s 8d 7h 6c 5s", Straight},
		{"wheel straight", "As 2d 3h 4c 5s", Straight},
		{"flush", "As Ks 9s 7s 2s", Flush},
		{"full house", "As Ah Ad 9c 9s", FullHouse},
		{"four of a kind", "As Ah Ad Ac 9s", FourOfAKind},
		{"straight flush", "9s 8s 7s 6s 5s", StraightFlush},
		{"steel wheel", "As 2s 3s 4s 5s", StraightFlush},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := BestHand(cards(t, test.cards))
			require.NoError(t, err)
			assert.Equal(t, test.expected, result.Type)
			assert.Len(t, result.Best, 5)
		})
	}
}

func TestBestHandSevenCards(t *testing.T) {
	// Quads on board beat everything else available
	result, err := BestHand(cards(t, "2h 7d As Ah Ad Ac 9s"))
	require.NoError(t, err)
	assert.Equal(t, FourOfAKind, result.Type)

	// Flush hides inside seven cards
	result, err = BestHand(cards(t, "Ks Qs 2h 9s 7s 3d 4s"))
	require.NoError(t, err)
	assert.Equal(t, Flush, result.Type)

	// Board pair plus hole pair makes two pair
	result, err = BestHand(cards(t, "As Ah 9d 9c 2s 5h 7d"))
	require.NoError(t, err)
	assert.Equal(t, TwoPair, result.Type)
}

func TestBestHandScoreOrdersWithinInput(t *testing.T) {
	pair, err := BestHand(cards(t, "As Ah 9d 7c 2s"))
	require.NoError(t, err)
	twoPair, err := BestHand(cards(t, "As Ah 9d 9c 2s"))
	require.NoError(t, err)
	assert.Greater(t, twoPair.Score, pair.Score)
}

func TestBestHandCardCountBounds(t *testing.T) {
	_, err := BestHand(cards(t, "As Ah 9d 7c"))
	assert.Error(t, err)

	_, err = BestHand(cards(t, "As Ah 9d 7c 2s 3s 4s 5s"))
	assert.Error(t, err)
}

func TestHandTypeOrdering(t *testing.T) {
	assert.True(t, HighCard < Pair)
	assert.True(t, Pair < TwoPair)
	assert.True(t, TwoPair < ThreeOfAKind)
	assert.True(t, FourOfAKind < StraightFlush)
}

func TestHandTypeString(t *testing.T) {
	assert.Equal(t, "pair", Pair.String())
	assert.Equal(t, "two pair", TwoPair.String())
	assert.Equal(t, "straight flush", StraightFlush.String())
}
