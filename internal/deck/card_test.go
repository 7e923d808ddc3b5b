package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "T♥"},
		{NewCard(Diamonds, Two), "2♦"},
		{NewCard(Clubs, King), "K♣"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.card.String())
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		input    string
		expected Card
	}{
		{"As", Card{Spades, Ace}},
		{"ah", Card{Hearts, Ace}},
		{"Td", Card{Diamonds, Ten}},
		{"10d", Card{Diamonds, Ten}},
		{"2c", Card{Clubs, Two}},
		{"9♠", Card{Spades, Nine}},
	}

	for _, test := range tests {
		card, err := ParseCard(test.input)
		require.NoError(t, err, "input: %s", test.input)
		assert.Equal(t, test.expected, card, "input: %s", test.input)
	}
}

func TestParseCardInvalid(t *testing.T) {
	for _, input := range []string{"", "A", "Ax", "1s", "Zd", "  "} {
		_, err := ParseCard(input)
		assert.Error(t, err, "input: %q", input)
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("As Kd, Qh")
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, Card{Spades, Ace}, cards[0])
	assert.Equal(t, Card{Diamonds, King}, cards[1])
	assert.Equal(t, Card{Hearts, Queen}, cards[2])

	cards, err = ParseCards("  ")
	require.NoError(t, err)
	assert.Empty(t, cards)

	_, err = ParseCards("As Xx")
	assert.Error(t, err)
}
