package cards

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCardSpellings(t *testing.T) {
	// Every spelling of the same logical card parses to the same value.
	kingSpades := NewCard(Spades, King)
	spellings := []string{
		"K♠", "King♠", "KS", "ks", "kS", "Kspades", "Kingspades",
		"KiNgsPaDeS", "king spades", " K ♠ ", "KING\tSPADE",
	}
	for _, s := range spellings {
		t.Run(s, func(t *testing.T) {
			card, err := ParseCard(s)
			require.NoError(t, err)
			assert.Equal(t, kingSpades, card)
		})
	}
}

func TestParseCardForms(t *testing.T) {
	tests := []struct {
		input string
		want  Card
	}{
		{"A♠", NewCard(Spades, Ace)},
		{"10♦", NewCard(Diamonds, Ten)},
		{"10d", NewCard(Diamonds, Ten)},
		{"Td", NewCard(Diamonds, Ten)},
		{"tens", NewCard(Spades, Ten)},
		{"2c", NewCard(Clubs, Two)},
		{"sevenh", NewCard(Hearts, Seven)},
		{"qh", NewCard(Hearts, Queen)},
		{"Joker♥", NewCard(Hearts, Joker)},
		{"jokerd", NewCard(Diamonds, Joker)},
		{"joker", NewCard(Spades, Joker)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			card, err := ParseCard(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, card)
		})
	}
}

func TestParseCardErrors(t *testing.T) {
	inputs := []string{
		"", "   ", "X♠", "K", "10", "1♠", "11h", "hearts", "K♠Q", "ace", "♠A", "K?",
	}
	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			_, err := ParseCard(s)
			require.Error(t, err)
			var perr *ParseError
			assert.True(t, errors.As(err, &perr))
		})
	}
}

func TestParseCardRoundTrip(t *testing.T) {
	for _, suit := range Suits {
		for _, rank := range RanksWithJoker {
			card := NewCard(suit, rank)
			parsed, err := ParseCard(card.String())
			require.NoError(t, err, "round-tripping %s", card)
			assert.Equal(t, card, parsed)
		}
	}
}

func TestParseSuitAndRank(t *testing.T) {
	suit, err := ParseSuit("Diamonds")
	require.NoError(t, err)
	assert.Equal(t, Diamonds, suit)

	suit, err = ParseSuit("♣")
	require.NoError(t, err)
	assert.Equal(t, Clubs, suit)

	_, err = ParseSuit("swords")
	assert.Error(t, err)

	rank, err := ParseRank("ten")
	require.NoError(t, err)
	assert.Equal(t, Ten, rank)

	_, err = ParseRank("eleven")
	assert.Error(t, err)
}

func TestParseDeck(t *testing.T) {
	deck, err := ParseDeck("A♠ K♠ Q♠")
	require.NoError(t, err)
	require.Equal(t, 3, deck.Len())
	assert.Equal(t, []Card{
		NewCard(Spades, Ace),
		NewCard(Spades, King),
		NewCard(Spades, Queen),
	}, deck.Cards())
}

func TestParseDeckEmpty(t *testing.T) {
	deck, err := ParseDeck("")
	require.NoError(t, err)
	assert.True(t, deck.IsEmpty())
}

func TestParseDeckBadCard(t *testing.T) {
	_, err := ParseDeck("A♠ XX Q♠")
	require.Error(t, err)
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestParseDeckDelim(t *testing.T) {
	deck, err := ParseDeckDelim("A♠|10♦|Joker♥", "|")
	require.NoError(t, err)
	require.Equal(t, 3, deck.Len())
	assert.Equal(t, "A♠|10♦|Joker♥", deck.Format("|"))
}

func TestParseDeckDelimCollision(t *testing.T) {
	// Delimiters that can appear inside a card token are rejected.
	for _, delim := range []string{"", "s", "1", "♥", "a,b"} {
		t.Run(delim, func(t *testing.T) {
			_, err := ParseDeckDelim("A♠", delim)
			require.Error(t, err)
			var perr *ParseError
			assert.True(t, errors.As(err, &perr))
		})
	}
}
