package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ernman37/crusty-cards/internal/randutil"
)

func multiset(d *Deck) map[Card]int {
	m := make(map[Card]int)
	for _, c := range d.Cards() {
		m[c]++
	}
	return m
}

func TestShufflesPreservePermutation(t *testing.T) {
	shuffles := map[string]func(*Deck){
		"random":   (*Deck).Shuffle,
		"riffle":   (*Deck).Riffle,
		"overhand": (*Deck).Overhand,
	}
	for name, shuffle := range shuffles {
		t.Run(name, func(t *testing.T) {
			deck := FromFactory(Standard54{})
			deck.SetRand(randutil.New(7))
			before := multiset(deck)

			shuffle(deck)

			assert.Equal(t, 54, deck.Len())
			assert.Equal(t, before, multiset(deck), "shuffle must not add or lose cards")
		})
	}
}

func TestShufflesNoopOnTinyDecks(t *testing.T) {
	shuffles := map[string]func(*Deck){
		"random":   (*Deck).Shuffle,
		"riffle":   (*Deck).Riffle,
		"overhand": (*Deck).Overhand,
	}
	for name, shuffle := range shuffles {
		t.Run(name, func(t *testing.T) {
			empty := New()
			shuffle(empty)
			assert.True(t, empty.IsEmpty())

			single := New(NewCard(Hearts, Ace))
			single.SetRand(randutil.New(1))
			shuffle(single)
			assert.Equal(t, []Card{NewCard(Hearts, Ace)}, single.Cards())
		})
	}
}

func TestShuffleIsSeedDeterministic(t *testing.T) {
	a := FromFactory(Standard52{})
	b := FromFactory(Standard52{})
	a.SetRand(randutil.New(99))
	b.SetRand(randutil.New(99))

	a.Shuffle()
	b.Shuffle()
	assert.True(t, a.Equal(b))

	a.Riffle()
	b.Riffle()
	assert.True(t, a.Equal(b))

	a.Overhand()
	b.Overhand()
	assert.True(t, a.Equal(b))
}

func TestShuffleChangesOrder(t *testing.T) {
	deck := FromFactory(Standard52{})
	deck.SetRand(randutil.New(3))
	original := FromFactory(Standard52{})

	deck.Shuffle()
	assert.False(t, deck.Equal(original), "52 cards landing back in order means the shuffle did nothing")
}

func TestShuffleTimes(t *testing.T) {
	a := FromFactory(Standard52{})
	b := FromFactory(Standard52{})
	a.SetRand(randutil.New(5))
	b.SetRand(randutil.New(5))

	a.ShuffleTimes(3)
	b.Shuffle()
	b.Shuffle()
	b.Shuffle()
	assert.True(t, a.Equal(b))
}

// Every permutation of a small deck should come up roughly equally often.
func TestShuffleUniformity(t *testing.T) {
	const trials = 12000
	deck := New(NewCard(Spades, Ace), NewCard(Spades, King), NewCard(Spades, Queen))
	deck.SetRand(randutil.New(1))

	counts := make(map[string]int)
	for range trials {
		deck.Shuffle()
		counts[deck.String()]++
	}

	require.Len(t, counts, 6, "all 3! permutations should occur")
	expected := trials / 6
	for perm, n := range counts {
		assert.InDelta(t, expected, n, 250, "permutation %s", perm)
	}
}

func TestRiffleInterleavesHalves(t *testing.T) {
	deck := FromFactory(Standard52{})
	deck.SetRand(randutil.New(11))
	original := deck.Cards()

	deck.Riffle()

	// A single riffle splits within one card of the midpoint and keeps the
	// relative order of each half. The exact split point is randomized, so
	// accept any of the three possible ones.
	index := make(map[Card]int, len(original))
	for i, c := range original {
		index[c] = i
	}
	shuffled := deck.Cards()
	validSplit := func(mid int) bool {
		last := map[bool]int{true: -1, false: -1}
		for _, c := range shuffled {
			fromLeft := index[c] < mid
			if index[c] <= last[fromLeft] {
				return false
			}
			last[fromLeft] = index[c]
		}
		return true
	}
	n := len(original)
	assert.True(t, validSplit(n/2-1) || validSplit(n/2) || validSplit(n/2+1),
		"riffle output must be a merge of two ordered halves")
}

func TestCutComposition(t *testing.T) {
	for p := 0; p <= 52; p++ {
		deck := FromFactory(Standard52{})
		original := deck.Cards()

		require.NoError(t, deck.Cut(p))
		require.NoError(t, deck.Cut(52-p))
		assert.Equal(t, original, deck.Cards(), "cut(%d) then cut(%d) must restore order", p, 52-p)
	}
}

func TestCutMovesBottomToFront(t *testing.T) {
	deck := New(
		NewCard(Hearts, Ace),
		NewCard(Spades, King),
		NewCard(Diamonds, Queen),
		NewCard(Clubs, Jack),
	)
	require.NoError(t, deck.Cut(2))
	assert.Equal(t, []Card{
		NewCard(Diamonds, Queen),
		NewCard(Clubs, Jack),
		NewCard(Hearts, Ace),
		NewCard(Spades, King),
	}, deck.Cards())
}

func TestCutOutOfRange(t *testing.T) {
	deck := FromFactory(Standard52{})
	original := deck.Cards()

	for _, p := range []int{-1, 53} {
		err := deck.Cut(p)
		require.Error(t, err, "Cut(%d)", p)
		assert.Equal(t, original, deck.Cards(), "failed cut must leave the deck unchanged")
	}

	// boundary positions are no-ops, not errors
	require.NoError(t, deck.Cut(0))
	require.NoError(t, deck.Cut(52))
	assert.Equal(t, original, deck.Cards())
}
