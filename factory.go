package cards

// Factory generates the initial ordered card sequence for a fresh deck.
// The front of the returned slice is the top of the deck. A factory is
// consulted once at construction time; the deck keeps no reference to it.
//
// Implement Factory to build game-specific decks (pinochle, euchre,
// multi-deck shoes). Duplicates are fine; a Deck has no uniqueness
// constraint.
type Factory interface {
	Generate() []Card
}

// Standard52 generates the standard 52-card deck: for each rank Two through
// Ace, one card per suit in canonical suit order.
type Standard52 struct{}

func (Standard52) Generate() []Card {
	generated := make([]Card, 0, 52)
	for _, rank := range Ranks {
		for _, suit := range Suits {
			generated = append(generated, NewCard(suit, rank))
		}
	}
	return generated
}

// Standard54 generates the standard 52 cards plus two jokers at the bottom,
// tagged Hearts and Spades for display.
type Standard54 struct{}

func (Standard54) Generate() []Card {
	generated := Standard52{}.Generate()
	return append(generated, NewCard(Hearts, Joker), NewCard(Spades, Joker))
}

// MultiDeck generates a shoe of Decks concatenated standard 52-card decks.
// Decks of zero or less yields an empty shoe, like Deck.Repeat.
type MultiDeck struct {
	Decks int
}

func (m MultiDeck) Generate() []Card {
	n := m.Decks
	if n < 0 {
		n = 0
	}
	single := Standard52{}.Generate()
	generated := make([]Card, 0, len(single)*n)
	for range n {
		generated = append(generated, single...)
	}
	return generated
}
