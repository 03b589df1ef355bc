package cards

import (
	rand "math/rand/v2"
	"slices"
	"strings"
)

// Deck is an ordered, double-ended, mutable sequence of cards. The front of
// the sequence is the top of the deck, and every position is measured from
// the top. Duplicate cards are permitted.
//
// A Deck owns its data outright and holds no locks; it is safe to hand
// between goroutines, but concurrent mutation of the same Deck needs
// caller-supplied synchronization.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a deck holding the given cards, first argument on top.
func New(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// FromFactory creates a deck whose initial contents come from f.
func FromFactory(f Factory) *Deck {
	return &Deck{cards: f.Generate()}
}

// SetRand installs the random source used by the shuffle algorithms, for
// deterministic shuffling. Without one, the goroutine-safe package-level
// math/rand/v2 source is used.
func (d *Deck) SetRand(rng *rand.Rand) {
	d.rng = rng
}

func (d *Deck) intn(n int) int {
	if d.rng != nil {
		return d.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Clear removes all cards from the deck.
func (d *Deck) Clear() {
	d.cards = d.cards[:0]
}

// Deal removes and returns the top card. The second return is false when
// the deck is empty.
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealBottom removes and returns the bottom card.
func (d *Deck) DealBottom() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// DealN removes up to n cards from the top, in draw order. When the deck
// holds fewer than n cards the result is truncated to what was available.
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	if n <= 0 {
		return nil
	}
	dealt := make([]Card, n)
	copy(dealt, d.cards[:n])
	d.cards = d.cards[n:]
	return dealt
}

// DealNBottom removes up to n cards from the bottom, in draw order (the
// bottom card first). Truncates like DealN.
func (d *Deck) DealNBottom(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	if n <= 0 {
		return nil
	}
	dealt := make([]Card, 0, n)
	for range n {
		card, _ := d.DealBottom()
		dealt = append(dealt, card)
	}
	return dealt
}

// AddCard puts a card on top of the deck.
func (d *Deck) AddCard(c Card) {
	d.AddCards(c)
}

// AddCards puts cards on top of the deck in the order given: the first
// argument ends up on top.
func (d *Deck) AddCards(cs ...Card) {
	merged := make([]Card, 0, len(cs)+len(d.cards))
	merged = append(merged, cs...)
	merged = append(merged, d.cards...)
	d.cards = merged
}

// AddCardBottom puts a card at the bottom of the deck.
func (d *Deck) AddCardBottom(c Card) {
	d.cards = append(d.cards, c)
}

// AddCardsBottom appends cards at the bottom in the order given.
func (d *Deck) AddCardsBottom(cs ...Card) {
	d.cards = append(d.cards, cs...)
}

// Peek returns the top card without removing it.
func (d *Deck) Peek() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[0], true
}

// PeekBottom returns the bottom card without removing it.
func (d *Deck) PeekBottom() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[len(d.cards)-1], true
}

// Contains reports whether the deck holds a card matching c. Matching is
// Card.Matches, and the scan is linear: a Deck optimizes for sequence
// semantics, not lookup.
func (d *Deck) Contains(c Card) bool {
	_, ok := d.Find(c)
	return ok
}

// Find returns the position of the first card matching c, measured from the
// top, or false if no card matches.
func (d *Deck) Find(c Card) (int, bool) {
	for i, card := range d.cards {
		if card.Matches(c) {
			return i, true
		}
	}
	return 0, false
}

// Get returns the card at position i.
func (d *Deck) Get(i int) (Card, error) {
	if i < 0 || i >= len(d.cards) {
		return Card{}, &IndexError{Index: i, Len: len(d.cards)}
	}
	return d.cards[i], nil
}

// Set replaces the card at position i. Deck length is unchanged.
func (d *Deck) Set(i int, c Card) error {
	if i < 0 || i >= len(d.cards) {
		return &IndexError{Index: i, Len: len(d.cards)}
	}
	d.cards[i] = c
	return nil
}

// Remove deletes the first card matching c, reporting whether one was
// found. The deck is unchanged when no card matches.
func (d *Deck) Remove(c Card) bool {
	i, ok := d.Find(c)
	if !ok {
		return false
	}
	d.cards = slices.Delete(d.cards, i, i+1)
	return true
}

// Cards returns a copy of the deck's sequence, top first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Strings returns the short form of every card, top first.
func (d *Deck) Strings() []string {
	out := make([]string, len(d.cards))
	for i, c := range d.cards {
		out[i] = c.String()
	}
	return out
}

// Equal reports order-sensitive value equality with other. A nil other is
// not equal to anything.
func (d *Deck) Equal(other *Deck) bool {
	if other == nil {
		return false
	}
	return slices.Equal(d.cards, other.cards)
}

// Clone returns an independent copy of the deck. The clone does not share
// the original's random source.
func (d *Deck) Clone() *Deck {
	return New(d.cards...)
}

// Concat returns a new deck holding d's cards followed by other's. Neither
// input is modified.
func (d *Deck) Concat(other *Deck) *Deck {
	merged := make([]Card, 0, len(d.cards)+len(other.cards))
	merged = append(merged, d.cards...)
	merged = append(merged, other.cards...)
	return &Deck{cards: merged}
}

// Repeat returns a new deck of n concatenated copies of d. n of 0 (or
// less) yields an empty deck; n of 1 is equivalent to Clone.
func (d *Deck) Repeat(n int) *Deck {
	if n < 0 {
		n = 0
	}
	merged := make([]Card, 0, n*len(d.cards))
	for range n {
		merged = append(merged, d.cards...)
	}
	return &Deck{cards: merged}
}

// Subtract returns a new deck with one occurrence removed for every card in
// other. Neither input is modified.
func (d *Deck) Subtract(other *Deck) *Deck {
	out := d.Clone()
	for _, c := range other.cards {
		out.Remove(c)
	}
	return out
}

// String renders the deck as whitespace-separated card short forms, top
// first. ParseDeck accepts this form back.
func (d *Deck) String() string {
	return d.Format(" ")
}

// Format renders the deck with the given separator between card short
// forms. Use a separator that satisfies ParseDeckDelim's collision rule if
// the output needs to be parsed back.
func (d *Deck) Format(delim string) string {
	return strings.Join(d.Strings(), delim)
}
