package cards

import "slices"

// Shuffle applies a uniform random permutation to the deck using
// Fisher-Yates. Empty and single-card decks are unchanged.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// ShuffleTimes runs Shuffle n times.
func (d *Deck) ShuffleTimes(n int) {
	for range n {
		d.Shuffle()
	}
}

// Riffle splits the deck within one card of the midpoint and interleaves
// the two halves in alternating runs of 1 to 3 cards, approximating a
// physical riffle shuffle. Decks of fewer than two cards are unchanged.
func (d *Deck) Riffle() {
	n := len(d.cards)
	if n < 2 {
		return
	}
	mid := n / 2
	if n > 3 {
		mid += d.intn(3) - 1 // split point wanders by ±1
	}
	left := slices.Clone(d.cards[:mid])
	right := slices.Clone(d.cards[mid:])

	out := d.cards[:0]
	li, ri := 0, 0
	takeLeft := d.intn(2) == 0
	for li < len(left) || ri < len(right) {
		run := 1 + d.intn(3)
		if takeLeft {
			for ; run > 0 && li < len(left); run-- {
				out = append(out, left[li])
				li++
			}
		} else {
			for ; run > 0 && ri < len(right); run-- {
				out = append(out, right[ri])
				ri++
			}
		}
		takeLeft = !takeLeft
	}
	d.cards = out
}

// Overhand repeatedly peels a small random packet off the top and stacks it
// onto a new pile, the way an overhand shuffle does: packet order reverses
// while cards within a packet keep their order. Packet sizes run from 1 to
// a fifth of the deck. Decks of fewer than two cards are unchanged.
func (d *Deck) Overhand() {
	n := len(d.cards)
	if n < 2 {
		return
	}
	maxPacket := n / 5
	if maxPacket < 1 {
		maxPacket = 1
	}
	out := make([]Card, 0, n)
	for i := 0; i < n; {
		take := 1 + d.intn(maxPacket)
		if take > n-i {
			take = n - i
		}
		out = slices.Insert(out, 0, d.cards[i:i+take]...)
		i += take
	}
	d.cards = out
}

// Cut splits the deck at position p and swaps the halves: cards from
// position p onward move to the front. p of 0 or Len is a no-op; anything
// outside [0, Len] is an *IndexError and leaves the deck unchanged.
func (d *Deck) Cut(p int) error {
	if p < 0 || p > len(d.cards) {
		return &IndexError{Index: p, Len: len(d.cards)}
	}
	out := make([]Card, 0, len(d.cards))
	out = append(out, d.cards[p:]...)
	out = append(out, d.cards[:p]...)
	d.cards = out
	return nil
}
