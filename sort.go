package cards

import "sort"

// SortByComparator stable-sorts the deck into ascending order under c.
// Cards the comparator considers equal are ordered by canonical suit order
// (Hearts, Diamonds, Clubs, Spades) so the result is fully deterministic;
// identical cards keep their relative order.
func (d *Deck) SortByComparator(c Comparator) {
	sort.SliceStable(d.cards, func(i, j int) bool {
		a, b := d.cards[i], d.cards[j]
		if r := Compare(c, a, b); r != 0 {
			return r < 0
		}
		return a.Suit() < b.Suit()
	})
}

// SortBy stable-sorts the deck with an arbitrary ordering predicate.
func (d *Deck) SortBy(less func(a, b Card) bool) {
	sort.SliceStable(d.cards, func(i, j int) bool {
		return less(d.cards[i], d.cards[j])
	})
}
