package cards

import "cmp"

// Comparator assigns numeric values to ranks, from which a total order over
// cards is derived. Different games want different orders: poker plays Ace
// high, lowball plays Ace low, trick-taking games rank trump above all.
//
// Implementations may additionally provide either of two optional methods
// recognized by Compare:
//
//	SuitValue(Suit) int    // break equal ranks by suit
//	Compare(a, b Card) int // replace the derived order entirely
type Comparator interface {
	RankValue(Rank) int
}

// Compare orders two cards under c, returning a negative number when a sorts
// below b, zero when they are equal, and a positive number otherwise. Rank
// values are compared first; equal ranks fall through to the comparator's
// SuitValue method if it has one, otherwise they are equal.
func Compare(c Comparator, a, b Card) int {
	if o, ok := c.(interface{ Compare(a, b Card) int }); ok {
		return o.Compare(a, b)
	}
	if d := cmp.Compare(c.RankValue(a.Rank()), c.RankValue(b.Rank())); d != 0 {
		return d
	}
	if sv, ok := c.(interface{ SuitValue(Suit) int }); ok {
		return cmp.Compare(sv.SuitValue(a.Suit()), sv.SuitValue(b.Suit()))
	}
	return 0
}

// Max returns the higher of two cards under c, or a when equal.
func Max(c Comparator, a, b Card) Card {
	if Compare(c, a, b) >= 0 {
		return a
	}
	return b
}

// Min returns the lower of two cards under c, or a when equal.
func Min(c Comparator, a, b Card) Card {
	if Compare(c, a, b) <= 0 {
		return a
	}
	return b
}

// StandardComparator orders ranks at their default values: Ace high (14),
// Joker highest (15). Suits are equal.
type StandardComparator struct{}

func (StandardComparator) RankValue(r Rank) int {
	return r.Value()
}

// AceLowComparator orders Ace below Two, for games like Razz or lowball.
// Joker stays highest.
type AceLowComparator struct{}

func (AceLowComparator) RankValue(r Rank) int {
	switch r {
	case Ace:
		return 1
	case Joker:
		return 14
	default:
		return r.Value()
	}
}

// BridgeComparator orders ranks Ace high and breaks ties by suit in bridge
// order: Clubs < Diamonds < Hearts < Spades.
type BridgeComparator struct{}

func (BridgeComparator) RankValue(r Rank) int {
	return r.Value()
}

func (BridgeComparator) SuitValue(s Suit) int {
	switch s {
	case Clubs:
		return 1
	case Diamonds:
		return 2
	case Hearts:
		return 3
	default:
		return 4
	}
}

// TrumpComparator ranks every card of the trump suit above every other
// card; within trump and within non-trump, ranks compare at their default
// values.
type TrumpComparator struct {
	Trump Suit
}

func (t TrumpComparator) RankValue(r Rank) int {
	return r.Value()
}

func (t TrumpComparator) Compare(a, b Card) int {
	aTrump := a.Suit() == t.Trump
	bTrump := b.Suit() == t.Trump
	switch {
	case aTrump && !bTrump:
		return 1
	case !aTrump && bTrump:
		return -1
	default:
		return cmp.Compare(t.RankValue(a.Rank()), t.RankValue(b.Rank()))
	}
}
