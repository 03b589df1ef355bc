package cards

import "strconv"

// Rank represents a card rank. Joker is modeled as a rank; see Card for how
// joker equality works.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Joker
)

// Ranks lists the 13 standard ranks, Two through Ace.
var Ranks = [13]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// RanksWithJoker lists all 14 ranks including Joker.
var RanksWithJoker = [14]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace, Joker}

// Value returns the default numeric value of the rank: Two through Ten at
// face value, Ace high (14), Joker highest (15). Games that order ranks
// differently supply a Comparator instead.
func (r Rank) Value() int {
	return int(r)
}

// Symbol returns the textual token used in the card short form: "2".."10",
// "J", "Q", "K", "A" or "Joker".
func (r Rank) Symbol() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	case Joker:
		return "Joker"
	default:
		if r >= Two && r <= Ten {
			return strconv.Itoa(int(r))
		}
		return "?"
	}
}

// Name returns the English name of the rank.
func (r Rank) Name() string {
	switch r {
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	case Joker:
		return "Joker"
	default:
		return "?"
	}
}

// String returns the string representation of a rank
func (r Rank) String() string {
	return r.Symbol()
}
