package cards

// Suit represents the suit of a card.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists all four suits in their canonical order. This order is also
// the deterministic tie-break used by Deck.SortByComparator.
var Suits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

// RedSuits and BlackSuits list the suits of each color.
var (
	RedSuits   = [2]Suit{Hearts, Diamonds}
	BlackSuits = [2]Suit{Clubs, Spades}
)

// Color returns the color of the suit.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// IsRed returns true if the suit is Hearts or Diamonds.
func (s Suit) IsRed() bool {
	return s.Color() == Red
}

// IsBlack returns true if the suit is Clubs or Spades.
func (s Suit) IsBlack() bool {
	return s.Color() == Black
}

// Symbol returns the Unicode glyph for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the English name of the suit.
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	default:
		return "?"
	}
}

// String returns the string representation of a suit
func (s Suit) String() string {
	return s.Symbol()
}
