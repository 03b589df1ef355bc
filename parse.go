package cards

import (
	"strings"
	"unicode"
)

// Closed vocabularies for the card short-form grammar. Tokens are matched
// against lowercased, whitespace-stripped input.
var rankTokens = map[string]Rank{
	"2": Two, "two": Two,
	"3": Three, "three": Three,
	"4": Four, "four": Four,
	"5": Five, "five": Five,
	"6": Six, "six": Six,
	"7": Seven, "seven": Seven,
	"8": Eight, "eight": Eight,
	"9": Nine, "nine": Nine,
	"10": Ten, "t": Ten, "ten": Ten,
	"j": Jack, "jack": Jack,
	"q": Queen, "queen": Queen,
	"k": King, "king": King,
	"a": Ace, "ace": Ace,
	"joker": Joker,
}

var suitTokens = map[string]Suit{
	"♥": Hearts, "h": Hearts, "heart": Hearts, "hearts": Hearts,
	"♦": Diamonds, "d": Diamonds, "diamond": Diamonds, "diamonds": Diamonds,
	"♣": Clubs, "c": Clubs, "club": Clubs, "clubs": Clubs,
	"♠": Spades, "s": Spades, "spade": Spades, "spades": Spades,
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// ParseCard parses a card from its textual short form: a rank token followed
// by a suit token, case- and whitespace-insensitive. Accepted rank tokens are
// "2".."10" (and "T"), single face letters, full rank names, and "Joker";
// suit tokens are the glyphs ♠♥♦♣, the initials S/H/D/C, and the full suit
// names. "K♠", "KS", "Kspades" and "KiNgsPaDeS" all parse to the same card.
//
// A bare "Joker" with no suit token parses to a joker displayed as Joker♠.
// Input that matches no split of the vocabularies, or whose splits disagree
// on the resulting card, fails with a *ParseError.
func ParseCard(s string) (Card, error) {
	norm := normalize(s)
	if norm == "" {
		return Card{}, &ParseError{Input: s, Reason: "empty input"}
	}
	if norm == "joker" {
		return NewCard(Spades, Joker), nil
	}

	var (
		found   Card
		matches int
	)
	for tok, suit := range suitTokens {
		rest, ok := strings.CutSuffix(norm, tok)
		if !ok || rest == "" {
			continue
		}
		rank, ok := rankTokens[rest]
		if !ok {
			continue
		}
		card := NewCard(suit, rank)
		if matches > 0 && card != found {
			return Card{}, &ParseError{Input: s, Reason: "ambiguous card"}
		}
		found = card
		matches++
	}
	if matches == 0 {
		return Card{}, &ParseError{Input: s, Reason: "unrecognized rank or suit"}
	}
	return found, nil
}

// ParseSuit parses a suit token (glyph, initial or name), case-insensitive.
func ParseSuit(s string) (Suit, error) {
	suit, ok := suitTokens[normalize(s)]
	if !ok {
		return 0, &ParseError{Input: s, Reason: "unrecognized suit"}
	}
	return suit, nil
}

// ParseRank parses a rank token, case-insensitive.
func ParseRank(s string) (Rank, error) {
	rank, ok := rankTokens[normalize(s)]
	if !ok {
		return 0, &ParseError{Input: s, Reason: "unrecognized rank"}
	}
	return rank, nil
}

// ParseDeck parses a whitespace-separated sequence of card short forms into
// a deck, first card on top. An empty string yields an empty deck.
func ParseDeck(s string) (*Deck, error) {
	fields := strings.Fields(s)
	parsed := make([]Card, 0, len(fields))
	for _, f := range fields {
		card, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, card)
	}
	return New(parsed...), nil
}

// ParseDeckDelim parses a deck using a caller-supplied delimiter between
// card short forms. The delimiter must not contain any character that can
// appear in a short form (letters, digits, or the suit glyphs); such a
// delimiter cannot be tokenized unambiguously and is rejected with a
// *ParseError before any input is consumed.
func ParseDeckDelim(s, delim string) (*Deck, error) {
	if err := checkDelimiter(delim); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s) == "" {
		return New(), nil
	}
	parts := strings.Split(s, delim)
	parsed := make([]Card, 0, len(parts))
	for _, p := range parts {
		card, err := ParseCard(p)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, card)
	}
	return New(parsed...), nil
}

func checkDelimiter(delim string) error {
	if delim == "" {
		return &ParseError{Input: delim, Reason: "empty delimiter"}
	}
	for _, r := range delim {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("♠♥♦♣", r) {
			return &ParseError{Input: delim, Reason: "delimiter collides with card characters"}
		}
	}
	return nil
}
