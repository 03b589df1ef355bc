package cards

import (
	"fmt"
	"strings"
)

// Card is an immutable playing card value: a Suit and a Rank.
//
// Jokers are modeled as the Joker rank. Every joker still carries a suit,
// used only for display; Standard54 produces Joker♥ and Joker♠. The ==
// operator therefore distinguishes jokers by their display suit. Use
// Matches to treat all jokers as the same logical card, which is what
// Deck.Contains, Deck.Find and Deck.Remove do.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new card.
func NewCard(suit Suit, rank Rank) Card {
	return Card{suit: suit, rank: rank}
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the card.
func (c Card) Rank() Rank {
	return c.rank
}

// Color returns the color of the card's suit.
func (c Card) Color() Color {
	return c.suit.Color()
}

// IsRed returns true if the card is red.
func (c Card) IsRed() bool {
	return c.suit.IsRed()
}

// IsBlack returns true if the card is black.
func (c Card) IsBlack() bool {
	return c.suit.IsBlack()
}

// IsAce returns true if the card is an Ace.
func (c Card) IsAce() bool {
	return c.rank == Ace
}

// IsFaceCard returns true if the card is a face card (J, Q, K).
func (c Card) IsFaceCard() bool {
	return c.rank >= Jack && c.rank <= King
}

// IsValueCard returns true if the card is a numbered card (2 through 10).
func (c Card) IsValueCard() bool {
	return c.rank >= Two && c.rank <= Ten
}

// IsJoker returns true if the card is a joker.
func (c Card) IsJoker() bool {
	return c.rank == Joker
}

// IsSameRank returns true if both cards have the same rank.
func (c Card) IsSameRank(o Card) bool {
	return c.rank == o.rank
}

// IsSameSuit returns true if both cards have the same suit.
func (c Card) IsSameSuit(o Card) bool {
	return c.suit == o.suit
}

// IsSameColor returns true if both cards have the same color.
func (c Card) IsSameColor(o Card) bool {
	return c.Color() == o.Color()
}

// Matches reports whether two cards are the same logical card. It is == for
// ordinary cards; jokers match regardless of their display suit.
func (c Card) Matches(o Card) bool {
	if c.rank == Joker && o.rank == Joker {
		return true
	}
	return c == o
}

// String returns the short form of the card: rank token followed by suit
// glyph, e.g. "A♠", "10♦", "Joker♥". ParseCard accepts this form back.
func (c Card) String() string {
	return c.rank.Symbol() + c.suit.Symbol()
}

// Art renders a five-line ASCII face for the card.
func (c Card) Art() string {
	tok := c.rank.Symbol()
	if c.rank == Joker {
		tok = "JK"
	}
	var b strings.Builder
	b.WriteString("┌─────┐\n")
	fmt.Fprintf(&b, "│%-5s│\n", tok)
	fmt.Fprintf(&b, "│  %s  │\n", c.suit.Symbol())
	fmt.Fprintf(&b, "│%5s│\n", tok)
	b.WriteString("└─────┘")
	return b.String()
}
