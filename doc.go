// Package cards provides primitives for working with playing cards and
// decks: typed Card, Suit, Rank and Color values, an ordered double-ended
// Deck container, pluggable shuffle algorithms (Fisher-Yates, riffle,
// overhand, cut), comparator-driven sorting, and lossless text, JSON, YAML
// and CSV serialization.
//
// It deliberately stops short of game rules. Hands, scoring and turn order
// belong to the caller; the package supplies correct, well-tested building
// blocks.
//
//	deck := cards.FromFactory(cards.Standard52{})
//	deck.Shuffle()
//	card, ok := deck.Deal()
//
// Custom deck compositions implement Factory; custom rank orderings
// implement Comparator. Shuffle randomness comes from math/rand/v2 and is
// not cryptographic.
package cards
