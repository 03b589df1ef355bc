package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	cards "github.com/ernman37/crusty-cards"
	"github.com/ernman37/crusty-cards/internal/randutil"
)

var (
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	blackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

func renderCard(c cards.Card) string {
	if c.IsRed() {
		return redStyle.Render(c.String())
	}
	return blackStyle.Render(c.String())
}

type NewCmd struct {
	Jokers   bool   `help:"Include two jokers (54-card deck)"`
	Decks    int    `default:"1" help:"Number of 52-card decks in the shoe"`
	Shuffled bool   `help:"Shuffle before output"`
	Seed     int64  `env:"CARDS_SEED" help:"Seed for deterministic shuffling"`
	Format   string `default:"text" enum:"text,json,yaml,csv" help:"Output format"`
	Delim    string `help:"Delimiter for text output"`
}

func (c *NewCmd) Run(logger *zerolog.Logger) error {
	var factory cards.Factory = cards.Standard52{}
	switch {
	case c.Jokers:
		factory = cards.Standard54{}
	case c.Decks > 1:
		factory = cards.MultiDeck{Decks: c.Decks}
	}
	deck := cards.FromFactory(factory)
	if c.Shuffled {
		if c.Seed != 0 {
			deck.SetRand(randutil.New(c.Seed))
		}
		deck.Shuffle()
	}
	logger.Debug().Int("cards", deck.Len()).Bool("shuffled", c.Shuffled).Msg("generated deck")
	return writeDeck(os.Stdout, deck, c.Format, c.Delim)
}

type ShuffleCmd struct {
	Algorithm string `default:"random" enum:"random,riffle,overhand" help:"Shuffle algorithm"`
	Cut       int    `default:"-1" help:"Cut position applied after shuffling"`
	Seed      int64  `env:"CARDS_SEED" help:"Seed for deterministic shuffling"`
	Format    string `default:"text" enum:"text,json,yaml,csv" help:"Input and output format"`
	Delim     string `help:"Delimiter for text input and output"`
}

func (c *ShuffleCmd) Run(logger *zerolog.Logger) error {
	deck, err := readDeck(os.Stdin, c.Format, c.Delim)
	if err != nil {
		return err
	}
	if c.Seed != 0 {
		deck.SetRand(randutil.New(c.Seed))
	}
	switch c.Algorithm {
	case "riffle":
		deck.Riffle()
	case "overhand":
		deck.Overhand()
	default:
		deck.Shuffle()
	}
	if c.Cut >= 0 {
		if err := deck.Cut(c.Cut); err != nil {
			return err
		}
	}
	logger.Debug().Str("algorithm", c.Algorithm).Int("cards", deck.Len()).Msg("shuffled deck")
	return writeDeck(os.Stdout, deck, c.Format, c.Delim)
}

type SortCmd struct {
	Comparator string `default:"standard" enum:"standard,acelow,bridge,trump" help:"Rank ordering"`
	Trump      string `help:"Trump suit when --comparator=trump"`
	Format     string `default:"text" enum:"text,json,yaml,csv" help:"Input and output format"`
	Delim      string `help:"Delimiter for text input and output"`
}

func (c *SortCmd) Run(logger *zerolog.Logger) error {
	deck, err := readDeck(os.Stdin, c.Format, c.Delim)
	if err != nil {
		return err
	}
	var cmp cards.Comparator
	switch c.Comparator {
	case "acelow":
		cmp = cards.AceLowComparator{}
	case "bridge":
		cmp = cards.BridgeComparator{}
	case "trump":
		suit, err := cards.ParseSuit(c.Trump)
		if err != nil {
			return err
		}
		cmp = cards.TrumpComparator{Trump: suit}
	default:
		cmp = cards.StandardComparator{}
	}
	deck.SortByComparator(cmp)
	logger.Debug().Str("comparator", c.Comparator).Int("cards", deck.Len()).Msg("sorted deck")
	return writeDeck(os.Stdout, deck, c.Format, c.Delim)
}

type DealCmd struct {
	N      int    `default:"1" help:"Number of cards to deal"`
	Bottom bool   `help:"Deal from the bottom of the deck"`
	Format string `default:"text" enum:"text,json,yaml,csv" help:"Input format"`
	Delim  string `help:"Delimiter for text input"`
}

func (c *DealCmd) Run(logger *zerolog.Logger) error {
	deck, err := readDeck(os.Stdin, c.Format, c.Delim)
	if err != nil {
		return err
	}
	var dealt []cards.Card
	if c.Bottom {
		dealt = deck.DealNBottom(c.N)
	} else {
		dealt = deck.DealN(c.N)
	}
	rendered := make([]string, len(dealt))
	for i, card := range dealt {
		rendered[i] = renderCard(card)
	}
	fmt.Println(strings.Join(rendered, " "))
	logger.Info().Int("dealt", len(dealt)).Int("remaining", deck.Len()).Msg("dealt cards")
	return nil
}

type ShowCmd struct {
	Art    bool   `help:"Render ASCII card faces"`
	Format string `default:"text" enum:"text,json,yaml,csv" help:"Input format"`
	Delim  string `help:"Delimiter for text input"`
}

func (c *ShowCmd) Run(logger *zerolog.Logger) error {
	deck, err := readDeck(os.Stdin, c.Format, c.Delim)
	if err != nil {
		return err
	}
	if c.Art {
		for _, card := range deck.Cards() {
			fmt.Println(card.Art())
		}
		return nil
	}
	rendered := make([]string, 0, deck.Len())
	for _, card := range deck.Cards() {
		rendered = append(rendered, renderCard(card))
	}
	fmt.Println(strings.Join(rendered, " "))
	return nil
}
