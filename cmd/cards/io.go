package main

import (
	"fmt"
	"io"
	"strings"

	cards "github.com/ernman37/crusty-cards"
)

// readDeck decodes a deck from r in the given format. The text format also
// honors a custom delimiter.
func readDeck(r io.Reader, format, delim string) (*cards.Deck, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	switch format {
	case "json":
		return cards.FromJSON(data)
	case "yaml":
		return cards.FromYAML(data)
	case "csv":
		return cards.FromCSV(data)
	default:
		if delim != "" {
			return cards.ParseDeckDelim(strings.TrimSpace(string(data)), delim)
		}
		return cards.ParseDeck(string(data))
	}
}

// writeDeck encodes a deck to w in the given format, newline-terminated.
func writeDeck(w io.Writer, deck *cards.Deck, format, delim string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = deck.ToJSON()
		data = append(data, '\n')
	case "yaml":
		data, err = deck.ToYAML()
	case "csv":
		data, err = deck.ToCSV()
	default:
		if delim == "" {
			delim = " "
		}
		data = []byte(deck.Format(delim) + "\n")
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
