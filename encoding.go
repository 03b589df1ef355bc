package cards

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalText renders the card short form. Cards therefore serialize as
// plain strings under encoding/json and anything else that understands
// encoding.TextMarshaler.
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a card short form.
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = card
	return nil
}

// MarshalYAML encodes the card as its short form.
func (c Card) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes a card from its short form.
func (c *Card) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	card, err := ParseCard(s)
	if err != nil {
		return err
	}
	*c = card
	return nil
}

// MarshalJSON encodes the deck as a JSON array of card short forms, top
// first.
func (d *Deck) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Strings())
}

// UnmarshalJSON decodes a JSON array of card short forms. On any decode or
// parse failure the deck is left unchanged.
func (d *Deck) UnmarshalJSON(data []byte) error {
	var decoded []Card
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	d.cards = decoded
	return nil
}

// MarshalYAML encodes the deck as a YAML sequence of card short forms.
func (d *Deck) MarshalYAML() (interface{}, error) {
	return d.Strings(), nil
}

// UnmarshalYAML decodes a YAML sequence of card short forms. On failure the
// deck is left unchanged.
func (d *Deck) UnmarshalYAML(node *yaml.Node) error {
	var decoded []Card
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	d.cards = decoded
	return nil
}

// ToJSON encodes the deck to JSON.
func (d *Deck) ToJSON() ([]byte, error) {
	return json.Marshal(d)
}

// FromJSON decodes a deck from a JSON array of card short forms.
func FromJSON(data []byte) (*Deck, error) {
	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode deck json: %w", err)
	}
	return &d, nil
}

// ToYAML encodes the deck to YAML.
func (d *Deck) ToYAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// FromYAML decodes a deck from a YAML sequence of card short forms.
func FromYAML(data []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode deck yaml: %w", err)
	}
	return &d, nil
}

// ToCSV encodes the deck as CSV: one record per card, each with a single
// short-form field, top card first.
func (d *Deck) ToCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, c := range d.cards {
		if err := w.Write([]string{c.String()}); err != nil {
			return nil, fmt.Errorf("encode deck csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encode deck csv: %w", err)
	}
	return buf.Bytes(), nil
}

// FromCSV decodes a deck from CSV written by ToCSV: every record must hold
// exactly one card short form.
func FromCSV(data []byte) (*Deck, error) {
	r := csv.NewReader(bytes.NewReader(data))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode deck csv: %w", err)
	}
	decoded := make([]Card, 0, len(records))
	for _, rec := range records {
		if len(rec) != 1 {
			return nil, &ParseError{Input: strings.Join(rec, ","), Reason: "expected one card per record"}
		}
		card, err := ParseCard(rec[0])
		if err != nil {
			return nil, err
		}
		decoded = append(decoded, card)
	}
	return New(decoded...), nil
}
