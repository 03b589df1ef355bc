package cards

import "fmt"

// ParseError reports card or deck text that could not be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cards: cannot parse %q: %s", e.Input, e.Reason)
}

// IndexError reports an out-of-range position passed to an indexed deck
// operation or to Cut.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cards: index %d out of range for deck of %d", e.Index, e.Len)
}
