package cards

// Color is the color of a suit. Every suit is either Red or Black.
type Color int

const (
	Red Color = iota
	Black
)

// String returns "Red" or "Black".
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return "?"
	}
}
