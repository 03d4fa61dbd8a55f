package fftypes

// Direction selects the sign of the twiddle exponent.
// The zero value is Forward.
type Direction uint8

const (
	// Forward uses e^{-i2πk/n}.
	Forward Direction = iota
	// Inverse uses e^{+i2πk/n}. The result is not scaled by 1/n.
	Inverse
)

// Valid reports whether d is one of the declared directions.
func (d Direction) Valid() bool {
	return d == Forward || d == Inverse
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "unknown"
	}
}
