package mixfft

import "github.com/cwbudde/algo-mixfft/internal/fftypes"

// Complex is a type constraint for complex number types supported by the FFT.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type constraint for floating-point types used in real FFT operations.
// The canonical definition is in internal/fftypes.
type Float = fftypes.Float

// Direction selects the sign of the twiddle exponent. The zero value is Forward.
type Direction = fftypes.Direction

const (
	// Forward uses e^{-i2πk/N}.
	Forward = fftypes.Forward
	// Inverse uses e^{+i2πk/N} and is not normalized: applying Forward then
	// Inverse scales the signal by N.
	Inverse = fftypes.Inverse
)
