package mixfft

import "github.com/pkg/errors"

// Sentinel errors returned by FFT operations. Returned errors wrap these with
// the offending sizes; match them with errors.Is.
var (
	// ErrInvalidLength is returned when the FFT size is not valid.
	// Both planners require an even length of at least 2.
	ErrInvalidLength = errors.New("mixfft: invalid FFT length")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("mixfft: nil slice")

	// ErrLengthMismatch is returned when input/output slice sizes don't match
	// the Plan's expected dimensions.
	ErrLengthMismatch = errors.New("mixfft: slice length mismatch")

	// ErrInvalidStride is returned when a stride parameter is invalid
	// for the given data layout (e.g., stride < 1 or overflowing indices).
	ErrInvalidStride = errors.New("mixfft: invalid stride")

	// ErrInvalidDirection is returned for a Direction other than Forward or Inverse.
	ErrInvalidDirection = errors.New("mixfft: invalid direction")

	// ErrInvalidStrategy is returned for an unknown KernelStrategy.
	ErrInvalidStrategy = errors.New("mixfft: invalid kernel strategy")

	// ErrPlanClosed is returned by every transform after Close.
	ErrPlanClosed = errors.New("mixfft: plan closed")
)

func validateConfig(n int, dir Direction, opts PlanOptions) error {
	if n < 2 || n%2 != 0 {
		return errors.Wrapf(ErrInvalidLength, "n=%d, want an even length >= 2", n)
	}

	if !dir.Valid() {
		return errors.Wrapf(ErrInvalidDirection, "direction=%d", dir)
	}

	if !opts.Strategy.Valid() {
		return errors.Wrapf(ErrInvalidStrategy, "strategy=%d", opts.Strategy)
	}

	return nil
}

func lengthMismatch(name string, got, want int) error {
	return errors.Wrapf(ErrLengthMismatch, "%s has %d elements, want %d", name, got, want)
}
