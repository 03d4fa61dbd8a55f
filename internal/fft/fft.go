// Package fft implements the mixed-radix Cooley-Tukey engine behind the
// public planners: twiddle tables, radix butterflies, the digit-reversed
// level schedule and the real-input recombination.
package fft

import (
	"math"

	"github.com/cwbudde/algo-mixfft/internal/fftypes"
	m "github.com/cwbudde/algo-mixfft/internal/math"
)

// Complex is a type alias for the complex number constraint.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Direction is the transform direction.
type Direction = fftypes.Direction

// sign maps a direction to the sign of the twiddle exponent.
func sign(dir Direction) float64 {
	if dir == fftypes.Inverse {
		return 1
	}

	return -1
}

// ComputeTwiddleFactors returns the precomputed twiddle factors (roots of unity)
// for a size-n FFT: W_n^k = exp(±2πik/n) for k = 0..n-1, negative exponent for
// Forward. Values are evaluated in float64 and narrowed to T.
func ComputeTwiddleFactors[T Complex](n int, dir Direction) []T {
	if n <= 0 {
		return nil
	}

	s := sign(dir)
	twiddle := make([]T, n)

	for k := range n {
		angle := s * m.TwoPi * float64(k) / float64(n)
		twiddle[k] = complexFromFloat64[T](math.Cos(angle), math.Sin(angle))
	}

	return twiddle
}

// complexFromFloat64 creates a complex number of type T from float64 components.
func complexFromFloat64[T Complex](re, im float64) T {
	var zero T
	switch any(zero).(type) {
	case complex64:
		result, _ := any(complex(float32(re), float32(im))).(T)
		return result
	case complex128:
		result, _ := any(complex(re, im)).(T)
		return result
	default:
		panic("unsupported complex type")
	}
}

// conj returns the complex conjugate of val.
func conj[T Complex](val T) T {
	switch v := any(val).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case complex128:
		return any(complex(real(v), -imag(v))).(T)
	default:
		panic("unsupported complex type")
	}
}

// parts returns the real and imaginary components of val as float64.
func parts[T Complex](val T) (float64, float64) {
	switch v := any(val).(type) {
	case complex64:
		return float64(real(v)), float64(imag(v))
	case complex128:
		return real(v), imag(v)
	default:
		panic("unsupported complex type")
	}
}
