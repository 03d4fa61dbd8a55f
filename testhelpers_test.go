package mixfft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-mixfft/internal/reference"
)

// Shared test helper functions used across multiple test files

const (
	relTol64  = 1e-4  // complex64, relative to the largest reference magnitude
	relTol128 = 1e-10 // complex128, relative to the largest reference magnitude
)

func randomComplex64(n int, seed uint64) []complex64 {
	rng := rand.New(rand.NewSource(int64(seed)))

	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(float32(rng.Float64()*2-1), float32(rng.Float64()*2-1))
	}

	return out
}

func randomComplex128(n int, seed uint64) []complex128 {
	rng := rand.New(rand.NewSource(int64(seed)))

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return out
}

func randomFloat64(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewSource(int64(seed)))

	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

func randomFloat32(n int, seed uint64) []float32 {
	src := randomFloat64(n, seed)

	out := make([]float32, n)
	for i, v := range src {
		out[i] = float32(v)
	}

	return out
}

// referenceSign maps a direction to the exponent sign reference.DFT expects.
func referenceSign(dir Direction) float64 {
	if dir == Inverse {
		return 1
	}

	return -1
}

func referenceComplex(src []complex128, dir Direction) []complex128 {
	return reference.DFT(src, referenceSign(dir))
}

func toComplex128(src []complex64) []complex128 {
	out := make([]complex128, len(src))
	for i, v := range src {
		out[i] = complex128(v)
	}

	return out
}

func float32To64(src []float32) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}

	return out
}

func peakAbs(values []complex128) float64 {
	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, cmplx.Abs(v))
	}

	return peak
}

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func assertSpectrum128(t *testing.T, got, want []complex128) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}

	tol := relTol128 * (1 + peakAbs(want))
	for i := range want {
		assertApproxComplex128Tolf(t, got[i], want[i], tol, "bin %d", i)
	}
}

func assertSpectrum64(t *testing.T, got []complex64, want []complex128) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}

	tol := relTol64 * (1 + peakAbs(want))
	for i := range want {
		assertApproxComplex128Tolf(t, complex128(got[i]), want[i], tol, "bin %d", i)
	}
}
