package fft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

const (
	testTol64  = 1e-4  // relative to the largest reference magnitude
	testTol128 = 1e-10 // relative to the largest reference magnitude
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

func widen(src []complex64) []complex128 {
	out := make([]complex128, len(src))
	for i, v := range src {
		out[i] = complex128(v)
	}

	return out
}

func maxAbs(values []complex128) float64 {
	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, cmplx.Abs(v))
	}

	return peak
}

// assertComplex64SliceClose compares got against a float64 reference with a
// tolerance relative to the reference's largest magnitude.
func assertComplex64SliceClose(t *testing.T, got []complex64, want []complex128, n int) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	limit := testTol64 * (1 + maxAbs(want))
	for i := range want {
		if diff := cmplx.Abs(complex128(got[i]) - want[i]); diff > limit {
			t.Fatalf("n=%d: index %d: got %v, want %v (diff=%e, limit=%e)", n, i, got[i], want[i], diff, limit)
		}
	}
}

func assertComplex128SliceClose(t *testing.T, got, want []complex128, n int) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	limit := testTol128 * (1 + maxAbs(want))
	for i := range want {
		if diff := cmplx.Abs(got[i] - want[i]); diff > limit {
			t.Fatalf("n=%d: index %d: got %v, want %v (diff=%e, limit=%e)", n, i, got[i], want[i], diff, limit)
		}
	}
}

// transform64 runs a fresh engine over src.
func transform64(n int, dir Direction, src []complex64) []complex64 {
	plan := NewMixedRadix[complex64](n, dir, 0)
	dst := make([]complex64, n)
	plan.Transform(dst, src, make([]complex64, plan.ScratchLen()))

	return dst
}

func transform128(n int, dir Direction, src []complex128) []complex128 {
	plan := NewMixedRadix[complex128](n, dir, 0)
	dst := make([]complex128, n)
	plan.Transform(dst, src, make([]complex128, plan.ScratchLen()))

	return dst
}
