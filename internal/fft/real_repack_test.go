package fft

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-mixfft/internal/fftypes"
	"github.com/cwbudde/algo-mixfft/internal/reference"
)

func randomReal(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewSource(int64(seed)))

	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

func packReal(src []float64) []complex128 {
	z := make([]complex128, len(src)/2)
	for k := range z {
		z[k] = complex(src[2*k], src[2*k+1])
	}

	return z
}

var realSizes = []int{2, 4, 6, 8, 10, 12, 18, 30, 64, 90, 100, 202, 256, 1000}

func TestRecombineRealMatchesReference(t *testing.T) {
	t.Parallel()

	for _, n := range realSizes {
		for _, dir := range []Direction{fftypes.Forward, fftypes.Inverse} {
			t.Run(fmt.Sprintf("n=%d/%s", n, dir), func(t *testing.T) {
				t.Parallel()

				src := randomReal(n, uint64(n))
				half := n / 2

				z := transform128(half, dir, packReal(src))
				dst := make([]complex128, half+1)
				RecombineReal(dst, z, ComputeRealTwiddles[complex128](n, dir))

				assertComplex128SliceClose(t, dst, reference.RealDFT(src, sign(dir)), n)

				if imag(dst[0]) != 0 || imag(dst[half]) != 0 {
					t.Fatalf("DC/Nyquist imaginary parts not zero: %v %v", dst[0], dst[half])
				}
			})
		}
	}
}

func TestRepackInverseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range realSizes {
		for _, dir := range []Direction{fftypes.Forward, fftypes.Inverse} {
			t.Run(fmt.Sprintf("n=%d/%s", n, dir), func(t *testing.T) {
				t.Parallel()

				src := randomReal(n, uint64(n)+1)
				half := n / 2
				spectrum := reference.RealDFT(src, sign(dir))

				buf := make([]complex128, half)
				RepackInverse(buf, spectrum, ComputeRealTwiddles[complex128](n, dir))

				// conj(F(conj(y))) runs the opposite direction with the same tables.
				ConjugateInPlace(buf)
				out := transform128(half, dir, buf)
				ConjugateInPlace(out)

				want := packReal(src)
				for i := range want {
					want[i] *= complex(float64(n), 0)
				}

				assertComplex128SliceClose(t, out, want, n)
			})
		}
	}
}

func TestRepackInverseIgnoresEdgeImaginary(t *testing.T) {
	t.Parallel()

	const n = 8

	tw := ComputeRealTwiddles[complex128](n, fftypes.Forward)
	spectrum := reference.RealDFT(randomReal(n, 8), -1)

	clean := make([]complex128, n/2)
	RepackInverse(clean, spectrum, tw)

	spectrum[0] += 5i
	spectrum[n/2] -= 3i

	noisy := make([]complex128, n/2)
	RepackInverse(noisy, spectrum, tw)

	for i := range clean {
		if clean[i] != noisy[i] {
			t.Fatalf("index %d: %v != %v", i, noisy[i], clean[i])
		}
	}
}

func TestComputeRealTwiddles(t *testing.T) {
	t.Parallel()

	if got := ComputeRealTwiddles[complex64](1, fftypes.Forward); got != nil {
		t.Fatalf("ComputeRealTwiddles(1) = %v, want nil", got)
	}

	for _, n := range []int{2, 6, 8, 30} {
		if got, want := len(ComputeRealTwiddles[complex64](n, fftypes.Forward)), n/4; got != want {
			t.Errorf("n=%d: len = %d, want %d", n, got, want)
		}
	}
}
