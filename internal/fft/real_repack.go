package fft

import "math"

// A real sequence x of even length n is packed as z[k] = x[2k] + i·x[2k+1]
// and transformed at length half = n/2. With E and O the half-length spectra
// of the even and odd samples, Z = E + i·O and
//
//	X[k]      = E[k] + W_n^k·O[k]
//	X[half-k] = conj(E[k] - W_n^k·O[k])
//
// Both bins of a pair come out of one recombination step.

// ComputeRealTwiddles returns the recombination twiddles -i·W_n^k for
// k = 1..n/4, where W_n follows dir. n is the real length.
func ComputeRealTwiddles[T Complex](n int, dir Direction) []T {
	if n < 2 {
		return nil
	}

	s := sign(dir)
	half := n / 2
	tw := make([]T, half/2)

	for i := range tw {
		theta := s * 2 * math.Pi * float64(i+1) / float64(n)
		// -i·(cos θ + i·sin θ)
		tw[i] = complexFromFloat64[T](math.Sin(theta), -math.Cos(theta))
	}

	return tw
}

// RecombineReal turns the half-length spectrum z of the packed sequence into
// bins 0..half of the real transform. dst has length half+1, z has length
// half and twiddle comes from ComputeRealTwiddles. Bins 0 and half have an
// imaginary part of exactly zero.
func RecombineReal[T Complex](dst, z, twiddle []T) {
	half := len(z)
	if half == 0 {
		return
	}

	re, im := parts(z[0])
	dst[0] = complexFromFloat64[T](re+im, 0)
	dst[half] = complexFromFloat64[T](re-im, 0)

	for k := 1; k <= half/2; k++ {
		fpk := z[k]
		fpnk := conj(z[half-k])

		f1 := fpk + fpnk
		tw := (fpk - fpnk) * twiddle[k-1]

		dst[k] = (f1 + tw) * 0.5
		dst[half-k] = conj(f1-tw) * 0.5
	}
}

// RepackInverse rebuilds a packed half-length buffer from bins 0..half so
// that the opposite-direction transform of dst yields n·(x[2k] + i·x[2k+1]).
// dst has length half, src has length half+1. The imaginary parts of
// src[0] and src[half] are ignored.
func RepackInverse[T Complex](dst, src, twiddle []T) {
	half := len(dst)
	if half == 0 {
		return
	}

	x0, _ := parts(src[0])
	xh, _ := parts(src[half])
	dst[0] = complexFromFloat64[T](x0+xh, x0-xh)

	for k := 1; k <= half/2; k++ {
		fk := src[k]
		fnkc := conj(src[half-k])

		fek := fk + fnkc
		fok := (fk - fnkc) * conj(twiddle[k-1])

		dst[k] = fek + fok
		dst[half-k] = conj(fek - fok)
	}
}

// ConjugateInPlace conjugates every sample of data.
func ConjugateInPlace[T Complex](data []T) {
	for i, v := range data {
		data[i] = conj(v)
	}
}
