// Package reference provides slow, direct transforms used to check the fast paths.
package reference

import (
	"math"
	"math/cmplx"
)

// DFT evaluates X[k] = Σ x[j]·e^{sign·i2πjk/n} term by term in float64.
// sign is -1 for the forward transform and +1 for the unnormalised inverse.
func DFT(src []complex128, sign float64) []complex128 {
	n := len(src)
	dst := make([]complex128, n)

	for k := range n {
		var sum complex128

		for j, v := range src {
			// Reduce jk mod n first so the angle stays small for large n.
			angle := sign * 2 * math.Pi * float64((j*k)%n) / float64(n)
			sum += v * cmplx.Rect(1, angle)
		}

		dst[k] = sum
	}

	return dst
}

// NaiveDFT is the forward DFT.
func NaiveDFT(src []complex128) []complex128 {
	return DFT(src, -1)
}

// NaiveIDFT is the unnormalised inverse DFT.
func NaiveIDFT(src []complex128) []complex128 {
	return DFT(src, 1)
}

// RealDFT returns bins 0..n/2 of the DFT of a real sequence.
func RealDFT(src []float64, sign float64) []complex128 {
	buf := make([]complex128, len(src))
	for i, v := range src {
		buf[i] = complex(v, 0)
	}

	return DFT(buf, sign)[:len(src)/2+1]
}
