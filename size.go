package mixfft

import m "github.com/cwbudde/algo-mixfft/internal/math"

// NextFastSize returns the smallest m >= n whose only prime factors are 2, 3
// and 5. Such lengths avoid the generic butterfly. Returns 1 for n < 1.
func NextFastSize(n int) int {
	if n < 1 {
		return 1
	}

	for !m.IsFastSize(n) {
		n++
	}

	return n
}

// NextFastEvenSize is NextFastSize restricted to even lengths, which is what
// real plans need: the half length N/2 is then itself a fast size.
func NextFastEvenSize(n int) int {
	if n < 2 {
		return 2
	}

	return 2 * NextFastSize((n+1)/2)
}
