package math

import stdmath "math"

// Factorize splits n into the radix sequence used by the mixed-radix engine.
//
// Radices are extracted greedily in the order 4, 2, 3, 5, 7, 9, ... Once the
// candidate exceeds floor(sqrt(n)) of the original length, whatever remains is
// taken as a single (prime) radix. The product of the result equals n.
//
// Returns nil for n < 1 and an empty slice for n == 1.
func Factorize(n int) []int {
	if n < 1 {
		return nil
	}

	radices := make([]int, 0, 8)
	limit := int(stdmath.Floor(stdmath.Sqrt(float64(n))))
	p := 4

	for n > 1 {
		for n%p != 0 {
			switch p {
			case 4:
				p = 2
			case 2:
				p = 3
			default:
				p += 2
			}

			if p > limit {
				p = n
			}
		}

		n /= p
		radices = append(radices, p)
	}

	return radices
}

// Spans returns, for each radix, the length of the sub-transforms that the
// corresponding butterfly level combines (n / (radices[0]*...*radices[i])).
func Spans(radices []int) []int {
	n := 1
	for _, p := range radices {
		n *= p
	}

	spans := make([]int, len(radices))
	for i, p := range radices {
		n /= p
		spans[i] = n
	}

	return spans
}

// IsFastSize reports whether n > 0 factors into 2, 3 and 5 only.
func IsFastSize(n int) bool {
	if n < 1 {
		return false
	}

	for _, p := range [...]int{2, 3, 5} {
		for n%p == 0 {
			n /= p
		}
	}

	return n == 1
}
