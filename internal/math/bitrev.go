package math

// ComputeBitReversalIndices returns the bit-reversal permutation indices
// for a size-n radix-2 FFT.
func ComputeBitReversalIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	bitrev := make([]int, n)
	bits := Log2(n)

	for i := range n {
		bitrev[i] = ReverseBits(i, bits)
	}

	return bitrev
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0
	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for range bits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// ComputeDigitReversalIndices returns the mixed-radix generalisation of the
// bit-reversal permutation for the given radix sequence.
//
// perm[i] is the position input sample i occupies before the first butterfly
// level runs, i.e. the leaf ordering of a decimation-in-time recursion that
// splits by radices[0] first. For radices {2, 2, ...} this is the classic
// bit reversal; for {4, 4} it is base-4 digit reversal.
//
// Returns nil if any radix is < 2. An empty sequence yields the identity of length 1.
func ComputeDigitReversalIndices(radices []int) []int {
	n := 1
	for _, p := range radices {
		if p < 2 {
			return nil
		}

		n *= p
	}

	perm := make([]int, n)
	if len(radices) == 0 {
		return perm
	}

	fillDigitReversal(perm, radices, n, 0, 0, 1)

	return perm
}

// fillDigitReversal walks one level of the decimation: the span-length block
// starting at output position out is fed by inputs in, in+stride, in+2*stride, ...
func fillDigitReversal(perm, radices []int, span, out, in, stride int) {
	p := radices[0]
	m := span / p

	if m == 1 {
		for j := range p {
			perm[in+j*stride] = out + j
		}

		return
	}

	for j := range p {
		fillDigitReversal(perm, radices[1:], m, out+j*m, in+j*stride, stride*p)
	}
}
