package fft

// Butterflies operate in place on one block of radix*m samples laid out as
// radix interleaved sub-transforms of length m: sample q of output u sits at
// block[u+q*m]. fstride is the twiddle step between consecutive u, so the
// twiddle for sub-transform q at position u is twiddle[q*u*fstride].
//
// Constant rotations (±i, i·sin(2π/3), the radix-5 roots) are passed in as
// complex factors so the same code serves both directions and both precisions.

// butterfly2 combines two length-m sub-transforms.
func butterfly2[T Complex](block, twiddle []T, fstride, m int) {
	lo := block[:m]
	hi := block[m : 2*m]

	for u := range m {
		t := hi[u] * twiddle[u*fstride]
		hi[u] = lo[u] - t
		lo[u] += t
	}
}

// butterfly3 combines three length-m sub-transforms.
// rot is i·Im(W_3), i.e. ∓i·sin(2π/3) for forward/inverse.
func butterfly3[T Complex](block, twiddle []T, fstride, m int, rot T) {
	m2 := 2 * m
	_ = block[3*m-1]

	for u := range m {
		s1 := block[u+m] * twiddle[u*fstride]
		s2 := block[u+m2] * twiddle[2*u*fstride]

		s3 := s1 + s2
		s0 := (s1 - s2) * rot

		f := block[u] - s3*0.5
		block[u] += s3
		block[u+m2] = f - s0
		block[u+m] = f + s0
	}
}

// butterfly4 combines four length-m sub-transforms.
// rot is -i for Forward and +i for Inverse.
func butterfly4[T Complex](block, twiddle []T, fstride, m int, rot T) {
	m2 := 2 * m
	m3 := 3 * m
	_ = block[4*m-1]

	for u := range m {
		s0 := block[u+m] * twiddle[u*fstride]
		s1 := block[u+m2] * twiddle[2*u*fstride]
		s2 := block[u+m3] * twiddle[3*u*fstride]

		s5 := block[u] - s1
		a := block[u] + s1
		s3 := s0 + s2
		s4 := (s0 - s2) * rot

		block[u+m2] = a - s3
		block[u] = a + s3
		block[u+m] = s5 + s4
		block[u+m3] = s5 - s4
	}
}

// radix5Constants holds W_5 and W_5² split the way butterfly5 consumes them.
type radix5Constants[T Complex] struct {
	aRe T // Re(W_5) as a complex scalar
	bRe T // Re(W_5²)
	aIm T // -i·Im(W_5)
	bIm T // -i·Im(W_5²)
}

// butterfly5 combines five length-m sub-transforms.
func butterfly5[T Complex](block, twiddle []T, fstride, m int, c *radix5Constants[T]) {
	_ = block[5*m-1]

	for u := range m {
		i0, i1, i2, i3, i4 := u, u+m, u+2*m, u+3*m, u+4*m

		s0 := block[i0]
		s1 := block[i1] * twiddle[u*fstride]
		s2 := block[i2] * twiddle[2*u*fstride]
		s3 := block[i3] * twiddle[3*u*fstride]
		s4 := block[i4] * twiddle[4*u*fstride]

		s7 := s1 + s4
		s10 := s1 - s4
		s8 := s2 + s3
		s9 := s2 - s3

		block[i0] = s0 + s7 + s8

		s5 := s0 + s7*c.aRe + s8*c.bRe
		s6 := s10*c.aIm + s9*c.bIm
		block[i1] = s5 - s6
		block[i4] = s5 + s6

		s11 := s0 + s7*c.bRe + s8*c.aRe
		s12 := s9*c.aIm - s10*c.bIm
		block[i2] = s11 + s12
		block[i3] = s11 - s12
	}
}

// butterflyGeneric combines radix length-m sub-transforms with a direct
// radix-point DFT. scratch must hold at least radix samples.
func butterflyGeneric[T Complex](block, twiddle []T, fstride, m, radix int, scratch []T) {
	n := len(twiddle)
	scratch = scratch[:radix]

	for u := range m {
		for q := range radix {
			scratch[q] = block[u+q*m]
		}

		for q1 := range radix {
			k := u + q1*m
			acc := scratch[0]
			tw := 0

			for q := 1; q < radix; q++ {
				// fstride*k < n, so one wrap keeps tw in range.
				tw += fstride * k
				if tw >= n {
					tw -= n
				}

				acc += scratch[q] * twiddle[tw]
			}

			block[k] = acc
		}
	}
}
