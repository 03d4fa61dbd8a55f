package fft

import (
	"math"

	"github.com/cwbudde/algo-mixfft/internal/fftypes"
	m "github.com/cwbudde/algo-mixfft/internal/math"
)

// MixedRadix holds the immutable tables of a mixed-radix decimation-in-time
// transform for one length and direction. A MixedRadix is safe for
// concurrent use as long as every call brings its own dst and scratch.
type MixedRadix[T Complex] struct {
	n       int
	dir     Direction
	radices []int
	spans   []int // sub-transform length m per level
	strides []int // twiddle stride per level, also the block count
	perm    []int // input index -> position before the first level
	twiddle []T

	rot3       T
	rot4       T
	radix5     radix5Constants[T]
	scratchLen int
}

// NewMixedRadix builds the factor plan, permutation and twiddle table for
// length n. KernelDirect uses one generic stage of radix n; every other
// strategy uses Factorize. Returns nil if n < 1.
func NewMixedRadix[T Complex](n int, dir Direction, strategy fftypes.KernelStrategy) *MixedRadix[T] {
	if n < 1 {
		return nil
	}

	radices := m.Factorize(n)
	if strategy == fftypes.KernelDirect && n > 1 {
		radices = []int{n}
	}

	strides := make([]int, len(radices))
	stride := 1
	scratchLen := 0

	for i, p := range radices {
		strides[i] = stride
		stride *= p

		if p > 5 && p > scratchLen {
			scratchLen = p
		}
	}

	s := sign(dir)

	plan := &MixedRadix[T]{
		n:          n,
		dir:        dir,
		radices:    radices,
		spans:      m.Spans(radices),
		strides:    strides,
		perm:       m.ComputeDigitReversalIndices(radices),
		twiddle:    ComputeTwiddleFactors[T](n, dir),
		rot3:       complexFromFloat64[T](0, s*math.Sin(m.TwoPi/3)),
		rot4:       complexFromFloat64[T](0, s),
		scratchLen: scratchLen,
	}

	// W_5 and W_5² in float64 rather than read back from the narrowed table.
	plan.radix5 = radix5Constants[T]{
		aRe: complexFromFloat64[T](math.Cos(m.TwoPi/5), 0),
		bRe: complexFromFloat64[T](math.Cos(2*m.TwoPi/5), 0),
		aIm: complexFromFloat64[T](0, -s*math.Sin(m.TwoPi/5)),
		bIm: complexFromFloat64[T](0, -s*math.Sin(2*m.TwoPi/5)),
	}

	return plan
}

// Len returns the transform length.
func (p *MixedRadix[T]) Len() int { return p.n }

// Direction returns the direction the twiddles were built for.
func (p *MixedRadix[T]) Direction() Direction { return p.dir }

// Radices returns a copy of the factor plan.
func (p *MixedRadix[T]) Radices() []int {
	out := make([]int, len(p.radices))
	copy(out, p.radices)

	return out
}

// ScratchLen is the scratch length Transform needs; zero when every radix
// has a specialised butterfly.
func (p *MixedRadix[T]) ScratchLen() int { return p.scratchLen }

// Transform computes dst = DFT(src). dst and src must both hold Len()
// samples and must not overlap; scratch must hold ScratchLen() samples.
func (p *MixedRadix[T]) Transform(dst, src, scratch []T) {
	perm := p.perm
	_ = src[p.n-1]
	_ = dst[p.n-1]

	for i, j := range perm {
		dst[j] = src[i]
	}

	p.levels(dst, scratch)
}

// TransformStrided computes the DFT of src[0], src[stride], ... into the
// contiguous dst. Callers validate that src is long enough.
func (p *MixedRadix[T]) TransformStrided(dst, src []T, stride int, scratch []T) {
	perm := p.perm
	_ = dst[p.n-1]

	for i, j := range perm {
		dst[j] = src[i*stride]
	}

	p.levels(dst, scratch)
}

// levels runs the butterfly levels from the innermost (shortest
// sub-transforms) out to the full length.
func (p *MixedRadix[T]) levels(data, scratch []T) {
	tw := p.twiddle

	for level := len(p.radices) - 1; level >= 0; level-- {
		radix := p.radices[level]
		span := p.spans[level]
		fstride := p.strides[level]
		size := radix * span

		for base := 0; base < p.n; base += size {
			block := data[base : base+size]

			switch radix {
			case 2:
				butterfly2(block, tw, fstride, span)
			case 3:
				butterfly3(block, tw, fstride, span, p.rot3)
			case 4:
				butterfly4(block, tw, fstride, span, p.rot4)
			case 5:
				butterfly5(block, tw, fstride, span, &p.radix5)
			default:
				butterflyGeneric(block, tw, fstride, span, radix, scratch)
			}
		}
	}
}
