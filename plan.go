// Package mixfft provides reusable FFT plans for even-length complex and
// real signals.
//
// A plan factors its length once, precomputes the twiddle tables for one
// direction and then transforms any number of buffers of that length:
//
//	plan, err := mixfft.NewPlan64(360, mixfft.Forward)
//	if err != nil {
//	    return err
//	}
//	defer plan.Close()
//
//	spectrum, err := plan.Transform(signal)
//
// Neither direction is normalized. Running a Forward plan and then an Inverse
// plan of the same length scales the input by N; use Normalize to undo it.
//
// Plans are safe for concurrent use. Scratch space is drawn from a per-plan
// pool, so concurrent calls never share intermediate buffers.
package mixfft

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-mixfft/internal/cpu"
	"github.com/cwbudde/algo-mixfft/internal/fft"
)

// Plan is a complex FFT of fixed length and direction.
type Plan[T Complex] struct {
	n        int
	dir      Direction
	strategy KernelStrategy
	factors  []int
	features string

	engine    atomic.Pointer[fft.MixedRadix[T]]
	pool      sync.Pool // *[]T: n work samples followed by engine scratch
	closeOnce sync.Once
}

// NewPlan creates a complex plan for an even length n >= 2.
func NewPlan[T Complex](n int, dir Direction) (*Plan[T], error) {
	return NewPlanWithOptions[T](n, dir, PlanOptions{})
}

// NewPlan32 creates a single-precision complex plan.
func NewPlan32(n int, dir Direction) (*Plan[complex64], error) {
	return NewPlan[complex64](n, dir)
}

// NewPlan64 creates a double-precision complex plan.
func NewPlan64(n int, dir Direction) (*Plan[complex128], error) {
	return NewPlan[complex128](n, dir)
}

// NewPlanWithOptions creates a complex plan with explicit options.
//
// Returns ErrInvalidLength if n is odd or smaller than 2, ErrInvalidDirection
// for an unknown direction and ErrInvalidStrategy for an unknown strategy.
func NewPlanWithOptions[T Complex](n int, dir Direction, opts PlanOptions) (*Plan[T], error) {
	if err := validateConfig(n, dir, opts); err != nil {
		return nil, err
	}

	engine := fft.NewMixedRadix[T](n, dir, opts.Strategy)

	p := &Plan[T]{
		n:        n,
		dir:      dir,
		strategy: opts.Strategy,
		factors:  engine.Radices(),
		features: cpu.DetectFeatures().String(),
	}
	p.engine.Store(engine)

	size := n + engine.ScratchLen()
	p.pool.New = func() any {
		buf := make([]T, size)
		return &buf
	}

	return p, nil
}

// Len returns the transform length.
func (p *Plan[T]) Len() int { return p.n }

// Direction returns the plan direction.
func (p *Plan[T]) Direction() Direction { return p.dir }

// Factors returns a copy of the radix sequence.
func (p *Plan[T]) Factors() []int {
	out := make([]int, len(p.factors))
	copy(out, p.factors)

	return out
}

// Meta returns a description of the plan.
func (p *Plan[T]) Meta() PlanMeta {
	return PlanMeta{
		Len:       p.n,
		Direction: p.dir,
		Strategy:  p.strategy,
		Factors:   p.Factors(),
		Features:  p.features,
	}
}

// Close releases the plan tables. Every later transform returns
// ErrPlanClosed. Close is idempotent and always returns nil.
func (p *Plan[T]) Close() error {
	p.closeOnce.Do(func() {
		p.engine.Store(nil)
	})

	return nil
}

// Transform returns the transform of src in a newly allocated slice.
// src is not modified.
func (p *Plan[T]) Transform(src []T) ([]T, error) {
	if err := p.check(src, nil, false); err != nil {
		return nil, err
	}

	dst := make([]T, p.n)
	if err := p.TransformInto(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// TransformInto writes the transform of src into dst. Both must hold exactly
// Len() samples. dst may be the same slice as src for an in-place transform;
// other overlaps are not supported.
//
// On error dst is left untouched.
func (p *Plan[T]) TransformInto(dst, src []T) error {
	if err := p.check(src, dst, true); err != nil {
		return err
	}

	engine := p.engine.Load()
	if engine == nil {
		return errors.WithStack(ErrPlanClosed)
	}

	if &dst[0] != &src[0] && engine.ScratchLen() == 0 {
		engine.Transform(dst, src, nil)
		return nil
	}

	bufp := p.pool.Get().(*[]T)
	buf := *bufp
	work, scratch := buf[:p.n], buf[p.n:]

	if &dst[0] == &src[0] {
		engine.Transform(work, src, scratch)
		copy(dst, work)
	} else {
		engine.Transform(dst, src, scratch)
	}

	p.pool.Put(bufp)

	return nil
}

// check validates src and, when withDst is set, dst against the plan length.
func (p *Plan[T]) check(src, dst []T, withDst bool) error {
	if p.engine.Load() == nil {
		return errors.WithStack(ErrPlanClosed)
	}

	if src == nil || (withDst && dst == nil) {
		return errors.WithStack(ErrNilSlice)
	}

	if len(src) != p.n {
		return lengthMismatch("src", len(src), p.n)
	}

	if withDst && len(dst) != p.n {
		return lengthMismatch("dst", len(dst), p.n)
	}

	return nil
}
