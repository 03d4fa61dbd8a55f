package mixfft

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-mixfft/internal/cpu"
	"github.com/cwbudde/algo-mixfft/internal/fft"
)

// Real plans pack x[2k] + i·x[2k+1] into a half-length complex sequence, run
// one complex transform of length N/2 and recombine the result into the
// N/2+1 bins from DC to Nyquist.

// realTables holds the tables Close releases.
type realTables[C Complex] struct {
	engine  *fft.MixedRadix[C] // length N/2, same direction as the plan
	twiddle []C                // recombination twiddles
}

// realCore is the precision-independent part of RealPlan32 and RealPlan64.
type realCore[C Complex] struct {
	n        int
	half     int
	dir      Direction
	strategy KernelStrategy
	factors  []int
	features string

	tables    atomic.Pointer[realTables[C]]
	pool      sync.Pool // *[]C: packed, spectrum, engine scratch
	closeOnce sync.Once
}

func newRealCore[C Complex](n int, dir Direction, opts PlanOptions) (*realCore[C], error) {
	if err := validateConfig(n, dir, opts); err != nil {
		return nil, err
	}

	half := n / 2
	engine := fft.NewMixedRadix[C](half, dir, opts.Strategy)

	c := &realCore[C]{
		n:        n,
		half:     half,
		dir:      dir,
		strategy: opts.Strategy,
		factors:  engine.Radices(),
		features: cpu.DetectFeatures().String(),
	}
	c.tables.Store(&realTables[C]{
		engine:  engine,
		twiddle: fft.ComputeRealTwiddles[C](n, dir),
	})

	size := 2*half + engine.ScratchLen()
	c.pool.New = func() any {
		buf := make([]C, size)
		return &buf
	}

	return c, nil
}

// validate checks a call before anything is written and returns the live tables.
func (c *realCore[C]) validate(nilArg bool, srcLen, srcWant, dstLen, dstWant int) (*realTables[C], error) {
	t := c.tables.Load()
	if t == nil {
		return nil, errors.WithStack(ErrPlanClosed)
	}

	if nilArg {
		return nil, errors.WithStack(ErrNilSlice)
	}

	if srcLen != srcWant {
		return nil, lengthMismatch("src", srcLen, srcWant)
	}

	if dstLen != dstWant {
		return nil, lengthMismatch("dst", dstLen, dstWant)
	}

	return t, nil
}

// buffers takes a pooled buffer and splits it. Return bufp with release.
func (c *realCore[C]) buffers() (bufp *[]C, packed, spectrum, scratch []C) {
	bufp = c.pool.Get().(*[]C)
	buf := *bufp

	return bufp, buf[:c.half], buf[c.half : 2*c.half], buf[2*c.half:]
}

func (c *realCore[C]) release(bufp *[]C) {
	c.pool.Put(bufp)
}

// forward transforms the packed samples and recombines them into dst.
func (c *realCore[C]) forward(t *realTables[C], dst, packed, spectrum, scratch []C) {
	t.engine.Transform(spectrum, packed, scratch)
	fft.RecombineReal(dst, spectrum, t.twiddle)
}

// inverse leaves conj(N·(x[2k] + i·x[2k+1])) in out.
func (c *realCore[C]) inverse(t *realTables[C], out, bins, packed, scratch []C) {
	fft.RepackInverse(packed, bins, t.twiddle)
	fft.ConjugateInPlace(packed)
	t.engine.Transform(out, packed, scratch)
}

func (c *realCore[C]) meta() PlanMeta {
	factors := make([]int, len(c.factors))
	copy(factors, c.factors)

	return PlanMeta{
		Len:       c.n,
		Direction: c.dir,
		Strategy:  c.strategy,
		Factors:   factors,
		Real:      true,
		Features:  c.features,
	}
}

func (c *realCore[C]) close() {
	c.closeOnce.Do(func() {
		c.tables.Store(nil)
	})
}

// RealPlan32 transforms float32 signals into complex64 half-spectra.
type RealPlan32 struct {
	core *realCore[complex64]
}

// NewRealPlan32 creates a real plan for an even length n >= 2.
func NewRealPlan32(n int, dir Direction) (*RealPlan32, error) {
	return NewRealPlan32WithOptions(n, dir, PlanOptions{})
}

// NewRealPlan32WithOptions creates a real plan with explicit options.
func NewRealPlan32WithOptions(n int, dir Direction, opts PlanOptions) (*RealPlan32, error) {
	core, err := newRealCore[complex64](n, dir, opts)
	if err != nil {
		return nil, err
	}

	return &RealPlan32{core: core}, nil
}

// Len returns the number of real samples.
func (p *RealPlan32) Len() int { return p.core.n }

// SpectrumLen returns the number of complex frequency bins (N/2+1).
func (p *RealPlan32) SpectrumLen() int { return p.core.half + 1 }

// Direction returns the plan direction.
func (p *RealPlan32) Direction() Direction { return p.core.dir }

// Meta returns a description of the plan.
func (p *RealPlan32) Meta() PlanMeta { return p.core.meta() }

// Close releases the plan tables. Close is idempotent and always returns nil.
func (p *RealPlan32) Close() error {
	p.core.close()
	return nil
}

// Transform returns bins 0..N/2 of the transform of src.
func (p *RealPlan32) Transform(src []float32) ([]complex64, error) {
	dst := make([]complex64, p.SpectrumLen())
	if err := p.TransformInto(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// TransformInto writes bins 0..N/2 of the transform of src into dst.
// src must hold Len() samples and dst SpectrumLen() bins. The imaginary parts
// of dst[0] and dst[N/2] are exactly zero.
func (p *RealPlan32) TransformInto(dst []complex64, src []float32) error {
	c := p.core

	t, err := c.validate(src == nil || dst == nil, len(src), c.n, len(dst), c.half+1)
	if err != nil {
		return err
	}

	bufp, packed, spectrum, scratch := c.buffers()
	for k := range packed {
		packed[k] = complex(src[2*k], src[2*k+1])
	}

	c.forward(t, dst, packed, spectrum, scratch)
	c.release(bufp)

	return nil
}

// Reconstruct returns the N real samples whose transform under this plan is
// spectrum, scaled by N. The imaginary parts of spectrum[0] and
// spectrum[N/2] are ignored.
func (p *RealPlan32) Reconstruct(spectrum []complex64) ([]float32, error) {
	dst := make([]float32, p.Len())
	if err := p.ReconstructInto(dst, spectrum); err != nil {
		return nil, err
	}

	return dst, nil
}

// ReconstructInto is Reconstruct writing into dst, which must hold Len() samples.
func (p *RealPlan32) ReconstructInto(dst []float32, spectrum []complex64) error {
	c := p.core

	t, err := c.validate(spectrum == nil || dst == nil, len(spectrum), c.half+1, len(dst), c.n)
	if err != nil {
		return err
	}

	bufp, packed, out, scratch := c.buffers()
	c.inverse(t, out, spectrum, packed, scratch)

	for k, v := range out {
		dst[2*k] = real(v)
		dst[2*k+1] = -imag(v)
	}

	c.release(bufp)

	return nil
}

// RealPlan64 transforms float64 signals into complex128 half-spectra.
type RealPlan64 struct {
	core *realCore[complex128]
}

// NewRealPlan64 creates a real plan for an even length n >= 2.
func NewRealPlan64(n int, dir Direction) (*RealPlan64, error) {
	return NewRealPlan64WithOptions(n, dir, PlanOptions{})
}

// NewRealPlan64WithOptions creates a real plan with explicit options.
func NewRealPlan64WithOptions(n int, dir Direction, opts PlanOptions) (*RealPlan64, error) {
	core, err := newRealCore[complex128](n, dir, opts)
	if err != nil {
		return nil, err
	}

	return &RealPlan64{core: core}, nil
}

// Len returns the number of real samples.
func (p *RealPlan64) Len() int { return p.core.n }

// SpectrumLen returns the number of complex frequency bins (N/2+1).
func (p *RealPlan64) SpectrumLen() int { return p.core.half + 1 }

// Direction returns the plan direction.
func (p *RealPlan64) Direction() Direction { return p.core.dir }

// Meta returns a description of the plan.
func (p *RealPlan64) Meta() PlanMeta { return p.core.meta() }

// Close releases the plan tables. Close is idempotent and always returns nil.
func (p *RealPlan64) Close() error {
	p.core.close()
	return nil
}

// Transform returns bins 0..N/2 of the transform of src.
func (p *RealPlan64) Transform(src []float64) ([]complex128, error) {
	dst := make([]complex128, p.SpectrumLen())
	if err := p.TransformInto(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// TransformInto writes bins 0..N/2 of the transform of src into dst.
func (p *RealPlan64) TransformInto(dst []complex128, src []float64) error {
	c := p.core

	t, err := c.validate(src == nil || dst == nil, len(src), c.n, len(dst), c.half+1)
	if err != nil {
		return err
	}

	bufp, packed, spectrum, scratch := c.buffers()
	for k := range packed {
		packed[k] = complex(src[2*k], src[2*k+1])
	}

	c.forward(t, dst, packed, spectrum, scratch)
	c.release(bufp)

	return nil
}

// Reconstruct returns the N real samples whose transform under this plan is
// spectrum, scaled by N.
func (p *RealPlan64) Reconstruct(spectrum []complex128) ([]float64, error) {
	dst := make([]float64, p.Len())
	if err := p.ReconstructInto(dst, spectrum); err != nil {
		return nil, err
	}

	return dst, nil
}

// ReconstructInto is Reconstruct writing into dst.
func (p *RealPlan64) ReconstructInto(dst []float64, spectrum []complex128) error {
	c := p.core

	t, err := c.validate(spectrum == nil || dst == nil, len(spectrum), c.half+1, len(dst), c.n)
	if err != nil {
		return err
	}

	bufp, packed, out, scratch := c.buffers()
	c.inverse(t, out, spectrum, packed, scratch)

	for k, v := range out {
		dst[2*k] = real(v)
		dst[2*k+1] = -imag(v)
	}

	c.release(bufp)

	return nil
}
