package mixfft

import "github.com/pkg/errors"

// TransformStrided transforms the elements src[0], src[stride], ... and
// writes the result to dst[0], dst[stride], ... Elements between the strided
// positions are left untouched. For example, stride=numCols transforms a
// matrix column in row-major storage. dst may be the same slice as src.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrInvalidStride if stride < 1 or overflows index computation.
// Returns ErrLengthMismatch if slices are too short for the given stride.
func (p *Plan[T]) TransformStrided(dst, src []T, stride int) error {
	err := p.validateStridedSlices(dst, src, stride)
	if err != nil {
		return err
	}

	engine := p.engine.Load()
	if engine == nil {
		return errors.WithStack(ErrPlanClosed)
	}

	if stride == 1 {
		return p.TransformInto(dst[:p.n], src[:p.n])
	}

	bufp := p.pool.Get().(*[]T)
	buf := *bufp
	work, scratch := buf[:p.n], buf[p.n:]

	engine.TransformStrided(work, src, stride, scratch)

	for i, v := range work {
		dst[i*stride] = v
	}

	p.pool.Put(bufp)

	return nil
}

func (p *Plan[T]) validateStridedSlices(dst, src []T, stride int) error {
	if p.engine.Load() == nil {
		return errors.WithStack(ErrPlanClosed)
	}

	if dst == nil || src == nil {
		return errors.WithStack(ErrNilSlice)
	}

	if stride < 1 {
		return errors.Wrapf(ErrInvalidStride, "stride=%d", stride)
	}

	if stride == 1 {
		if len(dst) < p.n || len(src) < p.n {
			return errors.Wrapf(ErrLengthMismatch, "dst=%d src=%d, want at least %d", len(dst), len(src), p.n)
		}

		return nil
	}

	maxInt := int(^uint(0) >> 1)
	maxIndex := p.n - 1
	if maxIndex > (maxInt-1)/stride {
		return errors.Wrapf(ErrInvalidStride, "stride=%d overflows for n=%d", stride, p.n)
	}

	required := 1 + maxIndex*stride
	if len(dst) < required || len(src) < required {
		return errors.Wrapf(ErrLengthMismatch, "dst=%d src=%d, want at least %d for stride %d",
			len(dst), len(src), required, stride)
	}

	return nil
}
