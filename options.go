package mixfft

import (
	"fmt"

	"github.com/cwbudde/algo-mixfft/internal/fftypes"
)

// KernelStrategy selects how a plan factors its working length.
type KernelStrategy = fftypes.KernelStrategy

const (
	// KernelAuto lets the planner choose. It currently behaves like KernelMixedRadix.
	KernelAuto = fftypes.KernelAuto
	// KernelMixedRadix factors the length into radix 4, 2, 3, 5 and then any
	// remaining primes.
	KernelMixedRadix = fftypes.KernelMixedRadix
	// KernelDirect runs one generic stage of radix N: an O(N²) DFT through the
	// same twiddle table. Useful as a baseline.
	KernelDirect = fftypes.KernelDirect
)

// PlanOptions configures plan construction. The zero value selects the defaults.
type PlanOptions struct {
	Strategy KernelStrategy
}

// PlanMeta describes a constructed plan.
type PlanMeta struct {
	Len       int            // transform length (real samples for real plans)
	Direction Direction      // twiddle sign
	Strategy  KernelStrategy // requested strategy
	Factors   []int          // radix sequence of the complex engine
	Real      bool           // real-input plan with a half-length engine
	Features  string         // detected CPU features
}

func (m PlanMeta) String() string {
	kind := "complex"
	if m.Real {
		kind = "real"
	}

	return fmt.Sprintf("%s n=%d %s strategy=%s factors=%v cpu=%q",
		kind, m.Len, m.Direction, m.Strategy, m.Factors, m.Features)
}
