package fftypes

// KernelStrategy controls how a plan factors its length into butterfly stages.
type KernelStrategy uint32

const (
	KernelAuto       KernelStrategy = iota
	KernelMixedRadix                // Radix 4, 2, 3, 5, then remaining primes
	KernelDirect                    // One generic stage of radix n (O(n²) DFT)
)

// Valid reports whether s is a known strategy.
func (s KernelStrategy) Valid() bool {
	return s <= KernelDirect
}

// String returns a human-readable name for the strategy.
func (s KernelStrategy) String() string {
	switch s {
	case KernelAuto:
		return "auto"
	case KernelMixedRadix:
		return "mixed-radix"
	case KernelDirect:
		return "direct"
	default:
		return "unknown"
	}
}
