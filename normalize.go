package mixfft

import "github.com/cwbudde/algo-mixfft/internal/fft"

// Normalize scales data by 1/n in place. Apply it after an inverse transform
// of length n to complete a round trip; plans never normalize on their own.
// n < 1 leaves data unchanged.
func Normalize[T Complex](data []T, n int) {
	if n < 1 {
		return
	}

	fft.Scale(data, 1/float64(n))
}
