package fft

// Scale multiplies each element in dst by factor.
func Scale[T Complex](dst []T, factor float64) {
	if factor == 1 {
		return
	}

	f := complexFromFloat64[T](factor, 0)
	for i := range dst {
		dst[i] *= f
	}
}
