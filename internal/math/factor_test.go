package math

import (
	"fmt"
	"testing"
)

func TestFactorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n      int
		expect []int
	}{
		{0, nil},
		{-4, nil},
		{1, []int{}},
		{2, []int{2}},
		{4, []int{4}},
		{6, []int{2, 3}},
		{8, []int{4, 2}},
		{12, []int{4, 3}},
		{14, []int{2, 7}},
		{16, []int{4, 4}},
		{30, []int{2, 3, 5}},
		{32, []int{4, 4, 2}},
		{50, []int{2, 5, 5}},
		{60, []int{4, 3, 5}},
		{98, []int{2, 7, 7}},
		{1000, []int{4, 2, 5, 5, 5}},
		{2 * 101, []int{2, 101}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			t.Parallel()

			got := Factorize(tt.n)
			if (got == nil) != (tt.expect == nil) || !slicesEqual(got, tt.expect) {
				t.Errorf("Factorize(%d) = %v, want %v", tt.n, got, tt.expect)
			}
		})
	}
}

func TestFactorizeProduct(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 2048; n++ {
		product := 1
		for _, p := range Factorize(n) {
			if p < 2 {
				t.Fatalf("Factorize(%d) contains radix %d", n, p)
			}

			product *= p
		}

		if product != n {
			t.Fatalf("product of Factorize(%d) = %d", n, product)
		}
	}
}

func TestSpans(t *testing.T) {
	t.Parallel()

	got := Spans([]int{4, 3, 5})
	want := []int{15, 5, 1}

	if !slicesEqual(got, want) {
		t.Errorf("Spans([4 3 5]) = %v, want %v", got, want)
	}

	if got := Spans(nil); len(got) != 0 {
		t.Errorf("Spans(nil) = %v, want empty", got)
	}
}

func TestIsFastSize(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 4, 5, 6, 8, 10, 12, 15, 30, 480, 1000} {
		if !IsFastSize(n) {
			t.Errorf("IsFastSize(%d) = false, want true", n)
		}
	}

	for _, n := range []int{0, -6, 7, 14, 22, 26, 202} {
		if IsFastSize(n) {
			t.Errorf("IsFastSize(%d) = true, want false", n)
		}
	}
}
