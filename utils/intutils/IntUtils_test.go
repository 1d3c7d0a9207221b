package intutils

import "testing"

func TestMinMax(t *testing.T) {
	tests := []struct {
		ints     []int
		min, max int
	}{
		{[]int{3}, 3, 3},
		{[]int{3, 1, 2}, 1, 3},
		{[]int{-5, 7, 7, -5}, -5, 7},
	}

	for _, test := range tests {
		if got := Min(test.ints...); got != test.min {
			t.Errorf("Min(%v) = %d, want %d", test.ints, got, test.min)
		}
		if got := Max(test.ints...); got != test.max {
			t.Errorf("Max(%v) = %d, want %d", test.ints, got, test.max)
		}
	}
}

func TestClip(t *testing.T) {
	if got := Clip(12, 0, 10); got != 10 {
		t.Errorf("Clip(12, 0, 10) = %d", got)
	}
	if got := Clip(-1, 0, 10); got != 0 {
		t.Errorf("Clip(-1, 0, 10) = %d", got)
	}
	if got := Clip(4, 0, 10); got != 4 {
		t.Errorf("Clip(4, 0, 10) = %d", got)
	}
}
