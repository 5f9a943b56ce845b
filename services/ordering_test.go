package services

import "testing"

func TestNextOrderEmptyScope(t *testing.T) {
	if got := nextOrder(nil); got != 0 {
		t.Errorf("nextOrder(nil) = %d, want 0", got)
	}
}

func TestNextOrderAppendsAfterMax(t *testing.T) {
	cases := []struct {
		max  int
		want int
	}{
		{0, 1},
		{1, 2},
		{41, 42},
		{-3, -2},
	}
	for _, tc := range cases {
		max := tc.max
		if got := nextOrder(&max); got != tc.want {
			t.Errorf("nextOrder(%d) = %d, want %d", tc.max, got, tc.want)
		}
	}
}
