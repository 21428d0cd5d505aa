package advent

import "testing"

func TestSpiralDistance(t *testing.T) {
	for _, tt := range []struct {
		n    int64
		want int64
	}{
		{1, 0},
		{2, 1},
		{9, 2},
		{10, 3},
		{12, 3},
		{23, 2},
		{25, 4},
		{26, 5},
		{1024, 31},
	} {
		if got := spiralDistance(tt.n); got != tt.want {
			t.Errorf("spiralDistance(%d): got %d; want %d", tt.n, got, tt.want)
		}
	}
}

func TestSpiralStress(t *testing.T) {
	for _, tt := range []struct {
		n    int64
		want int64
	}{
		{1, 1},
		{2, 2},
		{5, 5},
		{6, 10},
		{24, 25},
		{26, 26},
		{800, 806},
	} {
		if got := spiralStress(tt.n); got != tt.want {
			t.Errorf("spiralStress(%d): got %d; want %d", tt.n, got, tt.want)
		}
	}
}

func TestSpiralFirstRings(t *testing.T) {
	// Values in the order they are written.
	want := []int64{1, 1, 2, 4, 5, 10, 11, 23, 25, 26, 54, 57, 59, 122, 133, 142, 147, 304, 330, 351, 362, 747, 806}
	sp := newSpiral()
	got := []int64{1}
	for len(got) < len(want) {
		sp.grow()
		for _, c := range sp.outerRing() {
			v := sp.neighborSum(c)
			sp.set(c, v)
			got = append(got, v)
		}
	}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("square %d: got %d; want %d", i+1, got[i], w)
		}
	}
}

func TestDay3(t *testing.T) {
	wantInt(t, 3, Part1, "1024\n", 31)
	wantInt(t, 3, Part2, "800\n", 806)
	if got := solveText(t, 3, Part1, "twelve").String(); got != methodFailed {
		t.Errorf("got %q; want %q", got, methodFailed)
	}
}

func TestSpiralDistanceNonNegative(t *testing.T) {
	for n := int64(2); n < 2000; n++ {
		if d := spiralDistance(n); d < 1 {
			t.Fatalf("spiralDistance(%d) = %d; want >= 1", n, d)
		}
	}
}
