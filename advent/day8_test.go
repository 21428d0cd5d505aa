package advent

import (
	"strings"
	"testing"
)

const sampleRegisters = `b inc 5 if a > 1
a inc 1 if b < 5
c dec -10 if a >= 1
c inc -20 if c == 10
`

func TestDay8(t *testing.T) {
	wantInt(t, 8, Part1, sampleRegisters, 1)
	wantInt(t, 8, Part2, sampleRegisters, 10)
}

func TestDay8SkipsMalformed(t *testing.T) {
	in := "garbage\nb inc 5 if a > 1\nb mul 2 if a == 0\na inc x if b < 5\nz inc 1 if a ~ 0\n" + sampleRegisters
	wantInt(t, 8, Part1, in, 1)
	wantInt(t, 8, Part2, in, 10)
	if _, ok := execute([]string{"z inc 1 if a ~ 0"}).vals["z"]; ok {
		t.Error("malformed line created register z")
	}
}

func TestUnchangedTargetExists(t *testing.T) {
	// c is named by an instruction whose guard fails; it still holds 0.
	const in = "a dec 5 if a == 0\nc inc 1 if a > 100\n"
	wantInt(t, 8, Part1, in, 0)
	r := execute(strings.Split(in, "\n"))
	if v, ok := r.vals["c"]; !ok || v != 0 {
		t.Errorf("register c: got %d, %t; want 0, true", v, ok)
	}
}

func TestComparisons(t *testing.T) {
	for _, tt := range []struct {
		op   string
		want int64
	}{
		{"==", 1},
		{"!=", 0},
		{"<", 0},
		{"<=", 1},
		{">", 0},
		{">=", 1},
	} {
		r := execute([]string{"x inc 1 if y " + tt.op + " 0"})
		if got := r.vals["x"]; got != tt.want {
			t.Errorf("x inc 1 if y %s 0: got x=%d; want %d", tt.op, got, tt.want)
		}
		if _, ok := r.vals["y"]; !ok {
			t.Errorf("guard register y was not created")
		}
	}
}

func TestPeak(t *testing.T) {
	lines := strings.Split(sampleRegisters, "\n")
	for i := range lines {
		r := execute(lines[:i+1])
		if r.peak < r.largest() {
			t.Errorf("after %d lines: peak %d is below current largest %d", i+1, r.peak, r.largest())
		}
	}
	// All values negative: the peak stays at its starting 0.
	r := execute([]string{"a dec 3 if b == 0", "b dec 1 if a < 0"})
	if r.peak != 0 {
		t.Errorf("peak: got %d; want 0", r.peak)
	}
	if got := r.largest(); got != -1 {
		t.Errorf("largest: got %d; want -1", got)
	}
}
