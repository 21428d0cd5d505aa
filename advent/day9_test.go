package advent

import "testing"

func TestStreamScore(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want int64
	}{
		{"{}", 1},
		{"{{{}}}", 6},
		{"{{},{}}", 5},
		{"{{{},{},{{}}}}", 16},
		{"{<a>,<a>,<a>,<a>}", 1},
		{"{{<ab>},{<ab>},{<ab>},{<ab>}}", 9},
		{"{{<!!>},{<!!>},{<!!>},{<!!>}}", 9},
		{"{{<a!>},{<a!>},{<a!>},{<ab>}}\n", 3},
		{"{!{}}", 1},
		{"{{}!}}", 3},
		{"!<{}", 1},
	} {
		wantInt(t, 9, Part1, tt.in, tt.want)
	}
}

func TestStreamGarbage(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want int64
	}{
		{"<>", 0},
		{"<random characters>", 17},
		{"<<<<>", 3},
		{"<{!>}>", 2},
		{"<!!>", 0},
		{"<!!!>>", 0},
		{`<{o"i!a,<{i<a>`, 10},
		{"<random characters>\n", 17},
		{"!<ab>", 0},
	} {
		wantInt(t, 9, Part2, tt.in, tt.want)
	}
}
