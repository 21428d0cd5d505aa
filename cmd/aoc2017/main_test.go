package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/cespare/aoc2017/advent"
)

func TestParseRequest(t *testing.T) {
	both := []advent.Part{advent.Part1, advent.Part2}
	one := []advent.Part{advent.Part1}
	two := []advent.Part{advent.Part2}
	for _, tt := range []struct {
		args  []string
		day   int
		parts []advent.Part
	}{
		{[]string{"7"}, 7, both},
		{[]string{"7", "1"}, 7, one},
		{[]string{"7", "two"}, 7, two},
		{[]string{"7", "B"}, 7, two},
		{[]string{"7a"}, 7, one},
		{[]string{"12b"}, 12, two},
	} {
		day, parts, err := parseRequest(tt.args)
		if err != nil {
			t.Errorf("parseRequest(%q): %s", tt.args, err)
			continue
		}
		if day != tt.day {
			t.Errorf("parseRequest(%q): got day %d; want %d", tt.args, day, tt.day)
		}
		if diff := pretty.Diff(parts, tt.parts); len(diff) > 0 {
			t.Errorf("parseRequest(%q) parts:\n%s", tt.args, strings.Join(diff, "\n"))
		}
	}
	for _, args := range [][]string{
		nil,
		{"x"},
		{"a"},
		{"7", "3"},
		{"7", "1", "2"},
	} {
		if _, _, err := parseRequest(args); err == nil {
			t.Errorf("parseRequest(%q): got nil error", args)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc2017.ini")
	contents := "[inputs]\ndir = /srv/aoc/2017\n\n[repl]\nprompt = >>\nhistory = /tmp/h\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := loadConfig(path, true)
	if err != nil {
		t.Fatal(err)
	}
	want := config{
		InputDir:    "/srv/aoc/2017",
		Prompt:      ">> ",
		HistoryFile: "/tmp/h",
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("loadConfig:\n%s", strings.Join(diff, "\n"))
	}
}

func TestLoadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.ini")
	got, err := loadConfig(path, false)
	if err != nil {
		t.Fatalf("optional config: %s", err)
	}
	if diff := pretty.Diff(got, defaultConfig()); len(diff) > 0 {
		t.Errorf("missing optional config:\n%s", strings.Join(diff, "\n"))
	}
	if _, err := loadConfig(path, true); err == nil {
		t.Error("missing required config: got nil error")
	}
}
