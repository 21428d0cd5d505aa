// Package advent solves the first nine puzzles of Advent of Code 2017.
//
// Each (day, part) pair is a registered solution that reads its puzzle input
// from a Source and produces an Answer. Solve never panics: a missing
// solution or a failing one is reported as a string Answer.
package advent

import (
	"fmt"
	"log"
	"sort"

	"github.com/cespare/aoc2017/input"
)

const (
	notDeveloped = "Solution for year 2017, day %d, part %s has not yet been developed."
	methodFailed = "An error occured on the method called."
)

// A Source provides puzzle inputs by day.
// input.Dir and input.Memory are Sources.
type Source interface {
	Text(day int) string
	Lines(day int) []string
}

// Part is one of the two halves of a day's puzzle.
type Part int

// The two parts of every day.
const (
	Part1 Part = 1
	Part2 Part = 2
)

func (p Part) String() string {
	switch p {
	case Part1:
		return "one"
	case Part2:
		return "two"
	}
	return fmt.Sprintf("Part(%d)", int(p))
}

// A Key names a single solution.
type Key struct {
	Day  int
	Part Part
}

// String formats k the way solutions are named on the command line:
// 1a, 1b, 2a, ...
func (k Key) String() string {
	return fmt.Sprintf("%d%c", k.Day, 'a'+rune(k.Part-Part1))
}

// puzzle is the input of one day as seen by its solutions.
type puzzle struct {
	src Source
	day int
}

func (p puzzle) text() string    { return p.src.Text(p.day) }
func (p puzzle) lines() []string { return p.src.Lines(p.day) }

type solution func(puzzle) (Answer, error)

var solutions = make(map[Key]solution)

func register(day int, part Part, fn solution) {
	k := Key{Day: day, Part: part}
	if _, ok := solutions[k]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %s", k))
	}
	solutions[k] = fn
}

// Registered returns the keys of all solutions in day, then part, order.
func Registered() []Key {
	keys := make([]Key, 0, len(solutions))
	for k := range solutions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Day != keys[j].Day {
			return keys[i].Day < keys[j].Day
		}
		return keys[i].Part < keys[j].Part
	})
	return keys
}

// A Solver runs solutions against a Source.
type Solver struct {
	Source Source
	Log    *log.Logger // nil means log.Default()
}

// New returns a Solver reading inputs from src.
func New(src Source) *Solver {
	return &Solver{Source: src}
}

// Solve runs the solution for day and part using inputs from
// input.DefaultDir.
func Solve(day int, firstPart bool) Answer {
	return New(input.Dir{Path: input.DefaultDir}).Solve(day, firstPart)
}

// Solve runs the solution for day and part. If there is no such solution, or
// it fails, the returned Answer is a message saying so.
func (s *Solver) Solve(day int, firstPart bool) (ans Answer) {
	k := Key{Day: day, Part: Part2}
	if firstPart {
		k.Part = Part1
	}
	fn, ok := solutions[k]
	if !ok {
		return Str(fmt.Sprintf(notDeveloped, day, k.Part))
	}
	defer func() {
		if e := recover(); e != nil {
			s.logger().Printf("solution %s panicked: %v", k, e)
			ans = Str(methodFailed)
		}
	}()
	src := s.Source
	if src == nil {
		src = input.Dir{Path: input.DefaultDir}
	}
	ans, err := fn(puzzle{src: src, day: day})
	if err != nil {
		s.logger().Printf("solution %s: %s", k, err)
		return Str(methodFailed)
	}
	return ans
}

func (s *Solver) logger() *log.Logger {
	if s.Log != nil {
		return s.Log
	}
	return log.Default()
}
