package advent

import "strconv"

// An Answer is the result of a solution: either an integer or a string.
type Answer struct {
	n     int64
	s     string
	isStr bool
}

// Int returns an integer Answer.
func Int(n int64) Answer { return Answer{n: n} }

// Str returns a string Answer.
func Str(s string) Answer { return Answer{s: s, isStr: true} }

// Int returns the integer value of a, if a holds an integer.
func (a Answer) Int() (int64, bool) {
	return a.n, !a.isStr
}

// IsString reports whether a holds a string.
func (a Answer) IsString() bool { return a.isStr }

func (a Answer) String() string {
	if a.isStr {
		return a.s
	}
	return strconv.FormatInt(a.n, 10)
}
