package advent

import (
	"strconv"
	"strings"
)

func init() {
	register(8, Part1, day8a)
	register(8, Part2, day8b)
}

func day8a(p puzzle) (Answer, error) {
	return Int(execute(p.lines()).largest()), nil
}

func day8b(p puzzle) (Answer, error) {
	return Int(execute(p.lines()).peak), nil
}

// execute runs each well-formed line of a register program in order.
// Lines that do not parse are ignored.
func execute(lines []string) *registers {
	r := &registers{vals: make(map[string]int64)}
	for _, line := range lines {
		if op, ok := parseRegOp(line); ok {
			r.apply(op)
		}
	}
	return r
}

var comparisons = map[string]func(a, b int64) bool{
	"==": func(a, b int64) bool { return a == b },
	"!=": func(a, b int64) bool { return a != b },
	"<":  func(a, b int64) bool { return a < b },
	"<=": func(a, b int64) bool { return a <= b },
	">":  func(a, b int64) bool { return a > b },
	">=": func(a, b int64) bool { return a >= b },
}

// regOp adds delta to target when guard(vals[subject], limit) holds.
type regOp struct {
	target  string
	delta   int64
	subject string
	guard   func(a, b int64) bool
	limit   int64
}

// parseRegOp parses a line such as
//
//	b inc 5 if a > 1
//
// and reports false for anything else, including unknown comparisons.
func parseRegOp(line string) (regOp, bool) {
	f := strings.Fields(line)
	if len(f) != 7 || f[3] != "if" {
		return regOp{}, false
	}
	delta, err := strconv.ParseInt(f[2], 10, 64)
	if err != nil {
		return regOp{}, false
	}
	switch f[1] {
	case "inc":
	case "dec":
		delta = -delta
	default:
		return regOp{}, false
	}
	guard, ok := comparisons[f[5]]
	if !ok {
		return regOp{}, false
	}
	limit, err := strconv.ParseInt(f[6], 10, 64)
	if err != nil {
		return regOp{}, false
	}
	return regOp{target: f[0], delta: delta, subject: f[4], guard: guard, limit: limit}, true
}

// registers holds every register named so far; a register exists at 0 from
// the first instruction that mentions it, whether or not that instruction's
// guard holds. peak is the highest value written by an update, starting at 0.
type registers struct {
	vals map[string]int64
	peak int64
}

func (r *registers) get(name string) int64 {
	v, ok := r.vals[name]
	if !ok {
		r.vals[name] = 0
	}
	return v
}

func (r *registers) apply(op regOp) {
	cur := r.get(op.target)
	if !op.guard(r.get(op.subject), op.limit) {
		return
	}
	v := cur + op.delta
	r.vals[op.target] = v
	r.peak = max(r.peak, v)
}

// largest returns the largest value now in any register,
// or 0 if no register has been mentioned.
func (r *registers) largest() int64 {
	var largest int64
	first := true
	for _, v := range r.vals {
		if first || v > largest {
			largest, first = v, false
		}
	}
	return largest
}
