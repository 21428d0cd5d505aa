package advent

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(5, Part1, day5a)
	register(5, Part2, day5b)
}

func day5a(p puzzle) (Answer, error) {
	offsets, err := parseOffsets(p.lines())
	if err != nil {
		return Answer{}, err
	}
	m := trampoline{insns: offsets, adjust: incrementOffset}
	return Int(m.run()), nil
}

func day5b(p puzzle) (Answer, error) {
	offsets, err := parseOffsets(p.lines())
	if err != nil {
		return Answer{}, err
	}
	m := trampoline{insns: offsets, adjust: damp3}
	return Int(m.run()), nil
}

func parseOffsets(lines []string) ([]int64, error) {
	var offsets []int64
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad jump offset %q", line)
		}
		offsets = append(offsets, n)
	}
	return offsets, nil
}

// trampoline is a machine of relative jumps. After each jump the offset
// just used is replaced by adjust(offset).
type trampoline struct {
	insns  []int64
	pc     int64
	adjust func(int64) int64
}

func incrementOffset(off int64) int64 { return off + 1 }

func damp3(off int64) int64 {
	if off >= 3 {
		return off - 1
	}
	return off + 1
}

func (m *trampoline) inRange() bool {
	return m.pc >= 0 && m.pc < int64(len(m.insns))
}

func (m *trampoline) step() {
	off := m.insns[m.pc]
	m.insns[m.pc] = m.adjust(off)
	m.pc += off
}

// run jumps until the program counter leaves the instructions and returns
// the number of jumps taken.
func (m *trampoline) run() int64 {
	var steps int64
	for m.inRange() {
		m.step()
		steps++
	}
	return steps
}
