package advent

import (
	"strconv"
	"strings"
)

func init() {
	register(6, Part1, day6a)
	register(6, Part2, day6b)
}

func day6a(p puzzle) (Answer, error) {
	mem := parseMemory(p.text())
	if len(mem.banks) == 0 {
		return Int(-1), nil
	}
	return Int(mem.cyclesUntilRepeat()), nil
}

func day6b(p puzzle) (Answer, error) {
	mem := parseMemory(p.text())
	if len(mem.banks) == 0 {
		return Int(-1), nil
	}
	mem.cyclesUntilRepeat()
	return Int(mem.cyclesUntilRepeat()), nil
}

func parseMemory(s string) *memory {
	var mem memory
	for _, field := range strings.Fields(s) {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			continue
		}
		mem.banks = append(mem.banks, n)
	}
	return &mem
}

type memory struct {
	banks []int64
}

// String renders the banks as comma-terminated counts, e.g. "0,2,7,0,".
// Distinct states always render differently, so it serves as the key of
// states already seen.
func (m *memory) String() string {
	var sb strings.Builder
	for _, n := range m.banks {
		sb.WriteString(strconv.FormatInt(n, 10))
		sb.WriteByte(',')
	}
	return sb.String()
}

// fullest returns the index of the bank holding the most blocks; the lowest
// index wins ties.
func (m *memory) fullest() int {
	best := 0
	for i, n := range m.banks {
		if n > m.banks[best] {
			best = i
		}
	}
	return best
}

// cycle performs one redistribution: the fullest bank is emptied and its
// blocks go one each to the banks after it, wrapping around.
func (m *memory) cycle() {
	i := m.fullest()
	blocks := m.banks[i]
	m.banks[i] = 0
	for k := int64(1); k <= blocks; k++ {
		m.banks[(i+int(k))%len(m.banks)]++
	}
}

// cyclesUntilRepeat redistributes until the banks reach a state they have
// been in before, counting from the current state, and returns the number
// of cycles. The banks are left in the repeated state.
func (m *memory) cyclesUntilRepeat() int64 {
	seen := map[string]struct{}{m.String(): {}}
	for i := int64(1); ; i++ {
		m.cycle()
		s := m.String()
		if _, ok := seen[s]; ok {
			return i
		}
		seen[s] = struct{}{}
	}
}
