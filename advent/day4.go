package advent

import (
	"sort"
	"strings"
)

func init() {
	register(4, Part1, day4a)
	register(4, Part2, day4b)
}

func day4a(p puzzle) (Answer, error) {
	return Int(countValid(p.lines(), func(w string) string { return w })), nil
}

func day4b(p puzzle) (Answer, error) {
	return Int(countValid(p.lines(), sortLetters)), nil
}

// countValid counts the non-empty lines in which no two words have the same
// canonical form.
func countValid(lines []string, canon func(string) string) int64 {
	var numValid int64
lineLoop:
	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		seen := make(map[string]struct{})
		for _, word := range words {
			w := canon(word)
			if _, ok := seen[w]; ok {
				continue lineLoop
			}
			seen[w] = struct{}{}
		}
		numValid++
	}
	return numValid
}

func sortLetters(word string) string {
	sorted := []rune(word)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return string(sorted)
}
