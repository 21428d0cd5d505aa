package advent

import "strings"

func init() {
	register(9, Part1, day9a)
	register(9, Part2, day9b)
}

func day9a(p puzzle) (Answer, error) {
	score, _ := scanStream(p.text())
	return Int(score), nil
}

func day9b(p puzzle) (Answer, error) {
	_, garbage := scanStream(p.text())
	return Int(garbage), nil
}

// scanStream returns the total score of the groups in s, each group scoring
// its nesting depth, and the number of non-canceled characters inside
// garbage.
func scanStream(s string) (score, garbage int64) {
	s = strings.TrimRight(s, "\r\n")
	var depth int64
	inGarbage := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '!':
			i++ // skip the canceled character
		case inGarbage:
			if c == '>' {
				inGarbage = false
			} else {
				garbage++
			}
		case c == '{':
			depth++
		case c == '}':
			score += depth
			depth--
		case c == '<':
			inGarbage = true
		}
	}
	return score, garbage
}
