package advent

import (
	"fmt"
	"strings"
)

func init() {
	register(1, Part1, day1a)
	register(1, Part2, day1b)
}

func day1a(p puzzle) (Answer, error) {
	digits, err := parseDigits(p.text())
	if err != nil {
		return Answer{}, err
	}
	return Int(captchaNext(digits)), nil
}

func day1b(p puzzle) (Answer, error) {
	digits, err := parseDigits(p.text())
	if err != nil {
		return Answer{}, err
	}
	return Int(captchaHalfway(digits)), nil
}

func parseDigits(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	digits := make([]int64, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("input contained non-digit %q", c)
		}
		digits[i] = int64(c - '0')
	}
	return digits, nil
}

// captchaNext sums the digits that match the next digit in the circular
// sequence.
func captchaNext(digits []int64) int64 {
	if len(digits) == 0 {
		return 0
	}
	var sum int64
	for i := 1; i < len(digits); i++ {
		if digits[i] == digits[i-1] {
			sum += digits[i]
		}
	}
	if digits[0] == digits[len(digits)-1] {
		sum += digits[0]
	}
	return sum
}

// captchaHalfway sums the digits that match the digit halfway around the
// circular sequence. Only the first half is scanned; each match counts for
// both of its digits.
func captchaHalfway(digits []int64) int64 {
	half := len(digits) / 2
	var sum int64
	for i := 0; i < half; i++ {
		if digits[i] == digits[i+half] {
			sum += 2 * digits[i]
		}
	}
	return sum
}
