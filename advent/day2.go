package advent

import (
	"strconv"
	"strings"
)

func init() {
	register(2, Part1, day2a)
	register(2, Part2, day2b)
}

func day2a(p puzzle) (Answer, error) {
	var checksum int64
	for _, row := range parseMatrix(p.lines()) {
		checksum += rowRange(row)
	}
	return Int(checksum), nil
}

func day2b(p puzzle) (Answer, error) {
	var sum int64
	for _, row := range parseMatrix(p.lines()) {
		sum += rowQuotient(row)
	}
	return Int(sum), nil
}

// parseMatrix reads whitespace-separated integers from each line.
// Tokens that are not integers are dropped, as are lines left with
// no numbers.
func parseMatrix(lines []string) [][]int64 {
	var mat [][]int64
	for _, line := range lines {
		var row []int64
		for _, field := range strings.Fields(line) {
			n, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				continue
			}
			row = append(row, n)
		}
		if len(row) > 0 {
			mat = append(mat, row)
		}
	}
	return mat
}

func rowRange(row []int64) int64 {
	if len(row) == 0 {
		return 0
	}
	lo, hi := row[0], row[0]
	for _, n := range row[1:] {
		lo = min(lo, n)
		hi = max(hi, n)
	}
	return hi - lo
}

// rowQuotient returns the quotient of the first evenly dividing pair in row,
// looking at each value against those before it. It returns 0 if there is
// no such pair.
func rowQuotient(row []int64) int64 {
	for i, n1 := range row {
		for _, n0 := range row[:i] {
			lo, hi := min(n0, n1), max(n0, n1)
			if lo != 0 && hi%lo == 0 {
				return hi / lo
			}
		}
	}
	return 0
}
