package advent

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(3, Part1, day3a)
	register(3, Part2, day3b)
}

func day3a(p puzzle) (Answer, error) {
	n, err := parseTarget(p.text())
	if err != nil {
		return Answer{}, err
	}
	return Int(spiralDistance(n)), nil
}

func day3b(p puzzle) (Answer, error) {
	n, err := parseTarget(p.text())
	if err != nil {
		return Answer{}, err
	}
	return Int(spiralStress(n)), nil
}

func parseTarget(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad spiral square: %s", err)
	}
	return n, nil
}

// spiralDistance returns the Manhattan distance from square n of the spiral
// to square 1.
//
// Square n lies on the ring just outside the largest odd square k*k below n.
// On that ring the squares nearest the center are the midpoints of its four
// sides, each (k+1)/2 away; n is further off by its distance to the closest
// midpoint.
func spiralDistance(n int64) int64 {
	if n <= 1 {
		return 0
	}
	k := int64(1)
	for (k+2)*(k+2) < n {
		k += 2
	}
	side := k + 1
	mid := k*k + (k+1)/2
	off := absInt(mid - n)
	for j := int64(1); j < 4; j++ {
		off = min(off, absInt(mid+j*side-n))
	}
	return side/2 + off
}

// spiralStress fills the spiral with neighbor sums, starting from 1 in the
// center, and returns the first value written that is at least n.
func spiralStress(n int64) int64 {
	if n <= 1 {
		return 1
	}
	sp := newSpiral()
	for {
		sp.grow()
		for _, c := range sp.outerRing() {
			v := sp.neighborSum(c)
			sp.set(c, v)
			if v >= n {
				return v
			}
		}
	}
}

type cell struct {
	row, col int
}

// spiral is a square matrix of odd side with 1 in its center.
// Squares that have not been written are 0.
type spiral struct {
	m [][]int64
}

func newSpiral() *spiral {
	return &spiral{m: [][]int64{{1}}}
}

func (sp *spiral) side() int { return len(sp.m) }

func (sp *spiral) set(c cell, v int64) { sp.m[c.row][c.col] = v }

// grow surrounds the current contents with a ring of zeros.
func (sp *spiral) grow() {
	side := sp.side() + 2
	m := make([][]int64, side)
	for i := range m {
		m[i] = make([]int64, side)
	}
	for i, row := range sp.m {
		copy(m[i+1][1:], row)
	}
	sp.m = m
}

// outerRing lists the squares of the outermost ring in the order the spiral
// visits them: up the right column, across the top, down the left, and
// along the bottom to the bottom-right corner.
func (sp *spiral) outerRing() []cell {
	s := sp.side()
	ring := make([]cell, 0, 4*(s-1))
	for r := s - 2; r >= 1; r-- {
		ring = append(ring, cell{r, s - 1})
	}
	ring = append(ring, cell{0, s - 1})
	for c := s - 2; c >= 1; c-- {
		ring = append(ring, cell{0, c})
	}
	ring = append(ring, cell{0, 0})
	for r := 1; r <= s-2; r++ {
		ring = append(ring, cell{r, 0})
	}
	ring = append(ring, cell{s - 1, 0})
	for c := 1; c <= s-2; c++ {
		ring = append(ring, cell{s - 1, c})
	}
	ring = append(ring, cell{s - 1, s - 1})
	return ring
}

func (sp *spiral) neighborSum(c cell) int64 {
	var sum int64
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, col := c.row+dr, c.col+dc
			if r < 0 || col < 0 || r >= sp.side() || col >= sp.side() {
				continue
			}
			sum += sp.m[r][col]
		}
	}
	return sum
}

func absInt(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
