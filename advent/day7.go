package advent

import (
	"errors"
	"fmt"
	"strconv"
)

func init() {
	register(7, Part1, day7a)
	register(7, Part2, day7b)
}

func day7a(p puzzle) (Answer, error) {
	t := parseTower(p.lines())
	root, err := t.root()
	if err != nil {
		return Answer{}, err
	}
	return Str(t.progs[root].name), nil
}

func day7b(p puzzle) (Answer, error) {
	t := parseTower(p.lines())
	root, err := t.root()
	if err != nil {
		return Answer{}, err
	}
	if _, err := t.treeWeight(root); err != nil {
		return Answer{}, err
	}
	return Int(t.fixWeight(root, 0)), nil
}

type towerProg struct {
	name       string
	weight     int64
	treeWeight int64 // -1 until computed
	children   []int
	held       bool
}

// A tower holds programs in the order they were first mentioned, either
// by their own line or as someone's child.
type tower struct {
	progs  []towerProg
	byName map[string]int
}

func newTower() *tower {
	return &tower{byName: make(map[string]int)}
}

func parseTower(lines []string) *tower {
	t := newTower()
	for _, line := range lines {
		t.addLine(line)
	}
	return t
}

// addLine records the program defined by a line such as
//
//	fwft (72) -> ktlj, cntj, xhth
//
// The first name is the program, the first number its weight, and any
// further names its children. Lines with no name are ignored.
func (t *tower) addLine(line string) {
	names, nums := towerTokens(line)
	if len(names) == 0 {
		return
	}
	i := t.lookup(names[0])
	var weight int64
	if len(nums) > 0 {
		weight = nums[0]
	}
	t.progs[i].weight = weight
	t.progs[i].children = nil
	for _, name := range names[1:] {
		c := t.lookup(name)
		t.progs[c].held = true
		t.progs[i].children = append(t.progs[i].children, c)
	}
}

// lookup returns the index of the named program, adding it if necessary.
func (t *tower) lookup(name string) int {
	if i, ok := t.byName[name]; ok {
		return i
	}
	i := len(t.progs)
	t.progs = append(t.progs, towerProg{name: name, treeWeight: -1})
	t.byName[name] = i
	return i
}

// towerTokens splits s into its runs of lowercase letters and its runs of
// digits, in order.
func towerTokens(s string) (names []string, nums []int64) {
	for i := 0; i < len(s); {
		j := i
		switch c := s[i]; {
		case c >= 'a' && c <= 'z':
			for j < len(s) && s[j] >= 'a' && s[j] <= 'z' {
				j++
			}
			names = append(names, s[i:j])
		case c >= '0' && c <= '9':
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			if n, err := strconv.ParseInt(s[i:j], 10, 64); err == nil {
				nums = append(nums, n)
			}
		default:
			j++
		}
		i = j
	}
	return names, nums
}

// root returns the index of the only program that no other program holds.
func (t *tower) root() (int, error) {
	if len(t.progs) == 0 {
		return 0, errors.New("empty tower")
	}
	root := -1
	for i, prog := range t.progs {
		if prog.held {
			continue
		}
		if root >= 0 {
			return 0, fmt.Errorf("programs %s and %s are both unheld", t.progs[root].name, prog.name)
		}
		root = i
	}
	if root < 0 {
		return 0, errors.New("every program is held by another")
	}
	return root, nil
}

const visiting = -2

// treeWeight computes and records the total weight of the subtree at i.
func (t *tower) treeWeight(i int) (int64, error) {
	prog := &t.progs[i]
	switch prog.treeWeight {
	case -1:
	case visiting:
		return 0, fmt.Errorf("program %s holds itself", prog.name)
	default:
		return prog.treeWeight, nil
	}
	prog.treeWeight = visiting
	w := prog.weight
	for _, c := range prog.children {
		cw, err := t.treeWeight(c)
		if err != nil {
			return 0, err
		}
		w += cw
	}
	t.progs[i].treeWeight = w
	return w, nil
}

// fixWeight follows the unbalanced subtrees down from i and returns the
// weight the faulty program needs. delta is how far the subtree at i is from
// the weight of its siblings. Tree weights must have been computed.
func (t *tower) fixWeight(i int, delta int64) int64 {
	odd, want, ok := t.oddChild(i)
	if !ok {
		return t.progs[i].weight + delta
	}
	return t.fixWeight(odd, want-t.progs[odd].treeWeight)
}

// oddChild finds the child of i whose tree weight differs from its siblings
// and returns it with the weight it should have. It reports false if the
// children of i are balanced.
//
// The odd child is the only one of its weight. With just two children of
// different weights both are alone; then the one whose own children are
// unbalanced is at fault, and failing that the second one.
func (t *tower) oddChild(i int) (odd int, want int64, ok bool) {
	children := t.progs[i].children
	groups := make(map[int64][]int)
	var weights []int64
	for _, c := range children {
		w := t.progs[c].treeWeight
		if _, ok := groups[w]; !ok {
			weights = append(weights, w)
		}
		groups[w] = append(groups[w], c)
	}
	if len(weights) < 2 {
		return 0, 0, false
	}
	if len(children) == 2 {
		first, second := children[0], children[1]
		if t.unbalanced(first) && !t.unbalanced(second) {
			return first, t.progs[second].treeWeight, true
		}
		return second, t.progs[first].treeWeight, true
	}
	odd = -1
	var majority int64
	var majoritySize int
	for _, w := range weights {
		g := groups[w]
		if len(g) == 1 && odd < 0 {
			odd = g[0]
		} else if len(g) > majoritySize {
			majority, majoritySize = w, len(g)
		}
	}
	if odd < 0 || majoritySize == 0 {
		return 0, 0, false
	}
	return odd, majority, true
}

func (t *tower) unbalanced(i int) bool {
	children := t.progs[i].children
	if len(children) < 2 {
		return false
	}
	for _, c := range children[1:] {
		if t.progs[c].treeWeight != t.progs[children[0]].treeWeight {
			return true
		}
	}
	return false
}
