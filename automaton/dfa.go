package automaton

import "github.com/dekarrin/ictiobus/internal/util"

// dfaNode is one DFA state: the category it accepts (if any) and its
// transition table over the full byte alphabet.
type dfaNode struct {
	hasCategory bool
	category    Category
	t           [sigma]int // -1 means no transition
}

func newDFANode(nfa *NFA, s *util.BitSet) dfaNode {
	n := dfaNode{}
	for i := range n.t {
		n.t[i] = -1
	}
	if c, ok := nfa.Category(s); ok {
		n.hasCategory = true
		n.category = c
	}
	return n
}

// DFA is a deterministic automaton obtained from an NFA by subset
// construction followed by Myhill-Nerode minimization. State 0 is always
// the start state.
type DFA struct {
	nodes []dfaNode
}

// NewDFA builds the minimal DFA equivalent to nfa, via subset construction
// followed by Myhill-Nerode minimization.
func NewDFA(nfa *NFA) *DFA {
	return powersetConstruction(nfa).myhillNerode()
}

// powersetConstruction is algorithm 3.20 (purple dragon book): starting
// from the epsilon-closure of the NFA's start state, repeatedly compute
// each unmarked subset's transitions on every byte, discovering new
// subsets (and deduplicating ones already seen) along the way.
func powersetConstruction(nfa *NFA) *DFA {
	start := nfa.InitialState()
	d := &DFA{nodes: []dfaNode{newDFANode(nfa, start)}}
	sets := []*util.BitSet{start}
	index := map[string]int{start.Key(): 0}

	for i := 0; i < len(sets); i++ {
		for x := 0; x < sigma; x++ {
			u, ok := nfa.Transition(sets[i], byte(x))
			if !ok {
				continue
			}
			key := u.Key()
			if j, seen := index[key]; seen {
				d.nodes[i].t[x] = j
				continue
			}
			k := len(sets)
			d.nodes = append(d.nodes, newDFANode(nfa, u))
			sets = append(sets, u)
			index[key] = k
			d.nodes[i].t[x] = k
		}
	}
	return d
}

// myhillNerode minimizes d by merging states that are indistinguishable:
// two states are distinguishable if they accept different categories, or
// if on some byte they transition to (already known to be)
// distinguishable states. Distinguishability is computed to a fixed
// point over a lower-triangular marking matrix, then every state is
// reindexed to its smallest equivalent peer, with the start state (index
// 0) explicitly guaranteed to remain index 0 in the result.
func (d *DFA) myhillNerode() *DFA {
	n := len(d.nodes)
	mark := make([][]bool, n)
	for i := 0; i < n; i++ {
		mark[i] = make([]bool, i)
		for j := 0; j < i; j++ {
			mark[i][j] = !sameCategory(d.nodes[i], d.nodes[j])
		}
	}

	for {
		changed := false
		for i := 0; i < n; i++ {
			for j := 0; j < i; j++ {
				if mark[i][j] {
					continue
				}
				if distinguishableByTransition(d, mark, i, j) {
					mark[i][j] = true
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	// representative[i]: the smallest index equivalent to i; an index is
	// its own representative iff it receives a fresh slot in the minimized
	// automaton.
	representative := make([]int, n)
	newIndex := make([]int, n)
	isRep := make([]bool, n)
	k := 0
	for i := 0; i < n; i++ {
		rep := -1
		for j := 0; j < i; j++ {
			if !mark[i][j] {
				rep = representative[j]
				break
			}
		}
		if rep == -1 {
			representative[i] = i
			isRep[i] = true
			newIndex[i] = k
			k++
		} else {
			representative[i] = rep
		}
	}

	// The start state must remain index 0: since state 0 has no smaller
	// peer to merge into, it is always its own representative and is
	// always assigned the first new index, but we verify the invariant
	// explicitly rather than relying on iteration order alone.
	if !isRep[0] || newIndex[0] != 0 {
		panic("automaton: minimization must keep the start state at index 0")
	}

	out := make([]dfaNode, 0, k)
	for i := 0; i < n; i++ {
		if !isRep[i] {
			continue
		}
		node := d.nodes[i]
		for x := 0; x < sigma; x++ {
			if node.t[x] < 0 {
				continue
			}
			node.t[x] = newIndex[representative[node.t[x]]]
		}
		out = append(out, node)
	}
	return &DFA{nodes: out}
}

func sameCategory(a, b dfaNode) bool {
	return a.hasCategory == b.hasCategory && (!a.hasCategory || a.category == b.category)
}

func distinguishableByTransition(d *DFA, mark [][]bool, i, j int) bool {
	for x := 0; x < sigma; x++ {
		a, b := d.nodes[i].t[x], d.nodes[j].t[x]
		switch {
		case a < 0 && b < 0:
			continue
		case a < 0 || b < 0:
			return true
		case a == b:
			continue
		default:
			hi, lo := a, b
			if lo > hi {
				hi, lo = lo, hi
			}
			if mark[hi][lo] {
				return true
			}
		}
	}
	return false
}

// InitialState returns the DFA's start state index, always 0.
func (d *DFA) InitialState() int { return 0 }

// Transition returns the state reached from q on byte x, if any.
func (d *DFA) Transition(q int, x byte) (int, bool) {
	t := d.nodes[q].t[x]
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Category returns the category accepted at state q, if any.
func (d *DFA) Category(q int) (Category, bool) {
	n := d.nodes[q]
	return n.category, n.hasCategory
}

// NumStates reports how many states the (minimized) DFA has.
func (d *DFA) NumStates() int { return len(d.nodes) }

// Accept reports whether the DFA, run to exhaustion over s, ends in an
// accepting state having consumed every byte.
func (d *DFA) Accept(s []byte) bool {
	q := d.InitialState()
	for _, b := range s {
		next, ok := d.Transition(q, b)
		if !ok {
			return false
		}
		q = next
	}
	_, ok := d.Category(q)
	return ok
}

// Match is the result of a longest-match simulation: the category matched
// and how many bytes of the input were consumed to reach it.
type Match struct {
	Category Category
	Length   int
}

// LongestMatch simulates the DFA over s, byte by byte, remembering the
// most recent (category, length) pair seen at an accepting state. It
// returns that remembered pair, or (Match{}, false) if no prefix of s
// (including the empty prefix) was ever accepting.
func (d *DFA) LongestMatch(s []byte) (Match, bool) {
	q := d.InitialState()
	var best Match
	found := false
	if c, ok := d.Category(q); ok {
		best = Match{Category: c, Length: 0}
		found = true
	}
	for i, b := range s {
		next, ok := d.Transition(q, b)
		if !ok {
			break
		}
		q = next
		if c, ok := d.Category(q); ok {
			best = Match{Category: c, Length: i + 1}
			found = true
		}
	}
	return best, found
}
