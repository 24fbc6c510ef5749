// Package automaton builds and minimizes finite automata from regex IR:
// Thompson construction produces an NFA (nfa.go), subset construction plus
// Myhill-Nerode minimization turns that into a DFA (dfa.go). Both expose
// InitialState, Transition and Category for simulation (the NFA over state
// sets, the DFA over state indices); longest-match simulation is provided
// by the DFA.
package automaton

import (
	"github.com/dekarrin/ictiobus/internal/util"
	"github.com/dekarrin/ictiobus/regex"
)

// Category identifies which pattern (in submission order) an accepting
// state belongs to. The smallest Category reachable from a given state is
// the one that "wins" a match, which is what gives first-declared-rule
// priority among patterns that match the same longest prefix.
type Category int

const sigma = 256

type nfaNode struct {
	epsilon *util.BitSet
	t       [sigma]*util.BitSet
}

func newNFANode() nfaNode {
	n := nfaNode{epsilon: util.NewBitSet()}
	for i := range n.t {
		n.t[i] = util.NewBitSet()
	}
	return n
}

// NFA is a Thompson-constructed nondeterministic automaton over zero or
// more regex IR patterns sharing a single start state. Once Build is
// called, every node's epsilon set has been replaced by its full
// epsilon-closure, so simulating a step never needs to re-chase epsilons.
type NFA struct {
	nodes  []nfaNode
	finals []int // accepting state indices, in submission order (== ascending)
}

// NFABuilder incrementally constructs an NFA via Thompson's construction,
// one pattern at a time, all patterns sharing state 0 as their start.
type NFABuilder struct {
	nodes  []nfaNode
	finals []int
}

// NewNFABuilder returns a builder with a single, unconnected start state 0.
func NewNFABuilder() *NFABuilder {
	return &NFABuilder{nodes: []nfaNode{newNFANode()}}
}

func (b *NFABuilder) addState() int {
	b.nodes = append(b.nodes, newNFANode())
	return len(b.nodes) - 1
}

// AddIR runs Thompson construction for ir starting at state 0 and records
// its final state as the next category. It returns that final state's
// index.
func (b *NFABuilder) AddIR(ir regex.IR) int {
	f := b.thompson(ir, 0)
	b.finals = append(b.finals, f)
	return f
}

func (b *NFABuilder) thompson(ir regex.IR, q int) int {
	switch ir.Kind {
	case regex.IREmpty:
		f := b.addState()
		b.nodes[q].epsilon.Add(f)
		return f
	case regex.IRLiteral:
		f := b.addState()
		for _, x := range ir.Bytes.Elements() {
			b.nodes[q].t[x].Add(f)
		}
		return f
	case regex.IRUnion:
		fs := make([]int, len(ir.Kids))
		for i, x := range ir.Kids {
			s := b.addState()
			b.nodes[q].epsilon.Add(s)
			fs[i] = b.thompson(x, s)
		}
		g := b.addState()
		for _, f := range fs {
			b.nodes[f].epsilon.Add(g)
		}
		return g
	case regex.IRConcat:
		for _, x := range ir.Kids {
			q = b.thompson(x, q)
		}
		return q
	case regex.IRStar:
		s := b.addState()
		f := b.thompson(*ir.Kid, s)
		g := b.addState()
		b.nodes[q].epsilon.Add(s)
		b.nodes[q].epsilon.Add(g)
		b.nodes[f].epsilon.Add(s)
		b.nodes[f].epsilon.Add(g)
		return g
	default:
		panic("automaton: unreachable IR kind")
	}
}

// Build materializes the full epsilon-closure of every node via a
// fixed-point computation, then freezes the builder's state into an NFA.
// Each node's own index is included in its closure.
func (b *NFABuilder) Build() *NFA {
	n := len(b.nodes)
	mark := make([]bool, n)
	for i := range mark {
		mark[i] = true
		b.nodes[i].epsilon.Add(i)
	}
	for pass := 0; pass < n; pass++ {
		changed := false
		for i := 0; i < n; i++ {
			if !mark[i] {
				continue
			}
			x := b.nodes[i].epsilon.Clone()
			for _, j := range b.nodes[i].epsilon.Elements() {
				x.Union(b.nodes[j].epsilon)
			}
			if !x.Equal(b.nodes[i].epsilon) {
				b.nodes[i].epsilon = x
				changed = true
			} else {
				mark[i] = false
			}
		}
		if !changed {
			break
		}
	}
	finals := make([]int, len(b.finals))
	copy(finals, b.finals)
	return &NFA{nodes: b.nodes, finals: finals}
}

// InitialState returns the epsilon-closure of the shared start state.
func (nfa *NFA) InitialState() *util.BitSet {
	return nfa.nodes[0].epsilon.Clone()
}

// Transition returns the epsilon-closure of every state reachable from q
// on byte x, or (nil, false) if no state in q has a transition on x.
func (nfa *NFA) Transition(q *util.BitSet, x byte) (*util.BitSet, bool) {
	s := util.NewBitSet()
	for _, i := range q.Elements() {
		for _, j := range nfa.nodes[i].t[x].Elements() {
			s.Union(nfa.nodes[j].epsilon)
		}
	}
	if s.Empty() {
		return nil, false
	}
	return s, true
}

// Category returns the smallest-submission-order accepting category
// reachable from q, if any.
func (nfa *NFA) Category(q *util.BitSet) (Category, bool) {
	for i, f := range nfa.finals {
		if q.Has(f) {
			return Category(i), true
		}
	}
	return 0, false
}

// NumFinals reports how many patterns were added to the builder that
// produced this NFA, i.e. the number of distinct categories.
func (nfa *NFA) NumFinals() int {
	return len(nfa.finals)
}
