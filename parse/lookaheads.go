package parse

import "github.com/dekarrin/ictiobus/grammar"

// stateItem names one kernel item as it occurs in one specific state of
// the characteristic automaton. Lookaheads must be tracked per
// (state, item), not per bare item: the same production-and-dot core can
// appear as a kernel item in more than one state, reached via different
// paths, and those occurrences can legitimately carry different
// lookahead sets — merging them across states produces lookaheads that
// never belong to either occurrence and manufactures spurious
// shift/reduce conflicts.
type stateItem struct {
	State int
	Item  grammar.Item
}

// ComputeLookaheads completes the spontaneous/propagated LALR(1) lookahead
// discovery left unfinished in the construction this is grounded on:
// for every (state, kernel item) pair in the characteristic automaton,
// close {item: {probe}} under LR(1) closure (the closure computation
// itself depends only on the item's production and dot position, not on
// the state it occurs in, so it is computed once per distinct item and
// reused). Within that closure, each item with the dot before a symbol X
// shifts to an item in GOTO(state, X) — found via the automaton's own
// GotoN/GotoT tables, so the target state is always the one actually
// reachable from this occurrence, not merely "some state with a matching
// kernel". A real (non-probe) lookahead reaching that shifted item is
// generated "spontaneously" and recorded directly against
// (GOTO(state, X), shifted item); a lookahead that is only the probe is
// instead "propagated" from (state, item), and the edge is recorded for
// a second fixed-point pass that chases the propagation graph to
// quiescence.
func ComputeLookaheads(g *grammar.Grammar, firsts []grammar.First, ca *CharacteristicAutomaton) map[stateItem]map[grammar.Lookahead]struct{} {
	res := map[stateItem]map[grammar.Lookahead]struct{}{
		{State: 0, Item: grammar.InitItem}: {grammar.SentinelLookahead: {}},
	}
	propagates := map[stateItem]map[stateItem]struct{}{}

	closureCache := map[grammar.Item]map[grammar.Item]map[grammar.Lookahead]struct{}{}
	closureOf := func(item grammar.Item) map[grammar.Item]map[grammar.Lookahead]struct{} {
		if c, ok := closureCache[item]; ok {
			return c
		}
		seed := map[grammar.Item]map[grammar.Lookahead]struct{}{item: {grammar.ProbeLookahead: {}}}
		c := g.LR1Closure(firsts, seed)
		closureCache[item] = c
		return c
	}

	for stateIdx, state := range ca.States {
		for itemA := range state.Kernel {
			closure := closureOf(itemA)
			for item, lookaheads := range closure {
				sym, ok := g.Symbol(item)
				if !ok {
					continue
				}
				itemB, ok := g.Shifted(item)
				if !ok {
					continue
				}
				target := gotoTarget(ca, stateIdx, sym)
				if target < 0 {
					continue
				}
				dst := stateItem{State: target, Item: itemB}
				for la := range lookaheads {
					if la.Probe {
						src := stateItem{State: stateIdx, Item: itemA}
						if propagates[src] == nil {
							propagates[src] = map[stateItem]struct{}{}
						}
						propagates[src][dst] = struct{}{}
						continue
					}
					addLookahead(res, dst, la)
				}
			}
		}
	}

	for {
		changed := false
		for src, lookaheads := range snapshot(res) {
			for dst := range propagates[src] {
				for la := range lookaheads {
					if addLookahead(res, dst, la) {
						changed = true
					}
				}
			}
		}
		if !changed {
			break
		}
	}
	return res
}

// gotoTarget looks up the state GOTO(state, sym) leads to in ca, or -1 if
// sym has no transition out of state.
func gotoTarget(ca *CharacteristicAutomaton, state int, sym grammar.Symbol) int {
	if sym.IsTerminal {
		return ca.GotoT[state][sym.Index]
	}
	return ca.GotoN[state][sym.Index]
}

func addLookahead(res map[stateItem]map[grammar.Lookahead]struct{}, item stateItem, la grammar.Lookahead) bool {
	set := res[item]
	if set == nil {
		set = map[grammar.Lookahead]struct{}{}
		res[item] = set
	}
	if _, has := set[la]; has {
		return false
	}
	set[la] = struct{}{}
	return true
}

func snapshot(res map[stateItem]map[grammar.Lookahead]struct{}) map[stateItem]map[grammar.Lookahead]struct{} {
	out := make(map[stateItem]map[grammar.Lookahead]struct{}, len(res))
	for item, las := range res {
		set := make(map[grammar.Lookahead]struct{}, len(las))
		for la := range las {
			set[la] = struct{}{}
		}
		out[item] = set
	}
	return out
}
