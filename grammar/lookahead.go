package grammar

// Lookahead is one entry a reduce action's lookahead set can hold: either
// a real terminal, the end-of-input sentinel $, or (only as a transient
// value during LALR lookahead propagation) a probe standing in for "no
// lookahead yet — whatever reaches here was merely propagated".
type Lookahead struct {
	Probe    bool
	Sentinel bool
	Term     Terminal
}

// ProbeLookahead is the placeholder used to distinguish spontaneously
// generated lookaheads from ones that were merely propagated through a
// closure, per the standard efficient-LALR(1) construction.
var ProbeLookahead = Lookahead{Probe: true}

// SentinelLookahead is the end-of-input marker $, distinct from every
// real terminal.
var SentinelLookahead = Lookahead{Sentinel: true}

// TerminalLookahead wraps a real terminal as a lookahead.
func TerminalLookahead(t Terminal) Lookahead { return Lookahead{Term: t} }

// LR1Closure computes the closure of a map from item to its set of
// lookaheads: for every item A → α • B β in the input with lookahead set
// L, and every production B → γ, the closure gains B → • γ with
// lookahead set FIRST(βa) for each a in L (i.e. FIRST(β), plus every
// lookahead in L itself when β is nullable).
func (g *Grammar) LR1Closure(firsts []First, seed map[Item]map[Lookahead]struct{}) map[Item]map[Lookahead]struct{} {
	cur := cloneLR1Map(seed)
	for {
		next := cloneLR1Map(cur)
		changed := false
		for item, lookaheads := range cur {
			var rhs []Symbol
			if item.HasPID {
				rhs = g.Production(item.PID)[item.Dot:]
			} else {
				rhs = []Symbol{N(g.StartSymbol())}[item.Dot:]
			}
			if len(rhs) == 0 || rhs[0].IsTerminal {
				continue
			}
			nt := NonTerminal(rhs[0].Index)
			beta := rhs[1:]
			betaFirst := FirstOfSequence(firsts, beta)
			for _, pid := range g.Productions(nt) {
				newItem := Item{HasPID: true, PID: pid, Dot: 0}
				set := next[newItem]
				if set == nil {
					set = map[Lookahead]struct{}{}
					next[newItem] = set
				}
				for t := range betaFirst.Set {
					la := TerminalLookahead(t)
					if _, has := set[la]; !has {
						set[la] = struct{}{}
						changed = true
					}
				}
				if betaFirst.Nullable {
					for la := range lookaheads {
						if _, has := set[la]; !has {
							set[la] = struct{}{}
							changed = true
						}
					}
				}
			}
		}
		cur = next
		if !changed {
			break
		}
	}
	return cur
}

func cloneLR1Map(m map[Item]map[Lookahead]struct{}) map[Item]map[Lookahead]struct{} {
	out := make(map[Item]map[Lookahead]struct{}, len(m))
	for item, las := range m {
		set := make(map[Lookahead]struct{}, len(las))
		for la := range las {
			set[la] = struct{}{}
		}
		out[item] = set
	}
	return out
}
