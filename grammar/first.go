package grammar

// First records a nonterminal's FIRST set (the terminals that can begin a
// string it derives) and whether it can derive the empty string.
type First struct {
	Set      map[Terminal]struct{}
	Nullable bool
}

func newFirst() First { return First{Set: map[Terminal]struct{}{}} }

// ComputeFirst computes FIRST(A) for every nonterminal A by fixed-point
// iteration over the grammar's productions: for A → X1 X2 ... Xn, FIRST(A)
// absorbs FIRST(Xi) for the longest nullable prefix X1..Xi-1, stopping at
// (and including) the first non-nullable symbol.
func (g *Grammar) ComputeFirst() []First {
	out := make([]First, g.NumNonTerminals())
	for i := range out {
		out[i] = newFirst()
	}
	for {
		changed := false
		for _, pid := range g.IndexedProductions() {
			i := pid.NT
			rhs := g.Production(pid)
			nullable := true
			for _, sym := range rhs {
				if sym.IsTerminal {
					if _, has := out[i].Set[Terminal(sym.Index)]; !has {
						out[i].Set[Terminal(sym.Index)] = struct{}{}
						changed = true
					}
					nullable = false
					break
				}
				j := NonTerminal(sym.Index)
				for t := range out[j].Set {
					if _, has := out[i].Set[t]; !has {
						out[i].Set[t] = struct{}{}
						changed = true
					}
				}
				if !out[j].Nullable {
					nullable = false
					break
				}
			}
			if nullable && !out[i].Nullable {
				out[i].Nullable = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return out
}

// FirstOfSequence computes FIRST of a symbol sequence (e.g. the portion of
// a production after some dot), given the grammar's per-nonterminal FIRST
// sets: it is the union of FIRST(Xi) over the longest nullable prefix,
// plus whether the whole sequence is itself nullable.
func FirstOfSequence(firsts []First, seq []Symbol) First {
	out := newFirst()
	out.Nullable = true
	for _, sym := range seq {
		if sym.IsTerminal {
			out.Set[Terminal(sym.Index)] = struct{}{}
			out.Nullable = false
			break
		}
		j := NonTerminal(sym.Index)
		for t := range firsts[j].Set {
			out.Set[t] = struct{}{}
		}
		if !firsts[j].Nullable {
			out.Nullable = false
			break
		}
	}
	return out
}
