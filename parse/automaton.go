package parse

import "github.com/dekarrin/ictiobus/grammar"

// CharacteristicAutomaton is the LR(0) automaton: one state per distinct
// item-set kernel, reachable from state 0 (the closure of ⊤ → • S) by
// GOTO on nonterminals (GotoN) and SHIFT on terminals (GotoT). Both goto
// tables are indexed [state][symbolIndex] and hold -1 where there is no
// transition.
type CharacteristicAutomaton struct {
	States []grammar.ItemSet
	GotoN  [][]int
	GotoT  [][]int
}

// BuildCharacteristicAutomaton enumerates every reachable LR(0) state via
// BFS from the closure of the initial item, exactly mirroring
// lr0_characteristic_automaton's worklist: for each already-discovered
// state, try GOTO on every nonterminal and every terminal, reusing an
// existing state's index when the resulting item set's kernel already
// matches one, or allocating a new state otherwise.
func BuildCharacteristicAutomaton(g *grammar.Grammar) *CharacteristicAutomaton {
	start := g.LR0Closure(map[grammar.Item]struct{}{grammar.InitItem: {}})
	ca := &CharacteristicAutomaton{States: []grammar.ItemSet{start}}
	index := map[string]int{grammar.KernelKey(start): 0}

	nt := g.NumNonTerminals()
	nTerm := g.NumTerminals()

	for i := 0; i < len(ca.States); i++ {
		ca.GotoN = append(ca.GotoN, make([]int, nt))
		ca.GotoT = append(ca.GotoT, make([]int, nTerm))
		for j := range ca.GotoN[i] {
			ca.GotoN[i][j] = -1
		}
		for j := range ca.GotoT[i] {
			ca.GotoT[i][j] = -1
		}

		for j := 0; j < nt; j++ {
			t := g.LR0Goto(ca.States[i], grammar.N(grammar.NonTerminal(j)))
			if t.IsEmpty() {
				continue
			}
			ca.GotoN[i][j] = indexOf(ca, index, t)
		}
		for j := 0; j < nTerm; j++ {
			t := g.LR0Goto(ca.States[i], grammar.T(grammar.Terminal(j)))
			if t.IsEmpty() {
				continue
			}
			ca.GotoT[i][j] = indexOf(ca, index, t)
		}
	}
	return ca
}

func indexOf(ca *CharacteristicAutomaton, index map[string]int, s grammar.ItemSet) int {
	key := grammar.KernelKey(s)
	if k, ok := index[key]; ok {
		return k
	}
	k := len(ca.States)
	ca.States = append(ca.States, s)
	index[key] = k
	return k
}
