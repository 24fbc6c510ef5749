package parse

import (
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/internal/icterrors"
)

// Table is the assembled ACTION/GOTO pair an LR driver runs against.
// ACTION is indexed [state][terminal], with one extra trailing column
// (index NumTerminals) standing in for the end-of-input sentinel $. GOTO
// is indexed [state][nonterminal].
type Table struct {
	g      *grammar.Grammar
	Action [][]LRAction
	Goto   [][]int
}

func sentinelCol(g *grammar.Grammar) int { return g.NumTerminals() }

// NewTable assembles ACTION/GOTO tables from a characteristic automaton
// and its completed LALR(1) lookaheads, reporting the first unresolved
// conflict encountered (no implicit precedence/associativity resolution
// is ever applied).
func NewTable(g *grammar.Grammar, firsts []grammar.First, ca *CharacteristicAutomaton, lookaheads map[stateItem]map[grammar.Lookahead]struct{}) (*Table, error) {
	nStates := len(ca.States)
	nCols := g.NumTerminals() + 1
	tbl := &Table{
		g:      g,
		Action: make([][]LRAction, nStates),
		Goto:   make([][]int, nStates),
	}
	for s := 0; s < nStates; s++ {
		tbl.Action[s] = make([]LRAction, nCols)
		tbl.Goto[s] = make([]int, g.NumNonTerminals())
		for nt := range tbl.Goto[s] {
			tbl.Goto[s][nt] = -1
		}
	}

	for s := 0; s < nStates; s++ {
		copy(tbl.Goto[s], ca.GotoN[s])

		for t := 0; t < g.NumTerminals(); t++ {
			if target := ca.GotoT[s][t]; target >= 0 {
				if err := tbl.set(s, t, LRAction{Type: LRShift, State: target}); err != nil {
					return nil, err
				}
			}
		}

		seed := map[grammar.Item]map[grammar.Lookahead]struct{}{}
		for item := range ca.States[s].Kernel {
			las := lookaheads[stateItem{State: s, Item: item}]
			set := make(map[grammar.Lookahead]struct{}, len(las))
			for la := range las {
				set[la] = struct{}{}
			}
			seed[item] = set
		}
		full := g.LR1Closure(firsts, seed)

		for item, las := range full {
			if _, ok := g.Symbol(item); ok {
				continue // shift item, already handled via ca.GotoT above
			}
			if g.IsAccept(item) {
				if err := tbl.set(s, sentinelCol(g), LRAction{Type: LRAccept}); err != nil {
					return nil, err
				}
				continue
			}
			for la := range las {
				col := g.NumTerminals()
				if !la.Sentinel {
					col = int(la.Term)
				}
				if err := tbl.set(s, col, LRAction{Type: LRReduce, PID: item.PID}); err != nil {
					return nil, err
				}
			}
		}
	}
	return tbl, nil
}

func (tbl *Table) set(state, col int, act LRAction) error {
	existing := tbl.Action[state][col]
	if existing.Type == LRError {
		tbl.Action[state][col] = act
		return nil
	}
	if existing == act {
		return nil
	}
	symbol := "$"
	if col < tbl.g.NumTerminals() {
		symbol = tbl.g.TerminalName(grammar.Terminal(col))
	}
	return icterrors.GrammarConflict(state, symbol, conflictDetail(existing, act))
}

// ActionAt returns the ACTION-table entry for state on terminal t (pass
// -1 for the end-of-input sentinel $).
func (tbl *Table) ActionAt(state int, t int) LRAction {
	col := sentinelCol(tbl.g)
	if t >= 0 {
		col = t
	}
	return tbl.Action[state][col]
}

// GotoAt returns the GOTO-table entry for state on nonterminal nt, or -1
// if undefined.
func (tbl *Table) GotoAt(state int, nt grammar.NonTerminal) int {
	return tbl.Goto[state][nt]
}

// ExpectedTerminals lists every terminal (by name) that has a defined
// ACTION in state, for use in ParseReject diagnostics.
func (tbl *Table) ExpectedTerminals(state int) []string {
	var out []string
	for t := 0; t < tbl.g.NumTerminals(); t++ {
		if tbl.Action[state][t].Type != LRError {
			out = append(out, tbl.g.TerminalName(grammar.Terminal(t)))
		}
	}
	if tbl.Action[state][sentinelCol(tbl.g)].Type != LRError {
		out = append(out, "$")
	}
	return out
}
