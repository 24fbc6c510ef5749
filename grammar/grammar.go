// Package grammar holds the context-free grammar data model (symbols,
// productions, LR items) and the FIRST-set computation the parse package
// builds its characteristic automaton and LALR(1) tables from.
package grammar

import "fmt"

// Terminal indexes a grammar's terminal alphabet, 0..NumTerminals-1.
type Terminal int

// NonTerminal indexes a grammar's nonterminal alphabet, 0..NumNonTerminals-1.
// By convention nonterminal 0 is always the grammar's start symbol; the
// augmented start symbol itself (⊤ → S) is implicit and never allocated
// an index of its own.
type NonTerminal int

// Symbol is either a terminal or a nonterminal, tagged by IsTerminal.
type Symbol struct {
	IsTerminal bool
	Index      int
}

// T builds a terminal symbol.
func T(i Terminal) Symbol { return Symbol{IsTerminal: true, Index: int(i)} }

// N builds a nonterminal symbol.
func N(i NonTerminal) Symbol { return Symbol{IsTerminal: false, Index: int(i)} }

func (s Symbol) String() string {
	if s.IsTerminal {
		return fmt.Sprintf("t%d", s.Index)
	}
	return fmt.Sprintf("N%d", s.Index)
}

// PID names one production: its left-hand nonterminal and its index among
// that nonterminal's alternatives.
type PID struct {
	NT  NonTerminal
	Idx int
}

// Grammar is a context-free grammar over dense terminal/nonterminal index
// spaces. Productions are grouped by left-hand nonterminal, matching the
// [Vec<D>; NC] shape productions are stored in.
type Grammar struct {
	productions   [][]([]Symbol)
	numTerminals  int
	names         []string // optional nonterminal names, for diagnostics
	terminalNames []string
}

// New returns an empty grammar with the given number of nonterminals and
// terminals. Nonterminal 0 must be filled in as the start symbol.
func New(numNonTerminals, numTerminals int) *Grammar {
	return &Grammar{
		productions:   make([][][]Symbol, numNonTerminals),
		numTerminals:  numTerminals,
		names:         make([]string, numNonTerminals),
		terminalNames: make([]string, numTerminals),
	}
}

// SetNonTerminalName and SetTerminalName attach a human-readable name used
// only in diagnostic messages (conflict reports, ParseReject errors).
func (g *Grammar) SetNonTerminalName(nt NonTerminal, name string) { g.names[nt] = name }
func (g *Grammar) SetTerminalName(t Terminal, name string)        { g.terminalNames[t] = name }

func (g *Grammar) NonTerminalName(nt NonTerminal) string {
	if n := g.names[nt]; n != "" {
		return n
	}
	return fmt.Sprintf("N%d", nt)
}

func (g *Grammar) TerminalName(t Terminal) string {
	if n := g.terminalNames[t]; n != "" {
		return n
	}
	return fmt.Sprintf("t%d", t)
}

// AddProduction appends a right-hand side to nt's alternatives and returns
// its PID.
func (g *Grammar) AddProduction(nt NonTerminal, rhs ...Symbol) PID {
	idx := len(g.productions[nt])
	cp := make([]Symbol, len(rhs))
	copy(cp, rhs)
	g.productions[nt] = append(g.productions[nt], cp)
	return PID{NT: nt, Idx: idx}
}

// Production returns the right-hand side named by pid.
func (g *Grammar) Production(pid PID) []Symbol {
	return g.productions[pid.NT][pid.Idx]
}

// Productions returns every PID belonging to nt.
func (g *Grammar) Productions(nt NonTerminal) []PID {
	out := make([]PID, len(g.productions[nt]))
	for i := range out {
		out[i] = PID{NT: nt, Idx: i}
	}
	return out
}

// IndexedProductions returns every production in the grammar paired with
// its PID.
func (g *Grammar) IndexedProductions() []PID {
	var out []PID
	for nt := range g.productions {
		out = append(out, g.Productions(NonTerminal(nt))...)
	}
	return out
}

// NumNonTerminals and NumTerminals report the grammar's alphabet sizes.
func (g *Grammar) NumNonTerminals() int { return len(g.productions) }
func (g *Grammar) NumTerminals() int    { return g.numTerminals }

// StartSymbol is always nonterminal 0.
func (g *Grammar) StartSymbol() NonTerminal { return 0 }
