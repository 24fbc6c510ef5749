package parse

import (
	"fmt"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/internal/icterrors"
	"github.com/dekarrin/ictiobus/internal/util"
)

// Token is one input symbol fed to the driver: a terminal class plus
// whatever lexeme/value the lexer attached to it.
type Token struct {
	Terminal grammar.Terminal
	Lexeme   any
}

// Node is a parse-tree node: a leaf holding a shifted token, or an
// interior node holding the production it was reduced by and its
// children in left-to-right order.
type Node struct {
	Symbol   grammar.Symbol
	PID      grammar.PID
	IsLeaf   bool
	Token    Token
	Children []*Node
}

// Parse drives tbl over tokens using the classic shift-reduce LR
// algorithm: a state stack and a parallel node stack. On Accept it
// returns the single remaining node, the parse tree rooted at the
// grammar's start symbol.
func Parse(g *grammar.Grammar, tbl *Table, tokens []Token) (*Node, error) {
	var states util.Stack[int]
	var nodes util.Stack[*Node]
	states.Push(0)

	pos := 0
	current := func() (int, bool) {
		if pos >= len(tokens) {
			return -1, false
		}
		return int(tokens[pos].Terminal), true
	}

	for {
		s := states.Peek()
		termIdx, hasTerm := current()
		act := tbl.ActionAt(s, termIdx)

		switch act.Type {
		case LRShift:
			node := &Node{Symbol: grammar.T(grammar.Terminal(termIdx)), IsLeaf: true, Token: tokens[pos]}
			nodes.Push(node)
			states.Push(act.State)
			pos++

		case LRReduce:
			rhs := g.Production(act.PID)
			children := make([]*Node, len(rhs))
			for i := len(rhs) - 1; i >= 0; i-- {
				states.Pop()
				children[i] = nodes.Pop()
			}
			node := &Node{Symbol: grammar.N(act.PID.NT), PID: act.PID, Children: children}
			nodes.Push(node)
			top := states.Peek()
			next := tbl.GotoAt(top, act.PID.NT)
			if next < 0 {
				return nil, icterrors.ParseReject(pos, "<reduce with no goto>", nil)
			}
			states.Push(next)

		case LRAccept:
			return nodes.Peek(), nil

		default:
			got := "$"
			if hasTerm {
				got = g.TerminalName(tokens[pos].Terminal)
				if tokens[pos].Lexeme != nil {
					got = fmt.Sprintf("%s (%v)", got, tokens[pos].Lexeme)
				}
			}
			return nil, icterrors.ParseReject(pos, got, tbl.ExpectedTerminals(s))
		}
	}
}
