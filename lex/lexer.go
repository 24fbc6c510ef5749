package lex

import (
	"github.com/dekarrin/ictiobus/automaton"
	"github.com/dekarrin/ictiobus/internal/icterrors"
	"github.com/dekarrin/ictiobus/regex"
)

// Rule is one named pattern-action pair given to NewLexer. Name is used
// only for diagnostics (LexerEmptyRule errors and the String dump).
type Rule[T any] struct {
	Name    string
	Pattern string
	Action  Action[T]
}

// Lexer is a compiled set of rules: all of their patterns share a single
// NFA/DFA, built in rule order so that rule order breaks ties between
// patterns that match the same longest prefix (earlier rules win).
type Lexer[T any] struct {
	dfa      *automaton.DFA
	names    []string
	patterns []string
	actions  []Action[T]
}

// NewLexer compiles rules into a Lexer. It fails with a LexerEmptyRule
// error if any individual rule's pattern can match the empty string,
// since such a rule would let the lexer make zero-length "progress"
// forever.
func NewLexer[T any](rules []Rule[T]) (*Lexer[T], error) {
	builder := automaton.NewNFABuilder()
	names := make([]string, len(rules))
	patterns := make([]string, len(rules))
	actions := make([]Action[T], len(rules))

	for i, r := range rules {
		ir, err := regex.Compile(r.Pattern)
		if err != nil {
			return nil, err
		}
		if matchesEmpty(ir) {
			return nil, icterrors.LexerEmptyRule(r.Name)
		}
		builder.AddIR(ir)
		names[i] = r.Name
		patterns[i] = r.Pattern
		actions[i] = r.Action
	}

	nfa := builder.Build()
	dfa := automaton.NewDFA(nfa)
	return &Lexer[T]{dfa: dfa, names: names, patterns: patterns, actions: actions}, nil
}

// matchesEmpty reports whether ir, compiled alone, accepts the empty
// string.
func matchesEmpty(ir regex.IR) bool {
	b := automaton.NewNFABuilder()
	b.AddIR(ir)
	d := automaton.NewDFA(b.Build())
	return d.Accept(nil)
}

// Next consumes the longest match at the start of s and dispatches it to
// its rule's action, returning the produced token, the unconsumed
// remainder, and whether a token was produced (false for a skipped
// match). It fails with a LexerStuck error if no rule matches any prefix
// of s, including the empty prefix.
func (lx *Lexer[T]) Next(s []byte) (T, []byte, bool, error) {
	var zero T
	m, ok := lx.dfa.LongestMatch(s)
	if !ok {
		end := len(s)
		if end > 16 {
			end = 16
		}
		return zero, s, false, icterrors.LexerStuck(0, string(s[:end]))
	}
	matched := s[:m.Length]
	rest := s[m.Length:]
	action := lx.actions[m.Category]
	if action.Skip {
		return zero, rest, false, nil
	}
	return action.Fn(matched), rest, true, nil
}

// Tokenize lexes all of s into a slice of T, skipping matches whose rule
// is marked Skip, and stopping once s is fully consumed. It fails with
// whatever error Next produces at the point lexing got stuck.
func (lx *Lexer[T]) Tokenize(s []byte) ([]T, error) {
	var out []T
	rest := s
	for len(rest) > 0 {
		v, next, produced, err := lx.Next(rest)
		if err != nil {
			return out, err
		}
		if produced {
			out = append(out, v)
		}
		rest = next
	}
	return out, nil
}
