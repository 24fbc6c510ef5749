package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/lex"
	"github.com/dekarrin/ictiobus/parse"
)

// bundleFile is the top-level shape of a TOML rule bundle: a list of
// lexer rules and a list of grammar productions referring to each other
// by name, plus the nonterminal productions start from.
type bundleFile struct {
	Format      string           `toml:"format"`
	Start       string           `toml:"start"`
	Rules       []ruleSpec       `toml:"rule"`
	Productions []productionSpec `toml:"production"`
}

type ruleSpec struct {
	Name    string `toml:"name"`
	Pattern string `toml:"pattern"`
	Skip    bool   `toml:"skip"`
}

type productionSpec struct {
	Head string   `toml:"head"`
	Body []string `toml:"body"`
}

// Bundle is a loaded rule bundle, ready to build a lexer and a grammar
// from, each over its own name-to-index mapping.
type Bundle struct {
	raw bundleFile
}

// LoadBundle reads and parses a TOML rule bundle from path.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bundle: %w", err)
	}
	var raw bundleFile
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("parsing bundle: %w", err)
	}
	if len(raw.Rules) == 0 {
		return nil, fmt.Errorf("bundle %s declares no rules", path)
	}
	return &Bundle{raw: raw}, nil
}

// BuildLexer compiles the bundle's rules into a Lexer whose tokens are
// parse.Token values, one terminal per non-skip rule, named after the
// rule and indexed in declaration order.
func (b *Bundle) BuildLexer(termIndex map[string]grammar.Terminal) (*lex.Lexer[parse.Token], error) {
	rules := make([]lex.Rule[parse.Token], len(b.raw.Rules))
	for i, r := range b.raw.Rules {
		if r.Skip {
			rules[i] = lex.Rule[parse.Token]{Name: r.Name, Pattern: r.Pattern, Action: lex.Skip[parse.Token]()}
			continue
		}
		term, ok := termIndex[r.Name]
		if !ok {
			return nil, fmt.Errorf("rule %q has no matching terminal", r.Name)
		}
		rules[i] = lex.Rule[parse.Token]{
			Name:    r.Name,
			Pattern: r.Pattern,
			Action: lex.Func(func(t grammar.Terminal) func([]byte) parse.Token {
				return func(matched []byte) parse.Token {
					return parse.Token{Terminal: t, Lexeme: string(matched)}
				}
			}(term)),
		}
	}
	return lex.NewLexer(rules)
}

// TerminalIndex returns a name -> Terminal mapping for every non-skip
// rule in the bundle, in declaration order.
func (b *Bundle) TerminalIndex() map[string]grammar.Terminal {
	idx := make(map[string]grammar.Terminal)
	for _, r := range b.raw.Rules {
		if r.Skip {
			continue
		}
		if _, ok := idx[r.Name]; !ok {
			idx[r.Name] = grammar.Terminal(len(idx))
		}
	}
	return idx
}

// BuildGrammar assembles a Grammar from the bundle's productions. Every
// head name becomes a nonterminal, in first-seen order with Start pinned
// to nonterminal 0; every body symbol that names a nonterminal resolves
// to one, otherwise it must name a terminal from termIndex.
func (b *Bundle) BuildGrammar(termIndex map[string]grammar.Terminal) (*grammar.Grammar, error) {
	if b.raw.Start == "" {
		return nil, fmt.Errorf("bundle does not specify a start nonterminal")
	}
	ntIndex := map[string]grammar.NonTerminal{b.raw.Start: 0}
	order := []string{b.raw.Start}
	for _, p := range b.raw.Productions {
		if _, ok := ntIndex[p.Head]; !ok {
			ntIndex[p.Head] = grammar.NonTerminal(len(order))
			order = append(order, p.Head)
		}
	}

	g := grammar.New(len(order), len(termIndex))
	for name, t := range termIndex {
		g.SetTerminalName(t, name)
	}
	for i, name := range order {
		g.SetNonTerminalName(grammar.NonTerminal(i), name)
	}

	for _, p := range b.raw.Productions {
		rhs := make([]grammar.Symbol, len(p.Body))
		for i, sym := range p.Body {
			if nt, ok := ntIndex[sym]; ok {
				rhs[i] = grammar.N(nt)
				continue
			}
			t, ok := termIndex[sym]
			if !ok {
				return nil, fmt.Errorf("production %s -> ...: unknown symbol %q", p.Head, sym)
			}
			rhs[i] = grammar.T(t)
		}
		g.AddProduction(ntIndex[p.Head], rhs...)
	}
	return g, nil
}
