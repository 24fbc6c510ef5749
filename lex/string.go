package lex

import (
	"strconv"

	"github.com/dekarrin/rosed"
)

// String renders the lexer's rule table for debugging: each rule's name
// and source pattern, in declaration order, followed by the compiled
// DFA's own transition table.
func (lx *Lexer[T]) String() string {
	data := [][]string{{"#", "rule", "pattern"}}
	for i, name := range lx.names {
		data = append(data, []string{strconv.Itoa(i), name, lx.patterns[i]})
	}

	rules := rosed.
		Edit("").
		InsertTableOpts(0, data, 40, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()

	return rules + "\n" + lx.dfa.String()
}
