package main

import (
	"testing"

	"github.com/dekarrin/ictiobus/parse"
	"github.com/stretchr/testify/assert"
)

func TestLoadBundleBuildsAndParsesArith(t *testing.T) {
	b, err := LoadBundle("testdata/arith.toml")
	assert.NoError(t, err)

	termIndex := b.TerminalIndex()
	lx, err := b.BuildLexer(termIndex)
	assert.NoError(t, err)

	g, err := b.BuildGrammar(termIndex)
	assert.NoError(t, err)

	firsts := g.ComputeFirst()
	ca := parse.BuildCharacteristicAutomaton(g)
	lookaheads := parse.ComputeLookaheads(g, firsts, ca)
	tbl, err := parse.NewTable(g, firsts, ca, lookaheads)
	assert.NoError(t, err)

	tokens, err := lx.Tokenize([]byte("a + b * (c)"))
	assert.NoError(t, err)
	assert.Len(t, tokens, 7)

	root, err := parse.Parse(g, tbl, tokens)
	assert.NoError(t, err)
	assert.False(t, root.IsLeaf)
}

func TestLoadBundleMissingFileFails(t *testing.T) {
	_, err := LoadBundle("testdata/does-not-exist.toml")
	assert.Error(t, err)
}
