package lex

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexMultiSimple(t *testing.T) {
	lx, err := NewLexer([]Rule[int]{
		{Name: "a", Pattern: "a", Action: Constant(0)},
		{Name: "b", Pattern: "b", Action: Constant(1)},
	})
	assert.NoError(t, err)

	v, _, produced, err := lx.Next([]byte("a"))
	assert.NoError(t, err)
	assert.True(t, produced)
	assert.Equal(t, 0, v)

	v, _, produced, err = lx.Next([]byte("b"))
	assert.NoError(t, err)
	assert.True(t, produced)
	assert.Equal(t, 1, v)
}

func TestLexMultiNumbers(t *testing.T) {
	rules := []Rule[int]{
		{Name: "triple-digit", Pattern: `\d\d\d`, Action: Constant(42)},
		{Name: "signed-int", Pattern: `(\-)?[123456789](\d)+`, Action: Func(func(b []byte) int {
			n, err := strconv.Atoi(string(b))
			if err != nil {
				panic(err)
			}
			return n
		})},
		{Name: "zero-leading", Pattern: `0(\d)+`, Action: Constant(1)},
	}
	lx, err := NewLexer(rules)
	assert.NoError(t, err)

	cases := []struct {
		in   string
		want int
		next byte
	}{
		{"123a", 42, 'a'},
		{"1234a", 1234, 'a'},
		{"-123a", -123, 'a'},
		{"0456a", 1, 'a'},
	}
	for _, c := range cases {
		v, rest, produced, err := lx.Next([]byte(c.in))
		assert.NoError(t, err)
		assert.True(t, produced)
		assert.Equal(t, c.want, v)
		assert.Equal(t, c.next, rest[0])
	}
}

func TestLexEmptyRuleRejected(t *testing.T) {
	_, err := NewLexer([]Rule[int]{
		{Name: "optional", Pattern: "a?", Action: Constant(0)},
	})
	assert.Error(t, err)
}

func TestLexStuckOnUnmatchedInput(t *testing.T) {
	lx, err := NewLexer([]Rule[int]{
		{Name: "a", Pattern: "a", Action: Constant(0)},
	})
	assert.NoError(t, err)
	_, _, _, err = lx.Next([]byte("z"))
	assert.Error(t, err)
}

func TestLexSkipWhitespace(t *testing.T) {
	rules := []Rule[string]{
		{Name: "ws", Pattern: "( |\t|\n)+", Action: Skip[string]()},
		{Name: "word", Pattern: `\l+`, Action: Func(func(b []byte) string { return string(b) })},
	}
	lx, err := NewLexer(rules)
	assert.NoError(t, err)

	toks, err := lx.Tokenize([]byte("foo  bar"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, toks)
}

func TestLexFirstRuleWinsOnTie(t *testing.T) {
	// Both rules match "if" fully; the earlier-declared rule must win.
	rules := []Rule[string]{
		{Name: "kw-if", Pattern: "if", Action: Constant("KW_IF")},
		{Name: "ident", Pattern: `\l+`, Action: Func(func(b []byte) string { return "IDENT:" + string(b) })},
	}
	lx, err := NewLexer(rules)
	assert.NoError(t, err)

	v, _, produced, err := lx.Next([]byte("if"))
	assert.NoError(t, err)
	assert.True(t, produced)
	assert.Equal(t, "KW_IF", v)
}
