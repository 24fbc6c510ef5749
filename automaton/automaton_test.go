package automaton

import (
	"fmt"
	"testing"

	"github.com/dekarrin/ictiobus/regex"
	"github.com/stretchr/testify/assert"
)

func irSimple1() regex.IR {
	a, err := regex.Compile("(a*b)?")
	if err != nil {
		panic(err)
	}
	return a
}

func irSimple2() regex.IR {
	a, err := regex.Compile("abc")
	if err != nil {
		panic(err)
	}
	return a
}

// irDivisibleByThree matches binary strings that are multiples of 3.
func irDivisibleByThree() regex.IR {
	a, err := regex.Compile(`(0|1(01*0)*1)*`)
	if err != nil {
		panic(err)
	}
	return a
}

func buildDFA(ir regex.IR) *DFA {
	b := NewNFABuilder()
	b.AddIR(ir)
	return NewDFA(b.Build())
}

func TestNFAAcceptSimple1(t *testing.T) {
	b := NewNFABuilder()
	b.AddIR(irSimple1())
	nfa := b.Build()
	assert.True(t, nfaAccept(nfa, ""))
	assert.True(t, nfaAccept(nfa, "aaab"))
	assert.False(t, nfaAccept(nfa, "c"))
	assert.False(t, nfaAccept(nfa, "abab"))
}

func TestNFAAcceptSimple2(t *testing.T) {
	b := NewNFABuilder()
	b.AddIR(irSimple2())
	nfa := b.Build()
	assert.False(t, nfaAccept(nfa, ""))
	assert.True(t, nfaAccept(nfa, "abc"))
	assert.False(t, nfaAccept(nfa, "abcd"))
	assert.False(t, nfaAccept(nfa, "cba"))
}

func TestNFAAcceptDivisibleByThree(t *testing.T) {
	b := NewNFABuilder()
	b.AddIR(irDivisibleByThree())
	nfa := b.Build()
	for x := 0; x < 20; x++ {
		s := fmt.Sprintf("%b", x)
		assert.Equal(t, x%3 == 0, nfaAccept(nfa, s), "x=%d s=%s", x, s)
	}
}

func TestDFAAcceptSimple1(t *testing.T) {
	dfa := buildDFA(irSimple1())
	assert.Equal(t, 3, dfa.NumStates())
	assert.True(t, dfa.Accept([]byte("")))
	assert.True(t, dfa.Accept([]byte("aaab")))
	assert.False(t, dfa.Accept([]byte("c")))
	assert.False(t, dfa.Accept([]byte("abab")))
}

func TestDFAAcceptSimple2(t *testing.T) {
	dfa := buildDFA(irSimple2())
	assert.Equal(t, 4, dfa.NumStates())
	assert.False(t, dfa.Accept([]byte("")))
	assert.True(t, dfa.Accept([]byte("abc")))
	assert.False(t, dfa.Accept([]byte("abcd")))
	assert.False(t, dfa.Accept([]byte("cba")))
}

func TestDFAAcceptDivisibleByThree(t *testing.T) {
	dfa := buildDFA(irDivisibleByThree())
	assert.Equal(t, 3, dfa.NumStates())
	for x := 0; x < 20; x++ {
		s := fmt.Sprintf("%b", x)
		assert.Equal(t, x%3 == 0, dfa.Accept([]byte(s)), "x=%d s=%s", x, s)
	}
}

func TestDFALongestMatch(t *testing.T) {
	dfa := buildDFA(irSimple2())
	m, ok := dfa.LongestMatch([]byte("abcd"))
	assert.True(t, ok)
	assert.Equal(t, 3, m.Length)
}

func TestDFAStartStateIsZero(t *testing.T) {
	dfa := buildDFA(irDivisibleByThree())
	assert.Equal(t, 0, dfa.InitialState())
}

func TestDFAAcceptEmailPattern(t *testing.T) {
	ir, err := regex.Compile(`(\w)+(\.(\w)+)?@(\w|\-)+\.(\w)+`)
	assert.NoError(t, err)
	dfa := buildDFA(ir)

	assert.True(t, dfa.Accept([]byte("xumarcus.sg@gmail.com")))
	assert.True(t, dfa.Accept([]byte("email123@example-one.com")))
	assert.False(t, dfa.Accept([]byte("notan.email@com")))
	assert.False(t, dfa.Accept([]byte("email@example..com")))
}

func nfaAccept(nfa *NFA, s string) bool {
	q := nfa.InitialState()
	for i := 0; i < len(s); i++ {
		next, ok := nfa.Transition(q, s[i])
		if !ok {
			return false
		}
		q = next
	}
	_, ok := nfa.Category(q)
	return ok
}
