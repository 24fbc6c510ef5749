package automaton

import (
	"strings"
	"testing"

	"github.com/dekarrin/ictiobus/regex"
	"github.com/stretchr/testify/assert"
)

func TestDFAStringRendersStateTable(t *testing.T) {
	ir, err := regex.Compile(`abc`)
	assert.NoError(t, err)
	b := NewNFABuilder()
	b.AddIR(ir)
	d := NewDFA(b.Build())

	out := d.String()
	assert.True(t, strings.Contains(out, "state"))
	assert.True(t, strings.Contains(out, "(start)"))
}
