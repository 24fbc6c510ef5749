package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLiteralConcat(t *testing.T) {
	a, err := Parse("abc")
	assert.NoError(t, err)
	assert.Equal(t, ASTConcat, a.Kind)
	assert.Len(t, a.Kids, 3)
}

func TestParseAlternation(t *testing.T) {
	a, err := Parse("a|b")
	assert.NoError(t, err)
	assert.Equal(t, ASTAlternation, a.Kind)
	assert.Len(t, a.Kids, 2)
}

func TestParseGroupAndOptional(t *testing.T) {
	a, err := Parse("(a*b)?")
	assert.NoError(t, err)
	assert.Equal(t, ASTQnMk, a.Kind)
	assert.Equal(t, ASTConcat, a.Child.Kind)
}

func TestParseCharClass(t *testing.T) {
	a, err := Parse("[a-z_]")
	assert.NoError(t, err)
	assert.Equal(t, ASTClass, a.Kind)
	assert.False(t, a.Class.Negated)
	assert.Len(t, a.Class.Items, 2)
}

func TestParseNegatedCharClass(t *testing.T) {
	a, err := Parse("[^0-9]")
	assert.NoError(t, err)
	assert.True(t, a.Class.Negated)
}

func TestParseEscapedDashIsLiteral(t *testing.T) {
	a, err := Parse(`\-`)
	assert.NoError(t, err)
	assert.Equal(t, ASTClass, a.Kind)
	assert.Equal(t, byte('-'), a.Class.Items[0].Single)
}

func TestParseMetaEscapes(t *testing.T) {
	a, err := Parse(`\d\h\l\s\w`)
	assert.NoError(t, err)
	assert.Equal(t, ASTConcat, a.Kind)
	assert.Len(t, a.Kids, 5)
}

func TestParseDot(t *testing.T) {
	a, err := Parse(".")
	assert.NoError(t, err)
	assert.True(t, a.Class.Dot)
}

func TestParseEmptyPatternFails(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)
}

func TestParseTrailingGarbageFails(t *testing.T) {
	_, err := Parse("a)")
	assert.Error(t, err)
}

func TestParseDivisibleByThreeBinary(t *testing.T) {
	// classic divisible-by-3 binary string regex, from the spec's worked
	// example in §8.
	_, err := Parse(`(0|1(01*0)*1)*`)
	assert.NoError(t, err)
}

func TestLowerPlusAndQnMk(t *testing.T) {
	a, err := Parse("a+b?")
	assert.NoError(t, err)
	ir := Lower(a)
	assert.Equal(t, IRConcat, ir.Kind)
	assert.Len(t, ir.Kids, 2)
	assert.Equal(t, IRConcat, ir.Kids[0].Kind) // Plus -> Concat[x, Star(x)]
	assert.Equal(t, IRUnion, ir.Kids[1].Kind)  // QnMk -> Union[Empty, x]
}

func TestClassBytesNegation(t *testing.T) {
	a, _ := Parse("[^a]")
	bytes := classBytes(a.Class)
	assert.False(t, bytes.Has('a'))
	assert.True(t, bytes.Has('b'))
}

func TestDotBytesExcludesNewline(t *testing.T) {
	bytes := DotBytes()
	assert.False(t, bytes.Has('\n'))
	assert.True(t, bytes.Has('a'))
}
