package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetween(t *testing.T) {
	p := Between(Parser[byte](AnyByte), '[', ']')

	v, rest, ok := p([]byte("[a]"))
	assert.True(t, ok)
	assert.Equal(t, byte('a'), v)
	assert.Empty(t, rest)

	_, _, ok = p([]byte("[ab]"))
	assert.False(t, ok)
}

func TestIntersperse(t *testing.T) {
	p := Intersperse(Parser[byte](AnyByte), ',')

	v, rest, ok := p([]byte("a"))
	assert.True(t, ok)
	assert.Equal(t, []byte{'a'}, v)
	assert.Empty(t, rest)

	v, rest, ok = p([]byte("a,b,c"))
	assert.True(t, ok)
	assert.Equal(t, []byte{'a', 'b', 'c'}, v)
	assert.Empty(t, rest)

	_, _, ok = p([]byte(""))
	assert.False(t, ok)
}

func TestOrDoesNotLeakPartialConsumption(t *testing.T) {
	// p consumes "ab" then fails on the third byte; q should see the
	// ORIGINAL input, not whatever p left behind.
	p := Then(Satisfy('a'), Then(Satisfy('b'), Satisfy('z')))
	q := Satisfy('a')

	combined := Or(Map(p, func(struct{}) int { return 1 }), Map(q, func(struct{}) int { return 2 }))

	v, rest, ok := combined([]byte("abc"))
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, []byte("bc"), rest)
}

func TestCollectAlwaysSucceeds(t *testing.T) {
	p := Collect(Satisfy('x'))
	v, rest, ok := p([]byte("yyy"))
	assert.True(t, ok)
	assert.Empty(t, v)
	assert.Equal(t, []byte("yyy"), rest)
}

func TestDeferRecursion(t *testing.T) {
	// balanced matches a single 'a' nested inside n pairs of brackets and
	// returns n: "a" | "[" balanced "]"
	var self Parser[int]
	balanced := Or(
		Map(Satisfy('a'), func(struct{}) int { return 0 }),
		Map(Between(Defer(&self), '[', ']'), func(n int) int { return n + 1 }),
	)
	self = balanced

	v, rest, ok := self([]byte("[[a]]"))
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Empty(t, rest)
}
