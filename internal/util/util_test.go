package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeTextList(t *testing.T) {
	testCases := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"one", []string{"id"}, "id"},
		{"two", []string{"id", "number"}, "id or number"},
		{"three", []string{"id", "number", "string"}, "id, number, or string"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MakeTextList(tc.items))
		})
	}
}

func TestArticleFor(t *testing.T) {
	assert.Equal(t, "a", ArticleFor("id", false))
	assert.Equal(t, "an", ArticleFor("expression", false))
	assert.Equal(t, "An", ArticleFor("expression", true))
}

func TestBitSetUnionAndEqual(t *testing.T) {
	a := NewBitSet()
	a.Add(1)
	a.Add(3)

	b := NewBitSet()
	b.Add(3)
	b.Add(5)

	a.Union(b)
	assert.ElementsMatch(t, []int{1, 3, 5}, a.Elements())

	other := NewBitSet()
	other.Add(1)
	other.Add(3)
	other.Add(5)
	assert.True(t, a.Equal(other))
}

func TestStackPushPopPeek(t *testing.T) {
	var s Stack[int]
	assert.True(t, s.Empty())
	s.Push(1)
	s.Push(2)
	assert.Equal(t, 2, s.Peek())
	assert.Equal(t, 2, s.Pop())
	assert.Equal(t, 1, s.Pop())
	assert.True(t, s.Empty())
}
