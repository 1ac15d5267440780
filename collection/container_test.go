package collection_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/on-the-ground/pure_ive_go/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_AddGetLen(t *testing.T) {
	c := collection.New[string]()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())

	words := []string{"Hello", "World", "Rust"}
	for i, w := range words {
		c.Add(w)
		assert.Equal(t, i+1, c.Len())
	}
	assert.False(t, c.IsEmpty())

	for i, w := range words {
		got, ok := c.Get(i)
		require.True(t, ok)
		assert.Equal(t, w, got)
	}

	for _, i := range []int{-1, 3, 100} {
		got, ok := c.Get(i)
		assert.False(t, ok)
		assert.Empty(t, got)
	}
}

func TestContainer_Remove(t *testing.T) {
	c := collection.Of(10, 20, 30, 40)

	got, ok := c.Remove(1)
	require.True(t, ok)
	assert.Equal(t, 20, got)
	assert.Equal(t, 3, c.Len())

	// later elements shifted down by one
	v, _ := c.Get(1)
	assert.Equal(t, 30, v)
	if diff := cmp.Diff([]int{10, 30, 40}, c.Slice()); diff != "" {
		t.Errorf("after remove (-want +got):\n%s", diff)
	}

	for _, i := range []int{-1, 3, 42} {
		got, ok := c.Remove(i)
		assert.False(t, ok)
		assert.Zero(t, got)
		assert.Equal(t, 3, c.Len())
	}

	for c.Len() > 0 {
		_, ok := c.Remove(0)
		require.True(t, ok)
	}
	assert.True(t, c.IsEmpty())
	_, ok = c.Remove(0)
	assert.False(t, ok)
}

func TestContainer_Iteration(t *testing.T) {
	c := collection.Of("a", "b", "c")

	var positions []int
	var values []string
	for i, v := range c.All() {
		positions = append(positions, i)
		values = append(values, v)
	}
	assert.Equal(t, []int{0, 1, 2}, positions)
	assert.Equal(t, []string{"a", "b", "c"}, values)

	// restartable
	seq := c.Values()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	// early break stops the sequence
	var seen []string
	for v := range c.Values() {
		seen = append(seen, v)
		if v == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestContainer_ViewsAreSnapshots(t *testing.T) {
	c := collection.Of(1, 2, 3)

	seq := c.Values()
	c.Add(4)
	_, _ = c.Remove(0)

	assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
	assert.Equal(t, []int{2, 3, 4}, slices.Collect(c.Values()))

	snapshot := c.Slice()
	snapshot[0] = 99
	v, _ := c.Get(0)
	assert.Equal(t, 2, v)

	// Of copies its input
	src := []int{7, 8}
	d := collection.Of(src...)
	src[0] = 0
	v, _ = d.Get(0)
	assert.Equal(t, 7, v)
}

func TestContainer_Filter(t *testing.T) {
	c := collection.Of(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	even := func(n int) bool { return n%2 == 0 }

	got := c.Filter(even)
	for _, n := range got {
		assert.True(t, even(n))
	}
	if diff := cmp.Diff([]int{2, 4, 6, 8, 10}, got); diff != "" {
		t.Errorf("filter order (-want +got):\n%s", diff)
	}

	none := c.Filter(func(int) bool { return false })
	assert.NotNil(t, none)
	assert.Empty(t, none)

	words := collection.Of("Hello", "World", "Rust")
	assert.Equal(t, []string{"Hello", "World"}, words.Filter(func(s string) bool { return len(s) > 4 }))
}

func TestMap(t *testing.T) {
	words := collection.Of("Hello", "World", "Rust")
	lengths := collection.Map(words, func(s string) int { return len(s) })

	require.Len(t, lengths, words.Len())
	for i, n := range lengths {
		w, _ := words.Get(i)
		assert.Equal(t, len(w), n)
	}
	assert.Equal(t, []int{5, 5, 4}, lengths)

	upper := collection.Map(words, strings.ToUpper)
	assert.Equal(t, []string{"HELLO", "WORLD", "RUST"}, upper)

	assert.Empty(t, collection.Map(collection.New[int](), func(n int) int { return n }))
}

func TestFold(t *testing.T) {
	c := collection.Of(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	sum := collection.Fold(c, 0, func(acc, n int) int { return acc + n })
	product := collection.Fold(c, 1, func(acc, n int) int { return acc * n })
	assert.Equal(t, 55, sum)
	assert.Equal(t, 3628800, product)

	joined := collection.Fold(collection.Of("a", "b"), "", func(acc, s string) string { return acc + s })
	assert.Equal(t, "ab", joined)
}

func TestContainer_String(t *testing.T) {
	assert.Equal(t, "[]", collection.New[int]().String())
	assert.Equal(t, "[Hello World]", collection.Of("Hello", "World").String())
}
