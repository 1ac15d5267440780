// Package collection provides Container, an ordered positional sequence of
// values of one type with functional views.
//
// Positions are zero-based and contiguous. Removing an element shifts every
// later element down by one, so a cached position is stale after any removal
// at or before it.
//
// Every derived view (All, Values, Filter, Map, Fold, Slice) works on a copy
// of the elements taken when the view is requested. Later Add or Remove calls
// never show through an outstanding view. A Container is not safe for
// concurrent mutation.
package collection

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

type Container[T any] struct {
	items []T
}

// New returns an empty container.
func New[T any]() *Container[T] {
	return &Container[T]{items: make([]T, 0)}
}

// Of returns a container holding a copy of items, in order.
func Of[T any](items ...T) *Container[T] {
	return &Container[T]{items: slices.Clone(items)}
}

func (c *Container[T]) Add(item T) {
	c.items = append(c.items, item)
}

// Remove deletes the element at i and returns it. An out-of-range position
// returns the zero value and false and leaves the container untouched.
func (c *Container[T]) Remove(i int) (T, bool) {
	if !c.inRange(i) {
		var zero T
		return zero, false
	}
	item := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)
	return item, true
}

func (c *Container[T]) Get(i int) (T, bool) {
	if !c.inRange(i) {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

func (c *Container[T]) Len() int {
	return len(c.items)
}

func (c *Container[T]) IsEmpty() bool {
	return len(c.items) == 0
}

// All yields position/element pairs in insertion order.
func (c *Container[T]) All() iter.Seq2[int, T] {
	return slices.All(c.Slice())
}

// Values yields elements in insertion order.
func (c *Container[T]) Values() iter.Seq[T] {
	return slices.Values(c.Slice())
}

// Filter returns the elements satisfying predicate, in their original order.
func (c *Container[T]) Filter(predicate func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range c.Slice() {
		if predicate(item) {
			out = append(out, item)
		}
	}
	return out
}

// Slice returns a copy of the elements.
func (c *Container[T]) Slice() []T {
	return slices.Clone(c.items)
}

func (c *Container[T]) String() string {
	parts := make([]string, len(c.items))
	for i, item := range c.items {
		parts[i] = fmt.Sprint(item)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (c *Container[T]) inRange(i int) bool {
	return i >= 0 && i < len(c.items)
}

// Map applies transform to every element in order. It is a function rather
// than a method because methods cannot declare their own type parameters.
func Map[T, R any](c *Container[T], transform func(T) R) []R {
	src := c.Slice()
	out := make([]R, len(src))
	for i, item := range src {
		out[i] = transform(item)
	}
	return out
}

// Fold threads acc through every element in order.
func Fold[T, A any](c *Container[T], init A, fn func(A, T) A) A {
	acc := init
	for _, item := range c.Slice() {
		acc = fn(acc, item)
	}
	return acc
}
