package pure_test

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/on-the-ground/pure_ive_go/pure"
	"github.com/stretchr/testify/assert"
)

func TestTableize_SingleOutput(t *testing.T) {
	calls := map[string]int{}

	square := pure.TableizeI1O1(func(x float64) float64 {
		calls["square"]++
		return x * x
	}, 4)
	rect := pure.TableizeI2O1(func(w, h float64) float64 {
		calls["rect"]++
		return w * h
	}, 4)
	perimeter := pure.TableizeI3O1(func(a, b, c float64) float64 {
		calls["perimeter"]++
		return a + b + c
	}, 4)
	quad := pure.TableizeI4O1(func(a, b, c, d int) int {
		calls["quad"]++
		return a + b + c + d
	}, 4)

	for range 3 {
		assert.Equal(t, 25.0, square(5))
		assert.Equal(t, 24.0, rect(4, 6))
		assert.Equal(t, 12.0, perimeter(3, 4, 5))
		assert.Equal(t, 10, quad(1, 2, 3, 4))
	}

	assert.Equal(t, map[string]int{"square": 1, "rect": 1, "perimeter": 1, "quad": 1}, calls)
}

func TestTableize_ArgumentsAreDistinct(t *testing.T) {
	count := 0
	sub := pure.TableizeI2O1(func(a, b int) int {
		count++
		return a - b
	}, 8)

	assert.Equal(t, 1, sub(3, 2))
	assert.Equal(t, -1, sub(2, 3))
	assert.Equal(t, 2, count)
}

func TestTableize_DualOutput(t *testing.T) {
	count := 0
	divmod := pure.TableizeI2O2(func(a, b int) (int, int) {
		count++
		return a / b, a % b
	}, 2)

	q, r := divmod(17, 5)
	assert.Equal(t, 3, q)
	assert.Equal(t, 2, r)
	q, r = divmod(17, 5)
	assert.Equal(t, 3, q)
	assert.Equal(t, 2, r)
	assert.Equal(t, 1, count)

	sqrt := pure.TableizeI1O2(func(x float64) (float64, bool) {
		count++
		if x < 0 {
			return 0, false
		}
		return math.Sqrt(x), true
	}, 2)
	v, ok := sqrt(16)
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)
	_, ok = sqrt(-1)
	assert.False(t, ok)
	_, _ = sqrt(16)
	assert.Equal(t, 3, count)

	heron := pure.TableizeI3O2(func(a, b, c float64) (float64, string) {
		count++
		s := (a + b + c) / 2
		return math.Sqrt(s * (s - a) * (s - b) * (s - c)), "triangle"
	}, 2)
	area, label := heron(3, 4, 5)
	assert.Equal(t, 6.0, area)
	assert.Equal(t, "triangle", label)
	_, _ = heron(3, 4, 5)
	assert.Equal(t, 4, count)

	box := pure.TableizeI4O2(func(x, y, w, h int) (int, int) {
		count++
		return x + w, y + h
	}, 2)
	x2, y2 := box(1, 2, 3, 4)
	assert.Equal(t, 4, x2)
	assert.Equal(t, 6, y2)
	_, _ = box(1, 2, 3, 4)
	assert.Equal(t, 5, count)
}

type labels struct {
	names []string // slices are not comparable
}

func (l labels) String() string {
	return fmt.Sprintf("labels%v", l.names)
}

func TestTableize_StringerFallback(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O1(func(l labels) int {
		count++
		return len(l.names)
	}, 2)

	assert.Equal(t, 3, fn(labels{names: []string{"a", "b", "c"}}))
	assert.Equal(t, 3, fn(labels{names: []string{"a", "b", "c"}}))
	assert.Equal(t, 1, count)
}

type opaque struct {
	names []string
}

func TestTableize_PanicsOnUnkeyableInput(t *testing.T) {
	fn := pure.TableizeI1O1(func(o opaque) int {
		return len(o.names)
	}, 2)

	assert.Panics(t, func() { _ = fn(opaque{names: []string{"a"}}) })
}

func TestTableize_ConcurrentCallers(t *testing.T) {
	for _, backend := range []pure.Backend{pure.BackendTrie, pure.BackendRistretto} {
		t.Run(string(backend), func(t *testing.T) {
			scope := pure.NewScope()
			defer scope.Close()

			var calls atomic.Int64
			area := pure.TableizeI2O2(func(w, h int) (int, int) {
				calls.Add(1)
				return w * h, 2 * (w + h)
			}, 4, pure.WithBackend(backend), pure.WithScope(scope))

			var wg sync.WaitGroup
			for g := range 32 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := range 100 {
						w, h := (g+i)%10, i%7
						a, p := area(w, h)
						assert.Equal(t, w*h, a)
						assert.Equal(t, 2*(w+h), p)
					}
				}()
			}
			wg.Wait()

			assert.Positive(t, calls.Load())
			assert.LessOrEqual(t, calls.Load(), int64(32*100))
		})
	}
}
