package pure_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/pure_ive_go/pure"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkTableizedFib20(b *testing.B) {
	for _, backend := range []pure.Backend{pure.BackendTrie, pure.BackendRistretto} {
		b.Run(string(backend), func(b *testing.B) {
			scope := pure.NewScope()
			defer scope.Close()

			var fib func(int) int
			fib = pure.TableizeI1O1(func(n int) int {
				if n <= 1 {
					return n
				}
				return fib(n-1) + fib(n-2)
			}, 32, pure.WithBackend(backend), pure.WithScope(scope))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = fib(20)
			}
		})
	}
}

func BenchmarkTableizedLevenshtein(b *testing.B) {
	for _, size := range []uint32{2, 8, 32} {
		b.Run(fmt.Sprintf("TrieSize_%d", size), func(b *testing.B) {
			var lev func(string, string) int
			lev = pure.TableizeI2O1(func(x, y string) int {
				if len(x) == 0 {
					return len(y)
				}
				if len(y) == 0 {
					return len(x)
				}
				if x[0] == y[0] {
					return lev(x[1:], y[1:])
				}
				return 1 + min(lev(x[1:], y), lev(x, y[1:]), lev(x[1:], y[1:]))
			}, size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = lev("kitten", "sitting")
			}
		})
	}
}
