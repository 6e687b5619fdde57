package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cityroute/core"
)

// BenchmarkAddEdge_Chain measures graph population on a linear chain.
func BenchmarkAddEdge_Chain(b *testing.B) {
	const N = 10000
	names := make([]string, N+1)
	for i := range names {
		names[i] = fmt.Sprintf("v%d", i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		for j := 0; j < N; j++ {
			_ = g.AddEdge(names[j], names[j+1], int64(j%50+1))
		}
	}
}

// BenchmarkLookup measures name→id resolution on a populated graph.
func BenchmarkLookup(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for j := 0; j < N; j++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", j), fmt.Sprintf("v%d", j+1), 1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = g.Lookup("v9999")
	}
}
