package routes_test

import (
	"testing"

	"github.com/katalvlaran/cvrp/core"
	"github.com/katalvlaran/cvrp/routes"
)

func benchInstance(n int) ([]int, map[int]int, *core.Graph) {
	g := core.NewGraph()
	locs := make([]int, n)
	dem := make(map[int]int, n)
	for i := 1; i <= n; i++ {
		locs[i-1] = i
		dem[i] = 1 + i%3
		for j := 0; j <= n; j++ {
			if i != j {
				g.AddEdge(i, j, 1+(i*7+j*3)%11)
				g.AddEdge(j, i, 1+(j*7+i*3)%11)
			}
		}
	}

	return locs, dem, g
}

func BenchmarkGenerate12(b *testing.B) {
	locs, dem, g := benchInstance(12)
	opts := routes.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := routes.Generate(locs, dem, g, opts); err != nil {
			b.Fatal(err)
		}
	}
}
