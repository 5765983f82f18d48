package cover_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/cvrp/cover"
)

func BenchmarkSearch_Singletons16(b *testing.B) {
	set := singletons(16)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cover.Search(ctx, set, cover.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearchBounded_Singletons16(b *testing.B) {
	set := singletons(16)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cover.SearchBounded(ctx, set, cover.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
