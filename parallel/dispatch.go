package parallel

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cvrp/cover"
	"github.com/katalvlaran/cvrp/routes"
)

// SearchPartitioned dispatches on spec.Strategy.
//
// Errors: ErrUnknownStrategy, ErrBoundedStrategy, and everything cover.Search
// returns.
func SearchPartitioned(ctx context.Context, set *routes.Set, spec Spec) (cover.Result, error) {
	if spec.Bounded && spec.Strategy != Sequential {
		return cover.Result{Solution: cover.Empty()}, fmt.Errorf("%s: %w", spec.Strategy, ErrBoundedStrategy)
	}

	switch spec.Strategy {
	case Sequential:
		if spec.Bounded {
			return cover.SearchBounded(ctx, set, spec.Search)
		}

		return cover.Search(ctx, set, spec.Search)
	case IndexRange:
		return SearchIndexRange(ctx, set, spec)
	case TaskParallel:
		return SearchTasks(ctx, set, spec)
	default:
		return cover.Result{Solution: cover.Empty()}, fmt.Errorf("%s: %w", spec.Strategy, ErrUnknownStrategy)
	}
}
