package cover

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cvrp/routes"
)

// Search runs the exhaustive include/exclude search over the whole set.
//
// Errors: ErrNilSet, ErrNoFeasibleCover (unless opts.Sentinel), ErrCanceled,
// ErrTimeLimit. On cancellation the Result still holds the incumbent.
//
// Complexity: O(2^K) nodes worst case, O(K) stack.
func Search(ctx context.Context, set *routes.Set, opts Options) (Result, error) {
	return SearchPrefix(ctx, set, 0, nil, opts)
}

// SearchFrom runs the same search with the cursor starting at start, so
// candidates before start are never considered. A start equal to K searches
// only the empty combination.
func SearchFrom(ctx context.Context, set *routes.Set, start int, opts Options) (Result, error) {
	return SearchPrefix(ctx, set, start, nil, opts)
}

// SearchPrefix resumes the search at start with the candidates in prefix
// already included. prefix must be strictly increasing and lie before start.
func SearchPrefix(ctx context.Context, set *routes.Set, start int, prefix []int, opts Options) (Result, error) {
	e, err := prepare(ctx, set, start, prefix, opts)
	if err != nil {
		return Result{Solution: Empty()}, err
	}

	return Finalize(e.run(start, prefix), e.stop, opts)
}

// SearchBounded is the opt-in branch-and-bound variant of Search: a branch is
// cut as soon as its accumulated cost reaches the incumbent. All candidate
// costs must be non-negative.
func SearchBounded(ctx context.Context, set *routes.Set, opts Options) (Result, error) {
	e, err := prepare(ctx, set, 0, nil, opts)
	if err != nil {
		return Result{Solution: Empty()}, err
	}
	for i, r := range set.Routes {
		if r.Cost < 0 {
			return Result{Solution: Empty()}, fmt.Errorf("candidate %d cost %d: %w", i, r.Cost, ErrNegativeCost)
		}
	}
	e.bounded = true

	return Finalize(e.run(0, nil), e.stop, opts)
}

// Finalize turns a raw Result into the public outcome: stop errors pass
// through with the incumbent, an empty result becomes ErrNoFeasibleCover
// unless opts.Sentinel is set.
func Finalize(res Result, stop error, opts Options) (Result, error) {
	if stop != nil {
		return res, stop
	}
	if !res.Found {
		res.Solution = Empty()
		if opts.Sentinel {
			return res, nil
		}

		return res, ErrNoFeasibleCover
	}

	return res, nil
}

func prepare(ctx context.Context, set *routes.Set, start int, prefix []int, opts Options) (*engine, error) {
	if set == nil {
		return nil, ErrNilSet
	}
	if ctx == nil {
		ctx = context.Background()
	}
	k := set.Len()
	if start < 0 || start > k {
		return nil, fmt.Errorf("start=%d K=%d: %w", start, k, ErrBadStart)
	}
	prev := -1
	for _, idx := range prefix {
		if idx <= prev || idx >= start {
			return nil, fmt.Errorf("prefix %v start=%d: %w", prefix, start, ErrBadPrefix)
		}
		prev = idx
	}

	return newEngine(ctx, set, opts), nil
}
