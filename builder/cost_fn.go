package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeCost is the edge cost used when no CostFn is configured.
const DefaultEdgeCost = 1

// DefaultDemand is the location demand used when no DemandFn is configured.
const DefaultDemand = 1

// CostFn produces an edge cost from an optional RNG.
// It must be deterministic for a given RNG state.
type CostFn func(rng *rand.Rand) int

// DemandFn produces a location demand from an optional RNG.
type DemandFn func(rng *rand.Rand) int

// ConstantFn always yields value. Panics if value < 0.
func ConstantFn(value int) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("builder: ConstantFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int { return value }
}

// UniformFn samples uniformly in [min, max] inclusive. Panics unless
// 0 ≤ min ≤ max. A nil rng yields min, keeping the output deterministic.
func UniformFn(min, max int) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: UniformFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Intn(max-min+1)
	}
}
