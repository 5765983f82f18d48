package cover

// Reduce returns the cheapest found Solution among sols. Ties keep the
// earliest argument; missing solutions are ignored. With no found solution
// the result is Empty().
//
// Reduce is the only merge step of every parallel strategy: partial results
// are combined by value after all workers finish.
func Reduce(sols ...Solution) Solution {
	best := Empty()
	for _, s := range sols {
		if s.Better(best) {
			best = s
		}
	}

	return best
}

// ReduceResults reduces the solutions of rs and sums their stats.
func ReduceResults(rs ...Result) Result {
	var out Result
	out.Solution = Empty()
	for _, r := range rs {
		if r.Better(out.Solution) {
			out.Solution = r.Solution
		}
		out.Stats = out.Stats.Add(r.Stats)
	}

	return out
}
