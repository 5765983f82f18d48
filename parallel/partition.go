package parallel

// Range is the candidate slice [Start, End) owned by one rank.
type Range struct {
	Rank  int `json:"rank"`
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

// Partition splits k candidates into workers contiguous chunks of k/workers,
// the last rank taking the remainder. workers < 1 is treated as 1.
//
// With k < workers every rank but the last gets an empty range.
func Partition(k, workers int) []Range {
	if workers < 1 {
		workers = 1
	}
	chunk := k / workers
	out := make([]Range, workers)
	for rank := 0; rank < workers; rank++ {
		out[rank] = Range{Rank: rank, Start: rank * chunk, End: (rank + 1) * chunk}
	}
	out[workers-1].End = k

	return out
}
