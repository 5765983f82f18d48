package routes

import (
	"errors"
	"math/bits"
)

// maxMaskWidth bounds n so that 1<<n and the uint64 masks never overflow.
const maxMaskWidth = 62

// Sentinel errors returned by Generate.
var (
	// ErrNilGraph is returned when Generate receives a nil graph.
	ErrNilGraph = errors.New("routes: graph is nil")

	// ErrBadCapacity is returned for a negative vehicle capacity.
	ErrBadCapacity = errors.New("routes: negative capacity")

	// ErrTooManyLocations is returned when n exceeds the bitmask width.
	ErrTooManyLocations = errors.New("routes: too many locations for bitmask enumeration")

	// ErrSearchSpaceTooLarge is returned when an opt-in size guard trips.
	ErrSearchSpaceTooLarge = errors.New("routes: search space too large")

	// ErrDuplicateLocation is returned when a location id appears twice.
	ErrDuplicateLocation = errors.New("routes: duplicate location id")

	// ErrDepotInLocations is returned when the depot id is listed as a location.
	ErrDepotInLocations = errors.New("routes: depot listed as a location")
)

// Validity selects how a subset's ascending listing is checked against the graph.
type Validity int

const (
	// TourValidity checks depot→stops→depot and prices routes strictly.
	TourValidity Validity = iota
	// PairValidity checks inner pairs only and prices routes leniently.
	PairValidity
)

// String implements fmt.Stringer.
func (v Validity) String() string {
	switch v {
	case TourValidity:
		return "tour"
	case PairValidity:
		return "pair"
	default:
		return "unknown"
	}
}

// ParseValidity maps "tour"/"pair" to a Validity.
func ParseValidity(s string) (Validity, bool) {
	switch s {
	case "tour", "":
		return TourValidity, true
	case "pair":
		return PairValidity, true
	default:
		return 0, false
	}
}

// Options configures Generate.
//
// Capacity      – vehicle capacity; a route is kept iff its demand ≤ Capacity.
// Validity      – graph validity policy (TourValidity by default).
// MaxLocations  – if > 0, fail with ErrSearchSpaceTooLarge when n exceeds it.
// MaxCandidates – if > 0, fail with ErrSearchSpaceTooLarge once more routes are kept.
type Options struct {
	Capacity      int
	Validity      Validity
	MaxLocations  int
	MaxCandidates int
}

// DefaultOptions returns the classic configuration: capacity 10, tour
// validity, no size guards.
func DefaultOptions() Options {
	return Options{
		Capacity: 10,
		Validity: TourValidity,
	}
}

// Route is an ordered list of location ids visited depot→Stops→depot.
// Routes are values: Generate creates them and nothing mutates them later.
type Route struct {
	// Stops lists the visited locations, depot excluded.
	Stops []int `json:"stops" yaml:"stops"`

	// Mask has bit j set when Stops contains the j-th input location.
	Mask uint64 `json:"mask" yaml:"-"`

	// Demand is the total demand served by the route.
	Demand int `json:"demand" yaml:"demand"`

	// Cost is the closed-tour cost including both depot hops.
	Cost int `json:"cost" yaml:"cost"`
}

// Len returns the number of stops.
func (r Route) Len() int { return len(r.Stops) }

// Contains reports whether id is one of the route's stops.
func (r Route) Contains(id int) bool {
	for _, s := range r.Stops {
		if s == id {
			return true
		}
	}

	return false
}

// Set is the candidate route set in generation order.
type Set struct {
	// Routes is ordered by ascending generating mask.
	Routes []Route `json:"routes"`

	// Locations is the input location list; bit j of a mask refers to Locations[j].
	Locations []int `json:"locations"`

	// FullMask has one bit per location; a combination covers iff its union equals it.
	FullMask uint64 `json:"full_mask"`
}

// Len returns the number of candidate routes.
func (s *Set) Len() int { return len(s.Routes) }

// Covers reports whether mask equals the full location set.
func (s *Set) Covers(mask uint64) bool { return mask == s.FullMask }

// Union ORs the masks of rs.
func Union(rs []Route) uint64 {
	var m uint64
	for _, r := range rs {
		m |= r.Mask
	}

	return m
}

// Covered returns the number of distinct locations in mask.
func Covered(mask uint64) int { return bits.OnesCount64(mask) }

// NewSet assembles a Set from already generated routes, e.g. after they were
// shipped to a remote worker. Route order is preserved.
func NewSet(locations []int, rs []Route) *Set {
	return &Set{
		Routes:    rs,
		Locations: append([]int(nil), locations...),
		FullMask:  fullMask(len(locations)),
	}
}

// fullMask returns a mask with the lowest n bits set.
func fullMask(n int) uint64 {
	if n == 0 {
		return 0
	}

	return (uint64(1) << uint(n)) - 1
}
