// Package instance reads and writes CVRP instance files.
//
// Text format (whitespace separated integers):
//
//	N                     node count including the depot
//	id demand             N−1 lines
//	K                     edge count
//	from to cost          K lines, directed
//
// The location list is always 1..N−1 in ascending order, whatever ids the
// demand lines carry; a demand line for an id outside that range is kept in
// the demand map but never visited. Files ending in .yaml or .yml hold the
// same data as a YAML document.
package instance
