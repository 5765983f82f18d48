// Package report renders solver outcomes: a console listing of the chosen
// routes, a YAML document for tooling, and the per-instance elapsed-time
// file used to compare runs of different strategies.
package report
