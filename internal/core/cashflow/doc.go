// Package cashflow derives read-only views from a transaction snapshot: filtered lists,
// period totals, category budget consumption, the running-balance timeline, near-term
// alerts and period-over-period comparisons.
//
// Every function is a pure computation over its arguments. Nothing in this package
// performs I/O, keeps state between calls, or mutates the transactions it is given, so
// independent views of one snapshot may be computed concurrently.
package cashflow
