// Package jobsearch implements faceted search over a job collection.
//
// Both entry points are pure functions over caller-owned snapshots:
//
//	facets := jobsearch.ComputeFacets(jobs)          // once per collection change
//	visible := jobsearch.FilterAndSort(jobs, state)  // on every filter change
//
// Facet counts always reflect the full collection, not the filtered view.
// Missing optional fields never cause an error: they simply do not match,
// sort last, or contribute zero.
package jobsearch
