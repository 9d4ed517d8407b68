// Package keytree implements the core in-memory data structure of the
// registry: C1 (the per-key, sorted, case-insensitive value array) and C2
// (the key node itself — parent link, sorted child array, flags, class,
// modification timestamp, and saving level) from spec.md §3/§4.1/§4.2.
//
// Both the child array and the value array share one sorted-slice
// implementation (sortedList, in sortedlist.go) with the growth/shrink
// capacity policy from spec.md §4.1: initial capacity 8, grow by 50% when
// full, shrink by a third when under half-full (never below 8). Ordering
// and lookup are case-insensitive over Unicode, using a cached fold key
// (fold.go) computed once per name.
//
// internal/path drives this package's Find/Insert/Remove primitives to
// implement path resolution; this package enforces none of the path-level
// rules (volatile containment, delete-with-children, and so on) — those are
// C3's responsibility per spec.md §4.3.
package keytree
