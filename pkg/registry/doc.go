// Package registry is C5, the request dispatcher and public API (spec.md
// §4.5/§6.3): a Registry context bundles the root-keys table, the handle
// service, and the current_level/saving_level/saving_version globals
// (spec.md §9 "Global mutable state... group them into a single registry
// context value"), and exposes one method per named request.
//
// Grounded on the teacher's pkg/hive — a thin public package whose job is
// orchestration and re-exporting, not owning algorithms the lower packages
// (internal/keytree, internal/path, internal/regtext, internal/roots,
// internal/handle) already implement.
package registry
