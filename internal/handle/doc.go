// Package handle is a narrow stand-in for the host's handle allocator and
// per-process handle table (spec.md §1 "explicitly out of scope... supply
// the operations listed in §6.1"). pkg/registry needs *something* behind
// "resolve hkey via the handle service with a declared access mask" (§6.2)
// to be runnable end to end, so this package provides the minimal contract:
// allocate a handle over a key plus the access mask it was opened with,
// resolve it back checking a caller's required mask, and close it.
//
// Object lifetime is left to the Go garbage collector rather than the
// manual per-key refcounting spec.md §3 describes for the host runtime: a
// *keytree.Key stays reachable as long as any live handle or parent link
// references it, same as that section's own reference-counted lifecycle,
// without this package needing to duplicate it.
package handle
