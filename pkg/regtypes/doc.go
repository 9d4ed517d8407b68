// Package regtypes defines the value types, access rights, error kinds, and
// capacity limits shared by every layer of the registry core: the key tree
// (internal/keytree), the path resolver (internal/path), the text codec
// (internal/regtext), and the request dispatcher (pkg/registry).
//
// Nothing in this package touches the tree itself; it exists so that the
// lower layers and pkg/registry can agree on identifiers (value types,
// access masks, error kinds) without importing each other.
package regtypes
