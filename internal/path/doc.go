// Package path implements C3, the path resolver (spec.md §4.3): a
// backslash-separated path tokenizer plus the Open/Create/Delete algorithms
// that drive internal/keytree's sorted child array.
//
// The tokenizer is an explicit struct (Tokenizer), not function-local static
// storage, per spec.md §9's note that the source's get_path_token keeps
// parsing state in static storage and a reimplementation must make that
// state an explicit, reentrant-safe object. Each call chain constructs one
// Tokenizer and calls Next() until it returns ok=false.
package path
