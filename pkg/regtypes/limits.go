package regtypes

// Limits bounds the size of requests accepted by the dispatcher (pkg/registry)
// before they reach the tree. The core spec (spec.md §1) explicitly excludes
// "enforcement of any quota on total size" for the *tree itself*, but a
// request dispatcher still needs to reject pathological single requests
// (e.g. a multi-gigabyte SetValue) with OUTOFMEMORY rather than attempting
// the allocation — this mirrors the teacher's DefaultLimits/StrictLimits/
// RelaxedLimits presets (pkg/ast/limits.go), repurposed from hive-file
// structural limits to per-request guards.
type Limits struct {
	MaxKeyNameLen   int // max length of a single path component
	MaxValueNameLen int // max length of a value name
	MaxValueDataLen int // max length of a value's data buffer
	MaxComponentLen int // max tokenizer component length (internal/path)
}

// DefaultLimits matches the Windows registry's documented limits.
func DefaultLimits() Limits {
	return Limits{
		MaxKeyNameLen:   255,
		MaxValueNameLen: 16383,
		MaxValueDataLen: 1 << 20,
		MaxComponentLen: 255,
	}
}

// RelaxedLimits permits much larger values, for hosts that need to store
// big binary blobs (e.g. precompiled shaders, font caches).
func RelaxedLimits() Limits {
	l := DefaultLimits()
	l.MaxValueDataLen = 10 << 20
	return l
}

// StrictLimits is conservative, for resource-constrained embeddings.
func StrictLimits() Limits {
	return Limits{
		MaxKeyNameLen:   128,
		MaxValueNameLen: 255,
		MaxValueDataLen: 64 << 10,
		MaxComponentLen: 128,
	}
}
