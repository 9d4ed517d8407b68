// Package roots implements C6, the roots registry (spec.md §4.6/§6.2): the
// fixed table of the seven predefined top-level keys, each lazily
// instantiated on first use. HKEY_CLASSES_ROOT is a true alias for
// HKEY_LOCAL_MACHINE\SOFTWARE\Classes rather than a distinct key; the
// remaining six are nameless detached keys flagged ROOT.
//
// Grounded on the teacher's pkg/hive.Open/NewHive "construct lazily, hand
// back a ready-to-use value" shape, adapted from a single hive-wide factory
// function to a per-identifier table.
package roots
