// Package schema defines the content-type data the edit form is derived from:
// schema attributes, upload relations, the edit display (field order plus
// per-field details), the layout descriptor with display overrides, and the
// ordered validation/error collections keyed by attribute name.
//
// Optional values are plain Go zero values ("" for strings, nil for slices
// and pointers). Defaulting happens in the lookup helpers of this package so
// consumers never walk nested maps themselves: a miss means "no data for this
// field" and is never reported as an error.
package schema
