// Package editform derives the input prop sets of a content-manager edit form
// from a content type, its layout descriptor and the current record.
//
// Build is a pure function of its Props: it emits one Input per field in the
// edit display order, resolves widget kinds through the widgets package and
// degrades missing metadata to empty values. The package never mutates the
// record; change and blur events are forwarded to the caller's handlers.
package editform
