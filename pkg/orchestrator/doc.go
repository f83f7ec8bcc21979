// Package orchestrator wires the schema store → props → edit form → renderer
// pipeline, with optional OpenAPI import in front, for consumers that prefer
// a single entry point.
package orchestrator
