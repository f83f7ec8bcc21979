// Package openapi exposes the public contracts for importing content types
// from OpenAPI 3 documents. Component schemas become content types; the
// x-contentform-* extensions carry relations, field order and layout hints.
// Implementations live under internal/openapi to keep kin-openapi out of the
// public API.
package openapi
