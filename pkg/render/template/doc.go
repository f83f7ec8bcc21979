// Package template defines the renderer-agnostic template seam. The pongo2
// implementation lives in the gotemplate subpackage.
package template
