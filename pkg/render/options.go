package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data renderers can use without touching
// the form itself.
type RenderOptions struct {
	// Action is the URL the rendered form submits to. Empty keeps the browser
	// default (the current URL).
	Action string
	// Method is the submission verb. Renderers translate anything other than
	// GET/POST into POST plus a hidden _method input.
	Method string
	// FormErrors are messages that do not belong to a single field.
	FormErrors []string
	// Theme is passed through to templates untouched. Nil renders unthemed.
	Theme *theme.RendererConfig
}
