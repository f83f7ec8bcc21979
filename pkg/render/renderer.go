package render

import (
	"context"

	"github.com/goliatone/go-contentform/pkg/editform"
	"github.com/goliatone/go-contentform/pkg/picker"
)

// Renderer turns edit forms and feature pickers into a byte representation
// (HTML, a terminal session transcript, ...).
type Renderer interface {
	Name() string
	ContentType() string
	RenderForm(ctx context.Context, form editform.Form, options RenderOptions) ([]byte, error)
	RenderPicker(ctx context.Context, view PickerView, options RenderOptions) ([]byte, error)
}

// PickerView pairs the render snapshot of a feature picker with the picker
// itself so interactive renderers can dispatch toggle and click events.
type PickerView struct {
	View   picker.View
	Picker *picker.Picker
}

// NewPickerView snapshots p.
func NewPickerView(p *picker.Picker) PickerView {
	if p == nil {
		return PickerView{}
	}
	return PickerView{View: p.View(), Picker: p}
}
