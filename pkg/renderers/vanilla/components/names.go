package components

import "github.com/goliatone/go-contentform/pkg/widgets"

// Canonical component names used by the vanilla renderer and default
// registry. They match the strategies bound in widgets.Registry.
const (
	NameInput      = widgets.ComponentInput
	NameTextarea   = widgets.ComponentTextarea
	NameSelect     = widgets.ComponentSelect
	NameCheckbox   = widgets.ComponentCheckbox
	NameFile       = widgets.ComponentFile
	NameJSONEditor = widgets.ComponentJSON
	NameWysiwyg    = widgets.ComponentWysiwyg
)
