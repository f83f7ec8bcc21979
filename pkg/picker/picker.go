// Package picker implements the content-type-builder feature picker: a
// dropdown listing features (content types or groups) with an open/closed
// flag whose storage is delegated to the host.
package picker

// Feature is a selectable dropdown entry.
type Feature struct {
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Fields      int    `json:"fields"`
	Source      string `json:"source,omitempty"`
	IsTemporary bool   `json:"isTemporary"`
}

// Props configures a Picker. IsOpen and SetOpen come from whatever state
// mechanism the host uses; OnClick receives the full clicked feature.
type Props struct {
	Features        []Feature
	SelectedFeature string
	Main            bool
	Plugin          string
	IsOpen          bool
	SetOpen         func(bool)
	OnClick         func(Feature)
}

// DefaultOnClick is used when Props.OnClick is nil.
func DefaultOnClick(Feature) {}

// Picker is derived from Props on every render.
type Picker struct {
	props Props
}

// New applies defaults to props and returns the picker.
func New(props Props) *Picker {
	if props.OnClick == nil {
		props.OnClick = DefaultOnClick
	}
	if props.SetOpen == nil {
		props.SetOpen = func(bool) {}
	}
	return &Picker{props: props}
}

// Toggle asks the host to flip the open flag.
func (p *Picker) Toggle() {
	p.props.SetOpen(!p.props.IsOpen)
}

// Close asks the host to close the dropdown. Hosts without their own
// dropdown component call it after an item click.
func (p *Picker) Close() {
	p.props.SetOpen(false)
}

// Click selects the feature at index. Out of range indexes are ignored and
// reported as false.
func (p *Picker) Click(index int) bool {
	if index < 0 || index >= len(p.props.Features) {
		return false
	}
	p.props.OnClick(p.props.Features[index])
	return true
}

// Selected returns the feature matching SelectedFeature.
func (p *Picker) Selected() (Feature, bool) {
	for _, feature := range p.props.Features {
		if feature.Name == p.props.SelectedFeature {
			return feature, true
		}
	}
	return Feature{}, false
}

// Source returns the annotation shown next to the selected name: the
// selected feature's source, or the plugin when the picker is the main one.
func (p *Picker) Source() string {
	if selected, ok := p.Selected(); ok && selected.Source != "" {
		return selected.Source
	}
	if p.props.Main {
		return p.props.Plugin
	}
	return ""
}

// ToggleView is the dropdown button.
type ToggleView struct {
	Label  string `json:"label"`
	Source string `json:"source,omitempty"`
	Icon   string `json:"icon,omitempty"`
}

// ItemView is the view of one dropdown entry.
type ItemView struct {
	Index   int     `json:"index"`
	Feature Feature `json:"feature"`
	Active  bool    `json:"active"`
}

// View is a render-ready snapshot of the picker.
type View struct {
	Open   bool       `json:"open"`
	Toggle ToggleView `json:"toggle"`
	Items  []ItemView `json:"items"`
}

// View builds the render snapshot.
func (p *Picker) View() View {
	view := View{
		Open: p.props.IsOpen,
		Toggle: ToggleView{
			Label:  p.props.SelectedFeature,
			Source: p.Source(),
		},
		Items: make([]ItemView, len(p.props.Features)),
	}
	if selected, ok := p.Selected(); ok {
		view.Toggle.Icon = selected.Icon
	}
	for idx, feature := range p.props.Features {
		view.Items[idx] = ItemView{
			Index:   idx,
			Feature: feature,
			Active:  feature.Name == p.props.SelectedFeature,
		}
	}
	return view
}

// Features returns the configured features.
func (p *Picker) Features() []Feature {
	return append([]Feature(nil), p.props.Features...)
}
