package editform

import (
	"github.com/goliatone/go-contentform/pkg/schema"
	"github.com/goliatone/go-contentform/pkg/widgets"
)

// Event is emitted to change and blur handlers.
type Event struct {
	Name  string       `json:"name"`
	Type  widgets.Kind `json:"type"`
	Value any          `json:"value"`
}

// EventHandler receives change or blur events. The caller owns the record and
// decides what to do with the value.
type EventHandler func(Event)

// Props is everything an edit form is derived from.
type Props struct {
	Record          map[string]any
	Schema          schema.ContentType
	Layout          schema.Layout
	Attributes      map[string]schema.Attribute
	FormValidations []schema.FieldValidation
	FormErrors      []schema.FieldError
	DidCheckErrors  bool
	ResetProps      bool
	OnChange        EventHandler
	OnBlur          EventHandler
}

// Input is the generic prop set handed to an input widget.
type Input struct {
	Name           string             `json:"name"`
	Type           widgets.Kind       `json:"type"`
	Value          any                `json:"value,omitempty"`
	Label          string             `json:"label"`
	Placeholder    string             `json:"placeholder"`
	ClassName      string             `json:"className,omitempty"`
	Description    string             `json:"description,omitempty"`
	Validations    schema.Validations `json:"validations"`
	Errors         []string           `json:"errors"`
	Multiple       bool               `json:"multiple"`
	AutoFocus      bool               `json:"autoFocus"`
	SelectOptions  []string           `json:"selectOptions,omitempty"`
	CustomInputs   map[string]string  `json:"customInputs,omitempty"`
	DidCheckErrors bool               `json:"didCheckErrors"`
	ResetProps     bool               `json:"resetProps"`

	OnChange EventHandler `json:"-"`
	OnBlur   EventHandler `json:"-"`
}

// Change forwards value to the input's change handler.
func (in Input) Change(value any) {
	if in.OnChange != nil {
		in.OnChange(Event{Name: in.Name, Type: in.Type, Value: value})
	}
}

// Blur forwards value to the input's blur handler.
func (in Input) Blur(value any) {
	if in.OnBlur != nil {
		in.OnBlur(Event{Name: in.Name, Type: in.Type, Value: value})
	}
}

// Form is the ordered list of inputs for one content type.
type Form struct {
	UID    string  `json:"uid"`
	Name   string  `json:"name,omitempty"`
	Inputs []Input `json:"inputs"`
}

// Names returns the input names in render order.
func (f Form) Names() []string {
	names := make([]string, len(f.Inputs))
	for idx, input := range f.Inputs {
		names[idx] = input.Name
	}
	return names
}

// Input looks up an input by name.
func (f Form) Input(name string) (Input, bool) {
	for _, input := range f.Inputs {
		if input.Name == name {
			return input, true
		}
	}
	return Input{}, false
}

// DefaultCustomInputs returns the widget overrides used for json and rich
// text fields.
func DefaultCustomInputs() map[string]string {
	return map[string]string{
		string(widgets.KindJSON):    widgets.ComponentJSON,
		string(widgets.KindWysiwyg): widgets.ComponentWysiwyg,
	}
}
