package tui

import "github.com/goliatone/go-contentform/pkg/editform"

// State tracks collected values and the errors shown for each input.
// Values are keyed by input name and kept in form order for output.
type State struct {
	order  []string
	values map[string]any
	errors map[string][]string
}

// NewState seeds the state from the form: current values become prompt
// defaults and errors are kept only for inputs that checked them.
func NewState(form editform.Form) *State {
	s := &State{
		order:  make([]string, 0, len(form.Inputs)),
		values: make(map[string]any, len(form.Inputs)),
		errors: make(map[string][]string),
	}
	for _, input := range form.Inputs {
		s.order = append(s.order, input.Name)
		if input.Value != nil {
			s.values[input.Name] = input.Value
		}
		if input.DidCheckErrors && len(input.Errors) > 0 {
			s.errors[input.Name] = append([]string(nil), input.Errors...)
		}
	}
	return s
}

// Values returns the current value map (mutable).
func (s *State) Values() map[string]any {
	if s == nil {
		return nil
	}
	return s.values
}

// Order returns the input names in form order.
func (s *State) Order() []string {
	if s == nil {
		return nil
	}
	return s.order
}

// ErrorsFor returns the errors attached to an input.
func (s *State) ErrorsFor(name string) []string {
	if s == nil {
		return nil
	}
	return s.errors[name]
}

// Value returns the collected value of an input.
func (s *State) Value(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	value, ok := s.values[name]
	return value, ok
}

// SetValue stores a collected value. A nil value clears the entry.
func (s *State) SetValue(name string, value any) {
	if s == nil {
		return
	}
	if value == nil {
		delete(s.values, name)
		return
	}
	s.values[name] = value
}
