package widgets

import (
	"sort"
	"strings"
	"sync"
)

// Component names the rendering strategy bound to a widget kind.
const (
	ComponentInput    = "input"
	ComponentCheckbox = "checkbox"
	ComponentSelect   = "select"
	ComponentTextarea = "textarea"
	ComponentFile     = "file"
	ComponentJSON     = "json_editor"
	ComponentWysiwyg  = "wysiwyg"
)

// Registry binds widget kinds to rendering strategies. Kinds without a
// binding fall back to the KindText strategy, so Strategy is total.
type Registry struct {
	mu       sync.RWMutex
	bindings map[Kind]string
}

// NewRegistry constructs a registry with the built-in bindings.
func NewRegistry() *Registry {
	reg := &Registry{bindings: make(map[Kind]string)}
	reg.registerBuiltins()
	return reg
}

// Register binds kind to component, replacing any earlier binding. Blank
// kinds or components are ignored.
func (r *Registry) Register(kind Kind, component string) {
	if r == nil {
		return
	}
	kind = Kind(strings.ToLower(strings.TrimSpace(string(kind))))
	component = strings.TrimSpace(component)
	if kind == "" || component == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[kind] = component
}

// Strategy returns the component bound to kind.
func (r *Registry) Strategy(kind Kind) string {
	if r == nil {
		return ComponentInput
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if component, ok := r.bindings[Kind(strings.ToLower(string(kind)))]; ok {
		return component
	}
	if component, ok := r.bindings[KindText]; ok {
		return component
	}
	return ComponentInput
}

// Components returns the sorted, de-duplicated component names in use.
func (r *Registry) Components() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{}, len(r.bindings))
	out := make([]string, 0, len(r.bindings))
	for _, component := range r.bindings {
		if _, ok := seen[component]; ok {
			continue
		}
		seen[component] = struct{}{}
		out = append(out, component)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) registerBuiltins() {
	r.Register(KindCheckbox, ComponentCheckbox)
	r.Register(KindNumber, ComponentInput)
	r.Register(KindDate, ComponentInput)
	r.Register(KindEmail, ComponentInput)
	r.Register(KindPassword, ComponentInput)
	r.Register(KindText, ComponentInput)
	r.Register(KindSelect, ComponentSelect)
	r.Register(KindTextarea, ComponentTextarea)
	r.Register(KindFile, ComponentFile)
	r.Register(KindJSON, ComponentJSON)
	r.Register(KindWysiwyg, ComponentWysiwyg)
}
