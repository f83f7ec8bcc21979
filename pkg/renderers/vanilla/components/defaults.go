package components

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-contentform/pkg/editform"
)

const templatePrefix = "templates/components/"

// NewDefaultRegistry constructs a registry pre-populated with the built-in
// components used by the vanilla renderer.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameInput, Descriptor{
		Renderer: templateComponentRenderer("forms.input", templatePrefix+"input.tmpl"),
	})
	registry.MustRegister(NameTextarea, Descriptor{
		Renderer: templateComponentRenderer("forms.textarea", templatePrefix+"textarea.tmpl"),
	})
	registry.MustRegister(NameSelect, Descriptor{
		Renderer: templateComponentRenderer("forms.select", templatePrefix+"select.tmpl"),
	})
	registry.MustRegister(NameCheckbox, Descriptor{
		Renderer: templateComponentRenderer("forms.checkbox", templatePrefix+"checkbox.tmpl"),
	})
	registry.MustRegister(NameFile, Descriptor{
		Renderer: templateComponentRenderer("forms.file", templatePrefix+"file.tmpl"),
	})
	registry.MustRegister(NameJSONEditor, jsonEditorDescriptor())
	registry.MustRegister(NameWysiwyg, Descriptor{
		Renderer: templateComponentRenderer("forms.wysiwyg", templatePrefix+"wysiwyg.tmpl"),
	})

	return registry
}

// templateComponentRenderer renders templateName, or the theme partial
// registered under partialKey when one is configured.
func templateComponentRenderer(partialKey, templateName string) Renderer {
	return func(buf *bytes.Buffer, input editform.Input, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		resolvedTemplate := templateName
		if data.ThemePartials != nil {
			if candidate := strings.TrimSpace(data.ThemePartials[partialKey]); candidate != "" {
				resolvedTemplate = candidate
			}
		}

		rendered, err := data.Template.RenderTemplate(resolvedTemplate, payload(input, data))
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", templateName, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}

func payload(input editform.Input, data ComponentData) map[string]any {
	return map[string]any{
		"input":    input,
		"id":       data.ID,
		"attrs":    data.Attrs,
		"value":    data.Value,
		"htmlType": data.HTMLType,
		"checked":  isChecked(input.Value),
		"required": input.Validations.Required,
	}
}

func isChecked(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}
