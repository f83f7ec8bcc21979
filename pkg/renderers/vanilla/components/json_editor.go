package components

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-contentform/pkg/editform"
)

const (
	jsonEditorTemplate = templatePrefix + "json_editor.tmpl"
	jsonEditorPartial  = "forms.json-editor"
)

func jsonEditorDescriptor() Descriptor {
	return Descriptor{
		Renderer: jsonEditorRenderer,
		Scripts: []Script{
			{
				Inline: jsonEditorInlineScript,
				Defer:  true,
			},
		},
	}
}

func jsonEditorRenderer(buf *bytes.Buffer, input editform.Input, data ComponentData) error {
	if data.Template == nil {
		return fmt.Errorf("components: template renderer not configured for %q", jsonEditorTemplate)
	}

	templateName := jsonEditorTemplate
	if data.ThemePartials != nil {
		if candidate := strings.TrimSpace(data.ThemePartials[jsonEditorPartial]); candidate != "" {
			templateName = candidate
		}
	}

	value, valid := JSONEditorValue(input.Value)
	values := payload(input, data)
	values["value"] = value
	values["valid"] = valid

	rendered, err := data.Template.RenderTemplate(templateName, values)
	if err != nil {
		return fmt.Errorf("components: render template %q: %w", templateName, err)
	}
	buf.WriteString(rendered)
	return nil
}

// JSONEditorValue formats value as indented JSON. Strings are treated as raw
// JSON documents; invalid ones are returned untouched with valid=false. A
// nil value renders as an empty object.
func JSONEditorValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "{}", true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return "{}", true
		}
		var decoded any
		if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
			return v, false
		}
		return indentJSON(decoded)
	case []byte:
		return JSONEditorValue(string(v))
	default:
		return indentJSON(v)
	}
}

func indentJSON(value any) (string, bool) {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Sprint(value), false
	}
	return string(raw), true
}

const jsonEditorInlineScript = `document.querySelectorAll("[data-contentform-json]").forEach(function (el) {
  el.addEventListener("blur", function () {
    try {
      el.value = JSON.stringify(JSON.parse(el.value || "{}"), null, 2);
      el.removeAttribute("aria-invalid");
    } catch (err) {
      el.setAttribute("aria-invalid", "true");
    }
  });
});`
