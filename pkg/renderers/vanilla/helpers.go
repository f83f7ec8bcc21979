package vanilla

import (
	"encoding/json"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-contentform/pkg/editform"
	"github.com/goliatone/go-contentform/pkg/widgets"
)

func componentControlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "cf-" + trimmed
}

func componentErrorsID(name string) string {
	controlID := componentControlID(name)
	if controlID == "" {
		return ""
	}
	return controlID + "-errors"
}

func componentDescriptionID(name string) string {
	controlID := componentControlID(name)
	if controlID == "" {
		return ""
	}
	return controlID + "-description"
}

func sanitizeClassList(value string) string {
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.HasPrefix(token, "cf-") {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}

// componentHandlesDescription reports whether a component shows the
// description itself (wysiwyg uses it as placeholder).
func componentHandlesDescription(componentName string) bool {
	return strings.TrimSpace(componentName) == widgets.ComponentWysiwyg
}

// labelSupportsFor reports whether the label can point at the control with a
// for attribute.
func labelSupportsFor(componentName string) bool {
	return strings.TrimSpace(componentName) != widgets.ComponentWysiwyg
}

func htmlInputType(kind widgets.Kind) string {
	switch kind {
	case widgets.KindNumber, widgets.KindDate, widgets.KindEmail, widgets.KindPassword:
		return string(kind)
	default:
		return "text"
	}
}

// controlAttributes renders the attributes shared by every control: native
// constraint attributes, focus, multiplicity and a data-validation blob with
// the full rule set. The result starts with a space when non-empty.
func controlAttributes(input editform.Input, describedBy []string, invalid bool) string {
	attrs := map[string]string{}
	v := input.Validations
	if v.Required {
		attrs["required"] = ""
	}
	if v.MinLength != nil {
		attrs["minlength"] = strconv.Itoa(*v.MinLength)
	}
	if v.MaxLength != nil {
		attrs["maxlength"] = strconv.Itoa(*v.MaxLength)
	}
	if v.Min != nil {
		attrs["min"] = strconv.FormatFloat(*v.Min, 'f', -1, 64)
	}
	if v.Max != nil {
		attrs["max"] = strconv.FormatFloat(*v.Max, 'f', -1, 64)
	}
	if v.Regex != "" {
		attrs["pattern"] = v.Regex
	}
	if !v.IsZero() {
		if raw, err := json.Marshal(v); err == nil {
			attrs["data-validation"] = string(raw)
		}
	}
	if input.AutoFocus {
		attrs["autofocus"] = ""
	}
	if input.Multiple {
		attrs["multiple"] = ""
	}
	if invalid {
		attrs["aria-invalid"] = "true"
	}
	if len(describedBy) > 0 {
		attrs["aria-describedby"] = strings.Join(describedBy, " ")
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		builder.WriteByte(' ')
		builder.WriteString(key)
		if value := attrs[key]; value != "" {
			builder.WriteString(`="`)
			builder.WriteString(html.EscapeString(value))
			builder.WriteString(`"`)
		}
	}
	return builder.String()
}

// formatValue renders an input value for a control's value attribute or
// body. Slices are joined with commas.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatValue(item))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(raw)
	default:
		return fmt.Sprint(v)
	}
}

func styleFromCSSVars(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key])
	}
	return strings.Join(parts, "; ")
}
