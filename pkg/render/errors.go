package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-contentform/pkg/schema"
)

// ErrorMapping splits a backend validation payload into the ordered field
// error collection the edit form consumes and form-level messages.
type ErrorMapping struct {
	Fields []schema.FieldError
	Form   []string
}

// MapErrorPayload normalises a payload keyed by field path (plain names,
// dotted paths or JSON pointers such as "/data/title") against the ordered
// field names of a form. Entries follow the field order; keys that match no
// field become form-level messages so nothing is lost.
func MapErrorPayload(fields []string, payload map[string][]string) ErrorMapping {
	var mapping ErrorMapping
	if len(payload) == 0 {
		return mapping
	}

	known := make(map[string]struct{}, len(fields))
	for _, name := range fields {
		known[name] = struct{}{}
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	byField := make(map[string][]string)
	for _, key := range keys {
		messages := normalizeMessages(payload[key])
		if len(messages) == 0 {
			continue
		}
		name := fieldFromPath(key, known)
		if name == "" {
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		byField[name] = append(byField[name], messages...)
	}

	for _, name := range fields {
		messages, ok := byField[name]
		if !ok {
			continue
		}
		mapping.Fields = append(mapping.Fields, schema.FieldError{
			Name:   name,
			Errors: normalizeMessages(messages),
		})
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// dropping duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func fieldFromPath(raw string, known map[string]struct{}) string {
	if isFormLevelKey(raw) {
		return ""
	}
	for _, segment := range pathSegments(raw) {
		if isWrapperSegment(segment) {
			continue
		}
		if _, ok := known[segment]; ok {
			return segment
		}
		return ""
	}
	return ""
}

func pathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	clean = strings.TrimLeft(clean, "#$/.")
	clean = strings.NewReplacer("[", ".", "]", "").Replace(clean)
	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func isWrapperSegment(segment string) bool {
	switch strings.ToLower(segment) {
	case "body", "request", "payload", "data", "attributes":
		return true
	default:
		return false
	}
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors":
		return true
	default:
		return false
	}
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
