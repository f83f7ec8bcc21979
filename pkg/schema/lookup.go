package schema

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FindErrors returns the messages of the first entry named name. A miss
// yields an empty, non-nil slice.
func FindErrors(entries []FieldError, name string) []string {
	for _, entry := range entries {
		if entry.Name == name {
			if entry.Errors == nil {
				return []string{}
			}
			return entry.Errors
		}
	}
	return []string{}
}

// FindValidations returns the rules of the first entry named name, or the
// zero Validations when none matches.
func FindValidations(entries []FieldValidation, name string) Validations {
	for _, entry := range entries {
		if entry.Name == name {
			return entry.Validations
		}
	}
	return Validations{}
}

// OrderedFields returns the edit display field order. Attribute map order is
// never used.
func OrderedFields(ct ContentType) []string {
	if len(ct.EditDisplay.Fields) == 0 {
		return nil
	}
	return append([]string(nil), ct.EditDisplay.Fields...)
}

// Details returns the edit display details for name.
func Details(ct ContentType, name string) (FieldDetails, bool) {
	details, ok := ct.EditDisplay.AvailableFields[name]
	return details, ok
}

// UploadRelations returns file details for every relation owned by the
// upload plugin, keyed by relation name.
func UploadRelations(ct ContentType) map[string]FieldDetails {
	out := make(map[string]FieldDetails)
	for name, rel := range ct.Relations {
		if rel.Plugin != PluginUpload {
			continue
		}
		out[name] = FieldDetails{
			Type:  "file",
			Label: UpperFirst(name),
		}
	}
	return out
}

// AllowsMultipleUpload reports whether the relation called name accepts
// several files, i.e. is declared as a collection.
func AllowsMultipleUpload(ct ContentType, name string) bool {
	rel, ok := ct.Relations[name]
	if !ok {
		return false
	}
	return rel.IsCollection()
}

// Resolve returns the layout overrides for name with Compute applied. The
// zero value is returned when the layout has no entry.
func (l Layout) Resolve(name string, record map[string]any) AttributeLayout {
	entry, ok := l.Attributes[name]
	if !ok {
		return AttributeLayout{}
	}
	if entry.Compute == nil {
		return entry
	}
	computed := entry.Compute(LayoutContext{Attribute: name, Record: record})
	resolved := entry
	resolved.Compute = nil
	mergeString(&resolved.Label, computed.Label)
	mergeString(&resolved.Placeholder, computed.Placeholder)
	mergeString(&resolved.ClassName, computed.ClassName)
	mergeString(&resolved.Description, computed.Description)
	mergeString(&resolved.Appearance, computed.Appearance)
	mergeString(&resolved.Type, computed.Type)
	return resolved
}

func mergeString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
