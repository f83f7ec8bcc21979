package widgets

import "strings"

// Kind identifies the input control chosen for a field.
type Kind string

// Widget kinds produced by InputType. KindWysiwyg is only reachable through
// an explicit appearance override.
const (
	KindCheckbox Kind = "checkbox"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindEmail    Kind = "email"
	KindSelect   Kind = "select"
	KindPassword Kind = "password"
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindFile     Kind = "file"
	KindJSON     Kind = "json"
	KindWysiwyg  Kind = "wysiwyg"
)

// Kinds lists the kinds InputType can return.
func Kinds() []Kind {
	return []Kind{
		KindCheckbox, KindNumber, KindDate, KindEmail, KindSelect,
		KindPassword, KindText, KindTextarea, KindFile, KindJSON,
	}
}

// InputType maps a schema attribute type to a widget kind. Matching is case
// insensitive; unknown and empty types map to KindText.
func InputType(typeName string) Kind {
	switch strings.ToLower(typeName) {
	case "boolean":
		return KindCheckbox
	case "bigint", "decimal", "float", "integer":
		return KindNumber
	case "date", "datetime":
		return KindDate
	case "email":
		return KindEmail
	case "enumeration":
		return KindSelect
	case "password":
		return KindPassword
	case "string":
		return KindText
	case "text":
		return KindTextarea
	case "file", "files":
		return KindFile
	case "json":
		return KindJSON
	default:
		return KindText
	}
}

// Resolve picks the kind for a field: a non-blank appearance (lower-cased)
// wins, then a non-blank layout type, then InputType(schemaType).
func Resolve(appearance, layoutType, schemaType string) Kind {
	if trimmed := strings.TrimSpace(appearance); trimmed != "" {
		return Kind(strings.ToLower(trimmed))
	}
	if trimmed := strings.TrimSpace(layoutType); trimmed != "" {
		return Kind(trimmed)
	}
	return InputType(schemaType)
}
