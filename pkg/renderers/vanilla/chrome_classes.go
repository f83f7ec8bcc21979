package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassForm        ChromeClass = "contentform-form"
	ClassHeader      ChromeClass = "contentform-header"
	ClassFields      ChromeClass = "contentform-fields"
	ClassField       ChromeClass = "contentform-field"
	ClassDescription ChromeClass = "contentform-description"
	ClassFieldErrors ChromeClass = "contentform-field-errors"
	ClassActions     ChromeClass = "contentform-actions"
	ClassErrors      ChromeClass = "contentform-errors"

	ClassPicker           ChromeClass = "contentform-picker"
	ClassPickerToggle     ChromeClass = "contentform-picker-toggle"
	ClassPickerSource     ChromeClass = "contentform-picker-source"
	ClassPickerMenu       ChromeClass = "contentform-picker-menu"
	ClassPickerItem       ChromeClass = "contentform-picker-item"
	ClassPickerItemName   ChromeClass = "contentform-picker-item-name"
	ClassPickerItemFields ChromeClass = "contentform-picker-item-fields"
)

// customBootstrapClass is the wrapper column class of fields without a
// layout class name.
const customBootstrapClass = "col-md-6"

func formClasses() map[string]string {
	return map[string]string{
		"form":    string(ClassForm),
		"header":  string(ClassHeader),
		"fields":  string(ClassFields),
		"actions": string(ClassActions),
		"errors":  string(ClassErrors),
	}
}

func pickerClasses() map[string]string {
	return map[string]string{
		"picker":     string(ClassPicker),
		"toggle":     string(ClassPickerToggle),
		"source":     string(ClassPickerSource),
		"menu":       string(ClassPickerMenu),
		"item":       string(ClassPickerItem),
		"itemName":   string(ClassPickerItemName),
		"itemFields": string(ClassPickerItemFields),
	}
}
