package schema

// Relation plugins and natures recognised by the edit form.
const (
	PluginUpload = "upload"

	NatureOneWay     = "oneWay"
	NatureOneToOne   = "oneToOne"
	NatureOneToMany  = "oneToMany"
	NatureManyToOne  = "manyToOne"
	NatureManyToMany = "manyToMany"
)

// Attribute is a named field definition declared by a content type. The name
// is the key of ContentType.Attributes.
type Attribute struct {
	Type        string   `json:"type" yaml:"type"`
	Enum        []string `json:"enum,omitempty" yaml:"enum,omitempty"`
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool     `json:"required,omitempty" yaml:"required,omitempty"`
}

// Relation describes a relation attribute. Exactly one of Model or Collection
// is expected to be set: Model marks a singular relation, Collection a
// one-to-many/many-to-many one.
type Relation struct {
	Model      string `json:"model,omitempty" yaml:"model,omitempty"`
	Collection string `json:"collection,omitempty" yaml:"collection,omitempty"`
	Plugin     string `json:"plugin,omitempty" yaml:"plugin,omitempty"`
	Nature     string `json:"nature,omitempty" yaml:"nature,omitempty"`
}

// Target returns the related model or collection name.
func (r Relation) Target() string {
	if r.Collection != "" {
		return r.Collection
	}
	return r.Model
}

// IsCollection reports whether the relation points at many records.
func (r Relation) IsCollection() bool {
	return r.Collection != ""
}

// FieldDetails carries the schema-declared display defaults for a field in
// the edit view.
type FieldDetails struct {
	Type        string `json:"type" yaml:"type"`
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// EditDisplay lists the fields shown in the edit view, in render order, with
// their display details.
type EditDisplay struct {
	Fields          []string                `json:"fields" yaml:"fields"`
	AvailableFields map[string]FieldDetails `json:"availableFields,omitempty" yaml:"availableFields,omitempty"`
}

// ContentType is the immutable schema a single edit form is rendered from.
type ContentType struct {
	UID         string               `json:"uid" yaml:"uid"`
	Name        string               `json:"name,omitempty" yaml:"name,omitempty"`
	Attributes  map[string]Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Relations   map[string]Relation  `json:"relations,omitempty" yaml:"relations,omitempty"`
	EditDisplay EditDisplay          `json:"editDisplay" yaml:"editDisplay"`
}

// AttributeLayout holds the per-field display overrides of a layout
// descriptor. Appearance and Type both select a widget; Appearance wins.
//
// Compute, when set, is evaluated on every render and its non-empty values
// replace the static ones. It allows overrides that depend on the record
// being edited.
type AttributeLayout struct {
	Label       string `json:"label,omitempty" yaml:"label,omitempty" mapstructure:"label"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty" mapstructure:"placeholder"`
	ClassName   string `json:"className,omitempty" yaml:"className,omitempty" mapstructure:"className"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Appearance  string `json:"appearance,omitempty" yaml:"appearance,omitempty" mapstructure:"appearance"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`

	Compute func(LayoutContext) AttributeLayout `json:"-" yaml:"-" mapstructure:"-"`
}

// IsZero reports whether no static value is set. Compute is not considered.
func (l AttributeLayout) IsZero() bool {
	return l.Label == "" && l.Placeholder == "" && l.ClassName == "" &&
		l.Description == "" && l.Appearance == "" && l.Type == ""
}

// LayoutContext is handed to AttributeLayout.Compute.
type LayoutContext struct {
	Attribute string
	Record    map[string]any
}

// Layout is the display descriptor layered over a content type.
type Layout struct {
	Attributes map[string]AttributeLayout `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Validations are the rules applied to a single field. Pointer bounds are nil
// when the rule is absent.
type Validations struct {
	Required  bool     `json:"required,omitempty" yaml:"required,omitempty"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Regex     string   `json:"regex,omitempty" yaml:"regex,omitempty"`
}

// IsZero reports whether no rule is set.
func (v Validations) IsZero() bool {
	return !v.Required && v.MinLength == nil && v.MaxLength == nil &&
		v.Min == nil && v.Max == nil && v.Regex == ""
}

// FieldValidation pairs a field name with its rules.
type FieldValidation struct {
	Name        string      `json:"name" yaml:"name"`
	Validations Validations `json:"validations" yaml:"validations"`
}

// FieldError pairs a field name with the messages currently active for it.
type FieldError struct {
	Name   string   `json:"name" yaml:"name"`
	Errors []string `json:"errors" yaml:"errors"`
}
