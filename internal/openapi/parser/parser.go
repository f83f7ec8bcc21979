package parser

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-contentform/pkg/openapi"
	"github.com/goliatone/go-contentform/pkg/schema"
)

// Parser implements pkgopenapi.Importer using kin-openapi. Every component
// schema becomes a content type.
type Parser struct {
	options pkgopenapi.ImporterOptions
	only    map[string]struct{}
}

var _ pkgopenapi.Importer = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ImporterOptions) pkgopenapi.Importer {
	p := &Parser{options: options}
	if len(options.Schemas) > 0 {
		p.only = make(map[string]struct{}, len(options.Schemas))
		for _, name := range options.Schemas {
			p.only[strings.TrimSpace(name)] = struct{}{}
		}
	}
	return p
}

// Import converts the component schemas of doc into content types, layouts
// and validations.
func (p *Parser) Import(ctx context.Context, doc pkgopenapi.Document) (pkgopenapi.Result, error) {
	if err := ctx.Err(); err != nil {
		return pkgopenapi.Result{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return pkgopenapi.Result{}, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return pkgopenapi.Result{}, fmt.Errorf("openapi parser: load document: %w", err)
	}
	if p.options.ValidateDocument {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return pkgopenapi.Result{}, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return pkgopenapi.Result{}, errors.New("openapi parser: document has no component schemas")
	}

	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	result := pkgopenapi.Result{
		Layouts:     make(map[string]schema.Layout),
		Validations: make(map[string][]schema.FieldValidation),
	}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return pkgopenapi.Result{}, err
		}
		if p.only != nil {
			if _, ok := p.only[name]; !ok {
				continue
			}
		}
		ref := spec.Components.Schemas[name]
		if ref == nil || ref.Value == nil || boolExtension(ref.Value.Extensions, pkgopenapi.ExtensionIgnore) {
			continue
		}

		imported, err := convertComponent(name, ref.Value)
		if err != nil {
			return pkgopenapi.Result{}, err
		}
		result.ContentTypes = append(result.ContentTypes, imported.contentType)
		if len(imported.layout.Attributes) > 0 {
			result.Layouts[imported.contentType.UID] = imported.layout
		}
		if len(imported.validations) > 0 {
			result.Validations[imported.contentType.UID] = imported.validations
		}
	}

	if len(result.ContentTypes) == 0 {
		return pkgopenapi.Result{}, errors.New("openapi parser: no content types extracted")
	}
	return result, nil
}

type component struct {
	contentType schema.ContentType
	layout      schema.Layout
	validations []schema.FieldValidation
}

func convertComponent(name string, src *openapi3.Schema) (component, error) {
	uid := stringExtension(src.Extensions, pkgopenapi.ExtensionUID)
	if uid == "" {
		uid = strings.ToLower(name)
	}
	displayName := src.Title
	if displayName == "" {
		displayName = name
	}

	out := component{
		contentType: schema.ContentType{
			UID:        uid,
			Name:       displayName,
			Attributes: make(map[string]schema.Attribute),
			Relations:  make(map[string]schema.Relation),
		},
		layout: schema.Layout{Attributes: make(map[string]schema.AttributeLayout)},
	}

	required := make(map[string]bool, len(src.Required))
	for _, field := range src.Required {
		required[field] = true
	}

	var fields []string
	for field, ref := range src.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value
		if boolExtension(prop.Extensions, pkgopenapi.ExtensionIgnore) {
			continue
		}
		fields = append(fields, field)

		layout, err := layoutExtension(prop.Extensions)
		if err != nil {
			return component{}, fmt.Errorf("openapi parser: %s.%s: %w", name, field, err)
		}
		if !layout.IsZero() {
			out.layout.Attributes[field] = layout
		}

		relation, isRelation, err := relationExtension(prop.Extensions)
		if err != nil {
			return component{}, fmt.Errorf("openapi parser: %s.%s: %w", name, field, err)
		}
		if !isRelation && isBinaryArray(prop) {
			relation, isRelation = schema.Relation{Collection: "file", Plugin: schema.PluginUpload, Nature: schema.NatureManyToMany}, true
		}
		if !isRelation && isBinary(prop) {
			relation, isRelation = schema.Relation{Model: "file", Plugin: schema.PluginUpload, Nature: schema.NatureOneWay}, true
		}
		if isRelation {
			out.contentType.Relations[field] = relation
		} else {
			out.contentType.Attributes[field] = schema.Attribute{
				Type:        attributeType(prop),
				Enum:        enumValues(prop.Enum),
				Label:       prop.Title,
				Description: prop.Description,
				Required:    required[field],
			}
		}

		if rules := validations(prop, required[field]); !rules.IsZero() {
			out.validations = append(out.validations, schema.FieldValidation{Name: field, Validations: rules})
		}
	}
	sort.Strings(fields)
	sort.Slice(out.validations, func(i, j int) bool {
		return out.validations[i].Name < out.validations[j].Name
	})

	out.contentType.EditDisplay.Fields = fieldOrder(src.Extensions, fields)
	return out, nil
}

// longTextThreshold is the maxLength above which a plain string is edited in
// a textarea.
const longTextThreshold = 255

// attributeType maps an OpenAPI property to a content type attribute type.
func attributeType(prop *openapi3.Schema) string {
	if len(prop.Enum) > 0 {
		return "enumeration"
	}
	switch {
	case prop.Type.Is(openapi3.TypeString):
		switch prop.Format {
		case "date":
			return "date"
		case "date-time":
			return "datetime"
		case "email":
			return "email"
		case "password":
			return "password"
		case "markdown", "html":
			return "text"
		}
		if prop.MaxLength != nil && *prop.MaxLength > longTextThreshold {
			return "text"
		}
		return "string"
	case prop.Type.Is(openapi3.TypeInteger):
		return "integer"
	case prop.Type.Is(openapi3.TypeNumber):
		return "decimal"
	case prop.Type.Is(openapi3.TypeBoolean):
		return "boolean"
	default:
		return "json"
	}
}

func isBinary(prop *openapi3.Schema) bool {
	return prop.Type.Is(openapi3.TypeString) && prop.Format == "binary"
}

func isBinaryArray(prop *openapi3.Schema) bool {
	return prop.Type.Is(openapi3.TypeArray) && prop.Items != nil && prop.Items.Value != nil && isBinary(prop.Items.Value)
}

func enumValues(values []any) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value == nil {
			continue
		}
		out = append(out, fmt.Sprint(value))
	}
	return out
}

func validations(prop *openapi3.Schema, required bool) schema.Validations {
	rules := schema.Validations{Required: required, Regex: prop.Pattern}
	if prop.MinLength > 0 {
		value := int(prop.MinLength)
		rules.MinLength = &value
	}
	if prop.MaxLength != nil {
		value := int(*prop.MaxLength)
		rules.MaxLength = &value
	}
	if prop.Min != nil {
		value := *prop.Min
		rules.Min = &value
	}
	if prop.Max != nil {
		value := *prop.Max
		rules.Max = &value
	}
	return rules
}
