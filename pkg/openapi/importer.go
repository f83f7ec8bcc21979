package openapi

import (
	"context"

	"github.com/goliatone/go-contentform/pkg/schema"
)

// Extension keys read by the importer.
const (
	// ExtensionUID overrides the content type UID (defaults to the lower-cased
	// component name).
	ExtensionUID = "x-contentform-uid"
	// ExtensionFields lists the edit view field order on a component schema.
	ExtensionFields = "x-contentform-fields"
	// ExtensionRelation turns a property into a relation.
	ExtensionRelation = "x-contentform-relation"
	// ExtensionLayout carries per-field layout overrides on a property.
	ExtensionLayout = "x-contentform-layout"
	// ExtensionIgnore skips a component schema or property.
	ExtensionIgnore = "x-contentform-ignore"
)

// Result is everything imported from one document.
type Result struct {
	ContentTypes []schema.ContentType
	Layouts      map[string]schema.Layout
	// Validations are keyed by content type UID.
	Validations map[string][]schema.FieldValidation
}

// Store wraps the imported content types and layouts in a schema.Store.
func (r Result) Store() (*schema.Store, error) {
	return schema.NewStore(r.ContentTypes, r.Layouts)
}

// Importer converts OpenAPI documents into content types.
type Importer interface {
	Import(ctx context.Context, doc Document) (Result, error)
}

// ImporterOptions toggles importer behaviour.
type ImporterOptions struct {
	// Schemas limits the import to the named component schemas. Empty imports
	// every component schema.
	Schemas []string
	// ValidateDocument runs kin-openapi validation before importing.
	ValidateDocument bool
}

// ImporterOption mutates ImporterOptions during construction.
type ImporterOption func(*ImporterOptions)

// WithSchemas restricts the import to the named component schemas.
func WithSchemas(names ...string) ImporterOption {
	return func(opts *ImporterOptions) {
		opts.Schemas = append(opts.Schemas, names...)
	}
}

// WithValidation toggles document validation.
func WithValidation(enabled bool) ImporterOption {
	return func(opts *ImporterOptions) {
		opts.ValidateDocument = enabled
	}
}

// NewImporterOptions applies ImporterOption functions.
func NewImporterOptions(options ...ImporterOption) ImporterOptions {
	cfg := ImporterOptions{ValidateDocument: true}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
