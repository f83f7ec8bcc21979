package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-contentform/pkg/editform"
	"github.com/goliatone/go-contentform/pkg/schema"
)

// Transformer mutates edit form props before the form is built.
// Implementations can patch layouts, seed records, or rewrite labels.
type Transformer interface {
	Transform(ctx context.Context, props *editform.Props) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, props *editform.Props) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, props *editform.Props) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, props)
}

// JSONPresetTransformer applies declarative layout overrides loaded from a
// JSON file. Patches are keyed by content type UID, then field name:
//
//	{
//	  "contentTypes": {
//	    "article": {
//	      "title": {"label": "Headline", "placeholder": "Keep it short"},
//	      "body": {"appearance": "WYSIWYG", "className": "col-md-12"}
//	    }
//	  }
//	}
//
// Non-empty patch values replace the layout's.
type JSONPresetTransformer struct {
	document jsonTransformDocument
}

type jsonTransformDocument struct {
	ContentTypes map[string]map[string]schema.AttributeLayout `json:"contentTypes"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document jsonTransformDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON transformer document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the patches registered for the props' content type.
// Patching a field the content type does not display is an error.
func (t *JSONPresetTransformer) Transform(ctx context.Context, props *editform.Props) error {
	if props == nil {
		return errors.New("json preset transformer: props are nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	patches := t.document.ContentTypes[props.Schema.UID]
	if len(patches) == 0 {
		return nil
	}

	known := make(map[string]bool)
	for _, name := range schema.OrderedFields(props.Schema) {
		known[name] = true
	}

	attributes := make(map[string]schema.AttributeLayout, len(props.Layout.Attributes)+len(patches))
	for name, layout := range props.Layout.Attributes {
		attributes[name] = layout
	}
	for name, patch := range patches {
		if !known[name] {
			return fmt.Errorf("json preset transformer: field %q not found in %q", name, props.Schema.UID)
		}
		attributes[name] = applyLayoutPatch(attributes[name], patch)
	}
	props.Layout = schema.Layout{Attributes: attributes}
	return nil
}

func applyLayoutPatch(layout, patch schema.AttributeLayout) schema.AttributeLayout {
	mergeString(&layout.Label, patch.Label)
	mergeString(&layout.Placeholder, patch.Placeholder)
	mergeString(&layout.ClassName, patch.ClassName)
	mergeString(&layout.Description, patch.Description)
	mergeString(&layout.Appearance, patch.Appearance)
	mergeString(&layout.Type, patch.Type)
	return layout
}

func mergeString(dst *string, value string) {
	if strings.TrimSpace(value) != "" {
		*dst = value
	}
}
