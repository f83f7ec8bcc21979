package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contentform/pkg/editform"
	"github.com/goliatone/go-contentform/pkg/picker"
	"github.com/goliatone/go-contentform/pkg/schema"
)

// ArticleContentType is the content type most renderer and server tests are
// built on: a text title, an enumeration, a rich text body, a JSON blob and
// a multiple upload relation.
func ArticleContentType() schema.ContentType {
	return schema.ContentType{
		UID:  "article",
		Name: "Article",
		Attributes: map[string]schema.Attribute{
			"title":    {Type: "string", Label: "Title", Required: true},
			"status":   {Type: "enumeration", Enum: []string{"draft", "published"}},
			"body":     {Type: "text", Description: "Supports **markdown**."},
			"metadata": {Type: "json"},
		},
		Relations: map[string]schema.Relation{
			"gallery": {Collection: "file", Plugin: schema.PluginUpload, Nature: schema.NatureManyToMany},
		},
		EditDisplay: schema.EditDisplay{
			Fields: []string{"title", "status", "body", "metadata", "gallery"},
			AvailableFields: map[string]schema.FieldDetails{
				"title":  {Type: "string", Label: "Title", Placeholder: "A catchy title"},
				"status": {Type: "enumeration", Label: "Status"},
			},
		},
	}
}

// ArticleLayout switches the body to the wysiwyg widget.
func ArticleLayout() schema.Layout {
	return schema.Layout{
		Attributes: map[string]schema.AttributeLayout{
			"body": {Appearance: "WYSIWYG", ClassName: "col-md-12"},
		},
	}
}

// ArticleStore wraps the article fixture in a store.
func ArticleStore(t *testing.T) *schema.Store {
	t.Helper()

	store, err := schema.NewStore(
		[]schema.ContentType{ArticleContentType()},
		map[string]schema.Layout{"article": ArticleLayout()},
	)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

// ArticleProps returns edit form props for the article fixture with a
// record, validations and errors populated.
func ArticleProps() editform.Props {
	ct := ArticleContentType()
	maxLength := 80
	return editform.Props{
		Record: map[string]any{
			"title":  "Hello",
			"status": "draft",
		},
		Schema:     ct,
		Layout:     ArticleLayout(),
		Attributes: ct.Attributes,
		FormValidations: []schema.FieldValidation{
			{Name: "title", Validations: schema.Validations{Required: true, MaxLength: &maxLength}},
		},
		FormErrors: []schema.FieldError{
			{Name: "title", Errors: []string{"Title is too short"}},
		},
	}
}

// Features returns two picker features without sources.
func Features() []picker.Feature {
	return []picker.Feature{
		{Icon: "fa-cube", Name: "group1", Fields: 2},
		{Icon: "fa-cube", Name: "group2", Fields: 2},
	}
}

// LoadStore parses every schema document under dir.
func LoadStore(t *testing.T, dir string) *schema.Store {
	t.Helper()

	store, err := LoadStoreFromPath(dir)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return store
}

// LoadStoreFromPath returns a Store without requiring testing.T.
func LoadStoreFromPath(dir string) (*schema.Store, error) {
	if dir == "" {
		return nil, errors.New("testsupport: schema dir is required")
	}
	store, err := schema.LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("testsupport: load schema dir: %w", err)
	}
	return store, nil
}

// MustLoadForm loads a JSON golden file into a Form.
func MustLoadForm(t *testing.T, path string) editform.Form {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load golden: %v", err)
	}
	var out editform.Form
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// WriteGolden writes arbitrary data as indented JSON to a golden file when
// UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	writeFile(t, path, payload)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	writeFile(t, path, data)
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}
