package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contentform/pkg/render"
	"github.com/goliatone/go-contentform/pkg/schema"
)

func TestMapErrorPayload(t *testing.T) {
	fields := []string{"title", "email", "cover"}
	payload := map[string][]string{
		"/data/email":      {"Email invalid", " Email invalid "},
		"title":            {"required"},
		"body.cover[0]":    {"Too large"},
		"non_field_errors": {"Form level error"},
		"unknown.field":    {"Falls back to form"},
		"":                 {"  "},
	}

	mapped := render.MapErrorPayload(fields, payload)

	wantFields := []schema.FieldError{
		{Name: "title", Errors: []string{"required"}},
		{Name: "email", Errors: []string{"Email invalid"}},
		{Name: "cover", Errors: []string{"Too large"}},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{"Form level error", "Falls back to form"}
	if diff := cmp.Diff(wantForm, mapped.Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorPayload_Empty(t *testing.T) {
	mapped := render.MapErrorPayload([]string{"a"}, nil)
	if mapped.Fields != nil || mapped.Form != nil {
		t.Fatalf("expected empty mapping, got %+v", mapped)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	if diff := cmp.Diff([]string{"First", "Second", "third"}, merged); diff != "" {
		t.Fatalf("merged mismatch (-want +got):\n%s", diff)
	}
}
