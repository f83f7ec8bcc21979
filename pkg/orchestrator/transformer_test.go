package orchestrator_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-contentform/pkg/orchestrator"
	"github.com/goliatone/go-contentform/pkg/testsupport"
)

func TestJSONPresetTransformer(t *testing.T) {
	files := fstest.MapFS{"presets/article.json": {Data: []byte(`{
		"contentTypes": {
			"article": {
				"title": {"label": "Headline", "placeholder": "Keep it short"},
				"body": {"className": "col-md-8"}
			}
		}
	}`)}}
	transformer, err := orchestrator.NewJSONPresetTransformerFromFS(files, "presets/article.json")
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}

	props := testsupport.ArticleProps()
	if err := transformer.Transform(context.Background(), &props); err != nil {
		t.Fatalf("transform: %v", err)
	}

	title := props.Layout.Attributes["title"]
	if title.Label != "Headline" || title.Placeholder != "Keep it short" {
		t.Fatalf("title patch missing: %+v", title)
	}
	body := props.Layout.Attributes["body"]
	if body.ClassName != "col-md-8" || body.Appearance != "WYSIWYG" {
		t.Fatalf("body patch should keep appearance and replace class: %+v", body)
	}
	if original := testsupport.ArticleLayout().Attributes["body"]; original.ClassName != "col-md-12" {
		t.Fatalf("fixture layout mutated")
	}
}

func TestJSONPresetTransformer_Errors(t *testing.T) {
	if _, err := orchestrator.NewJSONPresetTransformer([]byte("  ")); err == nil {
		t.Fatalf("expected empty document error")
	}
	if _, err := orchestrator.NewJSONPresetTransformer([]byte("{")); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := orchestrator.NewJSONPresetTransformerFromFS(fstest.MapFS{}, "missing.json"); err == nil {
		t.Fatalf("expected missing file error")
	}

	transformer, err := orchestrator.NewJSONPresetTransformer([]byte(`{"contentTypes":{"article":{"nope":{"label":"x"}}}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	props := testsupport.ArticleProps()
	if err := transformer.Transform(context.Background(), &props); err == nil {
		t.Fatalf("expected unknown field error")
	}
	if err := transformer.Transform(context.Background(), nil); err == nil {
		t.Fatalf("expected nil props error")
	}
}
