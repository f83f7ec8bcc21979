package orchestrator_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contentform/pkg/editform"
	pkgopenapi "github.com/goliatone/go-contentform/pkg/openapi"
	"github.com/goliatone/go-contentform/pkg/orchestrator"
	"github.com/goliatone/go-contentform/pkg/picker"
	"github.com/goliatone/go-contentform/pkg/render"
	"github.com/goliatone/go-contentform/pkg/schema"
	"github.com/goliatone/go-contentform/pkg/testsupport"
)

type captureRenderer struct {
	form    editform.Form
	view    render.PickerView
	options render.RenderOptions
}

func (c *captureRenderer) Name() string        { return "capture" }
func (c *captureRenderer) ContentType() string { return "text/plain" }

func (c *captureRenderer) RenderForm(_ context.Context, form editform.Form, options render.RenderOptions) ([]byte, error) {
	c.form = form
	c.options = options
	return []byte(strings.Join(form.Names(), ",")), nil
}

func (c *captureRenderer) RenderPicker(_ context.Context, view render.PickerView, options render.RenderOptions) ([]byte, error) {
	c.view = view
	c.options = options
	return []byte(view.View.Toggle.Label), nil
}

func newCaptureOrchestrator(t *testing.T, options ...orchestrator.Option) (*orchestrator.Orchestrator, *captureRenderer) {
	t.Helper()
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)
	base := []orchestrator.Option{
		orchestrator.WithStore(testsupport.ArticleStore(t)),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(renderer.Name()),
	}
	return orchestrator.New(append(base, options...)...), renderer
}

func TestOrchestrator_Generate_Vanilla(t *testing.T) {
	gen := orchestrator.New(orchestrator.WithStore(testsupport.ArticleStore(t)))

	out, err := gen.Generate(context.Background(), orchestrator.Request{
		UID:    "article",
		Record: map[string]any{"title": "Hello"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		`<input type="text" id="cf-title" name="title" value="Hello"`,
		`data-field="gallery"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output\n%s", want, html)
		}
	}
}

func TestOrchestrator_Renderer(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(&captureRenderer{})
	orch := orchestrator.New(orchestrator.WithRegistry(registry), orchestrator.WithDefaultRenderer("capture"))

	got, err := orch.Renderer("")
	if err != nil || got.Name() != "capture" {
		t.Fatalf("default renderer: %v %v", got, err)
	}
	if _, err := orch.Renderer("vanilla"); err == nil {
		t.Fatalf("expected unregistered renderer error")
	}

	if got, err := orchestrator.New().Renderer(""); err != nil || got.Name() != "vanilla" {
		t.Fatalf("built-in default renderer: %v %v", got, err)
	}
}

func TestOrchestrator_Generate_BuildsProps(t *testing.T) {
	maxLength := 80
	gen, renderer := newCaptureOrchestrator(t, orchestrator.WithValidations(map[string][]schema.FieldValidation{
		"article": {{Name: "title", Validations: schema.Validations{MaxLength: &maxLength}}},
	}))

	var changed []editform.Event
	out, err := gen.Generate(context.Background(), orchestrator.Request{
		UID:            "article",
		Record:         map[string]any{"status": "published"},
		Errors:         []schema.FieldError{{Name: "status", Errors: []string{"bad"}}},
		DidCheckErrors: true,
		OnChange:       func(e editform.Event) { changed = append(changed, e) },
		RenderOptions:  render.RenderOptions{Action: "/save"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != "title,status,body,metadata,gallery" {
		t.Fatalf("unexpected field order %q", out)
	}

	title, _ := renderer.form.Input("title")
	if title.Validations.MaxLength == nil || *title.Validations.MaxLength != 80 {
		t.Fatalf("expected registered validations, got %+v", title.Validations)
	}
	status, _ := renderer.form.Input("status")
	if diff := cmp.Diff([]string{"bad"}, status.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if !status.DidCheckErrors || status.Value != "published" {
		t.Fatalf("unexpected status input %+v", status)
	}
	status.Change("draft")
	if len(changed) != 1 || changed[0].Value != "draft" {
		t.Fatalf("change handler not wired: %+v", changed)
	}
	if renderer.options.Action != "/save" {
		t.Fatalf("render options not forwarded: %+v", renderer.options)
	}
}

func TestOrchestrator_Generate_Errors(t *testing.T) {
	gen, _ := newCaptureOrchestrator(t)

	if _, err := gen.Generate(context.Background(), orchestrator.Request{}); err == nil {
		t.Fatalf("expected missing uid error")
	}
	if _, err := gen.Generate(context.Background(), orchestrator.Request{UID: "missing"}); err == nil {
		t.Fatalf("expected unknown content type error")
	}
	if _, err := gen.Generate(context.Background(), orchestrator.Request{UID: "article", Renderer: "preact"}); err == nil {
		t.Fatalf("expected unknown renderer error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := gen.Generate(ctx, orchestrator.Request{UID: "article"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled context, got %v", err)
	}

	if _, err := orchestrator.New().Generate(context.Background(), orchestrator.Request{UID: "article"}); err == nil {
		t.Fatalf("expected missing store error")
	}
}

func TestOrchestrator_AppliesTransformer(t *testing.T) {
	transformCalled := false
	transformer := orchestrator.TransformerFunc(func(_ context.Context, props *editform.Props) error {
		transformCalled = true
		props.Record = map[string]any{"title": "patched"}
		return nil
	})
	gen, renderer := newCaptureOrchestrator(t, orchestrator.WithTransformer(transformer))

	if _, err := gen.Generate(context.Background(), orchestrator.Request{UID: "article"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !transformCalled {
		t.Fatalf("expected transformer to be invoked")
	}
	if title, _ := renderer.form.Input("title"); title.Value != "patched" {
		t.Fatalf("transformer mutation missing: %+v", title)
	}

	failing := orchestrator.TransformerFunc(func(context.Context, *editform.Props) error {
		return errors.New("boom")
	})
	gen, _ = newCaptureOrchestrator(t, orchestrator.WithTransformer(failing))
	if _, err := gen.Generate(context.Background(), orchestrator.Request{UID: "article"}); err == nil {
		t.Fatalf("expected transformer error")
	}
}

type stubThemeSelector struct {
	selection *theme.Selection
	calls     [][2]string
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, [2]string{name, variant})
	return s.selection, nil
}

func TestOrchestrator_PassesThemeConfigToRenderer(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: &theme.Manifest{Name: "acme", Tokens: map[string]string{"brand": "#123456"}},
	}}
	gen, renderer := newCaptureOrchestrator(t, orchestrator.WithThemeSelector(selector))

	if _, err := gen.Generate(context.Background(), orchestrator.Request{
		UID:          "article",
		ThemeName:    "acme",
		ThemeVariant: "dark",
	}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff([][2]string{{"acme", "dark"}}, selector.calls); diff != "" {
		t.Fatalf("selector calls mismatch (-want +got):\n%s", diff)
	}
	cfg := renderer.options.Theme
	if cfg == nil || cfg.Theme != "acme" || cfg.CSSVars["--brand"] != "#123456" {
		t.Fatalf("unexpected theme config %+v", cfg)
	}

	explicit := &theme.RendererConfig{Theme: "explicit"}
	if _, err := gen.Generate(context.Background(), orchestrator.Request{
		UID:           "article",
		RenderOptions: render.RenderOptions{Theme: explicit},
	}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.options.Theme != explicit || len(selector.calls) != 1 {
		t.Fatalf("explicit theme should bypass the selector")
	}
}

func TestOrchestrator_GeneratePicker(t *testing.T) {
	gen, renderer := newCaptureOrchestrator(t)

	out, err := gen.GeneratePicker(context.Background(), orchestrator.PickerRequest{
		Props: picker.Props{SelectedFeature: "article"},
	})
	if err != nil {
		t.Fatalf("generate picker: %v", err)
	}
	if string(out) != "article" {
		t.Fatalf("unexpected label %q", out)
	}
	want := []picker.Feature{{Icon: "fa-cube", Name: "article", Description: "Article", Fields: 5}}
	if diff := cmp.Diff(want, renderer.view.Picker.Features()); diff != "" {
		t.Fatalf("features mismatch (-want +got):\n%s", diff)
	}

	custom := testsupport.Features()
	if _, err := gen.GeneratePicker(context.Background(), orchestrator.PickerRequest{
		Props: picker.Props{Features: custom, SelectedFeature: "group2"},
	}); err != nil {
		t.Fatalf("generate picker: %v", err)
	}
	if diff := cmp.Diff(custom, renderer.view.Picker.Features()); diff != "" {
		t.Fatalf("explicit features mismatch (-want +got):\n%s", diff)
	}
}

const blogDoc = `
openapi: 3.0.3
info: {title: Blog, version: "1.0"}
paths: {}
components:
  schemas:
    Post:
      type: object
      required: [headline]
      properties:
        headline: {type: string, maxLength: 120}
        draft: {type: boolean}
`

func TestOrchestrator_Import(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.yaml")
	if err := os.WriteFile(path, []byte(blogDoc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	gen, renderer := newCaptureOrchestrator(t)
	result, err := gen.Import(context.Background(), pkgopenapi.SourceFromFile(path))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(result.ContentTypes) != 1 {
		t.Fatalf("expected one content type, got %d", len(result.ContentTypes))
	}
	if diff := cmp.Diff([]string{"post"}, gen.Store().UIDs()); diff != "" {
		t.Fatalf("store mismatch (-want +got):\n%s", diff)
	}

	if _, err := gen.Generate(context.Background(), orchestrator.Request{UID: "post"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	headline, ok := renderer.form.Input("headline")
	if !ok || !headline.Validations.Required || headline.Validations.MaxLength == nil {
		t.Fatalf("expected imported validations, got %+v", headline)
	}
	if draft, _ := renderer.form.Input("draft"); draft.Type != "checkbox" {
		t.Fatalf("expected checkbox for boolean, got %q", draft.Type)
	}
}
