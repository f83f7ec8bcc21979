package contentform_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	contentform "github.com/goliatone/go-contentform"
	"github.com/goliatone/go-contentform/pkg/editform"
	pkgopenapi "github.com/goliatone/go-contentform/pkg/openapi"
	"github.com/goliatone/go-contentform/pkg/renderers/tui"
	"github.com/goliatone/go-contentform/pkg/testsupport"
)

func TestNewRegistry(t *testing.T) {
	registry, err := contentform.NewRegistry(contentform.RegistryOptions{})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if diff := cmp.Diff([]string{"tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("registry mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_Vanilla(t *testing.T) {
	out, err := contentform.Generate(context.Background(), testsupport.ArticleStore(t), "article", "vanilla", contentform.GenerateOptions{
		Record:         map[string]any{"title": "Hello"},
		DidCheckErrors: true,
		Errors:         testsupport.ArticleProps().FormErrors,
		RenderOptions:  contentform.RenderOptions{Action: "/articles/1", Method: "PUT"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		`action="/articles/1"`,
		`<input type="hidden" name="_method" value="PUT">`,
		`Title is too short`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output\n%s", want, html)
		}
	}
}

func TestGenerate_UnknownContentType(t *testing.T) {
	if _, err := contentform.Generate(context.Background(), testsupport.ArticleStore(t), "page", "vanilla", contentform.GenerateOptions{}); err == nil {
		t.Fatalf("expected unknown content type error")
	}
}

func TestLoadOpenAPI(t *testing.T) {
	files := fstest.MapFS{"api.yaml": {Data: []byte(`
openapi: 3.0.3
info: {title: Shop, version: "1"}
paths: {}
components:
  schemas:
    Product:
      type: object
      properties:
        name: {type: string}
        price: {type: number, minimum: 0}
`)}}
	loader := contentform.NewLoader(pkgopenapi.WithFileSystem(files))

	result, err := contentform.LoadOpenAPI(context.Background(), pkgopenapi.SourceFromFS("api.yaml"), loader)
	if err != nil {
		t.Fatalf("load openapi: %v", err)
	}
	store, err := result.Store()
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	var events []editform.Event
	out, err := contentform.Generate(context.Background(), store, "product", "vanilla", contentform.GenerateOptions{
		Validations: result.Validations["product"],
		OnChange:    func(e editform.Event) { events = append(events, e) },
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `<input type="number" id="cf-price" name="price"`) {
		t.Fatalf("expected number input\n%s", out)
	}
	if len(events) != 0 {
		t.Fatalf("html rendering must not emit events")
	}

	driver := &scriptedDriver{answers: []string{"Widget", "9.5"}}
	registry, err := contentform.NewRegistry(contentform.RegistryOptions{
		TUI: []tui.Option{tui.WithPromptDriver(driver)},
	})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	out, err = contentform.Generate(context.Background(), store, "product", "tui", contentform.GenerateOptions{
		Registry: registry,
		OnChange: func(e editform.Event) { events = append(events, e) },
	})
	if err != nil {
		t.Fatalf("generate tui: %v", err)
	}
	if string(out) != `{"name":"Widget","price":9.5}` {
		t.Fatalf("unexpected tui output %s", out)
	}
	if len(events) != 2 || events[0].Name != "name" || events[1].Value != 9.5 {
		t.Fatalf("unexpected change events %+v", events)
	}
}

// scriptedDriver answers text prompts in order. Other prompts are not used by
// the product fixture.
type scriptedDriver struct {
	tui.PromptDriver
	answers []string
}

func (d *scriptedDriver) Input(context.Context, tui.InputConfig) (string, error) {
	next := d.answers[0]
	d.answers = d.answers[1:]
	return next, nil
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }
