package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contentform/pkg/editform"
	"github.com/goliatone/go-contentform/pkg/orchestrator"
	"github.com/goliatone/go-contentform/pkg/render"
	"github.com/goliatone/go-contentform/pkg/renderers/vanilla"
	"github.com/goliatone/go-contentform/pkg/testsupport"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv, err := NewServer(
		WithOrchestrator(orchestrator.New(orchestrator.WithStore(testsupport.ArticleStore(t)))),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestNewServer_RequiresStore(t *testing.T) {
	if _, err := NewServer(); err == nil {
		t.Fatalf("expected missing orchestrator error")
	}
}

type plainRenderer struct{}

func (plainRenderer) Name() string        { return "plain" }
func (plainRenderer) ContentType() string { return "text/plain" }

func (plainRenderer) RenderForm(context.Context, editform.Form, render.RenderOptions) ([]byte, error) {
	return nil, nil
}

func (plainRenderer) RenderPicker(context.Context, render.PickerView, render.RenderOptions) ([]byte, error) {
	return nil, nil
}

func TestNewServer_RequiresHTMLRenderer(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(plainRenderer{})
	orch := orchestrator.New(
		orchestrator.WithStore(testsupport.ArticleStore(t)),
		orchestrator.WithRegistry(registry),
	)

	if _, err := NewServer(WithOrchestrator(orch), WithRenderer("plain")); err == nil {
		t.Fatalf("expected non-HTML renderer to be rejected")
	}
	if _, err := NewServer(WithOrchestrator(orch), WithRenderer("missing")); err == nil {
		t.Fatalf("expected unknown renderer to be rejected")
	}
}

func TestListContentTypes(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.Client(), ts.URL+"/content-types")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	var payload contentTypesResponse
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff([]string{"article"}, payload.ContentTypes); diff != "" {
		t.Fatalf("content types mismatch (-want +got):\n%s", diff)
	}
}

func TestEditForm(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.Client(), ts.URL+"/content-types/article/edit")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	for _, want := range []string{
		`action="/content-types/article"`,
		`<input type="hidden" name="_method" value="PUT">`,
		`id="cf-title"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body\n%s", want, body)
		}
	}

	resp, _ = get(t, ts.Client(), ts.URL+"/content-types/page/edit")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown content type, got %d", resp.StatusCode)
	}
}

func TestPicker(t *testing.T) {
	ts := newTestServer(t)

	_, closed := get(t, ts.Client(), ts.URL+"/content-types/article/picker")
	if !strings.Contains(closed, `name="open" value="1"`) {
		t.Fatalf("closed picker should offer to open\n%s", closed)
	}

	_, open := get(t, ts.Client(), ts.URL+"/content-types/article/picker?open=1")
	for _, want := range []string{
		`data-open="true"`,
		`<button type="submit" name="click" value="0">`,
	} {
		if !strings.Contains(open, want) {
			t.Fatalf("expected %q in open picker\n%s", want, open)
		}
	}

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	resp, _ := get(t, client, ts.URL+"/content-types/article/picker?open=1&selected=article&click=0")
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/content-types/article/edit" {
		t.Fatalf("expected redirect to edit page, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	resp, _ = get(t, client, ts.URL+"/content-types/article/picker?click=3")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for out of range click, got %d", resp.StatusCode)
	}
	resp, _ = get(t, client, ts.URL+"/content-types/article/picker?click=first")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid click, got %d", resp.StatusCode)
	}
}

func TestMetricsAndAssets(t *testing.T) {
	ts := newTestServer(t)

	get(t, ts.Client(), ts.URL+"/content-types/article/edit")
	get(t, ts.Client(), ts.URL+"/content-types/page/edit")

	_, metrics := get(t, ts.Client(), ts.URL+"/metrics")
	for _, want := range []string{
		`contentform_renders_total{outcome="ok",renderer="vanilla",view="form"} 1`,
		`contentform_renders_total{outcome="not_found",renderer="vanilla",view="form"} 1`,
		`contentform_render_duration_seconds_count{renderer="vanilla",view="form"} 1`,
	} {
		if !strings.Contains(metrics, want) {
			t.Fatalf("expected %q in metrics\n%s", want, metrics)
		}
	}

	resp, css := get(t, ts.Client(), ts.URL+AssetsPrefix+vanilla.StylesheetName)
	if resp.StatusCode != http.StatusOK || !strings.Contains(css, ".contentform-") {
		t.Fatalf("expected stylesheet, got %d", resp.StatusCode)
	}
}
