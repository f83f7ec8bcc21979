package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contentform/pkg/editform"
	"github.com/goliatone/go-contentform/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }

func (n namedRenderer) RenderForm(context.Context, editform.Form, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func (n namedRenderer) RenderPicker(context.Context, render.PickerView, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(namedRenderer("vanilla"))
	reg.MustRegister(namedRenderer("tui"))

	if err := reg.Register(namedRenderer("tui")); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected blank name error")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}

	if diff := cmp.Diff([]string{"tui", "vanilla"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	got, err := reg.Get("vanilla")
	if err != nil || got.Name() != "vanilla" {
		t.Fatalf("get vanilla: %v %v", got, err)
	}
	if _, err := reg.Get("preact"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
}
