package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contentform/pkg/editform"
	"github.com/goliatone/go-contentform/pkg/render"
	rendertemplate "github.com/goliatone/go-contentform/pkg/render/template"
	gotemplate "github.com/goliatone/go-contentform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-contentform/pkg/renderers/vanilla/components"
	"github.com/goliatone/go-contentform/pkg/widgets"
)

// Name is the registry key of the vanilla renderer.
const Name = "vanilla"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	components       *components.Registry
	widgets          *widgets.Registry
	stylesheetURL    string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponentRegistry replaces the default component registry.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.components = registry
		}
	}
}

// WithWidgetRegistry replaces the kind to component bindings.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.widgets = registry
		}
	}
}

// WithStylesheetURL links a stylesheet when the active theme does not
// provide one.
func WithStylesheetURL(url string) Option {
	return func(cfg *config) {
		cfg.stylesheetURL = strings.TrimSpace(url)
	}
}

type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	components    *components.Registry
	widgets       *widgets.Registry
	stylesheetURL string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.components == nil {
		cfg.components = components.NewDefaultRegistry()
	}
	if cfg.widgets == nil {
		cfg.widgets = widgets.NewRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:     renderer,
		components:    cfg.components,
		widgets:       cfg.widgets,
		stylesheetURL: cfg.stylesheetURL,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// RenderForm renders every input in form order inside a single <form>.
func (r *Renderer) RenderForm(ctx context.Context, form editform.Form, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	fields := newComponentRenderer(r.templates, r.components, r.widgets, themePartials(options.Theme))
	rendered := make([]string, 0, len(form.Inputs))
	for _, input := range form.Inputs {
		markup, err := fields.render(input)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: %w", err)
		}
		rendered = append(rendered, markup)
	}
	stylesheets, scripts := fields.assets()

	method, override := resolveMethod(options.Method)
	data := r.chromeData(options.Theme)
	data["form"] = form
	data["fields"] = rendered
	data["classes"] = formClasses()
	data["method"] = method
	data["methodOverride"] = override
	data["action"] = strings.TrimSpace(options.Action)
	data["formErrors"] = render.MergeFormErrors(options.FormErrors)
	data["stylesheets"] = stylesheets
	data["scripts"] = scriptData(scripts)

	result, err := r.templates.RenderTemplate("templates/form.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// RenderPicker renders the feature picker as a GET form: the toggle button
// submits open=1/0 and every item submits click=<index>.
func (r *Renderer) RenderPicker(ctx context.Context, view render.PickerView, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	data := r.chromeData(options.Theme)
	data["view"] = view.View
	data["classes"] = pickerClasses()
	data["action"] = strings.TrimSpace(options.Action)

	result, err := r.templates.RenderTemplate("templates/picker.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render picker template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) chromeData(cfg *theme.RendererConfig) map[string]any {
	data := map[string]any{
		"stylesheet": r.stylesheetURL,
	}
	if cfg == nil {
		return data
	}
	data["theme"] = map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
	}
	data["style"] = styleFromCSSVars(cfg.CSSVars)
	if cfg.AssetURL != nil {
		if href := cfg.AssetURL("stylesheet"); href != "" {
			data["stylesheet"] = href
		}
	}
	return data
}

func themePartials(cfg *theme.RendererConfig) map[string]string {
	if cfg == nil {
		return nil
	}
	return cfg.Partials
}

// resolveMethod maps the requested verb onto what an HTML form can submit.
// Verbs other than GET and POST are sent as POST with an override value.
func resolveMethod(method string) (string, string) {
	upper := strings.ToUpper(strings.TrimSpace(method))
	switch upper {
	case "", http.MethodPost:
		return "post", ""
	case http.MethodGet:
		return "get", ""
	default:
		return "post", upper
	}
}

func scriptData(scripts []components.Script) []map[string]any {
	if len(scripts) == 0 {
		return nil
	}
	out := make([]map[string]any, 0, len(scripts))
	for _, script := range scripts {
		out = append(out, map[string]any{
			"src":    script.Src,
			"inline": script.Inline,
			"defer":  script.Defer,
			"module": script.Module,
		})
	}
	return out
}
