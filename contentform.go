package contentform

import (
	"context"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-contentform/internal/openapi/loader"
	internalParser "github.com/goliatone/go-contentform/internal/openapi/parser"
	"github.com/goliatone/go-contentform/pkg/editform"
	pkgopenapi "github.com/goliatone/go-contentform/pkg/openapi"
	"github.com/goliatone/go-contentform/pkg/orchestrator"
	"github.com/goliatone/go-contentform/pkg/render"
	"github.com/goliatone/go-contentform/pkg/renderers/tui"
	"github.com/goliatone/go-contentform/pkg/renderers/vanilla"
	"github.com/goliatone/go-contentform/pkg/schema"
)

// RenderOptions describes per-request overrides renderers can use, such as
// the form action, method or theme.
type RenderOptions = render.RenderOptions

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return internalLoader.New(pkgopenapi.NewLoaderOptions(options...))
}

// NewImporter constructs an importer backed by kin-openapi.
func NewImporter(options ...pkgopenapi.ImporterOption) pkgopenapi.Importer {
	return internalParser.New(pkgopenapi.NewImporterOptions(options...))
}

// LoadOpenAPI loads src and imports its component schemas as content types.
func LoadOpenAPI(ctx context.Context, src pkgopenapi.Source, loader pkgopenapi.Loader, options ...pkgopenapi.ImporterOption) (pkgopenapi.Result, error) {
	if loader == nil {
		loader = NewLoader()
	}
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return pkgopenapi.Result{}, err
	}
	return NewImporter(options...).Import(ctx, doc)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RegistryOptions configures the renderers registered by NewRegistry.
type RegistryOptions struct {
	Vanilla []vanilla.Option
	TUI     []tui.Option
}

// NewRegistry returns a registry holding the vanilla HTML and terminal
// renderers.
func NewRegistry(options RegistryOptions) (*render.Registry, error) {
	registry := render.NewRegistry()

	html, err := vanilla.New(options.Vanilla...)
	if err != nil {
		return nil, fmt.Errorf("contentform: vanilla renderer: %w", err)
	}
	if err := registry.Register(html); err != nil {
		return nil, err
	}

	terminal, err := tui.New(options.TUI...)
	if err != nil {
		return nil, fmt.Errorf("contentform: tui renderer: %w", err)
	}
	if err := registry.Register(terminal); err != nil {
		return nil, err
	}
	return registry, nil
}

// GenerateOptions carries the per-record inputs of Generate.
type GenerateOptions struct {
	Record         map[string]any
	Validations    []schema.FieldValidation
	Errors         []schema.FieldError
	DidCheckErrors bool
	OnChange       editform.EventHandler
	OnBlur         editform.EventHandler

	// Registry overrides the renderers; nil uses NewRegistry defaults.
	Registry *render.Registry
	// ThemeSelector, ThemeName and ThemeVariant resolve RenderOptions.Theme
	// when it is nil.
	ThemeSelector theme.ThemeSelector
	ThemeName     string
	ThemeVariant  string

	RenderOptions RenderOptions
}

// Generate builds the edit form of the content type uid from store and
// renders it with the named renderer.
func Generate(ctx context.Context, store *schema.Store, uid, rendererName string, options GenerateOptions) ([]byte, error) {
	registry := options.Registry
	if registry == nil {
		var err error
		registry, err = NewRegistry(RegistryOptions{})
		if err != nil {
			return nil, err
		}
	}

	gen := orchestrator.New(
		orchestrator.WithStore(store),
		orchestrator.WithRegistry(registry),
		orchestrator.WithThemeSelector(options.ThemeSelector),
	)
	return gen.Generate(ctx, orchestrator.Request{
		UID:            uid,
		Renderer:       rendererName,
		Record:         options.Record,
		Validations:    options.Validations,
		Errors:         options.Errors,
		DidCheckErrors: options.DidCheckErrors,
		OnChange:       options.OnChange,
		OnBlur:         options.OnBlur,
		ThemeName:      options.ThemeName,
		ThemeVariant:   options.ThemeVariant,
		RenderOptions:  options.RenderOptions,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeProvider constructs a go-theme selector from a ThemeProvider.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeProvider(provider, defaultTheme, defaultVariant)
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the vanilla stylesheet.
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
