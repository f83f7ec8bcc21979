package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-contentform/internal/openapi/loader"
	internalParser "github.com/goliatone/go-contentform/internal/openapi/parser"
	"github.com/goliatone/go-contentform/pkg/editform"
	pkgopenapi "github.com/goliatone/go-contentform/pkg/openapi"
	"github.com/goliatone/go-contentform/pkg/picker"
	"github.com/goliatone/go-contentform/pkg/render"
	"github.com/goliatone/go-contentform/pkg/renderers/vanilla"
	"github.com/goliatone/go-contentform/pkg/schema"
)

const (
	defaultRendererName = "vanilla"
	defaultFeatureIcon  = "fa-cube"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithStore sets the schema store forms are generated from.
func WithStore(store *schema.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithValidations registers validations per content type UID. Requests
// without their own validations fall back to these.
func WithValidations(validations map[string][]schema.FieldValidation) Option {
	return func(o *Orchestrator) {
		if len(validations) == 0 {
			return
		}
		if o.validations == nil {
			o.validations = make(map[string][]schema.FieldValidation, len(validations))
		}
		for uid, rules := range validations {
			o.validations[uid] = rules
		}
	}
}

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithImporter injects a custom OpenAPI importer.
func WithImporter(importer pkgopenapi.Importer) Option {
	return func(o *Orchestrator) {
		o.importer = importer
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformer registers a Transformer that can mutate props before the
// form is built.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithThemeSelector resolves theme/variant choices ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeProvider builds a go-theme selector from provider.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		if provider == nil {
			return
		}
		o.themeSelector = theme.Selector{
			Registry:       provider,
			DefaultTheme:   defaultTheme,
			DefaultVariant: defaultVariant,
		}
	}
}

// Orchestrator coordinates the pipeline from content type schema to rendered
// output. Missing dependencies fall back to the built-in implementations
// (vanilla renderer, kin-openapi importer).
type Orchestrator struct {
	store           *schema.Store
	validations     map[string][]schema.FieldValidation
	loader          pkgopenapi.Loader
	importer        pkgopenapi.Importer
	registry        *render.Registry
	defaultRenderer string
	transformer     Transformer
	themeSelector   theme.ThemeSelector
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render the edit form of one
// content type.
type Request struct {
	// UID selects the content type in the store.
	UID string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	Record         map[string]any
	Validations    []schema.FieldValidation
	Errors         []schema.FieldError
	DidCheckErrors bool
	ResetProps     bool
	OnChange       editform.EventHandler
	OnBlur         editform.EventHandler

	// ThemeName and ThemeVariant are resolved through the theme selector when
	// RenderOptions.Theme is nil.
	ThemeName    string
	ThemeVariant string

	RenderOptions render.RenderOptions
}

// PickerRequest describes a feature picker render. When Props.Features is
// empty the store's content types are listed.
type PickerRequest struct {
	Props        picker.Props
	Renderer     string
	ThemeName    string
	ThemeVariant string

	RenderOptions render.RenderOptions
}

// Store returns the schema store currently in use.
func (o *Orchestrator) Store() *schema.Store {
	return o.store
}

// Import loads src and replaces the store and validations with the imported
// content types.
func (o *Orchestrator) Import(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Result, error) {
	if err := ctx.Err(); err != nil {
		return pkgopenapi.Result{}, err
	}
	if src == nil {
		return pkgopenapi.Result{}, errors.New("orchestrator: source is required")
	}
	doc, err := o.loader.Load(ctx, src)
	if err != nil {
		return pkgopenapi.Result{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	result, err := o.importer.Import(ctx, doc)
	if err != nil {
		return pkgopenapi.Result{}, fmt.Errorf("orchestrator: import document: %w", err)
	}
	store, err := result.Store()
	if err != nil {
		return pkgopenapi.Result{}, fmt.Errorf("orchestrator: build store: %w", err)
	}
	o.store = store
	o.validations = result.Validations
	return result, nil
}

// Props assembles the edit form props for req without rendering.
func (o *Orchestrator) Props(req Request) (editform.Props, error) {
	if o.store == nil {
		return editform.Props{}, errors.New("orchestrator: schema store is nil")
	}
	if req.UID == "" {
		return editform.Props{}, errors.New("orchestrator: content type uid is required")
	}
	ct, ok := o.store.ContentType(req.UID)
	if !ok {
		return editform.Props{}, fmt.Errorf("orchestrator: content type %q not found", req.UID)
	}

	validations := req.Validations
	if validations == nil {
		validations = o.validations[req.UID]
	}
	return editform.Props{
		Record:          req.Record,
		Schema:          ct,
		Layout:          o.store.Layout(req.UID),
		Attributes:      ct.Attributes,
		FormValidations: validations,
		FormErrors:      req.Errors,
		DidCheckErrors:  req.DidCheckErrors,
		ResetProps:      req.ResetProps,
		OnChange:        req.OnChange,
		OnBlur:          req.OnBlur,
	}, nil
}

// Generate executes the store → props → transformer → form → renderer
// sequence and returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	props, err := o.Props(req)
	if err != nil {
		return nil, err
	}
	if err := o.applyTransformer(ctx, &props); err != nil {
		return nil, err
	}
	form := editform.Build(props)

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}
	options, err := o.withTheme(req.RenderOptions, req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, err
	}

	output, err := renderer.RenderForm(ctx, form, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render form: %w", err)
	}
	return output, nil
}

// GeneratePicker renders a feature picker.
func (o *Orchestrator) GeneratePicker(ctx context.Context, req PickerRequest) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	props := req.Props
	if len(props.Features) == 0 {
		props.Features = o.Features()
	}
	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}
	options, err := o.withTheme(req.RenderOptions, req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, err
	}

	output, err := renderer.RenderPicker(ctx, render.NewPickerView(picker.New(props)), options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render picker: %w", err)
	}
	return output, nil
}

// Features lists the store's content types as picker features, in UID order.
func (o *Orchestrator) Features() []picker.Feature {
	if o.store == nil {
		return nil
	}
	uids := o.store.UIDs()
	features := make([]picker.Feature, 0, len(uids))
	for _, uid := range uids {
		ct, _ := o.store.ContentType(uid)
		name := ct.Name
		if name == "" {
			name = uid
		}
		features = append(features, picker.Feature{
			Icon:        defaultFeatureIcon,
			Name:        uid,
			Description: name,
			Fields:      len(schema.OrderedFields(ct)),
		})
	}
	return features
}

func (o *Orchestrator) withTheme(options render.RenderOptions, name, variant string) (render.RenderOptions, error) {
	if options.Theme != nil || o.themeSelector == nil {
		return options, nil
	}
	cfg, err := render.ResolveTheme(o.themeSelector, name, variant)
	if err != nil {
		return options, fmt.Errorf("orchestrator: %w", err)
	}
	options.Theme = cfg
	return options, nil
}

// Renderer returns the registry renderer called name, or the default renderer
// when name is empty.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	return o.rendererFor(name)
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, props *editform.Props) error {
	if o.transformer == nil || props == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, props); err != nil {
		return fmt.Errorf("orchestrator: transform props: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.importer == nil {
		o.importer = internalParser.New(pkgopenapi.NewImporterOptions())
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
