package vanilla

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-contentform/pkg/editform"
	"github.com/goliatone/go-contentform/pkg/render/template"
	"github.com/goliatone/go-contentform/pkg/renderers/vanilla/components"
	"github.com/goliatone/go-contentform/pkg/widgets"
)

// componentRenderer renders the inputs of one form and records which
// components were used so their assets can be emitted once.
type componentRenderer struct {
	templates template.TemplateRenderer
	registry  *components.Registry
	widgets   *widgets.Registry
	partials  map[string]string

	used []string
	seen map[string]struct{}
}

func newComponentRenderer(templates template.TemplateRenderer, registry *components.Registry, widgetRegistry *widgets.Registry, partials map[string]string) *componentRenderer {
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}
	if widgetRegistry == nil {
		widgetRegistry = widgets.NewRegistry()
	}
	return &componentRenderer{
		templates: templates,
		registry:  registry,
		widgets:   widgetRegistry,
		partials:  partials,
		seen:      make(map[string]struct{}),
	}
}

// componentFor resolves the component of an input: a customInputs override
// for its kind wins over the widget registry strategy.
func (r *componentRenderer) componentFor(input editform.Input) string {
	if name := strings.TrimSpace(input.CustomInputs[string(input.Type)]); name != "" {
		if _, ok := r.registry.Descriptor(name); ok {
			return name
		}
	}
	return r.widgets.Strategy(input.Type)
}

func (r *componentRenderer) render(input editform.Input) (string, error) {
	componentName := r.componentFor(input)
	input.ClassName = sanitizeClassList(input.ClassName)
	descriptor, ok := r.registry.Descriptor(componentName)
	if !ok {
		return "", fmt.Errorf("component %q not registered for field %q", componentName, input.Name)
	}

	showErrors := input.DidCheckErrors && len(input.Errors) > 0
	description := ""
	if !componentHandlesDescription(componentName) {
		description = renderDescription(input.Description)
	}

	var describedBy []string
	if description != "" {
		describedBy = append(describedBy, componentDescriptionID(input.Name))
	}
	if showErrors {
		describedBy = append(describedBy, componentErrorsID(input.Name))
	}

	data := components.ComponentData{
		Template:      r.templates,
		ThemePartials: r.partials,
		ID:            componentControlID(input.Name),
		Attrs:         controlAttributes(input, describedBy, showErrors),
		Value:         formatValue(input.Value),
		HTMLType:      htmlInputType(input.Type),
	}

	var control bytes.Buffer
	if err := descriptor.Renderer(&control, input, data); err != nil {
		return "", fmt.Errorf("render component %q for field %q: %w", componentName, input.Name, err)
	}

	if _, exists := r.seen[componentName]; !exists {
		r.seen[componentName] = struct{}{}
		r.used = append(r.used, componentName)
	}

	return buildFieldMarkup(input, componentName, control.String(), description, showErrors), nil
}

func (r *componentRenderer) assets() (stylesheets []string, scripts []components.Script) {
	return r.registry.Assets(r.used)
}

// wrapperClass returns the column class of a field wrapper. A layout class
// name replaces the default column.
func wrapperClass(className string) string {
	if className == "" {
		return customBootstrapClass
	}
	return className
}

func buildFieldMarkup(input editform.Input, componentName, control, description string, showErrors bool) string {
	var builder strings.Builder
	builder.Grow(len(control) + 256)

	builder.WriteString(`<div class="`)
	builder.WriteString(string(ClassField))
	builder.WriteByte(' ')
	builder.WriteString(html.EscapeString(wrapperClass(input.ClassName)))
	if showErrors {
		builder.WriteString(" has-error")
	}
	builder.WriteString(`" data-field="`)
	builder.WriteString(html.EscapeString(input.Name))
	builder.WriteString(`" data-type="`)
	builder.WriteString(html.EscapeString(string(input.Type)))
	builder.WriteString(`" data-component="`)
	builder.WriteString(html.EscapeString(componentName))
	builder.WriteString(`">`)

	if label := strings.TrimSpace(input.Label); label != "" {
		builder.WriteString(`<label`)
		if labelSupportsFor(componentName) {
			builder.WriteString(` for="`)
			builder.WriteString(html.EscapeString(componentControlID(input.Name)))
			builder.WriteString(`"`)
		}
		builder.WriteString(`>`)
		builder.WriteString(html.EscapeString(label))
		if input.Validations.Required {
			builder.WriteString(`<span aria-hidden="true">*</span>`)
		}
		builder.WriteString(`</label>`)
	}

	builder.WriteString(control)

	if description != "" {
		builder.WriteString(`<div id="`)
		builder.WriteString(html.EscapeString(componentDescriptionID(input.Name)))
		builder.WriteString(`" class="`)
		builder.WriteString(string(ClassDescription))
		builder.WriteString(`">`)
		builder.WriteString(description)
		builder.WriteString(`</div>`)
	}

	if showErrors {
		builder.WriteString(`<ul id="`)
		builder.WriteString(html.EscapeString(componentErrorsID(input.Name)))
		builder.WriteString(`" class="`)
		builder.WriteString(string(ClassFieldErrors))
		builder.WriteString(`" role="alert">`)
		for _, message := range input.Errors {
			builder.WriteString(`<li>`)
			builder.WriteString(html.EscapeString(message))
			builder.WriteString(`</li>`)
		}
		builder.WriteString(`</ul>`)
	}

	builder.WriteString(`</div>`)
	return builder.String()
}
