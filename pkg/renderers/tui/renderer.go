package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-contentform/pkg/editform"
	"github.com/goliatone/go-contentform/pkg/render"
	"github.com/goliatone/go-contentform/pkg/widgets"
)

// Name is the registry key of the terminal renderer.
const Name = "tui"

// Renderer implements render.Renderer for terminal-driven sessions. Forms are
// walked input by input; every collected value is reported to the input's
// change and blur handlers before the result is serialized.
type Renderer struct {
	driver            PromptDriver
	out               io.Writer
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		theme: Theme{
			InfoPrefix:  "i ",
			ErrorPrefix: "x ",
		},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = NewSurveyDriver(r.out)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by RenderForm.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// RenderForm prompts every input in form order and returns the collected
// values.
func (r *Renderer) RenderForm(ctx context.Context, form editform.Form, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	state := NewState(form)
	for _, message := range opts.FormErrors {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
			return nil, err
		}
	}

	for _, input := range form.Inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, message := range state.ErrorsFor(input.Name) {
			if err := r.driver.Info(ctx, fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, displayLabel(input), message)); err != nil {
				return nil, err
			}
		}
		value, err := r.promptInput(ctx, input, state)
		if err != nil {
			return nil, fmt.Errorf("tui: prompt %q: %w", input.Name, err)
		}
		state.SetValue(input.Name, value)
		input.Change(value)
		input.Blur(value)
	}

	values := state.Values()
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}

	return r.serialize(state.Order(), values)
}

// RenderPicker opens the picker, lets the user choose a feature, forwards the
// choice to the picker's click handler and closes it again.
func (r *Renderer) RenderPicker(ctx context.Context, view render.PickerView, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if view.Picker == nil {
		return nil, ErrPickerRequired
	}
	features := view.Picker.Features()
	if len(features) == 0 {
		return nil, ErrNoFeatures
	}

	if !view.View.Open {
		view.Picker.Toggle()
	}

	options := make([]string, len(features))
	defaultIdx := -1
	for idx, item := range view.View.Items {
		label := fmt.Sprintf("%s (%d fields)", item.Feature.Name, item.Feature.Fields)
		if item.Feature.IsTemporary {
			label += " *"
		}
		options[idx] = label
		if item.Active {
			defaultIdx = idx
		}
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      pickerMessage(view),
			Options:      options,
			DefaultIndex: defaultIdx,
		})
		if err != nil {
			return nil, err
		}
		if !view.Picker.Click(idx) {
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+"Invalid selection"); err != nil {
				return nil, err
			}
			continue
		}
		view.Picker.Close()

		selected := features[idx]
		return r.serialize([]string{"selected"}, map[string]any{"selected": selected.Name})
	}
}

func pickerMessage(view render.PickerView) string {
	toggle := view.View.Toggle
	message := toggle.Label
	if message == "" {
		message = "Select a feature"
	}
	if toggle.Source != "" {
		message += " (" + toggle.Source + ")"
	}
	return message
}

func (r *Renderer) promptInput(ctx context.Context, input editform.Input, state *State) (any, error) {
	switch input.Type {
	case widgets.KindCheckbox:
		return r.promptCheckbox(ctx, input, state)
	case widgets.KindNumber:
		return r.promptNumber(ctx, input, state)
	case widgets.KindSelect:
		if len(input.SelectOptions) > 0 {
			return r.promptSelect(ctx, input, state)
		}
		return r.promptString(ctx, input, state, nil)
	case widgets.KindPassword:
		return r.promptString(ctx, input, state, nil)
	case widgets.KindTextarea, widgets.KindWysiwyg:
		return r.promptString(ctx, input, state, nil)
	case widgets.KindJSON:
		return r.promptJSON(ctx, input, state)
	case widgets.KindFile:
		return r.promptFile(ctx, input, state)
	case widgets.KindDate:
		return r.promptString(ctx, input, state, validateDate)
	case widgets.KindEmail:
		return r.promptString(ctx, input, state, validateEmail)
	default:
		return r.promptString(ctx, input, state, nil)
	}
}

func (r *Renderer) promptString(ctx context.Context, input editform.Input, state *State, check func(string) error) (any, error) {
	rules := newValidationRules(input)
	cfg := InputConfig{
		Message:     displayLabel(input),
		Default:     defaultStringValue(state, input.Name),
		Help:        displayHelp(input),
		Placeholder: input.Placeholder,
	}

	for {
		var (
			response string
			err      error
		)
		switch input.Type {
		case widgets.KindPassword:
			response, err = r.driver.Password(ctx, cfg)
		case widgets.KindTextarea, widgets.KindWysiwyg:
			response, err = r.driver.TextArea(ctx, TextAreaConfig{
				Message: cfg.Message,
				Default: cfg.Default,
				Help:    cfg.Help,
			})
		default:
			response, err = r.driver.Input(ctx, cfg)
		}
		if err != nil {
			return nil, err
		}

		if !rules.required && strings.TrimSpace(response) == "" {
			return nil, nil
		}
		if err := rules.validateString(response); err != nil {
			r.invalid(ctx, input, err)
			continue
		}
		if check != nil {
			if err := check(strings.TrimSpace(response)); err != nil {
				r.invalid(ctx, input, err)
				continue
			}
		}
		return response, nil
	}
}

func (r *Renderer) promptCheckbox(ctx context.Context, input editform.Input, state *State) (any, error) {
	return r.driver.Confirm(ctx, ConfirmConfig{
		Message: displayLabel(input),
		Default: defaultBoolValue(state, input.Name),
		Help:    displayHelp(input),
	})
}

func (r *Renderer) promptNumber(ctx context.Context, input editform.Input, state *State) (any, error) {
	rules := newValidationRules(input)
	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message: displayLabel(input),
			Default: defaultStringValue(state, input.Name),
			Help:    displayHelp(input),
		})
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(response) == "" {
			if rules.required {
				r.invalid(ctx, input, errors.New("required"))
				continue
			}
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(response), 64)
		if err != nil {
			r.invalid(ctx, input, err)
			continue
		}
		if err := rules.validateNumber(parsed); err != nil {
			r.invalid(ctx, input, err)
			continue
		}
		return parsed, nil
	}
}

func (r *Renderer) promptSelect(ctx context.Context, input editform.Input, state *State) (any, error) {
	options := input.SelectOptions
	defaultIdx := -1
	if current, ok := state.Value(input.Name); ok {
		defaultIdx = indexOf(options, fmt.Sprint(current))
	}
	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      displayLabel(input),
			Options:      options,
			DefaultIndex: defaultIdx,
			Help:         displayHelp(input),
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(options) {
			r.invalid(ctx, input, errors.New("invalid selection"))
			continue
		}
		return options[idx], nil
	}
}

func (r *Renderer) promptJSON(ctx context.Context, input editform.Input, state *State) (any, error) {
	rules := newValidationRules(input)
	defaultValue := "{}"
	if current, ok := state.Value(input.Name); ok {
		if raw, err := json.MarshalIndent(current, "", "  "); err == nil {
			defaultValue = string(raw)
		}
	}
	for {
		response, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: displayLabel(input),
			Default: defaultValue,
			Help:    displayHelp(input),
		})
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(response) == "" {
			if rules.required {
				r.invalid(ctx, input, errors.New("required"))
				continue
			}
			return nil, nil
		}
		var decoded any
		if err := json.Unmarshal([]byte(response), &decoded); err != nil {
			r.invalid(ctx, input, fmt.Errorf("invalid JSON: %w", err))
			continue
		}
		return decoded, nil
	}
}

// promptFile asks for file paths. Multiple inputs accept a comma separated
// list and always yield a slice.
func (r *Renderer) promptFile(ctx context.Context, input editform.Input, state *State) (any, error) {
	prompt := input
	if input.Multiple {
		prompt.Description = strings.TrimSpace(displayHelp(input) + " (comma separated paths)")
	}
	response, err := r.promptString(ctx, prompt, state, nil)
	if err != nil || response == nil {
		return response, err
	}
	raw, _ := response.(string)
	if !input.Multiple {
		return strings.TrimSpace(raw), nil
	}
	var paths []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			paths = append(paths, trimmed)
		}
	}
	return paths, nil
}

func (r *Renderer) invalid(ctx context.Context, input editform.Input, err error) {
	_ = r.driver.Info(ctx, fmt.Sprintf("%sInvalid %s: %v", r.theme.ErrorPrefix, displayLabel(input), err))
}

func (r *Renderer) serialize(order []string, values map[string]any) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(order, values)), nil
	default:
		return json.Marshal(values)
	}
}

func displayLabel(input editform.Input) string {
	if input.Label != "" {
		return input.Label
	}
	return input.Name
}

func displayHelp(input editform.Input) string {
	if input.Description != "" {
		return input.Description
	}
	return input.Placeholder
}

func defaultStringValue(state *State, name string) string {
	value, ok := state.Value(name)
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprint(v)
	}
}

func defaultBoolValue(state *State, name string) bool {
	value, ok := state.Value(name)
	if !ok {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && parsed
	default:
		return false
	}
}

type validationRules struct {
	required bool
	minLen   *int
	maxLen   *int
	min      *float64
	max      *float64
	pattern  *regexp.Regexp
}

func newValidationRules(input editform.Input) validationRules {
	v := input.Validations
	rules := validationRules{
		required: v.Required,
		minLen:   v.MinLength,
		maxLen:   v.MaxLength,
		min:      v.Min,
		max:      v.Max,
	}
	if v.Regex != "" {
		if re, err := regexp.Compile(v.Regex); err == nil {
			rules.pattern = re
		}
	}
	return rules
}

func (r validationRules) validateString(value string) error {
	if r.required && strings.TrimSpace(value) == "" {
		return errors.New("required")
	}
	if r.minLen != nil && len(value) < *r.minLen {
		return fmt.Errorf("min length %d", *r.minLen)
	}
	if r.maxLen != nil && len(value) > *r.maxLen {
		return fmt.Errorf("max length %d", *r.maxLen)
	}
	if r.pattern != nil && !r.pattern.MatchString(value) {
		return errors.New("does not match required pattern")
	}
	return nil
}

func (r validationRules) validateNumber(value float64) error {
	if r.min != nil && value < *r.min {
		return fmt.Errorf("min %v", *r.min)
	}
	if r.max != nil && value > *r.max {
		return fmt.Errorf("max %v", *r.max)
	}
	return nil
}

func validateDate(value string) error {
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if _, err := time.Parse(layout, value); err == nil {
			return nil
		}
	}
	return errors.New("expected YYYY-MM-DD")
}

func validateEmail(value string) error {
	if _, err := mail.ParseAddress(value); err != nil {
		return errors.New("invalid email address")
	}
	return nil
}

func flattenForm(values map[string]any) string {
	flattened := url.Values{}
	for key, value := range values {
		switch v := value.(type) {
		case []string:
			for _, item := range v {
				flattened.Add(key+"[]", item)
			}
		case map[string]any, []any:
			raw, err := json.Marshal(v)
			if err != nil {
				continue
			}
			flattened.Set(key, string(raw))
		default:
			flattened.Set(key, fmt.Sprint(v))
		}
	}
	return flattened.Encode()
}

func prettyPrint(order []string, values map[string]any) string {
	var b strings.Builder
	for _, name := range order {
		value, ok := values[name]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case []string:
			fmt.Fprintf(&b, "%s=%s\n", name, strings.Join(v, ", "))
		case map[string]any, []any:
			raw, _ := json.Marshal(v)
			fmt.Fprintf(&b, "%s=%s\n", name, raw)
		default:
			fmt.Fprintf(&b, "%s=%v\n", name, v)
		}
	}
	return b.String()
}
