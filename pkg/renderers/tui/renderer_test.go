package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contentform/pkg/editform"
	"github.com/goliatone/go-contentform/pkg/picker"
	"github.com/goliatone/go-contentform/pkg/render"
	"github.com/goliatone/go-contentform/pkg/schema"
	"github.com/goliatone/go-contentform/pkg/testsupport"
	"github.com/goliatone/go-contentform/pkg/widgets"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	textAreas    []string
	passwords    []string
	infoMessages []string
	prompts      []string
	inputPos     int
	selectPos    int
	confirmPos   int
	textPos      int
	passPos      int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, "input:"+cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, "password:"+cfg.Message)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.prompts = append(s.prompts, "confirm:"+cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.prompts = append(s.prompts, "select:"+cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, _ SelectConfig) ([]int, error) {
	return nil, errors.New("no multiselect scripted")
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	s.prompts = append(s.prompts, "textarea:"+cfg.Message)
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newTestRenderer(t *testing.T, driver PromptDriver, options ...Option) *Renderer {
	t.Helper()
	r, err := New(append([]Option{WithPromptDriver(driver)}, options...)...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func TestRenderForm_PromptsInOrderAndEmitsEvents(t *testing.T) {
	props := testsupport.ArticleProps()
	var events []string
	props.OnChange = func(e editform.Event) { events = append(events, "change:"+e.Name) }
	props.OnBlur = func(e editform.Event) { events = append(events, "blur:"+e.Name) }
	form := editform.Build(props)

	driver := &stubDriver{
		inputs:    []string{"Hello world", "a.png, b.png"},
		selectIdx: []int{1},
		textAreas: []string{"Body text", `{"tags":["go"]}`},
	}
	out, err := newTestRenderer(t, driver).RenderForm(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	wantPrompts := []string{
		"input:Title",
		"select:Status",
		"textarea:body",
		"textarea:metadata",
		"input:Gallery",
	}
	if diff := cmp.Diff(wantPrompts, driver.prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}

	wantEvents := []string{
		"change:title", "blur:title",
		"change:status", "blur:status",
		"change:body", "blur:body",
		"change:metadata", "blur:metadata",
		"change:gallery", "blur:gallery",
	}
	if diff := cmp.Diff(wantEvents, events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}

	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	want := map[string]any{
		"title":    "Hello world",
		"status":   "published",
		"body":     "Body text",
		"metadata": map[string]any{"tags": []any{"go"}},
		"gallery":  []any{"a.png", "b.png"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderForm_ShowsCheckedErrorsAndRetriesInvalidInput(t *testing.T) {
	maxLength := 3
	form := editform.Build(editform.Props{
		Schema: schema.ContentType{
			UID:         "tag",
			Attributes:  map[string]schema.Attribute{"name": {Type: "string"}},
			EditDisplay: schema.EditDisplay{Fields: []string{"name"}},
		},
		FormValidations: []schema.FieldValidation{{Name: "name", Validations: schema.Validations{Required: true, MaxLength: &maxLength}}},
		FormErrors:      []schema.FieldError{{Name: "name", Errors: []string{"taken"}}},
		DidCheckErrors:  true,
	})

	driver := &stubDriver{inputs: []string{"", "toolong", "go"}}
	out, err := newTestRenderer(t, driver, WithOutputFormat(OutputFormatPrettyText)).
		RenderForm(context.Background(), form, render.RenderOptions{FormErrors: []string{"Save failed"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "name=go\n" {
		t.Fatalf("unexpected output %q", out)
	}

	want := []string{
		"x Save failed",
		"x name: taken",
		"x Invalid name: required",
		"x Invalid name: max length 3",
	}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderForm_KindDispatch(t *testing.T) {
	form := editform.Form{Inputs: []editform.Input{
		{Name: "published", Type: widgets.KindCheckbox},
		{Name: "views", Type: widgets.KindNumber},
		{Name: "secret", Type: widgets.KindPassword},
		{Name: "email", Type: widgets.KindEmail},
		{Name: "date", Type: widgets.KindDate},
	}}
	driver := &stubDriver{
		confirm:   []bool{true},
		inputs:    []string{"abc", "42", "not-an-email", "ada@example.com", "2024-01-02"},
		passwords: []string{"hunter2"},
	}

	out, err := newTestRenderer(t, driver, WithOutputFormat(OutputFormatFormURLEncoded)).
		RenderForm(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "date=2024-01-02&email=ada%40example.com&published=true&secret=hunter2&views=42"
	if string(out) != want {
		t.Fatalf("output mismatch\nwant: %s\n got: %s", want, out)
	}
	if len(driver.infoMessages) != 2 {
		t.Fatalf("expected number and email retries, got %v", driver.infoMessages)
	}
}

func TestRenderForm_Aborted(t *testing.T) {
	driver := &abortDriver{}
	form := editform.Form{Inputs: []editform.Input{{Name: "title", Type: widgets.KindText}}}
	_, err := newTestRenderer(t, driver).RenderForm(context.Background(), form, render.RenderOptions{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

type abortDriver struct{ stubDriver }

func (a *abortDriver) Input(context.Context, InputConfig) (string, error) {
	return "", ErrAborted
}

func TestRenderPicker_OpensClicksAndCloses(t *testing.T) {
	state := &picker.OpenState{}
	var openCalls []bool
	var clicked []picker.Feature
	props := state.Bind(picker.Props{
		Features:        testsupport.Features(),
		SelectedFeature: "group1",
		Main:            true,
		Plugin:          "users-permissions",
		OnClick:         func(f picker.Feature) { clicked = append(clicked, f) },
	})
	set := props.SetOpen
	props.SetOpen = func(open bool) {
		openCalls = append(openCalls, open)
		set(open)
	}

	driver := &stubDriver{selectIdx: []int{5, 1}}
	out, err := newTestRenderer(t, driver).RenderPicker(context.Background(), render.NewPickerView(picker.New(props)), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render picker: %v", err)
	}

	if diff := cmp.Diff([]bool{true, false}, openCalls); diff != "" {
		t.Fatalf("setOpen calls mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]picker.Feature{testsupport.Features()[1]}, clicked); diff != "" {
		t.Fatalf("clicked mismatch (-want +got):\n%s", diff)
	}
	if state.Open() {
		t.Fatalf("picker should be closed after a choice")
	}
	if !strings.Contains(driver.prompts[0], "group1 (users-permissions)") {
		t.Fatalf("prompt should carry the source annotation: %v", driver.prompts)
	}
	if string(out) != `{"selected":"group2"}` {
		t.Fatalf("unexpected output %s", out)
	}
}

func TestRenderPicker_Errors(t *testing.T) {
	r := newTestRenderer(t, &stubDriver{})
	if _, err := r.RenderPicker(context.Background(), render.PickerView{}, render.RenderOptions{}); !errors.Is(err, ErrPickerRequired) {
		t.Fatalf("expected ErrPickerRequired, got %v", err)
	}
	empty := render.NewPickerView(picker.New(picker.Props{}))
	if _, err := r.RenderPicker(context.Background(), empty, render.RenderOptions{}); !errors.Is(err, ErrNoFeatures) {
		t.Fatalf("expected ErrNoFeatures, got %v", err)
	}
}
