package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-contentform/pkg/orchestrator"
	"github.com/goliatone/go-contentform/pkg/picker"
	"github.com/goliatone/go-contentform/pkg/render"
)

type contentTypesResponse struct {
	ContentTypes []string `json:"contentTypes"`
}

func (s *Server) listContentTypes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	payload := contentTypesResponse{ContentTypes: s.opts.Orchestrator.Store().UIDs()}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.ErrorContext(r.Context(), "could not encode content types", slog.Any("error", err))
	}
}

func (s *Server) editForm(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	uid := chi.URLParam(r, "uid")
	if _, ok := s.opts.Orchestrator.Store().ContentType(uid); !ok {
		s.metrics.observe(s.opts.Renderer, "form", outcomeNotFound, started)
		http.NotFound(w, r)
		return
	}

	out, err := s.opts.Orchestrator.Generate(r.Context(), orchestrator.Request{
		UID:          uid,
		Renderer:     s.opts.Renderer,
		ThemeName:    s.opts.ThemeName,
		ThemeVariant: s.opts.ThemeVariant,
		RenderOptions: render.RenderOptions{
			Action: "/content-types/" + url.PathEscape(uid),
			Method: http.MethodPut,
		},
	})
	s.write(w, r, "form", out, err, started)
}

// picker renders the feature picker listing every content type. The toggle
// button submits open=1|0; clicking an item submits click=<index>, which
// closes the dropdown and redirects to the clicked content type.
func (s *Server) picker(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	uid := chi.URLParam(r, "uid")
	if _, ok := s.opts.Orchestrator.Store().ContentType(uid); !ok {
		s.metrics.observe(s.opts.Renderer, "picker", outcomeNotFound, started)
		http.NotFound(w, r)
		return
	}

	query := r.URL.Query()
	if raw := query.Get("click"); raw != "" {
		s.click(w, r, uid, raw)
		return
	}

	out, err := s.opts.Orchestrator.GeneratePicker(r.Context(), orchestrator.PickerRequest{
		Props: picker.Props{
			SelectedFeature: uid,
			IsOpen:          query.Get("open") == "1",
		},
		Renderer:      s.opts.Renderer,
		ThemeName:     s.opts.ThemeName,
		ThemeVariant:  s.opts.ThemeVariant,
		RenderOptions: render.RenderOptions{Action: r.URL.Path},
	})
	s.write(w, r, "picker", out, err, started)
}

func (s *Server) click(w http.ResponseWriter, r *http.Request, uid, raw string) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "invalid click index", http.StatusBadRequest)
		return
	}

	var clicked *picker.Feature
	p := picker.New(picker.Props{
		Features:        s.opts.Orchestrator.Features(),
		SelectedFeature: uid,
		IsOpen:          true,
		OnClick: func(feature picker.Feature) {
			clicked = &feature
		},
	})
	if !p.Click(index) || clicked == nil {
		http.NotFound(w, r)
		return
	}
	p.Close()

	http.Redirect(w, r, "/content-types/"+url.PathEscape(clicked.Name)+"/edit", http.StatusSeeOther)
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, view string, out []byte, err error, started time.Time) {
	if err != nil {
		s.metrics.observe(s.opts.Renderer, view, outcomeError, started)
		slog.ErrorContext(r.Context(), "could not render", slog.String("view", view), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.metrics.observe(s.opts.Renderer, view, outcomeOK, started)
	w.Header().Set("Content-Type", s.contentType)
	if _, err := w.Write(out); err != nil {
		slog.ErrorContext(r.Context(), "could not write response", slog.Any("error", err))
	}
}
