package server

import (
	"context"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	sloghttp "github.com/samber/slog-http"

	"github.com/goliatone/go-contentform/pkg/renderers/vanilla"
)

// Server is the HTTP preview of the content types held by an orchestrator.
type Server struct {
	opts        *Options
	metrics     *metrics
	handler     http.Handler
	contentType string
}

func NewServer(funcs ...OptionFunc) (*Server, error) {
	opts := NewOptions(funcs...)
	if opts.Orchestrator == nil || opts.Orchestrator.Store() == nil {
		return nil, errors.New("server: orchestrator with a schema store is required")
	}

	renderer, err := opts.Orchestrator.Renderer(opts.Renderer)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	contentType := renderer.ContentType()
	if mediaType, _, err := mime.ParseMediaType(contentType); err != nil || mediaType != "text/html" {
		return nil, errors.Errorf("server: renderer %q produces %q, an HTML renderer is required", renderer.Name(), contentType)
	}

	s := &Server{
		opts:        opts,
		metrics:     newMetrics(opts.Registry),
		contentType: contentType,
	}
	s.handler = s.routes()
	return s, nil
}

// Handler returns the router wrapped in recovery and access logging.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(sloghttp.Recovery)
	r.Use(sloghttp.New(s.opts.Logger))

	r.Get("/content-types", s.listContentTypes)
	r.Get("/content-types/{uid}/edit", s.editForm)
	r.Get("/content-types/{uid}/picker", s.picker)
	r.Handle("/metrics", promhttp.HandlerFor(s.opts.Registry, promhttp.HandlerOpts{}))
	r.Handle(AssetsPrefix+"*", http.StripPrefix(AssetsPrefix, http.FileServerFS(vanilla.AssetsFS())))

	return r
}

func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	server := http.Server{
		Addr:    s.opts.Address,
		Handler: s.handler,
	}

	go func() {
		<-ctx.Done()
		if err := server.Close(); err != nil {
			slog.ErrorContext(ctx, "could not close server", slog.Any("error", errors.WithStack(err)))
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}
