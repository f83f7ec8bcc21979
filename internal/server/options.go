package server

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-contentform/pkg/orchestrator"
)

// AssetsPrefix is where the vanilla stylesheet is served.
const AssetsPrefix = "/assets/"

type Options struct {
	Address      string
	Renderer     string
	ThemeName    string
	ThemeVariant string
	Orchestrator *orchestrator.Orchestrator
	Logger       *slog.Logger
	Registry     *prometheus.Registry
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:  ":3003",
		Renderer: "vanilla",
	}
	for _, fn := range funcs {
		fn(opts)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	return opts
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

// WithRenderer names the registry renderer used for HTML pages.
func WithRenderer(name string) OptionFunc {
	return func(opts *Options) {
		if name != "" {
			opts.Renderer = name
		}
	}
}

func WithTheme(name, variant string) OptionFunc {
	return func(opts *Options) {
		opts.ThemeName = name
		opts.ThemeVariant = variant
	}
}

func WithOrchestrator(o *orchestrator.Orchestrator) OptionFunc {
	return func(opts *Options) {
		opts.Orchestrator = o
	}
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithMetricsRegistry collects and exposes metrics through registry.
func WithMetricsRegistry(registry *prometheus.Registry) OptionFunc {
	return func(opts *Options) {
		opts.Registry = registry
	}
}
