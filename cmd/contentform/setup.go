package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	contentform "github.com/goliatone/go-contentform"
	"github.com/goliatone/go-contentform/internal/config"
	pkgopenapi "github.com/goliatone/go-contentform/pkg/openapi"
	"github.com/goliatone/go-contentform/pkg/orchestrator"
	"github.com/goliatone/go-contentform/pkg/render"
	"github.com/goliatone/go-contentform/pkg/schema"
)

const remoteTimeout = 30 * time.Second

// loadConfig parses the environment and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	conf, err := config.Parse()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("schema-dir") {
		conf.Schema.Dir, _ = flags.GetString("schema-dir")
	}
	if flags.Changed("openapi") {
		conf.Schema.OpenAPI, _ = flags.GetString("openapi")
	}
	if flags.Changed("log-level") {
		raw, _ := flags.GetString("log-level")
		if err := conf.Logger.Level.UnmarshalText([]byte(raw)); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: conf.Logger.Level,
	}))
	slog.SetDefault(logger)

	return conf, nil
}

// newOrchestrator loads the content types named by conf and wires them to
// registry.
func newOrchestrator(ctx context.Context, conf *config.Config, registry *render.Registry, options ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	base := []orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(conf.Renderer.Name),
	}

	if conf.Schema.OpenAPI != "" {
		src, err := pkgopenapi.ParseSource(conf.Schema.OpenAPI)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		gen := orchestrator.New(append(append(base,
			orchestrator.WithLoader(contentform.NewLoader(pkgopenapi.WithHTTPFallback(remoteTimeout))),
		), options...)...)
		result, err := gen.Import(ctx, src)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		slog.DebugContext(ctx, "imported content types",
			slog.String("source", conf.Schema.OpenAPI),
			slog.Int("count", len(result.ContentTypes)),
		)
		return gen, nil
	}

	store, err := schema.LoadFS(os.DirFS(conf.Schema.Dir))
	if err != nil {
		return nil, errors.Wrapf(err, "load schema dir %q", conf.Schema.Dir)
	}
	if store.Empty() {
		return nil, errors.Errorf("no content types found in %q", conf.Schema.Dir)
	}
	slog.DebugContext(ctx, "loaded content types",
		slog.String("dir", conf.Schema.Dir),
		slog.Any("uids", store.UIDs()),
	)
	return orchestrator.New(append(append(base, orchestrator.WithStore(store)), options...)...), nil
}

func readRecord(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrapf(err, "decode record %q", path)
	}
	return record, nil
}

// readErrors decodes a backend validation payload ({"field": ["message"]})
// and maps it onto the form's field order.
func readErrors(path string, fields []string) (render.ErrorMapping, error) {
	if path == "" {
		return render.ErrorMapping{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return render.ErrorMapping{}, errors.WithStack(err)
	}
	var payload map[string][]string
	if err := json.Unmarshal(data, &payload); err != nil {
		return render.ErrorMapping{}, errors.Wrapf(err, "decode errors %q", path)
	}
	return render.MapErrorPayload(fields, payload), nil
}

func contentTypeFields(gen *orchestrator.Orchestrator, uid string) []string {
	ct, ok := gen.Store().ContentType(uid)
	if !ok {
		return nil
	}
	return schema.OrderedFields(ct)
}
