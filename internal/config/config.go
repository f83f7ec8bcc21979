package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Prefix is prepended to every environment variable read by Parse.
const Prefix = "CONTENTFORM_"

type Config struct {
	Logger   Logger   `envPrefix:"LOGGER_"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Schema   Schema   `envPrefix:"SCHEMA_"`
	Renderer Renderer `envPrefix:"RENDERER_"`
}

type Logger struct {
	Level slog.Level `env:"LEVEL,expand" envDefault:"info"`
}

type HTTP struct {
	Address string `env:"ADDRESS,expand" envDefault:":3003"`
}

type Schema struct {
	// Dir holds YAML/JSON content type documents.
	Dir string `env:"DIR,expand" envDefault:"schemas"`
	// OpenAPI, when set, imports content types from an OpenAPI document
	// (file path or http(s) URL) instead of Dir.
	OpenAPI string `env:"OPENAPI,expand"`
}

type Renderer struct {
	Name         string `env:"NAME" envDefault:"vanilla"`
	Theme        string `env:"THEME"`
	ThemeVariant string `env:"THEME_VARIANT"`
}

func Parse() (*Config, error) {
	return ParseEnvironment(nil)
}

// ParseEnvironment parses environment, or the process environment when nil.
func ParseEnvironment(environment map[string]string) (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix:      Prefix,
		Environment: environment,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
