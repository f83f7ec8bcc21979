package render

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ResolveTheme selects a theme/variant through selector and flattens it into
// the renderer configuration templates receive. A nil selector yields nil.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q/%q: %w", name, variant, err)
	}
	return ThemeConfig(selection), nil
}

// ThemeConfig flattens a selection: variant tokens, templates and asset files
// override the manifest's, and every token is also exposed as a "--" CSS var.
func ThemeConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
		Partials: map[string]string{},
	}

	files := map[string]string{}
	prefix := ""
	if manifest := selection.Manifest; manifest != nil {
		copyInto(cfg.Tokens, manifest.Tokens)
		copyInto(cfg.Partials, manifest.Templates)
		copyInto(files, manifest.Assets.Files)
		prefix = manifest.Assets.Prefix
		if v, ok := manifest.Variants[selection.Variant]; ok {
			copyInto(cfg.Tokens, v.Tokens)
			copyInto(cfg.Partials, v.Templates)
			copyInto(files, v.Assets.Files)
			if v.Assets.Prefix != "" {
				prefix = v.Assets.Prefix
			}
		}
	}
	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+key] = value
	}

	cfg.AssetURL = func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "/")
	}
	return cfg
}

func copyInto(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}
