package parser

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	pkgopenapi "github.com/goliatone/go-contentform/pkg/openapi"
	"github.com/goliatone/go-contentform/pkg/schema"
)

func stringExtension(ext map[string]any, key string) string {
	value, ok := ext[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func boolExtension(ext map[string]any, key string) bool {
	switch value := ext[key].(type) {
	case bool:
		return value
	case string:
		return strings.EqualFold(strings.TrimSpace(value), "true")
	default:
		return false
	}
}

// fieldOrder returns the declared field order followed by any remaining
// fields in sorted order. Unknown names in the extension are dropped.
func fieldOrder(ext map[string]any, fields []string) []string {
	declared, ok := ext[pkgopenapi.ExtensionFields].([]any)
	if !ok || len(declared) == 0 {
		return fields
	}

	known := make(map[string]bool, len(fields))
	for _, field := range fields {
		known[field] = true
	}

	order := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, raw := range declared {
		name, ok := raw.(string)
		if !ok || !known[name] || seen[name] {
			continue
		}
		seen[name] = true
		order = append(order, name)
	}
	for _, field := range fields {
		if !seen[field] {
			order = append(order, field)
		}
	}
	return order
}

func layoutExtension(ext map[string]any) (schema.AttributeLayout, error) {
	raw, ok := ext[pkgopenapi.ExtensionLayout]
	if !ok || raw == nil {
		return schema.AttributeLayout{}, nil
	}
	var layout schema.AttributeLayout
	if err := mapstructure.Decode(raw, &layout); err != nil {
		return schema.AttributeLayout{}, fmt.Errorf("decode %s: %w", pkgopenapi.ExtensionLayout, err)
	}
	return layout, nil
}

func relationExtension(ext map[string]any) (schema.Relation, bool, error) {
	raw, ok := ext[pkgopenapi.ExtensionRelation]
	if !ok || raw == nil {
		return schema.Relation{}, false, nil
	}
	var relation schema.Relation
	if err := mapstructure.Decode(raw, &relation); err != nil {
		return schema.Relation{}, false, fmt.Errorf("decode %s: %w", pkgopenapi.ExtensionRelation, err)
	}
	if relation.Target() == "" {
		return schema.Relation{}, false, fmt.Errorf("%s requires model or collection", pkgopenapi.ExtensionRelation)
	}
	return relation, true, nil
}
