// Package contentform renders edit forms for content types (a record plus
// its schema, layout, validations and errors) and the feature picker used
// to switch between them.
//
// The quickest path is Generate with a schema.Store:
//
//	store, _ := schema.LoadFS(os.DirFS("schemas"))
//	html, err := contentform.Generate(ctx, store, "article", "vanilla", contentform.GenerateOptions{
//		Record: map[string]any{"title": "Hello"},
//	})
//
// Content types can also be imported from the component schemas of an
// OpenAPI document with LoadOpenAPI.
package contentform
