package widgets

import "testing"

func TestInputType(t *testing.T) {
	cases := map[string]Kind{
		"boolean":     KindCheckbox,
		"BigInt":      KindNumber,
		"decimal":     KindNumber,
		"float":       KindNumber,
		"integer":     KindNumber,
		"date":        KindDate,
		"DATETIME":    KindDate,
		"email":       KindEmail,
		"enumeration": KindSelect,
		"password":    KindPassword,
		"string":      KindText,
		"text":        KindTextarea,
		"file":        KindFile,
		"files":       KindFile,
		"json":        KindJSON,
		"":            KindText,
		"uid":         KindText,
		"richtext":    KindText,
		" string":     KindText,
	}

	for in, want := range cases {
		if got := InputType(in); got != want {
			t.Fatalf("InputType(%q): want %q, got %q", in, want, got)
		}
	}
}

func TestInputTypeIsTotalOverKinds(t *testing.T) {
	allowed := make(map[Kind]struct{})
	for _, kind := range Kinds() {
		allowed[kind] = struct{}{}
	}
	for _, in := range []string{"", "x", "boolean", "relation", "media", "component"} {
		if _, ok := allowed[InputType(in)]; !ok {
			t.Fatalf("InputType(%q) returned %q outside the enumeration", in, InputType(in))
		}
	}
}

func TestResolvePriority(t *testing.T) {
	cases := []struct {
		name       string
		appearance string
		layoutType string
		schemaType string
		want       Kind
	}{
		{name: "appearance wins", appearance: "WYSIWYG", layoutType: "textarea", schemaType: "string", want: KindWysiwyg},
		{name: "layout type next", layoutType: "password", schemaType: "string", want: KindPassword},
		{name: "inferred last", schemaType: "boolean", want: KindCheckbox},
		{name: "blank appearance falls through", appearance: "  ", schemaType: "text", want: KindTextarea},
		{name: "nothing declared", want: KindText},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.appearance, tc.layoutType, tc.schemaType); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}
