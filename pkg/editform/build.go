package editform

import (
	"github.com/goliatone/go-contentform/pkg/schema"
	"github.com/goliatone/go-contentform/pkg/widgets"
)

// Build derives the edit form for props. It never fails: absent details,
// layout entries, validations or errors resolve to empty values.
func Build(props Props) Form {
	ct := props.Schema
	onChange := props.OnChange
	if onChange == nil {
		onChange = noopHandler
	}
	onBlur := props.OnBlur
	if onBlur == nil {
		onBlur = noopHandler
	}

	uploads := schema.UploadRelations(ct)
	fields := schema.OrderedFields(ct)

	form := Form{
		UID:    ct.UID,
		Name:   ct.Name,
		Inputs: make([]Input, 0, len(fields)),
	}

	for idx, attr := range fields {
		details := fieldDetails(props, uploads, attr)
		layout := props.Layout.Resolve(attr, props.Record)

		kind := widgets.Resolve(layout.Appearance, layout.Type, details.Type)
		if _, isUpload := uploads[attr]; isUpload {
			kind = widgets.KindFile
		}

		form.Inputs = append(form.Inputs, Input{
			Name:           attr,
			Type:           kind,
			Value:          props.Record[attr],
			Label:          firstNonEmpty(layout.Label, details.Label),
			Placeholder:    firstNonEmpty(layout.Placeholder, details.Placeholder),
			ClassName:      layout.ClassName,
			Description:    firstNonEmpty(layout.Description, details.Description),
			Validations:    schema.FindValidations(props.FormValidations, attr),
			Errors:         schema.FindErrors(props.FormErrors, attr),
			Multiple:       schema.AllowsMultipleUpload(ct, attr),
			AutoFocus:      idx == 0,
			SelectOptions:  selectOptions(props, attr),
			CustomInputs:   DefaultCustomInputs(),
			DidCheckErrors: props.DidCheckErrors,
			ResetProps:     props.ResetProps,
			OnChange:       onChange,
			OnBlur:         onBlur,
		})
	}

	return form
}

// fieldDetails resolves display details from the edit display, then upload
// relations, then the attribute declaration itself.
func fieldDetails(props Props, uploads map[string]schema.FieldDetails, attr string) schema.FieldDetails {
	if details, ok := schema.Details(props.Schema, attr); ok {
		return details
	}
	if details, ok := uploads[attr]; ok {
		return details
	}
	if declared, ok := attribute(props, attr); ok {
		return schema.FieldDetails{
			Type:        declared.Type,
			Label:       declared.Label,
			Placeholder: declared.Placeholder,
			Description: declared.Description,
		}
	}
	return schema.FieldDetails{}
}

func attribute(props Props, attr string) (schema.Attribute, bool) {
	if declared, ok := props.Attributes[attr]; ok {
		return declared, true
	}
	declared, ok := props.Schema.Attributes[attr]
	return declared, ok
}

func selectOptions(props Props, attr string) []string {
	declared, ok := attribute(props, attr)
	if !ok || len(declared.Enum) == 0 {
		return nil
	}
	return append([]string(nil), declared.Enum...)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func noopHandler(Event) {}
