package validation

import "github.com/goliatone/go-ltixml/pkg/model"

// Configuration runs the form's field validators against cfg. Custom fields
// is the only field with a rule; every other value is accepted as typed and
// the builder falls back to defaults for blank or unknown settings.
func Configuration(cfg model.Configuration) []FieldResult {
	return []FieldResult{
		For(model.FieldCustomFields, CustomFields(cfg.CustomFields)),
	}
}
