package formspec

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-ltixml/pkg/model"
)

// ExtensionKey is the schema extension carrying presentation hints.
const ExtensionKey = "x-ltixml"

const (
	formPath      = "/"
	formMediaType = "application/x-www-form-urlencoded"
)

// Widget names the input control used for a field.
type Widget string

const (
	WidgetText       Widget = "text"
	WidgetTextarea   Widget = "textarea"
	WidgetSelect     Widget = "select"
	WidgetCheckbox   Widget = "checkbox"
	WidgetNumber     Widget = "number"
	WidgetPlacements Widget = "placements"
)

func (w Widget) valid() bool {
	switch w {
	case WidgetText, WidgetTextarea, WidgetSelect, WidgetCheckbox, WidgetNumber, WidgetPlacements:
		return true
	}
	return false
}

// ErrUnknownField is returned when the document declares a property that is
// not a configuration field.
var ErrUnknownField = errors.New("formspec: unknown field")

//go:embed data/openapi.yaml
var embeddedDocument []byte

// EmbeddedDocument returns a copy of the bundled OpenAPI form definition.
func EmbeddedDocument() []byte {
	return append([]byte(nil), embeddedDocument...)
}

// Field is the presentation metadata for one form input.
type Field struct {
	Name    string
	Label   string
	Help    string
	Widget  Widget
	Options []string
	Default string
	Order   int
	Rows    int
	Cols    int
}

// Form is the parsed form definition. It is read-only once loaded.
type Form struct {
	Title   string
	Intro   string
	DocsURL string
	fields  []Field
	raw     []byte
}

var (
	defaultOnce sync.Once
	defaultForm *Form
)

// Default returns the form parsed from the embedded document.
func Default() *Form {
	defaultOnce.Do(func() {
		form, err := Load(context.Background(), embeddedDocument)
		if err != nil {
			panic(err)
		}
		defaultForm = form
	})
	return defaultForm
}

// Load parses and validates an OpenAPI document and extracts the fields of
// the form-encoded request body of POST /.
func Load(ctx context.Context, data []byte) (*Form, error) {
	if len(data) == 0 {
		return nil, errors.New("formspec: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("formspec: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("formspec: validate: %w", err)
	}

	schema, err := requestSchema(doc)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{})
	for _, name := range model.FieldNames() {
		known[name] = struct{}{}
	}

	fields := make([]Field, 0, len(schema.Properties))
	for name, ref := range schema.Properties {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownField, name)
		}
		if ref == nil || ref.Value == nil {
			return nil, fmt.Errorf("formspec: property %q has no schema", name)
		}
		field, err := convertField(name, ref.Value)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	sort.SliceStable(fields, func(i, j int) bool {
		if fields[i].Order != fields[j].Order {
			return fields[i].Order < fields[j].Order
		}
		return fields[i].Name < fields[j].Name
	})

	form := &Form{
		fields: fields,
		raw:    append([]byte(nil), data...),
	}
	if doc.Info != nil {
		form.Title = doc.Info.Title
		form.Intro = strings.TrimSpace(doc.Info.Description)
	}
	if doc.ExternalDocs != nil {
		form.DocsURL = doc.ExternalDocs.URL
	}
	return form, nil
}

func requestSchema(doc *openapi3.T) (*openapi3.Schema, error) {
	if doc.Paths == nil {
		return nil, errors.New("formspec: document does not contain any paths")
	}
	item := doc.Paths.Value(formPath)
	if item == nil || item.Post == nil {
		return nil, fmt.Errorf("formspec: POST %s is not defined", formPath)
	}
	body := item.Post.RequestBody
	if body == nil || body.Value == nil {
		return nil, fmt.Errorf("formspec: POST %s has no request body", formPath)
	}
	media := body.Value.Content.Get(formMediaType)
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("formspec: POST %s does not accept %s", formPath, formMediaType)
	}
	return media.Schema.Value, nil
}

func convertField(name string, schema *openapi3.Schema) (Field, error) {
	field := Field{
		Name:   name,
		Label:  schema.Title,
		Help:   strings.TrimSpace(schema.Description),
		Widget: WidgetText,
		Order:  math.MaxInt32,
	}
	if field.Label == "" {
		field.Label = name
	}
	for _, option := range schema.Enum {
		field.Options = append(field.Options, fmt.Sprint(option))
	}
	if schema.Default != nil {
		field.Default = fmt.Sprint(schema.Default)
	}
	if schema.Type != nil && schema.Type.Is(openapi3.TypeArray) {
		field.Widget = WidgetPlacements
	} else if len(field.Options) > 0 {
		field.Widget = WidgetSelect
	}

	hints, ok := schema.Extensions[ExtensionKey].(map[string]any)
	if !ok {
		return field, nil
	}
	if order, ok := intValue(hints["order"]); ok {
		field.Order = order
	}
	if rows, ok := intValue(hints["rows"]); ok {
		field.Rows = rows
	}
	if cols, ok := intValue(hints["cols"]); ok {
		field.Cols = cols
	}
	if raw, ok := hints["widget"].(string); ok && raw != "" {
		widget := Widget(strings.ToLower(strings.TrimSpace(raw)))
		if !widget.valid() {
			return Field{}, fmt.Errorf("formspec: property %q uses unknown widget %q", name, raw)
		}
		field.Widget = widget
	}
	return field, nil
}

func intValue(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	}
	return 0, false
}

// Fields returns a copy of the form fields in display order.
func (f *Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	for i, field := range f.fields {
		field.Options = append([]string(nil), field.Options...)
		out[i] = field
	}
	return out
}

// Field looks up a field by form name.
func (f *Form) Field(name string) (Field, bool) {
	for _, field := range f.fields {
		if field.Name == name {
			field.Options = append([]string(nil), field.Options...)
			return field, true
		}
	}
	return Field{}, false
}

// Document returns the source document the form was loaded from.
func (f *Form) Document() []byte {
	return append([]byte(nil), f.raw...)
}
