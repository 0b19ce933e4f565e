package template

import (
	"io"
)

// TemplateRenderer is the contract page renderers depend on. RenderTemplate
// executes a named template and also writes the result to the optional
// writers.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
