package render

import (
	"context"

	"github.com/goliatone/go-ltixml/pkg/form"
)

// Renderer converts a form Response into a byte representation (HTML page,
// raw document, JSON).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, resp form.Response, options RenderOptions) ([]byte, error)
}
