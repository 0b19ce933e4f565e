package render

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-ltixml/pkg/form"
)

// Built-in renderer names.
const (
	FormatXML  = "xml"
	FormatJSON = "json"
)

// XML returns the renderer that emits Response.XML as is: the document, or
// the error text when validation failed.
func XML() Renderer {
	return xmlRenderer{}
}

// JSON returns the renderer that serialises the whole Response.
func JSON() Renderer {
	return jsonRenderer{}
}

type xmlRenderer struct{}

func (xmlRenderer) Name() string { return FormatXML }

func (xmlRenderer) ContentType() string { return "application/xml; charset=utf-8" }

func (xmlRenderer) Render(ctx context.Context, resp form.Response, _ RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(resp.XML), nil
}

type jsonRenderer struct{}

func (jsonRenderer) Name() string { return FormatJSON }

func (jsonRenderer) ContentType() string { return "application/json; charset=utf-8" }

func (jsonRenderer) Render(ctx context.Context, resp form.Response, _ RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: encode json: %w", err)
	}
	return append(payload, '\n'), nil
}
