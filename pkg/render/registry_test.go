package render_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ltixml/pkg/form"
	"github.com/goliatone/go-ltixml/pkg/render"
	"github.com/goliatone/go-ltixml/pkg/testsupport"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(render.XML())
	registry.MustRegister(render.JSON())

	if err := registry.Register(render.XML()); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer to be rejected")
	}
	if diff := cmp.Diff([]string{"json", "xml"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("xml") || registry.Has("html") {
		t.Fatalf("Has reports wrong membership")
	}
	if _, err := registry.Get("html"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
}

func TestXMLRenderer_EmitsBodyVerbatim(t *testing.T) {
	h := form.New()
	ctx := testsupport.Context()

	ok := h.Submit(testsupport.Values("tool_name", "Demo"))
	out, err := render.XML().Render(ctx, ok, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != ok.XML {
		t.Fatalf("xml renderer should emit the document unchanged")
	}

	failed := h.Submit(testsupport.Values("custom_fields", "nope"))
	out, err = render.XML().Render(ctx, failed, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != failed.Errors.Text {
		t.Fatalf("xml renderer should emit the error text on failure, got %q", out)
	}
}

func TestJSONRenderer_EncodesResponse(t *testing.T) {
	resp := form.New().Submit(testsupport.Values("custom_fields", "nope"))

	out, err := render.JSON().Render(testsupport.Context(), resp, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var decoded struct {
		XML          string `json:"xml"`
		ErrorTracker struct {
			HasErrors bool               `json:"hasErrors"`
			Errors    map[string]*string `json:"errors"`
		} `json:"errorTracker"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !decoded.ErrorTracker.HasErrors {
		t.Fatalf("hasErrors should be true")
	}
	if msg := decoded.ErrorTracker.Errors["custom_fields"]; msg == nil || !strings.Contains(*msg, "key=value") {
		t.Fatalf("custom_fields message missing: %v", msg)
	}
	if decoded.XML != resp.XML {
		t.Fatalf("xml field mismatch")
	}
}

func TestRenderers_RespectCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, r := range []render.Renderer{render.XML(), render.JSON()} {
		if _, err := r.Render(ctx, form.Response{}, render.RenderOptions{}); err == nil {
			t.Fatalf("%s renderer should fail on a cancelled context", r.Name())
		}
	}
}
