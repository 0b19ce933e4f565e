package ltixml

import (
	"context"
	"errors"
	"io/fs"
	"net/url"
	"strings"
	"testing"
)

func TestBuildXML(t *testing.T) {
	out, err := BuildXML(Configuration{
		Title:        "Demo",
		PrivacyLevel: PrivacyAnonymous,
		CustomFields: "foo=bar\nbaz=qux",
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(out, `<privacy_level>anonymous</privacy_level>`) {
		t.Fatalf("expected anonymous privacy in:\n%s", out)
	}
	if out != MustBuildXML(Configuration{Title: "Demo", PrivacyLevel: PrivacyAnonymous, CustomFields: "foo=bar\nbaz=qux"}) {
		t.Fatalf("validated and unvalidated builds differ")
	}
}

func TestBuildXMLRejectsInvalidCustomFields(t *testing.T) {
	_, err := BuildXML(Configuration{CustomFields: "not-a-pair"})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
	if !strings.Contains(err.Error(), "key=value") {
		t.Fatalf("expected tracker text in error, got %q", err)
	}
}

func TestRenderFormats(t *testing.T) {
	values := url.Values{"tool_name": {"Demo"}}

	for _, format := range []string{"xml", "json", "html"} {
		out, err := Render(context.Background(), values, format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if !strings.Contains(string(out), "Demo") {
			t.Fatalf("%s output missing tool name", format)
		}
	}

	if _, err := Render(context.Background(), values, "pdf"); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestPlacements(t *testing.T) {
	list := Placements()
	if len(list) != 13 {
		t.Fatalf("expected 13 placements, got %d", len(list))
	}
	if list[0].Key != "account_navigation" {
		t.Fatalf("unexpected first placement %q", list[0].Key)
	}
}

func TestEmbeddedFS(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "page.tmpl"); err != nil {
		t.Fatalf("expected page template: %v", err)
	}
	if _, err := fs.ReadFile(AssetsFS(), "page.css"); err != nil {
		t.Fatalf("expected stylesheet: %v", err)
	}
}
