package cartridge_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ltixml/pkg/cartridge"
	"github.com/goliatone/go-ltixml/pkg/model"
	"github.com/goliatone/go-ltixml/pkg/testsupport"
)

func TestBuild_EmptyConfigurationUsesDefaults(t *testing.T) {
	out := cartridge.Build(model.Configuration{})

	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Fatalf("expected XML declaration, got %q", out[:40])
	}

	doc := testsupport.MustParseCartridge(t, out)
	if doc.Title != "" || doc.Description != "" || doc.LaunchURL != "" {
		t.Fatalf("expected empty text nodes, got %+v", doc)
	}
	if len(doc.Custom) != 0 {
		t.Fatalf("expected no custom properties, got %+v", doc.Custom)
	}
	if len(doc.Extensions.Options) != 0 {
		t.Fatalf("expected no placement options, got %+v", doc.Extensions.Options)
	}

	wantProps := map[string]string{
		"domain":           "",
		"privacy_level":    "public",
		"oauth_compliant":  "false",
		"selection_height": "500",
		"selection_width":  "500",
		"visibility":       "public",
	}
	for name, want := range wantProps {
		got, ok := doc.Extensions.Property(name)
		if !ok {
			t.Fatalf("missing extension property %q", name)
		}
		if got != want {
			t.Fatalf("property %s: want %q, got %q", name, want, got)
		}
	}
}

func TestBuild_PrivacyAndCustomFieldsExample(t *testing.T) {
	cfg := model.Configuration{
		Title:        "Demo",
		PrivacyLevel: model.PrivacyAnonymous,
		CustomFields: "foo=bar\nbaz=qux",
	}

	out := cartridge.Build(cfg)
	for _, node := range []string{
		`<privacy_level>anonymous</privacy_level>`,
		`<oauth_compliant>false</oauth_compliant>`,
		`<selection_height>500</selection_height>`,
		`<selection_width>500</selection_width>`,
		`<visibility>public</visibility>`,
	} {
		if !strings.Contains(out, node) {
			t.Fatalf("expected %s in:\n%s", node, out)
		}
	}

	doc := testsupport.MustParseCartridge(t, out)
	if doc.Title != "Demo" {
		t.Fatalf("title: want Demo, got %q", doc.Title)
	}
	want := []testsupport.Property{
		{Name: "foo", Value: "bar"},
		{Name: "baz", Value: "qux"},
	}
	if diff := cmp.Diff(want, doc.Custom); diff != "" {
		t.Fatalf("custom properties mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_EscapesFreeText(t *testing.T) {
	cfg := model.Configuration{
		Title:        `Tools & <Things> "quoted" 'single'`,
		Description:  "line one\nline <two>",
		LaunchURL:    "https://example.com/launch?a=1&b=2",
		CustomFields: "html=<b>bold</b> & more",
	}

	out := cartridge.Build(cfg)
	if strings.Contains(out, "<Things>") || strings.Contains(out, "<b>bold") {
		t.Fatalf("reserved characters leaked into output:\n%s", out)
	}

	doc := testsupport.MustParseCartridge(t, out)
	if doc.Title != cfg.Title {
		t.Fatalf("title round trip: want %q, got %q", cfg.Title, doc.Title)
	}
	if doc.Description != cfg.Description {
		t.Fatalf("description round trip: want %q, got %q", cfg.Description, doc.Description)
	}
	if doc.LaunchURL != cfg.LaunchURL {
		t.Fatalf("launch url round trip: want %q, got %q", cfg.LaunchURL, doc.LaunchURL)
	}
	if len(doc.Custom) != 1 || doc.Custom[0].Value != "<b>bold</b> & more" {
		t.Fatalf("custom value round trip: %+v", doc.Custom)
	}
}

func TestBuild_InvalidCharactersStayWellFormed(t *testing.T) {
	out := cartridge.Build(model.Configuration{Title: "bell\x07 and nul\x00"})
	testsupport.MustParseCartridge(t, out)
}

func TestBuild_IsDeterministic(t *testing.T) {
	cfg := model.Configuration{
		Title:          "Demo",
		Domain:         "example.com",
		OAuthCompliant: true,
		Visibility:     model.VisibilityAdmins,
		CustomFields:   "a=1\nb=2",
		Placements:     []string{"course_navigation", "editor_button"},
	}

	first := cartridge.Build(cfg)
	second := cartridge.Build(cfg)
	if first != second {
		t.Fatalf("build is not deterministic:\n%s\n---\n%s", first, second)
	}
}

func TestBuild_PlacementsBecomeOptionBlocks(t *testing.T) {
	cfg := model.Configuration{
		Placements: []string{"editor_button", "course_navigation", "editor_button"},
	}

	doc := testsupport.MustParseCartridge(t, cartridge.Build(cfg))

	if diff := cmp.Diff([]string{"editor_button", "course_navigation"}, doc.Extensions.OptionNames()); diff != "" {
		t.Fatalf("placement options mismatch (-want +got):\n%s", diff)
	}
	for _, opt := range doc.Extensions.Options {
		if len(opt.Properties) != 1 || opt.Properties[0].Name != "enabled" || opt.Properties[0].Value != "true" {
			t.Fatalf("unexpected properties for %s: %+v", opt.Name, opt.Properties)
		}
	}
}

func TestBuild_SkipsMalformedCustomLinesAndNormalisesEnums(t *testing.T) {
	cfg := model.Configuration{
		PrivacyLevel:    "everyone",
		Visibility:      "nobody",
		SelectionHeight: " 320 ",
		CustomFields:    "ok=1\nbroken\n\n=missing-key",
	}

	doc := testsupport.MustParseCartridge(t, cartridge.Build(cfg))

	if diff := cmp.Diff([]testsupport.Property{{Name: "ok", Value: "1"}}, doc.Custom); diff != "" {
		t.Fatalf("custom properties mismatch (-want +got):\n%s", diff)
	}
	if got, _ := doc.Extensions.Property("privacy_level"); got != "public" {
		t.Fatalf("unknown privacy should fall back to public, got %q", got)
	}
	if got, _ := doc.Extensions.Property("visibility"); got != "public" {
		t.Fatalf("unknown visibility should fall back to public, got %q", got)
	}
	if got, _ := doc.Extensions.Property("selection_height"); got != "320" {
		t.Fatalf("selection height: want 320, got %q", got)
	}
	if got, _ := doc.Extensions.Property("oauth_compliant"); got != "false" {
		t.Fatalf("oauth flag: want false, got %q", got)
	}
}
