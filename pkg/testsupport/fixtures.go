package testsupport

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ltixml/pkg/cartridge"
)

// Cartridge mirrors the cartridge_basiclti_link document with namespace
// qualified names so tests can decode builder output and assert on values
// instead of formatting.
type Cartridge struct {
	XMLName     xml.Name   `xml:"http://www.imsglobal.org/xsd/imslticc_v1p0 cartridge_basiclti_link"`
	Title       string     `xml:"http://www.imsglobal.org/xsd/imsbasiclti_v1p0 title"`
	Description string     `xml:"http://www.imsglobal.org/xsd/imsbasiclti_v1p0 description"`
	LaunchURL   string     `xml:"http://www.imsglobal.org/xsd/imsbasiclti_v1p0 launch_url"`
	Custom      []Property `xml:"http://www.imsglobal.org/xsd/imslticm_v1p0 custom>property"`
	Extensions  Extensions `xml:"http://www.imsglobal.org/xsd/imsbasiclti_v1p0 extensions"`
}

// Extensions mirrors the blti:extensions block.
type Extensions struct {
	Platform        string    `xml:"platform,attr"`
	Domain          *string   `xml:"domain"`
	PrivacyLevel    *string   `xml:"privacy_level"`
	OAuthCompliant  *string   `xml:"oauth_compliant"`
	SelectionHeight *string   `xml:"selection_height"`
	SelectionWidth  *string   `xml:"selection_width"`
	Visibility      *string   `xml:"visibility"`
	Options         []Options `xml:"http://www.imsglobal.org/xsd/imslticm_v1p0 options"`
}

// Options mirrors one lticm:options placement block.
type Options struct {
	Name       string     `xml:"name,attr"`
	Properties []Property `xml:"http://www.imsglobal.org/xsd/imslticm_v1p0 property"`
}

// Property mirrors an lticm:property node.
type Property struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// Property returns the text of the named extension element and whether the
// element was present.
func (e Extensions) Property(name string) (string, bool) {
	var value *string
	switch name {
	case "domain":
		value = e.Domain
	case "privacy_level":
		value = e.PrivacyLevel
	case "oauth_compliant":
		value = e.OAuthCompliant
	case "selection_height":
		value = e.SelectionHeight
	case "selection_width":
		value = e.SelectionWidth
	case "visibility":
		value = e.Visibility
	}
	if value == nil {
		return "", false
	}
	return *value, true
}

// OptionNames lists the placement option blocks in document order.
func (e Extensions) OptionNames() []string {
	var out []string
	for _, opt := range e.Options {
		out = append(out, opt.Name)
	}
	return out
}

// MustParseCartridge decodes builder output, failing the test when the payload
// is not well formed XML.
func MustParseCartridge(t *testing.T, payload string) Cartridge {
	t.Helper()

	MustWellFormedXML(t, payload)
	var doc Cartridge
	if err := xml.Unmarshal([]byte(payload), &doc); err != nil {
		t.Fatalf("decode cartridge: %v\n%s", err, payload)
	}
	if doc.Extensions.Platform != cartridge.Platform {
		t.Fatalf("unexpected extensions platform %q", doc.Extensions.Platform)
	}
	return doc
}

// MustWellFormedXML walks every token of payload and fails on syntax errors.
func MustWellFormedXML(t *testing.T, payload string) {
	t.Helper()

	dec := xml.NewDecoder(strings.NewReader(payload))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("payload is not well formed XML: %v\n%s", err, payload)
		}
	}
}

// Values builds url.Values from alternating key/value arguments. Repeated keys
// accumulate, mirroring repeated form inputs.
func Values(pairs ...string) url.Values {
	values := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		values.Add(pairs[i], pairs[i+1])
	}
	return values
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
