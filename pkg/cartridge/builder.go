package cartridge

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-ltixml/pkg/model"
	"github.com/goliatone/go-ltixml/pkg/validation"
)

// Build renders cfg as a Canvas cartridge_basiclti_link document. It is pure
// and deterministic and accepts any Configuration, including the zero value
// used for the initial empty form: blank enumerations and dimensions fall back
// to the defaults the form pre-fills, and free text is entity escaped by the
// encoder. Malformed custom field lines are skipped; callers validate them
// first and show the tracker text instead of the document on failure.
func Build(cfg model.Configuration) string {
	return mustMarshal(newDocument(cfg))
}

func newDocument(cfg model.Configuration) document {
	return document{
		Xmlns:          NamespaceCC,
		XmlnsBLTI:      NamespaceBasicLTI,
		XmlnsLTICM:     NamespaceLTIConfigMgmt,
		XmlnsLTICP:     NamespaceLTICommonProfl,
		XmlnsXSI:       NamespaceXSI,
		SchemaLocation: schemaLocation,
		Title:          cfg.Title,
		Description:    cfg.Description,
		LaunchURL:      cfg.LaunchURL,
		Custom:         custom{Properties: customProperties(cfg.CustomFields)},
		Extensions: extensions{
			Platform:        Platform,
			Domain:          cfg.Domain,
			PrivacyLevel:    string(cfg.PrivacyLevel.OrDefault()),
			OAuthCompliant:  strconv.FormatBool(cfg.OAuthCompliant),
			SelectionHeight: dimension(cfg.SelectionHeight),
			SelectionWidth:  dimension(cfg.SelectionWidth),
			Visibility:      string(cfg.Visibility.OrDefault()),
			Options:         placementOptions(cfg.PlacementKeys()),
		},
		Bundle: reference{IdentifierRef: BundleRef},
		Icon:   reference{IdentifierRef: IconRef},
	}
}

func customProperties(raw string) []property {
	fields := validation.ParseCustomFields(raw)
	if len(fields) == 0 {
		return nil
	}
	out := make([]property, 0, len(fields))
	for _, field := range fields {
		out = append(out, property{Name: field.Key, Value: field.Value})
	}
	return out
}

// placementOptions emits one options block per placement. Per-placement
// settings (url, text, icon) are not modelled yet, so each block only enables
// the placement and inherits the tool level launch URL.
func placementOptions(keys []string) []options {
	if len(keys) == 0 {
		return nil
	}
	out := make([]options, 0, len(keys))
	for _, key := range keys {
		out = append(out, options{
			Name: key,
			Properties: []property{
				{Name: "enabled", Value: "true"},
			},
		})
	}
	return out
}

func dimension(raw string) string {
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return trimmed
	}
	return model.DefaultSelectionSize
}

func mustMarshal(doc document) string {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		// The document only carries strings under fixed element names.
		panic(fmt.Errorf("cartridge: encode document: %w", err))
	}
	if err := enc.Close(); err != nil {
		panic(fmt.Errorf("cartridge: close encoder: %w", err))
	}
	buf.WriteByte('\n')
	return buf.String()
}
