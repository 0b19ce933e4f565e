package model

import (
	"net/url"
	"strings"
)

// Form field names shared by the HTML form, the terminal prompts, the
// validators, and the error tracker.
const (
	FieldTitle           = "tool_name"
	FieldDescription     = "description"
	FieldDomain          = "tool_domain"
	FieldLaunchURL       = "launch_url"
	FieldPrivacyLevel    = "privacy_level"
	FieldSelectionHeight = "selection_height"
	FieldSelectionWidth  = "selection_width"
	FieldOAuthCompliant  = "oauth_compliant"
	FieldVisibility      = "visibility"
	FieldCustomFields    = "custom_fields"
	FieldPlacements      = "placements"
)

// DefaultSelectionSize is pre-filled for both selection dimensions and used by
// the builder when a dimension is left blank.
const DefaultSelectionSize = "500"

var fieldNames = []string{
	FieldTitle,
	FieldDescription,
	FieldDomain,
	FieldLaunchURL,
	FieldPrivacyLevel,
	FieldOAuthCompliant,
	FieldVisibility,
	FieldCustomFields,
	FieldSelectionHeight,
	FieldSelectionWidth,
	FieldPlacements,
}

// FieldNames returns the form field names in display order.
func FieldNames() []string {
	return append([]string(nil), fieldNames...)
}

// Configuration captures one submission of the tool configuration form. It is
// built once per request and treated as read-only afterwards.
type Configuration struct {
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Domain          string       `json:"domain"`
	LaunchURL       string       `json:"launchUrl"`
	PrivacyLevel    PrivacyLevel `json:"privacyLevel"`
	SelectionHeight string       `json:"selectionHeight"`
	SelectionWidth  string       `json:"selectionWidth"`
	OAuthCompliant  bool         `json:"oauthCompliant"`
	Visibility      Visibility   `json:"visibility"`
	CustomFields    string       `json:"customFields"`
	Placements      []string     `json:"placements"`
}

// FromValues maps submitted form values onto a Configuration. Scalars take the
// first submitted value, the OAuth flag is true when the key is present at all
// (unchecked checkboxes are not submitted), and placements keep the order of
// first appearance with blanks and duplicates dropped.
func FromValues(values url.Values) Configuration {
	_, oauth := values[FieldOAuthCompliant]
	return Configuration{
		Title:           values.Get(FieldTitle),
		Description:     values.Get(FieldDescription),
		Domain:          values.Get(FieldDomain),
		LaunchURL:       values.Get(FieldLaunchURL),
		PrivacyLevel:    PrivacyLevel(values.Get(FieldPrivacyLevel)),
		SelectionHeight: values.Get(FieldSelectionHeight),
		SelectionWidth:  values.Get(FieldSelectionWidth),
		OAuthCompliant:  oauth,
		Visibility:      Visibility(values.Get(FieldVisibility)),
		CustomFields:    values.Get(FieldCustomFields),
		Placements:      uniqueKeys(values[FieldPlacements]),
	}
}

// Values converts the configuration back into form values, the inverse of
// FromValues. Renderers use it to echo a submission back into the form.
func (c Configuration) Values() url.Values {
	values := url.Values{}
	values.Set(FieldTitle, c.Title)
	values.Set(FieldDescription, c.Description)
	values.Set(FieldDomain, c.Domain)
	values.Set(FieldLaunchURL, c.LaunchURL)
	values.Set(FieldPrivacyLevel, string(c.PrivacyLevel))
	values.Set(FieldSelectionHeight, c.SelectionHeight)
	values.Set(FieldSelectionWidth, c.SelectionWidth)
	if c.OAuthCompliant {
		values.Set(FieldOAuthCompliant, "on")
	}
	values.Set(FieldVisibility, string(c.Visibility))
	values.Set(FieldCustomFields, c.CustomFields)
	for _, key := range c.Placements {
		values.Add(FieldPlacements, key)
	}
	return values
}

// PlacementKeys returns a copy of the selected placement identifiers.
func (c Configuration) PlacementKeys() []string {
	return uniqueKeys(c.Placements)
}

// HasPlacement reports whether the placement key was selected.
func (c Configuration) HasPlacement(key string) bool {
	for _, candidate := range c.Placements {
		if candidate == key {
			return true
		}
	}
	return false
}

func uniqueKeys(keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
