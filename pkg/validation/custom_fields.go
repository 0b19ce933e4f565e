package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// CustomFieldsRule is reported when any custom field line is not key=value.
const CustomFieldsRule = "Custom fields must be entered as key=value, one per line"

// CustomField is one parsed key=value line of the custom fields text.
type CustomField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CustomFields validates the raw custom fields text. Every line must be blank
// or of the form key=value with a non-empty key; the value may be empty. All
// offending lines are reported in a single message.
func CustomFields(raw string) Result {
	var bad []int
	for idx, line := range splitLines(raw) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, ok := parseLine(line); !ok {
			bad = append(bad, idx+1)
		}
	}
	if len(bad) == 0 {
		return Pass()
	}
	return Fail(fmt.Sprintf("%s (%s)", CustomFieldsRule, describeLines(bad)))
}

// ParseCustomFields returns the key=value pairs of raw in input order. Blank
// and malformed lines are skipped, so the result is defined for any input.
func ParseCustomFields(raw string) []CustomField {
	var out []CustomField
	for _, line := range splitLines(raw) {
		if field, ok := parseLine(line); ok {
			out = append(out, field)
		}
	}
	return out
}

func splitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
}

func parseLine(line string) (CustomField, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return CustomField{}, false
	}
	key, value, found := strings.Cut(trimmed, "=")
	if !found {
		return CustomField{}, false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return CustomField{}, false
	}
	return CustomField{Key: key, Value: strings.TrimSpace(value)}, true
}

func describeLines(lines []int) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, strconv.Itoa(line))
	}
	if len(parts) == 1 {
		return "line " + parts[0]
	}
	return "lines " + strings.Join(parts, ", ")
}
