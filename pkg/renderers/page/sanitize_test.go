package page

import (
	"strings"
	"testing"
)

func TestSanitizeHelp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		notWant []string
	}{
		{name: "empty", input: "   "},
		{name: "plain text", input: "(key=value, one per line)", want: []string{"(key=value, one per line)"}},
		{
			name:  "link kept",
			input: `See <a href="https://canvas.instructure.com/doc/api/file.tools_xml.html">docs</a>`,
			want:  []string{`href="https://canvas.instructure.com/doc/api/file.tools_xml.html"`, `rel="nofollow"`, ">docs</a>"},
		},
		{
			name:    "script stripped",
			input:   `<script>alert(1)</script><em>ok</em>`,
			want:    []string{"<em>ok</em>"},
			notWant: []string{"<script", "alert(1)"},
		},
		{
			name:    "javascript url dropped",
			input:   `<a href="javascript:alert(1)" onclick="x()">click</a>`,
			want:    []string{"click"},
			notWant: []string{"javascript:", "onclick"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeHelp(tt.input)
			if len(tt.want) == 0 && got != "" {
				t.Fatalf("expected empty output, got %q", got)
			}
			for _, fragment := range tt.want {
				if !strings.Contains(got, fragment) {
					t.Fatalf("expected %q in %q", fragment, got)
				}
			}
			for _, fragment := range tt.notWant {
				if strings.Contains(got, fragment) {
					t.Fatalf("unexpected %q in %q", fragment, got)
				}
			}
		})
	}
}
