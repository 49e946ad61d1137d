package render

import (
	"context"
	"strings"
	"testing"
)

func TestNotesToHTML(t *testing.T) {
	n := NewGoldmarkNotes()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   string
		want    []string
		exclude []string
	}{
		{
			name:  "empty yields empty",
			input: "   ",
		},
		{
			name:  "emphasis",
			input: "pay *now*",
			want:  []string{"<em>now</em>"},
		},
		{
			name:  "list",
			input: "- wire transfer\n- card",
			want:  []string{"<ul>", "<li>wire transfer</li>"},
		},
		{
			name:  "hard wraps become breaks",
			input: "line one\nline two",
			want:  []string{"<br"},
		},
		{
			name:    "raw html is escaped",
			input:   "<script>alert(1)</script>",
			want:    []string{"&lt;script&gt;"},
			exclude: []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(n.ToHTML(ctx, tt.input))
			if len(tt.want) == 0 && got != "" {
				t.Errorf("ToHTML(%q) = %q, want empty", tt.input, got)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("ToHTML(%q) = %q, missing %q", tt.input, got, w)
				}
			}
			for _, e := range tt.exclude {
				if strings.Contains(got, e) {
					t.Errorf("ToHTML(%q) = %q, must not contain %q", tt.input, got, e)
				}
			}
		})
	}
}

func TestNotesToHTMLCancelledContextFallsBack(t *testing.T) {
	n := NewGoldmarkNotes()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := string(n.ToHTML(ctx, "**bold**"))
	if !strings.HasPrefix(got, "<p>") || strings.Contains(got, "<strong>") {
		t.Errorf("cancelled context output = %q, want escaped fallback", got)
	}
}
