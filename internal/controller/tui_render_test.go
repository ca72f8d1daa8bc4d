package controller

import (
	"strings"
	"testing"
)

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 0); got != "" {
		t.Fatalf("truncateToWidth width 0 = %q, want empty", got)
	}

	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Fatalf("truncateToWidth no truncation = %q", got)
	}

	if got := truncateToWidth("hello", 1); got != "…" {
		t.Fatalf("truncateToWidth width 1 = %q, want ellipsis", got)
	}

	if got := truncateToWidth("hello", 2); got != "h…" {
		t.Fatalf("truncateToWidth width 2 = %q, want h…", got)
	}
}

func TestRenderDiffLine(t *testing.T) {
	for _, line := range []string{
		"--- a/app.tsx",
		"+++ b/app.tsx",
		"@@ -1,1 +1,1 @@",
		`-<div className="flex" />`,
		`+<div className="tw-flex" />`,
		" context",
	} {
		if got := renderDiffLine(line, 80); !strings.Contains(got, line) {
			t.Fatalf("renderDiffLine(%q) = %q, want the line text", line, got)
		}
	}

	if got := renderDiffLine("+ a very long added line", 8); strings.Contains(got, "long") {
		t.Fatalf("renderDiffLine did not truncate: %q", got)
	}
}

func TestStatusStyle_UnknownStatus(t *testing.T) {
	if got := statusStyle("other").Render("other"); !strings.Contains(got, "other") {
		t.Fatalf("statusStyle(other) rendered %q", got)
	}
}
