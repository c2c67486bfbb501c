package views

import (
	"strings"
	"testing"
)

func TestNextCyclesViews(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		view string
		want string
	}{
		{view: "active", want: "archived"},
		{view: "archived", want: "active"},
		{view: "bogus", want: "active"},
	}

	for _, tc := range testCases {
		if got := Next(tc.view); got != tc.want {
			t.Fatalf("Next(%q): expected %q, got %q", tc.view, tc.want, got)
		}
	}
}

func TestGetTitleForViewIncludesBothModes(t *testing.T) {
	t.Parallel()

	title := GetTitleForView("active", false)
	if !strings.Contains(title, "Active") || !strings.Contains(title, "Archived") {
		t.Fatalf("expected both view labels in title, got %q", title)
	}

	loadingTitle := GetTitleForView("archived", true)
	if !strings.Contains(loadingTitle, "loading") {
		t.Fatalf("expected loading marker in title, got %q", loadingTitle)
	}
}
