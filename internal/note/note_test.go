package note

import (
	"strings"
	"testing"
)

func TestValidateDraft(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		title     string
		body      string
		wantOk    bool
		wantField string
	}{
		{
			name:   "valid draft",
			title:  "Groceries",
			body:   "milk and eggs",
			wantOk: true,
		},
		{
			name:      "empty title",
			title:     "",
			body:      "content",
			wantField: "title",
		},
		{
			name:      "whitespace title",
			title:     "   ",
			body:      "content",
			wantField: "title",
		},
		{
			name:      "empty body",
			title:     "Groceries",
			body:      "",
			wantField: "body",
		},
		{
			name:      "title over limit",
			title:     strings.Repeat("a", MaxTitleLen+1),
			body:      "content",
			wantField: "title",
		},
		{
			name:      "body over limit",
			title:     "Groceries",
			body:      strings.Repeat("b", MaxBodyLen+1),
			wantField: "body",
		},
		{
			name:   "title exactly at limit",
			title:  strings.Repeat("a", MaxTitleLen),
			body:   "content",
			wantOk: true,
		},
		{
			name:   "multibyte runes counted as one",
			title:  strings.Repeat("é", MaxTitleLen),
			body:   "content",
			wantOk: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			errs := ValidateDraft(tc.title, tc.body)
			if errs.Ok() != tc.wantOk {
				t.Fatalf("expected ok=%v, got %+v", tc.wantOk, errs)
			}

			switch tc.wantField {
			case "title":
				if errs.Title == "" {
					t.Fatalf("expected title error, got %+v", errs)
				}
			case "body":
				if errs.Body == "" {
					t.Fatalf("expected body error, got %+v", errs)
				}
			}
		})
	}
}

func TestColorForCyclesPalette(t *testing.T) {
	t.Parallel()

	for i := 0; i < len(Palette)*2; i++ {
		want := Palette[i%len(Palette)]
		if got := ColorFor(i); got != want {
			t.Fatalf("index %d: expected %q, got %q", i, want, got)
		}
	}

	if got := ColorFor(-1); got != Palette[0] {
		t.Fatalf("expected negative index to clamp to first color, got %q", got)
	}
}

func TestCreatedAtDisplay(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "iso with millis",
			raw:  "2024-04-14T04:27:05.952Z",
			want: "2024-04-14 04:27",
		},
		{
			name: "iso without millis",
			raw:  "2024-04-14T04:27:05Z",
			want: "2024-04-14 04:27",
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
		{
			name: "garbage falls through",
			raw:  "not-a-date",
			want: "not-a-date",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := CreatedAtDisplay(tc.raw); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSnippetTrimsToFirstLine(t *testing.T) {
	t.Parallel()

	if got := Snippet("first line\nsecond line", 80); got != "first line" {
		t.Fatalf("expected first line, got %q", got)
	}

	long := strings.Repeat("x", 50)
	got := Snippet(long, 10)
	if len([]rune(got)) != 10 {
		t.Fatalf("expected 10 runes, got %d (%q)", len([]rune(got)), got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestCountTasks(t *testing.T) {
	t.Parallel()

	body := "shopping\n\n- [ ] milk\n- [x] eggs\n- [ ] bread\n- plain item\n"
	counts := CountTasks(body)

	if counts.Open != 2 {
		t.Fatalf("expected 2 open tasks, got %d", counts.Open)
	}
	if counts.Done != 1 {
		t.Fatalf("expected 1 done task, got %d", counts.Done)
	}
	if counts.Total() != 3 {
		t.Fatalf("expected 3 total tasks, got %d", counts.Total())
	}

	if got := CountTasks("no tasks here"); got.Total() != 0 {
		t.Fatalf("expected no tasks, got %+v", got)
	}
}
