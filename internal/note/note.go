// Package note holds the note entity and the presentation helpers derived
// from it. The remote service owns the entity; everything computed here
// (colors, display timestamps, task counts) is derived at render time and
// never written back.
package note

import (
	"strings"
	"unicode/utf8"

	"github.com/araddon/dateparse"
)

const (
	MaxTitleLen = 100
	MaxBodyLen  = 1000
)

// Note is the entity as returned by the remote service.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
	Archived  bool   `json:"archived"`
}

// Palette is the closed set of card colors. Assignment is positional over the
// unfiltered snapshot, so a note's color can shift between reloads if the
// server order changes.
var Palette = []string{"yellow", "pink", "blue", "green", "purple", "orange"}

func ColorFor(index int) string {
	if index < 0 {
		index = 0
	}
	return Palette[index%len(Palette)]
}

// DraftErrors carries field-level validation messages for the note form.
// Empty strings mean the field is fine.
type DraftErrors struct {
	Title string
	Body  string
}

func (e DraftErrors) Ok() bool {
	return e.Title == "" && e.Body == ""
}

// ValidateDraft enforces the entry rules locally, before any network call.
func ValidateDraft(title, body string) DraftErrors {
	var errs DraftErrors

	switch {
	case strings.TrimSpace(title) == "":
		errs.Title = "Please enter a title"
	case utf8.RuneCountInString(title) > MaxTitleLen:
		errs.Title = "Title must be 100 characters or fewer"
	}

	switch {
	case strings.TrimSpace(body) == "":
		errs.Body = "Please enter content"
	case utf8.RuneCountInString(body) > MaxBodyLen:
		errs.Body = "Content must be 1000 characters or fewer"
	}

	return errs
}

// CreatedAtDisplay formats the service timestamp for list rows. The service
// sends ISO-8601, but dateparse keeps us lenient about fractional seconds and
// offsets. Unparseable input is shown as-is.
func CreatedAtDisplay(raw string) string {
	if raw == "" {
		return ""
	}

	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}

	return t.Format("2006-01-02 15:04")
}

// Snippet returns the first line of the body, trimmed to max runes, for use
// as a list row description.
func Snippet(body string, max int) string {
	line := body
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)

	if max > 0 && utf8.RuneCountInString(line) > max {
		runes := []rune(line)
		line = string(runes[:max-1]) + "…"
	}

	return line
}
