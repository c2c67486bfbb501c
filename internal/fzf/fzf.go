package fzf

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/sintya/dinote/internal/api"
	"github.com/sintya/dinote/internal/note"
	"github.com/sintya/dinote/utils"
)

// NotePicker runs a fuzzy finder over a freshly fetched snapshot, with a
// rendered markdown preview of the highlighted note.
type NotePicker struct {
	client api.Service
	Header string
	notes  []note.Note
}

func NewNotePicker(client api.Service, header string) *NotePicker {
	return &NotePicker{client: client, Header: header}
}

// Pick fetches the snapshot for the given view and returns the selected note.
func (p *NotePicker) Pick(view, query string) (note.Note, error) {
	var (
		ns  []note.Note
		err error
	)

	if view == "archived" {
		ns, err = p.client.ArchivedNotes()
	} else {
		ns, err = p.client.Notes()
	}
	if err != nil {
		return note.Note{}, fmt.Errorf("error listing notes: %w", err)
	}
	if len(ns) == 0 {
		return note.Note{}, fmt.Errorf("no notes in the %s view", view)
	}

	p.notes = ns

	idx, err := p.fuzzySelect(query)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return note.Note{}, fmt.Errorf("no note selected")
		}
		return note.Note{}, fmt.Errorf("error selecting note: %w", err)
	}

	return p.notes[idx], nil
}

func (p *NotePicker) fuzzySelect(query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(p.renderMarkdownPreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if p.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(p.Header))
	}

	labels := make([]string, len(p.notes))
	for i, n := range p.notes {
		if ts := note.CreatedAtDisplay(n.CreatedAt); ts != "" {
			labels[i] = fmt.Sprintf("%s [%s]", n.Title, ts)
		} else {
			labels[i] = n.Title
		}
	}

	return fuzzyfinder.Find(p.notes, func(i int) string {
		return labels[i]
	}, options...)
}

func (p *NotePicker) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}
	return utils.RenderMarkdownBody(p.notes[i].Body, w)
}
