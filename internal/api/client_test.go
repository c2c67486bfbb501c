package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second), srv
}

func TestNotesDecodesEnvelope(t *testing.T) {
	t.Parallel()

	var gotPath string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"data": [
				{"id": "notes-1", "title": "First", "body": "hello", "createdAt": "2024-04-14T04:27:05.952Z", "archived": false},
				{"id": "notes-2", "title": "Second", "body": "world", "createdAt": "2024-04-15T10:00:00.000Z", "archived": false}
			]
		}`))
	})
	defer srv.Close()

	notes, err := client.Notes()
	if err != nil {
		t.Fatalf("Notes returned error: %v", err)
	}

	if gotPath != "/notes" {
		t.Fatalf("expected request to /notes, got %s", gotPath)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != "notes-1" || notes[1].Title != "Second" {
		t.Fatalf("unexpected notes decoded: %+v", notes)
	}
	if notes[0].Archived {
		t.Fatalf("expected active note, got archived")
	}
}

func TestArchivedNotesHitsArchivedPath(t *testing.T) {
	t.Parallel()

	var gotPath string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status": "success", "data": []}`))
	})
	defer srv.Close()

	notes, err := client.ArchivedNotes()
	if err != nil {
		t.Fatalf("ArchivedNotes returned error: %v", err)
	}
	if gotPath != "/notes/archived" {
		t.Fatalf("expected request to /notes/archived, got %s", gotPath)
	}
	if len(notes) != 0 {
		t.Fatalf("expected empty list, got %d notes", len(notes))
	}
}

func TestCreateSendsJSONPayload(t *testing.T) {
	t.Parallel()

	var (
		gotMethod      string
		gotContentType string
		gotPayload     map[string]string
	)

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.Write([]byte(`{"status": "success", "message": "Note created", "data": {"id": "notes-9", "title": "New", "body": "text", "archived": false}}`))
	})
	defer srv.Close()

	created, err := client.Create("New", "text")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST, got %s", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected application/json content type, got %q", gotContentType)
	}
	if gotPayload["title"] != "New" || gotPayload["body"] != "text" {
		t.Fatalf("unexpected payload: %+v", gotPayload)
	}
	if created.ID != "notes-9" {
		t.Fatalf("expected created note id notes-9, got %q", created.ID)
	}
}

func TestEnvelopeFailOn2xxIsError(t *testing.T) {
	t.Parallel()

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "fail", "message": "title is required"}`))
	})
	defer srv.Close()

	_, err := client.Create("", "")
	if err == nil {
		t.Fatalf("expected error for fail envelope on 2xx response")
	}

	var rfe *RemoteFetchError
	if !errors.As(err, &rfe) {
		t.Fatalf("expected RemoteFetchError, got %T", err)
	}
	if rfe.Message != "title is required" {
		t.Fatalf("expected envelope message to surface, got %q", rfe.Message)
	}
}

func TestNon2xxIsRemoteFetchError(t *testing.T) {
	t.Parallel()

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status": "fail", "message": "Note not found"}`))
	})
	defer srv.Close()

	_, err := client.Note("missing-id")
	if err == nil {
		t.Fatalf("expected error for 404 response")
	}

	var rfe *RemoteFetchError
	if !errors.As(err, &rfe) {
		t.Fatalf("expected RemoteFetchError, got %T", err)
	}
	if rfe.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rfe.StatusCode)
	}
	if rfe.Message != "Note not found" {
		t.Fatalf("expected envelope message preferred over status text, got %q", rfe.Message)
	}
}

func TestMalformedPayloadIsRemoteFetchError(t *testing.T) {
	t.Parallel()

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": "not-a-list"}`))
	})
	defer srv.Close()

	_, err := client.Notes()
	if err == nil {
		t.Fatalf("expected error for malformed data payload")
	}

	var rfe *RemoteFetchError
	if !errors.As(err, &rfe) {
		t.Fatalf("expected RemoteFetchError, got %T", err)
	}
}

func TestTransportErrorIsRemoteFetchError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Deliberately closed so the call cannot connect.

	client := NewClient(srv.URL, time.Second)

	_, err := client.Notes()
	if err == nil {
		t.Fatalf("expected transport error")
	}

	var rfe *RemoteFetchError
	if !errors.As(err, &rfe) {
		t.Fatalf("expected RemoteFetchError, got %T", err)
	}
	if rfe.StatusCode != 0 {
		t.Fatalf("expected no status code for transport failure, got %d", rfe.StatusCode)
	}
}

func TestArchiveUnarchiveDeleteUseExpectedRoutes(t *testing.T) {
	t.Parallel()

	type call struct {
		method string
		path   string
	}
	var calls []call

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{method: r.Method, path: r.URL.Path})
		w.Write([]byte(`{"status": "success", "message": "ok"}`))
	})
	defer srv.Close()

	if err := client.Archive("notes-1"); err != nil {
		t.Fatalf("Archive returned error: %v", err)
	}
	if err := client.Unarchive("notes-1"); err != nil {
		t.Fatalf("Unarchive returned error: %v", err)
	}
	if err := client.Delete("notes-1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	want := []call{
		{method: http.MethodPost, path: "/notes/notes-1/archive"},
		{method: http.MethodPost, path: "/notes/notes-1/unarchive"},
		{method: http.MethodDelete, path: "/notes/notes-1"},
	}

	if len(calls) != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), len(calls))
	}
	for i, c := range calls {
		if c != want[i] {
			t.Fatalf("call %d: expected %+v, got %+v", i, want[i], c)
		}
	}
}
