// Package api wraps the remote notes service behind typed calls. Every
// response uses the envelope {status, message?, data?}; "fail" on a 2xx
// response is still an error.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sintya/dinote/internal/note"
)

// Service is the surface the orchestrator and commands depend on. Tests
// substitute fakes for it.
type Service interface {
	Notes() ([]note.Note, error)
	ArchivedNotes() ([]note.Note, error)
	Note(id string) (note.Note, error)
	Create(title, body string) (note.Note, error)
	Archive(id string) error
	Unarchive(id string) error
	Delete(id string) error
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) Notes() ([]note.Note, error) {
	return c.fetchList("fetch notes", "/notes")
}

func (c *Client) ArchivedNotes() ([]note.Note, error) {
	return c.fetchList("fetch archived notes", "/notes/archived")
}

func (c *Client) Note(id string) (note.Note, error) {
	env, err := c.do("fetch note", http.MethodGet, "/notes/"+id, nil)
	if err != nil {
		return note.Note{}, err
	}

	var n note.Note
	if err := json.Unmarshal(env.Data, &n); err != nil {
		return note.Note{}, &RemoteFetchError{Op: "fetch note", Message: "malformed note payload"}
	}

	return n, nil
}

func (c *Client) Create(title, body string) (note.Note, error) {
	payload := map[string]string{
		"title": title,
		"body":  body,
	}

	env, err := c.do("create note", http.MethodPost, "/notes", payload)
	if err != nil {
		return note.Note{}, err
	}

	var n note.Note
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &n); err != nil {
			return note.Note{}, &RemoteFetchError{Op: "create note", Message: "malformed note payload"}
		}
	}

	return n, nil
}

func (c *Client) Archive(id string) error {
	_, err := c.do("archive note", http.MethodPost, "/notes/"+id+"/archive", nil)
	return err
}

func (c *Client) Unarchive(id string) error {
	_, err := c.do("unarchive note", http.MethodPost, "/notes/"+id+"/unarchive", nil)
	return err
}

func (c *Client) Delete(id string) error {
	_, err := c.do("delete note", http.MethodDelete, "/notes/"+id, nil)
	return err
}

func (c *Client) fetchList(op, path string) ([]note.Note, error) {
	env, err := c.do(op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var notes []note.Note
	if err := json.Unmarshal(env.Data, &notes); err != nil {
		return nil, &RemoteFetchError{Op: op, Message: "malformed notes payload"}
	}

	return notes, nil
}

func (c *Client) do(op, method, path string, payload any) (envelope, error) {
	var reqBody *bytes.Buffer

	if payload != nil {
		dataJson, err := json.Marshal(payload)
		if err != nil {
			return envelope{}, &RemoteFetchError{Op: op, Message: fmt.Sprintf("failed to encode payload: %v", err)}
		}
		reqBody = bytes.NewBuffer(dataJson)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return envelope{}, &RemoteFetchError{Op: op, Message: fmt.Sprintf("failed to create request: %v", err)}
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return envelope{}, &RemoteFetchError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected response: %s", resp.Status)
		}
		return envelope{}, &RemoteFetchError{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		return envelope{}, &RemoteFetchError{Op: op, StatusCode: resp.StatusCode, Message: "malformed response envelope"}
	}

	// The service signals application-level failures inside the envelope
	// even when the transport status is 2xx.
	if env.Status != "success" {
		msg := env.Message
		if msg == "" {
			msg = "request failed"
		}
		return envelope{}, &RemoteFetchError{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}

	return env, nil
}
