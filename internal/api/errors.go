package api

import "fmt"

// RemoteFetchError is returned for every failed call against the notes
// service: transport failures, non-2xx responses, and 2xx responses whose
// envelope reports status "fail". The client never retries; callers decide
// how to surface the message.
type RemoteFetchError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RemoteFetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}
