package httpclient

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
)

const maxSnippetBytes = 512

// StatusError is returned when a response fails the client's success predicate.
type StatusError struct {
	StatusCode int
	URL        string
	Message    string
	Body       string
}

// NewStatusError builds a StatusError, extracting a human readable message from body.
func NewStatusError(status int, url string, body []byte) *StatusError {
	snippet := responseSnippet(body)
	return &StatusError{
		StatusCode: status,
		URL:        url,
		Message:    errorMessage(body, snippet),
		Body:       snippet,
	}
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: status %d: %s", e.URL, e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not a StatusError.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

func responseSnippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxSnippetBytes {
		return s[:maxSnippetBytes] + "..."
	}
	return s
}

// errorMessage prefers a JSON "message" field, then an HTML <title>, then the raw snippet.
func errorMessage(body []byte, snippet string) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	if gjson.ValidBytes(trimmed) {
		if msg := gjson.GetBytes(trimmed, "message"); msg.Exists() {
			return strings.TrimSpace(msg.String())
		}
		return snippet
	}

	if trimmed[0] == '<' {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(trimmed))
		if err == nil {
			if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
				return title
			}
		}
	}
	return snippet
}
