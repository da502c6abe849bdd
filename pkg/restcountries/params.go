package restcountries

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	paramFields   = "fields"
	paramCodes    = "codes"
	paramFullText = "fullText"

	listSeparator = ";"
)

// ErrUnsupportedInput is returned, before any network call, when an argument cannot be
// normalized into the wire format the API expects.
var ErrUnsupportedInput = errors.New("unsupported data type")

// Fields restricts which fields the API includes in each country record.
type Fields []string

// normalize joins the filter with ";" and lower-cases it. An empty filter yields "".
func (f Fields) normalize() (string, error) {
	if len(f) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(f))
	for i, name := range f {
		name = strings.TrimSpace(name)
		if name == "" {
			return "", fmt.Errorf("%w: fields[%d] is blank", ErrUnsupportedInput, i)
		}
		parts = append(parts, name)
	}
	return strings.ToLower(strings.Join(parts, listSeparator)), nil
}

// CodeList is the argument of the multi-code lookup. Build one with CodeText or CodeSeq.
type CodeList struct {
	text  string
	seq   []string
	isSeq bool
}

// CodeText wraps a single ";" delimited list such as "CO;NO;EE".
func CodeText(codes string) CodeList {
	return CodeList{text: codes}
}

// CodeSeq wraps an ordered sequence of codes.
func CodeSeq(codes ...string) CodeList {
	return CodeList{seq: append([]string(nil), codes...), isSeq: true}
}

// normalize returns the lower-cased ";" joined wire value.
func (c CodeList) normalize() (string, error) {
	joined := c.text
	if c.isSeq {
		joined = strings.Join(c.seq, listSeparator)
	}

	nonEmpty := false
	for _, code := range strings.Split(joined, listSeparator) {
		if strings.TrimSpace(code) != "" {
			nonEmpty = true
			break
		}
	}
	if !nonEmpty {
		return "", fmt.Errorf("%w: codes list is empty", ErrUnsupportedInput)
	}
	return strings.ToLower(joined), nil
}

// String returns the normalized value, or "" for an empty list.
func (c CodeList) String() string {
	v, _ := c.normalize()
	return v
}

// pathSegment lower-cases and escapes a required path argument.
func pathSegment(arg, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s must not be empty", ErrUnsupportedInput, arg)
	}
	return url.PathEscape(strings.ToLower(value)), nil
}

// verbatimSegment escapes a required path argument without changing its case.
func verbatimSegment(arg, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s must not be empty", ErrUnsupportedInput, arg)
	}
	return url.PathEscape(value), nil
}
