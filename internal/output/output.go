// Package output renders raw API responses for the terminal.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ErrPathNotFound is returned when a pick path matches nothing in the document.
var ErrPathNotFound = errors.New("path not found")

// Pick narrows a JSON document to the value at a gjson path, e.g. "#.name"
// for every country's name. An empty path returns the document unchanged.
func Pick(doc []byte, path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return doc, nil
	}
	if !gjson.ValidBytes(doc) {
		return nil, errors.New("response is not valid JSON")
	}

	result := gjson.GetBytes(doc, path)
	if !result.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	return []byte(result.Raw), nil
}

// Render writes doc to w, pretty-printed unless compact is set.
func Render(w io.Writer, doc []byte, compact bool) error {
	var out []byte
	if compact {
		out = pretty.Ugly(doc)
		out = append(out, '\n')
	} else {
		out = pretty.Pretty(doc)
	}
	_, err := w.Write(out)
	return err
}

// Write applies Pick then Render.
func Write(w io.Writer, doc []byte, path string, compact bool) error {
	picked, err := Pick(doc, path)
	if err != nil {
		return err
	}
	return Render(w, picked, compact)
}

// Count reports how many elements a JSON document holds: the array length,
// 1 for an object, 0 otherwise.
func Count(doc []byte) int {
	result := gjson.ParseBytes(doc)
	switch {
	case result.IsArray():
		return int(result.Get("#").Int())
	case result.IsObject():
		return 1
	default:
		return 0
	}
}
