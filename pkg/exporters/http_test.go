package exporters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samvad-hq/restcountries-go/pkg/restcountries"
)

func TestHTTPExporterSuccess(t *testing.T) {
	var received Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if got := r.Header.Get("X-Test"); got != "1" {
			t.Errorf("missing header, got %s", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	exp, err := newHTTPExporter(context.Background(), ExporterConfig{
		ID:   "hook",
		Type: TypeHTTP,
		HTTP: &HTTPExporterConfig{
			URL:            srv.URL,
			Method:         http.MethodPut,
			Headers:        map[string]string{"X-Test": "1"},
			TimeoutSeconds: 2,
		},
	}, nil)
	if err != nil {
		t.Fatalf("newHTTPExporter: %v", err)
	}

	evt := NewEvent("code", "/alpha/col", restcountries.Country{Name: "Colombia", Alpha3Code: "COL"})
	if err := exp.Export(context.Background(), evt); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if received.Operation != "code" || received.Country.Alpha3Code != "COL" {
		t.Fatalf("server received %+v", received)
	}
}

func TestHTTPExporterErrorOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	exp, err := newHTTPExporter(context.Background(), ExporterConfig{
		ID:   "hook",
		Type: TypeHTTP,
		HTTP: &HTTPExporterConfig{URL: srv.URL, Method: http.MethodPost, TimeoutSeconds: 1},
	}, nil)
	if err != nil {
		t.Fatalf("newHTTPExporter: %v", err)
	}

	if err := exp.Export(context.Background(), Event{}); err == nil {
		t.Fatalf("expected error on non-2xx response")
	}
}

func TestNewHTTPExporterRequiresConfig(t *testing.T) {
	if _, err := newHTTPExporter(context.Background(), ExporterConfig{ID: "hook"}, nil); err == nil {
		t.Fatalf("expected error for missing http block")
	}
}
