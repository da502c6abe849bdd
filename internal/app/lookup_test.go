package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/samvad-hq/restcountries-go/internal/config"
	"github.com/samvad-hq/restcountries-go/pkg/exporters"
	"github.com/samvad-hq/restcountries-go/pkg/httpclient"
	"github.com/samvad-hq/restcountries-go/pkg/restcountries"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/alpha/col":
			fmt.Fprint(w, `{"name":"Colombia","alpha3Code":"COL"}`)
		case "/region/europe":
			fmt.Fprint(w, `[{"name":"Estonia","alpha3Code":"EST"},{"name":"Norway","alpha3Code":"NOR"}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"status":404,"message":"Not Found"}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	return &config.Config{
		BaseURL:                baseURL,
		Timeout:                2 * time.Second,
		JournalType:            "bbolt",
		JournalPath:            filepath.Join(t.TempDir(), "journal.db"),
		JournalTTL:             time.Hour,
		JournalCleanupInterval: time.Hour,
	}
}

func TestLookupRunJournalsSuccess(t *testing.T) {
	srv := newAPIServer(t)
	l, err := NewLookup(context.Background(), testConfig(t, srv.URL), nil)
	if err != nil {
		t.Fatalf("NewLookup: %v", err)
	}
	defer l.Close()

	req, err := restcountries.RegionRequest(restcountries.RegionEurope)
	if err != nil {
		t.Fatalf("RegionRequest: %v", err)
	}
	body, err := l.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(body) == 0 {
		t.Fatalf("expected body")
	}

	entries, err := l.History(10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 journal entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Operation != "region" || e.Status != 200 || e.Results != 2 || e.URL != srv.URL+"/region/europe" {
		t.Fatalf("unexpected entry %+v", e)
	}
}

func TestLookupRunJournalsStatusError(t *testing.T) {
	srv := newAPIServer(t)
	l, err := NewLookup(context.Background(), testConfig(t, srv.URL), nil)
	if err != nil {
		t.Fatalf("NewLookup: %v", err)
	}
	defer l.Close()

	req, _ := restcountries.NameRequest("atlantis", false)
	if _, err := l.Run(context.Background(), req); httpclient.StatusCode(err) != http.StatusNotFound {
		t.Fatalf("expected 404 status error, got %v", err)
	}

	entries, err := l.History(0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(entries) != 1 || entries[0].Status != http.StatusNotFound || entries[0].Error == "" {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

func TestLookupRunExportsEachCountry(t *testing.T) {
	api := newAPIServer(t)

	var mu sync.Mutex
	var got []exporters.Event
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var evt exporters.Event
		if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
			t.Errorf("decode event: %v", err)
		}
		mu.Lock()
		got = append(got, evt)
		mu.Unlock()
	}))
	defer sink.Close()

	path := filepath.Join(t.TempDir(), "exporters.yaml")
	raw := fmt.Sprintf("exporters:\n  - id: hook\n    type: http\n    http:\n      url: %s\n", sink.URL)
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write exporters file: %v", err)
	}

	cfg := testConfig(t, api.URL)
	cfg.ExportersFile = path
	l, err := NewLookup(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewLookup: %v", err)
	}
	defer l.Close()

	req, _ := restcountries.RegionRequest(restcountries.RegionEurope)
	if _, err := l.Run(context.Background(), req); err != nil {
		t.Fatalf("Run: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 || got[0].Country.Alpha3Code != "EST" || got[1].Country.Alpha3Code != "NOR" {
		t.Fatalf("unexpected exported events %+v", got)
	}
	if got[0].Operation != "region" {
		t.Fatalf("unexpected operation %q", got[0].Operation)
	}
}

func TestLookupRunReportsExportFailure(t *testing.T) {
	api := newAPIServer(t)
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer sink.Close()

	path := filepath.Join(t.TempDir(), "exporters.json")
	raw := fmt.Sprintf(`{"exporters":[{"id":"hook","type":"http","http":{"url":%q}}]}`, sink.URL)
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write exporters file: %v", err)
	}

	cfg := testConfig(t, api.URL)
	cfg.ExportersFile = path
	l, err := NewLookup(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewLookup: %v", err)
	}
	defer l.Close()

	req, _ := restcountries.CodeRequest("COL")
	body, err := l.Run(context.Background(), req)
	if !errors.Is(err, ErrExport) {
		t.Fatalf("expected ErrExport, got %v", err)
	}
	if len(body) == 0 {
		t.Fatalf("body should still be returned on export failure")
	}
}

func TestNewLookupRejectsBadJournalType(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1")
	cfg.JournalType = "redis"
	if _, err := NewLookup(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for unsupported journal type")
	}
}

func TestDecodeCountries(t *testing.T) {
	single, err := decodeCountries([]byte(` {"alpha3Code":"COL"}`))
	if err != nil || len(single) != 1 || single[0].Alpha3Code != "COL" {
		t.Fatalf("single object: %v %+v", err, single)
	}
	many, err := decodeCountries([]byte(`[{"alpha3Code":"EST"},{"alpha3Code":"NOR"}]`))
	if err != nil || len(many) != 2 {
		t.Fatalf("array: %v %+v", err, many)
	}
	if _, err := decodeCountries([]byte(`"nope"`)); err == nil {
		t.Fatalf("expected decode error")
	}
}
