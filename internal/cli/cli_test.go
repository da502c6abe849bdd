package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/samvad-hq/restcountries-go/internal/config"
	"github.com/samvad-hq/restcountries-go/internal/logger"
	"github.com/samvad-hq/restcountries-go/internal/storage"
	"github.com/samvad-hq/restcountries-go/pkg/restcountries"
)

type fakeRunner struct {
	cfg     *config.Config
	reqs    []restcountries.Request
	body    []byte
	err     error
	entries []storage.Entry
	limit   int
	closed  bool
}

func (f *fakeRunner) Run(_ context.Context, req restcountries.Request) ([]byte, error) {
	f.reqs = append(f.reqs, req)
	return f.body, f.err
}

func (f *fakeRunner) History(limit int) ([]storage.Entry, error) {
	f.limit = limit
	return f.entries, nil
}

func (f *fakeRunner) Close() error {
	f.closed = true
	return nil
}

func newTestCLI(runner *fakeRunner) *CLI {
	c := New(&config.Config{BaseURL: "https://restcountries.eu/rest/v2"}, logger.NopLogger{})
	c.newRunner = func(_ context.Context, cfg *config.Config, _ logger.Logger) (Runner, error) {
		runner.cfg = cfg
		return runner, nil
	}
	return c
}

func run(t *testing.T, runner *fakeRunner, args ...string) (string, error) {
	t.Helper()
	c := newTestCLI(runner)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSubcommandsBuildRequests(t *testing.T) {
	tests := []struct {
		args  []string
		op    restcountries.Operation
		path  string
		query url.Values
	}{
		{[]string{"all", "--fields", "name,capital"}, restcountries.OpAll, "/all", url.Values{"fields": {"name;capital"}}},
		{[]string{"name", "United"}, restcountries.OpName, "/name/united", url.Values{}},
		{[]string{"name", "Colombia", "--full-text"}, restcountries.OpName, "/name/colombia", url.Values{"fullText": {"true"}}},
		{[]string{"code", "CO"}, restcountries.OpCode, "/alpha/co", url.Values{}},
		{[]string{"codes", "CO", "NO", "EE"}, restcountries.OpCodes, "/alpha", url.Values{"codes": {"co;no;ee"}}},
		{[]string{"codes", "CO;NO;EE"}, restcountries.OpCodes, "/alpha", url.Values{"codes": {"co;no;ee"}}},
		{[]string{"currency", "COP"}, restcountries.OpCurrency, "/currency/cop", url.Values{}},
		{[]string{"lang", "ES"}, restcountries.OpLanguage, "/lang/es", url.Values{}},
		{[]string{"capital", "Tallinn"}, restcountries.OpCapital, "/capital/tallinn", url.Values{}},
		{[]string{"callingcode", "372"}, restcountries.OpCallingCode, "/callingcode/372", url.Values{}},
		{[]string{"region", "Europe"}, restcountries.OpRegion, "/region/europe", url.Values{}},
		{[]string{"bloc", "EU", "--fields", "name", "--fields", "alpha3Code"}, restcountries.OpRegionalBloc, "/regionalbloc/eu", url.Values{"fields": {"name;alpha3code"}}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			runner := &fakeRunner{body: []byte(`[]`)}
			if _, err := run(t, runner, tt.args...); err != nil {
				t.Fatalf("execute: %v", err)
			}
			if len(runner.reqs) != 1 {
				t.Fatalf("expected one request, got %d", len(runner.reqs))
			}
			req := runner.reqs[0]
			if req.Operation != tt.op || req.Path != tt.path {
				t.Fatalf("got %s %s, want %s %s", req.Operation, req.Path, tt.op, tt.path)
			}
			if req.Query.Encode() != tt.query.Encode() {
				t.Fatalf("query = %q, want %q", req.Query.Encode(), tt.query.Encode())
			}
			if !runner.closed {
				t.Fatalf("runner was not closed")
			}
		})
	}
}

func TestInvalidInputNeverBuildsRunner(t *testing.T) {
	c := newTestCLI(&fakeRunner{})
	built := false
	c.newRunner = func(context.Context, *config.Config, logger.Logger) (Runner, error) {
		built = true
		return &fakeRunner{}, nil
	}
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"codes", " ; "})

	err := root.Execute()
	if !errors.Is(err, restcountries.ErrUnsupportedInput) {
		t.Fatalf("expected ErrUnsupportedInput, got %v", err)
	}
	if built {
		t.Fatalf("runner should not be built for invalid input")
	}
}

func TestPickAndCompactOutput(t *testing.T) {
	runner := &fakeRunner{body: []byte(`[{"name":"Estonia"},{"name":"Norway"}]`)}
	out, err := run(t, runner, "region", "europe", "--pick", "#.name", "--compact")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "[\"Estonia\",\"Norway\"]\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestOverridesApplyToConfigCopy(t *testing.T) {
	runner := &fakeRunner{body: []byte(`[]`)}
	c := newTestCLI(runner)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"all", "--base-url", "http://localhost:9000", "--export", "exporters.yaml"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if runner.cfg.BaseURL != "http://localhost:9000" || runner.cfg.ExportersFile != "exporters.yaml" {
		t.Fatalf("overrides not applied: %+v", runner.cfg)
	}
	if c.cfg.BaseURL != "https://restcountries.eu/rest/v2" {
		t.Fatalf("loaded config mutated: %s", c.cfg.BaseURL)
	}
}

func TestRunErrorStillPrintsBody(t *testing.T) {
	runner := &fakeRunner{body: []byte(`{"name":"Colombia"}`), err: errors.New("export failed")}
	out, err := run(t, runner, "code", "co", "--compact")
	if err == nil {
		t.Fatalf("expected error")
	}
	if out != "{\"name\":\"Colombia\"}\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestHistoryCommand(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	runner := &fakeRunner{entries: []storage.Entry{{ID: "1", Operation: "code", URL: "u", Status: 200, Results: 1, At: at}}}
	out, err := run(t, runner, "history", "--limit", "5", "--pick", "0.operation")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if runner.limit != 5 {
		t.Fatalf("limit = %d", runner.limit)
	}
	if strings.TrimSpace(out) != `"code"` {
		t.Fatalf("output = %q", out)
	}
}

func TestHistoryEmptyJournal(t *testing.T) {
	out, err := run(t, &fakeRunner{}, "history", "--compact")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "[]\n" {
		t.Fatalf("output = %q", out)
	}
}
