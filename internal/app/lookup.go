package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samvad-hq/restcountries-go/internal/config"
	"github.com/samvad-hq/restcountries-go/internal/logger"
	"github.com/samvad-hq/restcountries-go/internal/output"
	"github.com/samvad-hq/restcountries-go/internal/storage"
	"github.com/samvad-hq/restcountries-go/pkg/exporters"
	"github.com/samvad-hq/restcountries-go/pkg/httpclient"
	"github.com/samvad-hq/restcountries-go/pkg/restcountries"
)

// ErrExport marks a lookup that succeeded but could not be delivered to every exporter.
var ErrExport = errors.New("export failed")

// Lookup is the CLI runtime. It issues requests through the restcountries client,
// journals each lookup and forwards returned countries to the configured exporters.
type Lookup struct {
	cfg     *config.Config
	client  *restcountries.Client
	journal storage.Journal
	fanout  *exporters.Fanout
	log     logger.Logger
	now     func() time.Time
}

// NewLookup builds a lookup runtime from config.
func NewLookup(ctx context.Context, cfg *config.Config, log logger.Logger) (*Lookup, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := restcountries.New(cfg.BaseURL,
		restcountries.WithTimeout(cfg.Timeout),
		restcountries.WithUserAgent(cfg.UserAgent),
		restcountries.WithLogger(log),
	)

	fanout, err := buildFanout(ctx, cfg.ExportersFile, log)
	if err != nil {
		return nil, err
	}

	journal, err := storage.NewJournal(cfg.JournalType, cfg.JournalPath, storage.Options{
		EntryTTL:        cfg.JournalTTL,
		CleanupInterval: cfg.JournalCleanupInterval,
	})
	if err != nil {
		_ = fanout.Close()
		return nil, fmt.Errorf("init journal: %w", err)
	}
	log.DebugObj("journal initialized", "journal_config", map[string]any{
		"type":                     cfg.JournalType,
		"path":                     cfg.JournalPath,
		"entry_ttl_seconds":        int(cfg.JournalTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.JournalCleanupInterval.Seconds()),
	})

	return &Lookup{
		cfg:     cfg,
		client:  client,
		journal: journal,
		fanout:  fanout,
		log:     log,
		now:     time.Now,
	}, nil
}

// buildFanout loads the exporters file when one is configured.
func buildFanout(ctx context.Context, path string, log logger.Logger) (*exporters.Fanout, error) {
	if path == "" {
		return exporters.NewFanout(nil), nil
	}

	reg, err := exporters.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("load exporters registry: %w", err)
	}
	enabled := reg.Enabled()
	exps, err := exporters.BuildAll(ctx, exporters.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build exporters: %w", err)
	}

	summaries := make([]map[string]string, 0, len(enabled))
	for _, c := range enabled {
		summaries = append(summaries, map[string]string{"id": c.ID, "type": c.Type})
	}
	log.InfoObj("exporters registry loaded", "exporters_meta", map[string]any{
		"count":     len(summaries),
		"exporters": summaries,
	})
	return exporters.NewFanout(exps), nil
}

// Client exposes the underlying API client.
func (l *Lookup) Client() *restcountries.Client { return l.client }

// Run issues req and returns the raw response body. Every call is journaled. When
// exporters are configured each returned country is exported; delivery failures
// return the body together with an error wrapping ErrExport.
func (l *Lookup) Run(ctx context.Context, req restcountries.Request) ([]byte, error) {
	if l == nil || l.client == nil {
		return nil, fmt.Errorf("lookup is not initialized")
	}

	target := req.URL(l.client.BaseURL())
	entry := storage.Entry{
		Operation: string(req.Operation),
		URL:       target,
		At:        l.now().UTC(),
	}

	body, err := l.client.Do(ctx, req)
	if err != nil {
		entry.Status = httpclient.StatusCode(err)
		entry.Error = err.Error()
		l.record(entry)
		return nil, err
	}

	entry.Status = 200
	entry.Results = output.Count(body)
	l.record(entry)

	if l.fanout.Size() == 0 {
		return body, nil
	}
	if err := l.export(ctx, req.Operation, target, body); err != nil {
		return body, err
	}
	return body, nil
}

func (l *Lookup) export(ctx context.Context, op restcountries.Operation, target string, body []byte) error {
	countries, err := decodeCountries(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}

	var errs []error
	delivered := 0
	for _, c := range countries {
		n, err := l.fanout.Export(ctx, exporters.NewEvent(string(op), target, c))
		delivered += n
		if err != nil {
			errs = append(errs, err)
		}
	}
	l.log.InfoObj("lookup exported", "export_meta", map[string]any{
		"operation": op,
		"countries": len(countries),
		"delivered": delivered,
		"failures":  len(errs),
	})
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrExport, errors.Join(errs...))
	}
	return nil
}

// decodeCountries accepts both the array responses and the single object /alpha/{code} returns.
func decodeCountries(body []byte) ([]restcountries.Country, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var c restcountries.Country
		if err := json.Unmarshal(trimmed, &c); err != nil {
			return nil, fmt.Errorf("decode country: %w", err)
		}
		return []restcountries.Country{c}, nil
	}
	var cs []restcountries.Country
	if err := json.Unmarshal(trimmed, &cs); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}
	return cs, nil
}

func (l *Lookup) record(e storage.Entry) {
	if err := l.journal.Record(e); err != nil {
		l.log.WarnObj("journal record failed", "error", err.Error())
	}
}

// History returns the most recent journaled lookups, newest first.
func (l *Lookup) History(limit int) ([]storage.Entry, error) {
	if l == nil || l.journal == nil {
		return nil, fmt.Errorf("lookup is not initialized")
	}
	return l.journal.Recent(limit)
}

// Close releases exporters and the journal.
func (l *Lookup) Close() error {
	if l == nil {
		return nil
	}
	var errs []error
	if err := l.fanout.Close(); err != nil {
		errs = append(errs, err)
	}
	if l.journal != nil {
		if err := l.journal.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close journal: %w", err))
		}
	}
	return errors.Join(errs...)
}
