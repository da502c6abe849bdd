package exporters

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Fanout dispatches events to all configured exporters.
type Fanout struct {
	exporters []Exporter
}

// NewFanout builds a dispatcher that fans out events across exporters.
func NewFanout(exps []Exporter) *Fanout {
	cp := make([]Exporter, 0, len(exps))
	for _, e := range exps {
		if e == nil {
			continue
		}
		cp = append(cp, e)
	}
	return &Fanout{exporters: cp}
}

// Export forwards the event to every registered exporter.
// It returns the number of exporters that successfully handled the event.
func (f *Fanout) Export(ctx context.Context, evt Event) (int, error) {
	if f == nil || len(f.exporters) == 0 {
		return 0, nil
	}

	var errs []error
	successful := 0
	for _, e := range f.exporters {
		if err := e.Export(ctx, evt); err != nil {
			errs = append(errs, fmt.Errorf("%s exporter[%s]: %w", e.Type(), e.ID(), err))
		} else {
			successful++
		}
	}
	return successful, errors.Join(errs...)
}

// Size returns the number of active exporters.
func (f *Fanout) Size() int {
	if f == nil {
		return 0
	}
	return len(f.exporters)
}

// Close releases exporters that hold connections.
func (f *Fanout) Close() error {
	if f == nil {
		return nil
	}
	var errs []error
	for _, e := range f.exporters {
		if c, ok := e.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close exporter[%s]: %w", e.ID(), err))
			}
		}
	}
	return errors.Join(errs...)
}
