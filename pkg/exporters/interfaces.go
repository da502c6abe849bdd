package exporters

import "context"

// Exporter sends lookup results to a downstream sink (HTTP, SQS, SNS, Pub/Sub).
type Exporter interface {
	ID() string
	Type() string
	Export(ctx context.Context, evt Event) error
}
