package exporters

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
)

// topicPublisher is the part of a Pub/Sub topic the exporter needs.
type topicPublisher interface {
	publish(ctx context.Context, data []byte, attrs map[string]string) (string, error)
}

type gcpTopic struct {
	topic *pubsub.Topic
}

func (g gcpTopic) publish(ctx context.Context, data []byte, attrs map[string]string) (string, error) {
	return g.topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: attrs}).Get(ctx)
}

// pubsubExporter implements the Exporter interface for Google Cloud Pub/Sub.
type pubsubExporter struct {
	id     string
	topic  topicPublisher
	client *pubsub.Client
	stop   func()
	log    Logger
}

func newPubSubExporter(ctx context.Context, cfg ExporterConfig, log Logger) (Exporter, error) {
	if cfg.PubSub == nil {
		return nil, fmt.Errorf("exporter %q missing pubsub configuration", cfg.ID)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := pubsub.NewClient(ctx, cfg.PubSub.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}
	topic := client.Topic(cfg.PubSub.Topic)

	return &pubsubExporter{
		id:     cfg.ID,
		topic:  gcpTopic{topic: topic},
		client: client,
		stop:   topic.Stop,
		log:    ensureLogger(log),
	}, nil
}

func (p *pubsubExporter) ID() string   { return p.id }
func (p *pubsubExporter) Type() string { return TypePubSub }

// Export publishes the event and waits for the server acknowledgement.
func (p *pubsubExporter) Export(ctx context.Context, evt Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	id, err := p.topic.publish(ctx, payload, evt.attributes())
	if err != nil {
		p.log.ErrorObj("pubsub exporter publish failed", "exporter_pubsub_error", map[string]any{
			"exporter_id": p.id,
			"error":       err.Error(),
		})
		return fmt.Errorf("publish to pubsub: %w", err)
	}
	p.log.DebugObj("pubsub exporter delivered event", "exporter_pubsub_delivery", map[string]any{
		"exporter_id": p.id,
		"message_id":  id,
	})
	return nil
}

// Close flushes pending messages and closes the client.
func (p *pubsubExporter) Close() error {
	if p.stop != nil {
		p.stop()
	}
	if p.client == nil {
		return nil
	}
	return p.client.Close()
}
