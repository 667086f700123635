package events

import (
	"context"
	"log/slog"

	"freight/internal/core/domain/model/kernel"
)

// LogPublisher writes every event to the structured log. It is the default
// when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, e := range events {
		body, err := encode(e)
		if err != nil {
			return err
		}
		p.logger.InfoContext(ctx, "domain event",
			slog.String("name", e.EventName()),
			slog.String("aggregate_id", e.AggregateID()),
			slog.String("body", string(body)),
		)
	}
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
