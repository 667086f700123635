package events

import (
	"context"
	"log/slog"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
)

// Collector remembers the aggregates saved during a unit of work. It is not
// safe for concurrent use; each unit of work owns one.
type Collector struct {
	tracked []kernel.EventSource
}

// Track registers an aggregate if it records events.
func (c *Collector) Track(aggregate any) {
	if src, ok := aggregate.(kernel.EventSource); ok {
		c.tracked = append(c.tracked, src)
	}
}

// Reset forgets the tracked aggregates and drops their pending events.
func (c *Collector) Reset() {
	for _, src := range c.tracked {
		_ = src.PullEvents()
	}
	c.tracked = nil
}

// Flush publishes the pending events of every tracked aggregate. The data is
// already committed when Flush runs, so a publishing failure is logged and
// not returned.
func (c *Collector) Flush(ctx context.Context, publisher ports.EventPublisher, logger *slog.Logger) {
	var pending []kernel.DomainEvent
	for _, src := range c.tracked {
		pending = append(pending, src.PullEvents()...)
	}
	c.tracked = nil

	if len(pending) == 0 || publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, pending...); err != nil && logger != nil {
		logger.ErrorContext(ctx, "failed to publish domain events",
			slog.Int("count", len(pending)),
			slog.String("error", err.Error()),
		)
	}
}
