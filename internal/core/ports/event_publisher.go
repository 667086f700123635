package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// EventPublisher delivers committed domain events to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
