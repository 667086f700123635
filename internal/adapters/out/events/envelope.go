// Package events publishes committed domain events to a broker: Kafka, RabbitMQ
// or the structured log. Collector gathers events from the aggregates a unit of
// work saved and flushes them after commit.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
)

// Envelope is the wire format shared by every publisher.
type Envelope struct {
	Name        string          `json:"name"`
	AggregateID string          `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

func encode(e kernel.DomainEvent) ([]byte, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", e.EventName(), err)
	}
	body, err := json.Marshal(Envelope{
		Name:        e.EventName(),
		AggregateID: e.AggregateID(),
		OccurredAt:  e.OccurredAt().UTC(),
		Payload:     payload,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal %s envelope: %w", e.EventName(), err)
	}
	return body, nil
}
