package order

import (
	"time"

	"freight/internal/core/domain/model/kernel"
)

// StatusChangedEventName is the routing name of StatusChanged on every broker.
const StatusChangedEventName = "order.status_changed"

// StatusChanged is recorded by every successful lifecycle transition and
// published by the unit of work after the transaction commits.
type StatusChanged struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Event      Event     `json:"event"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	At         time.Time `json:"occurred_at"`
}

func (e StatusChanged) EventName() string {
	return StatusChangedEventName
}

func (e StatusChanged) AggregateID() string {
	return e.OrderID
}

func (e StatusChanged) OccurredAt() time.Time {
	return e.At
}

var _ kernel.DomainEvent = StatusChanged{}
