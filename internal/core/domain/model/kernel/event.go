package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate. Events are collected by the
// unit of work from tracked aggregates and handed to an event publisher once the
// transaction has committed.
type DomainEvent interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	PullEvents() []DomainEvent
}
