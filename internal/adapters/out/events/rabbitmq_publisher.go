package events

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher sends events as persistent messages to a durable queue
// through the default exchange.
type RabbitMQPublisher struct {
	conn  *amqp.Connection
	ch    Channel
	queue string
}

// DialRabbitMQ connects, opens a channel and declares the queue.
func DialRabbitMQ(url, queue string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}
	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	p := NewRabbitMQPublisherWithChannel(ch, queue)
	p.conn = conn
	return p, nil
}

func NewRabbitMQPublisherWithChannel(ch Channel, queue string) *RabbitMQPublisher {
	return &RabbitMQPublisher{ch: ch, queue: queue}
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, e := range events {
		body, err := encode(e)
		if err != nil {
			return err
		}
		err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    kernel.NewUUID().String(),
			Headers:      amqp.Table{"aggregate_id": e.AggregateID()},
			Type:         e.EventName(),
			Timestamp:    e.OccurredAt(),
			Body:         body,
		})
		if err != nil {
			return fmt.Errorf("publish %s: %w", e.EventName(), err)
		}
	}
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
