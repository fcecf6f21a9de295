// Package rabbitmq delivers integration events to a RabbitMQ topic exchange.
// The outbox relay is the only producer; publisher confirms guarantee an event
// is not marked published until the broker has accepted it.
package rabbitmq

import (
	"context"
	"errors"
	"sync"
	"time"

	"kitchenpos/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeName is the topic exchange integration events are published to.
// Routing keys are the event types ("order.created", "tables.grouped", ...),
// so consumers can bind with patterns like "order.*".
const ExchangeName = "kitchenpos.events"

const publishTimeout = 5 * time.Second

// Publisher implements EventPublisher over a confirmed AMQP channel.
// Publish is serialized with a mutex so confirmations are matched to the
// publishing they belong to.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel

	acks <-chan amqp.Confirmation
	mu   sync.Mutex
}

// NewPublisher connects to RabbitMQ, declares the topic exchange and enables
// publisher confirms. The caller owns the returned publisher and must Close it.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	return &Publisher{conn: conn, ch: ch, acks: acks}, nil
}

// Publish sends the event to the exchange with its type as the routing key
// and waits for the broker's confirmation.
func (p *Publisher) Publish(event ports.IntegrationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err := p.ch.PublishWithContext(
		ctx,
		ExchangeName,
		event.EventType,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			MessageId:    event.ID.String(),
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    event.OccurredAt,
			Body:         event.Payload,
		},
	)
	if err != nil {
		return err
	}

	select {
	case conf := <-p.acks:
		if conf.Ack {
			return nil
		}
		return errors.New("publish NACK from broker")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ping reports whether the underlying connection is still open.
func (p *Publisher) Ping() error {
	if p.conn == nil || p.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
