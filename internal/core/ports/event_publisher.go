package ports

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
)

// IntegrationEvent is a cross-domain notification recorded by a command in
// the transactional outbox and later relayed to the message broker. The
// payload is an opaque JSON document owned by the producing command.
type IntegrationEvent struct {
	ID         kernel.UUID
	EventType  string
	Payload    []byte
	OccurredAt time.Time
}

// NewIntegrationEvent creates an event with a fresh identifier and the
// current timestamp.
func NewIntegrationEvent(eventType string, payload []byte) IntegrationEvent {
	return IntegrationEvent{
		ID:         kernel.NewUUID(),
		EventType:  eventType,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

// EventPublisher delivers integration events to the message broker.
// Implementations must confirm delivery before returning nil.
type EventPublisher interface {
	Publish(event IntegrationEvent) error
}
