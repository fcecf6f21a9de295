// Package outboxrepo provides persistence for the transactional outbox.
// Commands append events in the same transaction as their state changes;
// the relay job drains unpublished rows to the message broker.
package outboxrepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxEventDTO represents one stored integration event.
// PublishedAt is NULL until the relay confirms broker delivery.
type OutboxEventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventType   string
	Payload     []byte
	OccurredAt  time.Time  `gorm:"index"`
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox events.
func (OutboxEventDTO) TableName() string {
	return "outbox_events"
}

// fromDomain converts an integration event to its database representation.
func fromDomain(event ports.IntegrationEvent) OutboxEventDTO {
	return OutboxEventDTO{
		ID:         event.ID.Bytes(),
		EventType:  event.EventType,
		Payload:    event.Payload,
		OccurredAt: event.OccurredAt,
	}
}

// toDomain converts a database DTO to an integration event.
func toDomain(dto OutboxEventDTO) (ports.IntegrationEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.IntegrationEvent{}, err
	}

	return ports.IntegrationEvent{
		ID:         id,
		EventType:  dto.EventType,
		Payload:    dto.Payload,
		OccurredAt: dto.OccurredAt,
	}, nil
}
