package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
)

// OutboxRepository defines the persistence contract for the transactional
// outbox. Commands append events in the same transaction as their state
// changes; the relay job drains unpublished rows and marks them published
// after broker confirmation.
type OutboxRepository interface {
	// Add appends an event to the outbox.
	Add(ctx context.Context, event IntegrationEvent) error

	// GetUnpublished retrieves up to limit unpublished events, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]IntegrationEvent, error)

	// MarkPublished records that an event has been delivered to the broker.
	MarkPublished(ctx context.Context, id kernel.UUID) error
}
