package outboxrepo

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"

	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add appends an event to the outbox.
func (r *GormOutboxRepository) Add(ctx context.Context, event ports.IntegrationEvent) error {
	if err := event.ID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetUnpublished retrieves up to limit unpublished events, oldest first.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.IntegrationEvent, error) {
	var dtos []OutboxEventDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]ports.IntegrationEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		events = append(events, event)
	}

	return events, nil
}

// MarkPublished records that an event has been delivered to the broker.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&OutboxEventDTO{}).
		Where("id = ?", id.Bytes()).
		Update("published_at", &now)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
