package tablegrouprepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTableGroupRepository implements TableGroupRepository using GORM.
type GormTableGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTableGroupRepository creates a new GORM table group repository.
func NewGormTableGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormTableGroupRepository {
	return &GormTableGroupRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new table group to the database.
func (r *GormTableGroupRepository) Add(ctx context.Context, aggregate *table.TableGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a table group by ID.
func (r *GormTableGroupRepository) Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tableGroup", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
