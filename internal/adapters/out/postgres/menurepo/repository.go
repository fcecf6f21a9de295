package menurepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu with its product lines to the database.
// GORM persists the owned menu product rows in the same insert.
func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
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

// Get retrieves a menu by ID including its product lines.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	err := r.db.WithContext(ctx).Preload("Products").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountByIDs returns how many of the given identifiers resolve to stored
// menus. Duplicates in the input are counted once.
func (r *GormMenuRepository) CountByIDs(ctx context.Context, ids []kernel.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return 0, err
		}
		raw = append(raw, id.Bytes())
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&MenuDTO{}).
		Where("id IN ?", raw).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
