package tablerepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderTableRepository implements OrderTableRepository using GORM.
//
// When forUpdate is set the read methods lock the selected rows for the
// duration of the surrounding transaction. The unit of work enables it for
// transaction-bound repositories, which keeps a concurrent order creation
// from racing past the order-activity check during grouping.
type GormOrderTableRepository struct {
	db        *gorm.DB
	tracker   aggregateTracker
	forUpdate bool
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderTableRepository creates a new GORM order table repository.
func NewGormOrderTableRepository(db *gorm.DB, tracker aggregateTracker, forUpdate bool) *GormOrderTableRepository {
	return &GormOrderTableRepository{
		db:        db,
		tracker:   tracker,
		forUpdate: forUpdate,
	}
}

func (r *GormOrderTableRepository) reader(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.forUpdate {
		db = db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}
	return db
}

// Add saves a new order table to the database.
func (r *GormOrderTableRepository) Add(ctx context.Context, aggregate *table.OrderTable) error {
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

// Update saves an existing order table to the database.
// A full-row write: the empty flag and the group reference must be able to
// change to their zero values.
func (r *GormOrderTableRepository) Update(ctx context.Context, aggregate *table.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderTableDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"number_of_guests": dto.NumberOfGuests,
			"empty":            dto.Empty,
			"table_group_id":   dto.TableGroupID,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order table by ID.
func (r *GormOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderTableDTO
	if err := r.reader(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderTable", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the tables whose identifiers resolve, sorted by ID.
// Unknown identifiers are skipped; callers compare counts.
func (r *GormOrderTableRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.OrderTable, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []OrderTableDTO
	if err := r.reader(ctx).Order("id").Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByGroupID retrieves all tables referencing a table group, sorted by ID.
func (r *GormOrderTableRepository) GetByGroupID(
	ctx context.Context,
	tableGroupID kernel.UUID,
) ([]*table.OrderTable, error) {
	if err := tableGroupID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderTableDTO
	err := r.reader(ctx).Order("id").Find(&dtos, "table_group_id = ?", tableGroupID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderTableDTO) ([]*table.OrderTable, error) {
	tables := make([]*table.OrderTable, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}
