package driverrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("driver", aggregate.ID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update is a compare-and-swap on the version column. Under READ COMMITTED a
// concurrent writer blocks on the row lock and then matches zero rows.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":     dto.Status,
			"experience": dto.Experience,
			"version":    dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&DriverDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("driver", aggregate.ID())
		}
		return errs.NewConcurrentModificationError("driver", aggregate.ID(), aggregate.Version())
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByStatuses returns drivers in any of statuses, earliest registered first.
func (r *GormDriverRepository) FindByStatuses(
	ctx context.Context,
	statuses []driver.Status,
	limit int,
) ([]*driver.Driver, error) {
	if len(statuses) == 0 {
		return []*driver.Driver{}, nil
	}

	codes := make(pq.Int64Array, 0, len(statuses))
	for _, s := range statuses {
		codes = append(codes, int64(s))
	}

	return r.find(r.db.WithContext(ctx).Where("status = ANY(?::int[])", codes), limit)
}

func (r *GormDriverRepository) FindUnproposedCandidates(ctx context.Context, limit int) ([]*driver.Driver, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", int(driver.Candidate)).
		Where("NOT EXISTS (SELECT 1 FROM solutions WHERE solutions.driver_id = drivers.id)")
	return r.find(query, limit)
}

func (r *GormDriverRepository) find(query *gorm.DB, limit int) ([]*driver.Driver, error) {
	query = query.Order("registered_at").Order("id")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []DriverDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}
