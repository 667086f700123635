package solutionrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/solution"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSolutionRepository implements ports.SolutionRepository using GORM.
// Solutions record no events, so nothing is tracked.
type GormSolutionRepository struct {
	db *gorm.DB
}

func NewGormSolutionRepository(db *gorm.DB) *GormSolutionRepository {
	return &GormSolutionRepository{db: db}
}

func (r *GormSolutionRepository) AddAll(ctx context.Context, solutions []*solution.Solution) error {
	if len(solutions) == 0 {
		return nil
	}

	dtos := make([]SolutionDTO, 0, len(solutions))
	for _, s := range solutions {
		if err := s.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(s))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("solution", "batch", err)
		}
		return err
	}
	return nil
}

func (r *GormSolutionRepository) Get(ctx context.Context, id kernel.UUID) (*solution.Solution, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SolutionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("solution", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormSolutionRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*solution.Solution, error) {
	var dtos []SolutionDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("cost").
		Order("created_at").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	result := make([]*solution.Solution, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func (r *GormSolutionRepository) DeleteAllByOrder(ctx context.Context, orderID kernel.UUID) error {
	return r.db.WithContext(ctx).Where("order_id = ?", orderID.Bytes()).Delete(&SolutionDTO{}).Error
}

func (r *GormSolutionRepository) CountByDriver(ctx context.Context, driverID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&SolutionDTO{}).Where("driver_id = ?", driverID.Bytes()).Count(&count).Error
	return count, err
}
