package customerrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts with ON CONFLICT DO NOTHING so that a clash leaves the
// transaction usable for finding out which contact was taken.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.conflict(ctx, dto)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCustomerRepository) conflict(ctx context.Context, dto CustomerDTO) error {
	checks := []struct {
		column string
		value  any
		err    error
	}{
		{"email", dto.Email, customer.NewDuplicateCustomerError("email", dto.Email)},
		{"phone", dto.Phone, customer.NewDuplicateCustomerError("phone", dto.Phone)},
	}
	for _, check := range checks {
		var count int64
		err := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where(check.column+" = ?", check.value).Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return check.err
		}
	}
	return errs.NewObjectAlreadyExistsError("customer", dto.ID.String())
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "customer", id.String(), "id = ?", id.Bytes())
}

func (r *GormCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	return r.first(ctx, "customer email", email, "email = ?", email)
}

func (r *GormCustomerRepository) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	return r.first(ctx, "customer phone", phone, "phone = ?", phone)
}

func (r *GormCustomerRepository) first(
	ctx context.Context,
	param string,
	key any,
	query string,
	args ...any,
) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}
	return toDomain(dto)
}
