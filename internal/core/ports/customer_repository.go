package ports

import (
	"context"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer accounts.
type CustomerRepository interface {
	// Add fails with an error wrapping customer.ErrDuplicateCustomer when the
	// email or the phone is already registered.
	Add(ctx context.Context, aggregate *customer.Customer) error

	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail expects a normalized email, see customer.NormalizeEmail.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// GetByPhone expects a normalized phone, see customer.NormalizePhone.
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)
}
