package queries

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// LoginQueryHandler checks customer credentials.
//
// Example:
//
//	q, _ := NewLoginQuery("anna@example.com", "secret1")
//	resp, err := handler.Handle(ctx, q)
//	if errors.Is(err, ErrWrongCredentials) {
//	    return echo.ErrUnauthorized
//	}
type LoginQueryHandler struct {
	customers ports.CustomerRepository
	hasher    ports.PasswordHasher
}

func NewLoginQueryHandler(customers ports.CustomerRepository, hasher ports.PasswordHasher) LoginQueryHandler {
	return LoginQueryHandler{customers: customers, hasher: hasher}
}

func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	var (
		c   *customer.Customer
		err error
	)
	if query.ByEmail() {
		c, err = h.customers.GetByEmail(ctx, query.Login())
	} else {
		c, err = h.customers.GetByPhone(ctx, query.Login())
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginQueryResponse{}, ErrWrongCredentials
	}
	if err != nil {
		return LoginQueryResponse{}, err
	}

	ok, err := h.hasher.Verify(ctx, query.Password(), c.PasswordHash())
	if err != nil {
		return LoginQueryResponse{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return LoginQueryResponse{}, ErrWrongCredentials
	}

	return LoginQueryResponse{
		CustomerID: c.ID(),
		FullName:   c.Person().FullName(),
		Email:      c.Email(),
	}, nil
}
