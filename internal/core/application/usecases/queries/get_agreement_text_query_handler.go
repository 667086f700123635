package queries

import (
	"context"

	"freight/internal/core/ports"
)

// GetAgreementTextQueryHandler renders the agreement the customer signs for an order.
type GetAgreementTextQueryHandler struct {
	orders    ports.OrderRepository
	customers ports.CustomerRepository
}

func NewGetAgreementTextQueryHandler(
	orders ports.OrderRepository,
	customers ports.CustomerRepository,
) GetAgreementTextQueryHandler {
	return GetAgreementTextQueryHandler{orders: orders, customers: customers}
}

func (h GetAgreementTextQueryHandler) Handle(ctx context.Context, query OrderQuery) (string, error) {
	o, err := loadOrder(ctx, h.orders, query)
	if err != nil {
		return "", err
	}

	c, err := h.customers.Get(ctx, query.CustomerID())
	if err != nil {
		return "", err
	}

	return o.AgreementText(c.Person()), nil
}
