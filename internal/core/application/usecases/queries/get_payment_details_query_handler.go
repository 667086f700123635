package queries

import (
	"context"

	"freight/internal/core/ports"
)

// GetPaymentDetailsQueryHandler describes what the customer pays for an order.
// It fails with errs.ErrValueIsRequired until a solution is confirmed.
type GetPaymentDetailsQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetPaymentDetailsQueryHandler(orders ports.OrderRepository) GetPaymentDetailsQueryHandler {
	return GetPaymentDetailsQueryHandler{orders: orders}
}

func (h GetPaymentDetailsQueryHandler) Handle(ctx context.Context, query OrderQuery) (string, error) {
	o, err := loadOrder(ctx, h.orders, query)
	if err != nil {
		return "", err
	}
	return o.PaymentDetails()
}
