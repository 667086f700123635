package queries

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
)

type SolutionResponse struct {
	ID        kernel.UUID
	DriverID  kernel.UUID
	Driver    string
	Cost      float64
	Time      int
	CreatedAt time.Time
}

// GetOrderSolutionsQueryHandler lists the open solutions of an order, cheapest
// first, together with the proposed drivers' names.
type GetOrderSolutionsQueryHandler struct {
	orders    ports.OrderRepository
	solutions ports.SolutionRepository
	drivers   ports.DriverRepository
}

func NewGetOrderSolutionsQueryHandler(
	orders ports.OrderRepository,
	solutions ports.SolutionRepository,
	drivers ports.DriverRepository,
) GetOrderSolutionsQueryHandler {
	return GetOrderSolutionsQueryHandler{orders: orders, solutions: solutions, drivers: drivers}
}

func (h GetOrderSolutionsQueryHandler) Handle(ctx context.Context, query OrderQuery) ([]SolutionResponse, error) {
	o, err := loadOrder(ctx, h.orders, query)
	if err != nil {
		return nil, err
	}

	solutions, err := h.solutions.GetAllByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}

	resp := make([]SolutionResponse, 0, len(solutions))
	for _, s := range solutions {
		d, driverErr := h.drivers.Get(ctx, s.DriverID())
		if driverErr != nil {
			return nil, driverErr
		}
		resp = append(resp, SolutionResponse{
			ID:        s.ID(),
			DriverID:  s.DriverID(),
			Driver:    d.Person().FullName(),
			Cost:      s.Cost(),
			Time:      s.Time(),
			CreatedAt: s.CreatedAt(),
		})
	}
	return resp, nil
}
