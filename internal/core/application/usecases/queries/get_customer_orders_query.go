package queries

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/ports"
	"freight/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderResponse is the customer facing view of an order.
type OrderResponse struct {
	ID           kernel.UUID
	Status       string
	CargoType    string
	Width        float64
	Length       float64
	Height       float64
	Weight       float64
	AddressFrom  string
	AddressTo    string
	DriverID     *kernel.UUID
	Cost         *float64
	Time         *int
	CreatedAt    time.Time
	ExpectedDate *time.Time
	ReadyDate    *time.Time
	EndDate      *time.Time
	// Expectation is set once the order is ready.
	Expectation *string
}

func newOrderResponse(o *order.Order) OrderResponse {
	c := o.Cargo()
	resp := OrderResponse{
		ID:           o.ID(),
		Status:       o.Status().String(),
		CargoType:    c.Type().String(),
		Width:        c.Dimensions().Width,
		Length:       c.Dimensions().Length,
		Height:       c.Dimensions().Height,
		Weight:       c.Weight(),
		AddressFrom:  o.AddressFrom().String(),
		AddressTo:    o.AddressTo().String(),
		DriverID:     o.DriverID(),
		Cost:         o.Cost(),
		Time:         o.Time(),
		CreatedAt:    o.CreatedAt(),
		ExpectedDate: o.ExpectedDate(),
		ReadyDate:    o.ReadyDate(),
		EndDate:      o.EndDate(),
	}
	if e, err := o.Expectation(); err == nil {
		text := e.String()
		resp.Expectation = &text
	}
	return resp
}

// GetCustomerOrdersQueryHandler lists the orders of a customer, newest first.
type GetCustomerOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetCustomerOrdersQueryHandler(orders ports.OrderRepository) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{orders: orders}
}

func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAllByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, newOrderResponse(o))
	}
	return resp, nil
}
