package http

import (
	"time"

	"freight/internal/core/application/usecases/queries"

	"github.com/google/uuid"
)

type NewCustomer struct {
	Name       string `json:"name"`
	SecondName string `json:"secondName"`
	MiddleName string `json:"middleName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
}

type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type Session struct {
	Token      string    `json:"token"`
	CustomerID uuid.UUID `json:"customerId"`
	FullName   string    `json:"fullName"`
}

type NewDriver struct {
	Name          string `json:"name"`
	SecondName    string `json:"secondName"`
	MiddleName    string `json:"middleName"`
	Qualification string `json:"qualification"`
	Experience    int    `json:"experience"`
}

type Cargo struct {
	Type   string  `json:"type"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

type NewOrder struct {
	Cargo       Cargo      `json:"cargo"`
	AddressFrom string     `json:"addressFrom"`
	AddressTo   string     `json:"addressTo"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

type Created struct {
	ID uuid.UUID `json:"id"`
}

type Text struct {
	Text string `json:"text"`
}

type Order struct {
	ID           uuid.UUID  `json:"id"`
	Status       string     `json:"status"`
	Cargo        Cargo      `json:"cargo"`
	AddressFrom  string     `json:"addressFrom"`
	AddressTo    string     `json:"addressTo"`
	DriverID     *uuid.UUID `json:"driverId,omitempty"`
	Cost         *float64   `json:"cost,omitempty"`
	Time         *int       `json:"time,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	ExpectedDate *time.Time `json:"expectedDate,omitempty"`
	ReadyDate    *time.Time `json:"readyDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Expectation  *string    `json:"expectation,omitempty"`
}

type Solution struct {
	ID        uuid.UUID `json:"id"`
	DriverID  uuid.UUID `json:"driverId"`
	Driver    string    `json:"driver"`
	Cost      float64   `json:"cost"`
	Time      int       `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
}

func toOrder(o queries.OrderResponse) Order {
	resp := Order{
		ID:     o.ID.Bytes(),
		Status: o.Status,
		Cargo: Cargo{
			Type:   o.CargoType,
			Width:  o.Width,
			Length: o.Length,
			Height: o.Height,
			Weight: o.Weight,
		},
		AddressFrom:  o.AddressFrom,
		AddressTo:    o.AddressTo,
		Cost:         o.Cost,
		Time:         o.Time,
		CreatedAt:    o.CreatedAt,
		ExpectedDate: o.ExpectedDate,
		ReadyDate:    o.ReadyDate,
		EndDate:      o.EndDate,
		Expectation:  o.Expectation,
	}
	if o.DriverID != nil {
		id := o.DriverID.Bytes()
		resp.DriverID = &id
	}
	return resp
}

func toSolution(s queries.SolutionResponse) Solution {
	return Solution{
		ID:        s.ID.Bytes(),
		DriverID:  s.DriverID.Bytes(),
		Driver:    s.Driver,
		Cost:      s.Cost,
		Time:      s.Time,
		CreatedAt: s.CreatedAt,
	}
}
