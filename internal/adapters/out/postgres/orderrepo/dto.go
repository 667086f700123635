// Package orderrepo persists order aggregates with GORM. Every order row
// carries a version used for compare-and-swap updates.
package orderrepo

import (
	"time"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the "orders" row.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Cargo        CargoDTO   `gorm:"embedded;embeddedPrefix:cargo_"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	AddressFrom  string     `gorm:"size:255;not null"`
	AddressTo    string     `gorm:"size:255;not null"`
	Status       int        `gorm:"not null;index"`
	Cost         *float64
	Time         *int
	CreatedAt    time.Time `gorm:"not null;index;autoCreateTime:false"`
	ExpectedDate *time.Time
	ReadyDate    *time.Time
	EndDate      *time.Time
	Version      int `gorm:"not null;default:0"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// CargoDTO is embedded into the orders table.
type CargoDTO struct {
	Type   int     `gorm:"not null"`
	Width  float64 `gorm:"not null"`
	Length float64 `gorm:"not null"`
	Height float64 `gorm:"not null"`
	Weight float64 `gorm:"not null"`
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	dims := s.Cargo.Dimensions()

	var driverID *uuid.UUID
	if s.DriverID != nil {
		raw := s.DriverID.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:         s.ID.Bytes(),
		CustomerID: s.CustomerID.Bytes(),
		Cargo: CargoDTO{
			Type:   int(s.Cargo.Type()),
			Width:  dims.Width,
			Length: dims.Length,
			Height: dims.Height,
			Weight: s.Cargo.Weight(),
		},
		DriverID:     driverID,
		AddressFrom:  s.AddressFrom.String(),
		AddressTo:    s.AddressTo.String(),
		Status:       int(s.Status),
		Cost:         s.Cost,
		Time:         s.Time,
		CreatedAt:    s.CreatedAt,
		ExpectedDate: s.ExpectedDate,
		ReadyDate:    s.ReadyDate,
		EndDate:      s.EndDate,
		Version:      s.Version,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	c, err := cargo.NewCargo(cargo.Type(dto.Cargo.Type), cargo.Dimensions{
		Width:  dto.Cargo.Width,
		Length: dto.Cargo.Length,
		Height: dto.Cargo.Height,
	}, dto.Cargo.Weight)
	if err != nil {
		return nil, err
	}

	from, err := kernel.NewAddress(dto.AddressFrom)
	if err != nil {
		return nil, err
	}
	to, err := kernel.NewAddress(dto.AddressTo)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:           id,
		CustomerID:   customerID,
		CreatedAt:    dto.CreatedAt.UTC(),
		Cargo:        c,
		DriverID:     driverID,
		AddressFrom:  from,
		AddressTo:    to,
		Status:       order.Status(dto.Status),
		Cost:         dto.Cost,
		Time:         dto.Time,
		ExpectedDate: utc(dto.ExpectedDate),
		ReadyDate:    utc(dto.ReadyDate),
		EndDate:      utc(dto.EndDate),
		Version:      dto.Version,
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
