package services

import (
	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/driver"
)

const (
	// BaseCost is charged for every shipment.
	BaseCost = 400.0
	// QualificationWeight scales the driver qualification rate.
	QualificationWeight = 300.0
	// CargoTypeWeight scales the cargo type rate.
	CargoTypeWeight = 300.0
)

// PricingEngine prices a driver for a cargo:
//
//	cost = BaseCost + QualificationWeight*qualificationRate + CargoTypeWeight*cargoTypeRate
//
// The result lies in [550, 1000]. The engine is stateless and deterministic.
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// CalculateCost fails with errs.ErrConfiguration when either classification has
// no rate, and with a validation error when the inputs were not constructed.
func (PricingEngine) CalculateCost(d *driver.Driver, c cargo.Cargo) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}

	qualificationRate, err := d.Qualification().Rate()
	if err != nil {
		return 0, err
	}
	cargoTypeRate, err := c.Type().Rate()
	if err != nil {
		return 0, err
	}

	return BaseCost + QualificationWeight*qualificationRate + CargoTypeWeight*cargoTypeRate, nil
}
