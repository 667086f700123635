// Package solutionrepo persists the open solutions of orders with GORM.
package solutionrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/solution"

	"github.com/google/uuid"
)

type SolutionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Cost      float64   `gorm:"not null"`
	Time      int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

func (SolutionDTO) TableName() string {
	return "solutions"
}

func fromDomain(s *solution.Solution) SolutionDTO {
	return SolutionDTO{
		ID:        s.ID().Bytes(),
		OrderID:   s.OrderID().Bytes(),
		DriverID:  s.DriverID().Bytes(),
		Cost:      s.Cost(),
		Time:      s.Time(),
		CreatedAt: s.CreatedAt(),
	}
}

func toDomain(dto SolutionDTO) (*solution.Solution, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}
	return solution.NewSolution(id, orderID, driverID, dto.Cost, dto.Time, dto.CreatedAt.UTC())
}
