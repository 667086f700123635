// Package driverrepo persists driver aggregates with GORM.
package driverrepo

import (
	"time"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the "drivers" row. RegisteredAt orders the matching pool.
type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"size:100;not null"`
	SecondName    string    `gorm:"size:100;not null"`
	MiddleName    *string   `gorm:"size:100"`
	Qualification int       `gorm:"not null"`
	Experience    int       `gorm:"not null"`
	Status        int       `gorm:"not null;index"`
	Version       int       `gorm:"not null;default:0"`
	RegisteredAt  time.Time `gorm:"not null;index;autoCreateTime"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	p := d.Person()
	return DriverDTO{
		ID:            d.ID().Bytes(),
		Name:          p.Name(),
		SecondName:    p.SecondName(),
		MiddleName:    p.MiddleName(),
		Qualification: int(d.Qualification()),
		Experience:    d.Experience(),
		Status:        int(d.Status()),
		Version:       d.Version(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	middle := ""
	if dto.MiddleName != nil {
		middle = *dto.MiddleName
	}
	person, err := kernel.NewPerson(dto.Name, dto.SecondName, middle)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		person,
		driver.Qualification(dto.Qualification),
		dto.Experience,
		driver.Status(dto.Status),
		dto.Version,
	)
}
