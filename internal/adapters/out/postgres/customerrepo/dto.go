// Package customerrepo persists customer accounts with GORM. Email and phone
// carry unique indexes.
package customerrepo

import (
	"time"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:100;not null"`
	SecondName   string    `gorm:"size:100;not null"`
	MiddleName   *string   `gorm:"size:100"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	Phone        string    `gorm:"size:16;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	p := c.Person()
	return CustomerDTO{
		ID:           c.ID().Bytes(),
		Name:         p.Name(),
		SecondName:   p.SecondName(),
		MiddleName:   p.MiddleName(),
		Email:        c.Email(),
		Phone:        c.Phone(),
		PasswordHash: c.PasswordHash(),
		CreatedAt:    c.CreatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
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

	return customer.NewCustomer(id, person, dto.Email, dto.Phone, dto.PasswordHash, dto.CreatedAt.UTC())
}
