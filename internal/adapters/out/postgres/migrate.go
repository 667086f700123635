package postgres

import (
	"freight/internal/adapters/out/postgres/customerrepo"
	"freight/internal/adapters/out/postgres/driverrepo"
	"freight/internal/adapters/out/postgres/orderrepo"
	"freight/internal/adapters/out/postgres/solutionrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the adapter, for migrations and test cleanup.
var Tables = []string{"customers", "drivers", "orders", "solutions"}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&solutionrepo.SolutionDTO{},
	)
}
