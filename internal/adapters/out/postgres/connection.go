package postgres

import (
	"fmt"

	"medorders/internal/adapters/out/postgres/actorrepo"
	"medorders/internal/adapters/out/postgres/historyrepo"
	"medorders/internal/adapters/out/postgres/medicinerepo"
	"medorders/internal/adapters/out/postgres/orderrepo"
	"medorders/internal/adapters/out/postgres/stockmovementrepo"

	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to postgres through the lib/pq driver, so that pq.Array
// parameters and *pq.Error values work throughout the adapters.
func Open(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table of the service. Parents are
// migrated before the tables holding foreign keys to them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&actorrepo.ActorDTO{},
		&medicinerepo.MedicineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&historyrepo.StatusHistoryDTO{},
		&stockmovementrepo.StockMovementDTO{},
	)
}
