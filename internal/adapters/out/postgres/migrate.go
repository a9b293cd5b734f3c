package postgres

import (
	"fulfillment/internal/adapters/out/postgres/eventrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/outboxrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all persistence adapters and
// ensures the order numbering sequence exists.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&outboxrepo.EntryDTO{},
		&eventrepo.EventDTO{},
	); err != nil {
		return err
	}

	return db.Exec("CREATE SEQUENCE IF NOT EXISTS " + orderSeqName + " START 300001").Error
}
