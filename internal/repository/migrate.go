package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every record this layer
// owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountModel{},
		&roomModel{},
		&bookingModel{},
	)
}
