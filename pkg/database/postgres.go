package database

import (
	"log"

	"github.com/costeratours/experience-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Experience{}, &models.Booking{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Speeds up the capacity ledger query (experience + status + future dates).
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_booking_ledger
		ON bookings (experience_id, travel_date)
		WHERE status <> 'cancelled'
	`)

	return db
}
