package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barberfactory/barberfactory-api/internal/config"
	"github.com/barberfactory/barberfactory-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Shop{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// Slot exclusivity: at most one non-terminal booking per
	// (shop, date, time). This index is what makes concurrent
	// create calls safe; the in-transaction check is only the
	// fast path.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_bookings_open_slot
        ON bookings (shop_id, date, time)
        WHERE status IN ('PENDING', 'CONFIRMED')
    `).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create slot index")
	}

	return db
}
