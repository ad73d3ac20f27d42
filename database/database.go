package database

import (
	"fmt"

	"art-portfolio/internal/domain/prefs"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB connects to Postgres and migrates the key/value table. The handle
// is also kept in DB.
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(&prefs.Entry{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	DB = db
	return db, nil
}
