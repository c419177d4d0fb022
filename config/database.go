package config

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kendall-kelly/kendalls-kitchen/models"
)

var DB *gorm.DB

// ConnectDatabase opens the schema store. A postgres:// or postgresql://
// DSN selects the Postgres driver; anything else is treated as the path of
// a local SQLite file, opened with foreign-key enforcement on so the
// declared cascade constraints actually apply.
func ConnectDatabase(dsn string) error {
	if dsn == "" {
		dsn = "kitchen.db"
		log.Println("No store path configured, using default:", dsn)
	}

	var err error
	DB, err = gorm.Open(openDialector(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return nil
}

// openDialector picks the GORM driver for the given DSN.
func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	if !strings.Contains(dsn, "_foreign_keys") {
		dsn += "?_foreign_keys=on"
	}
	return sqlite.Open(dsn)
}

// Migrate creates any missing tables for the nine domain entities.
// It is idempotent and safe to run on every startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Cuisine{},
		&models.Ingredient{},
		&models.Employee{},
		&models.Chef{},
		&models.Food{},
		&models.Drink{},
		&models.Customer{},
		&models.Delivery{},
		&models.Order{},
		&models.Payment{},
	)
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (primarily for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
