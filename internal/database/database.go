package database

import (
	"fmt"
	"time"

	"homefinder-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipAutoMigrate bool
}

// Initialize opens a Postgres connection and creates the schema from GORM
// models. The expression index on neighborhoods cannot be expressed with
// struct tags and is created with raw SQL after AutoMigrate.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipAutoMigrate {
		all := []interface{}{
			&models.State{},
			&models.City{},
			&models.Neighborhood{},
			&models.Amenity{},
			&models.Property{},
			&models.PropertyImage{},
			&models.PropertyAmenity{},
			&models.ApartmentDetails{},
			&models.Lead{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}

		// Uniqueness over the natural key of a neighborhood. The upsert in
		// LocationRepository.FindOrCreateNeighborhood relies on this index.
		if err := db.Exec(
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_neighborhoods_city_lower_name
			 ON neighborhoods (city_id, lower(name))`,
		).Error; err != nil {
			return nil, fmt.Errorf("create neighborhood name index: %w", err)
		}
	}

	return db, nil
}
