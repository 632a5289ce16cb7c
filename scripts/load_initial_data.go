package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"homefinder-backend/internal/config"
	"homefinder-backend/internal/database"
	"homefinder-backend/internal/database/models"
	"homefinder-backend/internal/slug"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type StateData struct {
	Name string `yaml:"name"`
	UF   string `yaml:"uf"`
}

type CityData struct {
	Name    string `yaml:"name"`
	StateUF string `yaml:"state_uf"`
}

type AmenityData struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon,omitempty"`
}

// File structures
type StatesFile struct {
	States []StateData `yaml:"states"`
}

type CitiesFile struct {
	Cities []CityData `yaml:"cities"`
}

type AmenitiesFile struct {
	Amenities []AmenityData `yaml:"amenities"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading. The server owns
	// schema migration, so the seeder skips it and only waits for readiness.
	opts := &database.Options{
		LogLevel:        logger.Silent,
		SkipAutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	states, err := loadStates(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load states: %w", err)
	}

	cities, err := loadCities(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load cities: %w", err)
	}

	amenities, err := loadAmenities(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load amenities: %w", err)
	}

	// Create states first
	stateMap := make(map[string]*models.State)
	stateCreated := 0
	for _, stateData := range states {
		state, created, err := createState(db, stateData)
		if err != nil {
			return fmt.Errorf("failed to create state %s: %w", stateData.Name, err)
		}
		stateMap[stateData.UF] = state
		if created {
			stateCreated++
		}
	}
	log.Printf("📋 States: %d created, %d total", stateCreated, len(states))

	// Create cities
	cityCreated := 0
	for _, cityData := range cities {
		_, created, err := createCity(db, cityData, stateMap)
		if err != nil {
			return fmt.Errorf("failed to create city %s: %w", cityData.Name, err)
		}
		if created {
			cityCreated++
		}
	}
	log.Printf("📋 Cities: %d created, %d total", cityCreated, len(cities))

	// Create amenities
	amenityCreated := 0
	for _, amenityData := range amenities {
		_, created, err := createAmenity(db, amenityData)
		if err != nil {
			return fmt.Errorf("failed to create amenity %s: %w", amenityData.Name, err)
		}
		if created {
			amenityCreated++
		}
	}
	log.Printf("📋 Amenities: %d created, %d total", amenityCreated, len(amenities))

	return nil
}

func loadStates(dataDir string) ([]StateData, error) {
	var allStates []StateData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "states") {
			var file StatesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allStates = append(allStates, file.States...)
		}

		return nil
	})

	return allStates, err
}

func loadCities(dataDir string) ([]CityData, error) {
	var allCities []CityData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "cities") {
			var file CitiesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCities = append(allCities, file.Cities...)
		}

		return nil
	})

	return allCities, err
}

func loadAmenities(dataDir string) ([]AmenityData, error) {
	var allAmenities []AmenityData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "amenities") {
			var file AmenitiesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allAmenities = append(allAmenities, file.Amenities...)
		}

		return nil
	})

	return allAmenities, err
}

func createState(db *gorm.DB, stateData StateData) (*models.State, bool, error) {
	var state models.State
	if err := db.Where("uf = ?", stateData.UF).First(&state).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			state = models.State{
				Name: stateData.Name,
				UF:   stateData.UF,
				Slug: slug.Make(stateData.Name),
			}

			if err := db.Create(&state).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create state: %w", err)
			}
			return &state, true, nil
		}
		return nil, false, fmt.Errorf("failed to query state: %w", err)
	}

	return &state, false, nil
}

func createCity(db *gorm.DB, cityData CityData, stateMap map[string]*models.State) (*models.City, bool, error) {
	state := stateMap[cityData.StateUF]
	if state == nil {
		return nil, false, fmt.Errorf("state %s not found for city %s", cityData.StateUF, cityData.Name)
	}

	citySlug := slug.Make(cityData.Name)

	var city models.City
	if err := db.Where("state_id = ? AND slug = ?", state.ID, citySlug).First(&city).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			city = models.City{
				Name:    cityData.Name,
				Slug:    citySlug,
				StateID: state.ID,
			}

			if err := db.Create(&city).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create city: %w", err)
			}
			return &city, true, nil
		}
		return nil, false, fmt.Errorf("failed to query city: %w", err)
	}

	return &city, false, nil
}

func createAmenity(db *gorm.DB, amenityData AmenityData) (*models.Amenity, bool, error) {
	var amenity models.Amenity
	if err := db.Where("name = ?", amenityData.Name).First(&amenity).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			amenity = models.Amenity{
				Name: amenityData.Name,
			}
			if amenityData.Icon != "" {
				amenity.Icon = &amenityData.Icon
			}

			if err := db.Create(&amenity).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create amenity: %w", err)
			}
			return &amenity, true, nil
		}
		return nil, false, fmt.Errorf("failed to query amenity: %w", err)
	}

	return &amenity, false, nil
}
