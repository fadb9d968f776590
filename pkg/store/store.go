// Package store is the persistence collaborator: a document store that seeds
// the curated content once and hands it back as full collections. The core
// never queries it per-request; the catalog is built from one load at
// startup.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soyroberto/roblox/pkg/catalog"
)

// Loader is the read side consumed by startup and by the cache layer.
type Loader interface {
	LoadComponents(ctx context.Context) ([]catalog.ArchitectureComponent, error)
	LoadSteps(ctx context.Context) ([]catalog.JourneyStep, error)
}

// componentRecord is a document row: indexed columns for ordering plus the
// full payload as JSON.
type componentRecord struct {
	ID        string `gorm:"primaryKey"`
	StepOrder int    `gorm:"index"`
	Payload   string `gorm:"type:text"`
}

func (componentRecord) TableName() string { return "components" }

type stepRecord struct {
	ID         string `gorm:"primaryKey"`
	StepNumber int    `gorm:"uniqueIndex"`
	Payload    string `gorm:"type:text"`
}

func (stepRecord) TableName() string { return "journey_steps" }

// Store wraps the gorm connection and the document schema.
type Store struct {
	db *gorm.DB
}

// Open connects to the configured database and migrates the schema.
// driver is "sqlite" (dsn = file path) or "mysql" (dsn = DSN string).
func Open(driver, dsn string) (*Store, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger:                 logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if err := db.AutoMigrate(&componentRecord{}, &stepRecord{}); err != nil {
		return nil, fmt.Errorf("schema migration failed: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SeedIfEmpty writes the given records when the component table has no rows.
// A populated store keeps its existing documents, so IDs stay stable across
// restarts. Returns true when seeding happened.
func (s *Store) SeedIfEmpty(ctx context.Context, components []catalog.ArchitectureComponent, steps []catalog.JourneyStep) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&componentRecord{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count components: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range components {
			payload, err := json.Marshal(c)
			if err != nil {
				return fmt.Errorf("failed to marshal component '%s': %w", c.Name, err)
			}
			rec := componentRecord{ID: c.ID, StepOrder: c.StepOrder, Payload: string(payload)}
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("failed to insert component '%s': %w", c.Name, err)
			}
		}
		for _, st := range steps {
			payload, err := json.Marshal(st)
			if err != nil {
				return fmt.Errorf("failed to marshal step %d: %w", st.StepNumber, err)
			}
			rec := stepRecord{ID: st.ID, StepNumber: st.StepNumber, Payload: string(payload)}
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("failed to insert step %d: %w", st.StepNumber, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// LoadComponents returns all component documents ordered by step_order.
func (s *Store) LoadComponents(ctx context.Context) ([]catalog.ArchitectureComponent, error) {
	var records []componentRecord
	if err := s.db.WithContext(ctx).Order("step_order").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load components: %w", err)
	}

	components := make([]catalog.ArchitectureComponent, 0, len(records))
	for _, rec := range records {
		var c catalog.ArchitectureComponent
		if err := json.Unmarshal([]byte(rec.Payload), &c); err != nil {
			return nil, fmt.Errorf("corrupt component document '%s': %w", rec.ID, err)
		}
		components = append(components, c)
	}
	return components, nil
}

// LoadSteps returns all step documents ordered by step_number.
func (s *Store) LoadSteps(ctx context.Context) ([]catalog.JourneyStep, error) {
	var records []stepRecord
	if err := s.db.WithContext(ctx).Order("step_number").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load steps: %w", err)
	}

	steps := make([]catalog.JourneyStep, 0, len(records))
	for _, rec := range records {
		var st catalog.JourneyStep
		if err := json.Unmarshal([]byte(rec.Payload), &st); err != nil {
			return nil, fmt.Errorf("corrupt step document '%s': %w", rec.ID, err)
		}
		steps = append(steps, st)
	}
	return steps, nil
}
