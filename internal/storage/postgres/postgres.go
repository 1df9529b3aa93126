// Package postgres persists snapshot slots to a PostgreSQL table through
// GORM, for installs that already run a shared database server.
package postgres

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/ilcoutreach/outreach-api/internal/config"
	"github.com/ilcoutreach/outreach-api/internal/logger"
)

// Slot is the persisted row: one JSON payload per named collection.
type Slot struct {
	Name      string    `gorm:"primaryKey"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Slot) TableName() string {
	return "snapshot_slots"
}

// ConnectionConfig holds database connection configuration
type ConnectionConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// DefaultConnectionConfig returns default connection configuration
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		MaxIdleConns:    5,
		MaxOpenConns:    20,
		ConnMaxLifetime: time.Hour,
	}
}

// Store persists slot payloads through a gorm connection.
type Store struct {
	db *gorm.DB
}

// NewStore connects to PostgreSQL and migrates the slots table.
func NewStore(cfg *config.Config) (*Store, error) {
	db, err := connect(cfg, DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, fmt.Errorf("migrate snapshot slots: %w", err)
	}

	return &Store{db: db}, nil
}

// connect opens the gorm connection with retry and pool configuration.
func connect(cfg *config.Config, connCfg *ConnectionConfig) (*gorm.DB, error) {
	log := logger.Storage("postgres")

	dsn := cfg.GetDatabaseURL()
	log.Debug("Connecting to database", "host", cfg.DB.Host, "port", cfg.DB.Port, "database", cfg.DB.Name)

	gormLoggerInstance := gormLogger.Default.LogMode(gormLogger.Silent)
	if cfg.Server.GinMode == "debug" {
		gormLoggerInstance = gormLogger.Default.LogMode(gormLogger.Info)
	}

	gormConfig := &gorm.Config{
		Logger: gormLoggerInstance,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var db *gorm.DB
	var err error
	maxRetries := 3
	retryDelay := time.Second * 2

	for attempt := 1; attempt <= maxRetries; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
		if err == nil {
			break
		}

		log.Warn("Database connection failed", "attempt", attempt, "error", err)
		if attempt < maxRetries {
			time.Sleep(retryDelay)
			retryDelay *= 2
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(connCfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(connCfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(connCfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	log.Info("Successfully connected to PostgreSQL snapshot store",
		"host", cfg.DB.Host,
		"database", cfg.DB.Name)

	return db, nil
}

func (s *Store) Load(slot string, v any) (bool, error) {
	var row Slot
	err := s.db.First(&row, "name = ?", slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("select slot %s: %w", slot, err)
	}

	if err := json.Unmarshal(row.Payload, v); err != nil {
		return false, fmt.Errorf("decode slot %s: %w", slot, err)
	}
	return true, nil
}

func (s *Store) Save(slot string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", slot, err)
	}

	row := Slot{Name: slot, Payload: payload}
	if err := s.db.Save(&row).Error; err != nil {
		return fmt.Errorf("upsert slot %s: %w", slot, err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
