package database

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Case-insensitive uniqueness backstop for the read-before-write checks done in services.
var uniqueIndexes = []string{
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_movies_title_lower ON movies (LOWER(title))",
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_genres_name_lower ON genres (LOWER(name))",
}

type Database struct {
	*gorm.DB
	config config.DatabaseConfig
	logger *logrus.Logger
}

// GormConfig is shared by the production connection and the test harness so both
// translate driver errors the same way.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	}
}

func Connect(cfg config.DatabaseConfig, log *logrus.Logger) (*Database, error) {
	gormConfig := GormConfig()
	gormConfig.PrepareStmt = true

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		log.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		log.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	log.Info("Database connection established successfully")

	database := New(db, cfg, log)

	if err := database.Migrate(); err != nil {
		log.WithError(err).Error("Failed to run auto migration")
		return nil, fmt.Errorf("failed to run auto migration: %w", err)
	}

	return database, nil
}

// New wraps an already opened gorm handle.
func New(db *gorm.DB, cfg config.DatabaseConfig, log *logrus.Logger) *Database {
	return &Database{
		DB:     db,
		config: cfg,
		logger: log,
	}
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) Migrate() error {
	d.logger.Info("Running auto migration...")

	err := d.DB.AutoMigrate(
		&models.Genre{},
		&models.Language{},
		&models.Movie{},
	)
	if err != nil {
		return err
	}

	for _, stmt := range uniqueIndexes {
		if err := d.DB.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	d.logger.Info("Auto migration completed successfully")
	return nil
}
