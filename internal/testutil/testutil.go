// Package testutil wires an in-memory SQLite database and a quiet logger for tests.
package testutil

import (
	"io"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDatabase returns a migrated in-memory database that is closed when the test ends.
func NewDatabase(t *testing.T) *database.Database {
	t.Helper()
	return NewDatabaseWithLogger(t, NewLogger())
}

// NewDatabaseWithLogger is NewDatabase with the caller's logger attached.
func NewDatabaseWithLogger(t *testing.T, log *logrus.Logger) *database.Database {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig())
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// Every pooled connection to ":memory:" would see its own empty database.
	sqlDB.SetMaxOpenConns(1)

	db := database.New(gdb, config.DatabaseConfig{QueryTimeout: 5 * time.Second}, log)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// NewLogger returns a logrus logger that discards output.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func CreateGenre(t *testing.T, db *database.Database, name string) *models.Genre {
	t.Helper()
	genre := &models.Genre{Name: name}
	require.NoError(t, db.Create(genre).Error)
	return genre
}

func CreateLanguage(t *testing.T, db *database.Database, code, name string) *models.Language {
	t.Helper()
	language := &models.Language{Code: code, Name: name}
	require.NoError(t, db.Create(language).Error)
	return language
}

func CreateMovie(t *testing.T, db *database.Database, title string, genre *models.Genre, language *models.Language, releaseDate string) *models.Movie {
	t.Helper()
	date, err := models.ParseDate(releaseDate)
	require.NoError(t, err)
	movie := &models.Movie{
		Title:       title,
		GenreID:     genre.ID,
		LanguageID:  language.ID,
		ReleaseDate: date,
	}
	require.NoError(t, db.Create(movie).Error)
	return movie
}
