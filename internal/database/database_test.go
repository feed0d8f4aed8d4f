package database_test

import (
	"testing"

	"movie-catalog/internal/models"
	"movie-catalog/internal/testutil"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCreatesTables(t *testing.T) {
	db := testutil.NewDatabase(t)

	for _, table := range []interface{}{&models.Genre{}, &models.Language{}, &models.Movie{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
	assert.True(t, db.Migrator().HasIndex(&models.Movie{}, "idx_movies_title_lower"))
	assert.True(t, db.Migrator().HasIndex(&models.Genre{}, "idx_genres_name_lower"))
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := testutil.NewDatabase(t)
	require.NoError(t, db.Migrate())
}

func TestHealthCheck(t *testing.T) {
	db := testutil.NewDatabase(t)
	require.NoError(t, db.HealthCheck())

	require.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck())
}

func TestGenreNameUniqueIgnoringCase(t *testing.T) {
	db := testutil.NewDatabase(t)
	testutil.CreateGenre(t, db, "Drama")

	err := db.Create(&models.Genre{Name: "DRAMA"}).Error
	assert.Error(t, err)
}

func TestMigrateLogsThroughInjectedLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	testutil.NewDatabaseWithLogger(t, log)

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, messages, "Running auto migration...")
	assert.Contains(t, messages, "Auto migration completed successfully")
}
