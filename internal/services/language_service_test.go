package services

import (
	"context"
	"testing"

	"movie-catalog/internal/repository"
	"movie-catalog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageService_SeedLanguages(t *testing.T) {
	db := testutil.NewDatabase(t)
	testutil.CreateLanguage(t, db, "pt", "Português")
	service := NewLanguageService(repository.NewLanguageRepository(db), testutil.NewLogger())
	ctx := context.Background()

	n, err := service.SeedLanguages(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(knownLanguages), n)

	// Seeding twice must not duplicate rows.
	_, err = service.SeedLanguages(ctx)
	require.NoError(t, err)

	languages, err := service.ListLanguages(ctx)
	require.NoError(t, err)
	require.Len(t, languages, len(knownLanguages))
	assert.Equal(t, "Arabic", languages[0].Name)

	var pt string
	for _, l := range languages {
		if l.Code == "pt" {
			pt = l.Name
		}
	}
	assert.Equal(t, "Português", pt)
}
