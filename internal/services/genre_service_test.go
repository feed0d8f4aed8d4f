package services

import (
	"context"
	"testing"

	"movie-catalog/internal/repository"
	"movie-catalog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenreService(t *testing.T) GenreService {
	t.Helper()
	db := testutil.NewDatabase(t)
	return NewGenreService(repository.NewGenreRepository(db), testutil.NewLogger())
}

func TestGenreService_CreateGenre(t *testing.T) {
	service := newGenreService(t)
	ctx := context.Background()

	genre, err := service.CreateGenre(ctx, " Drama ")
	require.NoError(t, err)
	assert.Equal(t, "Drama", genre.Name)
	assert.NotZero(t, genre.ID)

	_, err = service.CreateGenre(ctx, "drama")
	assert.ErrorIs(t, err, ErrGenreNameTaken)

	_, err = service.CreateGenre(ctx, "   ")
	assert.ErrorIs(t, err, ErrGenreNameRequired)

	genres, err := service.ListGenres(ctx)
	require.NoError(t, err)
	assert.Len(t, genres, 1)
}

func TestGenreService_ListGenresSortedByName(t *testing.T) {
	service := newGenreService(t)
	ctx := context.Background()

	for _, name := range []string{"Thriller", "Animation", "Horror"} {
		_, err := service.CreateGenre(ctx, name)
		require.NoError(t, err)
	}

	genres, err := service.ListGenres(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 3)
	assert.Equal(t, "Animation", genres[0].Name)
	assert.Equal(t, "Horror", genres[1].Name)
	assert.Equal(t, "Thriller", genres[2].Name)
}

func TestGenreService_UpdateGenre(t *testing.T) {
	service := newGenreService(t)
	ctx := context.Background()

	drama, err := service.CreateGenre(ctx, "Drama")
	require.NoError(t, err)
	_, err = service.CreateGenre(ctx, "Comedy")
	require.NoError(t, err)

	_, err = service.UpdateGenre(ctx, 999, "Noir")
	assert.ErrorIs(t, err, ErrGenreNotFound)

	_, err = service.UpdateGenre(ctx, drama.ID, "COMEDY")
	assert.ErrorIs(t, err, ErrGenreNameTaken)

	_, err = service.UpdateGenre(ctx, drama.ID, "")
	assert.ErrorIs(t, err, ErrGenreNameRequired)

	recased, err := service.UpdateGenre(ctx, drama.ID, "DRAMA")
	require.NoError(t, err)
	assert.Equal(t, "DRAMA", recased.Name)

	renamed, err := service.UpdateGenre(ctx, drama.ID, "Melodrama")
	require.NoError(t, err)
	assert.Equal(t, drama.ID, renamed.ID)
	assert.Equal(t, "Melodrama", renamed.Name)
}

func TestGenreService_DeleteGenre(t *testing.T) {
	service := newGenreService(t)
	ctx := context.Background()

	genre, err := service.CreateGenre(ctx, "Documentary")
	require.NoError(t, err)

	require.NoError(t, service.DeleteGenre(ctx, genre.ID))
	assert.ErrorIs(t, service.DeleteGenre(ctx, genre.ID), ErrGenreNotFound)

	genres, err := service.ListGenres(ctx)
	require.NoError(t, err)
	assert.Empty(t, genres)
}
