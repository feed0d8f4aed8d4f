package repository

import (
	"context"
	"errors"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieRepository interface {
	// CRUD operations
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindByTitle(ctx context.Context, title string) (*models.Movie, error)

	// Listing operations
	FindAll(ctx context.Context) ([]models.Movie, error)
	FindByGenreName(ctx context.Context, genreName string) ([]models.Movie, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translateWriteError(r.db.WithContext(ctx).Omit(clause.Associations).Create(movie).Error)
}

// Update saves every column of movie. Preloaded Genre/Language are never written back.
func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translateWriteError(r.db.WithContext(ctx).Omit(clause.Associations).Save(movie).Error)
}

func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Movie{}, id).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Preload("Genre").Preload("Language").First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

// FindByTitle matches the title ignoring case.
func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Where("LOWER(title) = LOWER(?)", title).First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	movies := []models.Movie{}
	err := r.db.WithContext(ctx).
		Preload("Genre").Preload("Language").
		Order("title ASC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) FindByGenreName(ctx context.Context, genreName string) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	movies := []models.Movie{}
	err := r.db.WithContext(ctx).
		Select("movies.*").
		Joins("JOIN genres ON genres.id = movies.genre_id").
		Where("LOWER(genres.name) = LOWER(?)", genreName).
		Preload("Genre").Preload("Language").
		Order("movies.title ASC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}
