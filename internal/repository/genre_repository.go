package repository

import (
	"context"
	"errors"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *models.Genre) error
	Update(ctx context.Context, genre *models.Genre) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Genre, error)
	FindByName(ctx context.Context, name string) (*models.Genre, error)
	FindAll(ctx context.Context) ([]models.Genre, error)
}

type genreRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *genreRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translateWriteError(r.db.WithContext(ctx).Create(genre).Error)
}

func (r *genreRepository) Update(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translateWriteError(r.db.WithContext(ctx).Save(genre).Error)
}

func (r *genreRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Genre{}, id).Error
}

func (r *genreRepository) FindByID(ctx context.Context, id uint) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).First(&genre, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &genre, nil
}

// FindByName matches the genre name ignoring case.
func (r *genreRepository) FindByName(ctx context.Context, name string) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&genre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	genres := []models.Genre{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&genres).Error
	return genres, err
}
