package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type GenreService interface {
	ListGenres(ctx context.Context) ([]models.Genre, error)
	CreateGenre(ctx context.Context, name string) (*models.Genre, error)
	UpdateGenre(ctx context.Context, id uint, name string) (*models.Genre, error)
	DeleteGenre(ctx context.Context, id uint) error
}

type genreService struct {
	repo   repository.GenreRepository
	logger *logrus.Logger
}

func NewGenreService(repo repository.GenreRepository, logger *logrus.Logger) GenreService {
	return &genreService{
		repo:   repo,
		logger: logger,
	}
}

func (s *genreService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return s.repo.FindAll(ctx)
}

func (s *genreService) CreateGenre(ctx context.Context, name string) (*models.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrGenreNameRequired
	}

	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing genre: %w", err)
	}
	if existing != nil {
		return nil, ErrGenreNameTaken
	}

	genre := &models.Genre{Name: name}
	if err := s.repo.Create(ctx, genre); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrGenreNameTaken
		}
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"genre_id": genre.ID,
		"name":     genre.Name,
	}).Debug("Genre created")

	return genre, nil
}

func (s *genreService) UpdateGenre(ctx context.Context, id uint, name string) (*models.Genre, error) {
	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find genre: %w", err)
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrGenreNameRequired
	}

	other, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing genre: %w", err)
	}
	if other != nil && other.ID != genre.ID {
		return nil, ErrGenreNameTaken
	}

	genre.Name = name
	if err := s.repo.Update(ctx, genre); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrGenreNameTaken
		}
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}

	return genre, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, id uint) error {
	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find genre: %w", err)
	}
	if genre == nil {
		return ErrGenreNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}
	return nil
}
