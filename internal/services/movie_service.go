package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

const maxTitleLength = 255

type MovieService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	ListMoviesByGenre(ctx context.Context, genreName string) ([]models.Movie, error)
	CreateMovie(ctx context.Context, input CreateMovieInput) (*models.Movie, error)
	UpdateMovie(ctx context.Context, id uint, input UpdateMovieInput) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id uint) error
}

type CreateMovieInput struct {
	Title       string
	GenreID     uint
	LanguageID  uint
	OscarCount  int
	ReleaseDate string
	PosterURL   string
}

// UpdateMovieInput carries only the fields the caller supplied; nil means keep the stored value.
type UpdateMovieInput struct {
	Title       *string
	GenreID     *uint
	LanguageID  *uint
	OscarCount  *int
	ReleaseDate *string
	PosterURL   *string
}

// PosterStorage removes poster objects that were uploaded through presigned URLs.
type PosterStorage interface {
	ObjectNameFromURL(url string) (string, bool)
	DeleteFile(ctx context.Context, objectPath string) error
}

type movieService struct {
	repo      repository.MovieRepository
	genreRepo repository.GenreRepository
	langRepo  repository.LanguageRepository
	storage   PosterStorage
	logger    *logrus.Logger
}

// NewMovieService builds the movie service. storage may be nil when uploads are disabled.
func NewMovieService(repo repository.MovieRepository, genreRepo repository.GenreRepository, langRepo repository.LanguageRepository, storage PosterStorage, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:      repo,
		genreRepo: genreRepo,
		langRepo:  langRepo,
		storage:   storage,
		logger:    logger,
	}
}

func (s *movieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return s.repo.FindAll(ctx)
}

func (s *movieService) ListMoviesByGenre(ctx context.Context, genreName string) ([]models.Movie, error) {
	return s.repo.FindByGenreName(ctx, strings.TrimSpace(genreName))
}

func (s *movieService) CreateMovie(ctx context.Context, input CreateMovieInput) (*models.Movie, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if input.OscarCount < 0 {
		return nil, ErrInvalidOscarCount
	}

	existing, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing movie: %w", err)
	}
	if existing != nil {
		return nil, ErrMovieTitleTaken
	}

	if err := s.ensureGenre(ctx, input.GenreID); err != nil {
		return nil, err
	}
	if err := s.ensureLanguage(ctx, input.LanguageID); err != nil {
		return nil, err
	}

	releaseDate, err := models.ParseDate(input.ReleaseDate)
	if err != nil {
		return nil, ErrInvalidReleaseDate
	}

	movie := &models.Movie{
		Title:       title,
		GenreID:     input.GenreID,
		LanguageID:  input.LanguageID,
		OscarCount:  input.OscarCount,
		ReleaseDate: releaseDate,
		PosterURL:   strings.TrimSpace(input.PosterURL),
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrMovieTitleTaken
		}
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	return s.repo.FindByID(ctx, movie.ID)
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, input UpdateMovieInput) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	oldPoster := movie.PosterURL

	if input.Title != nil {
		title, err := normalizeTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(title, movie.Title) {
			other, err := s.repo.FindByTitle(ctx, title)
			if err != nil {
				return nil, fmt.Errorf("failed to check existing movie: %w", err)
			}
			if other != nil && other.ID != movie.ID {
				return nil, ErrMovieTitleTaken
			}
		}
		movie.Title = title
	}
	if input.GenreID != nil && *input.GenreID != movie.GenreID {
		if err := s.ensureGenre(ctx, *input.GenreID); err != nil {
			return nil, err
		}
		movie.GenreID = *input.GenreID
	}
	if input.LanguageID != nil && *input.LanguageID != movie.LanguageID {
		if err := s.ensureLanguage(ctx, *input.LanguageID); err != nil {
			return nil, err
		}
		movie.LanguageID = *input.LanguageID
	}
	if input.OscarCount != nil {
		if *input.OscarCount < 0 {
			return nil, ErrInvalidOscarCount
		}
		movie.OscarCount = *input.OscarCount
	}
	if input.ReleaseDate != nil && strings.TrimSpace(*input.ReleaseDate) != "" {
		releaseDate, err := models.ParseDate(*input.ReleaseDate)
		if err != nil {
			return nil, ErrInvalidReleaseDate
		}
		movie.ReleaseDate = releaseDate
	}
	if input.PosterURL != nil {
		movie.PosterURL = strings.TrimSpace(*input.PosterURL)
	}

	movie.Genre = nil
	movie.Language = nil

	if err := s.repo.Update(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrMovieTitleTaken
		}
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	if oldPoster != "" && oldPoster != movie.PosterURL {
		s.removePoster(ctx, oldPoster)
	}

	return s.repo.FindByID(ctx, id)
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find movie: %w", err)
	}
	if existing == nil {
		return ErrMovieNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	if existing.PosterURL != "" {
		s.removePoster(ctx, existing.PosterURL)
	}
	return nil
}

func normalizeTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", ErrMovieTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", ErrMovieTitleTooLong
	}
	return title, nil
}

func (s *movieService) ensureGenre(ctx context.Context, id uint) error {
	genre, err := s.genreRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find genre: %w", err)
	}
	if genre == nil {
		return ErrGenreNotFound
	}
	return nil
}

func (s *movieService) ensureLanguage(ctx context.Context, id uint) error {
	language, err := s.langRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find language: %w", err)
	}
	if language == nil {
		return ErrLanguageNotFound
	}
	return nil
}

// removePoster deletes a poster we host. Failures are logged only; the row change already happened.
func (s *movieService) removePoster(ctx context.Context, posterURL string) {
	if s.storage == nil {
		return
	}
	objectName, ok := s.storage.ObjectNameFromURL(posterURL)
	if !ok {
		return
	}
	if err := s.storage.DeleteFile(ctx, objectName); err != nil {
		s.logger.WithError(err).WithField("poster_url", posterURL).Warn("Failed to delete poster from object storage")
	}
}
