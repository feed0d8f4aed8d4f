package services

import (
	"context"
	"fmt"
	"sort"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// knownLanguages seeds the read-only languages table, keyed by ISO 639-1 code.
var knownLanguages = map[string]string{
	"en": "English", "ja": "Japanese", "ko": "Korean", "zh": "Chinese",
	"es": "Spanish", "fr": "French", "de": "German", "it": "Italian",
	"pt": "Portuguese", "ru": "Russian", "hi": "Hindi", "th": "Thai",
	"id": "Indonesian", "tr": "Turkish", "ar": "Arabic", "pl": "Polish",
	"nl": "Dutch", "sv": "Swedish", "no": "Norwegian", "da": "Danish",
	"fi": "Finnish", "cs": "Czech", "hu": "Hungarian", "ro": "Romanian",
}

type LanguageService interface {
	ListLanguages(ctx context.Context) ([]models.Language, error)
	SeedLanguages(ctx context.Context) (int, error)
}

type languageService struct {
	repo   repository.LanguageRepository
	logger *logrus.Logger
}

func NewLanguageService(repo repository.LanguageRepository, logger *logrus.Logger) LanguageService {
	return &languageService{
		repo:   repo,
		logger: logger,
	}
}

func (s *languageService) ListLanguages(ctx context.Context) ([]models.Language, error) {
	return s.repo.FindAll(ctx)
}

// SeedLanguages makes sure every known language exists and returns how many are present.
// Existing rows keep their names.
func (s *languageService) SeedLanguages(ctx context.Context) (int, error) {
	codes := make([]string, 0, len(knownLanguages))
	for code := range knownLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		if _, err := s.repo.FindOrCreate(ctx, code, knownLanguages[code]); err != nil {
			return 0, fmt.Errorf("failed to seed language %q: %w", code, err)
		}
	}

	s.logger.WithField("languages", len(codes)).Info("Languages seeded")
	return len(codes), nil
}
