package services

import "errors"

var (
	ErrMovieNotFound      = errors.New("movie not found")
	ErrMovieTitleTaken    = errors.New("a movie with this title already exists")
	ErrMovieTitleRequired = errors.New("movie title is required")
	ErrMovieTitleTooLong  = errors.New("movie title must be at most 255 characters")
	ErrInvalidOscarCount  = errors.New("oscar_count must not be negative")
	ErrGenreNotFound      = errors.New("genre not found")
	ErrGenreNameTaken     = errors.New("a genre with this name already exists")
	ErrGenreNameRequired  = errors.New("genre name is required")
	ErrLanguageNotFound   = errors.New("language not found")
	ErrInvalidReleaseDate = errors.New("release_date must be a date (YYYY-MM-DD)")
)
