package handlers

import "movie-catalog/internal/services"

type CreateMovieRequest struct {
	Title       string `json:"title" validate:"required,max=255" example:"Central do Brasil"`
	GenreID     uint   `json:"genre_id" validate:"required" example:"1"`
	LanguageID  uint   `json:"language_id" validate:"required" example:"9"`
	OscarCount  int    `json:"oscar_count" validate:"min=0" example:"0"`
	ReleaseDate string `json:"release_date" validate:"required" example:"1998-04-03"`
	PosterURL   string `json:"poster_url" validate:"omitempty,url" example:"http://localhost:9000/posters/central_1a2b3c4d.jpg"`
}

func (r CreateMovieRequest) toInput() services.CreateMovieInput {
	return services.CreateMovieInput{
		Title:       r.Title,
		GenreID:     r.GenreID,
		LanguageID:  r.LanguageID,
		OscarCount:  r.OscarCount,
		ReleaseDate: r.ReleaseDate,
		PosterURL:   r.PosterURL,
	}
}

// UpdateMovieRequest only changes the fields present in the body.
// Its values are checked by the movie service once the movie is known to exist.
type UpdateMovieRequest struct {
	Title       *string `json:"title" example:"Central do Brasil"`
	GenreID     *uint   `json:"genre_id" example:"1"`
	LanguageID  *uint   `json:"language_id" example:"9"`
	OscarCount  *int    `json:"oscar_count" example:"1"`
	ReleaseDate *string `json:"release_date" example:"1998-04-03"`
	PosterURL   *string `json:"poster_url" example:"http://localhost:9000/posters/central_1a2b3c4d.jpg"`
}

func (r UpdateMovieRequest) toInput() services.UpdateMovieInput {
	return services.UpdateMovieInput{
		Title:       r.Title,
		GenreID:     r.GenreID,
		LanguageID:  r.LanguageID,
		OscarCount:  r.OscarCount,
		ReleaseDate: r.ReleaseDate,
		PosterURL:   r.PosterURL,
	}
}
