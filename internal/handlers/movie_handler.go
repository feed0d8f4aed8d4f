package handlers

import (
	"errors"
	"strconv"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary List movies
// @Description List every movie ordered by title, with its genre and language embedded
// @Tags movies
// @Produce json
// @Success 200 {array} models.Movie "Movies ordered by title"
// @Failure 500 {object} utils.MessageResponse "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	movies, err := h.service.ListMovies(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}

// GetMoviesByGenre godoc
// @Summary List movies of a genre
// @Description List movies whose genre name matches the path parameter, ignoring case
// @Tags movies
// @Produce json
// @Param genreName path string true "Genre name"
// @Success 200 {array} models.Movie "Movies of the genre"
// @Failure 500 {object} utils.MessageResponse "Internal server error"
// @Router /movies/{genreName} [get]
func (h *MovieHandler) GetMoviesByGenre(c *fiber.Ctx) error {
	genreName := c.Params("genreName")

	movies, err := h.service.ListMoviesByGenre(c.UserContext(), genreName)
	if err != nil {
		h.logger.WithError(err).WithField("genre", genreName).Error("Failed to filter movies by genre")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to filter movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}

// CreateMovie godoc
// @Summary Create a movie
// @Description Create a movie. Titles are unique ignoring case.
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body CreateMovieRequest true "Movie to create"
// @Success 201 {object} models.Movie "Movie created"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid request body"
// @Failure 409 {object} utils.MessageResponse "A movie with this title already exists"
// @Failure 500 {object} utils.MessageResponse "Internal server error"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req CreateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := validateRequest(req); fieldErrors != nil {
		return utils.ValidationError(c, "Invalid request body", fieldErrors)
	}

	movie, err := h.service.CreateMovie(c.UserContext(), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMovieTitleTaken):
			return utils.ErrorResponse(c, fiber.StatusConflict, "A movie with this title already exists")
		case errors.Is(err, services.ErrMovieTitleRequired),
			errors.Is(err, services.ErrMovieTitleTooLong),
			errors.Is(err, services.ErrInvalidOscarCount),
			errors.Is(err, services.ErrGenreNotFound),
			errors.Is(err, services.ErrLanguageNotFound),
			errors.Is(err, services.ErrInvalidReleaseDate):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, capitalize(err.Error()))
		}
		h.logger.WithError(err).WithField("title", req.Title).Error("Failed to create movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create movie")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Merge the supplied fields over an existing movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body UpdateMovieRequest true "Fields to change"
// @Success 200 {object} utils.MessageResponse "Movie updated successfully"
// @Failure 400 {object} utils.MessageResponse "Invalid request"
// @Failure 404 {object} utils.MessageResponse "Movie not found"
// @Failure 409 {object} utils.MessageResponse "A movie with this title already exists"
// @Failure 500 {object} utils.MessageResponse "Internal server error"
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req UpdateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// Field checks live in the service, after the lookup, so an unknown id is always a 404.
	if _, err := h.service.UpdateMovie(c.UserContext(), uint(id), req.toInput()); err != nil {
		switch {
		case errors.Is(err, services.ErrMovieNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		case errors.Is(err, services.ErrMovieTitleTaken):
			return utils.ErrorResponse(c, fiber.StatusConflict, "A movie with this title already exists")
		case errors.Is(err, services.ErrMovieTitleRequired),
			errors.Is(err, services.ErrMovieTitleTooLong),
			errors.Is(err, services.ErrInvalidOscarCount),
			errors.Is(err, services.ErrGenreNotFound),
			errors.Is(err, services.ErrLanguageNotFound),
			errors.Is(err, services.ErrInvalidReleaseDate):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, capitalize(err.Error()))
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to update movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update movie")
	}

	return utils.MessageOnly(c, fiber.StatusOK, "Movie updated successfully")
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Delete a movie by ID
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.MessageResponse "Movie deleted successfully"
// @Failure 400 {object} utils.MessageResponse "Invalid movie ID"
// @Failure 404 {object} utils.MessageResponse "Movie not found"
// @Failure 500 {object} utils.MessageResponse "Internal server error"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.DeleteMovie(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete movie")
	}

	return utils.MessageOnly(c, fiber.StatusOK, "Movie deleted successfully")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
