package handlers

import (
	"errors"
	"strconv"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GenreHandler struct {
	service services.GenreService
	logger  *logrus.Logger
}

func NewGenreHandler(service services.GenreService, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllGenres godoc
// @Summary List genres
// @Description List every genre ordered by name
// @Tags genres
// @Produce json
// @Success 200 {array} models.Genre "Genres ordered by name"
// @Failure 500 {object} utils.MessageResponse "Internal server error"
// @Router /genres [get]
func (h *GenreHandler) GetAllGenres(c *fiber.Ctx) error {
	genres, err := h.service.ListGenres(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get genres")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve genres")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, genres)
}

// CreateGenre godoc
// @Summary Create a genre
// @Description Create a genre. Names are unique ignoring case.
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body GenreRequest true "Genre to create"
// @Success 200 {object} models.Genre "Genre created"
// @Failure 400 {object} utils.ValidationErrorResponse "Genre name is required"
// @Failure 409 {object} utils.MessageResponse "A genre with this name already exists"
// @Failure 500 {object} utils.MessageResponse "Internal server error"
// @Router /genres [post]
func (h *GenreHandler) CreateGenre(c *fiber.Ctx) error {
	var req GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := validateRequest(req); fieldErrors != nil {
		return utils.ValidationError(c, "Genre name is required", fieldErrors)
	}

	genre, err := h.service.CreateGenre(c.UserContext(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGenreNameRequired):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Genre name is required")
		case errors.Is(err, services.ErrGenreNameTaken):
			return utils.ErrorResponse(c, fiber.StatusConflict, "A genre with this name already exists")
		}
		h.logger.WithError(err).WithField("name", req.Name).Error("Failed to create genre")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create genre")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, genre)
}

// UpdateGenre godoc
// @Summary Rename a genre
// @Description Rename a genre. The new name must not belong to another genre, ignoring case.
// @Tags genres
// @Accept json
// @Produce json
// @Param id path int true "Genre ID"
// @Param genre body GenreRequest true "New name"
// @Success 200 {object} models.Genre "Genre updated"
// @Failure 400 {object} utils.MessageResponse "Invalid request"
// @Failure 404 {object} utils.MessageResponse "Genre not found"
// @Failure 409 {object} utils.MessageResponse "A genre with this name already exists"
// @Failure 500 {object} utils.MessageResponse "Internal server error"
// @Router /genres/{id} [put]
func (h *GenreHandler) UpdateGenre(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	var req GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// The existence check runs before name validation so an unknown id is always a 404.
	genre, err := h.service.UpdateGenre(c.UserContext(), uint(id), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGenreNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Genre not found")
		case errors.Is(err, services.ErrGenreNameRequired):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Genre name is required")
		case errors.Is(err, services.ErrGenreNameTaken):
			return utils.ErrorResponse(c, fiber.StatusConflict, "A genre with this name already exists")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to update genre")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update genre")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, genre)
}

// DeleteGenre godoc
// @Summary Delete a genre
// @Description Delete a genre by ID
// @Tags genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} utils.MessageResponse "Genre deleted successfully"
// @Failure 400 {object} utils.MessageResponse "Invalid genre ID"
// @Failure 404 {object} utils.MessageResponse "Genre not found"
// @Failure 500 {object} utils.MessageResponse "Internal server error"
// @Router /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	if err := h.service.DeleteGenre(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrGenreNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Genre not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete genre")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete genre")
	}

	return utils.MessageOnly(c, fiber.StatusOK, "Genre deleted successfully")
}
