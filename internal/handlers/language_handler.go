package handlers

import (
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LanguageHandler struct {
	service services.LanguageService
	logger  *logrus.Logger
}

func NewLanguageHandler(service services.LanguageService, logger *logrus.Logger) *LanguageHandler {
	return &LanguageHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllLanguages godoc
// @Summary List languages
// @Description List the languages a movie can reference, ordered by name
// @Tags languages
// @Produce json
// @Success 200 {array} models.Language "Languages ordered by name"
// @Failure 500 {object} utils.MessageResponse "Internal server error"
// @Router /languages [get]
func (h *LanguageHandler) GetAllLanguages(c *fiber.Ctx) error {
	languages, err := h.service.ListLanguages(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get languages")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve languages")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, languages)
}
