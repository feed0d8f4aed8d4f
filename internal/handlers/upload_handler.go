package handlers

import (
	"context"

	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Presigner issues upload URLs for poster images.
type Presigner interface {
	GeneratePresignedURL(ctx context.Context, filename, contentType string) (string, string, error)
}

type UploadHandler struct {
	presigner Presigner
	logger    *logrus.Logger
}

// NewUploadHandler accepts a nil presigner; the endpoint then answers 503.
func NewUploadHandler(presigner Presigner, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		presigner: presigner,
		logger:    logger,
	}
}

type PresignResponse struct {
	PresignedURL string `json:"presigned_url" example:"http://localhost:9000/posters/central_1a2b3c4d.jpg?X-Amz-Signature=..."`
	PublicURL    string `json:"public_url" example:"http://localhost:9000/posters/central_1a2b3c4d.jpg"`
}

// GetPresignedURL godoc
// @Summary Get presigned URL for a poster upload
// @Description Generate a presigned PUT URL for uploading a poster image. Store public_url as the movie's poster_url.
// @Tags uploads
// @Produce json
// @Param filename query string true "Filename"
// @Param contentType query string false "Content Type" default(image/jpeg)
// @Success 200 {object} PresignResponse
// @Failure 400 {object} utils.MessageResponse "filename is required"
// @Failure 500 {object} utils.MessageResponse "Internal server error"
// @Failure 503 {object} utils.MessageResponse "Object storage is not configured"
// @Router /uploads/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	if h.presigner == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Object storage is not configured")
	}

	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	contentType := c.Query("contentType", "image/jpeg")

	presignedURL, publicURL, err := h.presigner.GeneratePresignedURL(c.UserContext(), filename, contentType)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, PresignResponse{
		PresignedURL: presignedURL,
		PublicURL:    publicURL,
	})
}
