package server

import (
	"errors"
	"time"

	_ "movie-catalog/docs"
	"movie-catalog/internal/config"
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/routes"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// HealthChecker reports whether the database answers.
type HealthChecker interface {
	HealthCheck() error
}

type Handlers struct {
	Movie    *handlers.MovieHandler
	Genre    *handlers.GenreHandler
	Language *handlers.LanguageHandler
	Upload   *handlers.UploadHandler
}

// New builds the fiber app with middleware, health, docs and the catalogue routes.
func New(cfg config.ServerConfig, db HealthChecker, log *logrus.Logger, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Movie Catalog API",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		// Genre names in /movies/:genreName arrive percent-encoded.
		UnescapePath:          true,
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db))

	// Swagger documentation
	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.Redirect("/docs/index.html", fiber.StatusMovedPermanently)
	})
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	routes.Setup(app, h.Movie, h.Genre, h.Language, h.Upload)

	return app
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

func healthCheckHandler(db HealthChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "movie-catalog",
			"version":   "1.0.0",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return utils.ErrorResponse(c, code, message)
	}
}
