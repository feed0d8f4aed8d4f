package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/server"
	"movie-catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title Movie Catalog API
// @version 1.0
// @description Catalogue of movies, genres and languages

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := setupLogger()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		if !errors.Is(err, config.ErrStorageNotConfigured) {
			log.Fatalf("Invalid configuration: %v", err)
		}
		log.Warnf("Configuration validation warning: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	movieRepo := repository.NewMovieRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	langRepo := repository.NewLanguageRepository(db)

	languageService := services.NewLanguageService(langRepo, log)
	if cfg.Database.SeedLanguages {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := languageService.SeedLanguages(ctx); err != nil {
			log.Errorf("Failed to seed languages: %v", err)
		}
		cancel()
	}

	// Poster storage is optional; a nil interface keeps the movie service from touching it.
	var posterStorage services.PosterStorage
	var presigner handlers.Presigner
	if cfg.MinIO.Enabled() {
		minioService, err := services.NewMinIOService(&cfg.MinIO, log)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO service: %v", err)
		}
		posterStorage = minioService
		presigner = minioService
	}

	movieService := services.NewMovieService(movieRepo, genreRepo, langRepo, posterStorage, log)
	genreService := services.NewGenreService(genreRepo, log)

	app := server.New(cfg.Server, db, log, server.Handlers{
		Movie:    handlers.NewMovieHandler(movieService, log),
		Genre:    handlers.NewGenreHandler(genreService, log),
		Language: handlers.NewLanguageHandler(languageService, log),
		Upload:   handlers.NewUploadHandler(presigner, log),
	})

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Movie Catalog API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
