package routes

import (
	"movie-catalog/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, movieHandler *handlers.MovieHandler, genreHandler *handlers.GenreHandler, languageHandler *handlers.LanguageHandler, uploadHandler *handlers.UploadHandler) {
	// Movie routes - CRUD operations
	movies := app.Group("/movies")
	{
		movies.Get("/", movieHandler.GetAllMovies)
		movies.Get("/:genreName", movieHandler.GetMoviesByGenre)
		movies.Post("/", movieHandler.CreateMovie)
		movies.Put("/:id", movieHandler.UpdateMovie)
		movies.Delete("/:id", movieHandler.DeleteMovie)
	}

	// Genre routes - CRUD operations
	genres := app.Group("/genres")
	{
		genres.Get("/", genreHandler.GetAllGenres)
		genres.Post("/", genreHandler.CreateGenre)
		genres.Put("/:id", genreHandler.UpdateGenre)
		genres.Delete("/:id", genreHandler.DeleteGenre)
	}

	// Language routes - read only
	app.Get("/languages", languageHandler.GetAllLanguages)

	uploads := app.Group("/uploads")
	{
		uploads.Get("/presign", uploadHandler.GetPresignedURL)
	}
}
