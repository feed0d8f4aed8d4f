package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/server"
	"movie-catalog/internal/services"
	"movie-catalog/internal/testutil"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPresigner struct {
	err error
}

func (s stubPresigner) GeneratePresignedURL(_ context.Context, filename, contentType string) (string, string, error) {
	if s.err != nil {
		return "", "", s.err
	}
	return "http://storage.test/posters/" + filename + "?type=" + contentType, "http://storage.test/posters/" + filename, nil
}

type testApp struct {
	app *fiber.App
	db  *database.Database
}

func newTestApp(t *testing.T, presigner handlers.Presigner) *testApp {
	t.Helper()
	db := testutil.NewDatabase(t)
	log := testutil.NewLogger()

	movieRepo := repository.NewMovieRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	langRepo := repository.NewLanguageRepository(db)

	app := server.New(config.ServerConfig{}, db, log, server.Handlers{
		Movie:    handlers.NewMovieHandler(services.NewMovieService(movieRepo, genreRepo, langRepo, nil, log), log),
		Genre:    handlers.NewGenreHandler(services.NewGenreService(genreRepo, log), log),
		Language: handlers.NewLanguageHandler(services.NewLanguageService(langRepo, log), log),
		Upload:   handlers.NewUploadHandler(presigner, log),
	})
	return &testApp{app: app, db: db}
}

func (ta *testApp) do(t *testing.T, method, path string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func (ta *testApp) countMovies(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, ta.db.Model(&models.Movie{}).Count(&n).Error)
	return n
}

func decodeMessage(t *testing.T, data []byte) string {
	t.Helper()
	var msg utils.MessageResponse
	require.NoError(t, json.Unmarshal(data, &msg), string(data))
	return msg.Message
}

func TestGenres_CreateAndRejectDuplicateIgnoringCase(t *testing.T) {
	ta := newTestApp(t, nil)

	status, body := ta.do(t, http.MethodPost, "/genres", map[string]string{"name": "Drama"})
	require.Equal(t, http.StatusOK, status, string(body))

	var genre models.Genre
	require.NoError(t, json.Unmarshal(body, &genre))
	assert.Equal(t, "Drama", genre.Name)
	assert.NotZero(t, genre.ID)

	status, body = ta.do(t, http.MethodPost, "/genres", map[string]string{"name": "drama"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "A genre with this name already exists", decodeMessage(t, body))
}

func TestGenres_CreateRequiresName(t *testing.T) {
	ta := newTestApp(t, nil)

	status, body := ta.do(t, http.MethodPost, "/genres", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)

	var resp utils.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "name", resp.Errors[0].Field)

	status, _ = ta.do(t, http.MethodPost, "/genres", map[string]string{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = ta.do(t, http.MethodPost, "/genres", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGenres_ListSortedByName(t *testing.T) {
	ta := newTestApp(t, nil)
	testutil.CreateGenre(t, ta.db, "Western")
	testutil.CreateGenre(t, ta.db, "Animation")

	status, body := ta.do(t, http.MethodGet, "/genres", nil)
	require.Equal(t, http.StatusOK, status)

	var genres []models.Genre
	require.NoError(t, json.Unmarshal(body, &genres))
	require.Len(t, genres, 2)
	assert.Equal(t, "Animation", genres[0].Name)
	assert.Equal(t, "Western", genres[1].Name)
}

func TestGenres_Update(t *testing.T) {
	ta := newTestApp(t, nil)
	drama := testutil.CreateGenre(t, ta.db, "Drama")
	testutil.CreateGenre(t, ta.db, "Comedy")

	status, _ := ta.do(t, http.MethodPut, "/genres/999", map[string]string{"name": "Noir"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = ta.do(t, http.MethodPut, fmt.Sprintf("/genres/%d", drama.ID), map[string]string{"name": "COMEDY"})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = ta.do(t, http.MethodPut, fmt.Sprintf("/genres/%d", drama.ID), map[string]string{"name": ""})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = ta.do(t, http.MethodPut, "/genres/abc", map[string]string{"name": "Noir"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := ta.do(t, http.MethodPut, fmt.Sprintf("/genres/%d", drama.ID), map[string]string{"name": "Melodrama"})
	require.Equal(t, http.StatusOK, status, string(body))
	var genre models.Genre
	require.NoError(t, json.Unmarshal(body, &genre))
	assert.Equal(t, "Melodrama", genre.Name)
}

func TestGenres_Delete(t *testing.T) {
	ta := newTestApp(t, nil)
	drama := testutil.CreateGenre(t, ta.db, "Drama")

	status, _ := ta.do(t, http.MethodDelete, "/genres/999", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body := ta.do(t, http.MethodDelete, fmt.Sprintf("/genres/%d", drama.ID), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Genre deleted successfully", decodeMessage(t, body))

	status, _ = ta.do(t, http.MethodDelete, fmt.Sprintf("/genres/%d", drama.ID), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestMovies_ListSortedByTitle(t *testing.T) {
	ta := newTestApp(t, nil)
	drama := testutil.CreateGenre(t, ta.db, "Drama")
	pt := testutil.CreateLanguage(t, ta.db, "pt", "Portuguese")
	testutil.CreateMovie(t, ta.db, "Tropa de Elite", drama, pt, "2007-10-12")
	testutil.CreateMovie(t, ta.db, "Bacurau", drama, pt, "2019-08-29")
	testutil.CreateMovie(t, ta.db, "Marighella", drama, pt, "2021-11-04")

	status, body := ta.do(t, http.MethodGet, "/movies", nil)
	require.Equal(t, http.StatusOK, status)

	var movies []models.Movie
	require.NoError(t, json.Unmarshal(body, &movies))
	require.Len(t, movies, 3)
	assert.Equal(t, "Bacurau", movies[0].Title)
	assert.Equal(t, "Marighella", movies[1].Title)
	assert.Equal(t, "Tropa de Elite", movies[2].Title)
	require.NotNil(t, movies[0].Genre)
	assert.Equal(t, "Drama", movies[0].Genre.Name)
	require.NotNil(t, movies[0].Language)
	assert.Equal(t, "Portuguese", movies[0].Language.Name)
	assert.Equal(t, "2019-08-29", movies[0].ReleaseDate.String())
}

func TestMovies_ListEmptyIsArray(t *testing.T) {
	ta := newTestApp(t, nil)

	status, body := ta.do(t, http.MethodGet, "/movies", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestMovies_FilterByGenreNameIgnoringCase(t *testing.T) {
	ta := newTestApp(t, nil)
	drama := testutil.CreateGenre(t, ta.db, "Drama")
	comedy := testutil.CreateGenre(t, ta.db, "Comedy")
	en := testutil.CreateLanguage(t, ta.db, "en", "English")
	testutil.CreateMovie(t, ta.db, "The Godfather", drama, en, "1972-03-24")
	testutil.CreateMovie(t, ta.db, "Airplane!", comedy, en, "1980-07-02")

	status, body := ta.do(t, http.MethodGet, "/movies/COMEDY", nil)
	require.Equal(t, http.StatusOK, status)

	var movies []models.Movie
	require.NoError(t, json.Unmarshal(body, &movies))
	require.Len(t, movies, 1)
	assert.Equal(t, "Airplane!", movies[0].Title)

	status, body = ta.do(t, http.MethodGet, "/movies/horror", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestMovies_FilterByPercentEncodedGenreName(t *testing.T) {
	ta := newTestApp(t, nil)
	scifi := testutil.CreateGenre(t, ta.db, "Science Fiction")
	fiction := testutil.CreateGenre(t, ta.db, "Ficção")
	pt := testutil.CreateLanguage(t, ta.db, "pt", "Portuguese")
	testutil.CreateMovie(t, ta.db, "Bacurau", scifi, pt, "2019-08-29")
	testutil.CreateMovie(t, ta.db, "Ainda Estou Aqui", fiction, pt, "2024-11-07")

	tests := []struct {
		path string
		want string
	}{
		{path: "/movies/Science%20Fiction", want: "Bacurau"},
		{path: "/movies/science%20fiction", want: "Bacurau"},
		{path: "/movies/Fic%C3%A7%C3%A3o", want: "Ainda Estou Aqui"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := ta.do(t, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, status)

			var movies []models.Movie
			require.NoError(t, json.Unmarshal(body, &movies))
			require.Len(t, movies, 1, string(body))
			assert.Equal(t, tt.want, movies[0].Title)
		})
	}
}

func TestMovies_Create(t *testing.T) {
	ta := newTestApp(t, nil)
	drama := testutil.CreateGenre(t, ta.db, "Drama")
	pt := testutil.CreateLanguage(t, ta.db, "pt", "Portuguese")

	status, body := ta.do(t, http.MethodPost, "/movies", map[string]interface{}{
		"title":        "Central do Brasil",
		"genre_id":     drama.ID,
		"language_id":  pt.ID,
		"oscar_count":  0,
		"release_date": "1998-04-03",
	})
	require.Equal(t, http.StatusCreated, status, string(body))

	var movie models.Movie
	require.NoError(t, json.Unmarshal(body, &movie))
	assert.NotZero(t, movie.ID)
	assert.Equal(t, "Central do Brasil", movie.Title)
	assert.Equal(t, "1998-04-03", movie.ReleaseDate.String())
	assert.Equal(t, int64(1), ta.countMovies(t))
}

func TestMovies_CreateDuplicateTitleConflicts(t *testing.T) {
	ta := newTestApp(t, nil)
	drama := testutil.CreateGenre(t, ta.db, "Drama")
	pt := testutil.CreateLanguage(t, ta.db, "pt", "Portuguese")
	testutil.CreateMovie(t, ta.db, "Cidade de Deus", drama, pt, "2002-08-30")

	status, body := ta.do(t, http.MethodPost, "/movies", map[string]interface{}{
		"title":        "CIDADE DE DEUS",
		"genre_id":     drama.ID,
		"language_id":  pt.ID,
		"release_date": "2002-08-30",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "A movie with this title already exists", decodeMessage(t, body))
	assert.Equal(t, int64(1), ta.countMovies(t))
}

func TestMovies_CreateRejectsInvalidInput(t *testing.T) {
	ta := newTestApp(t, nil)
	drama := testutil.CreateGenre(t, ta.db, "Drama")
	pt := testutil.CreateLanguage(t, ta.db, "pt", "Portuguese")

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "malformed json", body: `{"title": `},
		{name: "missing title", body: map[string]interface{}{"genre_id": drama.ID, "language_id": pt.ID, "release_date": "2000-01-01"}},
		{name: "blank title", body: map[string]interface{}{"title": "  ", "genre_id": drama.ID, "language_id": pt.ID, "release_date": "2000-01-01"}},
		{name: "negative oscars", body: map[string]interface{}{"title": "A", "genre_id": drama.ID, "language_id": pt.ID, "oscar_count": -1, "release_date": "2000-01-01"}},
		{name: "bad date", body: map[string]interface{}{"title": "A", "genre_id": drama.ID, "language_id": pt.ID, "release_date": "01/01/2000"}},
		{name: "unknown genre", body: map[string]interface{}{"title": "A", "genre_id": 999, "language_id": pt.ID, "release_date": "2000-01-01"}},
		{name: "unknown language", body: map[string]interface{}{"title": "A", "genre_id": drama.ID, "language_id": 999, "release_date": "2000-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ta.do(t, http.MethodPost, "/movies", tt.body)
			assert.Equal(t, http.StatusBadRequest, status, string(body))
		})
	}
	assert.Equal(t, int64(0), ta.countMovies(t))
}

func TestMovies_UpdateMissingReturnsNotFound(t *testing.T) {
	ta := newTestApp(t, nil)

	status, body := ta.do(t, http.MethodPut, "/movies/999", map[string]string{"title": "X"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Movie not found", decodeMessage(t, body))
	assert.Equal(t, int64(0), ta.countMovies(t))

	// An unknown id wins over invalid fields.
	for _, body := range []interface{}{
		map[string]string{"title": ""},
		map[string]interface{}{"oscar_count": -1},
		map[string]interface{}{"genre_id": 0},
	} {
		status, _ = ta.do(t, http.MethodPut, "/movies/999", body)
		assert.Equal(t, http.StatusNotFound, status, body)
	}
}

func TestMovies_UpdateRejectsInvalidFields(t *testing.T) {
	ta := newTestApp(t, nil)
	drama := testutil.CreateGenre(t, ta.db, "Drama")
	pt := testutil.CreateLanguage(t, ta.db, "pt", "Portuguese")
	created := testutil.CreateMovie(t, ta.db, "Aquarius", drama, pt, "2016-09-01")
	path := fmt.Sprintf("/movies/%d", created.ID)

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "blank title", body: map[string]string{"title": "  "}},
		{name: "title too long", body: map[string]string{"title": strings.Repeat("a", 256)}},
		{name: "negative oscars", body: map[string]interface{}{"oscar_count": -1}},
		{name: "unknown genre", body: map[string]interface{}{"genre_id": 999}},
		{name: "unknown language", body: map[string]interface{}{"language_id": 999}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ta.do(t, http.MethodPut, path, tt.body)
			assert.Equal(t, http.StatusBadRequest, status, string(body))
		})
	}

	var stored models.Movie
	require.NoError(t, ta.db.First(&stored, created.ID).Error)
	assert.Equal(t, "Aquarius", stored.Title)
	assert.Equal(t, 0, stored.OscarCount)
}

func TestMovies_UpdateMergesFields(t *testing.T) {
	ta := newTestApp(t, nil)
	drama := testutil.CreateGenre(t, ta.db, "Drama")
	pt := testutil.CreateLanguage(t, ta.db, "pt", "Portuguese")
	created := testutil.CreateMovie(t, ta.db, "O Pagador de Promessas", drama, pt, "1962-08-08")
	testutil.CreateMovie(t, ta.db, "Pixote", drama, pt, "1980-09-26")

	path := fmt.Sprintf("/movies/%d", created.ID)

	status, body := ta.do(t, http.MethodPut, path, map[string]interface{}{"oscar_count": 1, "release_date": "1962-05-23"})
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, "Movie updated successfully", decodeMessage(t, body))

	var stored models.Movie
	require.NoError(t, ta.db.First(&stored, created.ID).Error)
	assert.Equal(t, "O Pagador de Promessas", stored.Title)
	assert.Equal(t, 1, stored.OscarCount)
	assert.Equal(t, "1962-05-23", stored.ReleaseDate.String())

	status, _ = ta.do(t, http.MethodPut, path, map[string]string{"title": "pixote"})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = ta.do(t, http.MethodPut, "/movies/abc", map[string]string{"title": "X"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = ta.do(t, http.MethodPut, path, map[string]string{"release_date": "someday"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMovies_Delete(t *testing.T) {
	ta := newTestApp(t, nil)
	drama := testutil.CreateGenre(t, ta.db, "Drama")
	pt := testutil.CreateLanguage(t, ta.db, "pt", "Portuguese")
	created := testutil.CreateMovie(t, ta.db, "Aquarius", drama, pt, "2016-09-01")

	status, _ := ta.do(t, http.MethodDelete, "/movies/999", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, int64(1), ta.countMovies(t))

	status, body := ta.do(t, http.MethodDelete, fmt.Sprintf("/movies/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Movie deleted successfully", decodeMessage(t, body))
	assert.Equal(t, int64(0), ta.countMovies(t))
}

func TestLanguages_List(t *testing.T) {
	ta := newTestApp(t, nil)
	testutil.CreateLanguage(t, ta.db, "pt", "Portuguese")
	testutil.CreateLanguage(t, ta.db, "en", "English")

	status, body := ta.do(t, http.MethodGet, "/languages", nil)
	require.Equal(t, http.StatusOK, status)

	var languages []models.Language
	require.NoError(t, json.Unmarshal(body, &languages))
	require.Len(t, languages, 2)
	assert.Equal(t, "en", languages[0].Code)
}

func TestUploads_Presign(t *testing.T) {
	disabled := newTestApp(t, nil)
	status, _ := disabled.do(t, http.MethodGet, "/uploads/presign?filename=a.jpg", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)

	ta := newTestApp(t, stubPresigner{})

	status, _ = ta.do(t, http.MethodGet, "/uploads/presign", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := ta.do(t, http.MethodGet, "/uploads/presign?filename=a.png&contentType=image/png", nil)
	require.Equal(t, http.StatusOK, status)
	var resp handlers.PresignResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "http://storage.test/posters/a.png", resp.PublicURL)
	assert.Contains(t, resp.PresignedURL, "type=image/png")

	failing := newTestApp(t, stubPresigner{err: errors.New("boom")})
	status, _ = failing.do(t, http.MethodGet, "/uploads/presign?filename=a.jpg", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
}
