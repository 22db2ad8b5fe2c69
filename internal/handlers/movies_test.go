package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dannyrandall/moviecatalog/internal/movies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	movies []movies.Movie
	err    error
}

func (f *fakeStore) FindAll(ctx context.Context) ([]movies.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.movies, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id int64) (movies.Movie, error) {
	if f.err != nil {
		return movies.Movie{}, f.err
	}
	for _, m := range f.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return movies.Movie{}, movies.ErrNotFound
}

var testCatalog = []movies.Movie{
	{
		ID:          1,
		Title:       "The Color Purple",
		Year:        1985,
		Length:      154,
		Director:    "Steven Spielberg",
		Description: "Whoopi Goldberg brings Alice Walker's Pulitzer Prize-winning feminist novel to life as Celie, a Southern woman who suffered abuse over decades.",
		PosterURL:   "https://posters.example.com/the-color-purple.jpg",
		Category:    "Drama",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	},
	{
		ID:             2,
		Title:          "Clueless",
		Year:           1995,
		Length:         97,
		Director:       "Amy Heckerling",
		Description:    "A rich Beverly Hills teen plays matchmaker.",
		PosterURL:      "https://posters.example.com/clueless.jpg",
		Category:       "Comedy",
		Discount:       true,
		FemaleDirector: true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	},
}

// catalogMux mirrors the route registration in the server mains.
func catalogMux(h *Movies) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/movies", http.HandlerFunc(h.List))
	mux.Handle("/movies/", http.HandlerFunc(h.Get))
	mux.Handle("/movie_summaries", http.HandlerFunc(h.ListSummaries))
	return mux
}

func get(t *testing.T, h *Movies, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	catalogMux(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestList(t *testing.T) {
	h := &Movies{Store: &fakeStore{movies: testCatalog}}

	w := get(t, h, "/movies")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got []movies.FullMovie
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, len(testCatalog))
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, "Clueless", got[1].Title)

	assert.NotContains(t, w.Body.String(), "createdAt")
	assert.NotContains(t, w.Body.String(), "updatedAt")
}

func TestList_EmptyCatalog(t *testing.T) {
	h := &Movies{Store: &fakeStore{}}

	w := get(t, h, "/movies")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestList_StoreError(t *testing.T) {
	h := &Movies{Store: &fakeStore{err: errors.New("table missing")}}

	w := get(t, h, "/movies")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "table missing")
}

func TestGet(t *testing.T) {
	h := &Movies{Store: &fakeStore{movies: testCatalog}}

	w := get(t, h, "/movies/2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	want, err := json.Marshal(movies.Full(testCatalog[1]))
	require.NoError(t, err)
	assert.JSONEq(t, string(want), w.Body.String())
}

func TestGet_Summary(t *testing.T) {
	h := &Movies{Store: &fakeStore{movies: testCatalog}}

	w := get(t, h, "/movies/1/summary")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"summary": "The Color Purple - Whoopi Goldberg brings Alice Walker's Pulitzer Pri..."}`,
		w.Body.String())
}

func TestGet_NotFound(t *testing.T) {
	h := &Movies{Store: &fakeStore{movies: testCatalog}}

	for _, path := range []string{"/movies/99", "/movies/99/summary", "/movies/abc", "/movies/1.5"} {
		w := get(t, h, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"), path)
		assert.JSONEq(t, `{"error": "Movie not found"}`, w.Body.String(), path)
	}
}

func TestGet_UnknownSubpath(t *testing.T) {
	h := &Movies{Store: &fakeStore{movies: testCatalog}}

	w := get(t, h, "/movies/1/poster")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "summary")
}

func TestListSummaries(t *testing.T) {
	h := &Movies{Store: &fakeStore{movies: testCatalog}}

	w := get(t, h, "/movie_summaries")
	require.Equal(t, http.StatusOK, w.Code)

	var got []movies.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "The Color Purple - Whoopi Goldberg brings Alice Walker's Pulitzer Pri...", got[0].Summary)
	assert.Equal(t, "Clueless - A rich Beverly Hills teen plays matchmaker....", got[1].Summary)
}

func TestListSummaries_EmptyCatalog(t *testing.T) {
	h := &Movies{Store: &fakeStore{}}

	w := get(t, h, "/movie_summaries")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestNonGetMethods(t *testing.T) {
	h := &Movies{Store: &fakeStore{movies: testCatalog}}
	mux := catalogMux(h)

	for _, path := range []string{"/movies", "/movies/1", "/movies/1/summary", "/movie_summaries"} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}
