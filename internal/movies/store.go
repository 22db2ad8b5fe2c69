package movies

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Store when no movie has the requested id.
var ErrNotFound = errors.New("movie not found")

// Store provides read access to the movie catalog.
type Store interface {
	// FindAll returns every movie in the catalog, ordered by ascending id.
	FindAll(ctx context.Context) ([]Movie, error)

	// FindByID returns the movie with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (Movie, error)
}
