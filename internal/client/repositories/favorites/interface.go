// Package favorites stores the user's pinned stories in the hosted
// PostgreSQL database that runs beside the news API. It is a parallel data
// source: favorites never touch API bookmarks.
package favorites

import (
	"context"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

type Repository interface {
	// Add inserts a favorite, refreshing title/slug/image if it exists.
	Add(ctx context.Context, f models.Favorite) error
	// Remove deletes a favorite; removing a missing one is not an error.
	Remove(ctx context.Context, userID, newsID int64) error
	// List returns the user's favorites, newest first.
	List(ctx context.Context, userID int64, limit, offset int) ([]models.Favorite, error)
	Contains(ctx context.Context, userID, newsID int64) (bool, error)
}
