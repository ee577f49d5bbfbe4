package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/repositories/favorites"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
)

const FavoritesPageSize = 50

// FavoritesService keys favorites by the signed-in user's id. It is a
// separate store from API bookmarks and never syncs with them.
type FavoritesService struct {
	repo  favorites.Repository
	store *session.Store
	now   func() time.Time
}

func NewFavoritesService(repo favorites.Repository, store *session.Store) *FavoritesService {
	return &FavoritesService{repo: repo, store: store, now: time.Now}
}

func (s *FavoritesService) Add(ctx context.Context, n models.News) error {
	uid, err := s.userID(ctx)
	if err != nil {
		return err
	}
	f := models.Favorite{
		UserID:    uid,
		NewsID:    n.ID,
		Title:     n.Title,
		Slug:      n.Slug,
		Image:     n.Image,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Add(ctx, f); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (s *FavoritesService) Remove(ctx context.Context, newsID int64) error {
	uid, err := s.userID(ctx)
	if err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, uid, newsID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// List returns one page of favorites, newest first. offset < 0 counts as 0.
func (s *FavoritesService) List(ctx context.Context, offset int) ([]models.Favorite, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.repo.List(ctx, uid, FavoritesPageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return items, nil
}

func (s *FavoritesService) Contains(ctx context.Context, newsID int64) (bool, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return false, err
	}
	return s.repo.Contains(ctx, uid, newsID)
}

func (s *FavoritesService) userID(ctx context.Context) (int64, error) {
	if !s.store.IsLoggedIn(ctx) {
		return 0, ErrNotSignedIn
	}
	u, ok := s.store.User(ctx)
	if !ok || u.ID == 0 {
		return 0, ErrNotSignedIn
	}
	return u.ID, nil
}
