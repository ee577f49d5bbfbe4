package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/newsdesk/internal/logging"
)

const (
	KeyToken  = "token"
	KeyUser   = "user"
	KeyMarker = "login_marker"
)

// Store is safe for concurrent use as long as its repository is.
type Store struct {
	repo   metadata.Repository
	logger logging.Logger
}

func NewStore(repo metadata.Repository, logger logging.Logger) *Store {
	return &Store{repo: repo, logger: logger}
}

// Token returns the persisted bearer token. An empty value counts as absent.
func (s *Store) Token(ctx context.Context) (string, bool) {
	v, err := s.repo.Get(ctx, KeyToken)
	if err != nil {
		s.logger.Warn(ctx, "session token unreadable", "error", err)
		return "", false
	}
	if len(v) == 0 {
		return "", false
	}
	return string(v), true
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return s.repo.Set(ctx, KeyToken, []byte(token))
}

func (s *Store) ClearToken(ctx context.Context) error {
	return s.repo.Delete(ctx, KeyToken)
}

// User returns the cached user record. A record may be present without a
// token; it is not guaranteed fresh.
func (s *Store) User(ctx context.Context) (*models.User, bool) {
	var u models.User
	if !s.readJSON(ctx, KeyUser, &u) {
		return nil, false
	}
	return &u, true
}

// SetUser overwrites the cached user record and its login marker.
func (s *Store) SetUser(ctx context.Context, u models.User) error {
	values, err := encodeUser(u)
	if err != nil {
		return err
	}
	return s.repo.SetMany(ctx, values)
}

func (s *Store) Marker(ctx context.Context) (*models.LoginMarker, bool) {
	var m models.LoginMarker
	if !s.readJSON(ctx, KeyMarker, &m) {
		return nil, false
	}
	return &m, true
}

// SetSession replaces token, user record and login marker in one write.
func (s *Store) SetSession(ctx context.Context, token string, u models.User) error {
	if token == "" {
		return ErrEmptyToken
	}
	values, err := encodeUser(u)
	if err != nil {
		return err
	}
	values[KeyToken] = []byte(token)

	if err := s.repo.SetMany(ctx, values); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ClearSession removes token, user record and login marker in one write.
func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.repo.Delete(ctx, KeyToken, KeyUser, KeyMarker); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Session reads token and user record in one repository call, so a
// concurrent SetSession or ClearSession is seen whole or not at all.
func (s *Store) Session(ctx context.Context) models.Session {
	values, err := s.repo.GetMany(ctx, KeyToken, KeyUser)
	if err != nil {
		s.logger.Warn(ctx, "session unreadable", "error", err)
		return models.Session{}
	}

	var out models.Session
	if token := values[KeyToken]; len(token) > 0 {
		out.Token = string(token)
		out.IsLoggedIn = true
	}
	if raw := values[KeyUser]; len(raw) > 0 {
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			s.logger.Warn(ctx, "session record malformed", "key", KeyUser, "error", err)
		} else {
			out.User = &u
		}
	}
	return out
}

func (s *Store) IsLoggedIn(ctx context.Context) bool {
	_, ok := s.Token(ctx)
	return ok
}

func (s *Store) readJSON(ctx context.Context, key string, dst any) bool {
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		s.logger.Warn(ctx, "session record unreadable", "key", key, "error", err)
		return false
	}
	if len(v) == 0 {
		return false
	}
	if err := json.Unmarshal(v, dst); err != nil {
		s.logger.Warn(ctx, "session record malformed", "key", key, "error", err)
		return false
	}
	return true
}

func encodeUser(u models.User) (map[string][]byte, error) {
	user, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	marker, err := json.Marshal(models.MarkerFor(u))
	if err != nil {
		return nil, fmt.Errorf("encode login marker: %w", err)
	}
	return map[string][]byte{KeyUser: user, KeyMarker: marker}, nil
}
