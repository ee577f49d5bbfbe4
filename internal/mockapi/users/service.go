// Package users implements the mock API's accounts: registration, password
// sign-in with bcrypt, bearer tokens and per-token revocation on sign-out.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/newsdesk/internal/mockapi/auth"
)

type Service struct {
	repo                        Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration

	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewService(repo Repository, jwtSecret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		repo:                        repo,
		jwtSecret:                   jwtSecret,
		accessTokenValidityDuration: tokenTTL,
		revoked:                     make(map[string]time.Time),
	}
}

type SignUp struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// Register creates the user and signs them in.
func (s *Service) Register(ctx context.Context, in SignUp) (*User, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, "", ErrMissingFields
	}
	if in.Password != in.PasswordConfirmation {
		return nil, "", ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{Name: in.Name, Email: in.Email, PasswordHash: hash, Status: 1})
	if err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login returns ErrInvalidCredentials for both unknown emails and wrong
// passwords.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate resolves a bearer token to its claims, rejecting revoked ones.
func (s *Service) Authenticate(token string) (*auth.Claims, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, ErrUnauthorized
	}

	s.mu.Lock()
	_, revoked := s.revoked[claims.ID]
	s.mu.Unlock()
	if revoked {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// Logout revokes the token until it would have expired anyway.
func (s *Service) Logout(claims *auth.Claims) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, id)
		}
	}
	exp := now.Add(s.accessTokenValidityDuration)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	s.revoked[claims.ID] = exp
}

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

type ProfileUpdate struct {
	Name   string
	Mobile string
	Email  string
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, in ProfileUpdate) (*User, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n := strings.TrimSpace(in.Name); n != "" {
		cur.Name = n
	}
	if e := strings.TrimSpace(in.Email); e != "" {
		cur.Email = e
	}
	cur.Mobile = strings.TrimSpace(in.Mobile)
	return s.repo.Update(ctx, cur)
}
