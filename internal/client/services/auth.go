package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
	"github.com/dmitrijs2005/newsdesk/internal/logging"
)

const (
	pathSignUp        = "user_signup"
	pathSignIn        = "user_signin"
	pathSignOut       = "user_signout"
	pathUserByID      = "get_user_by_id"
	pathUpdateProfile = "update_profile"
)

type SignUpInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type ProfileUpdate struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
}

type signInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService runs the identity endpoints and owns the session lifecycle:
// sign-up and sign-in persist token, user and login marker together, sign-out
// clears them, and each of the three notifies subscribers exactly once.
//
// Concurrent identity calls race; the last one to finish wins.
type AuthService struct {
	exec     client.Executor
	store    *session.Store
	notifier *session.Notifier
	logger   logging.Logger
}

func NewAuthService(exec client.Executor, store *session.Store, notifier *session.Notifier, logger logging.Logger) *AuthService {
	return &AuthService{exec: exec, store: store, notifier: notifier, logger: logger}
}

// SignUp expects in.Password == in.PasswordConfirmation; it does not check.
func (a *AuthService) SignUp(ctx context.Context, in SignUpInput) client.Result[models.User] {
	return a.establish(ctx, "sign-up", a.exec.Execute(ctx, client.Post(pathSignUp, in)))
}

func (a *AuthService) SignIn(ctx context.Context, email, password string) client.Result[models.User] {
	body := signInInput{Email: email, Password: password}
	return a.establish(ctx, "sign-in", a.exec.Execute(ctx, client.Post(pathSignIn, body)))
}

// establish persists the session carried by a sign-up or sign-in response.
// These endpoints return the user record, token included, directly under
// "data".
func (a *AuthService) establish(ctx context.Context, op string, raw client.Result[*client.Payload]) client.Result[models.User] {
	res := client.DecodeData[models.User](raw)
	if !res.Success {
		return res
	}
	if res.Data.Token == "" {
		return client.Result[models.User]{
			Error:   fmt.Sprintf("%s response carries no token", op),
			Kind:    client.KindRemote,
			Status:  res.Status,
			Payload: res.Payload,
		}
	}

	if err := a.store.SetSession(ctx, res.Data.Token, res.Data); err != nil {
		a.logger.Error(ctx, "session not persisted", "op", op, "error", err)
		return client.Result[models.User]{Error: err.Error(), Kind: client.KindLocal, Status: res.Status, Payload: res.Payload}
	}

	a.logger.Info(ctx, "signed in", "op", op, "user_id", res.Data.ID)
	a.notify(ctx)
	return res
}

// SignOut tells the API first, then clears the local session whatever the
// API answered. The returned Result is the API's, unless clearing failed.
func (a *AuthService) SignOut(ctx context.Context) client.Result[struct{}] {
	remote := client.Discard(a.exec.Execute(ctx, client.Post(pathSignOut, struct{}{})))
	if !remote.Success {
		a.logger.Warn(ctx, "remote sign-out failed", "error", remote.Error)
	}

	if err := a.store.ClearSession(ctx); err != nil {
		a.logger.Error(ctx, "session not cleared", "error", err)
		a.notify(ctx)
		return client.Result[struct{}]{Error: err.Error(), Kind: client.KindLocal}
	}

	a.logger.Info(ctx, "signed out")
	a.notify(ctx)
	return remote
}

// GetUserByID wraps the record in a second "data" level on some API
// versions, so it prefers data.data.
func (a *AuthService) GetUserByID(ctx context.Context, id int64) client.Result[models.User] {
	q := client.NewQuery().Set("id", id)
	return client.DecodeNestedData[models.User](a.exec.Execute(ctx, client.Get(pathUserByID, q)))
}

// UpdateProfile leaves the cached user record untouched. Callers refresh
// it with RefreshUser when they want the new values persisted.
func (a *AuthService) UpdateProfile(ctx context.Context, in ProfileUpdate) client.Result[models.User] {
	return client.DecodeNestedData[models.User](a.exec.Execute(ctx, client.Post(pathUpdateProfile, in)))
}

// RefreshUser overwrites the cached user record and login marker with u.
// It keeps the current token and does not notify.
func (a *AuthService) RefreshUser(ctx context.Context, u models.User) error {
	if !a.store.IsLoggedIn(ctx) {
		return session.ErrNoSession
	}
	return a.store.SetUser(ctx, u)
}

// IsAuthenticated reports a non-empty stored token. The catalog does not
// gate calls on it; the API rejects unauthenticated ones.
func (a *AuthService) IsAuthenticated(ctx context.Context) bool {
	return a.store.IsLoggedIn(ctx)
}

func (a *AuthService) Session(ctx context.Context) models.Session {
	return a.store.Session(ctx)
}

func (a *AuthService) notify(ctx context.Context) {
	a.logger.Debug(ctx, "broadcast", "event", session.EventSessionChanged)
	a.notifier.Notify()
}
