package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService() *Service {
	return NewService(NewMemoryRepository(), []byte("test-secret"), time.Hour)
}

func register(t *testing.T, s *Service, email string) (*User, string) {
	t.Helper()
	u, tok, err := s.Register(context.Background(), SignUp{
		Name: "Ann", Email: email, Password: "pw", PasswordConfirmation: "pw",
	})
	require.NoError(t, err)
	return u, tok
}

func TestRegister_HashesPasswordAndIssuesToken(t *testing.T) {
	s := newService()
	u, tok := register(t, s, "ann@example.com")

	assert.Equal(t, int64(1), u.ID)
	assert.NotEmpty(t, tok)
	assert.NoError(t, bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("pw")))

	claims, err := s.Authenticate(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestRegister_Validation(t *testing.T) {
	s := newService()
	ctx := context.Background()

	_, _, err := s.Register(ctx, SignUp{Name: "A", Email: "a@x", Password: "1", PasswordConfirmation: "2"})
	require.ErrorIs(t, err, ErrPasswordMismatch)

	_, _, err = s.Register(ctx, SignUp{Email: "a@x", Password: "1", PasswordConfirmation: "1"})
	require.ErrorIs(t, err, ErrMissingFields)

	register(t, s, "a@x")
	_, _, err = s.Register(ctx, SignUp{Name: "B", Email: "A@X", Password: "1", PasswordConfirmation: "1"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	s := newService()
	ctx := context.Background()
	u, _ := register(t, s, "ann@example.com")

	got, tok, err := s.Login(ctx, "ann@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.NotEmpty(t, tok)

	_, _, err = s.Login(ctx, "ann@example.com", "bad")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = s.Login(ctx, "nobody@example.com", "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_RevokesOnlyThatToken(t *testing.T) {
	s := newService()
	_, first := register(t, s, "ann@example.com")
	_, second, err := s.Login(context.Background(), "ann@example.com", "pw")
	require.NoError(t, err)

	claims, err := s.Authenticate(first)
	require.NoError(t, err)
	s.Logout(claims)

	_, err = s.Authenticate(first)
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = s.Authenticate(second)
	require.NoError(t, err)
}

func TestAuthenticate_Garbage(t *testing.T) {
	_, err := newService().Authenticate("garbage")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateProfile(t *testing.T) {
	s := newService()
	ctx := context.Background()
	u, _ := register(t, s, "ann@example.com")
	register(t, s, "bob@example.com")

	got, err := s.UpdateProfile(ctx, u.ID, ProfileUpdate{Name: "Anna", Mobile: "555", Email: "anna@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.Name)
	assert.Equal(t, "555", got.Mobile)
	assert.Equal(t, "anna@example.com", got.Email)

	_, _, err = s.Login(ctx, "anna@example.com", "pw")
	require.NoError(t, err)

	_, err = s.UpdateProfile(ctx, u.ID, ProfileUpdate{Email: "bob@example.com"})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = s.UpdateProfile(ctx, 999, ProfileUpdate{Name: "x"})
	require.ErrorIs(t, err, ErrNotFound)
}
