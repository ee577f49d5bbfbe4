package mockapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/newsdesk/internal/logging"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/content"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/users"
)

type response struct {
	status int
	Error  bool            `json:"error"`
	Msg    string          `json:"message"`
	Data   json.RawMessage `json:"data"`
	Total  *int            `json:"total"`
	Ads    json.RawMessage `json:"ad_spaces"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	us := users.NewService(users.NewMemoryRepository(), []byte("test"), time.Hour)
	srv := httptest.NewServer(NewRouter(us, content.Seeded(), logging.NewNop(), []string{"*"}))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any) response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	out.status = resp.StatusCode
	return out
}

func signUp(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()
	res := call(t, srv, http.MethodPost, "/api/user_signup", "", map[string]string{
		"name": "Ann", "email": email, "password": "pw", "password_confirmation": "pw",
	})
	require.False(t, res.Error, res.Msg)
	var u struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &u))
	require.NotEmpty(t, u.Token)
	return u.Token
}

func TestSignIn_InvalidCredentialsIsHTTP200WithErrorFlag(t *testing.T) {
	srv := newTestServer(t)
	res := call(t, srv, http.MethodPost, "/api/user_signin", "", map[string]string{"email": "x@y", "password": "z"})
	assert.Equal(t, http.StatusOK, res.status)
	assert.True(t, res.Error)
	assert.Equal(t, "Invalid credentials", res.Msg)
}

func TestSignUpSignInSignOut(t *testing.T) {
	srv := newTestServer(t)
	token := signUp(t, srv, "ann@example.com")

	res := call(t, srv, http.MethodPost, "/api/user_signin", "", map[string]string{"email": "ann@example.com", "password": "pw"})
	require.False(t, res.Error)

	res = call(t, srv, http.MethodPost, "/api/user_signout", token, nil)
	require.False(t, res.Error)

	res = call(t, srv, http.MethodPost, "/api/user_signout", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.status, "revoked token")
}

func TestProtectedEndpointsNeedBearer(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/api/set_bookmark", "/api/set_like_dislike", "/api/update_profile", "/api/user_signout"} {
		res := call(t, srv, http.MethodPost, path, "", map[string]any{"news_id": 1, "status": 1})
		assert.Equal(t, http.StatusUnauthorized, res.status, path)
		assert.True(t, res.Error, path)
	}
	res := call(t, srv, http.MethodGet, "/api/get_bookmark", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.status)

	res = call(t, srv, http.MethodGet, "/api/get_bookmark", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, res.status, "bad token on a gated endpoint")
}

func TestStaleTokenIsAnonymousOnPublicEndpoints(t *testing.T) {
	srv := newTestServer(t)
	signUp(t, srv, "ann@example.com")

	res := call(t, srv, http.MethodGet, "/api/get_news?language_id=1&offset=0&limit=10", "stale.token.value", nil)
	assert.Equal(t, http.StatusOK, res.status)
	assert.False(t, res.Error, res.Msg)

	res = call(t, srv, http.MethodPost, "/api/user_signin", "stale.token.value", map[string]string{"email": "ann@example.com", "password": "pw"})
	assert.Equal(t, http.StatusOK, res.status)
	assert.False(t, res.Error, res.Msg)
}

func TestBreakingNewsRequiresSlugKey(t *testing.T) {
	srv := newTestServer(t)

	res := call(t, srv, http.MethodGet, "/api/get_breaking_news?language_id=1&offset=0&limit=10&is_headline=1", "", nil)
	assert.True(t, res.Error)

	res = call(t, srv, http.MethodGet, "/api/get_breaking_news?language_id=1&offset=0&limit=10&slug=&is_headline=1", "", nil)
	require.False(t, res.Error)
	require.NotNil(t, res.Total)
	assert.Equal(t, 3, *res.Total)
}

func TestFeaturedSectionsCarryAdSpaces(t *testing.T) {
	srv := newTestServer(t)
	res := call(t, srv, http.MethodGet, "/api/get_featured_sections?language_id=1&offset=0&limit=10", "", nil)
	require.False(t, res.Error)
	assert.NotEmpty(t, res.Ads)
}

func TestBookmarkFlow(t *testing.T) {
	srv := newTestServer(t)
	token := signUp(t, srv, "ann@example.com")

	res := call(t, srv, http.MethodPost, "/api/set_bookmark", token, map[string]any{"news_id": 2, "status": 1})
	require.False(t, res.Error, res.Msg)

	res = call(t, srv, http.MethodGet, "/api/get_bookmark?language_id=1&offset=0&limit=10", token, nil)
	require.False(t, res.Error)
	assert.Equal(t, 1, *res.Total)

	res = call(t, srv, http.MethodPost, "/api/set_bookmark", token, map[string]any{"news_id": 2, "status": 0})
	require.False(t, res.Error)

	res = call(t, srv, http.MethodGet, "/api/get_bookmark", token, nil)
	assert.Equal(t, 0, *res.Total)

	res = call(t, srv, http.MethodPost, "/api/set_bookmark", token, map[string]any{"news_id": 2, "status": 5})
	assert.True(t, res.Error)
}

func TestGetUserByIDIsDoubleWrapped(t *testing.T) {
	srv := newTestServer(t)
	signUp(t, srv, "ann@example.com")

	res := call(t, srv, http.MethodGet, "/api/get_user_by_id?id=1", "", nil)
	require.False(t, res.Error)
	var wrapped struct {
		Data struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &wrapped))
	assert.Equal(t, "ann@example.com", wrapped.Data.Email)
}

func TestInvalidListParams(t *testing.T) {
	srv := newTestServer(t)
	res := call(t, srv, http.MethodGet, "/api/get_news?limit=abc", "", nil)
	assert.True(t, res.Error)
	assert.Equal(t, "invalid limit", res.Msg)
}
