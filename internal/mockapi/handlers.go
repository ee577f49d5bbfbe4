package mockapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/content"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/users"
)

const (
	maxLimit          = 100
	defaultListLimit  = 10
	defaultLanguageID = 1
)

type handlers struct {
	users   *users.Service
	content *content.Store
}

type listParams struct {
	languageID int
	offset     int
	limit      int
}

func parseList(r *http.Request) (listParams, error) {
	p := listParams{languageID: defaultLanguageID, limit: defaultListLimit}
	q := r.URL.Query()
	for _, f := range []struct {
		key string
		dst *int
	}{{"language_id", &p.languageID}, {"offset", &p.offset}, {"limit", &p.limit}} {
		v := q.Get(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return p, errors.New("invalid " + f.key)
		}
		*f.dst = n
	}
	if p.limit == 0 || p.limit > maxLimit {
		p.limit = maxLimit
	}
	return p, nil
}

func userJSON(u *users.User, token string) models.User {
	return models.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Profile:   u.Profile,
		Role:      models.FlexInt(u.Role),
		Status:    models.FlexInt(u.Status),
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: u.UpdatedAt.Format("2006-01-02 15:04:05"),
		Token:     token,
	}
}

/*** identity ***/

func (h *handlers) signUp(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name                 string `json:"name"`
		Email                string `json:"email"`
		Password             string `json:"password"`
		PasswordConfirmation string `json:"password_confirmation"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		fail(w, "invalid json")
		return
	}
	u, token, err := h.users.Register(r.Context(), users.SignUp{
		Name: in.Name, Email: in.Email, Password: in.Password, PasswordConfirmation: in.PasswordConfirmation,
	})
	if err != nil {
		fail(w, userMessage(err))
		return
	}
	ok(w, "User registered successfully", userJSON(u, token))
}

func (h *handlers) signIn(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		fail(w, "invalid json")
		return
	}
	u, token, err := h.users.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		fail(w, userMessage(err))
		return
	}
	ok(w, "User logged in successfully", userJSON(u, token))
}

func (h *handlers) signOut(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r.Context())
	h.users.Logout(claims)
	ok(w, "User logged out successfully", nil)
}

// getUserByID wraps the record twice ({"data":{"data":{...}}}), as the
// production endpoint does.
func (h *handlers) getUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(w, "invalid id")
		return
	}
	u, err := h.users.Get(r.Context(), id)
	if err != nil {
		fail(w, userMessage(err))
		return
	}
	ok(w, "", map[string]any{"data": userJSON(u, "")})
}

func (h *handlers) updateProfile(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name   string `json:"name"`
		Mobile string `json:"mobile"`
		Email  string `json:"email"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		fail(w, "invalid json")
		return
	}
	u, err := h.users.UpdateProfile(r.Context(), userID(r.Context()), users.ProfileUpdate{
		Name: in.Name, Mobile: in.Mobile, Email: in.Email,
	})
	if err != nil {
		fail(w, userMessage(err))
		return
	}
	ok(w, "Profile updated successfully", userJSON(u, ""))
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, users.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, users.ErrEmailTaken):
		return "The email has already been taken."
	case errors.Is(err, users.ErrPasswordMismatch):
		return "The password confirmation does not match."
	case errors.Is(err, users.ErrMissingFields):
		return "Name, email and password are required."
	case errors.Is(err, users.ErrNotFound):
		return "User not found"
	default:
		return "Internal error"
	}
}

/*** content ***/

func (h *handlers) getNews(w http.ResponseWriter, r *http.Request) {
	p, err := parseList(r)
	if err != nil {
		fail(w, err.Error())
		return
	}
	q := r.URL.Query()
	items, total := h.content.News(content.Query{
		LanguageID:   p.languageID,
		Offset:       p.offset,
		Limit:        p.limit,
		CategorySlug: q.Get("category_slug"),
		TagSlug:      q.Get("tag_slug"),
		Search:       q.Get("search"),
		Slug:         q.Get("slug"),
		Headline:     q.Get("is_headline") == "1",
		UserID:       userID(r.Context()),
	})
	okList(w, items, total)
}

// getBreakingNews insists on the slug key, even when empty.
func (h *handlers) getBreakingNews(w http.ResponseWriter, r *http.Request) {
	p, err := parseList(r)
	if err != nil {
		fail(w, err.Error())
		return
	}
	q := r.URL.Query()
	if !q.Has("slug") {
		fail(w, "The slug field must be present.")
		return
	}
	items, total := h.content.BreakingNews(q.Get("slug"), p.offset, p.limit)
	okList(w, items, total)
}

func (h *handlers) getCategories(w http.ResponseWriter, r *http.Request) {
	p, err := parseList(r)
	if err != nil {
		fail(w, err.Error())
		return
	}
	items, total := h.content.Categories(p.offset, p.limit)
	okList(w, items, total)
}

func (h *handlers) getTags(w http.ResponseWriter, r *http.Request) {
	p, err := parseList(r)
	if err != nil {
		fail(w, err.Error())
		return
	}
	items, total := h.content.Tags(p.offset, p.limit)
	okList(w, items, total)
}

func (h *handlers) getFeaturedSections(w http.ResponseWriter, r *http.Request) {
	p, err := parseList(r)
	if err != nil {
		fail(w, err.Error())
		return
	}
	sections, ad := h.content.FeaturedSections(p.languageID, p.offset, p.limit, userID(r.Context()))
	env := envelope{Data: sections}
	if ad != nil {
		env.AdSpaces = ad
	}
	writeJSON(w, http.StatusOK, env)
}

func (h *handlers) getBookmarks(w http.ResponseWriter, r *http.Request) {
	p, err := parseList(r)
	if err != nil {
		fail(w, err.Error())
		return
	}
	items, total := h.content.Bookmarks(userID(r.Context()), p.offset, p.limit)
	okList(w, items, total)
}

/*** actions ***/

func (h *handlers) setNewsView(w http.ResponseWriter, r *http.Request) {
	var in struct {
		NewsID int64 `json:"news_id"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		fail(w, "invalid json")
		return
	}
	if err := h.content.AddNewsView(in.NewsID); err != nil {
		fail(w, "News not found")
		return
	}
	ok(w, "View counted", nil)
}

func (h *handlers) setBreakingNewsView(w http.ResponseWriter, r *http.Request) {
	var in struct {
		BreakingNewsID int64 `json:"breaking_news_id"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		fail(w, "invalid json")
		return
	}
	if err := h.content.AddBreakingNewsView(in.BreakingNewsID); err != nil {
		fail(w, "Breaking news not found")
		return
	}
	ok(w, "View counted", nil)
}

type toggleInput struct {
	NewsID int64 `json:"news_id"`
	Status *int  `json:"status"`
}

func (t toggleInput) valid() bool {
	return t.NewsID > 0 && t.Status != nil && (*t.Status == 0 || *t.Status == 1)
}

func (h *handlers) setLikeDislike(w http.ResponseWriter, r *http.Request) {
	var in toggleInput
	if err := decodeJSON(w, r, &in); err != nil || !in.valid() {
		fail(w, "news_id and status (0 or 1) are required")
		return
	}
	total, err := h.content.SetLike(userID(r.Context()), in.NewsID, *in.Status == 1)
	if err != nil {
		fail(w, "News not found")
		return
	}
	msg := "Unliked"
	if *in.Status == 1 {
		msg = "Liked"
	}
	ok(w, msg, map[string]int{"total_like": total})
}

func (h *handlers) setBookmark(w http.ResponseWriter, r *http.Request) {
	var in toggleInput
	if err := decodeJSON(w, r, &in); err != nil || !in.valid() {
		fail(w, "news_id and status (0 or 1) are required")
		return
	}
	if err := h.content.SetBookmark(userID(r.Context()), in.NewsID, *in.Status == 1); err != nil {
		fail(w, "News not found")
		return
	}
	msg := "Bookmark removed"
	if *in.Status == 1 {
		msg = "Bookmarked"
	}
	ok(w, msg, nil)
}
