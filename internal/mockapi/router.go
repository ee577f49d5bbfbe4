// Package mockapi is an in-memory double of the upstream news API for
// development and integration tests. It follows the production envelope
// conventions: {"error": bool, "message": ..., "data": ...}, business
// failures as HTTP 200 with "error": true, 401 when a gated endpoint
// lacks a valid bearer token.
package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/newsdesk/internal/logging"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/content"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/users"
)

const APIPrefix = "/api"

// NewRouter mounts every endpoint under APIPrefix.
func NewRouter(us *users.Service, cs *content.Store, logger logging.Logger, corsOrigins []string) http.Handler {
	h := &handlers{users: us, content: cs}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		// Clients authenticate with the bearer header only.
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route(APIPrefix, func(r chi.Router) {
		r.Use(authenticate(us))

		r.Post("/user_signup", h.signUp)
		r.Post("/user_signin", h.signIn)
		r.Get("/get_user_by_id", h.getUserByID)

		r.Get("/get_news", h.getNews)
		r.Get("/get_breaking_news", h.getBreakingNews)
		r.Get("/get_category", h.getCategories)
		r.Get("/get_tag", h.getTags)
		r.Get("/get_featured_sections", h.getFeaturedSections)
		r.Post("/set_news_view", h.setNewsView)
		r.Post("/set_breaking_news_view", h.setBreakingNewsView)

		r.Group(func(r chi.Router) {
			r.Use(requireUser)
			r.Post("/user_signout", h.signOut)
			r.Post("/update_profile", h.updateProfile)
			r.Post("/set_like_dislike", h.setLikeDislike)
			r.Post("/set_bookmark", h.setBookmark)
			r.Get("/get_bookmark", h.getBookmarks)
		})
	})

	return r
}
