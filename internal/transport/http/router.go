package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sociagram_22520074/internal/handler"
	"sociagram_22520074/internal/httputil"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	CategoryHandler     *handler.CategoryHandler
	UserHandler         *handler.UserHandler
	DiscoverHandler     *handler.DiscoverHandler
	FollowHandler       *handler.FollowHandler
	InteractionHandler  *handler.InteractionHandler
	NotificationHandler *handler.NotificationHandler
	AdminHandler        *handler.AdminHandler
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", cfg.CategoryHandler.List)

		r.Get("/users", cfg.UserHandler.List)
		r.Get("/user/{username}", cfg.UserHandler.GetProfile)
		r.Get("/user/{username}/posts", cfg.UserHandler.GetPosts)
		r.Get("/search/users", cfg.UserHandler.Search)

		// Ranked read paths
		r.Get("/suggestions/{username}", cfg.DiscoverHandler.Suggestions)
		r.Get("/explore/{username}", cfg.DiscoverHandler.Explore)

		// Relationship mutators (idempotent)
		r.Post("/follow", cfg.FollowHandler.Follow)
		r.Post("/unfollow", cfg.FollowHandler.Unfollow)
		r.Get("/isfollowing/{follower}/{following}", cfg.FollowHandler.IsFollowing)

		r.Post("/like", cfg.InteractionHandler.Like)
		r.Post("/unlike", cfg.InteractionHandler.Unlike)
		r.Post("/share", cfg.InteractionHandler.Share)
		r.Post("/unshare", cfg.InteractionHandler.Unshare)

		r.Get("/notifications/{username}", cfg.NotificationHandler.GetRecent)
		r.Post("/notifications/{username}/read", cfg.NotificationHandler.MarkAllRead)

		// Seeding and inspection endpoints
		r.Route("/admin", func(r chi.Router) {
			r.Post("/user", cfg.AdminHandler.CreateUser)
			r.Post("/post", cfg.AdminHandler.CreatePost)
			r.Post("/follow", cfg.AdminHandler.CreateFollow)
			r.Post("/like", cfg.AdminHandler.CreateLike)

			r.Get("/posts", cfg.AdminHandler.ListPosts)
			r.Get("/follows", cfg.AdminHandler.ListFollows)
			r.Get("/likes", cfg.AdminHandler.ListLikes)

			r.Delete("/user/{username}", cfg.AdminHandler.DeleteUser)
			r.Delete("/post/{postId}", cfg.AdminHandler.DeletePost)
		})
	})

	return r
}
