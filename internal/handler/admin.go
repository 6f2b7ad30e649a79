package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sociagram_22520074/internal/httputil"
	"sociagram_22520074/internal/model"
	"sociagram_22520074/internal/service"
)

// AdminHandler serves the unauthenticated seeding and inspection endpoints.
type AdminHandler struct {
	adminService  *service.AdminService
	userService   *service.UserService
	followService *service.FollowService
	postService   *service.PostService
}

func NewAdminHandler(
	adminService *service.AdminService,
	userService *service.UserService,
	followService *service.FollowService,
	postService *service.PostService,
) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		userService:   userService,
		followService: followService,
		postService:   postService,
	}
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userService.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidUsername),
			errors.Is(err, model.ErrNoCategories),
			errors.Is(err, model.ErrUnknownCategory):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrUsernameExists):
			httputil.WriteConflict(w, "Username already exists")
		default:
			log.Printf("[ERROR] CreateUser handler: %v", err)
			httputil.WriteInternalError(w, "Failed to create user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, user)
}

func (h *AdminHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	post, err := h.adminService.CreatePost(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.Printf("[ERROR] CreatePost handler: %v", err)
			httputil.WriteInternalError(w, "Failed to create post")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, post)
}

func (h *AdminHandler) CreateFollow(w http.ResponseWriter, r *http.Request) {
	var req model.FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.Follower == "" || req.Following == "" {
		httputil.WriteBadRequest(w, "follower and following are required")
		return
	}

	if err := h.followService.Follow(r.Context(), req.Follower, req.Following); err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.Printf("[ERROR] CreateFollow handler: %v", err)
			httputil.WriteInternalError(w, "Failed to create follow")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Follow created",
	})
}

func (h *AdminHandler) CreateLike(w http.ResponseWriter, r *http.Request) {
	var req model.InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.Username == "" || req.PostID == "" {
		httputil.WriteBadRequest(w, "username and postId are required")
		return
	}

	postID, err := service.ParsePostID(req.PostID)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	if err := h.postService.Like(r.Context(), req.Username, postID); err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		default:
			log.Printf("[ERROR] CreateLike handler: %v", err)
			httputil.WriteInternalError(w, "Failed to create like")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Like created",
	})
}

func (h *AdminHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.adminService.ListPosts(r.Context())
	if err != nil {
		log.Printf("[ERROR] Admin ListPosts handler: %v", err)
		httputil.WriteInternalError(w, "Failed to list posts")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
	})
}

func (h *AdminHandler) ListFollows(w http.ResponseWriter, r *http.Request) {
	follows, err := h.adminService.ListFollows(r.Context())
	if err != nil {
		log.Printf("[ERROR] Admin ListFollows handler: %v", err)
		httputil.WriteInternalError(w, "Failed to list follows")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"follows": follows,
	})
}

func (h *AdminHandler) ListLikes(w http.ResponseWriter, r *http.Request) {
	likes, err := h.adminService.ListLikes(r.Context())
	if err != nil {
		log.Printf("[ERROR] Admin ListLikes handler: %v", err)
		httputil.WriteInternalError(w, "Failed to list likes")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"likes": likes,
	})
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.userService.Delete(r.Context(), username); err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.Printf("[ERROR] DeleteUser handler: %v", err)
			httputil.WriteInternalError(w, "Failed to delete user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "User deleted",
	})
}

func (h *AdminHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := service.ParsePostID(chi.URLParam(r, "postId"))
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	if err := h.adminService.DeletePost(r.Context(), postID); err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		default:
			log.Printf("[ERROR] DeletePost handler: %v", err)
			httputil.WriteInternalError(w, "Failed to delete post")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Post deleted",
	})
}
