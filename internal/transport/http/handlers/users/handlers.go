package usershandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"nippo/internal/domain/auth"
	"nippo/internal/transport/http/api"
	"nippo/internal/transport/http/middleware"
	"nippo/internal/transport/http/shared"
)

type Handler struct {
	Store *auth.Store
	Perms middleware.PermissionStore
}

func NewHandler(store *auth.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Store: store, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermUsersManage, h.Perms))
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.ListUsers(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "users_failed", "failed to load users", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, users, middleware.GetRequestID(r.Context()))
}

type createUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	var issues []shared.ValidationIssue
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		issues = append(issues, shared.ValidationIssue{Field: "email", Reason: "a valid email is required"})
	}
	if req.Name == "" {
		issues = append(issues, shared.ValidationIssue{Field: "name", Reason: "name is required"})
	}
	if _, ok := auth.RolePermissions[req.Role]; !ok {
		issues = append(issues, shared.ValidationIssue{Field: "role", Reason: "unknown role"})
	}
	if len(req.Password) < 8 {
		issues = append(issues, shared.ValidationIssue{Field: "password", Reason: "password must be at least 8 characters"})
	}
	if len(issues) > 0 {
		shared.FailValidation(w, middleware.GetRequestID(r.Context()), issues)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "users_failed", "failed to create user", middleware.GetRequestID(r.Context()))
		return
	}

	id := uuid.NewString()
	if err := h.Store.CreateUser(r.Context(), id, req.Email, req.Name, req.Role, hash); err != nil {
		api.Fail(w, http.StatusConflict, "user_exists", "a user with this email already exists", middleware.GetRequestID(r.Context()))
		return
	}

	api.Created(w, map[string]string{
		"id":    id,
		"email": req.Email,
		"name":  req.Name,
		"role":  req.Role,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid user id", middleware.GetRequestID(r.Context()))
		return
	}

	// Nobody gets to delete their own account, admins included.
	if user, ok := middleware.GetUser(r.Context()); ok && user.UserID == id {
		api.Fail(w, http.StatusForbidden, "forbidden", "cannot delete your own account", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Store.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "user not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "users_failed", "failed to delete user", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}
