package rosterhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"nippo/internal/domain/auth"
	"nippo/internal/domain/roster"
	"nippo/internal/transport/http/api"
	"nippo/internal/transport/http/middleware"
	"nippo/internal/transport/http/shared"
)

type Handler struct {
	Roster *roster.Store
	Perms  middleware.PermissionStore
}

func NewHandler(store *roster.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Roster: store, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/roster", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermRosterRead, h.Perms)).
			Get("/", h.handleList)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermRosterWrite, h.Perms))
			r.Post("/", h.handleCreate)
			r.Put("/{name}/rate", h.handleUpdateRate)
			r.Delete("/{name}", h.handleDelete)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	members, err := h.Roster.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "roster_failed", "failed to load roster", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, members, middleware.GetRequestID(r.Context()))
}

type createMemberRequest struct {
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourlyRate"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	var issues []shared.ValidationIssue
	if req.Name == "" {
		issues = append(issues, shared.ValidationIssue{Field: "name", Reason: "name is required"})
	}
	if req.HourlyRate <= 0 {
		issues = append(issues, shared.ValidationIssue{Field: "hourlyRate", Reason: "hourly rate must be positive"})
	}
	if len(issues) > 0 {
		shared.FailValidation(w, middleware.GetRequestID(r.Context()), issues)
		return
	}

	if err := h.Roster.Create(r.Context(), req.Name, req.HourlyRate); err != nil {
		if errors.Is(err, roster.ErrExists) {
			api.Fail(w, http.StatusConflict, "member_exists", "a member with this name already exists", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "roster_failed", "failed to create member", middleware.GetRequestID(r.Context()))
		return
	}

	member, err := h.Roster.Get(r.Context(), req.Name)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "roster_failed", "failed to load member", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, member, middleware.GetRequestID(r.Context()))
}

type updateRateRequest struct {
	HourlyRate float64 `json:"hourlyRate"`
}

func memberName(r *http.Request) (string, error) {
	return url.PathUnescape(chi.URLParam(r, "name"))
}

func (h *Handler) handleUpdateRate(w http.ResponseWriter, r *http.Request) {
	name, err := memberName(r)
	if err != nil || name == "" {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid member name", middleware.GetRequestID(r.Context()))
		return
	}

	var req updateRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}
	if req.HourlyRate <= 0 {
		shared.FailValidation(w, middleware.GetRequestID(r.Context()), []shared.ValidationIssue{{Field: "hourlyRate", Reason: "hourly rate must be positive"}})
		return
	}

	if err := h.Roster.UpdateRate(r.Context(), name, req.HourlyRate); err != nil {
		if errors.Is(err, roster.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "member not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "roster_failed", "failed to update member", middleware.GetRequestID(r.Context()))
		return
	}

	member, err := h.Roster.Get(r.Context(), name)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "roster_failed", "failed to load member", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, member, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	name, err := memberName(r)
	if err != nil || name == "" {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid member name", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Roster.Delete(r.Context(), name); err != nil {
		if errors.Is(err, roster.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "member not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "roster_failed", "failed to delete member", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"name": name}, middleware.GetRequestID(r.Context()))
}
