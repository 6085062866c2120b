package users

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/userdesk/internal/platform/httpx"
)

// ServicePort is the behaviour Handler needs from Service.
type ServicePort interface {
	ListUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, in CreateInput) (User, error)
	UpdateUser(ctx context.Context, in UpdateInput) (User, error)
	DeleteUser(ctx context.Context, in DeleteInput) error
}

// Handler manages user management endpoints.
type Handler struct {
	logger  *slog.Logger
	service ServicePort
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service ServicePort) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers user routes. Each path accepts exactly one method.
func (h *Handler) MountRoutes(r chi.Router) {
	r.HandleFunc("/", httpx.AllowOnly(http.MethodGet, h.listUsers))
	r.HandleFunc("/create", httpx.AllowOnly(http.MethodPost, h.createUser))
	r.HandleFunc("/update", httpx.AllowOnly(http.MethodPut, h.updateUser))
	r.HandleFunc("/delete", httpx.AllowOnly(http.MethodDelete, h.deleteUser))
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.fail(w, "list users failed", err, "Failed to fetch users")
		return
	}
	httpx.JSON(w, http.StatusOK, users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		httpx.RespondError(w, err, "")
		return
	}
	user, err := h.service.CreateUser(r.Context(), in)
	if err != nil {
		h.fail(w, "create user failed", err, "Failed to create user")
		return
	}
	httpx.JSON(w, http.StatusCreated, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var in UpdateInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		httpx.RespondError(w, err, "")
		return
	}
	user, err := h.service.UpdateUser(r.Context(), in)
	if err != nil {
		h.fail(w, "update user failed", err, "Failed to update user")
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	var in DeleteInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		httpx.RespondError(w, err, "")
		return
	}
	if err := h.service.DeleteUser(r.Context(), in); err != nil {
		h.fail(w, "delete user failed", err, "Failed to delete user")
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) fail(w http.ResponseWriter, msg string, err error, fallback string) {
	if !errors.Is(err, httpx.ErrValidation) && !errors.Is(err, httpx.ErrNotFound) {
		h.logger.Error(msg, slog.Any("error", err))
	}
	httpx.RespondError(w, err, fallback)
}
