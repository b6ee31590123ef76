package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/middleware"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/problem"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/users"
)

type AdminUsersHandler struct {
	Service *users.Service
	Env     string
}

func NewAdminUsersHandler(service *users.Service, env string) *AdminUsersHandler {
	return &AdminUsersHandler{Service: service, Env: env}
}

func (h *AdminUsersHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", nil, h.Env)
		return
	}

	list, err := h.Service.List(r.Context())
	if err != nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *AdminUsersHandler) Invite(w http.ResponseWriter, r *http.Request) {
	var input users.InviteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, h.Env)
		return
	}

	user, err := h.Service.Invite(r.Context(), input, actorName(r), clientIP(r))
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			problem.Write(w, r, http.StatusConflict, problem.TypeConflict, "Conflict", err, h.Env)
			return
		}
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, h.Env)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

func (h *AdminUsersHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(pathParam(r, "id"))
	if id == "" {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", nil, h.Env,
			problem.WithDetail("missing user id"))
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, h.Env)
		return
	}

	user, err := h.Service.UpdateRole(r.Context(), id, req.Role, actorName(r), clientIP(r))
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			problem.Write(w, r, http.StatusNotFound, problem.TypeNotFound, "Not found", err, h.Env)
			return
		}
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// actorName identifies the caller for the audit trail, falling back to the
// token subject when no email claim is present.
func actorName(r *http.Request) string {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return "unknown"
	}
	if claims.Email != "" {
		return claims.Email
	}
	return claims.Subject
}
