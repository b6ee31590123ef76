package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/middleware"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/problem"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/audit"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/auth"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/users"
)

type AuthHandler struct {
	Users *users.Service
	JWT   *auth.JWTManager
	Trail *audit.Trail
	Env   string
}

func NewAuthHandler(service *users.Service, jwt *auth.JWTManager, trail *audit.Trail, env string) *AuthHandler {
	return &AuthHandler{Users: service, JWT: jwt, Trail: trail, Env: env}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  users.User `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Users == nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", nil, h.Env)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, h.Env)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request",
			users.ErrInvalidCredentials, h.Env, problem.WithDetail("email is required"))
		return
	}

	user, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			h.Trail.Failure("Failed Login", req.Email, "self-service login", clientIP(r), nil)
			problem.Write(w, r, http.StatusUnauthorized, problem.TypeUnauthorized, "Unauthorized", err, h.Env)
			return
		}
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", err, h.Env)
		return
	}

	token, err := h.JWT.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", err, h.Env)
		return
	}

	h.Trail.Success("User Login", user.Name, "self-service login", clientIP(r), nil)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

// Me returns the account behind the presented token. The frontend calls it
// on boot to restore a session.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		problem.Write(w, r, http.StatusUnauthorized, problem.TypeUnauthorized, "Unauthorized", nil, h.Env)
		return
	}

	user, err := h.Users.Find(r.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			problem.Write(w, r, http.StatusUnauthorized, problem.TypeUnauthorized, "Unauthorized", err, h.Env)
			return
		}
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
