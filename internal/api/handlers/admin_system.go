package handlers

import (
	"net/http"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/problem"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/audit"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/diagnostics"
)

type AdminSystemHandler struct {
	Service *diagnostics.Service
	Trail   *audit.Trail
	Env     string
}

func NewAdminSystemHandler(service *diagnostics.Service, trail *audit.Trail, env string) *AdminSystemHandler {
	return &AdminSystemHandler{Service: service, Trail: trail, Env: env}
}

func (h *AdminSystemHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", nil, h.Env)
		return
	}

	overview, err := h.Service.Overview(r.Context())
	if err != nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

func (h *AdminSystemHandler) RunHealthCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.RunHealthCheck(r.Context(), actorName(r), clientIP(r))
	if err != nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *AdminSystemHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Trail == nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", nil, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, h.Trail.List())
}
