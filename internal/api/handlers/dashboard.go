package handlers

import (
	"net/http"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/problem"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/dashboard"
)

type DashboardHandler struct {
	Service *dashboard.Service
	Env     string
}

func NewDashboardHandler(service *dashboard.Service, env string) *DashboardHandler {
	return &DashboardHandler{Service: service, Env: env}
}

func (h *DashboardHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", nil, h.Env)
		return
	}

	kpis, err := h.Service.KPIs(r.Context())
	if err != nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, kpis)
}
