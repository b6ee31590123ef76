package handlers

import (
	"net/http"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/problem"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/customers"
)

type CustomersHandler struct {
	Service *customers.Service
	Env     string
}

func NewCustomersHandler(service *customers.Service, env string) *CustomersHandler {
	return &CustomersHandler{Service: service, Env: env}
}

func (h *CustomersHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", nil, h.Env)
		return
	}

	filters, params, err := customers.ParseFilters(r.URL.Query())
	if err != nil {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, h.Env)
		return
	}

	page, err := h.Service.List(r.Context(), filters, params)
	if err != nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, page)
}
