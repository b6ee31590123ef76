package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/problem"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/products"
)

type ProductsHandler struct {
	Service *products.Service
	Env     string
}

func NewProductsHandler(service *products.Service, env string) *ProductsHandler {
	return &ProductsHandler{Service: service, Env: env}
}

func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", nil, h.Env)
		return
	}

	filters, params, err := products.ParseFilters(r.URL.Query())
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

func (h *ProductsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.Categories(r.Context())
	if err != nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", err, h.Env)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input products.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, h.Env)
		return
	}

	product, err := h.Service.Create(r.Context(), input)
	if err != nil {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, h.Env)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(pathParam(r, "id"))
	if id == "" {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request",
			products.FilterError{Field: "id", Message: "missing"}, h.Env)
		return
	}

	var input products.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, h.Env)
		return
	}

	product, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			problem.Write(w, r, http.StatusNotFound, problem.TypeNotFound, "Not found", err, h.Env)
			return
		}
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, product)
}
