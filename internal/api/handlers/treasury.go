package handlers

import (
	"context"
	"net/http"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/problem"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/treasury"
)

type TreasuryHandler struct {
	Service *treasury.Service
	Env     string
}

func NewTreasuryHandler(service *treasury.Service, env string) *TreasuryHandler {
	return &TreasuryHandler{Service: service, Env: env}
}

// respond runs one collection getter and writes the result, collapsing the
// ten near-identical endpoints into one shape.
func respond[T any](h *TreasuryHandler, w http.ResponseWriter, r *http.Request, get func(context.Context) (T, error)) {
	if h == nil || h.Service == nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", nil, h.Env)
		return
	}

	value, err := get(r.Context())
	if err != nil {
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, value)
}

func (h *TreasuryHandler) CoinMetrics(w http.ResponseWriter, r *http.Request) {
	respond(h, w, r, h.Service.CoinMetrics)
}

func (h *TreasuryHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	respond(h, w, r, h.Service.Snapshot)
}

func (h *TreasuryHandler) LiquidityPools(w http.ResponseWriter, r *http.Request) {
	respond(h, w, r, h.Service.LiquidityPools)
}

func (h *TreasuryHandler) MarketMakers(w http.ResponseWriter, r *http.Request) {
	respond(h, w, r, h.Service.MarketMakers)
}

func (h *TreasuryHandler) NodeStatuses(w http.ResponseWriter, r *http.Request) {
	respond(h, w, r, h.Service.NodeStatuses)
}

func (h *TreasuryHandler) RiskAlerts(w http.ResponseWriter, r *http.Request) {
	respond(h, w, r, h.Service.RiskAlerts)
}

func (h *TreasuryHandler) ComplianceTasks(w http.ResponseWriter, r *http.Request) {
	respond(h, w, r, h.Service.ComplianceTasks)
}

func (h *TreasuryHandler) WalletActivity(w http.ResponseWriter, r *http.Request) {
	respond(h, w, r, h.Service.WalletActivity)
}

func (h *TreasuryHandler) ReleaseSchedule(w http.ResponseWriter, r *http.Request) {
	respond(h, w, r, h.Service.ReleaseSchedule)
}

func (h *TreasuryHandler) GovernanceProposals(w http.ResponseWriter, r *http.Request) {
	respond(h, w, r, h.Service.GovernanceProposals)
}
