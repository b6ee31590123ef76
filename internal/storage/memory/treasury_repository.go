package memory

import (
	"context"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/treasury"
)

type TreasuryRepository struct {
	store *Store
}

func copySlice[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func (r *TreasuryRepository) CoinMetrics(ctx context.Context) ([]treasury.CoinMetric, error) {
	if err := r.store.pause(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.coinMetrics), nil
}

// Snapshot deep-copies the nested slices so callers cannot mutate the
// seeded reserves.
func (r *TreasuryRepository) Snapshot(ctx context.Context) (treasury.Snapshot, error) {
	if err := r.store.pause(ctx); err != nil {
		return treasury.Snapshot{}, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	snap := r.store.snapshot
	snap.Assets = copySlice(snap.Assets)
	snap.Liabilities = copySlice(snap.Liabilities)
	return snap, nil
}

func (r *TreasuryRepository) LiquidityPools(ctx context.Context) ([]treasury.LiquidityPool, error) {
	if err := r.store.pause(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.pools), nil
}

func (r *TreasuryRepository) MarketMakers(ctx context.Context) ([]treasury.MarketMaker, error) {
	if err := r.store.pause(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.makers), nil
}

func (r *TreasuryRepository) NodeStatuses(ctx context.Context) ([]treasury.NodeStatus, error) {
	if err := r.store.pause(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.nodes), nil
}

func (r *TreasuryRepository) RiskAlerts(ctx context.Context) ([]treasury.RiskAlert, error) {
	if err := r.store.pause(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.alerts), nil
}

func (r *TreasuryRepository) ComplianceTasks(ctx context.Context) ([]treasury.ComplianceTask, error) {
	if err := r.store.pause(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.compliance), nil
}

func (r *TreasuryRepository) WalletActivity(ctx context.Context) ([]treasury.WalletActivity, error) {
	if err := r.store.pause(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.wallets), nil
}

func (r *TreasuryRepository) ReleaseSchedule(ctx context.Context) ([]treasury.ReleaseEvent, error) {
	if err := r.store.pause(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.releases), nil
}

func (r *TreasuryRepository) GovernanceProposals(ctx context.Context) ([]treasury.GovernanceProposal, error) {
	if err := r.store.pause(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.proposals), nil
}
