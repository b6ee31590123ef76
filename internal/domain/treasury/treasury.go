// Package treasury serves the coin and treasury dashboards: market metrics,
// reserve composition, liquidity, counterparties, infrastructure, risk, and
// token release data.
package treasury

import (
	"context"
	"time"
)

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// CoinMetric is one headline token metric. Unit is USD, COUNT, or PCT.
type CoinMetric struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Change24h float64 `json:"change24h"`
	Trend     Trend   `json:"trend"`
}

type TreasuryAsset struct {
	Asset         string  `json:"asset"`
	Chain         string  `json:"chain"`
	AllocationPct float64 `json:"allocationPct"`
	Balance       float64 `json:"balance"`
	ValueUSD      float64 `json:"valueUsd"`
	Type          string  `json:"type"`
	YieldPct      float64 `json:"yieldPct,omitempty"`
}

type TreasuryLiability struct {
	Label     string     `json:"label"`
	AmountUSD float64    `json:"amountUsd"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
}

type Snapshot struct {
	TotalValueUSD        float64             `json:"totalValueUsd"`
	Change24hPct         float64             `json:"change24hPct"`
	HedgedRatio          float64             `json:"hedgedRatio"`
	BurnRateUSD          float64             `json:"burnRateUsd"`
	RunwayMonths         int                 `json:"runwayMonths"`
	InsuranceCoverageUSD float64             `json:"insuranceCoverageUsd"`
	Assets               []TreasuryAsset     `json:"assets"`
	Liabilities          []TreasuryLiability `json:"liabilities"`
}

type LiquidityPool struct {
	ID          string  `json:"id"`
	Pool        string  `json:"pool"`
	Chain       string  `json:"chain"`
	TVLUSD      float64 `json:"tvlUsd"`
	Volume24USD float64 `json:"volume24hUsd"`
	APYPct      float64 `json:"apyPct"`
	Status      string  `json:"status"`
	DepthScore  int     `json:"depthScore"`
}

type MarketMaker struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Region        string    `json:"region"`
	Status        string    `json:"status"`
	DepthScore    int       `json:"depthScore"`
	LastHeartbeat time.Time `json:"lastHeartbeat"`
}

type NodeStatus struct {
	ID          string `json:"id"`
	Region      string `json:"region"`
	Provider    string `json:"provider"`
	Version     string `json:"version"`
	Status      string `json:"status"`
	BlockHeight int64  `json:"blockHeight"`
	Peers       int    `json:"peers"`
	LatencyMs   int    `json:"latencyMs"`
}

type RiskAlert struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Severity     string    `json:"severity"`
	Description  string    `json:"description"`
	DetectedAt   time.Time `json:"detectedAt"`
	Acknowledged bool      `json:"acknowledged"`
	Area         string    `json:"area"`
	Impact       string    `json:"impact,omitempty"`
}

type ComplianceTask struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Owner    string    `json:"owner"`
	DueDate  time.Time `json:"dueDate"`
	Status   string    `json:"status"`
	Category string    `json:"category"`
	Progress int       `json:"progress"`
	Priority string    `json:"priority"`
}

type WalletActivity struct {
	ID           string    `json:"id"`
	Wallet       string    `json:"wallet"`
	Type         string    `json:"type"`
	Direction    string    `json:"direction"`
	Amount       float64   `json:"amount"`
	Asset        string    `json:"asset"`
	Timestamp    time.Time `json:"timestamp"`
	Status       string    `json:"status"`
	Counterparty string    `json:"counterparty"`
	TxHash       string    `json:"txHash"`
	Chain        string    `json:"chain"`
}

type ReleaseEvent struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Asset      string    `json:"asset"`
	Amount     float64   `json:"amount"`
	UnlockDate time.Time `json:"unlockDate"`
	Cliff      string    `json:"cliff"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
}

type GovernanceProposal struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	VotingEndsAt time.Time `json:"votingEndsAt"`
	QuorumPct    float64   `json:"quorumPct"`
	SupportPct   float64   `json:"supportPct"`
}

// Repository serves the treasury dashboard collections.
type Repository interface {
	CoinMetrics(ctx context.Context) ([]CoinMetric, error)
	Snapshot(ctx context.Context) (Snapshot, error)
	LiquidityPools(ctx context.Context) ([]LiquidityPool, error)
	MarketMakers(ctx context.Context) ([]MarketMaker, error)
	NodeStatuses(ctx context.Context) ([]NodeStatus, error)
	RiskAlerts(ctx context.Context) ([]RiskAlert, error)
	ComplianceTasks(ctx context.Context) ([]ComplianceTask, error)
	WalletActivity(ctx context.Context) ([]WalletActivity, error)
	ReleaseSchedule(ctx context.Context) ([]ReleaseEvent, error)
	GovernanceProposals(ctx context.Context) ([]GovernanceProposal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CoinMetrics(ctx context.Context) ([]CoinMetric, error) {
	return s.repo.CoinMetrics(ctx)
}

func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	return s.repo.Snapshot(ctx)
}

func (s *Service) LiquidityPools(ctx context.Context) ([]LiquidityPool, error) {
	return s.repo.LiquidityPools(ctx)
}

func (s *Service) MarketMakers(ctx context.Context) ([]MarketMaker, error) {
	return s.repo.MarketMakers(ctx)
}

func (s *Service) NodeStatuses(ctx context.Context) ([]NodeStatus, error) {
	return s.repo.NodeStatuses(ctx)
}

func (s *Service) RiskAlerts(ctx context.Context) ([]RiskAlert, error) {
	return s.repo.RiskAlerts(ctx)
}

func (s *Service) ComplianceTasks(ctx context.Context) ([]ComplianceTask, error) {
	return s.repo.ComplianceTasks(ctx)
}

func (s *Service) WalletActivity(ctx context.Context) ([]WalletActivity, error) {
	return s.repo.WalletActivity(ctx)
}

func (s *Service) ReleaseSchedule(ctx context.Context) ([]ReleaseEvent, error) {
	return s.repo.ReleaseSchedule(ctx)
}

func (s *Service) GovernanceProposals(ctx context.Context) ([]GovernanceProposal, error) {
	return s.repo.GovernanceProposals(ctx)
}
