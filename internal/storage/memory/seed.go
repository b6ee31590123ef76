package memory

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/auth"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/diagnostics"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/treasury"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/users"
)

//go:embed data/*.json
var seedFS embed.FS

func (s *Store) seed(bootstrap *users.User) error {
	if err := loadJSON(&s.orders, "data/orders.json"); err != nil {
		return err
	}
	if err := loadJSON(&s.products, "data/products.json"); err != nil {
		return err
	}
	if err := loadJSON(&s.customers, "data/customers.json"); err != nil {
		return err
	}

	now := s.now()
	s.users = seedUsers(now)
	if bootstrap != nil {
		s.applyBootstrap(*bootstrap, now)
	}
	s.seedTreasury(now)
	s.overview = seedOverview(now)
	return nil
}

func loadJSON(dst any, name string) error {
	raw, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// applyBootstrap replaces the seeded account with the same email, or
// appends a new one, so the operator-configured admin always wins.
func (s *Store) applyBootstrap(admin users.User, now time.Time) {
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = now
	}
	for i, u := range s.users {
		if u.Email == admin.Email {
			s.users[i] = admin
			return
		}
	}
	s.users = append(s.users, admin)
}

func seedUsers(now time.Time) []users.User {
	lastStaff := now.Add(-30 * time.Minute)
	lastViewer := now.Add(-5 * time.Hour)
	lastAdmin := now
	return []users.User{
		{
			ID:         "1",
			Name:       "Admin User",
			Email:      "admin@gmail.com",
			Role:       auth.RoleAdmin,
			AvatarURL:  "https://i.pravatar.cc/150?u=admin",
			Status:     users.StatusActive,
			LastActive: &lastAdmin,
			CreatedAt:  now.Add(-90 * 24 * time.Hour),
		},
		{
			ID:         "2",
			Name:       "Staff User",
			Email:      "staff@gmail.com",
			Role:       auth.RoleStaff,
			AvatarURL:  "https://i.pravatar.cc/150?u=staff",
			Status:     users.StatusActive,
			LastActive: &lastStaff,
			CreatedAt:  now.Add(-45 * 24 * time.Hour),
		},
		{
			ID:         "3",
			Name:       "Viewer User",
			Email:      "viewer@gmail.com",
			Role:       auth.RoleViewer,
			AvatarURL:  "https://i.pravatar.cc/150?u=viewer",
			Status:     users.StatusActive,
			LastActive: &lastViewer,
			CreatedAt:  now.Add(-30 * 24 * time.Hour),
		},
	}
}

func (s *Store) seedTreasury(now time.Time) {
	s.coinMetrics = []treasury.CoinMetric{
		{ID: "price", Label: "Token price", Value: 1.34, Unit: "USD", Change24h: 2.6, Trend: treasury.TrendUp},
		{ID: "marketCap", Label: "Market cap", Value: 382_000_000, Unit: "USD", Change24h: -1.8, Trend: treasury.TrendDown},
		{ID: "circulating", Label: "Circulating supply", Value: 274_000_000, Unit: "COUNT", Change24h: 0.5, Trend: treasury.TrendUp},
		{ID: "staked", Label: "Staked ratio", Value: 0.61, Unit: "PCT", Change24h: 1.2, Trend: treasury.TrendUp},
		{ID: "volume", Label: "24h volume", Value: 21_400_000, Unit: "USD", Change24h: 6.4, Trend: treasury.TrendUp},
		{ID: "volatility", Label: "30d volatility", Value: 0.24, Unit: "PCT", Change24h: -0.7, Trend: treasury.TrendDown},
	}

	creditDue := now.Add(45 * 24 * time.Hour)
	s.snapshot = treasury.Snapshot{
		TotalValueUSD:        188_500_000,
		Change24hPct:         1.9,
		HedgedRatio:          0.67,
		BurnRateUSD:          4_200_000,
		RunwayMonths:         28,
		InsuranceCoverageUSD: 92_000_000,
		Assets: []treasury.TreasuryAsset{
			{Asset: "USDC", Chain: "Ethereum", AllocationPct: 0.32, Balance: 60_500_000, ValueUSD: 60_500_000, Type: "Stablecoin", YieldPct: 0.035},
			{Asset: "ETH", Chain: "Ethereum", AllocationPct: 0.18, Balance: 15_800, ValueUSD: 48_300_000, Type: "Native"},
			{Asset: "stETH", Chain: "Ethereum", AllocationPct: 0.22, Balance: 13_400, ValueUSD: 41_900_000, Type: "Yield", YieldPct: 0.045},
			{Asset: "COIN-USD LP", Chain: "Solana", AllocationPct: 0.12, Balance: 9_600_000, ValueUSD: 22_600_000, Type: "Liquidity", YieldPct: 0.082},
			{Asset: "USDT", Chain: "Polygon", AllocationPct: 0.08, Balance: 12_400_000, ValueUSD: 12_400_000, Type: "Stablecoin"},
			{Asset: "BTC", Chain: "Bitcoin", AllocationPct: 0.08, Balance: 1_150, ValueUSD: 22_800_000, Type: "Native"},
		},
		Liabilities: []treasury.TreasuryLiability{
			{Label: "Market maker credit line", AmountUSD: 18_000_000, DueDate: &creditDue},
			{Label: "Operational expenses (30d)", AmountUSD: 4_800_000},
		},
	}

	s.pools = []treasury.LiquidityPool{
		{ID: "lp-1", Pool: "COIN/USDC", Chain: "Ethereum", TVLUSD: 32_800_000, Volume24USD: 5_400_000, APYPct: 0.087, Status: "optimal", DepthScore: 92},
		{ID: "lp-2", Pool: "COIN/USDT", Chain: "Polygon", TVLUSD: 14_200_000, Volume24USD: 1_800_000, APYPct: 0.063, Status: "watch", DepthScore: 78},
		{ID: "lp-3", Pool: "COIN/SOL", Chain: "Solana", TVLUSD: 9_600_000, Volume24USD: 1_100_000, APYPct: 0.098, Status: "optimal", DepthScore: 85},
		{ID: "lp-4", Pool: "COIN/BTC", Chain: "Arbitrum", TVLUSD: 6_800_000, Volume24USD: 950_000, APYPct: 0.071, Status: "watch", DepthScore: 73},
	}

	s.makers = []treasury.MarketMaker{
		{ID: "mm-1", Name: "FalconX", Region: "US", Status: "connected", DepthScore: 94, LastHeartbeat: now.Add(-3 * time.Minute)},
		{ID: "mm-2", Name: "Wintermute", Region: "EU", Status: "connected", DepthScore: 91, LastHeartbeat: now.Add(-5 * time.Minute)},
		{ID: "mm-3", Name: "Amber", Region: "APAC", Status: "degraded", DepthScore: 76, LastHeartbeat: now.Add(-19 * time.Minute)},
	}

	s.nodes = []treasury.NodeStatus{
		{ID: "node-1", Region: "US-East", Provider: "AWS", Version: "v1.18.4", Status: "healthy", BlockHeight: 18_453_221, Peers: 48, LatencyMs: 43},
		{ID: "node-2", Region: "EU-West", Provider: "GCP", Version: "v1.18.4", Status: "healthy", BlockHeight: 18_453_217, Peers: 52, LatencyMs: 51},
		{ID: "node-3", Region: "APAC", Provider: "Azure", Version: "v1.18.3", Status: "degraded", BlockHeight: 18_452_998, Peers: 36, LatencyMs: 82},
	}

	s.alerts = []treasury.RiskAlert{
		{
			ID:          "risk-1",
			Title:       "Liquidity coverage below policy on Polygon",
			Severity:    "medium",
			Description: "Utilisation reached 92% of available liquidity bands. Consider rebalancing stablecoin reserves.",
			DetectedAt:  now.Add(-45 * time.Minute),
			Area:        "liquidity",
			Impact:      "Coverage 92% (target 105%)",
		},
		{
			ID:           "risk-2",
			Title:        "Increased volatility vs BTC",
			Severity:     "high",
			Description:  "30d beta climbed to 1.42 indicating outsized swings vs benchmark.",
			DetectedAt:   now.Add(-5 * time.Hour),
			Acknowledged: true,
			Area:         "market",
			Impact:       "Potential slippage for large orders",
		},
		{
			ID:          "risk-3",
			Title:       "Staking validator downtime",
			Severity:    "low",
			Description: "Validator asia-3 experienced 0.4% downtime in the last epoch.",
			DetectedAt:  now.Add(-30 * time.Minute),
			Area:        "security",
		},
		{
			ID:           "risk-4",
			Title:        "KYC refresh overdue for market maker",
			Severity:     "medium",
			Description:  "Annual compliance review pending for Amber (APAC).",
			DetectedAt:   now.Add(-3 * 24 * time.Hour),
			Acknowledged: true,
			Area:         "compliance",
		},
	}

	s.compliance = []treasury.ComplianceTask{
		{ID: "comp-1", Title: "File MAS quarterly report", Owner: "J. Goh", DueDate: now.Add(6 * 24 * time.Hour), Status: "in_progress", Category: "regulation", Progress: 65, Priority: "high"},
		{ID: "comp-2", Title: "Audit smart-contract upgradability", Owner: "D. Alvarez", DueDate: now.Add(14 * 24 * time.Hour), Status: "not_started", Category: "security", Progress: 0, Priority: "medium"},
		{ID: "comp-3", Title: "Treasury reconciliation", Owner: "M. Chen", DueDate: now.Add(3 * 24 * time.Hour), Status: "in_progress", Category: "finance", Progress: 45, Priority: "high"},
		{ID: "comp-4", Title: "DAO vote disclosure", Owner: "A. Rossi", DueDate: now.Add(9 * 24 * time.Hour), Status: "completed", Category: "governance", Progress: 100, Priority: "low"},
	}

	s.wallets = []treasury.WalletActivity{
		{ID: "tx-1", Wallet: "Treasury-1", Type: "rebalance", Direction: "out", Amount: 2_500_000, Asset: "USDC", Timestamp: now.Add(-12 * time.Minute), Status: "completed", Counterparty: "MM - FalconX", TxHash: "0x7f6c...a921", Chain: "Ethereum"},
		{ID: "tx-2", Wallet: "Treasury-2", Type: "mint", Direction: "out", Amount: 1_200_000, Asset: "COIN", Timestamp: now.Add(-2 * time.Hour), Status: "completed", Counterparty: "Custody - Anchorage", TxHash: "0x81af...c24e", Chain: "Ethereum"},
		{ID: "tx-3", Wallet: "Reserves-3", Type: "transfer", Direction: "in", Amount: 750_000, Asset: "USDT", Timestamp: now.Add(-90 * time.Minute), Status: "pending", Counterparty: "CEX - Binance", TxHash: "0x95bc...2d10", Chain: "Polygon"},
		{ID: "tx-4", Wallet: "Insurance-1", Type: "transfer", Direction: "in", Amount: 480_000, Asset: "USDC", Timestamp: now.Add(-4 * time.Hour), Status: "completed", Counterparty: "Insurance fund", TxHash: "0xb4d8...9f31", Chain: "Ethereum"},
	}

	s.releases = []treasury.ReleaseEvent{
		{ID: "rel-1", Title: "Team unlock - tranche 3", Asset: "COIN", Amount: 5_000_000, UnlockDate: now.Add(15 * 24 * time.Hour), Cliff: "No cliff", Status: "scheduled", Notes: "Linear release over 30 days"},
		{ID: "rel-2", Title: "Community incentives", Asset: "COIN", Amount: 2_500_000, UnlockDate: now.Add(45 * 24 * time.Hour), Cliff: "30d cliff", Status: "scheduled"},
		{ID: "rel-3", Title: "Market maker refresh", Asset: "COIN", Amount: 1_000_000, UnlockDate: now.Add(-10 * 24 * time.Hour), Cliff: "Completed", Status: "completed"},
	}

	s.proposals = []treasury.GovernanceProposal{
		{ID: "gov-1", Title: "Proposal #42: Treasury diversification", Status: "active", VotingEndsAt: now.Add(2 * 24 * time.Hour), QuorumPct: 0.62, SupportPct: 0.54},
		{ID: "gov-2", Title: "Proposal #41: Validator rewards adjustment", Status: "passed", VotingEndsAt: now.Add(-6 * 24 * time.Hour), QuorumPct: 0.58, SupportPct: 0.66},
		{ID: "gov-3", Title: "Proposal #40: Ecosystem grants wave 5", Status: "draft", VotingEndsAt: now.Add(12 * 24 * time.Hour), QuorumPct: 0, SupportPct: 0},
	}
}

func seedOverview(now time.Time) diagnostics.Overview {
	return diagnostics.Overview{
		Uptime:          99.982,
		Version:         "v2.5.1",
		LastDeploy:      now.Add(-12 * time.Hour),
		IncidentsOpen:   1,
		NextMaintenance: now.Add(7 * 24 * time.Hour),
		Environment:     "production",
		Services: []diagnostics.ServiceStatus{
			{Name: "API Gateway", Status: "operational", ResponseTimeMs: 182},
			{Name: "Authentication", Status: "operational", ResponseTimeMs: 146, Dependency: "Identity Provider"},
			{Name: "Payments", Status: "degraded", ResponseTimeMs: 421, Dependency: "Stripe API"},
			{Name: "Notifications", Status: "operational", ResponseTimeMs: 205, Dependency: "Firebase Cloud Messaging"},
			{Name: "Reporting", Status: "operational", ResponseTimeMs: 264},
		},
	}
}
