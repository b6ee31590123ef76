package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/audit"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/auth"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/config"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/customers"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/dashboard"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/diagnostics"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/orders"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/products"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/treasury"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/users"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/email"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/metrics"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/storage/memory"
)

var (
	// Server flags (override config/env)
	serverHost string
	serverPort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the admin console HTTP server",
	Long: `Start the admin console HTTP server and begin accepting API requests.

The server will:
- Load configuration from environment variables (or --config file if provided)
- Seed the in-memory store, replacing the demo admin if ADMIN_* env vars are set
- Start the HTTP server with the console API endpoints
- Handle graceful shutdown on SIGINT/SIGTERM

Examples:
  # Start with default configuration (from env vars)
  server serve

  # Start on a specific host and port
  server serve --host 127.0.0.1 --port 9090

  # Start with simulated backend latency
  MOCK_LATENCY_MS=400 server serve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host address (default: 0.0.0.0)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (default: 8080)")
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	return cfg, nil
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	logger := config.NewLogger(cfg.Logging)
	logger.Info().Msg("starting admin console server")

	metrics.Init(Version, GitCommit, BuildDate)

	bootstrap, err := bootstrapAdmin(cfg, logger)
	if err != nil {
		return err
	}

	store, err := memory.NewStore(memory.Options{
		Latency:        cfg.Mock.Latency,
		BootstrapAdmin: bootstrap,
	})
	if err != nil {
		return fmt.Errorf("seed store: %w", err)
	}

	trail := audit.NewTrail(cfg.Mock.AuditCapacity, logger)
	seedAuditTrail(trail)

	mailer, err := email.NewService(cfg.Email, logger)
	if err != nil {
		return fmt.Errorf("email service: %w", err)
	}

	overview, err := store.Diagnostics().Overview(context.Background())
	if err != nil {
		return fmt.Errorf("load system overview: %w", err)
	}

	deps := api.Deps{
		Users:       users.NewService(store.Users(), trail, mailer, cfg.Server.BaseURL, logger),
		Orders:      orders.NewService(store.Orders()),
		Products:    products.NewService(store.Products()),
		Customers:   customers.NewService(store.Customers()),
		Dashboard:   dashboard.NewService(store.Orders(), store.Users(), overview.Uptime),
		Treasury:    treasury.NewService(store.Treasury()),
		Diagnostics: diagnostics.NewService(store.Diagnostics(), healthChecks(store), trail),
		Trail:       trail,
		JWT:         auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, cfg.Auth.Issuer),
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           api.NewRouter(cfg, logger, deps),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	shutdown(server, logger)
	return nil
}

// bootstrapAdmin builds the operator-configured admin account, or nil when
// the ADMIN_* variables are not fully set.
func bootstrapAdmin(cfg config.Config, logger zerolog.Logger) (*users.User, error) {
	bootstrap := cfg.AdminBootstrap
	if bootstrap.Email == "" || bootstrap.Password == "" {
		logger.Warn().Msg("admin bootstrap env vars not fully set; demo accounts only")
		return nil, nil
	}

	hash, err := users.HashPassword(bootstrap.Password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	name := bootstrap.Name
	if name == "" {
		name = "Admin User"
	}

	logger.Info().Str("email", bootstrap.Email).Msg("bootstrapping admin account")
	return &users.User{
		ID:           "user-bootstrap-admin",
		Name:         name,
		Email:        bootstrap.Email,
		Role:         auth.RoleAdmin,
		Status:       users.StatusActive,
		PasswordHash: hash,
	}, nil
}

// healthChecks builds the diagnostics probes. The payments probe consults
// the seeded service statuses so a degraded dependency shows up in a run.
func healthChecks(store *memory.Store) []diagnostics.Check {
	return []diagnostics.Check{
		{
			Name: "Database",
			Run: func(ctx context.Context) (bool, string) {
				return true, "Replication lag within normal parameters"
			},
		},
		{
			Name: "Message Queue",
			Run: func(ctx context.Context) (bool, string) {
				return true, "No backlog detected"
			},
		},
		{
			Name: "Third-Party Payments",
			Run: func(ctx context.Context) (bool, string) {
				overview, err := store.Diagnostics().Overview(ctx)
				if err != nil {
					return false, "overview unavailable"
				}
				for _, svc := range overview.Services {
					if svc.Name == "Payments" && svc.Status == "offline" {
						return false, "Payments dependency offline"
					}
				}
				return true, "Latency slightly higher than baseline"
			},
		},
		{
			Name: "Authentication Provider",
			Run: func(ctx context.Context) (bool, string) {
				return true, "Token issuance stable"
			},
		},
	}
}

// seedAuditTrail backfills the trail with recent demo activity so the audit
// page is not empty on first boot.
func seedAuditTrail(trail *audit.Trail) {
	type seedEntry struct {
		action, actor, target, status string
	}
	rotation := []seedEntry{
		{"User Login", "Admin User", "self-service login", audit.StatusSuccess},
		{"Role Updated", "Admin User", "Staff User", audit.StatusWarning},
		{"Password Reset", "Staff User", "Viewer User", audit.StatusSuccess},
		{"Export Data", "Admin User", "Orders", audit.StatusSuccess},
		{"Failed Login", "Viewer User", "self-service login", audit.StatusError},
	}

	now := time.Now().UTC()
	for i := 11; i >= 0; i-- {
		entry := rotation[i%len(rotation)]
		trail.Record(audit.Entry{
			Timestamp: now.Add(-time.Duration(i) * 45 * time.Minute),
			Action:    entry.action,
			Actor:     entry.actor,
			Target:    entry.target,
			Status:    entry.status,
			IPAddress: fmt.Sprintf("10.0.0.%d", i+10),
		})
	}
}

func shutdown(server *http.Server, logger zerolog.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}
