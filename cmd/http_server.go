package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/frahmantamala/lead-tracker/internal"
	"github.com/frahmantamala/lead-tracker/internal/core/events"
	"github.com/frahmantamala/lead-tracker/internal/employee"
	"github.com/frahmantamala/lead-tracker/internal/lead"
	"github.com/frahmantamala/lead-tracker/internal/recordstore"
	"github.com/frahmantamala/lead-tracker/internal/session"
	"github.com/frahmantamala/lead-tracker/internal/transport/rest"
	"github.com/frahmantamala/lead-tracker/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	Backend  *backend
	Records  *recordstore.Store
	Sessions *session.Manager
	Router   *chi.Mux
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr, "storage", deps.Config.Storage.Driver)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			_ = deps.Backend.Close()
			os.Exit(1)
		}
	}

	if err := deps.Backend.Close(); err != nil {
		deps.Logger.Error("Storage close error", "error", err)
	}
	deps.Logger.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	sessionService := session.NewService(deps.Sessions, session.NewStaticPolicy(deps.Config.Session), deps.Records, deps.Logger)

	rest.RegisterAllRoutes(deps.Router, rest.Dependencies{
		Backend:         deps.Config.Storage.Driver,
		Store:           deps.Backend.Store,
		Sessions:        deps.Sessions,
		SessionHandler:  session.NewHandler(sessionService),
		EmployeeHandler: employee.NewHandler(deps.Records),
		LeadHandler:     lead.NewHandler(deps.Records),
		AllowedOrigins:  deps.Config.Server.AllowedOrigins,
		Logger:          deps.Logger,
	})
}

func initializeDependencies(ctx context.Context) (*Dependencies, error) {
	config, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Configure(config.Env, config.Logging.Level, config.Logging.Format)
	lg := logger.LoggerWrapper()

	be, err := openBackend(ctx, config.Storage, lg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return &Dependencies{
		Config:   config,
		Backend:  be,
		Records:  newRecordStore(be, lg),
		Sessions: session.NewManager(be.Store, lg),
		Router:   chi.NewRouter(),
		Logger:   lg,
	}, nil
}

// newRecordStore wires the record store to an event bus that audits every change.
func newRecordStore(be *backend, lg *slog.Logger, opts ...recordstore.Option) *recordstore.Store {
	bus := events.NewEventBus(lg)
	events.RegisterAuditLog(bus, lg)
	opts = append([]recordstore.Option{recordstore.WithPublisher(bus)}, opts...)
	return recordstore.NewStore(be.Store, lg, opts...)
}

// newCommandRecordStore audits synchronously, for commands that exit as soon as they finish.
func newCommandRecordStore(be *backend, lg *slog.Logger, opts ...recordstore.Option) *recordstore.Store {
	bus := events.NewEventBus(lg)
	events.RegisterAuditLog(bus, lg)
	opts = append([]recordstore.Option{recordstore.WithPublisher(events.SyncPublisher{Bus: bus})}, opts...)
	return recordstore.NewStore(be.Store, lg, opts...)
}
