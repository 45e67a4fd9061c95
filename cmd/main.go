// @title          TJ Building Energy API
// @version        1.0
// @description    Synthetic telemetry, occupancy and statistics for the building-energy dashboard.
// @BasePath       /
// @securityDefinitions.apikey  BearerAuth
// @in             header
// @name           Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "tjbuilding/docs"
	"tjbuilding/internal/config"
	"tjbuilding/internal/handlers"
	"tjbuilding/internal/logger"
	"tjbuilding/internal/metrics"
	"tjbuilding/internal/repository"
	"tjbuilding/internal/repository/db"
	"tjbuilding/internal/server"
	"tjbuilding/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var configFile string

	rootCmd := &cobra.Command{
		Use:          "tjbuilding",
		Short:        "Building-energy dashboard API with deterministic synthetic telemetry",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configFile)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration (default configs/config.yml)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configFile)
		},
	}

	var seedDays int
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Write synthetic daily room statistics for every inventory room",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed(cmd.Context(), configFile, seedDays)
		},
	}
	seedCmd.Flags().IntVar(&seedDays, "days", 30, "Number of days to generate, ending today")

	rootCmd.AddCommand(serveCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the dependencies shared by every command.
type app struct {
	cfg      config.Config
	log      *logger.Logger
	db       *sql.DB
	services *service.Service
}

func newApp(configFile string) (*app, error) {
	cfg, err := config.Load(viper.New(), configFile)
	if err != nil {
		return nil, err
	}
	log := logger.Get(cfg.Log.Level)

	inv, err := repository.LoadInventoryYAML(cfg.Inventory.Path)
	if err != nil {
		return nil, err
	}

	conn, err := db.InitDB(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	metrics.Init()
	repos := repository.NewRepository(conn, inv)
	services := service.NewService(repos, service.Options{
		SigningKey:      cfg.Auth.SigningKey,
		TokenTTL:        cfg.Auth.TokenTTL,
		SessionTTL:      cfg.Session.TTL,
		SuggestionLimit: cfg.Assistant.SuggestionLimit,
		DefaultDays:     cfg.Statistics.DefaultDays,
		Observer:        metrics.CacheObserver{},
	})
	return &app{cfg: cfg, log: log, db: conn, services: services}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.log.Errorw("failed to close db", "err", err)
	}
}

func serve(configFile string) error {
	a, err := newApp(configFile)
	if err != nil {
		logger.Get(logger.InfoLevel).Errorw("startup failed", "err", err)
		return err
	}
	defer a.close()

	apiHandler := handlers.NewHandler(a.services, a.log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// close idle floor-plan sessions
	go a.services.Reaper.Run(ctx, a.cfg.Session.ReapInterval)

	// start HTTP server
	srv := &server.Server{Timeouts: server.Timeouts{
		ReadHeader: a.cfg.Server.ReadHeaderTimeout,
		Write:      a.cfg.Server.WriteTimeout,
		Idle:       a.cfg.Server.IdleTimeout,
	}}
	runHTTPServer(srv, a.cfg.Port, apiHandler, a.log)
	a.log.Infow("server started", "port", a.cfg.Port, "db_driver", a.cfg.DB.Driver)

	// graceful shutdown
	waitForShutdown(cancel, srv, a.log)
	return nil
}

func seed(ctx context.Context, configFile string, days int) error {
	a, err := newApp(configFile)
	if err != nil {
		logger.Get(logger.InfoLevel).Errorw("startup failed", "err", err)
		return err
	}
	defer a.close()

	if ctx == nil {
		ctx = context.Background()
	}
	n, err := a.services.Seed(ctx, days, time.Now())
	if err != nil {
		a.log.Errorw("seed failed", "rows_written", n, "err", err)
		return err
	}
	a.log.Infow("statistics seeded", "rows", n, "days", days)
	return nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
