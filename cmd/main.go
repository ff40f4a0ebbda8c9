package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"temanikan/internal/config"
	"temanikan/internal/handlers"
	"temanikan/internal/logger"
	"temanikan/internal/repository"
	"temanikan/internal/repository/db"
	"temanikan/internal/server"
	"temanikan/internal/service"
	"temanikan/internal/session"
)

const shutdownTimeout = 10 * time.Second

// @title        TemanIkan API
// @version      1.0
// @description  Fishkeeping portal backend: role-gated views, mock auth, catalog data and a simulated aquarium telemetry stream.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load("configs", ".env")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer func() { _ = log.Sync() }()

	conn, err := db.InitDB(cfg.DSN)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, session.NewStore(), service.Config{
		DemoMode:       cfg.Auth.DemoMode,
		AdminEmail:     cfg.Auth.AdminEmail,
		SigningKey:     cfg.Auth.SigningKey,
		TokenTTL:       cfg.Auth.TokenTTL,
		DiagnosisDelay: cfg.DiagnosisDelay,
		FeedPeriod:     cfg.FeedPeriod,
		EmergencyClean: cfg.EmergencyClean,
	}, log)
	defer services.Monitoring.Close()

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	go services.Sessions.Run(bgCtx, service.DefaultSweepInterval)

	corsPolicy := server.NewCORS(cfg.AllowedOrigins)
	apiHandler := handlers.NewHandler(services, log, handlers.WithOriginCheck(corsPolicy.OriginAllowed))

	srv := server.New(corsPolicy)
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("server started", "port", cfg.Port, "demo_mode", cfg.Auth.DemoMode)

	waitForShutdown(srv, log, stopBackground)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks until SIGINT/SIGTERM, stops background work, then
// drains in-flight requests.
func waitForShutdown(srv *server.Server, log *logger.Logger, stopBackground context.CancelFunc) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
