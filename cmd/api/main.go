package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"maryjoy/internal/adapter/repo"
	"maryjoy/internal/http/handlers"
	httpapi "maryjoy/internal/http/httpapi"
	"maryjoy/internal/infra"
	"maryjoy/internal/infra/geoip"
	"maryjoy/internal/middleware"
	"maryjoy/internal/notify"
	"maryjoy/internal/reconcile"
	"maryjoy/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()

	runner := infra.NewSQLRunner(pool, logger)

	sponsors := repo.NewSponsorRepository(runner)
	payments := repo.NewPaymentRepository(runner)
	notifications := repo.NewNotificationRepository(runner)
	employees := repo.NewEmployeeRepository(runner)
	notifier := notify.NewService(notifications)

	policy := reconcile.Policy{
		DueDay:       cfg.DueDayOfMonth,
		ReminderDays: cfg.ReminderDays,
		OverdueDays:  cfg.OverdueDays,
	}
	sweeper := reconcile.NewSweeper(sponsors, payments, notifier, policy, logger)

	files, err := storage.NewFileStore(cfg.StoragePath)
	if err != nil {
		logger.Warn().Err(err).Msg("file storage disabled")
	}

	var countries middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		countries = resolver.CountryCode
	}

	app := &handlers.App{
		SQL:           runner,
		Logger:        logger,
		JWTSecret:     cfg.JWTSecret,
		Sponsors:      sponsors,
		Payments:      payments,
		Notifications: notifications,
		Employees:     employees,
		Notifier:      notifier,
		Sweeper:       sweeper,
		Files:         files,
	}

	router := httpapi.NewRouter(app, cfg, countries)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
