package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"maryjoy/internal/adapter/repo"
	"maryjoy/internal/infra"
	"maryjoy/internal/notify"
	"maryjoy/internal/reconcile"
)

func main() {
	once := flag.Bool("once", false, "run a single sweep and exit")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPoolWithRetry(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("sweeper: db connection failed")
	}
	defer pool.Close()

	runner := infra.NewSQLRunner(pool, logger)
	sponsors := repo.NewSponsorRepository(runner)
	payments := repo.NewPaymentRepository(runner)
	notifier := notify.NewService(repo.NewNotificationRepository(runner))

	policy := reconcile.Policy{
		DueDay:       cfg.DueDayOfMonth,
		ReminderDays: cfg.ReminderDays,
		OverdueDays:  cfg.OverdueDays,
	}
	sweeper := reconcile.NewSweeper(sponsors, payments, notifier, policy, logger)

	if *once {
		if _, err := sweeper.Run(ctx); err != nil {
			logger.Fatal().Err(err).Msg("sweep failed")
		}
		return
	}

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.SweepCronSpec, func() {
		if _, err := sweeper.Run(ctx); err != nil {
			logger.Error().Err(err).Msg("scheduled sweep failed")
		}
	})
	if err != nil {
		logger.Fatal().Err(err).Str("spec", cfg.SweepCronSpec).Msg("invalid cron spec")
	}

	logger.Info().Str("spec", cfg.SweepCronSpec).Msg("sweeper scheduled")
	scheduler.Start()

	<-ctx.Done()
	<-scheduler.Stop().Done()
	logger.Info().Msg("sweeper stopped")
}
