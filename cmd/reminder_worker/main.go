package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	portssvc "github.com/SscSPs/meufluxo/internal/core/ports/services"
	"github.com/SscSPs/meufluxo/internal/core/services"
	"github.com/SscSPs/meufluxo/internal/messaging/amqp"
	"github.com/SscSPs/meufluxo/internal/platform/config"
	"github.com/SscSPs/meufluxo/internal/platform/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open store", slog.String("driver", cfg.StoreDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	publisher, err := amqp.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
	if err != nil {
		logger.Error("Failed to connect to broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Error closing broker connection", slog.String("error", err.Error()))
		}
	}()

	container := services.NewServiceContainer(repos, cfg, publisher)

	logger.Info("Reminder worker started",
		slog.Duration("interval", cfg.ReminderPollInterval),
		slog.Duration("lead", cfg.ReminderLead))
	run(ctx, container.Reminders, cfg, logger)
	logger.Info("Reminder worker stopped")
}

// run dispatches due reminders once immediately and then on every tick until ctx is done.
func run(ctx context.Context, reminders portssvc.ReminderSvc, cfg *config.Config, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.ReminderPollInterval)
	defer ticker.Stop()

	for {
		sent, err := reminders.DispatchDue(ctx, time.Now().In(cfg.Location))
		if err != nil {
			logger.Error("Reminder dispatch finished with errors", slog.Int("sent", sent), slog.String("error", err.Error()))
		} else if sent > 0 {
			logger.Info("Reminders dispatched", slog.Int("sent", sent))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
