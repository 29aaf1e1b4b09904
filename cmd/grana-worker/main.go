package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"grana/internal/amqp"
	"grana/internal/config"
	"grana/internal/log"
	"grana/internal/services"
	"grana/internal/sheets"
	gsheet "grana/internal/sheets/google"
	"grana/internal/storage"
	"grana/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()
	logger := log.Setup(log.ParseLevel(cfg.LogLevel), "grana-worker")

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting grana-worker")

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	// Google Sheets export is optional
	var summaries sheets.SummaryWriter
	if cfg.GoogleSpreadsheetID != "" {
		client, err := gsheet.New(context.Background(), cfg.GoogleSpreadsheetID, cfg.GoogleSheetName)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		summaries = client
		logger.Info("Google Sheets client initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	} else {
		logger.Info("Google Sheets disabled - no GOOGLE_SPREADSHEET_ID provided")
	}

	dashboards := services.NewDashboardService(repo)
	goals := services.NewGoalService(repo, nil, dashboards)
	refresh := worker.NewRefreshWorker(dashboards, goals, summaries)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// AMQP is optional; the periodic tick alone keeps the goals fresh,
	// just with more lag.
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()

		go func() {
			handler := func(msg *amqp.RecordChangeMessage) error {
				return refresh.HandleRecordChange(ctx, msg)
			}
			if err := amqpClient.ConsumeRecordChanges(ctx, handler); err != nil {
				if err != context.Canceled {
					logger.Error("Message consumption failed", "error", err)
				}
				cancel()
			}
		}()
	} else {
		logger.Info("AMQP disabled - relying on periodic refresh only")
	}

	go func() {
		if err := refresh.Run(ctx, cfg.RefreshInterval); err != nil && err != context.Canceled {
			logger.Error("Refresh loop failed", "error", err)
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	cancel()
	logger.Info("Shutting down worker...")
	time.Sleep(2 * time.Second)
	logger.Info("Worker shutdown complete")
}
