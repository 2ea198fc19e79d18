package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dailyapps/internal/app/bank"
	"dailyapps/internal/app/jobs"
	"dailyapps/internal/app/messenger"
	"dailyapps/internal/app/rental"
	"dailyapps/internal/app/restaurant"
	"dailyapps/internal/config"
	kafka_infra "dailyapps/internal/infrastructure/kafka"
	"dailyapps/internal/outbox"
	"dailyapps/internal/router"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the notification outbox",
	Long: `Start the HTTP API and the notification outbox processor.

Examples:
  dailyapps serve                    # Listen on DAILYAPPS_HTTP_PORT (8080)
  dailyapps serve --port 9090        # Override the port
  dailyapps serve --log-level debug  # Verbose logging`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}
		applyFlags(cmd, cfg)
		return runServe(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&httpPort, "port", "p", 0, "HTTP port; overrides DAILYAPPS_HTTP_PORT")
}

// applyFlags lets explicitly set flags win over the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("port") {
		cfg.HTTPPort = httpPort
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	return zapConfig.Build()
}

func newPublisher(cfg *config.Config, logger *zap.Logger) outbox.Publisher {
	if !cfg.KafkaEnabled() {
		logger.Info("KAFKA_BROKER_URL is not set, notifications will be logged")
		return outbox.NewLogPublisher(logger.With(zap.String("component", "LogPublisher")))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := kafka_infra.EnsureTopics(ctx, cfg.GetKafkaBrokers(), []string{cfg.KafkaNotificationsTopic}, logger); err != nil {
		// The writer can still create the topic on first publish.
		logger.Warn("Failed to ensure Kafka topics", zap.Error(err))
	}
	return kafka_infra.NewProducer(cfg.GetKafkaBrokers(), logger.With(zap.String("component", "KafkaProducer")))
}

func runServe(cfg *config.Config) error {
	appLogger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Sync() }()
	appLogger.Info("dailyapps starting...", zap.Int("port", cfg.HTTPPort))

	publisher := newPublisher(cfg, appLogger)
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Error("Error closing notification publisher", zap.Error(err))
		} else {
			appLogger.Info("Notification publisher closed.")
		}
	}()

	outboxStore := outbox.NewStore(outbox.DefaultMaxAttempts)
	outboxProcessor := outbox.NewProcessor(
		outboxStore,
		publisher,
		cfg.OutboxPollInterval,
		cfg.OutboxPollTimeout,
		cfg.OutboxBatchSize,
		appLogger.With(zap.String("component", "OutboxProcessor")),
	)

	services := router.Services{
		Bank:       bank.NewBankService(cfg.HistorySummaryLimit, appLogger.With(zap.String("component", "BankService"))),
		Rental:     rental.NewRentalService(appLogger.With(zap.String("component", "RentalService"))),
		Jobs:       jobs.NewJobBoardService(appLogger.With(zap.String("component", "JobBoardService"))),
		Messenger:  messenger.NewMessengerService(outboxStore, cfg.KafkaNotificationsTopic, appLogger.With(zap.String("component", "MessengerService"))),
		Restaurant: restaurant.NewRestaurantService(cfg.EntreePrepDelayScale, appLogger.With(zap.String("component", "RestaurantService"))),
	}
	appLogger.Info("Services initialized.")

	handler := router.NewRouter(services, router.Options{
		AllowedOrigins: cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
	}, appLogger.With(zap.String("component", "HTTPHandler")))

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctxMain, cancelMain := context.WithCancel(context.Background())
	defer cancelMain()

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting HTTP server", zap.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	processorDone := make(chan struct{})
	go func() {
		defer close(processorDone)
		appLogger.Info("Starting Outbox Processor...")
		outboxProcessor.Start(ctxMain)
		appLogger.Info("Outbox Processor stopped.")
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error
	select {
	case sig := <-sigChan:
		appLogger.Info("Shutting down application...", zap.String("signal", sig.String()))
	case runErr = <-serverErr:
		appLogger.Error("HTTP server failed", zap.Error(runErr))
	}

	cancelMain()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server graceful shutdown failed", zap.Error(err))
	} else {
		appLogger.Info("HTTP server gracefully shut down.")
	}

	select {
	case <-processorDone:
	case <-shutdownCtx.Done():
		appLogger.Warn("Outbox Processor did not stop before the shutdown deadline.")
	}

	stats := outboxStore.Stats()
	appLogger.Info("Application gracefully shut down.",
		zap.Int("outbox_pending", stats[outbox.StatusPending]),
		zap.Int("outbox_failed", stats[outbox.StatusFailed]),
	)
	return runErr
}
