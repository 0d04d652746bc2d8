package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	httpAdapter "github.com/iho/bankmatch/internal/adapter/http"
	"github.com/iho/bankmatch/internal/adapter/http/handler"
	fileRepo "github.com/iho/bankmatch/internal/adapter/repository/file"
	"github.com/iho/bankmatch/internal/infrastructure/config"
	"github.com/iho/bankmatch/internal/infrastructure/logger"
	"github.com/iho/bankmatch/internal/infrastructure/metrics"
	"github.com/iho/bankmatch/internal/matching"
	"github.com/iho/bankmatch/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Fixture stores
	txRepo, err := fileRepo.NewTransactionRepository(cfg.TransactionsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.TransactionsFile).Msg("failed to load transactions")
	}
	attRepo, err := fileRepo.NewAttachmentRepository(cfg.AttachmentsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.AttachmentsFile).Msg("failed to load attachments")
	}

	var expectedRepo usecase.ExpectedPairRepository
	if cfg.ExpectedFile != "" {
		repo, err := fileRepo.NewExpectedPairRepository(cfg.ExpectedFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.ExpectedFile).Msg("failed to load expected pairs")
		}
		expectedRepo = repo
	}

	// Matching engine
	engineCfg := matching.DefaultConfig(cfg.CompanyName)
	if tol, err := decimal.NewFromString(cfg.AmountTolerance); err == nil {
		engineCfg.AmountTolerance = tol
	} else {
		log.Warn().Str("value", cfg.AmountTolerance).Msg("invalid amount tolerance, using default")
	}
	engineCfg.DateToleranceDays = cfg.DateToleranceDays
	engineCfg.MinConfidence = cfg.MinConfidence
	engine := matching.NewEngine(engineCfg)

	collector := metrics.New()
	idGen := fileRepo.NewULIDGenerator()

	// Use cases
	matchUC := usecase.NewMatchUseCase(txRepo, attRepo, engine, collector)
	reconcileUC := usecase.NewReconcileUseCase(txRepo, attRepo, expectedRepo, engine, idGen, collector)

	// Router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		MatchHandler:     handler.NewMatchHandler(matchUC),
		ReconcileHandler: handler.NewReconcileHandler(reconcileUC),
		HealthHandler:    handler.NewHealthHandler(txRepo, attRepo),
		Logger:           log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("company", cfg.CompanyName).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
