package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/adapter/chart"
	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/adapter/client"
	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/infrastructure/config"
	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/infrastructure/logger"
	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	runID := uuid.New().String()
	log = log.With(zap.String("run_id", runID))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the pretrained model
	model, err := client.LoadClassifier(ctx, &cfg.Model, os.Stdout, log)
	if err != nil {
		log.Error("Failed to load model", zap.Error(err))
		return fmt.Errorf("failed to load model: %w", err)
	}
	defer func() {
		if err := model.Close(); err != nil {
			log.Warn("Failed to close model backend", zap.Error(err))
		}
	}()

	// Console input is shared by the chart dismissal and the review prompt
	in := bufio.NewReader(os.Stdin)

	p := &pipeline{
		sentiment: usecase.NewSentimentUsecase(model.Classifier),
		reviews:   cfg.Reviews,
		output:    cfg.Output,
		display:   chart.NewViewerDisplay(in, os.Stdout),
		in:        in,
		out:       os.Stdout,
		log:       log,
		runID:     runID,
	}

	if err := p.Run(ctx); err != nil {
		log.Error("Pipeline failed", zap.Error(err))
		return err
	}

	log.Info("Run completed")
	return nil
}
