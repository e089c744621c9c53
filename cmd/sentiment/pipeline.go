package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/adapter/chart"
	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/adapter/report"
	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/domain/service"
	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/infrastructure/config"
	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/usecase"
)

// pipeline runs the stages in order: batch inference, table, csv, chart and
// the single interactive query
type pipeline struct {
	sentiment usecase.SentimentUsecase
	reviews   []string
	output    config.OutputConfig
	display   chart.Display
	in        *bufio.Reader
	out       io.Writer
	log       *zap.Logger
	runID     string
}

func (p *pipeline) Run(ctx context.Context) error {
	table, err := p.analyze(ctx)
	if err != nil {
		return err
	}

	if err := p.persist(table); err != nil {
		return err
	}

	if err := p.visualize(table); err != nil {
		return err
	}

	return p.ask(ctx)
}

func (p *pipeline) analyze(ctx context.Context) (*report.Table, error) {
	fmt.Fprintln(p.out, "Analyzing sample IMDb reviews...")
	fmt.Fprintln(p.out)

	results, err := p.sentiment.AnalyzeReviews(ctx, p.reviews, p.runID)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze reviews: %w", err)
	}
	p.log.Info("Reviews classified", zap.Int("reviews", len(results)))

	table := report.BuildTable(results)

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Sentiment Analysis Results:")
	fmt.Fprintln(p.out)
	if err := table.Print(p.out); err != nil {
		return nil, fmt.Errorf("failed to print results: %w", err)
	}

	return table, nil
}

func (p *pipeline) persist(table *report.Table) error {
	if err := report.WriteCSV(p.output.CSVPath, table); err != nil {
		return err
	}
	p.log.Info("Results written", zap.String("path", p.output.CSVPath), zap.Int("rows", table.Len()))

	color.New(color.FgGreen).Fprintf(p.out, "\n✅ Results saved to %s\n", p.output.CSVPath)
	return nil
}

func (p *pipeline) visualize(table *report.Table) error {
	counts := chart.LabelCounts(table)
	if len(counts) == 0 {
		p.log.Warn("No results to plot, skipping chart")
		return nil
	}

	if err := chart.RenderBarChart(counts, p.output.ChartPath); err != nil {
		return err
	}
	p.log.Info("Chart rendered", zap.String("path", p.output.ChartPath))

	if !p.output.ShowChart {
		return nil
	}
	return p.display.Show(p.output.ChartPath)
}

func (p *pipeline) ask(ctx context.Context) error {
	color.New(color.Bold).Fprint(p.out, "\nEnter your own movie review: ")

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return fmt.Errorf("failed to read review: %w", err)
	}
	text := strings.TrimRight(line, "\r\n")

	result, err := p.sentiment.ClassifyOne(ctx, text, p.runID)
	if err != nil {
		return fmt.Errorf("failed to classify review: %w", err)
	}

	raw, err := json.Marshal([]*service.ClassificationResult{result})
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(p.out, string(raw))
	return nil
}
