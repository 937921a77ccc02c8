package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"price-basket/config"
	"price-basket/harness"
	"price-basket/logger"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default: $BASKET_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.Log.Level)))
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.ContextWithRunID(ctx, "")

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, err)
		log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	runner, err := harness.NewRunner(cfg, log)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "benchmark started",
		logger.NewField("index", cfg.Index),
		logger.NewField("seed", cfg.Seed),
		logger.NewField("rounds", cfg.Rounds),
		logger.NewField("workloads", len(cfg.Workloads)),
	)

	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	// 汇总表
	fmt.Printf("\n=== %s ===\n", cfg.Index)
	fmt.Printf("%-8s %-8s %-10s %-14s %-14s %s\n", "prices", "sizes", "records", "put", "split", "moved")
	for _, res := range results {
		fmt.Printf("%-8d %-8d %-10d %-14s %-14s %d\n",
			res.Workload.Prices, res.Workload.Sizes, res.Records, res.Put, res.Split, res.Moved)
	}
	return nil
}
