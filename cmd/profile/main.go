package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/pkg/errors"

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

	if err := profile(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, err)
		log.Sync()
		os.Exit(1)
	}

	fmt.Println("\n分析 CPU profile:")
	fmt.Printf("  go tool pprof -http=:8080 %s\n", cfg.Profile.Path)
	fmt.Printf("  或者: go tool pprof %s\n", cfg.Profile.Path)
	fmt.Println("  然后输入: top10  (查看前 10 个热点函数)")
}

func profile(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	runner, err := harness.NewRunner(cfg, log)
	if err != nil {
		return err
	}

	// 创建 CPU profile 文件
	cpuFile, err := os.Create(cfg.Profile.Path)
	if err != nil {
		return errors.Wrap(err, "create profile")
	}
	defer cpuFile.Close()

	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		return errors.Wrap(err, "start profile")
	}
	defer pprof.StopCPUProfile()

	log.InfoContext(ctx, "profiling started", logger.NewField("path", cfg.Profile.Path))

	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "profiling done", logger.NewField("workloads", len(results)))
	return nil
}
