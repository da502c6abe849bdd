package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/restcountries-go/internal/cli"
	"github.com/samvad-hq/restcountries-go/internal/config"
	"github.com/samvad-hq/restcountries-go/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "restcountries: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("restcountries starting", "config", map[string]any{
		"base_url":     cfg.BaseURL,
		"journal_type": cfg.JournalType,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.New(cfg, log).RootCommand()
	root.SilenceErrors = true
	return root.ExecuteContext(ctx)
}
