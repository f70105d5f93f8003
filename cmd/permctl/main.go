package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kinimary/belwest/internal/cli"
	"github.com/Kinimary/belwest/internal/clients/permissions"
	"github.com/Kinimary/belwest/internal/editor"
	"github.com/Kinimary/belwest/internal/view"
	"github.com/Kinimary/belwest/pkg/config"
	"github.com/Kinimary/belwest/pkg/logger"
	"github.com/Kinimary/belwest/pkg/token"
)

func main() {
	err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, err := config.NewClient(".env")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	l := logger.NewText(os.Stderr, logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	theme := view.DefaultTheme()
	client := permissions.NewClient(cfg)
	notifier := editor.Multi{
		view.NewToaster(os.Stderr, theme),
		editor.NewSlogNotifier(l),
	}

	app := cli.NewApp(
		editor.New(client, notifier, cfg.SaveParallelism),
		client,
		view.NewRenderer(theme),
		os.Stdin,
		os.Stdout,
	)

	var issuer cli.TokenIssuer
	if cfg.JWTSecret != "" {
		issuer = token.NewManager(cfg.JWTSecret, cfg.JWTIssuer)
	}

	root := cli.NewRootCommand(app)
	root.AddCommand(cli.NewTokenCommand(issuer, os.Stdout))

	err = root.ExecuteContext(ctx)
	if err != nil {
		slog.DebugContext(ctx, "command failed", "error", err)
		return err
	}

	return nil
}
