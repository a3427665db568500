package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/cli/config"
	controller "github.com/orgward/knock/pkg/controller/http"
	"github.com/orgward/knock/pkg/domain/interfaces"
	"github.com/orgward/knock/pkg/domain/types"
	"github.com/orgward/knock/pkg/registry"
	"github.com/orgward/knock/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		firestoreCfg config.Firestore
		sendgridCfg  config.SendGrid
		slackCfg     config.Slack
		catalogCfg   config.Catalog
		seedCfg      config.Seed
	)

	flags := joinFlags(
		serverCfg.Flags(),
		firestoreCfg.Flags(),
		sendgridCfg.Flags(),
		slackCfg.Flags(),
		catalogCfg.Flags(),
		seedCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting knock server",
				slog.Any("server", serverCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("sendgrid", sendgridCfg),
				slog.Any("slack", slackCfg),
				slog.Any("catalog", catalogCfg),
				slog.Any("seed", seedCfg),
			)

			if err := serverCfg.Validate(); err != nil {
				return err
			}

			// Create repository using config
			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := seedCfg.Apply(ctx, repo); err != nil {
				return err
			}

			catalog, err := catalogCfg.Configure()
			if err != nil {
				return err
			}

			mailer := sendgridCfg.Configure(ctx)

			registries := map[types.ProviderType]interfaces.ProviderRegistry{
				types.ProviderTypeApp:        registry.NewApps(repo),
				types.ProviderTypeFirstParty: registry.NewCatalog(catalog.Integrations),
				types.ProviderTypePlugin:     registry.NewCatalog(catalog.Plugins),
			}

			var opts []usecase.Option
			if notifier := slackCfg.Configure(); notifier != nil {
				opts = append(opts, usecase.WithNotifier(notifier))
			}

			requestUC := usecase.NewIntegrationRequest(repo, registries, mailer, serverCfg.BaseURL, opts...)

			server, err := controller.NewServer(ctx, serverCfg.Addr, repo, requestUC)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
