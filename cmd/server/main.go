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

	"github.com/diewo77/invoice-hub/internal/config"
	"github.com/diewo77/invoice-hub/internal/db"
	"github.com/diewo77/invoice-hub/internal/logging"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "invoice-hub",
		Short:         "Invoicing API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd.Context(), serve)
		},
	}
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd.Context(), serve)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd.Context(), func(_ context.Context, rt deps) error {
				if err := db.Migrate(rt.db, rt.cfg, rt.log); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				rt.log.Info("migrations completed")
				return nil
			})
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Insert demo clients and items and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd.Context(), func(_ context.Context, rt deps) error {
				if err := db.Migrate(rt.db, rt.cfg, rt.log); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				if err := db.Seed(rt.db); err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				rt.log.Info("seed completed")
				return nil
			})
		},
	})
	return root
}

// deps bundles what every command needs.
type deps struct {
	cfg config.Config
	db  *gorm.DB
	log *logrus.Logger
}

// withRuntime loads .env and configuration, opens the database and runs fn.
func withRuntime(ctx context.Context, fn func(context.Context, deps) error) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return err
	}
	log := logging.New(cfg.App.LogLevel, cfg.App.LogFormat)

	conn, err := db.Open(cfg.Database, log)
	if err != nil {
		log.WithError(err).Error("failed to connect to database")
		return err
	}
	defer func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	if err := fn(ctx, deps{cfg: cfg, db: conn, log: log}); err != nil {
		log.WithError(err).Error("command failed")
		return err
	}
	return nil
}

func serve(ctx context.Context, rt deps) error {
	if err := db.Migrate(rt.db, rt.cfg, rt.log); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if rt.cfg.App.Seed {
		if err := db.Seed(rt.db); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		rt.log.Info("demo data seeded")
	}

	srv := &http.Server{
		Addr:         ":" + rt.cfg.Server.Port,
		Handler:      NewApp(rt.db, rt.cfg.Server, rt.log),
		ReadTimeout:  rt.cfg.Server.ReadTimeout,
		WriteTimeout: rt.cfg.Server.WriteTimeout,
		IdleTimeout:  rt.cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		rt.log.WithFields(logrus.Fields{
			"port":   rt.cfg.Server.Port,
			"env":    rt.cfg.App.Env,
			"driver": rt.cfg.Database.Driver,
		}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
		rt.log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	rt.log.Info("server stopped gracefully")
	return nil
}
