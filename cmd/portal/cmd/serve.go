package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/driverportal/portal-api/internal/api"
	"github.com/driverportal/portal-api/internal/api/handler"
	"github.com/driverportal/portal-api/internal/core/policy"
	"github.com/driverportal/portal-api/internal/core/service"
	mongodb "github.com/driverportal/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/driverportal/portal-api/internal/infrastructure/db/redis"
	"github.com/driverportal/portal-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	if a.cfg.IsDevelopment() {
		figure.NewFigure("portal", "cybermedium", true).Print()
		fmt.Println()
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	access, err := policy.New()
	if err != nil {
		return err
	}

	router := api.NewRouter(api.Dependencies{
		Auth:      a.authService(rdb),
		Users:     service.NewUserService(a.users, logger.Component("users")),
		Companies: service.NewCompanyService(mongodb.NewCompanyRepository(a.db), logger.Component("companies")),
		Drivers:   service.NewDriverService(mongodb.NewDriverRepository(a.db), logger.Component("drivers")),
		Policy:    access,
		Log:       logger.Component("http"),

		AllowedOrigins: a.cfg.HTTP.AllowedOrigins,
		HealthChecks: []handler.DependencyCheck{
			handler.MongoCheck(a.db),
			handler.RedisCheck(rdb),
		},
	})

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", srv.Addr).Str("env", a.cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
