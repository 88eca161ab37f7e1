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

	"github.com/getsentry/sentry-go"
	"github.com/jordanlanch/calltracker/pkg/auth"
	"github.com/jordanlanch/calltracker/pkg/cache"
	"github.com/jordanlanch/calltracker/pkg/flash"
	"github.com/jordanlanch/calltracker/pkg/jobs"
	"github.com/jordanlanch/calltracker/pkg/metrics"
	"github.com/jordanlanch/calltracker/pkg/provisioning"
	"github.com/jordanlanch/calltracker/pkg/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const flashTTL = 10 * time.Minute

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard and call forwarding webhook",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	log.Info("configuration loaded", "environment", cfg.APIEnvironment)

	if cfg.DashboardPasswordHash != "" && !auth.IsHash(cfg.DashboardPasswordHash) {
		return errors.New("DASHBOARD_PASSWORD_HASH is not a bcrypt hash; generate one with `calltracker hash-password`")
	}
	if !cfg.DashboardAuthEnabled() {
		log.Warn("dashboard is not password protected (set DASHBOARD_USER and DASHBOARD_PASSWORD_HASH)")
	}

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 0.2,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Warn("failed to initialize sentry", "error", err)
		} else {
			log.Info("sentry initialized", "environment", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	deps := server.Deps{
		Config:     cfg,
		DB:         db.Ent,
		DBPinger:   db,
		FlashStore: flash.NewMemoryStore(),
		Gatherer:   prometheus.DefaultGatherer,
		Log:        log,
	}

	if cfg.RedisURL != "" {
		redisClient, err := cache.NewClient(ctx, cfg.RedisURL, log)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer redisClient.Close()

		deps.Redis = redisClient
		deps.FlashStore = flash.NewRedisStore(redisClient.Redis, flashTTL)
	} else {
		log.Info("flash messages kept in memory (no REDIS_URL configured)")
	}

	deps.Metrics = metrics.New(prometheus.DefaultRegisterer)
	provider := newProvider(cfg, deps.Metrics)
	deps.Provider = provider

	srv, err := server.New(deps)
	if err != nil {
		return err
	}
	defer srv.Close()

	apps := provisioning.NewService(db.Ent, provider, cfg.TwilioAppSID, cfg.TwilioCountry, log)
	appCheck := jobs.NewAppCheck(apps, webhookURL(cfg), log).WithNotifier(newNotifier(cfg))
	cronManager := jobs.NewCronManager(appCheck, cfg.AppCheckSchedule, log)
	if cfg.TwilioAppSID != "" {
		if err := cronManager.SetupJobs(); err != nil {
			return err
		}
		cronManager.Start()
	} else {
		log.Warn("TWILIO_APP_SID not set; numbers cannot be purchased and the app check is disabled")
	}

	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Info("calltracker starting",
		"address", address,
		"webhook", webhookURL(cfg),
		"dashboard_auth", cfg.DashboardAuthEnabled(),
		"signature_validation", cfg.TwilioValidateSignature,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cronManager.Stop(shutdownCtx)

	if err := srv.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server gracefully stopped")
	return nil
}
