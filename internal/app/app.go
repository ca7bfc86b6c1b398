// Package app assembles the patient dashboard from configuration: storage,
// store, service, dashboard state, auth and telemetry.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/auth"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/config"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/dashboard"
	httpserver "github.com/WailSalutem-Health-Care/patient-dashboard/internal/http"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/messaging"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/metrics"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/patient"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/storage"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/telemetry"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 30 * time.Second

// App is a fully wired instance. Close releases everything New opened.
type App struct {
	Config     *config.Config
	Service    *patient.Service
	Dashboard  *dashboard.Dashboard
	Prometheus *metrics.Collector

	kv        storage.KV
	publisher messaging.PublisherInterface
	provider  *telemetry.Provider
	otel      *telemetry.Metrics
	jwks      *auth.JWKS
	perms     auth.Permissions
}

// New opens storage and loads the patient list. Telemetry, event publishing
// and auth are enabled by their config flags. Auth settings are loaded before
// storage is touched. A broker that cannot be reached downgrades to a no-op
// publisher instead of failing startup.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg, publisher: messaging.NopPublisher{}}

	provider, err := telemetry.InitProvider(ctx, cfg.Telemetry())
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}
	a.provider = provider

	a.otel, err = telemetry.InitMetrics()
	if err != nil {
		log.Warn().Err(err).Msg("failed to create OpenTelemetry instruments, continuing without them")
		a.otel = nil
	}

	// The permissions file only matters when tokens are checked.
	authCfg := cfg.Auth()
	a.perms = auth.DefaultPermissions()
	if authCfg.Enabled {
		if authCfg.PermissionsFile != "" {
			a.perms, err = auth.LoadPermissions(authCfg.PermissionsFile)
			if err != nil {
				a.Close(ctx)
				return nil, fmt.Errorf("load permissions: %w", err)
			}
		}
		a.jwks, err = auth.NewJWKS(authCfg.JWKSURL, 0)
		if err != nil {
			a.Close(ctx)
			return nil, fmt.Errorf("load JWKS: %w", err)
		}
	}

	a.kv, err = storage.Open(ctx, cfg.Storage())
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("open storage: %w", err)
	}

	if cfg.EventsEnabled {
		pub, err := messaging.NewPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.Warn().Err(err).Msg("RabbitMQ unavailable, patient events will not be published")
		} else {
			a.publisher = pub
		}
	}

	a.Prometheus = metrics.NewCollector()
	store := patient.NewStore(ctx, patient.NewRepository(a.kv, cfg.StorageKey))

	opts := []patient.Option{
		patient.WithPublisher(a.publisher),
		patient.WithConditionObserver(a.Prometheus),
	}
	if a.otel != nil {
		opts = append(opts, patient.WithMetrics(a.otel))
	}
	a.Service = patient.NewService(store, opts...)
	a.Dashboard = dashboard.New(a.Service)

	log.Info().
		Int("patients", store.Len()).
		Str("driver", cfg.StorageDriver).
		Bool("auth", authCfg.Enabled).
		Bool("events", cfg.EventsEnabled).
		Msg("patient dashboard ready")
	return a, nil
}

// Handler builds the HTTP API over this instance.
func (a *App) Handler() http.Handler {
	deps := httpserver.Deps{
		Patients:       a.Service,
		Dashboard:      a.Dashboard,
		Permissions:    a.perms,
		Metrics:        a.otel,
		Prometheus:     a.Prometheus,
		AllowedOrigins: a.Config.AllowedOrigins,
	}
	if a.jwks != nil {
		deps.Verifier = auth.NewVerifier(a.Config.Auth(), a.jwks)
	}
	return httpserver.SetupRouter(deps)
}

// Serve listens on the configured port until ctx is cancelled, then drains
// in-flight requests.
func (a *App) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", a.Config.Port).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	}

	log.Info().Msg("Received shutdown signal, shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Close releases storage, the broker connection, the JWKS refresher and
// the telemetry exporters. It is safe on a partially built App.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.jwks != nil {
		a.jwks.Close()
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close publisher: %w", err))
		}
	}
	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	if a.provider != nil {
		if err := a.provider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown telemetry: %w", err))
		}
	}
	return errors.Join(errs...)
}
