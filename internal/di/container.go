package di

import (
	"log/slog"
	"time"

	alertRepo "github.com/dvcwatch/availability-alerts/internal/modules/alert/repository"
	alertService "github.com/dvcwatch/availability-alerts/internal/modules/alert/service"
	availabilityClient "github.com/dvcwatch/availability-alerts/internal/modules/availability/client"
	feedService "github.com/dvcwatch/availability-alerts/internal/modules/feed/service"
	"github.com/dvcwatch/availability-alerts/internal/shared/config"
	httpServer "github.com/dvcwatch/availability-alerts/internal/transport/http"
	"github.com/dvcwatch/availability-alerts/internal/transport/notify"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container. configPath is the
// required positional argument from the command line.
func Setup(configPath string) (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register result store
	do.Provide(injector, func(i do.Injector) (alertRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := alertRepo.Open(cfg.DatabasePath)
		if err != nil {
			return nil, oops.With("context", "failed to open result store").Wrap(err)
		}
		return repo, nil
	})

	// Register availability client
	do.Provide(injector, func(i do.Injector) (*availabilityClient.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return availabilityClient.New(cfg.BaseURL, time.Duration(cfg.FetchTimeout)*time.Second), nil
	})

	// Register feed service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		return feedService.New(), nil
	})

	// Register alert service with per-alert notifiers
	do.Provide(injector, func(i do.Injector) (*alertService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client := do.MustInvoke[*availabilityClient.Client](i)
		repo := do.MustInvoke[alertRepo.Repository](i)
		feed := do.MustInvoke[*feedService.Service](i)

		notifiers := make(map[string]notify.Notifier, len(cfg.Alerts))
		for idx := range cfg.Alerts {
			alert := &cfg.Alerts[idx]
			n, err := notify.ForAlert(alert)
			if err != nil {
				return nil, oops.With("alert", alert.Name).Wrap(err)
			}
			if n != nil {
				notifiers[alert.Name] = n
			}
		}

		return alertService.New(cfg, client, repo, notifiers, feed), nil
	})

	// Register HTTP server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		feed := do.MustInvoke[*feedService.Service](i)
		server := httpServer.New(cfg, feed)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	if svc, err := do.Invoke[*alertService.Service](injector); err == nil && svc != nil {
		svc.Stop()
	}
	return nil
}
