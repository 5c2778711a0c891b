package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	alertDomain "github.com/dvcwatch/availability-alerts/internal/modules/alert/domain"
	alertRepo "github.com/dvcwatch/availability-alerts/internal/modules/alert/repository"
	availabilityDomain "github.com/dvcwatch/availability-alerts/internal/modules/availability/domain"
	"github.com/dvcwatch/availability-alerts/internal/modules/availability/filter"
	feedDomain "github.com/dvcwatch/availability-alerts/internal/modules/feed/domain"
	feedService "github.com/dvcwatch/availability-alerts/internal/modules/feed/service"
	"github.com/dvcwatch/availability-alerts/internal/shared/config"
	"github.com/dvcwatch/availability-alerts/internal/transport/notify"
	"github.com/samber/oops"
)

// notificationTitle is the push message title for every alert.
const notificationTitle = "DVC Availability Alert"

// Fetcher retrieves the full availability set for a date range.
type Fetcher interface {
	Fetch(ctx context.Context, startDate, endDate string) (availabilityDomain.ResultSet, error)
}

// Service runs the poll cycle: fetch, filter, compare with the stored
// last-notified result and dispatch a notification on change.
type Service struct {
	cfg       *config.Config
	fetcher   Fetcher
	repo      alertRepo.Repository
	notifiers map[string]notify.Notifier
	feed      *feedService.Service
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New creates a new alert service. notifiers maps alert names to their
// configured notification targets; alerts without an entry update the
// store silently.
func New(cfg *config.Config, fetcher Fetcher, repo alertRepo.Repository, notifiers map[string]notify.Notifier, feed *feedService.Service) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		cfg:       cfg,
		fetcher:   fetcher,
		repo:      repo,
		notifiers: notifiers,
		feed:      feed,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start begins the polling loop: one immediate cycle, then one per
// configured interval until Stop is called.
func (s *Service) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.pollLoop()
}

// Stop cancels the polling loop and waits for the current cycle to finish.
func (s *Service) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Service) pollLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(time.Duration(s.cfg.PollInterval) * time.Second)
	defer ticker.Stop()

	// Initial check
	s.RunCycle(s.ctx)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.RunCycle(s.ctx)
		}
	}
}

// RunCycle checks every configured alert once, in configuration order.
// A failing alert is logged and skipped so one broken alert does not halt
// the others.
func (s *Service) RunCycle(ctx context.Context) {
	slog.Info("Checking availability", "alerts", len(s.cfg.Alerts))
	for i := range s.cfg.Alerts {
		alert := &s.cfg.Alerts[i]
		if err := s.Check(ctx, alert); err != nil {
			slog.Error("Alert check failed", "alert", alert.Name, "error", err)
		}
	}
}

// Check runs one alert's pipeline. The canonical string of the filtered
// result is compared against the stored last-notified value; on any
// difference the store is updated first, then a notification is dispatched
// when the set is non-empty and the alert has a notification target.
func (s *Service) Check(ctx context.Context, alert *alertDomain.Alert) error {
	records, err := s.fetcher.Fetch(ctx, alert.StartDate, alert.EndDate)
	if err != nil {
		return oops.With("alert", alert.Name).Wrap(err)
	}

	matched := filter.Apply(records, filter.Criteria{
		RoomType:      alert.RoomType,
		ExcludeNonWDW: alert.ExcludeNonWDW,
		ResortNames:   alert.ResortNames,
	})
	result := matched.Canonical()

	last, found, err := s.repo.Get(ctx, alert.Name)
	if err != nil {
		return oops.With("alert", alert.Name).Wrap(err)
	}
	if found && last == result {
		slog.Debug("No change detected", "alert", alert.Name)
		return nil
	}

	if err := s.repo.Put(ctx, alert.Name, result); err != nil {
		return oops.With("alert", alert.Name).Wrap(err)
	}

	empty := len(matched) == 0
	if s.feed != nil {
		s.feed.Record(feedDomain.Event{
			AlertName: alert.Name,
			Result:    result,
			Empty:     empty,
			At:        time.Now(),
		})
	}

	if empty {
		slog.Info("No availability found", "alert", alert.Name)
		return nil
	}

	slog.Info("Availability found", "alert", alert.Name, "rows", len(matched))

	notifier := s.notifiers[alert.Name]
	if notifier == nil {
		return nil
	}
	message := fmt.Sprintf("Availability found for alert '%s':\n%s", alert.Name, result)
	// A dispatch failure must not fail the check: the store already holds
	// the new result, so the next cycle would otherwise stay silent anyway.
	if err := notifier.Send(ctx, notificationTitle, message); err != nil {
		slog.Error("Notification dispatch failed", "alert", alert.Name, "error", err)
	}
	return nil
}
