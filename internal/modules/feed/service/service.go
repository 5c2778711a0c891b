package service

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/dvcwatch/availability-alerts/internal/modules/feed/domain"
	"github.com/gorilla/feeds"
	"github.com/samber/lo"
)

// maxEvents bounds the in-memory change log. Older events are evicted;
// nothing here is persisted.
const maxEvents = 50

// Service keeps a bounded in-memory log of recent availability changes and
// renders it as an RSS feed per alert.
type Service struct {
	mu     sync.RWMutex
	events []domain.Event
}

// New creates a new feed service
func New() *Service {
	return &Service{}
}

// Record appends a change event, evicting the oldest beyond maxEvents.
func (s *Service) Record(e domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	if len(s.events) > maxEvents {
		s.events = s.events[len(s.events)-maxEvents:]
	}
}

// Events returns the change events for one alert, newest first.
func (s *Service) Events(alertName string) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := lo.Filter(s.events, func(e domain.Event, _ int) bool {
		return e.AlertName == alertName
	})
	return lo.Reverse(matched)
}

// GenerateFeed generates an RSS feed of recent changes for one alert
func (s *Service) GenerateFeed(alertName, baseURL string) (*feeds.Feed, error) {
	events := s.Events(alertName)

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("%s - Availability Changes", alertName),
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/feeds/%s", baseURL, url.PathEscape(alertName))},
		Description: fmt.Sprintf("Availability change feed for alert: %s", alertName),
		Created:     time.Now(),
	}
	if len(events) > 0 {
		feed.Updated = events[0].At
	}

	items := make([]*feeds.Item, 0, len(events))
	for i := range events {
		items = append(items, eventToFeedItem(&events[i]))
	}
	feed.Items = items
	return feed, nil
}

func eventToFeedItem(e *domain.Event) *feeds.Item {
	title := fmt.Sprintf("Availability found for '%s'", e.AlertName)
	if e.Empty {
		title = fmt.Sprintf("No availability for '%s'", e.AlertName)
	}
	return &feeds.Item{
		Title:       title,
		Description: e.Result,
		Created:     e.At,
		Id:          fmt.Sprintf("%s-%d", e.AlertName, e.At.UnixNano()),
	}
}
