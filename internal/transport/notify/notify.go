package notify

import (
	"context"

	"github.com/dvcwatch/availability-alerts/internal/modules/alert/domain"
)

// Notifier delivers a single alert message. Delivery is fire-and-forget:
// callers log failures and continue the cycle.
type Notifier interface {
	Send(ctx context.Context, title, message string) error
}

// Multi fans a message out to every configured notifier and reports the
// first failure.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, title, message string) error {
	var firstErr error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Send(ctx, title, message); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ForAlert builds the notifier stack for one alert definition. Alerts with
// no notification target configured return nil: the store is still updated
// on change, but nothing is dispatched.
func ForAlert(a *domain.Alert) (Notifier, error) {
	var targets Multi

	if a.Pushover != nil && a.Pushover.UserKey != "" {
		p, err := NewPushover(a.Pushover.UserKey, a.Pushover.APIToken)
		if err != nil {
			return nil, err
		}
		targets = append(targets, p)
	}
	if a.Telegram != nil && a.Telegram.BotToken != "" {
		t, err := NewTelegram(a.Telegram.BotToken, a.Telegram.ChatID)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}

	if len(targets) == 0 {
		return nil, nil
	}
	return targets, nil
}
