package notify

import (
	"context"
	"fmt"

	"github.com/nicholas-fedor/shoutrrr"
	"github.com/nicholas-fedor/shoutrrr/pkg/router"
	"github.com/nicholas-fedor/shoutrrr/pkg/types"
	"github.com/samber/oops"
)

// Pushover delivers alerts through the Pushover push service.
type Pushover struct {
	sender *router.ServiceRouter
}

func NewPushover(userKey, apiToken string) (*Pushover, error) {
	serviceURL := fmt.Sprintf("pushover://shoutrrr:%s@%s", apiToken, userKey)
	sender, err := shoutrrr.CreateSender(serviceURL)
	if err != nil {
		return nil, oops.With("service", "pushover").Wrap(err)
	}
	return &Pushover{sender: sender}, nil
}

func (p *Pushover) Send(_ context.Context, title, message string) error {
	params := &types.Params{"title": title}
	for _, err := range p.sender.Send(message, params) {
		if err != nil {
			return oops.With("service", "pushover").Wrap(err)
		}
	}
	return nil
}
