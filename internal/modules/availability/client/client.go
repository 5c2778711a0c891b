package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/dvcwatch/availability-alerts/internal/modules/availability/domain"
	apperrors "github.com/dvcwatch/availability-alerts/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// DefaultBaseURL is the public DVC points availability service.
const DefaultBaseURL = "https://dvc-points.herokuapp.com"

const (
	configDateLayout = "2006-01-02"
	apiDateLayout    = "20060102"
)

// Client fetches room inventory from the availability API. One Fetch call
// issues exactly one outbound request; there is no retry.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL. An empty baseURL falls back
// to the public service; a bounded timeout is always applied so a stalled
// remote cannot block the poll loop indefinitely.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// entry mirrors one value of the JSON object returned by the API.
type entry struct {
	ResortName   string  `json:"ResortName"`
	RoomType     string  `json:"RoomType"`
	ViewType     string  `json:"ViewType"`
	Points       float64 `json:"Points"`
	Availability struct {
		Availability string `json:"availability"`
	} `json:"Availability"`
}

// Fetch retrieves the full availability set for the inclusive date range.
// Dates are YYYY-MM-DD strings; a malformed date yields a ValidationError
// before any network call, a non-200 response yields a FetchError carrying
// the reported status.
func (c *Client) Fetch(ctx context.Context, startDate, endDate string) (domain.ResultSet, error) {
	arrival, err := reformatDate("start_date", startDate)
	if err != nil {
		return nil, err
	}
	departure, err := reformatDate("end_date", endDate)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/get-resort-info?arrivalDate=%s&departureDate=%s", c.baseURL, arrival, departure)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, oops.With("url", url).Wrap(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, oops.With("url", url).Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &apperrors.FetchError{StatusCode: resp.StatusCode}
	}

	var payload map[string]entry
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, oops.With("url", url).Wrap(err)
	}

	// Map iteration order is random; sort the entry keys so the result set
	// (and with it the canonical form) is stable across polls.
	keys := lo.Keys(payload)
	sort.Strings(keys)

	records := make(domain.ResultSet, 0, len(keys))
	for _, key := range keys {
		e := payload[key]
		records = append(records, domain.Record{
			ResortName:   e.ResortName,
			RoomType:     e.RoomType,
			ViewType:     e.ViewType,
			Points:       e.Points,
			Availability: e.Availability.Availability,
		})
	}
	return records, nil
}

func reformatDate(field, value string) (string, error) {
	t, err := time.Parse(configDateLayout, value)
	if err != nil {
		return "", &apperrors.ValidationError{Field: field, Value: value}
	}
	return t.Format(apiDateLayout), nil
}
