package statsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/zjm/league_manager/model"
	"golang.org/x/oauth2/clientcredentials"
)

const FeedURL = "https://api.leaguestats.example.com"

// Client pulls season fixtures from the league stats provider.
type Client interface {
	LoadSchedule(ctx context.Context, seasonID int32) ([]model.Match, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

// New creates a feed client. When creds is non-nil the underlying HTTP
// client fetches and refreshes an access token with the client-credentials
// grant; otherwise requests go out unauthenticated, which the provider
// allows for public schedule data.
func New(creds *clientcredentials.Config) (Client, error) {
	c := &client{
		url: FeedURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	if creds != nil {
		c.httpClient = creds.Client(context.Background())
		c.httpClient.Timeout = 1 * time.Minute
	}
	return c, nil
}

// NewForTest returns a client that talks to the given URL instead of the
// real feed. Used with an httptest server in tests.
func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *client) LoadSchedule(ctx context.Context, seasonID int32) ([]model.Match, error) {
	url := fmt.Sprintf("%s/v2/seasons/%d/schedule", c.url, seasonID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error parsing response from stats feed: %w", err)
	}

	result := make([]model.Match, 0, len(parsed.Matches))
	for _, fm := range parsed.Matches {
		m, err := fm.toMatch(seasonID)
		if err != nil {
			// One bad row in the feed is not worth failing the import.
			continue
		}
		result = append(result, *m)
	}

	return result, nil
}
