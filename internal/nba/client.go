package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/courtside-labs/courtside/internal/model"
)

const defaultScheduleURL = "https://cdn.nba.com/static/json/staticData/scheduleLeagueV2_1.json"

// Config controls how the client reaches the league schedule feed.
type Config struct {
	ScheduleURL string
	HTTPClient  *http.Client
}

// Client fetches the season-long schedule feed and maps it to domain
// models. The feed is a static JSON document, so there is no paging and
// no authentication.
type Client struct {
	scheduleURL string
	httpClient  *http.Client
}

func NewClient(cfg Config) *Client {
	url := cfg.ScheduleURL
	if url == "" {
		url = defaultScheduleURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{scheduleURL: url, httpClient: httpClient}
}

// FetchScheduleRaw returns the feed body unmodified, for the proxy endpoint.
func (c *Client) FetchScheduleRaw(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.scheduleURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("schedule feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("schedule feed: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return io.ReadAll(resp.Body)
}

// FetchSchedule retrieves and maps the full season schedule.
func (c *Client) FetchSchedule(ctx context.Context) (model.WeekSchedule, error) {
	raw, err := c.FetchScheduleRaw(ctx)
	if err != nil {
		return model.WeekSchedule{}, err
	}
	return ParseSchedule(raw)
}

// ParseSchedule decodes raw feed bytes into domain models.
func ParseSchedule(raw []byte) (model.WeekSchedule, error) {
	var payload scheduleResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return model.WeekSchedule{}, fmt.Errorf("schedule feed: decode: %w", err)
	}
	return mapSchedule(payload), nil
}
