package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/courtside-labs/courtside/internal/model"
)

var (
	// ErrNotConfigured means no API key was provided; callers downgrade to
	// the deterministic allocator instead of failing the request.
	ErrNotConfigured = errors.New("oracle: no api key configured")

	// ErrBadResponse means the oracle answered but the payload failed the
	// schema check. Structured-output mode is supposed to make this
	// impossible, so it is a hard failure of the AI path.
	ErrBadResponse = errors.New("oracle: response failed schema check")
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

// Config controls how the oracle client reaches the completion API.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Client asks an OpenAI-compatible chat-completion API for a TV plan.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	mdl := cfg.Model
	if mdl == "" {
		mdl = defaultModel
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      mdl,
		httpClient: httpClient,
	}
}

// Configured reports whether a credential is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// ProposePlan sends the week and preferences to the oracle and returns its
// proposed plan. The result has been schema-checked only; it still needs
// the allocator repair pass.
func (c *Client) ProposePlan(ctx context.Context, games []model.ScoredGame, prefs model.Preferences) (*Plan, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	reqBody := completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(games, prefs)},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
		Temperature:    0.2,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oracle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("oracle: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrBadResponse)
	}

	return parsePlan(completion.Choices[0].Message.Content)
}

// parsePlan decodes and schema-checks the JSON the model produced.
func parsePlan(content string) (*Plan, error) {
	var wire planResponse
	if err := json.Unmarshal([]byte(content), &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if wire.TVAssignments == nil || wire.Recommendations == nil {
		return nil, fmt.Errorf("%w: missing required arrays", ErrBadResponse)
	}

	plan := &Plan{
		Recommendations: *wire.Recommendations,
		WeekSummary:     wire.WeekSummary,
	}
	for _, a := range *wire.TVAssignments {
		plan.Assignments = append(plan.Assignments, model.Assignment{
			GameID:    a.GameID,
			TVNumber:  a.TVNumber,
			Date:      a.Date,
			TimeSlot:  a.TimeSlot,
			Reasoning: a.Reasoning,
		})
	}
	return plan, nil
}
