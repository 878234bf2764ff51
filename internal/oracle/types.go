package oracle

import "github.com/courtside-labs/courtside/internal/model"

// Plan is the oracle's proposal after schema checking and mapping. It is
// still untrusted: callers must run it through the allocator repair pass
// before using it.
type Plan struct {
	Assignments     []model.Assignment `json:"assignments"`
	Recommendations []string           `json:"recommendations"`
	WeekSummary     string             `json:"week_summary"`
}

// Wire shape the oracle is instructed to produce. Arrays are decoded into
// pointers so a missing field is distinguishable from an empty one.
type planResponse struct {
	TVAssignments   *[]wireAssignment `json:"tvAssignments"`
	Recommendations *[]string         `json:"recommendations"`
	WeekSummary     string            `json:"weekSummary"`
}

type wireAssignment struct {
	GameID    string `json:"gameId"`
	TVNumber  int    `json:"tvNumber"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
	Reasoning string `json:"reasoning"`
}

// Chat-completions request/response envelope.

type completionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
