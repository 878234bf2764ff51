package packets

import (
	"github.com/courtside-labs/courtside/internal/model"
	"github.com/courtside-labs/courtside/internal/schedule"
)

// OptimizeScheduleResponse is the full plan for a week. Conflicts should
// always be empty; they are included so a validation failure is visible to
// the caller instead of buried in logs.
type OptimizeScheduleResponse struct {
	OptimizedGames  []model.ScoredGame   `json:"optimized_games"`
	Assignments     []model.Assignment   `json:"assignments"`
	TVSchedule      []schedule.TVLineup  `json:"tv_schedule"`
	Recommendations []string             `json:"recommendations"`
	WeekSummary     string               `json:"week_summary"`
	Source          string               `json:"source"` // "oracle" or "fallback"
	Conflicts       []model.Conflict     `json:"conflicts,omitempty"`
}

type EmailScheduleResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id"`
}

type ExportScheduleResponse struct {
	URL string `json:"url"`
}
