package packets

import "github.com/courtside-labs/courtside/internal/model"

// OptimizeScheduleRequest asks for a TV plan. week_data is optional; when
// absent the current week is pulled from the league feed. TV count and the
// rest of the knobs ride in on preferences.
type OptimizeScheduleRequest struct {
	WeekData    *model.WeekSchedule `json:"week_data"`
	Preferences model.Preferences   `json:"preferences"`
}

// Preferences is optional on the email and export shapes; a missing blob
// means the defaults (single TV, no favorites).
type EmailScheduleRequest struct {
	WeekData       *model.WeekSchedule `json:"week_data"`
	Preferences    *model.Preferences  `json:"preferences"`
	RecipientEmail string              `json:"recipient_email" binding:"required,email"`
}

type ExportScheduleRequest struct {
	WeekData    *model.WeekSchedule `json:"week_data"`
	Preferences *model.Preferences  `json:"preferences"`
	Name        string              `json:"name"`
}

type WeekQuery struct {
	Date string `form:"date"` // YYYY-MM-DD; empty means today
}
