package packets

import "encoding/json"

// UpdatePreferencesRequest replaces the user's whole preference blob.
type UpdatePreferencesRequest struct {
	SportsInterests    []string `json:"sportsInterests"`
	NumberOfTVs        int      `json:"numberOfTvs" binding:"required,min=1"`
	TVSetupDescription string   `json:"tvSetupDescription"`
	FavoriteNBATeams   []string `json:"favoriteNbaTeams"`
	ZipCode            string   `json:"zipCode"`
}

type SavePlanRequest struct {
	WeekOf  string          `json:"week_of" binding:"required"`
	Payload json.RawMessage `json:"payload" binding:"required"`
}
