package model

// Preferences is the user-owned viewing configuration. Stored as a single
// JSON blob in the preference store; the zero value is never used directly,
// call DefaultPreferences instead.
type Preferences struct {
	SportsInterests    []string `json:"sportsInterests"`
	NumberOfTVs        int      `json:"numberOfTvs"`
	TVSetupDescription string   `json:"tvSetupDescription"`
	FavoriteNBATeams   []string `json:"favoriteNbaTeams"`
	ZipCode            string   `json:"zipCode"`
}

// DefaultPreferences returns the configuration a new user starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		SportsInterests:  []string{"nba"},
		NumberOfTVs:      1,
		FavoriteNBATeams: []string{},
	}
}

// IsFavorite reports whether the tricode is one of the user's favorite teams.
func (p Preferences) IsFavorite(tricode string) bool {
	for _, code := range p.FavoriteNBATeams {
		if code == tricode {
			return true
		}
	}
	return false
}
