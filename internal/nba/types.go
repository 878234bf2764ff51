package nba

// Wire types for the static league schedule feed
// (leagueSchedule.gameDates[].games[] shape).

type scheduleResponse struct {
	LeagueSchedule leagueScheduleResponse `json:"leagueSchedule"`
}

type leagueScheduleResponse struct {
	SeasonYear string             `json:"seasonYear"`
	GameDates  []gameDateResponse `json:"gameDates"`
}

type gameDateResponse struct {
	GameDate string         `json:"gameDate"`
	Games    []gameResponse `json:"games"`
}

type gameResponse struct {
	GameID         string       `json:"gameId"`
	GameStatusText string       `json:"gameStatusText"`
	ArenaName      string       `json:"arenaName"`
	GameLabel      string       `json:"gameLabel"`
	GameSubLabel   string       `json:"gameSubLabel"`
	HomeTeam       teamResponse `json:"homeTeam"`
	AwayTeam       teamResponse `json:"awayTeam"`
}

type teamResponse struct {
	TeamID      int    `json:"teamId"`
	TeamCity    string `json:"teamCity"`
	TeamName    string `json:"teamName"`
	TeamTricode string `json:"teamTricode"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
}
