package model

// Team is one side of a scheduled game, as reported by the league feed.
type Team struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Tricode string `json:"tricode"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
}

// WinPct returns the team's winning percentage and whether the team has
// played any games. Teams with no games played have no meaningful
// percentage and must not influence scoring.
func (t Team) WinPct() (float64, bool) {
	played := t.Wins + t.Losses
	if played == 0 {
		return 0, false
	}
	return float64(t.Wins) / float64(played), true
}

// Game is one scheduled contest from the league feed. Never mutated after
// mapping; scoring wraps it in a ScoredGame instead.
type Game struct {
	ID       string `json:"game_id"`
	Date     string `json:"date"`      // YYYY-MM-DD
	TimeSlot string `json:"time_slot"` // displayed start-time text, e.g. "7:00 pm ET"
	Arena    string `json:"arena"`
	Label    string `json:"label"`     // e.g. "NBA Finals", "Emirates NBA Cup"
	SubLabel string `json:"sub_label"` // e.g. "Game 3"
	Home     Team   `json:"home"`
	Away     Team   `json:"away"`
}

// HasTeam reports whether either side matches the given tricode.
func (g Game) HasTeam(tricode string) bool {
	return g.Home.Tricode == tricode || g.Away.Tricode == tricode
}

// ScoredGame is a Game annotated with its viewing priority. Recomputed on
// every request, never persisted.
type ScoredGame struct {
	Game
	Priority int `json:"priority"`
}

// GameDate groups the games that tip off on a single calendar date.
type GameDate struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// WeekSchedule is the slice of the season schedule a request operates on.
type WeekSchedule struct {
	Dates []GameDate `json:"dates"`
}

// Games flattens the week into a single list.
func (w WeekSchedule) Games() []Game {
	var all []Game
	for _, d := range w.Dates {
		all = append(all, d.Games...)
	}
	return all
}
