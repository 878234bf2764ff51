package schedule

import (
	"strings"

	"github.com/courtside-labs/courtside/internal/model"
)

const (
	baseScore = 5
	minScore  = 1
	maxScore  = 10
)

// West-coast franchises used by the zip-code heuristic.
var westCoastTeams = map[string]bool{
	"LAL": true,
	"LAC": true,
	"GSW": true,
	"SAC": true,
}

// Score rates a game from 1 (skip it) to 10 (must watch) for one user.
// Pure function: same game and preferences always produce the same score.
func Score(game model.Game, prefs model.Preferences) int {
	score := baseScore

	for _, code := range prefs.FavoriteNBATeams {
		if game.HasTeam(code) {
			score += 3
			break
		}
	}

	if strings.HasPrefix(prefs.ZipCode, "9") &&
		(westCoastTeams[game.Home.Tricode] || westCoastTeams[game.Away.Tricode]) {
		score += 2
	}

	label := strings.ToLower(game.Label + " " + game.SubLabel)
	if strings.Contains(label, "playoff") || strings.Contains(label, "finals") {
		score += 2
	}

	// Teams that have not played yet carry no record signal; they are left
	// out of the average rather than treated as 0-0 = .000.
	if avg, ok := averageWinPct(game.Home, game.Away); ok {
		switch {
		case avg > 0.7:
			score++
		case avg < 0.3:
			score--
		}
	}

	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

// ScoreWeek annotates every game in the week with its priority.
func ScoreWeek(week model.WeekSchedule, prefs model.Preferences) []model.ScoredGame {
	var scored []model.ScoredGame
	for _, d := range week.Dates {
		for _, g := range d.Games {
			if g.Date == "" {
				g.Date = d.Date
			}
			scored = append(scored, model.ScoredGame{Game: g, Priority: Score(g, prefs)})
		}
	}
	return scored
}

func averageWinPct(teams ...model.Team) (float64, bool) {
	var sum float64
	var counted int
	for _, t := range teams {
		if pct, ok := t.WinPct(); ok {
			sum += pct
			counted++
		}
	}
	if counted == 0 {
		return 0, false
	}
	return sum / float64(counted), true
}
