package nba

import (
	"time"

	"github.com/courtside-labs/courtside/internal/model"
)

func mapSchedule(payload scheduleResponse) model.WeekSchedule {
	var week model.WeekSchedule
	for _, gd := range payload.LeagueSchedule.GameDates {
		date := normalizeFeedDate(gd.GameDate)
		mapped := model.GameDate{Date: date}
		for _, g := range gd.Games {
			mapped.Games = append(mapped.Games, mapGame(g, date))
		}
		week.Dates = append(week.Dates, mapped)
	}
	return week
}

func mapGame(g gameResponse, date string) model.Game {
	return model.Game{
		ID:       g.GameID,
		Date:     date,
		TimeSlot: g.GameStatusText,
		Arena:    g.ArenaName,
		Label:    g.GameLabel,
		SubLabel: g.GameSubLabel,
		Home:     mapTeam(g.HomeTeam),
		Away:     mapTeam(g.AwayTeam),
	}
}

func mapTeam(t teamResponse) model.Team {
	return model.Team{
		ID:      t.TeamID,
		Name:    t.TeamName,
		City:    t.TeamCity,
		Tricode: t.TeamTricode,
		Wins:    t.Wins,
		Losses:  t.Losses,
	}
}

// normalizeFeedDate accepts the feed's "01/05/2026 00:00:00" form as well
// as plain YYYY-MM-DD, and returns YYYY-MM-DD. Anything else passes
// through untouched.
func normalizeFeedDate(raw string) string {
	for _, layout := range []string{"01/02/2006 15:04:05", "01/02/2006", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}

// WeekOf filters the season schedule down to the seven dates starting at
// the given day.
func WeekOf(season model.WeekSchedule, start time.Time) model.WeekSchedule {
	from := start.Format("2006-01-02")
	to := start.AddDate(0, 0, 7).Format("2006-01-02")

	var week model.WeekSchedule
	for _, gd := range season.Dates {
		if gd.Date >= from && gd.Date < to {
			week.Dates = append(week.Dates, gd)
		}
	}
	return week
}
