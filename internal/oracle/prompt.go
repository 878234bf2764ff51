package oracle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/courtside-labs/courtside/internal/model"
)

const systemPrompt = `You are a sports-bar TV scheduling assistant.
Given a week of NBA games with viewing priorities and the user's TV setup,
assign every game to one or more TVs. Rules:
- A TV must never show two different games in the same time slot on the same date.
- When only one game is on in a time slot, put it on every TV.
- Higher-priority games deserve more TVs when games overlap.
- Every TV must show something on any date that has games.
Respond with JSON only, no prose, in this exact shape:
{"tvAssignments":[{"gameId":"...","tvNumber":1,"date":"YYYY-MM-DD","timeSlot":"...","reasoning":"..."}],"recommendations":["..."],"weekSummary":"..."}`

// buildUserPrompt lays out the week and the viewer's setup for the model.
func buildUserPrompt(games []model.ScoredGame, prefs model.Preferences) string {
	byDate := make(map[string][]model.ScoredGame)
	var dates []string
	for _, g := range games {
		if _, ok := byDate[g.Date]; !ok {
			dates = append(dates, g.Date)
		}
		byDate[g.Date] = append(byDate[g.Date], g)
	}
	sort.Strings(dates)

	var b strings.Builder
	fmt.Fprintf(&b, "Number of TVs: %d\n", prefs.NumberOfTVs)
	if len(prefs.FavoriteNBATeams) > 0 {
		fmt.Fprintf(&b, "Favorite teams: %s\n", strings.Join(prefs.FavoriteNBATeams, ", "))
	}
	if prefs.TVSetupDescription != "" {
		fmt.Fprintf(&b, "TV setup: %s\n", prefs.TVSetupDescription)
	}

	b.WriteString("\nGames this week:\n")
	for _, date := range dates {
		fmt.Fprintf(&b, "%s:\n", date)
		for _, g := range byDate[date] {
			fmt.Fprintf(&b, "  - gameId %s: %s @ %s, %s (priority %d)\n",
				g.ID, g.Away.Tricode, g.Home.Tricode, g.TimeSlot, g.Priority)
		}
	}
	return b.String()
}
