package schedule

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/courtside-labs/courtside/internal/model"
)

// TVListing is one game on one TV's lineup for a date.
type TVListing struct {
	Game      model.ScoredGame `json:"game"`
	TimeSlot  string           `json:"time_slot"`
	Reasoning string           `json:"reasoning"`
}

// TVDateLineup is everything one TV shows on one date, in tip-off order.
type TVDateLineup struct {
	Date     string      `json:"date"`
	Listings []TVListing `json:"listings"`
}

// TVLineup is the full week for one TV.
type TVLineup struct {
	TVNumber int            `json:"tv_number"`
	Dates    []TVDateLineup `json:"dates"`
}

// GroupByTV reshapes flat assignments into the per-TV, per-date layout used
// by the calendar email and the API response. Assignments referencing games
// missing from the list are skipped.
func GroupByTV(assignments []model.Assignment, games []model.ScoredGame, numTVs int) []TVLineup {
	byID := make(map[string]model.ScoredGame, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	lineups := make([]TVLineup, 0, numTVs)
	for tv := 1; tv <= numTVs; tv++ {
		byDate := make(map[string][]TVListing)
		for _, asn := range assignments {
			if asn.TVNumber != tv {
				continue
			}
			game, ok := byID[asn.GameID]
			if !ok {
				continue
			}
			byDate[asn.Date] = append(byDate[asn.Date], TVListing{
				Game:      game,
				TimeSlot:  asn.TimeSlot,
				Reasoning: asn.Reasoning,
			})
		}

		dates := make([]string, 0, len(byDate))
		for d := range byDate {
			dates = append(dates, d)
		}
		sort.Strings(dates)

		lineup := TVLineup{TVNumber: tv}
		for _, d := range dates {
			listings := byDate[d]
			sort.SliceStable(listings, func(i, j int) bool {
				return SlotMinutes(listings[i].TimeSlot) < SlotMinutes(listings[j].TimeSlot)
			})
			lineup.Dates = append(lineup.Dates, TVDateLineup{Date: d, Listings: listings})
		}
		lineups = append(lineups, lineup)
	}
	return lineups
}

// SlotMinutes converts a displayed start time like "7:30 pm ET" into
// minutes after midnight for chronological display ordering. Unparseable
// slots sort last, which keeps "Final" and "TBD" rows out of the way.
func SlotMinutes(slot string) int {
	fields := strings.Fields(strings.ToLower(slot))
	if len(fields) < 2 {
		return 1 << 16
	}

	clock := fields[0]
	meridiem := fields[1]
	parts := strings.SplitN(clock, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 1 || hour > 12 {
		return 1 << 16
	}
	minute := 0
	if len(parts) == 2 {
		if minute, err = strconv.Atoi(parts[1]); err != nil || minute < 0 || minute > 59 {
			return 1 << 16
		}
	}

	switch meridiem {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	default:
		return 1 << 16
	}
	return hour*60 + minute
}

// FormatDate renders a feed date (YYYY-MM-DD) for humans, e.g.
// "Monday, Jan 2". Unparseable input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, Jan 2")
}
