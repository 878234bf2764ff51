package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-labs/courtside/internal/model"
)

func TestSlotMinutes(t *testing.T) {
	tests := []struct {
		slot string
		want int
	}{
		{"7:00 pm ET", 19 * 60},
		{"7:30 pm ET", 19*60 + 30},
		{"10:00 am ET", 10 * 60},
		{"12:00 pm ET", 12 * 60},
		{"12:30 am ET", 30},
		{"Final", 1 << 16},
		{"TBD", 1 << 16},
		{"", 1 << 16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SlotMinutes(tt.slot), "slot %q", tt.slot)
	}
}

func TestSlotMinutesOrdersAnEvening(t *testing.T) {
	early := SlotMinutes("6:00 pm ET")
	mid := SlotMinutes("8:30 pm ET")
	late := SlotMinutes("10:30 pm ET")
	assert.Less(t, early, mid)
	assert.Less(t, mid, late)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Monday, Jan 5", FormatDate("2026-01-05"))
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
}

func TestGroupByTVOrdersListingsChronologically(t *testing.T) {
	games := []model.ScoredGame{
		scoredGame("late", "2026-01-05", "10:00 pm ET", 5, "LAL", "GSW"),
		scoredGame("early", "2026-01-05", "7:00 pm ET", 6, "BOS", "NYK"),
	}
	assignments := []model.Assignment{
		{GameID: "late", TVNumber: 1, Date: "2026-01-05", TimeSlot: "10:00 pm ET"},
		{GameID: "early", TVNumber: 1, Date: "2026-01-05", TimeSlot: "7:00 pm ET"},
		{GameID: "early", TVNumber: 2, Date: "2026-01-05", TimeSlot: "7:00 pm ET"},
	}

	lineups := GroupByTV(assignments, games, 2)
	require.Len(t, lineups, 2)

	tv1 := lineups[0]
	require.Len(t, tv1.Dates, 1)
	require.Len(t, tv1.Dates[0].Listings, 2)
	assert.Equal(t, "early", tv1.Dates[0].Listings[0].Game.ID)
	assert.Equal(t, "late", tv1.Dates[0].Listings[1].Game.ID)

	// An assignment referencing a game we no longer know about is skipped.
	lineups = GroupByTV([]model.Assignment{{GameID: "ghost", TVNumber: 1}}, games, 1)
	require.Len(t, lineups, 1)
	assert.Empty(t, lineups[0].Dates)
}
