package schedule

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/courtside-labs/courtside/internal/model"
)

// ErrInvalidTVCount is returned when the configured TV count is below 1.
var ErrInvalidTVCount = errors.New("tv count must be at least 1")

// Allocator distributes games across the user's TVs. For any date that has
// games, every TV gets at least one assignment, and no TV ever carries two
// different games in the same time slot.
type Allocator struct {
	numTVs int
	prefs  model.Preferences
}

func NewAllocator(prefs model.Preferences) (*Allocator, error) {
	if prefs.NumberOfTVs < 1 {
		return nil, fmt.Errorf("allocator: %w (got %d)", ErrInvalidTVCount, prefs.NumberOfTVs)
	}
	return &Allocator{numTVs: prefs.NumberOfTVs, prefs: prefs}, nil
}

// Allocate builds a full schedule from scratch. This is the deterministic
// path used when no oracle is configured, and the reference behavior the
// repair pass holds oracle output to.
func (a *Allocator) Allocate(games []model.ScoredGame) ([]model.Assignment, []model.Conflict) {
	if len(games) == 0 {
		return nil, nil
	}

	var assignments []model.Assignment
	for _, date := range sortedDates(games) {
		assignments = append(assignments, a.allocateDate(date, gamesOn(games, date))...)
	}

	assignments = a.backfill(games, assignments)
	conflicts := a.Validate(assignments)
	return assignments, conflicts
}

// Repair normalizes an untrusted proposal (typically oracle output) so it
// satisfies the same guarantees Allocate provides: assignments referencing
// unknown games or out-of-range TVs are dropped, dates and time slots are
// corrected from the schedule, idle TVs are backfilled, and remaining
// conflicts are reported. Repairing an already-valid schedule is a no-op.
func (a *Allocator) Repair(games []model.ScoredGame, proposed []model.Assignment) ([]model.Assignment, []model.Conflict) {
	if len(games) == 0 {
		return nil, nil
	}

	byID := make(map[string]model.ScoredGame, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	var kept []model.Assignment
	seen := make(map[model.Assignment]bool)
	for _, asn := range proposed {
		game, ok := byID[asn.GameID]
		if !ok {
			log.Warn().Str("game_id", asn.GameID).Msg("dropping assignment for unknown game")
			continue
		}
		if asn.TVNumber < 1 || asn.TVNumber > a.numTVs {
			log.Warn().Int("tv", asn.TVNumber).Msg("dropping assignment for out-of-range tv")
			continue
		}
		// The schedule, not the proposal, is authoritative for when a game airs.
		asn.Date = game.Date
		asn.TimeSlot = game.TimeSlot
		key := asn
		key.Reasoning = ""
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, asn)
	}

	kept = a.backfill(games, kept)
	conflicts := a.Validate(kept)
	return kept, conflicts
}

// Validate scans for two different games sharing one TV at one date and
// time slot. Conflicts are reported to the caller and logged, never
// silently resolved; one occurring means an allocation bug upstream.
func (a *Allocator) Validate(assignments []model.Assignment) []model.Conflict {
	type slotKey struct {
		tv   int
		date string
		slot string
	}
	occupied := make(map[slotKey]string)
	var conflicts []model.Conflict
	for _, asn := range assignments {
		key := slotKey{asn.TVNumber, asn.Date, asn.TimeSlot}
		if prev, ok := occupied[key]; ok && prev != asn.GameID {
			c := model.Conflict{
				TVNumber: asn.TVNumber,
				Date:     asn.Date,
				TimeSlot: asn.TimeSlot,
				GameA:    prev,
				GameB:    asn.GameID,
			}
			conflicts = append(conflicts, c)
			log.Error().
				Int("tv", c.TVNumber).
				Str("date", c.Date).
				Str("time_slot", c.TimeSlot).
				Str("game_a", c.GameA).
				Str("game_b", c.GameB).
				Msg("allocation conflict: one tv, two games, same slot")
			continue
		}
		occupied[key] = asn.GameID
	}
	return conflicts
}

// allocateDate fills all TVs for a single date, one time bucket at a time.
func (a *Allocator) allocateDate(date string, games []model.ScoredGame) []model.Assignment {
	buckets := make(map[string][]model.ScoredGame)
	var slots []string
	for _, g := range games {
		if _, ok := buckets[g.TimeSlot]; !ok {
			slots = append(slots, g.TimeSlot)
		}
		buckets[g.TimeSlot] = append(buckets[g.TimeSlot], g)
	}
	sort.Strings(slots)

	var assignments []model.Assignment
	for _, slot := range slots {
		bucket := buckets[slot]
		if len(bucket) == 1 {
			// No contention: every TV shows the only game on.
			g := bucket[0]
			for tv := 1; tv <= a.numTVs; tv++ {
				assignments = append(assignments, model.Assignment{
					GameID:    g.ID,
					TVNumber:  tv,
					Date:      date,
					TimeSlot:  slot,
					Reasoning: fmt.Sprintf("only game at %s", slot),
				})
			}
			continue
		}

		// Contention: higher-priority games get first pick each time the
		// rotation comes around, so they end up with the larger TV share
		// when the split is uneven.
		sortByPriority(bucket)
		for tv := 1; tv <= a.numTVs; tv++ {
			g := bucket[(tv-1)%len(bucket)]
			assignments = append(assignments, model.Assignment{
				GameID:    g.ID,
				TVNumber:  tv,
				Date:      date,
				TimeSlot:  slot,
				Reasoning: a.contentionReasoning(g),
			})
		}
	}
	return assignments
}

// backfill guarantees utilization: first per date, then one global sweep.
func (a *Allocator) backfill(games []model.ScoredGame, assignments []model.Assignment) []model.Assignment {
	// Per date: a TV with nothing on while games are airing gets the best
	// of that date's games as duplicate coverage.
	for _, date := range sortedDates(games) {
		dateGames := gamesOn(games, date)
		busy := make(map[int]bool)
		for _, asn := range assignments {
			if asn.Date == date {
				busy[asn.TVNumber] = true
			}
		}
		sortByPriority(dateGames)
		idle := 0
		for tv := 1; tv <= a.numTVs; tv++ {
			if busy[tv] {
				continue
			}
			g := dateGames[idle%len(dateGames)]
			idle++
			assignments = append(assignments, model.Assignment{
				GameID:    g.ID,
				TVNumber:  tv,
				Date:      date,
				TimeSlot:  g.TimeSlot,
				Reasoning: "duplicate coverage: no other game free for this tv",
			})
		}
	}

	// Global sweep: a TV idle across the whole week gets the single best
	// game of the dataset as a last-resort filler.
	busy := make(map[int]bool)
	for _, asn := range assignments {
		busy[asn.TVNumber] = true
	}
	for tv := 1; tv <= a.numTVs; tv++ {
		if busy[tv] {
			continue
		}
		best := games[0]
		for _, g := range games[1:] {
			if g.Priority > best.Priority {
				best = g
			}
		}
		assignments = append(assignments, model.Assignment{
			GameID:    best.ID,
			TVNumber:  tv,
			Date:      best.Date,
			TimeSlot:  best.TimeSlot,
			Reasoning: "last-resort filler: tv had nothing scheduled all week",
		})
	}
	return assignments
}

func (a *Allocator) contentionReasoning(g model.ScoredGame) string {
	reason := fmt.Sprintf("priority %d matchup %s @ %s", g.Priority, g.Away.Tricode, g.Home.Tricode)
	if a.prefs.IsFavorite(g.Home.Tricode) || a.prefs.IsFavorite(g.Away.Tricode) {
		reason += " featuring a favorite team"
	}
	return reason
}

// sortByPriority orders games best-first, tie-breaking on game id so the
// allocation is stable run to run.
func sortByPriority(games []model.ScoredGame) {
	sort.SliceStable(games, func(i, j int) bool {
		if games[i].Priority != games[j].Priority {
			return games[i].Priority > games[j].Priority
		}
		return games[i].ID < games[j].ID
	})
}

func sortedDates(games []model.ScoredGame) []string {
	seen := make(map[string]bool)
	var dates []string
	for _, g := range games {
		if !seen[g.Date] {
			seen[g.Date] = true
			dates = append(dates, g.Date)
		}
	}
	sort.Strings(dates)
	return dates
}

func gamesOn(games []model.ScoredGame, date string) []model.ScoredGame {
	var out []model.ScoredGame
	for _, g := range games {
		if g.Date == date {
			out = append(out, g)
		}
	}
	return out
}
