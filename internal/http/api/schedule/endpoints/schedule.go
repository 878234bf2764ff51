package endpoints

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/courtside-labs/courtside/internal/http/api"
	"github.com/courtside-labs/courtside/internal/http/api/schedule/packets"
	"github.com/courtside-labs/courtside/internal/model"
	"github.com/courtside-labs/courtside/internal/nba"
	"github.com/courtside-labs/courtside/internal/oracle"
	"github.com/courtside-labs/courtside/internal/schedule"
)

// Feed is the slice of the league-feed client the planner needs.
type Feed interface {
	FetchScheduleRaw(ctx context.Context) ([]byte, error)
	FetchSchedule(ctx context.Context) (model.WeekSchedule, error)
}

// PlanOracle proposes TV plans; nil or an unconfigured oracle means the
// deterministic allocator runs alone.
type PlanOracle interface {
	Configured() bool
	ProposePlan(ctx context.Context, games []model.ScoredGame, prefs model.Preferences) (*oracle.Plan, error)
}

// LineupPublisher pushes finished lineups out to physical TVs.
type LineupPublisher interface {
	PublishLineups(lineups []schedule.TVLineup)
}

type ScheduleController struct {
	feed      Feed
	oracle    PlanOracle
	publisher LineupPublisher
}

func NewScheduleController(feed Feed, planOracle PlanOracle, publisher LineupPublisher) *ScheduleController {
	return &ScheduleController{feed: feed, oracle: planOracle, publisher: publisher}
}

func ScheduleModule(feed Feed, planOracle PlanOracle, publisher LineupPublisher) api.Module {
	ctl := NewScheduleController(feed, planOracle, publisher)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/schedule/optimize", ctl.optimizeSchedule)
	})
}

// POST /api/schedule/optimize
func (s *ScheduleController) optimizeSchedule(ctx *gin.Context) (any, *api.APIError) {
	var request packets.OptimizeScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	response, apiErr := s.buildPlan(ctx.Request.Context(), request.WeekData, request.Preferences)
	if apiErr != nil {
		return nil, apiErr
	}
	return response, nil
}

// buildPlan runs the whole pipeline: resolve the week, score, ask the
// oracle (when configured), repair, group, publish. Shared with the email
// and export endpoints so every surface hands out the same plan.
func (s *ScheduleController) buildPlan(ctx context.Context, weekData *model.WeekSchedule, prefs model.Preferences) (*packets.OptimizeScheduleResponse, *api.APIError) {
	allocator, err := schedule.NewAllocator(prefs)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	week, apiErr := s.resolveWeek(ctx, weekData)
	if apiErr != nil {
		return nil, apiErr
	}

	scored := schedule.ScoreWeek(week, prefs)

	response := &packets.OptimizeScheduleResponse{OptimizedGames: scored}

	if s.oracle != nil && s.oracle.Configured() {
		plan, err := s.oracle.ProposePlan(ctx, scored, prefs)
		if err != nil {
			// Structured-output mode should guarantee parseable plans, so a
			// failing oracle is a failing request, not a silent downgrade.
			log.Error().Err(err).Msg("oracle plan failed")
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate schedule"}
		}
		response.Assignments, response.Conflicts = allocator.Repair(scored, plan.Assignments)
		response.Recommendations = plan.Recommendations
		response.WeekSummary = plan.WeekSummary
		response.Source = "oracle"
	} else {
		response.Assignments, response.Conflicts = allocator.Allocate(scored)
		response.Recommendations = fallbackRecommendations(scored, prefs)
		response.WeekSummary = fallbackSummary(scored)
		response.Source = "fallback"
	}

	response.TVSchedule = schedule.GroupByTV(response.Assignments, scored, prefs.NumberOfTVs)

	if s.publisher != nil {
		s.publisher.PublishLineups(response.TVSchedule)
	}
	return response, nil
}

// resolveWeek uses the caller's week when given, otherwise the current
// week from the league feed.
func (s *ScheduleController) resolveWeek(ctx context.Context, weekData *model.WeekSchedule) (model.WeekSchedule, *api.APIError) {
	if weekData != nil {
		return *weekData, nil
	}

	season, err := s.feed.FetchSchedule(ctx)
	if err != nil {
		log.Error().Err(err).Msg("schedule feed fetch failed")
		return model.WeekSchedule{}, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch schedule"}
	}
	return nba.WeekOf(season, time.Now()), nil
}

// fallbackSummary stands in for the oracle's one-liner when it is not
// configured.
func fallbackSummary(scored []model.ScoredGame) string {
	if len(scored) == 0 {
		return "No games scheduled this week."
	}

	best := scored[0]
	dates := make(map[string]bool)
	for _, g := range scored {
		dates[g.Date] = true
		if g.Priority > best.Priority {
			best = g
		}
	}
	return fmt.Sprintf("%d games across %d nights; top pick is %s @ %s on %s.",
		len(scored), len(dates), best.Away.Tricode, best.Home.Tricode, schedule.FormatDate(best.Date))
}

func fallbackRecommendations(scored []model.ScoredGame, prefs model.Preferences) []string {
	var recs []string
	for _, g := range scored {
		if prefs.IsFavorite(g.Home.Tricode) || prefs.IsFavorite(g.Away.Tricode) {
			recs = append(recs, fmt.Sprintf("Don't miss %s @ %s on %s at %s.",
				g.Away.Tricode, g.Home.Tricode, schedule.FormatDate(g.Date), g.TimeSlot))
		}
	}
	if len(recs) == 0 && len(scored) > 0 {
		recs = append(recs, "No favorite-team games this week; the schedule leans on matchup quality.")
	}
	return recs
}
