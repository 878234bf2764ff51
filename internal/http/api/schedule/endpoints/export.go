package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/courtside-labs/courtside/internal/http/api"
	"github.com/courtside-labs/courtside/internal/http/api/schedule/packets"
	"github.com/courtside-labs/courtside/internal/mail"
	"github.com/courtside-labs/courtside/internal/model"
	"github.com/courtside-labs/courtside/internal/storage"
)

type ExportController struct {
	planner *ScheduleController
	exports storage.Storage
}

func ExportModule(planner *ScheduleController, exports storage.Storage) api.Module {
	ctl := &ExportController{planner: planner, exports: exports}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/schedule/export", ctl.exportSchedule)
	})
}

// POST /api/schedule/export
func (e *ExportController) exportSchedule(ctx *gin.Context) (any, *api.APIError) {
	var request packets.ExportScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	prefs := model.DefaultPreferences()
	if request.Preferences != nil {
		prefs = *request.Preferences
	}

	plan, apiErr := e.planner.buildPlan(ctx.Request.Context(), request.WeekData, prefs)
	if apiErr != nil {
		return nil, apiErr
	}

	html, err := mail.RenderCalendar(mail.CalendarData{
		WeekSummary:     plan.WeekSummary,
		Recommendations: plan.Recommendations,
		Lineups:         plan.TVSchedule,
		Conflicts:       len(plan.Conflicts),
	})
	if err != nil {
		log.Error().Err(err).Msg("calendar render failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not render calendar"}
	}

	name := request.Name
	if name == "" {
		name = "nba-week"
	}
	url, err := e.exports.SaveExport(name, []byte(html))
	if err != nil {
		log.Error().Err(err).Msg("export save failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save export"}
	}

	return packets.ExportScheduleResponse{URL: url}, nil
}
