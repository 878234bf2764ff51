package endpoints

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/courtside-labs/courtside/internal/db"
	"github.com/courtside-labs/courtside/internal/http/api"
	"github.com/courtside-labs/courtside/internal/http/api/schedule/packets"
	"github.com/courtside-labs/courtside/internal/mail"
	"github.com/courtside-labs/courtside/internal/model"
)

// Mailer is the slice of the email client this module needs.
type Mailer interface {
	Configured() bool
	Send(ctx context.Context, to, subject, html string) (string, error)
}

const emailSubject = "Your NBA Week"

type MailController struct {
	planner *ScheduleController
	mailer  Mailer
	store   db.Store
}

func MailModule(planner *ScheduleController, mailer Mailer, store db.Store) api.Module {
	ctl := &MailController{planner: planner, mailer: mailer, store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/schedule/email", ctl.emailSchedule)
	})
}

// POST /api/schedule/email
func (m *MailController) emailSchedule(ctx *gin.Context) (any, *api.APIError) {
	var request packets.EmailScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if !m.mailer.Configured() {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "email service not configured"}
	}

	prefs := model.DefaultPreferences()
	if request.Preferences != nil {
		prefs = *request.Preferences
	}

	plan, apiErr := m.planner.buildPlan(ctx.Request.Context(), request.WeekData, prefs)
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

	messageID, err := m.mailer.Send(ctx.Request.Context(), request.RecipientEmail, emailSubject, html)
	if err != nil {
		log.Error().Err(err).Str("recipient", request.RecipientEmail).Msg("email send failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not send email"}
	}

	if m.store != nil {
		if err := m.store.LogEmail(nil, request.RecipientEmail, emailSubject, messageID); err != nil {
			log.Warn().Err(err).Msg("email log write failed")
		}
	}

	return packets.EmailScheduleResponse{Success: true, MessageID: messageID}, nil
}
