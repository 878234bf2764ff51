package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/courtside-labs/courtside/internal/http/api"
	"github.com/courtside-labs/courtside/internal/http/api/schedule/packets"
	"github.com/courtside-labs/courtside/internal/nba"
)

type FeedController struct {
	feed Feed
}

func FeedModule(feed Feed) api.Module {
	ctl := &FeedController{feed: feed}
	return api.ModuleFunc(func(c *api.Controller) {
		// raw proxy: the feed body is re-served byte for byte
		c.Group.GET("/nba/schedule", ctl.proxySchedule)
		c.PUBLIC_GET("/nba/week", ctl.getWeek)
	})
}

// GET /api/nba/schedule
func (f *FeedController) proxySchedule(ctx *gin.Context) {
	raw, err := f.feed.FetchScheduleRaw(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("schedule feed fetch failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch schedule"})
		return
	}
	ctx.Data(http.StatusOK, "application/json", raw)
}

// GET /api/nba/week?date=YYYY-MM-DD
func (f *FeedController) getWeek(ctx *gin.Context) (any, *api.APIError) {
	var query packets.WeekQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	start := time.Now()
	if query.Date != "" {
		parsed, err := time.Parse("2006-01-02", query.Date)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "date must be YYYY-MM-DD"}
		}
		start = parsed
	}

	season, err := f.feed.FetchSchedule(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("schedule feed fetch failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch schedule"}
	}

	return nba.WeekOf(season, start), nil
}
