package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-labs/courtside/internal/model"
)

func TestProxyScheduleServesRawBytes(t *testing.T) {
	raw := []byte(`{"leagueSchedule":{"seasonYear":"2025-26"}}`)
	r := newTestRouter(FeedModule(&stubFeed{raw: raw}))

	req := httptest.NewRequest(http.MethodGet, "/api/nba/schedule", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, raw, w.Body.Bytes(), "feed body must pass through untouched")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestProxyScheduleFeedFailure(t *testing.T) {
	r := newTestRouter(FeedModule(&stubFeed{err: errors.New("upstream down")}))

	req := httptest.NewRequest(http.MethodGet, "/api/nba/schedule", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetWeekFiltersFromDate(t *testing.T) {
	feed := &stubFeed{
		week: model.WeekSchedule{
			Dates: []model.GameDate{
				{Date: "2026-01-05", Games: []model.Game{{ID: "in", Date: "2026-01-05"}}},
				{Date: "2026-01-20", Games: []model.Game{{ID: "out", Date: "2026-01-20"}}},
			},
		},
	}
	r := newTestRouter(FeedModule(feed))

	req := httptest.NewRequest(http.MethodGet, "/api/nba/week?date=2026-01-04", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var week model.WeekSchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &week))
	require.Len(t, week.Dates, 1)
	assert.Equal(t, "2026-01-05", week.Dates[0].Date)
	require.Len(t, week.Games(), 1)
	assert.Equal(t, "in", week.Games()[0].ID)
}

func TestGetWeekRejectsBadDate(t *testing.T) {
	r := newTestRouter(FeedModule(&stubFeed{}))

	req := httptest.NewRequest(http.MethodGet, "/api/nba/week?date=January%205", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
