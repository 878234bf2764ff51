package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtside-labs/courtside/internal/http/api"
	"github.com/courtside-labs/courtside/internal/http/api/admin/control/packets"
	"github.com/courtside-labs/courtside/internal/model"
	"github.com/courtside-labs/courtside/internal/prefs"
)

type PreferencesController struct {
	store prefs.Store
}

func PreferencesModule(store prefs.Store) api.Module {
	ctl := &PreferencesController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/preferences", ctl.getPreferences)
		c.PUT("/preferences", ctl.updatePreferences)
	})
}

// GET /api/admin/preferences
func (p *PreferencesController) getPreferences(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	loaded, err := p.store.Load(ctx.Request.Context(), user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load preferences"}
	}
	return loaded, nil
}

// PUT /api/admin/preferences
func (p *PreferencesController) updatePreferences(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdatePreferencesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	updated := model.Preferences{
		SportsInterests:    request.SportsInterests,
		NumberOfTVs:        request.NumberOfTVs,
		TVSetupDescription: request.TVSetupDescription,
		FavoriteNBATeams:   request.FavoriteNBATeams,
		ZipCode:            request.ZipCode,
	}
	if err := p.store.Save(ctx.Request.Context(), user.ID, updated); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save preferences"}
	}

	return updated, nil
}
