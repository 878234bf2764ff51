package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/courtside-labs/courtside/internal/db"
	"github.com/courtside-labs/courtside/internal/http/api"
	"github.com/courtside-labs/courtside/internal/http/api/admin/control/packets"
	"github.com/courtside-labs/courtside/internal/model"
)

type PlanController struct {
	store db.Store
}

func PlanModule(store db.Store) api.Module {
	ctl := &PlanController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/plans", ctl.listPlans)
		c.POST("/plans", ctl.savePlan)
		c.GET("/plans/:id", ctl.getPlan)
		c.DELETE("/plans/:id", ctl.deletePlan)
	})
}

// GET /api/admin/plans
func (p *PlanController) listPlans(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	plans, err := p.store.ListPlans(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list plans"}
	}
	if plans == nil {
		plans = []model.Plan{}
	}
	return plans, nil
}

// POST /api/admin/plans
func (p *PlanController) savePlan(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.SavePlanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	plan, err := p.store.SavePlan(user.ID, request.WeekOf, request.Payload)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save plan"}
	}
	return plan, nil
}

// GET /api/admin/plans/:id
func (p *PlanController) getPlan(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	plan, err := p.store.GetPlanByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "plan not found"}
	}
	if plan.CreatedBy != user.ID {
		return nil, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
	}
	return plan, nil
}

// DELETE /api/admin/plans/:id
func (p *PlanController) deletePlan(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	owned, err := p.store.GetPlanByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "plan not found"}
	}
	if owned.CreatedBy != user.ID {
		return nil, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
	}

	if err := p.store.DeletePlan(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete plan"}
	}
	return gin.H{"message": "deleted"}, nil
}
