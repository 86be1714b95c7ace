package controllers

import (
	"github.com/gin-gonic/gin"
	"gymapi/internal/models/request_models"
	"gymapi/internal/services"
	"gymapi/pkg/utils"
)

type PlansController struct {
	planService services.PlanServiceInterface
}

func NewPlansController(planService services.PlanServiceInterface) *PlansController {
	return &PlansController{
		planService: planService,
	}
}

// ListPlans godoc
// @Summary List plans
// @Description Page through plans ordered by id
// @Tags Plans
// @Produce json
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size (1-100)" default(100)
// @Success 200 {object} utils.APIResponse{data=[]response_models.PlanResponse}
// @Success 204 "No plans found"
// @Failure 400 {object} utils.APIResponse
// @Router /plans [get]
func (p *PlansController) ListPlans(c *gin.Context) {
	page, err := listRequest(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plans, err := p.planService.ListPlans(c.Request.Context(), page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// GetPlanById godoc
// @Summary Get a plan
// @Tags Plans
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=response_models.PlanResponse}
// @Success 204 "Plan not found"
// @Failure 400 {object} utils.APIResponse
// @Router /plans/{id} [get]
func (p *PlansController) GetPlanById(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plan, err := p.planService.GetPlanById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}

// GetPlanByName godoc
// @Summary Get a plan by name
// @Tags Plans
// @Produce json
// @Param name path string true "Plan name"
// @Success 200 {object} utils.APIResponse{data=response_models.PlanResponse}
// @Success 204 "Plan not found"
// @Router /plansByName/{name} [get]
func (p *PlansController) GetPlanByName(c *gin.Context) {
	plan, err := p.planService.GetPlanByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}

// ListMembersOfPlan godoc
// @Summary List the members of a plan
// @Tags Plans
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=[]response_models.MemberResponse}
// @Success 204 "Plan has no members"
// @Failure 400 {object} utils.APIResponse
// @Router /plans/{id}/members [get]
func (p *PlansController) ListMembersOfPlan(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	members, err := p.planService.ListMembersOfPlan(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Members fetched successfully")
}

// CreatePlan godoc
// @Summary Create a plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Plan payload"
// @Success 201 {object} utils.APIResponse{data=response_models.PlanResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /plans [post]
func (p *PlansController) CreatePlan(c *gin.Context) {
	var req request_models.PlanRequest
	if !bindBody(c, &req) {
		return
	}

	plan, err := p.planService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Plan created successfully")
}

// UpdatePlan godoc
// @Summary Replace a plan
// @Description Every field is overwritten, including the optional description
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param request body request_models.PlanRequest true "Plan payload"
// @Success 200 {object} utils.APIResponse{data=response_models.PlanResponse}
// @Success 204 "Plan not found"
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /plans/{id} [put]
func (p *PlansController) UpdatePlan(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.PlanRequest
	if !bindBody(c, &req) {
		return
	}

	plan, err := p.planService.UpdatePlan(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan updated successfully")
}

// DeletePlan godoc
// @Summary Delete a plan
// @Description Refused while members are subscribed to the plan
// @Tags Plans
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=response_models.PlanResponse}
// @Success 204 "Plan not found"
// @Failure 409 {object} utils.APIResponse
// @Router /plans/{id} [delete]
func (p *PlansController) DeletePlan(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plan, err := p.planService.DeletePlan(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan deleted successfully")
}
