package controllers

import (
	"github.com/gin-gonic/gin"
	"gymapi/internal/models/request_models"
	"gymapi/internal/services"
	"gymapi/pkg/utils"
)

type MembersController struct {
	memberService services.MemberServiceInterface
}

func NewMembersController(memberService services.MemberServiceInterface) *MembersController {
	return &MembersController{
		memberService: memberService,
	}
}

// ListMembers godoc
// @Summary List members
// @Description Page through members ordered by id
// @Tags Members
// @Produce json
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size (1-100)" default(100)
// @Success 200 {object} utils.APIResponse{data=[]response_models.MemberResponse}
// @Success 204 "No members found"
// @Failure 400 {object} utils.APIResponse
// @Router /members [get]
func (m *MembersController) ListMembers(c *gin.Context) {
	page, err := listRequest(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	members, err := m.memberService.ListMembers(c.Request.Context(), page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Members fetched successfully")
}

// GetMemberById godoc
// @Summary Get a member
// @Tags Members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} utils.APIResponse{data=response_models.MemberResponse}
// @Success 204 "Member not found"
// @Failure 400 {object} utils.APIResponse
// @Router /members/{id} [get]
func (m *MembersController) GetMemberById(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	member, err := m.memberService.GetMemberById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member fetched successfully")
}

// GetMemberByName godoc
// @Summary Get a member by first and last name
// @Tags Members
// @Produce json
// @Param first_name path string true "First name"
// @Param last_name path string true "Last name"
// @Success 200 {object} utils.APIResponse{data=response_models.MemberResponse}
// @Success 204 "Member not found"
// @Router /membersByName/{first_name}/{last_name} [get]
func (m *MembersController) GetMemberByName(c *gin.Context) {
	member, err := m.memberService.GetMemberByName(c.Request.Context(), c.Param("first_name"), c.Param("last_name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member fetched successfully")
}

// CreateMember godoc
// @Summary Enrol a member in a plan
// @Description first_name and last_name are optional. An omitted name is stored and returned as an empty string, never null.
// @Tags Members
// @Accept json
// @Produce json
// @Param request body request_models.MemberRequest true "Member payload"
// @Success 201 {object} utils.APIResponse{data=response_models.MemberResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /members [post]
func (m *MembersController) CreateMember(c *gin.Context) {
	var req request_models.MemberRequest
	if !bindBody(c, &req) {
		return
	}

	member, err := m.memberService.CreateMember(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, member, "Member created successfully")
}

// UpdateMember godoc
// @Summary Replace a member
// @Description Every field is overwritten. The new plan must exist. Omitted names become empty strings.
// @Tags Members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param request body request_models.MemberRequest true "Member payload"
// @Success 200 {object} utils.APIResponse{data=response_models.MemberResponse}
// @Success 204 "Member not found"
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /members/{id} [put]
func (m *MembersController) UpdateMember(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.MemberRequest
	if !bindBody(c, &req) {
		return
	}

	member, err := m.memberService.UpdateMember(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member updated successfully")
}

// DeleteMember godoc
// @Summary Delete a member
// @Tags Members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} utils.APIResponse{data=response_models.MemberResponse}
// @Success 204 "Member not found"
// @Failure 400 {object} utils.APIResponse
// @Router /members/{id} [delete]
func (m *MembersController) DeleteMember(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	member, err := m.memberService.DeleteMember(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member deleted successfully")
}
