package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gymapi/internal/models/request_models"
	"gymapi/internal/services"
	"gymapi/pkg/utils"
)

// pathID parses the :id segment. Negative and non numeric ids are rejected.
func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil {
		return 0, utils.ErrInvalidID
	}
	return uint(id), nil
}

func listRequest(c *gin.Context) (request_models.ListRequest, error) {
	page := request_models.DefaultListRequest()

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		return page, utils.ErrInvalidPage
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(request_models.DefaultLimit)))
	if err != nil || limit < 1 || limit > request_models.MaxLimit {
		return page, utils.ErrInvalidPageSize
	}

	page.Skip = skip
	page.Limit = limit
	return page, nil
}

// bindBody decodes and validates the JSON body, answering 400 on failure.
func bindBody(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.HandleServiceError(c, services.DescribeValidationError(err))
		return false
	}
	return true
}
