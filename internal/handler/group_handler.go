package handler

import (
	"net/http"

	"anoa.com/gatheringregistry/internal/dto"
	"anoa.com/gatheringregistry/internal/service"
	"anoa.com/gatheringregistry/pkg/response"
	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groupService service.GroupService
}

func NewGroupHandler(groupService service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

func (h *GroupHandler) GetAll(c *gin.Context) {
	groups, err := h.groupService.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, groups)
}

func (h *GroupHandler) Create(c *gin.Context) {
	var input dto.CreateGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	group, err := h.groupService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, group)
}

func (h *GroupHandler) Update(c *gin.Context) {
	var input dto.UpdateGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	group, err := h.groupService.Update(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, group)
}

func (h *GroupHandler) Delete(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.groupService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c)
}
