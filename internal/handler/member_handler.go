package handler

import (
	"net/http"

	"anoa.com/gatheringregistry/internal/dto"
	"anoa.com/gatheringregistry/internal/service"
	"anoa.com/gatheringregistry/pkg/response"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) GetAll(c *gin.Context) {
	var filter dto.MemberFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	members, err := h.memberService.GetAll(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, members)
}

func (h *MemberHandler) Create(c *gin.Context) {
	var input dto.CreateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, member)
}

func (h *MemberHandler) Update(c *gin.Context) {
	var input dto.UpdateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	member, err := h.memberService.Update(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, member)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.memberService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c)
}
