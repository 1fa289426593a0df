package handler

import (
	"net/http"

	"anoa.com/gatheringregistry/internal/dto"
	"anoa.com/gatheringregistry/internal/service"
	"anoa.com/gatheringregistry/pkg/response"
	"github.com/gin-gonic/gin"
)

type GatheringHandler struct {
	gatheringService service.GatheringService
}

func NewGatheringHandler(gatheringService service.GatheringService) *GatheringHandler {
	return &GatheringHandler{gatheringService: gatheringService}
}

// GetAll lists gatherings ordered by date ascending, each carrying its
// live registration count.
func (h *GatheringHandler) GetAll(c *gin.Context) {
	gatherings, err := h.gatheringService.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gatherings)
}

func (h *GatheringHandler) Create(c *gin.Context) {
	var input dto.CreateGatheringInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	gathering, err := h.gatheringService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gathering)
}

func (h *GatheringHandler) Update(c *gin.Context) {
	var input dto.UpdateGatheringInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	gathering, err := h.gatheringService.Update(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gathering)
}

func (h *GatheringHandler) Delete(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.gatheringService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c)
}
