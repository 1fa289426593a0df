package handler

import (
	"net/http"

	"anoa.com/gatheringregistry/internal/dto"
	"anoa.com/gatheringregistry/internal/service"
	"anoa.com/gatheringregistry/pkg/response"
	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registrationService service.RegistrationService
	summaryService      service.SummaryService
}

func NewRegistrationHandler(registrationService service.RegistrationService, summaryService service.SummaryService) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		summaryService:      summaryService,
	}
}

func (h *RegistrationHandler) GetAll(c *gin.Context) {
	registrations, err := h.registrationService.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, registrations)
}

// GetActive lists registrations whose gathering is still ACTIVE, for the
// public landing page.
func (h *RegistrationHandler) GetActive(c *gin.Context) {
	registrations, err := h.registrationService.GetActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, registrations)
}

func (h *RegistrationHandler) GetSummary(c *gin.Context) {
	summary, err := h.summaryService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}

func (h *RegistrationHandler) Create(c *gin.Context) {
	var input dto.CreateRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	registration, err := h.registrationService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, registration)
}

// SelfRegister is the public landing-page form submission.
func (h *RegistrationHandler) SelfRegister(c *gin.Context) {
	var input dto.SelfRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	registration, err := h.registrationService.SelfRegister(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, registration)
}

func (h *RegistrationHandler) Update(c *gin.Context) {
	var input dto.UpdateRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	registration, err := h.registrationService.UpdateStatus(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, registration)
}

func (h *RegistrationHandler) Delete(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.registrationService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c)
}
