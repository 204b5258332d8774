package campaign

import (
	"errors"
	"net/http"
	"strconv"

	"adconnect/internal/pkg/response"
	"adconnect/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group already gated by JWTAuth + SponsorOnly.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/campaigns", h.List)
	rg.POST("/campaigns", h.Create)
	rg.GET("/campaigns/:id", h.Get)
	rg.PUT("/campaigns/:id", h.Update)
	rg.DELETE("/campaigns/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	sponsorID := c.GetInt64("user_id")

	campaigns, err := h.service.ListForSponsor(c.Request.Context(), sponsorID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load campaigns")
		return
	}

	items := make([]CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		items = append(items, toCampaignResponse(&campaigns[i]))
	}

	response.Success(c, http.StatusOK, gin.H{"campaigns": items})
}

func (h *Handler) Create(c *gin.Context) {
	sponsorID := c.GetInt64("user_id")

	var form CampaignForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&form); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	created, err := h.service.Create(c.Request.Context(), sponsorID, form)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must use the YYYY-MM-DD format")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create campaign")
		return
	}

	response.SuccessMessage(c, http.StatusCreated, "Campaign created successfully!", gin.H{
		"campaign": toCampaignResponse(created),
	})
}

func (h *Handler) Get(c *gin.Context) {
	sponsorID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid campaign ID")
		return
	}

	campaignRow, err := h.service.GetOwned(c.Request.Context(), sponsorID, id)
	if err != nil {
		h.writeServiceError(c, err, "Failed to load campaign")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"campaign": toCampaignResponse(campaignRow)})
}

func (h *Handler) Update(c *gin.Context) {
	sponsorID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid campaign ID")
		return
	}

	var form CampaignForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&form); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), sponsorID, id, form)
	if err != nil {
		h.writeServiceError(c, err, "Failed to update campaign")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Campaign updated successfully!", gin.H{
		"campaign": toCampaignResponse(updated),
	})
}

func (h *Handler) Delete(c *gin.Context) {
	sponsorID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid campaign ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), sponsorID, id); err != nil {
		h.writeServiceError(c, err, "Failed to delete campaign")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Campaign deleted successfully!", nil)
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Campaign not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "CAMPAIGN_FORBIDDEN", "You don't own this campaign")
	case errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must use the YYYY-MM-DD format")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
