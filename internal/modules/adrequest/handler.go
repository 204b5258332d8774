package adrequest

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

// RegisterSponsorRoutes expects a group gated by JWTAuth + SponsorOnly.
func (h *Handler) RegisterSponsorRoutes(rg *gin.RouterGroup) {
	rg.GET("/ad-requests", h.SponsorList)
	rg.GET("/influencers", h.SponsorListInfluencers)
	rg.POST("/campaigns/:id/ad-requests", h.SponsorCreate)
	rg.GET("/ad-requests/:id", h.SponsorGet)
	rg.PUT("/ad-requests/:id", h.SponsorUpdate)
	rg.DELETE("/ad-requests/:id", h.SponsorDelete)
}

// RegisterInfluencerRoutes expects a group gated by JWTAuth + InfluencerOnly.
func (h *Handler) RegisterInfluencerRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.InfluencerDashboard)
	rg.GET("/ad-requests", h.InfluencerList)
	rg.POST("/ad-requests/:id/respond", h.InfluencerRespond)
}

/* -------- Sponsor handlers -------- */

func (h *Handler) SponsorList(c *gin.Context) {
	sponsorID := c.GetInt64("user_id")

	rows, err := h.service.ListForSponsor(c.Request.Context(), sponsorID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load ad requests")
		return
	}

	items := make([]SponsorAdRequestItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toSponsorItem(row))
	}

	response.Success(c, http.StatusOK, gin.H{"ad_requests": items})
}

func (h *Handler) SponsorListInfluencers(c *gin.Context) {
	influencers, err := h.service.ListInfluencers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load influencers")
		return
	}

	items := make([]InfluencerItem, 0, len(influencers))
	for i := range influencers {
		items = append(items, toInfluencerItem(&influencers[i]))
	}

	response.Success(c, http.StatusOK, gin.H{"influencers": items})
}

func (h *Handler) SponsorCreate(c *gin.Context) {
	sponsorID := c.GetInt64("user_id")

	campaignID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid campaign ID")
		return
	}

	var form CreateAdRequestForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&form); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	created, err := h.service.CreateForCampaign(c.Request.Context(), sponsorID, campaignID, form)
	if err != nil {
		h.writeServiceError(c, err, "Failed to create ad request")
		return
	}

	response.SuccessMessage(c, http.StatusCreated, "Ad request created successfully!", gin.H{
		"ad_request": toAdRequestResponse(created),
	})
}

func (h *Handler) SponsorGet(c *gin.Context) {
	sponsorID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ad request ID")
		return
	}

	a, err := h.service.GetOwnedBySponsor(c.Request.Context(), sponsorID, id)
	if err != nil {
		h.writeServiceError(c, err, "Failed to load ad request")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ad_request": toAdRequestResponse(a)})
}

func (h *Handler) SponsorUpdate(c *gin.Context) {
	sponsorID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ad request ID")
		return
	}

	var form EditAdRequestForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&form); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	updated, err := h.service.UpdateBySponsor(c.Request.Context(), sponsorID, id, form)
	if err != nil {
		h.writeServiceError(c, err, "Failed to update ad request")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Ad request updated successfully!", gin.H{
		"ad_request": toAdRequestResponse(updated),
	})
}

func (h *Handler) SponsorDelete(c *gin.Context) {
	sponsorID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ad request ID")
		return
	}

	if err := h.service.DeleteBySponsor(c.Request.Context(), sponsorID, id); err != nil {
		h.writeServiceError(c, err, "Failed to delete ad request")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Ad request deleted successfully!", nil)
}

/* -------- Influencer handlers -------- */

func (h *Handler) InfluencerDashboard(c *gin.Context) {
	influencerID := c.GetInt64("user_id")

	dashboard, err := h.service.DashboardForInfluencer(c.Request.Context(), influencerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load dashboard")
		return
	}

	response.Success(c, http.StatusOK, dashboard)
}

func (h *Handler) InfluencerList(c *gin.Context) {
	influencerID := c.GetInt64("user_id")

	requests, err := h.service.ListForInfluencer(c.Request.Context(), influencerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load ad requests")
		return
	}

	items := make([]AdRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, toAdRequestResponse(&requests[i]))
	}

	response.Success(c, http.StatusOK, gin.H{"ad_requests": items})
}

func (h *Handler) InfluencerRespond(c *gin.Context) {
	influencerID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ad request ID")
		return
	}

	var form RespondForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.Respond(c.Request.Context(), influencerID, id, form)
	if err != nil {
		h.writeServiceError(c, err, "Failed to respond to ad request")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Ad request responded successfully!", gin.H{
		"ad_request": toAdRequestResponse(updated),
	})
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Ad request not found")
	case errors.Is(err, ErrCampaignNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Campaign not found")
	case errors.Is(err, ErrNotCampaignOwner):
		response.Error(c, http.StatusForbidden, "CAMPAIGN_FORBIDDEN", "You don't own this campaign")
	case errors.Is(err, ErrNotRecipient):
		response.Error(c, http.StatusForbidden, "AD_REQUEST_FORBIDDEN", "This ad request is addressed to another influencer")
	case errors.Is(err, ErrInvalidInfluencer):
		response.Error(c, http.StatusBadRequest, "INVALID_INFLUENCER", "Target user does not exist or is not an influencer")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Status must be Pending, Accepted or Rejected")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Only pending ad requests can be accepted or rejected")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
