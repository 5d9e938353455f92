package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/promarkhq/marketingdb/ent"
	"github.com/promarkhq/marketingdb/ent/campaign"
	"github.com/promarkhq/marketingdb/pkg/ai"
	"github.com/promarkhq/marketingdb/pkg/logger"
	"github.com/promarkhq/marketingdb/pkg/middleware"
)

// CampaignHandler handles campaign operations
type CampaignHandler struct {
	client    *ent.Client
	ai        *ai.Service
	validator *validator.Validate
	log       logger.Logger
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(client *ent.Client, aiService *ai.Service, log logger.Logger) *CampaignHandler {
	if log == nil {
		log = logger.Default()
	}
	return &CampaignHandler{
		client:    client,
		ai:        aiService,
		validator: validator.New(),
		log:       log,
	}
}

type campaignRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=255"`
	Objective string `json:"objective" validate:"max=2000"`
}

// CreateCampaign godoc
// @Summary Create a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body campaignRequest true "Campaign"
// @Success 201 {object} ent.Campaign "Created campaign"
// @Failure 400 {object} map[string]string "Bad request"
// @Router /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c echo.Context) error {
	ctx := c.Request().Context()

	var req campaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	created, err := h.client.Campaign.Create().
		SetName(req.Name).
		SetObjective(req.Objective).
		SetOwnerEmail(middleware.UserEmail(c)).
		SetStatus(campaign.StatusDraft).
		Save(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create campaign",
		})
	}

	h.log.Info("campaign created", "campaign_id", created.ID, "name", created.Name)

	return c.JSON(http.StatusCreated, created)
}

// GetCampaign godoc
// @Summary Get a campaign
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} ent.Campaign "Campaign"
// @Failure 404 {object} map[string]string "Not found"
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid campaign ID",
		})
	}

	found, err := h.client.Campaign.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Campaign not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch campaign",
		})
	}

	return c.JSON(http.StatusOK, found)
}

// ListCampaigns godoc
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Campaigns"
// @Router /campaigns [get]
func (h *CampaignHandler) ListCampaigns(c echo.Context) error {
	ctx := c.Request().Context()

	limit, offset := pagination(c, 20, 100)

	query := h.client.Campaign.Query()
	if status := c.QueryParam("status"); status != "" {
		query = query.Where(campaign.StatusEQ(campaign.Status(status)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to count campaigns",
		})
	}

	campaigns, err := query.
		Order(ent.Desc(campaign.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch campaigns",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"campaigns": campaigns,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

type updateCampaignRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	Objective *string `json:"objective" validate:"omitempty,max=2000"`
	Status    *string `json:"status" validate:"omitempty,oneof=draft active archived"`
}

// UpdateCampaign godoc
// @Summary Update a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param body body updateCampaignRequest true "Fields to update"
// @Success 200 {object} ent.Campaign "Updated campaign"
// @Failure 404 {object} map[string]string "Not found"
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) UpdateCampaign(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid campaign ID",
		})
	}

	var req updateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	upd := h.client.Campaign.UpdateOneID(id)
	if req.Name != nil {
		upd.SetName(*req.Name)
	}
	if req.Objective != nil {
		upd.SetObjective(*req.Objective)
	}
	if req.Status != nil {
		upd.SetStatus(campaign.Status(*req.Status))
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Campaign not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update campaign",
		})
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteCampaign godoc
// @Summary Delete a campaign
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid campaign ID",
		})
	}

	if err := h.client.Campaign.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Campaign not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to delete campaign",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Campaign deleted",
	})
}

// GenerateCopy godoc
// @Summary Generate campaign copy
// @Description Generate marketing copy for the campaign from its name and objective, and persist it
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} map[string]interface{} "Generated copy"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 503 {object} map[string]string "AI service not configured"
// @Router /campaigns/{id}/generate-copy [post]
func (h *CampaignHandler) GenerateCopy(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid campaign ID",
		})
	}

	if h.ai == nil || !h.ai.Configured() {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "AI copy generation is not configured",
		})
	}

	found, err := h.client.Campaign.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Campaign not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch campaign",
		})
	}

	copyText, err := h.ai.GenerateCampaignCopy(ctx, found.Name, found.Objective)
	if err != nil {
		h.log.Error("copy generation failed", "campaign_id", id, "error", err)
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "Copy generation failed",
		})
	}

	updated, err := h.client.Campaign.UpdateOneID(id).
		SetGeneratedCopy(copyText).
		Save(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to save generated copy",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"campaign_id":    updated.ID,
		"generated_copy": updated.GeneratedCopy,
	})
}
