package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/promarkhq/marketingdb/ent"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/pkg/jobs"
	"github.com/promarkhq/marketingdb/pkg/logger"
	"github.com/promarkhq/marketingdb/pkg/middleware"
)

const maxBatchContacts = 5000

// BatchHandler handles enrichment batch operations
type BatchHandler struct {
	client    *ent.Client
	validator *validator.Validate
	log       logger.Logger
}

// NewBatchHandler creates a new batch handler
func NewBatchHandler(client *ent.Client, log logger.Logger) *BatchHandler {
	if log == nil {
		log = logger.Default()
	}
	return &BatchHandler{
		client:    client,
		validator: validator.New(),
		log:       log,
	}
}

type contactInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Company     string `json:"company"`
	City        string `json:"city"`
	State       string `json:"state"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	FacebookURL string `json:"facebook_url"`
}

type createBatchRequest struct {
	Name       string         `json:"name" validate:"required,min=1,max=255"`
	CampaignID int            `json:"campaign_id"`
	Contacts   []contactInput `json:"contacts" validate:"required,min=1"`
}

// CreateBatch godoc
// @Summary Create an enrichment batch
// @Description Create a batch and bulk-load its contacts in one transaction
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createBatchRequest true "Batch with contacts"
// @Success 201 {object} map[string]interface{} "Created batch"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /batches [post]
func (h *BatchHandler) CreateBatch(c echo.Context) error {
	ctx := c.Request().Context()

	var req createBatchRequest
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
	if len(req.Contacts) > maxBatchContacts {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Maximum 5000 contacts per batch",
		})
	}

	tx, err := h.client.Tx(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to start transaction",
		})
	}

	create := tx.EnrichmentBatch.Create().
		SetName(req.Name).
		SetOwnerEmail(middleware.UserEmail(c)).
		SetTotalCount(len(req.Contacts)).
		SetStatus(enrichmentbatch.StatusPending)
	if req.CampaignID > 0 {
		create.SetCampaignID(req.CampaignID)
	}
	batch, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		if ent.IsConstraintError(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Campaign not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create batch",
		})
	}

	bulk := make([]*ent.ContactCreate, len(req.Contacts))
	for i, in := range req.Contacts {
		bulk[i] = tx.Contact.Create().
			SetFirstName(in.FirstName).
			SetLastName(in.LastName).
			SetCompany(in.Company).
			SetCity(in.City).
			SetState(in.State).
			SetPhone(in.Phone).
			SetEmail(in.Email).
			SetWebsite(in.Website).
			SetFacebookURL(in.FacebookURL).
			SetStatus(contact.StatusPending).
			SetBatch(batch)
	}
	if _, err := tx.Contact.CreateBulk(bulk...).Save(ctx); err != nil {
		tx.Rollback()
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create contacts",
		})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to commit transaction",
		})
	}

	h.log.Info("batch created", "batch_id", batch.ID, "contacts", len(req.Contacts))

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":          batch.ID,
		"name":        batch.Name,
		"status":      batch.Status,
		"total_count": batch.TotalCount,
		"created_at":  batch.CreatedAt,
	})
}

// GetBatch godoc
// @Summary Get a batch
// @Description Get a batch by ID with its counters
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} map[string]interface{} "Batch"
// @Failure 404 {object} map[string]string "Not found"
// @Router /batches/{id} [get]
func (h *BatchHandler) GetBatch(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid batch ID",
		})
	}

	batch, err := h.client.EnrichmentBatch.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Batch not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch batch",
		})
	}

	return c.JSON(http.StatusOK, batchResponse(batch))
}

// ListBatches godoc
// @Summary List batches
// @Description List batches with optional status filter, newest first
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Batches"
// @Router /batches [get]
func (h *BatchHandler) ListBatches(c echo.Context) error {
	ctx := c.Request().Context()

	limit, offset := pagination(c, 20, 100)

	query := h.client.EnrichmentBatch.Query()
	if status := c.QueryParam("status"); status != "" {
		query = query.Where(enrichmentbatch.StatusEQ(enrichmentbatch.Status(status)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to count batches",
		})
	}

	batches, err := query.
		Order(ent.Desc(enrichmentbatch.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch batches",
		})
	}

	items := make([]map[string]interface{}, len(batches))
	for i, b := range batches {
		items[i] = batchResponse(b)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"batches": items,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// ListBatchContacts godoc
// @Summary List contacts in a batch
// @Description Paginated contacts for a batch, with optional status filter
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Contacts"
// @Failure 404 {object} map[string]string "Not found"
// @Router /batches/{id}/contacts [get]
func (h *BatchHandler) ListBatchContacts(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid batch ID",
		})
	}

	exists, err := h.client.EnrichmentBatch.Query().
		Where(enrichmentbatch.ID(id)).
		Exist(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch batch",
		})
	}
	if !exists {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Batch not found",
		})
	}

	limit, offset := pagination(c, 50, 200)

	query := h.client.Contact.Query().
		Where(contact.HasBatchWith(enrichmentbatch.ID(id)))
	if status := c.QueryParam("status"); status != "" {
		query = query.Where(contact.StatusEQ(contact.Status(status)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to count contacts",
		})
	}

	contacts, err := query.
		Order(ent.Asc(contact.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch contacts",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"contacts": contacts,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// CancelBatch godoc
// @Summary Cancel a batch
// @Description Cancel a batch; its unprocessed contacts stop being eligible for enrichment
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} map[string]string "Cancelled"
// @Failure 404 {object} map[string]string "Not found"
// @Router /batches/{id} [delete]
func (h *BatchHandler) CancelBatch(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid batch ID",
		})
	}

	if err := jobs.CancelBatch(ctx, h.client, id); err != nil {
		if ent.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Batch not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to cancel batch",
		})
	}

	h.log.Info("batch cancelled", "batch_id", id)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Batch cancelled",
	})
}

func batchResponse(b *ent.EnrichmentBatch) map[string]interface{} {
	resp := map[string]interface{}{
		"id":              b.ID,
		"name":            b.Name,
		"owner_email":     b.OwnerEmail,
		"status":          b.Status,
		"total_count":     b.TotalCount,
		"processed_count": b.ProcessedCount,
		"succeeded_count": b.SucceededCount,
		"failed_count":    b.FailedCount,
		"created_at":      b.CreatedAt,
		"updated_at":      b.UpdatedAt,
	}
	if b.StartedAt != nil {
		resp["started_at"] = b.StartedAt
	}
	if b.ErrorDetail != "" {
		resp["error_detail"] = b.ErrorDetail
	}
	return resp
}

func pagination(c echo.Context, def, max int) (limit, offset int) {
	limit = def
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > max {
		limit = max
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
