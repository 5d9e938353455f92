package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promarkhq/marketingdb/ent"
	"github.com/promarkhq/marketingdb/ent/campaign"
	"github.com/promarkhq/marketingdb/ent/enttest"
	"github.com/promarkhq/marketingdb/pkg/ai"

	_ "github.com/mattn/go-sqlite3"
)

func setupCampaignHandler(t *testing.T, name string) (*CampaignHandler, *ent.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+name+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewCampaignHandler(client, ai.NewService(""), nil), client
}

func TestCampaignHandler_CreateCampaign(t *testing.T) {
	t.Run("Success - draft campaign", func(t *testing.T) {
		handler, client := setupCampaignHandler(t, "campaign_create")
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/campaigns",
			`{"name": "Spring listings", "objective": "Drive open-house signups"}`)

		require.NoError(t, handler.CreateCampaign(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		created := client.Campaign.Query().OnlyX(context.Background())
		assert.Equal(t, "Spring listings", created.Name)
		assert.Equal(t, campaign.StatusDraft, created.Status)
		assert.Equal(t, "owner@example.com", created.OwnerEmail)
	})

	t.Run("Failure - missing name", func(t *testing.T) {
		handler, _ := setupCampaignHandler(t, "campaign_create_noname")
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/campaigns",
			`{"objective": "whatever"}`)

		require.NoError(t, handler.CreateCampaign(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCampaignHandler_UpdateCampaign(t *testing.T) {
	t.Run("Success - partial update", func(t *testing.T) {
		handler, client := setupCampaignHandler(t, "campaign_update")
		e := echo.New()

		created := client.Campaign.Create().
			SetName("old name").
			SetOwnerEmail("owner@example.com").
			SetStatus(campaign.StatusDraft).
			SaveX(context.Background())

		c, rec := newJSONContext(e, http.MethodPut, "/",
			`{"status": "active"}`)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(created.ID))

		require.NoError(t, handler.UpdateCampaign(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		updated := client.Campaign.GetX(context.Background(), created.ID)
		assert.Equal(t, campaign.StatusActive, updated.Status)
		assert.Equal(t, "old name", updated.Name)
	})

	t.Run("Failure - invalid status value", func(t *testing.T) {
		handler, client := setupCampaignHandler(t, "campaign_update_badstatus")
		e := echo.New()

		created := client.Campaign.Create().
			SetName("c").
			SetOwnerEmail("owner@example.com").
			SetStatus(campaign.StatusDraft).
			SaveX(context.Background())

		c, rec := newJSONContext(e, http.MethodPut, "/",
			`{"status": "bogus"}`)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(created.ID))

		require.NoError(t, handler.UpdateCampaign(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - unknown campaign", func(t *testing.T) {
		handler, _ := setupCampaignHandler(t, "campaign_update_missing")
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodPut, "/", `{"name": "x"}`)
		c.SetParamNames("id")
		c.SetParamValues("9999")

		require.NoError(t, handler.UpdateCampaign(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCampaignHandler_ListCampaigns(t *testing.T) {
	handler, client := setupCampaignHandler(t, "campaign_list")
	e := echo.New()
	ctx := context.Background()

	for _, st := range []campaign.Status{campaign.StatusDraft, campaign.StatusActive, campaign.StatusActive} {
		client.Campaign.Create().
			SetName("c").
			SetOwnerEmail("owner@example.com").
			SetStatus(st).
			SaveX(ctx)
	}

	c, rec := newJSONContext(e, http.MethodGet, "/?status=active", "")
	require.NoError(t, handler.ListCampaigns(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Campaigns []json.RawMessage `json:"campaigns"`
		Total     int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Campaigns, 2)
}

func TestCampaignHandler_GenerateCopy(t *testing.T) {
	t.Run("Failure - AI not configured", func(t *testing.T) {
		handler, client := setupCampaignHandler(t, "campaign_copy_unconf")
		e := echo.New()

		created := client.Campaign.Create().
			SetName("c").
			SetOwnerEmail("owner@example.com").
			SetStatus(campaign.StatusDraft).
			SaveX(context.Background())

		c, rec := newJSONContext(e, http.MethodPost, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(created.ID))

		require.NoError(t, handler.GenerateCopy(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestCampaignHandler_DeleteCampaign(t *testing.T) {
	handler, client := setupCampaignHandler(t, "campaign_delete")
	e := echo.New()

	created := client.Campaign.Create().
		SetName("doomed").
		SetOwnerEmail("owner@example.com").
		SetStatus(campaign.StatusDraft).
		SaveX(context.Background())

	c, rec := newJSONContext(e, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(created.ID))

	require.NoError(t, handler.DeleteCampaign(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, client.Campaign.Query().CountX(context.Background()))
}
