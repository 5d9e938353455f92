package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promarkhq/marketingdb/ent"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/ent/enttest"
	custommiddleware "github.com/promarkhq/marketingdb/pkg/middleware"

	_ "github.com/mattn/go-sqlite3"
)

func setupBatchHandler(t *testing.T, name string) (*BatchHandler, *ent.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+name+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewBatchHandler(client, nil), client
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("claims", &custommiddleware.Claims{UserEmail: "owner@example.com"})
	return c, rec
}

func TestBatchHandler_CreateBatch(t *testing.T) {
	t.Run("Success - batch with contacts", func(t *testing.T) {
		handler, client := setupBatchHandler(t, "batch_create")
		e := echo.New()

		body := `{
			"name": "Austin agents",
			"contacts": [
				{"first_name": "Jane", "last_name": "Smith", "company": "Acme Realty"},
				{"first_name": "Bob", "last_name": "Jones", "email": "bob@example.com"}
			]
		}`
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/batches", body)

		require.NoError(t, handler.CreateBatch(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Austin agents", resp["name"])
		assert.Equal(t, float64(2), resp["total_count"])

		batch := client.EnrichmentBatch.Query().OnlyX(context.Background())
		assert.Equal(t, enrichmentbatch.StatusPending, batch.Status)
		assert.Equal(t, "owner@example.com", batch.OwnerEmail)
		assert.Equal(t, 2, client.Contact.Query().CountX(context.Background()))
	})

	t.Run("Failure - empty contact list", func(t *testing.T) {
		handler, _ := setupBatchHandler(t, "batch_create_empty")
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/batches",
			`{"name": "empty", "contacts": []}`)

		require.NoError(t, handler.CreateBatch(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - missing name", func(t *testing.T) {
		handler, _ := setupBatchHandler(t, "batch_create_noname")
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/batches",
			`{"contacts": [{"first_name": "Jane"}]}`)

		require.NoError(t, handler.CreateBatch(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBatchHandler_GetBatch(t *testing.T) {
	t.Run("Success - existing batch", func(t *testing.T) {
		handler, client := setupBatchHandler(t, "batch_get")
		e := echo.New()

		batch := client.EnrichmentBatch.Create().
			SetName("lookup").
			SetOwnerEmail("owner@example.com").
			SetTotalCount(0).
			SetStatus(enrichmentbatch.StatusPending).
			SaveX(context.Background())

		c, rec := newJSONContext(e, http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(batch.ID))

		require.NoError(t, handler.GetBatch(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "lookup", resp["name"])
	})

	t.Run("Failure - unknown batch", func(t *testing.T) {
		handler, _ := setupBatchHandler(t, "batch_get_missing")
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("9999")

		require.NoError(t, handler.GetBatch(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Failure - non-numeric id", func(t *testing.T) {
		handler, _ := setupBatchHandler(t, "batch_get_badid")
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, handler.GetBatch(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBatchHandler_ListBatchContacts(t *testing.T) {
	t.Run("Success - paginated with status filter", func(t *testing.T) {
		handler, client := setupBatchHandler(t, "batch_contacts")
		e := echo.New()
		ctx := context.Background()

		batch := client.EnrichmentBatch.Create().
			SetName("contacts").
			SetOwnerEmail("owner@example.com").
			SetTotalCount(3).
			SetStatus(enrichmentbatch.StatusCompleted).
			SaveX(ctx)
		for i, st := range []contact.Status{
			contact.StatusSuccess, contact.StatusSuccess, contact.StatusFailed,
		} {
			client.Contact.Create().
				SetFirstName("Agent" + strconv.Itoa(i)).
				SetLastName("Test").
				SetStatus(st).
				SetBatch(batch).
				SaveX(ctx)
		}

		c, rec := newJSONContext(e, http.MethodGet, "/?status=success&limit=1", "")
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(batch.ID))

		require.NoError(t, handler.ListBatchContacts(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Contacts []json.RawMessage `json:"contacts"`
			Total    int               `json:"total"`
			Limit    int               `json:"limit"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Total)
		assert.Len(t, resp.Contacts, 1)
		assert.Equal(t, 1, resp.Limit)
	})

	t.Run("Failure - unknown batch", func(t *testing.T) {
		handler, _ := setupBatchHandler(t, "batch_contacts_missing")
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("9999")

		require.NoError(t, handler.ListBatchContacts(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBatchHandler_CancelBatch(t *testing.T) {
	t.Run("Success - pending contacts flipped to cancelled", func(t *testing.T) {
		handler, client := setupBatchHandler(t, "batch_cancel")
		e := echo.New()
		ctx := context.Background()

		batch := client.EnrichmentBatch.Create().
			SetName("cancel me").
			SetOwnerEmail("owner@example.com").
			SetTotalCount(1).
			SetStatus(enrichmentbatch.StatusPending).
			SaveX(ctx)
		client.Contact.Create().
			SetFirstName("Jane").
			SetLastName("Smith").
			SetStatus(contact.StatusPending).
			SetBatch(batch).
			SaveX(ctx)

		c, rec := newJSONContext(e, http.MethodDelete, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(batch.ID))

		require.NoError(t, handler.CancelBatch(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, enrichmentbatch.StatusCancelled,
			client.EnrichmentBatch.GetX(ctx, batch.ID).Status)
		assert.Equal(t, 1, client.Contact.Query().
			Where(contact.StatusEQ(contact.StatusCancelled)).
			CountX(ctx))
	})

	t.Run("Failure - unknown batch", func(t *testing.T) {
		handler, _ := setupBatchHandler(t, "batch_cancel_missing")
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodDelete, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("9999")

		require.NoError(t, handler.CancelBatch(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
