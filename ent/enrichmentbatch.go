// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promarkhq/marketingdb/ent/campaign"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
)

// EnrichmentBatch is the model entity for the EnrichmentBatch schema.
type EnrichmentBatch struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Human-readable batch name
	Name string `json:"name,omitempty"`
	// Email of the user who uploaded the list; notified on completion
	OwnerEmail string `json:"owner_email,omitempty"`
	// Number of contacts in the batch
	TotalCount int `json:"total_count,omitempty"`
	// Contacts that reached a terminal status so far
	ProcessedCount int `json:"processed_count,omitempty"`
	// Contacts enriched successfully so far
	SucceededCount int `json:"succeeded_count,omitempty"`
	// Contacts that failed so far
	FailedCount int `json:"failed_count,omitempty"`
	// Batch lifecycle status
	Status enrichmentbatch.Status `json:"status,omitempty"`
	// Explanation when the batch is marked failed
	ErrorDetail string `json:"error_detail,omitempty"`
	// When processing began; used for ETA estimation
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EnrichmentBatchQuery when eager-loading is set.
	Edges            EnrichmentBatchEdges `json:"edges"`
	campaign_batches *int
	selectValues     sql.SelectValues
}

// EnrichmentBatchEdges holds the relations/edges for other nodes in the graph.
type EnrichmentBatchEdges struct {
	// Contacts uploaded in this batch
	Contacts []*Contact `json:"contacts,omitempty"`
	// Owning campaign, if the list was uploaded for one
	Campaign *Campaign `json:"campaign,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ContactsOrErr returns the Contacts value or an error if the edge
// was not loaded in eager-loading.
func (e EnrichmentBatchEdges) ContactsOrErr() ([]*Contact, error) {
	if e.loadedTypes[0] {
		return e.Contacts, nil
	}
	return nil, &NotLoadedError{edge: "contacts"}
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EnrichmentBatchEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EnrichmentBatch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case enrichmentbatch.FieldID, enrichmentbatch.FieldTotalCount, enrichmentbatch.FieldProcessedCount, enrichmentbatch.FieldSucceededCount, enrichmentbatch.FieldFailedCount:
			values[i] = new(sql.NullInt64)
		case enrichmentbatch.FieldName, enrichmentbatch.FieldOwnerEmail, enrichmentbatch.FieldStatus, enrichmentbatch.FieldErrorDetail:
			values[i] = new(sql.NullString)
		case enrichmentbatch.FieldStartedAt, enrichmentbatch.FieldCreatedAt, enrichmentbatch.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case enrichmentbatch.ForeignKeys[0]: // campaign_batches
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EnrichmentBatch fields.
func (_m *EnrichmentBatch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case enrichmentbatch.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case enrichmentbatch.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case enrichmentbatch.FieldOwnerEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_email", values[i])
			} else if value.Valid {
				_m.OwnerEmail = value.String
			}
		case enrichmentbatch.FieldTotalCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_count", values[i])
			} else if value.Valid {
				_m.TotalCount = int(value.Int64)
			}
		case enrichmentbatch.FieldProcessedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processed_count", values[i])
			} else if value.Valid {
				_m.ProcessedCount = int(value.Int64)
			}
		case enrichmentbatch.FieldSucceededCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field succeeded_count", values[i])
			} else if value.Valid {
				_m.SucceededCount = int(value.Int64)
			}
		case enrichmentbatch.FieldFailedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_count", values[i])
			} else if value.Valid {
				_m.FailedCount = int(value.Int64)
			}
		case enrichmentbatch.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = enrichmentbatch.Status(value.String)
			}
		case enrichmentbatch.FieldErrorDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_detail", values[i])
			} else if value.Valid {
				_m.ErrorDetail = value.String
			}
		case enrichmentbatch.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case enrichmentbatch.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case enrichmentbatch.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case enrichmentbatch.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field campaign_batches", value)
			} else if value.Valid {
				_m.campaign_batches = new(int)
				*_m.campaign_batches = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EnrichmentBatch.
// This includes values selected through modifiers, order, etc.
func (_m *EnrichmentBatch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContacts queries the "contacts" edge of the EnrichmentBatch entity.
func (_m *EnrichmentBatch) QueryContacts() *ContactQuery {
	return NewEnrichmentBatchClient(_m.config).QueryContacts(_m)
}

// QueryCampaign queries the "campaign" edge of the EnrichmentBatch entity.
func (_m *EnrichmentBatch) QueryCampaign() *CampaignQuery {
	return NewEnrichmentBatchClient(_m.config).QueryCampaign(_m)
}

// Update returns a builder for updating this EnrichmentBatch.
// Note that you need to call EnrichmentBatch.Unwrap() before calling this method if this EnrichmentBatch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EnrichmentBatch) Update() *EnrichmentBatchUpdateOne {
	return NewEnrichmentBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EnrichmentBatch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EnrichmentBatch) Unwrap() *EnrichmentBatch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EnrichmentBatch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EnrichmentBatch) String() string {
	var builder strings.Builder
	builder.WriteString("EnrichmentBatch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("owner_email=")
	builder.WriteString(_m.OwnerEmail)
	builder.WriteString(", ")
	builder.WriteString("total_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCount))
	builder.WriteString(", ")
	builder.WriteString("processed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedCount))
	builder.WriteString(", ")
	builder.WriteString("succeeded_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SucceededCount))
	builder.WriteString(", ")
	builder.WriteString("failed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedCount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("error_detail=")
	builder.WriteString(_m.ErrorDetail)
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EnrichmentBatches is a parsable slice of EnrichmentBatch.
type EnrichmentBatches []*EnrichmentBatch
