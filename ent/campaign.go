// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promarkhq/marketingdb/ent/campaign"
)

// Campaign is the model entity for the Campaign schema.
type Campaign struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Campaign name
	Name string `json:"name,omitempty"`
	// Email of the campaign owner
	OwnerEmail string `json:"owner_email,omitempty"`
	// Free-form campaign objective used for copy generation
	Objective string `json:"objective,omitempty"`
	// Campaign lifecycle status
	Status campaign.Status `json:"status,omitempty"`
	// Latest AI-generated campaign copy
	GeneratedCopy string `json:"generated_copy,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CampaignQuery when eager-loading is set.
	Edges        CampaignEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CampaignEdges holds the relations/edges for other nodes in the graph.
type CampaignEdges struct {
	// Contact upload batches attached to this campaign
	Batches []*EnrichmentBatch `json:"batches,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BatchesOrErr returns the Batches value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) BatchesOrErr() ([]*EnrichmentBatch, error) {
	if e.loadedTypes[0] {
		return e.Batches, nil
	}
	return nil, &NotLoadedError{edge: "batches"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Campaign) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case campaign.FieldID:
			values[i] = new(sql.NullInt64)
		case campaign.FieldName, campaign.FieldOwnerEmail, campaign.FieldObjective, campaign.FieldStatus, campaign.FieldGeneratedCopy:
			values[i] = new(sql.NullString)
		case campaign.FieldCreatedAt, campaign.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Campaign fields.
func (_m *Campaign) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case campaign.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case campaign.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case campaign.FieldOwnerEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_email", values[i])
			} else if value.Valid {
				_m.OwnerEmail = value.String
			}
		case campaign.FieldObjective:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective", values[i])
			} else if value.Valid {
				_m.Objective = value.String
			}
		case campaign.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = campaign.Status(value.String)
			}
		case campaign.FieldGeneratedCopy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generated_copy", values[i])
			} else if value.Valid {
				_m.GeneratedCopy = value.String
			}
		case campaign.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case campaign.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Campaign.
// This includes values selected through modifiers, order, etc.
func (_m *Campaign) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBatches queries the "batches" edge of the Campaign entity.
func (_m *Campaign) QueryBatches() *EnrichmentBatchQuery {
	return NewCampaignClient(_m.config).QueryBatches(_m)
}

// Update returns a builder for updating this Campaign.
// Note that you need to call Campaign.Unwrap() before calling this method if this Campaign
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Campaign) Update() *CampaignUpdateOne {
	return NewCampaignClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Campaign entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Campaign) Unwrap() *Campaign {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Campaign is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Campaign) String() string {
	var builder strings.Builder
	builder.WriteString("Campaign(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("owner_email=")
	builder.WriteString(_m.OwnerEmail)
	builder.WriteString(", ")
	builder.WriteString("objective=")
	builder.WriteString(_m.Objective)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("generated_copy=")
	builder.WriteString(_m.GeneratedCopy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Campaigns is a parsable slice of Campaign.
type Campaigns []*Campaign
