// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
)

// Contact is the model entity for the Contact schema.
type Contact struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Contact first name
	FirstName string `json:"first_name,omitempty"`
	// Contact last name
	LastName string `json:"last_name,omitempty"`
	// Company or brokerage name
	Company string `json:"company,omitempty"`
	// City name
	City string `json:"city,omitempty"`
	// State or region
	State string `json:"state,omitempty"`
	// Original phone number from upload
	Phone string `json:"phone,omitempty"`
	// Original email address from upload
	Email string `json:"email,omitempty"`
	// Claimed website URL
	Website string `json:"website,omitempty"`
	// Facebook page or profile URL
	FacebookURL string `json:"facebook_url,omitempty"`
	// Best candidate email found by enrichment
	EnrichedEmail string `json:"enriched_email,omitempty"`
	// Confidence of the winning email (0-1)
	EnrichedEmailConfidence float64 `json:"enriched_email_confidence,omitempty"`
	// Source that produced the winning email (search, website, social)
	EnrichedEmailSource string `json:"enriched_email_source,omitempty"`
	// Validator verdict for the winning email; nil means validation was unavailable
	EmailValid *bool `json:"email_valid,omitempty"`
	// Raw validator status (valid, invalid, catch-all, error, ...)
	EmailValidationStatus string `json:"email_validation_status,omitempty"`
	// Best candidate phone found by enrichment
	EnrichedPhone string `json:"enriched_phone,omitempty"`
	// Confidence of the winning phone (0-1)
	EnrichedPhoneConfidence float64 `json:"enriched_phone_confidence,omitempty"`
	// Source that produced the winning phone
	EnrichedPhoneSource string `json:"enriched_phone_source,omitempty"`
	// Winning phone in national format
	EnrichedPhoneFormatted string `json:"enriched_phone_formatted,omitempty"`
	// All emails scraped from the contact's website
	WebsiteEmails []string `json:"website_emails,omitempty"`
	// All phones scraped from the contact's website
	WebsitePhones []string `json:"website_phones,omitempty"`
	// Social links scraped from the website (facebook, twitter, linkedin, instagram)
	SocialLinks map[string]string `json:"social_links,omitempty"`
	// Follower count from the social profile
	SocialFollowers int `json:"social_followers,omitempty"`
	// About text from the social profile
	SocialAbout string `json:"social_about,omitempty"`
	// Weighted share of enrichment fields that were filled (0-1)
	CompletenessScore float64 `json:"completeness_score,omitempty"`
	// Overall confidence across winning candidates (0-1)
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// Per-contact enrichment status; pending -> processing -> terminal
	Status contact.Status `json:"status,omitempty"`
	// User-visible diagnostic when status is failed
	ErrorDetail string `json:"error_detail,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContactQuery when eager-loading is set.
	Edges                     ContactEdges `json:"edges"`
	enrichment_batch_contacts *int
	selectValues              sql.SelectValues
}

// ContactEdges holds the relations/edges for other nodes in the graph.
type ContactEdges struct {
	// Parent upload batch
	Batch *EnrichmentBatch `json:"batch,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BatchOrErr returns the Batch value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContactEdges) BatchOrErr() (*EnrichmentBatch, error) {
	if e.Batch != nil {
		return e.Batch, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: enrichmentbatch.Label}
	}
	return nil, &NotLoadedError{edge: "batch"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contact.FieldWebsiteEmails, contact.FieldWebsitePhones, contact.FieldSocialLinks:
			values[i] = new([]byte)
		case contact.FieldEmailValid:
			values[i] = new(sql.NullBool)
		case contact.FieldEnrichedEmailConfidence, contact.FieldEnrichedPhoneConfidence, contact.FieldCompletenessScore, contact.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case contact.FieldID, contact.FieldSocialFollowers:
			values[i] = new(sql.NullInt64)
		case contact.FieldFirstName, contact.FieldLastName, contact.FieldCompany, contact.FieldCity, contact.FieldState, contact.FieldPhone, contact.FieldEmail, contact.FieldWebsite, contact.FieldFacebookURL, contact.FieldEnrichedEmail, contact.FieldEnrichedEmailSource, contact.FieldEmailValidationStatus, contact.FieldEnrichedPhone, contact.FieldEnrichedPhoneSource, contact.FieldEnrichedPhoneFormatted, contact.FieldSocialAbout, contact.FieldStatus, contact.FieldErrorDetail:
			values[i] = new(sql.NullString)
		case contact.FieldCreatedAt, contact.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case contact.ForeignKeys[0]: // enrichment_batch_contacts
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contact fields.
func (_m *Contact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contact.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case contact.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case contact.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = value.String
			}
		case contact.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = value.String
			}
		case contact.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case contact.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case contact.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case contact.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case contact.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				_m.Website = value.String
			}
		case contact.FieldFacebookURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field facebook_url", values[i])
			} else if value.Valid {
				_m.FacebookURL = value.String
			}
		case contact.FieldEnrichedEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enriched_email", values[i])
			} else if value.Valid {
				_m.EnrichedEmail = value.String
			}
		case contact.FieldEnrichedEmailConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field enriched_email_confidence", values[i])
			} else if value.Valid {
				_m.EnrichedEmailConfidence = value.Float64
			}
		case contact.FieldEnrichedEmailSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enriched_email_source", values[i])
			} else if value.Valid {
				_m.EnrichedEmailSource = value.String
			}
		case contact.FieldEmailValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_valid", values[i])
			} else if value.Valid {
				_m.EmailValid = new(bool)
				*_m.EmailValid = value.Bool
			}
		case contact.FieldEmailValidationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_validation_status", values[i])
			} else if value.Valid {
				_m.EmailValidationStatus = value.String
			}
		case contact.FieldEnrichedPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enriched_phone", values[i])
			} else if value.Valid {
				_m.EnrichedPhone = value.String
			}
		case contact.FieldEnrichedPhoneConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field enriched_phone_confidence", values[i])
			} else if value.Valid {
				_m.EnrichedPhoneConfidence = value.Float64
			}
		case contact.FieldEnrichedPhoneSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enriched_phone_source", values[i])
			} else if value.Valid {
				_m.EnrichedPhoneSource = value.String
			}
		case contact.FieldEnrichedPhoneFormatted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enriched_phone_formatted", values[i])
			} else if value.Valid {
				_m.EnrichedPhoneFormatted = value.String
			}
		case contact.FieldWebsiteEmails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field website_emails", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WebsiteEmails); err != nil {
					return fmt.Errorf("unmarshal field website_emails: %w", err)
				}
			}
		case contact.FieldWebsitePhones:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field website_phones", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WebsitePhones); err != nil {
					return fmt.Errorf("unmarshal field website_phones: %w", err)
				}
			}
		case contact.FieldSocialLinks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field social_links", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SocialLinks); err != nil {
					return fmt.Errorf("unmarshal field social_links: %w", err)
				}
			}
		case contact.FieldSocialFollowers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field social_followers", values[i])
			} else if value.Valid {
				_m.SocialFollowers = int(value.Int64)
			}
		case contact.FieldSocialAbout:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field social_about", values[i])
			} else if value.Valid {
				_m.SocialAbout = value.String
			}
		case contact.FieldCompletenessScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completeness_score", values[i])
			} else if value.Valid {
				_m.CompletenessScore = value.Float64
			}
		case contact.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case contact.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = contact.Status(value.String)
			}
		case contact.FieldErrorDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_detail", values[i])
			} else if value.Valid {
				_m.ErrorDetail = value.String
			}
		case contact.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contact.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case contact.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field enrichment_batch_contacts", value)
			} else if value.Valid {
				_m.enrichment_batch_contacts = new(int)
				*_m.enrichment_batch_contacts = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Contact.
// This includes values selected through modifiers, order, etc.
func (_m *Contact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBatch queries the "batch" edge of the Contact entity.
func (_m *Contact) QueryBatch() *EnrichmentBatchQuery {
	return NewContactClient(_m.config).QueryBatch(_m)
}

// Update returns a builder for updating this Contact.
// Note that you need to call Contact.Unwrap() before calling this method if this Contact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Contact) Update() *ContactUpdateOne {
	return NewContactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Contact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Contact) Unwrap() *Contact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Contact) String() string {
	var builder strings.Builder
	builder.WriteString("Contact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	builder.WriteString("last_name=")
	builder.WriteString(_m.LastName)
	builder.WriteString(", ")
	builder.WriteString("company=")
	builder.WriteString(_m.Company)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("website=")
	builder.WriteString(_m.Website)
	builder.WriteString(", ")
	builder.WriteString("facebook_url=")
	builder.WriteString(_m.FacebookURL)
	builder.WriteString(", ")
	builder.WriteString("enriched_email=")
	builder.WriteString(_m.EnrichedEmail)
	builder.WriteString(", ")
	builder.WriteString("enriched_email_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnrichedEmailConfidence))
	builder.WriteString(", ")
	builder.WriteString("enriched_email_source=")
	builder.WriteString(_m.EnrichedEmailSource)
	builder.WriteString(", ")
	if v := _m.EmailValid; v != nil {
		builder.WriteString("email_valid=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("email_validation_status=")
	builder.WriteString(_m.EmailValidationStatus)
	builder.WriteString(", ")
	builder.WriteString("enriched_phone=")
	builder.WriteString(_m.EnrichedPhone)
	builder.WriteString(", ")
	builder.WriteString("enriched_phone_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnrichedPhoneConfidence))
	builder.WriteString(", ")
	builder.WriteString("enriched_phone_source=")
	builder.WriteString(_m.EnrichedPhoneSource)
	builder.WriteString(", ")
	builder.WriteString("enriched_phone_formatted=")
	builder.WriteString(_m.EnrichedPhoneFormatted)
	builder.WriteString(", ")
	builder.WriteString("website_emails=")
	builder.WriteString(fmt.Sprintf("%v", _m.WebsiteEmails))
	builder.WriteString(", ")
	builder.WriteString("website_phones=")
	builder.WriteString(fmt.Sprintf("%v", _m.WebsitePhones))
	builder.WriteString(", ")
	builder.WriteString("social_links=")
	builder.WriteString(fmt.Sprintf("%v", _m.SocialLinks))
	builder.WriteString(", ")
	builder.WriteString("social_followers=")
	builder.WriteString(fmt.Sprintf("%v", _m.SocialFollowers))
	builder.WriteString(", ")
	builder.WriteString("social_about=")
	builder.WriteString(_m.SocialAbout)
	builder.WriteString(", ")
	builder.WriteString("completeness_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletenessScore))
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("error_detail=")
	builder.WriteString(_m.ErrorDetail)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Contacts is a parsable slice of Contact.
type Contacts []*Contact
