// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/ent/predicate"
)

// ContactUpdate is the builder for updating Contact entities.
type ContactUpdate struct {
	config
	hooks    []Hook
	mutation *ContactMutation
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdate) Where(ps ...predicate.Contact) *ContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *ContactUpdate) SetFirstName(v string) *ContactUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableFirstName(v *string) *ContactUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *ContactUpdate) ClearFirstName() *ContactUpdate {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *ContactUpdate) SetLastName(v string) *ContactUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableLastName(v *string) *ContactUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *ContactUpdate) ClearLastName() *ContactUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetCompany sets the "company" field.
func (_u *ContactUpdate) SetCompany(v string) *ContactUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableCompany(v *string) *ContactUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ContactUpdate) ClearCompany() *ContactUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetCity sets the "city" field.
func (_u *ContactUpdate) SetCity(v string) *ContactUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableCity(v *string) *ContactUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ContactUpdate) ClearCity() *ContactUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *ContactUpdate) SetState(v string) *ContactUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableState(v *string) *ContactUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ContactUpdate) ClearState() *ContactUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ContactUpdate) SetPhone(v string) *ContactUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ContactUpdate) SetNillablePhone(v *string) *ContactUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ContactUpdate) ClearPhone() *ContactUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ContactUpdate) SetEmail(v string) *ContactUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEmail(v *string) *ContactUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ContactUpdate) ClearEmail() *ContactUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ContactUpdate) SetWebsite(v string) *ContactUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableWebsite(v *string) *ContactUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ContactUpdate) ClearWebsite() *ContactUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetFacebookURL sets the "facebook_url" field.
func (_u *ContactUpdate) SetFacebookURL(v string) *ContactUpdate {
	_u.mutation.SetFacebookURL(v)
	return _u
}

// SetNillableFacebookURL sets the "facebook_url" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableFacebookURL(v *string) *ContactUpdate {
	if v != nil {
		_u.SetFacebookURL(*v)
	}
	return _u
}

// ClearFacebookURL clears the value of the "facebook_url" field.
func (_u *ContactUpdate) ClearFacebookURL() *ContactUpdate {
	_u.mutation.ClearFacebookURL()
	return _u
}

// SetEnrichedEmail sets the "enriched_email" field.
func (_u *ContactUpdate) SetEnrichedEmail(v string) *ContactUpdate {
	_u.mutation.SetEnrichedEmail(v)
	return _u
}

// SetNillableEnrichedEmail sets the "enriched_email" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEnrichedEmail(v *string) *ContactUpdate {
	if v != nil {
		_u.SetEnrichedEmail(*v)
	}
	return _u
}

// ClearEnrichedEmail clears the value of the "enriched_email" field.
func (_u *ContactUpdate) ClearEnrichedEmail() *ContactUpdate {
	_u.mutation.ClearEnrichedEmail()
	return _u
}

// SetEnrichedEmailConfidence sets the "enriched_email_confidence" field.
func (_u *ContactUpdate) SetEnrichedEmailConfidence(v float64) *ContactUpdate {
	_u.mutation.ResetEnrichedEmailConfidence()
	_u.mutation.SetEnrichedEmailConfidence(v)
	return _u
}

// SetNillableEnrichedEmailConfidence sets the "enriched_email_confidence" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEnrichedEmailConfidence(v *float64) *ContactUpdate {
	if v != nil {
		_u.SetEnrichedEmailConfidence(*v)
	}
	return _u
}

// AddEnrichedEmailConfidence adds value to the "enriched_email_confidence" field.
func (_u *ContactUpdate) AddEnrichedEmailConfidence(v float64) *ContactUpdate {
	_u.mutation.AddEnrichedEmailConfidence(v)
	return _u
}

// ClearEnrichedEmailConfidence clears the value of the "enriched_email_confidence" field.
func (_u *ContactUpdate) ClearEnrichedEmailConfidence() *ContactUpdate {
	_u.mutation.ClearEnrichedEmailConfidence()
	return _u
}

// SetEnrichedEmailSource sets the "enriched_email_source" field.
func (_u *ContactUpdate) SetEnrichedEmailSource(v string) *ContactUpdate {
	_u.mutation.SetEnrichedEmailSource(v)
	return _u
}

// SetNillableEnrichedEmailSource sets the "enriched_email_source" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEnrichedEmailSource(v *string) *ContactUpdate {
	if v != nil {
		_u.SetEnrichedEmailSource(*v)
	}
	return _u
}

// ClearEnrichedEmailSource clears the value of the "enriched_email_source" field.
func (_u *ContactUpdate) ClearEnrichedEmailSource() *ContactUpdate {
	_u.mutation.ClearEnrichedEmailSource()
	return _u
}

// SetEmailValid sets the "email_valid" field.
func (_u *ContactUpdate) SetEmailValid(v bool) *ContactUpdate {
	_u.mutation.SetEmailValid(v)
	return _u
}

// SetNillableEmailValid sets the "email_valid" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEmailValid(v *bool) *ContactUpdate {
	if v != nil {
		_u.SetEmailValid(*v)
	}
	return _u
}

// ClearEmailValid clears the value of the "email_valid" field.
func (_u *ContactUpdate) ClearEmailValid() *ContactUpdate {
	_u.mutation.ClearEmailValid()
	return _u
}

// SetEmailValidationStatus sets the "email_validation_status" field.
func (_u *ContactUpdate) SetEmailValidationStatus(v string) *ContactUpdate {
	_u.mutation.SetEmailValidationStatus(v)
	return _u
}

// SetNillableEmailValidationStatus sets the "email_validation_status" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEmailValidationStatus(v *string) *ContactUpdate {
	if v != nil {
		_u.SetEmailValidationStatus(*v)
	}
	return _u
}

// ClearEmailValidationStatus clears the value of the "email_validation_status" field.
func (_u *ContactUpdate) ClearEmailValidationStatus() *ContactUpdate {
	_u.mutation.ClearEmailValidationStatus()
	return _u
}

// SetEnrichedPhone sets the "enriched_phone" field.
func (_u *ContactUpdate) SetEnrichedPhone(v string) *ContactUpdate {
	_u.mutation.SetEnrichedPhone(v)
	return _u
}

// SetNillableEnrichedPhone sets the "enriched_phone" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEnrichedPhone(v *string) *ContactUpdate {
	if v != nil {
		_u.SetEnrichedPhone(*v)
	}
	return _u
}

// ClearEnrichedPhone clears the value of the "enriched_phone" field.
func (_u *ContactUpdate) ClearEnrichedPhone() *ContactUpdate {
	_u.mutation.ClearEnrichedPhone()
	return _u
}

// SetEnrichedPhoneConfidence sets the "enriched_phone_confidence" field.
func (_u *ContactUpdate) SetEnrichedPhoneConfidence(v float64) *ContactUpdate {
	_u.mutation.ResetEnrichedPhoneConfidence()
	_u.mutation.SetEnrichedPhoneConfidence(v)
	return _u
}

// SetNillableEnrichedPhoneConfidence sets the "enriched_phone_confidence" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEnrichedPhoneConfidence(v *float64) *ContactUpdate {
	if v != nil {
		_u.SetEnrichedPhoneConfidence(*v)
	}
	return _u
}

// AddEnrichedPhoneConfidence adds value to the "enriched_phone_confidence" field.
func (_u *ContactUpdate) AddEnrichedPhoneConfidence(v float64) *ContactUpdate {
	_u.mutation.AddEnrichedPhoneConfidence(v)
	return _u
}

// ClearEnrichedPhoneConfidence clears the value of the "enriched_phone_confidence" field.
func (_u *ContactUpdate) ClearEnrichedPhoneConfidence() *ContactUpdate {
	_u.mutation.ClearEnrichedPhoneConfidence()
	return _u
}

// SetEnrichedPhoneSource sets the "enriched_phone_source" field.
func (_u *ContactUpdate) SetEnrichedPhoneSource(v string) *ContactUpdate {
	_u.mutation.SetEnrichedPhoneSource(v)
	return _u
}

// SetNillableEnrichedPhoneSource sets the "enriched_phone_source" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEnrichedPhoneSource(v *string) *ContactUpdate {
	if v != nil {
		_u.SetEnrichedPhoneSource(*v)
	}
	return _u
}

// ClearEnrichedPhoneSource clears the value of the "enriched_phone_source" field.
func (_u *ContactUpdate) ClearEnrichedPhoneSource() *ContactUpdate {
	_u.mutation.ClearEnrichedPhoneSource()
	return _u
}

// SetEnrichedPhoneFormatted sets the "enriched_phone_formatted" field.
func (_u *ContactUpdate) SetEnrichedPhoneFormatted(v string) *ContactUpdate {
	_u.mutation.SetEnrichedPhoneFormatted(v)
	return _u
}

// SetNillableEnrichedPhoneFormatted sets the "enriched_phone_formatted" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEnrichedPhoneFormatted(v *string) *ContactUpdate {
	if v != nil {
		_u.SetEnrichedPhoneFormatted(*v)
	}
	return _u
}

// ClearEnrichedPhoneFormatted clears the value of the "enriched_phone_formatted" field.
func (_u *ContactUpdate) ClearEnrichedPhoneFormatted() *ContactUpdate {
	_u.mutation.ClearEnrichedPhoneFormatted()
	return _u
}

// SetWebsiteEmails sets the "website_emails" field.
func (_u *ContactUpdate) SetWebsiteEmails(v []string) *ContactUpdate {
	_u.mutation.SetWebsiteEmails(v)
	return _u
}

// AppendWebsiteEmails appends value to the "website_emails" field.
func (_u *ContactUpdate) AppendWebsiteEmails(v []string) *ContactUpdate {
	_u.mutation.AppendWebsiteEmails(v)
	return _u
}

// ClearWebsiteEmails clears the value of the "website_emails" field.
func (_u *ContactUpdate) ClearWebsiteEmails() *ContactUpdate {
	_u.mutation.ClearWebsiteEmails()
	return _u
}

// SetWebsitePhones sets the "website_phones" field.
func (_u *ContactUpdate) SetWebsitePhones(v []string) *ContactUpdate {
	_u.mutation.SetWebsitePhones(v)
	return _u
}

// AppendWebsitePhones appends value to the "website_phones" field.
func (_u *ContactUpdate) AppendWebsitePhones(v []string) *ContactUpdate {
	_u.mutation.AppendWebsitePhones(v)
	return _u
}

// ClearWebsitePhones clears the value of the "website_phones" field.
func (_u *ContactUpdate) ClearWebsitePhones() *ContactUpdate {
	_u.mutation.ClearWebsitePhones()
	return _u
}

// SetSocialLinks sets the "social_links" field.
func (_u *ContactUpdate) SetSocialLinks(v map[string]string) *ContactUpdate {
	_u.mutation.SetSocialLinks(v)
	return _u
}

// ClearSocialLinks clears the value of the "social_links" field.
func (_u *ContactUpdate) ClearSocialLinks() *ContactUpdate {
	_u.mutation.ClearSocialLinks()
	return _u
}

// SetSocialFollowers sets the "social_followers" field.
func (_u *ContactUpdate) SetSocialFollowers(v int) *ContactUpdate {
	_u.mutation.ResetSocialFollowers()
	_u.mutation.SetSocialFollowers(v)
	return _u
}

// SetNillableSocialFollowers sets the "social_followers" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableSocialFollowers(v *int) *ContactUpdate {
	if v != nil {
		_u.SetSocialFollowers(*v)
	}
	return _u
}

// AddSocialFollowers adds value to the "social_followers" field.
func (_u *ContactUpdate) AddSocialFollowers(v int) *ContactUpdate {
	_u.mutation.AddSocialFollowers(v)
	return _u
}

// ClearSocialFollowers clears the value of the "social_followers" field.
func (_u *ContactUpdate) ClearSocialFollowers() *ContactUpdate {
	_u.mutation.ClearSocialFollowers()
	return _u
}

// SetSocialAbout sets the "social_about" field.
func (_u *ContactUpdate) SetSocialAbout(v string) *ContactUpdate {
	_u.mutation.SetSocialAbout(v)
	return _u
}

// SetNillableSocialAbout sets the "social_about" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableSocialAbout(v *string) *ContactUpdate {
	if v != nil {
		_u.SetSocialAbout(*v)
	}
	return _u
}

// ClearSocialAbout clears the value of the "social_about" field.
func (_u *ContactUpdate) ClearSocialAbout() *ContactUpdate {
	_u.mutation.ClearSocialAbout()
	return _u
}

// SetCompletenessScore sets the "completeness_score" field.
func (_u *ContactUpdate) SetCompletenessScore(v float64) *ContactUpdate {
	_u.mutation.ResetCompletenessScore()
	_u.mutation.SetCompletenessScore(v)
	return _u
}

// SetNillableCompletenessScore sets the "completeness_score" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableCompletenessScore(v *float64) *ContactUpdate {
	if v != nil {
		_u.SetCompletenessScore(*v)
	}
	return _u
}

// AddCompletenessScore adds value to the "completeness_score" field.
func (_u *ContactUpdate) AddCompletenessScore(v float64) *ContactUpdate {
	_u.mutation.AddCompletenessScore(v)
	return _u
}

// ClearCompletenessScore clears the value of the "completeness_score" field.
func (_u *ContactUpdate) ClearCompletenessScore() *ContactUpdate {
	_u.mutation.ClearCompletenessScore()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ContactUpdate) SetConfidenceScore(v float64) *ContactUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableConfidenceScore(v *float64) *ContactUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ContactUpdate) AddConfidenceScore(v float64) *ContactUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *ContactUpdate) ClearConfidenceScore() *ContactUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContactUpdate) SetStatus(v contact.Status) *ContactUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableStatus(v *contact.Status) *ContactUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *ContactUpdate) SetErrorDetail(v string) *ContactUpdate {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableErrorDetail(v *string) *ContactUpdate {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *ContactUpdate) ClearErrorDetail() *ContactUpdate {
	_u.mutation.ClearErrorDetail()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactUpdate) SetUpdatedAt(v time.Time) *ContactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBatchID sets the "batch" edge to the EnrichmentBatch entity by ID.
func (_u *ContactUpdate) SetBatchID(id int) *ContactUpdate {
	_u.mutation.SetBatchID(id)
	return _u
}

// SetNillableBatchID sets the "batch" edge to the EnrichmentBatch entity by ID if the given value is not nil.
func (_u *ContactUpdate) SetNillableBatchID(id *int) *ContactUpdate {
	if id != nil {
		_u = _u.SetBatchID(*id)
	}
	return _u
}

// SetBatch sets the "batch" edge to the EnrichmentBatch entity.
func (_u *ContactUpdate) SetBatch(v *EnrichmentBatch) *ContactUpdate {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdate) Mutation() *ContactMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the EnrichmentBatch entity.
func (_u *ContactUpdate) ClearBatch() *ContactUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := contact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contact.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(contact.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(contact.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(contact.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(contact.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(contact.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(contact.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(contact.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(contact.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(contact.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(contact.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(contact.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(contact.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(contact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(contact.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(contact.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.FacebookURL(); ok {
		_spec.SetField(contact.FieldFacebookURL, field.TypeString, value)
	}
	if _u.mutation.FacebookURLCleared() {
		_spec.ClearField(contact.FieldFacebookURL, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichedEmail(); ok {
		_spec.SetField(contact.FieldEnrichedEmail, field.TypeString, value)
	}
	if _u.mutation.EnrichedEmailCleared() {
		_spec.ClearField(contact.FieldEnrichedEmail, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichedEmailConfidence(); ok {
		_spec.SetField(contact.FieldEnrichedEmailConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEnrichedEmailConfidence(); ok {
		_spec.AddField(contact.FieldEnrichedEmailConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.EnrichedEmailConfidenceCleared() {
		_spec.ClearField(contact.FieldEnrichedEmailConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EnrichedEmailSource(); ok {
		_spec.SetField(contact.FieldEnrichedEmailSource, field.TypeString, value)
	}
	if _u.mutation.EnrichedEmailSourceCleared() {
		_spec.ClearField(contact.FieldEnrichedEmailSource, field.TypeString)
	}
	if value, ok := _u.mutation.EmailValid(); ok {
		_spec.SetField(contact.FieldEmailValid, field.TypeBool, value)
	}
	if _u.mutation.EmailValidCleared() {
		_spec.ClearField(contact.FieldEmailValid, field.TypeBool)
	}
	if value, ok := _u.mutation.EmailValidationStatus(); ok {
		_spec.SetField(contact.FieldEmailValidationStatus, field.TypeString, value)
	}
	if _u.mutation.EmailValidationStatusCleared() {
		_spec.ClearField(contact.FieldEmailValidationStatus, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichedPhone(); ok {
		_spec.SetField(contact.FieldEnrichedPhone, field.TypeString, value)
	}
	if _u.mutation.EnrichedPhoneCleared() {
		_spec.ClearField(contact.FieldEnrichedPhone, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichedPhoneConfidence(); ok {
		_spec.SetField(contact.FieldEnrichedPhoneConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEnrichedPhoneConfidence(); ok {
		_spec.AddField(contact.FieldEnrichedPhoneConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.EnrichedPhoneConfidenceCleared() {
		_spec.ClearField(contact.FieldEnrichedPhoneConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EnrichedPhoneSource(); ok {
		_spec.SetField(contact.FieldEnrichedPhoneSource, field.TypeString, value)
	}
	if _u.mutation.EnrichedPhoneSourceCleared() {
		_spec.ClearField(contact.FieldEnrichedPhoneSource, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichedPhoneFormatted(); ok {
		_spec.SetField(contact.FieldEnrichedPhoneFormatted, field.TypeString, value)
	}
	if _u.mutation.EnrichedPhoneFormattedCleared() {
		_spec.ClearField(contact.FieldEnrichedPhoneFormatted, field.TypeString)
	}
	if value, ok := _u.mutation.WebsiteEmails(); ok {
		_spec.SetField(contact.FieldWebsiteEmails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWebsiteEmails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contact.FieldWebsiteEmails, value)
		})
	}
	if _u.mutation.WebsiteEmailsCleared() {
		_spec.ClearField(contact.FieldWebsiteEmails, field.TypeJSON)
	}
	if value, ok := _u.mutation.WebsitePhones(); ok {
		_spec.SetField(contact.FieldWebsitePhones, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWebsitePhones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contact.FieldWebsitePhones, value)
		})
	}
	if _u.mutation.WebsitePhonesCleared() {
		_spec.ClearField(contact.FieldWebsitePhones, field.TypeJSON)
	}
	if value, ok := _u.mutation.SocialLinks(); ok {
		_spec.SetField(contact.FieldSocialLinks, field.TypeJSON, value)
	}
	if _u.mutation.SocialLinksCleared() {
		_spec.ClearField(contact.FieldSocialLinks, field.TypeJSON)
	}
	if value, ok := _u.mutation.SocialFollowers(); ok {
		_spec.SetField(contact.FieldSocialFollowers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSocialFollowers(); ok {
		_spec.AddField(contact.FieldSocialFollowers, field.TypeInt, value)
	}
	if _u.mutation.SocialFollowersCleared() {
		_spec.ClearField(contact.FieldSocialFollowers, field.TypeInt)
	}
	if value, ok := _u.mutation.SocialAbout(); ok {
		_spec.SetField(contact.FieldSocialAbout, field.TypeString, value)
	}
	if _u.mutation.SocialAboutCleared() {
		_spec.ClearField(contact.FieldSocialAbout, field.TypeString)
	}
	if value, ok := _u.mutation.CompletenessScore(); ok {
		_spec.SetField(contact.FieldCompletenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletenessScore(); ok {
		_spec.AddField(contact.FieldCompletenessScore, field.TypeFloat64, value)
	}
	if _u.mutation.CompletenessScoreCleared() {
		_spec.ClearField(contact.FieldCompletenessScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(contact.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(contact.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(contact.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(contact.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(contact.FieldErrorDetail, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contact.BatchTable,
			Columns: []string{contact.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contact.BatchTable,
			Columns: []string{contact.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContactUpdateOne is the builder for updating a single Contact entity.
type ContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactMutation
}

// SetFirstName sets the "first_name" field.
func (_u *ContactUpdateOne) SetFirstName(v string) *ContactUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableFirstName(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *ContactUpdateOne) ClearFirstName() *ContactUpdateOne {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *ContactUpdateOne) SetLastName(v string) *ContactUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableLastName(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *ContactUpdateOne) ClearLastName() *ContactUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetCompany sets the "company" field.
func (_u *ContactUpdateOne) SetCompany(v string) *ContactUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableCompany(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ContactUpdateOne) ClearCompany() *ContactUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetCity sets the "city" field.
func (_u *ContactUpdateOne) SetCity(v string) *ContactUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableCity(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ContactUpdateOne) ClearCity() *ContactUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *ContactUpdateOne) SetState(v string) *ContactUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableState(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ContactUpdateOne) ClearState() *ContactUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ContactUpdateOne) SetPhone(v string) *ContactUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillablePhone(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ContactUpdateOne) ClearPhone() *ContactUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ContactUpdateOne) SetEmail(v string) *ContactUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEmail(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ContactUpdateOne) ClearEmail() *ContactUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ContactUpdateOne) SetWebsite(v string) *ContactUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableWebsite(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ContactUpdateOne) ClearWebsite() *ContactUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetFacebookURL sets the "facebook_url" field.
func (_u *ContactUpdateOne) SetFacebookURL(v string) *ContactUpdateOne {
	_u.mutation.SetFacebookURL(v)
	return _u
}

// SetNillableFacebookURL sets the "facebook_url" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableFacebookURL(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetFacebookURL(*v)
	}
	return _u
}

// ClearFacebookURL clears the value of the "facebook_url" field.
func (_u *ContactUpdateOne) ClearFacebookURL() *ContactUpdateOne {
	_u.mutation.ClearFacebookURL()
	return _u
}

// SetEnrichedEmail sets the "enriched_email" field.
func (_u *ContactUpdateOne) SetEnrichedEmail(v string) *ContactUpdateOne {
	_u.mutation.SetEnrichedEmail(v)
	return _u
}

// SetNillableEnrichedEmail sets the "enriched_email" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEnrichedEmail(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetEnrichedEmail(*v)
	}
	return _u
}

// ClearEnrichedEmail clears the value of the "enriched_email" field.
func (_u *ContactUpdateOne) ClearEnrichedEmail() *ContactUpdateOne {
	_u.mutation.ClearEnrichedEmail()
	return _u
}

// SetEnrichedEmailConfidence sets the "enriched_email_confidence" field.
func (_u *ContactUpdateOne) SetEnrichedEmailConfidence(v float64) *ContactUpdateOne {
	_u.mutation.ResetEnrichedEmailConfidence()
	_u.mutation.SetEnrichedEmailConfidence(v)
	return _u
}

// SetNillableEnrichedEmailConfidence sets the "enriched_email_confidence" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEnrichedEmailConfidence(v *float64) *ContactUpdateOne {
	if v != nil {
		_u.SetEnrichedEmailConfidence(*v)
	}
	return _u
}

// AddEnrichedEmailConfidence adds value to the "enriched_email_confidence" field.
func (_u *ContactUpdateOne) AddEnrichedEmailConfidence(v float64) *ContactUpdateOne {
	_u.mutation.AddEnrichedEmailConfidence(v)
	return _u
}

// ClearEnrichedEmailConfidence clears the value of the "enriched_email_confidence" field.
func (_u *ContactUpdateOne) ClearEnrichedEmailConfidence() *ContactUpdateOne {
	_u.mutation.ClearEnrichedEmailConfidence()
	return _u
}

// SetEnrichedEmailSource sets the "enriched_email_source" field.
func (_u *ContactUpdateOne) SetEnrichedEmailSource(v string) *ContactUpdateOne {
	_u.mutation.SetEnrichedEmailSource(v)
	return _u
}

// SetNillableEnrichedEmailSource sets the "enriched_email_source" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEnrichedEmailSource(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetEnrichedEmailSource(*v)
	}
	return _u
}

// ClearEnrichedEmailSource clears the value of the "enriched_email_source" field.
func (_u *ContactUpdateOne) ClearEnrichedEmailSource() *ContactUpdateOne {
	_u.mutation.ClearEnrichedEmailSource()
	return _u
}

// SetEmailValid sets the "email_valid" field.
func (_u *ContactUpdateOne) SetEmailValid(v bool) *ContactUpdateOne {
	_u.mutation.SetEmailValid(v)
	return _u
}

// SetNillableEmailValid sets the "email_valid" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEmailValid(v *bool) *ContactUpdateOne {
	if v != nil {
		_u.SetEmailValid(*v)
	}
	return _u
}

// ClearEmailValid clears the value of the "email_valid" field.
func (_u *ContactUpdateOne) ClearEmailValid() *ContactUpdateOne {
	_u.mutation.ClearEmailValid()
	return _u
}

// SetEmailValidationStatus sets the "email_validation_status" field.
func (_u *ContactUpdateOne) SetEmailValidationStatus(v string) *ContactUpdateOne {
	_u.mutation.SetEmailValidationStatus(v)
	return _u
}

// SetNillableEmailValidationStatus sets the "email_validation_status" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEmailValidationStatus(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetEmailValidationStatus(*v)
	}
	return _u
}

// ClearEmailValidationStatus clears the value of the "email_validation_status" field.
func (_u *ContactUpdateOne) ClearEmailValidationStatus() *ContactUpdateOne {
	_u.mutation.ClearEmailValidationStatus()
	return _u
}

// SetEnrichedPhone sets the "enriched_phone" field.
func (_u *ContactUpdateOne) SetEnrichedPhone(v string) *ContactUpdateOne {
	_u.mutation.SetEnrichedPhone(v)
	return _u
}

// SetNillableEnrichedPhone sets the "enriched_phone" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEnrichedPhone(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetEnrichedPhone(*v)
	}
	return _u
}

// ClearEnrichedPhone clears the value of the "enriched_phone" field.
func (_u *ContactUpdateOne) ClearEnrichedPhone() *ContactUpdateOne {
	_u.mutation.ClearEnrichedPhone()
	return _u
}

// SetEnrichedPhoneConfidence sets the "enriched_phone_confidence" field.
func (_u *ContactUpdateOne) SetEnrichedPhoneConfidence(v float64) *ContactUpdateOne {
	_u.mutation.ResetEnrichedPhoneConfidence()
	_u.mutation.SetEnrichedPhoneConfidence(v)
	return _u
}

// SetNillableEnrichedPhoneConfidence sets the "enriched_phone_confidence" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEnrichedPhoneConfidence(v *float64) *ContactUpdateOne {
	if v != nil {
		_u.SetEnrichedPhoneConfidence(*v)
	}
	return _u
}

// AddEnrichedPhoneConfidence adds value to the "enriched_phone_confidence" field.
func (_u *ContactUpdateOne) AddEnrichedPhoneConfidence(v float64) *ContactUpdateOne {
	_u.mutation.AddEnrichedPhoneConfidence(v)
	return _u
}

// ClearEnrichedPhoneConfidence clears the value of the "enriched_phone_confidence" field.
func (_u *ContactUpdateOne) ClearEnrichedPhoneConfidence() *ContactUpdateOne {
	_u.mutation.ClearEnrichedPhoneConfidence()
	return _u
}

// SetEnrichedPhoneSource sets the "enriched_phone_source" field.
func (_u *ContactUpdateOne) SetEnrichedPhoneSource(v string) *ContactUpdateOne {
	_u.mutation.SetEnrichedPhoneSource(v)
	return _u
}

// SetNillableEnrichedPhoneSource sets the "enriched_phone_source" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEnrichedPhoneSource(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetEnrichedPhoneSource(*v)
	}
	return _u
}

// ClearEnrichedPhoneSource clears the value of the "enriched_phone_source" field.
func (_u *ContactUpdateOne) ClearEnrichedPhoneSource() *ContactUpdateOne {
	_u.mutation.ClearEnrichedPhoneSource()
	return _u
}

// SetEnrichedPhoneFormatted sets the "enriched_phone_formatted" field.
func (_u *ContactUpdateOne) SetEnrichedPhoneFormatted(v string) *ContactUpdateOne {
	_u.mutation.SetEnrichedPhoneFormatted(v)
	return _u
}

// SetNillableEnrichedPhoneFormatted sets the "enriched_phone_formatted" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEnrichedPhoneFormatted(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetEnrichedPhoneFormatted(*v)
	}
	return _u
}

// ClearEnrichedPhoneFormatted clears the value of the "enriched_phone_formatted" field.
func (_u *ContactUpdateOne) ClearEnrichedPhoneFormatted() *ContactUpdateOne {
	_u.mutation.ClearEnrichedPhoneFormatted()
	return _u
}

// SetWebsiteEmails sets the "website_emails" field.
func (_u *ContactUpdateOne) SetWebsiteEmails(v []string) *ContactUpdateOne {
	_u.mutation.SetWebsiteEmails(v)
	return _u
}

// AppendWebsiteEmails appends value to the "website_emails" field.
func (_u *ContactUpdateOne) AppendWebsiteEmails(v []string) *ContactUpdateOne {
	_u.mutation.AppendWebsiteEmails(v)
	return _u
}

// ClearWebsiteEmails clears the value of the "website_emails" field.
func (_u *ContactUpdateOne) ClearWebsiteEmails() *ContactUpdateOne {
	_u.mutation.ClearWebsiteEmails()
	return _u
}

// SetWebsitePhones sets the "website_phones" field.
func (_u *ContactUpdateOne) SetWebsitePhones(v []string) *ContactUpdateOne {
	_u.mutation.SetWebsitePhones(v)
	return _u
}

// AppendWebsitePhones appends value to the "website_phones" field.
func (_u *ContactUpdateOne) AppendWebsitePhones(v []string) *ContactUpdateOne {
	_u.mutation.AppendWebsitePhones(v)
	return _u
}

// ClearWebsitePhones clears the value of the "website_phones" field.
func (_u *ContactUpdateOne) ClearWebsitePhones() *ContactUpdateOne {
	_u.mutation.ClearWebsitePhones()
	return _u
}

// SetSocialLinks sets the "social_links" field.
func (_u *ContactUpdateOne) SetSocialLinks(v map[string]string) *ContactUpdateOne {
	_u.mutation.SetSocialLinks(v)
	return _u
}

// ClearSocialLinks clears the value of the "social_links" field.
func (_u *ContactUpdateOne) ClearSocialLinks() *ContactUpdateOne {
	_u.mutation.ClearSocialLinks()
	return _u
}

// SetSocialFollowers sets the "social_followers" field.
func (_u *ContactUpdateOne) SetSocialFollowers(v int) *ContactUpdateOne {
	_u.mutation.ResetSocialFollowers()
	_u.mutation.SetSocialFollowers(v)
	return _u
}

// SetNillableSocialFollowers sets the "social_followers" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableSocialFollowers(v *int) *ContactUpdateOne {
	if v != nil {
		_u.SetSocialFollowers(*v)
	}
	return _u
}

// AddSocialFollowers adds value to the "social_followers" field.
func (_u *ContactUpdateOne) AddSocialFollowers(v int) *ContactUpdateOne {
	_u.mutation.AddSocialFollowers(v)
	return _u
}

// ClearSocialFollowers clears the value of the "social_followers" field.
func (_u *ContactUpdateOne) ClearSocialFollowers() *ContactUpdateOne {
	_u.mutation.ClearSocialFollowers()
	return _u
}

// SetSocialAbout sets the "social_about" field.
func (_u *ContactUpdateOne) SetSocialAbout(v string) *ContactUpdateOne {
	_u.mutation.SetSocialAbout(v)
	return _u
}

// SetNillableSocialAbout sets the "social_about" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableSocialAbout(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetSocialAbout(*v)
	}
	return _u
}

// ClearSocialAbout clears the value of the "social_about" field.
func (_u *ContactUpdateOne) ClearSocialAbout() *ContactUpdateOne {
	_u.mutation.ClearSocialAbout()
	return _u
}

// SetCompletenessScore sets the "completeness_score" field.
func (_u *ContactUpdateOne) SetCompletenessScore(v float64) *ContactUpdateOne {
	_u.mutation.ResetCompletenessScore()
	_u.mutation.SetCompletenessScore(v)
	return _u
}

// SetNillableCompletenessScore sets the "completeness_score" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableCompletenessScore(v *float64) *ContactUpdateOne {
	if v != nil {
		_u.SetCompletenessScore(*v)
	}
	return _u
}

// AddCompletenessScore adds value to the "completeness_score" field.
func (_u *ContactUpdateOne) AddCompletenessScore(v float64) *ContactUpdateOne {
	_u.mutation.AddCompletenessScore(v)
	return _u
}

// ClearCompletenessScore clears the value of the "completeness_score" field.
func (_u *ContactUpdateOne) ClearCompletenessScore() *ContactUpdateOne {
	_u.mutation.ClearCompletenessScore()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ContactUpdateOne) SetConfidenceScore(v float64) *ContactUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableConfidenceScore(v *float64) *ContactUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ContactUpdateOne) AddConfidenceScore(v float64) *ContactUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *ContactUpdateOne) ClearConfidenceScore() *ContactUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContactUpdateOne) SetStatus(v contact.Status) *ContactUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableStatus(v *contact.Status) *ContactUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *ContactUpdateOne) SetErrorDetail(v string) *ContactUpdateOne {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableErrorDetail(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *ContactUpdateOne) ClearErrorDetail() *ContactUpdateOne {
	_u.mutation.ClearErrorDetail()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactUpdateOne) SetUpdatedAt(v time.Time) *ContactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBatchID sets the "batch" edge to the EnrichmentBatch entity by ID.
func (_u *ContactUpdateOne) SetBatchID(id int) *ContactUpdateOne {
	_u.mutation.SetBatchID(id)
	return _u
}

// SetNillableBatchID sets the "batch" edge to the EnrichmentBatch entity by ID if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableBatchID(id *int) *ContactUpdateOne {
	if id != nil {
		_u = _u.SetBatchID(*id)
	}
	return _u
}

// SetBatch sets the "batch" edge to the EnrichmentBatch entity.
func (_u *ContactUpdateOne) SetBatch(v *EnrichmentBatch) *ContactUpdateOne {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdateOne) Mutation() *ContactMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the EnrichmentBatch entity.
func (_u *ContactUpdateOne) ClearBatch() *ContactUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdateOne) Where(ps ...predicate.Contact) *ContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContactUpdateOne) Select(field string, fields ...string) *ContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contact entity.
func (_u *ContactUpdateOne) Save(ctx context.Context) (*Contact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdateOne) SaveX(ctx context.Context) *Contact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := contact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contact.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContactUpdateOne) sqlSave(ctx context.Context) (_node *Contact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contact.FieldID)
		for _, f := range fields {
			if !contact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contact.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(contact.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(contact.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(contact.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(contact.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(contact.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(contact.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(contact.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(contact.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(contact.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(contact.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(contact.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(contact.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(contact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(contact.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(contact.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.FacebookURL(); ok {
		_spec.SetField(contact.FieldFacebookURL, field.TypeString, value)
	}
	if _u.mutation.FacebookURLCleared() {
		_spec.ClearField(contact.FieldFacebookURL, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichedEmail(); ok {
		_spec.SetField(contact.FieldEnrichedEmail, field.TypeString, value)
	}
	if _u.mutation.EnrichedEmailCleared() {
		_spec.ClearField(contact.FieldEnrichedEmail, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichedEmailConfidence(); ok {
		_spec.SetField(contact.FieldEnrichedEmailConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEnrichedEmailConfidence(); ok {
		_spec.AddField(contact.FieldEnrichedEmailConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.EnrichedEmailConfidenceCleared() {
		_spec.ClearField(contact.FieldEnrichedEmailConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EnrichedEmailSource(); ok {
		_spec.SetField(contact.FieldEnrichedEmailSource, field.TypeString, value)
	}
	if _u.mutation.EnrichedEmailSourceCleared() {
		_spec.ClearField(contact.FieldEnrichedEmailSource, field.TypeString)
	}
	if value, ok := _u.mutation.EmailValid(); ok {
		_spec.SetField(contact.FieldEmailValid, field.TypeBool, value)
	}
	if _u.mutation.EmailValidCleared() {
		_spec.ClearField(contact.FieldEmailValid, field.TypeBool)
	}
	if value, ok := _u.mutation.EmailValidationStatus(); ok {
		_spec.SetField(contact.FieldEmailValidationStatus, field.TypeString, value)
	}
	if _u.mutation.EmailValidationStatusCleared() {
		_spec.ClearField(contact.FieldEmailValidationStatus, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichedPhone(); ok {
		_spec.SetField(contact.FieldEnrichedPhone, field.TypeString, value)
	}
	if _u.mutation.EnrichedPhoneCleared() {
		_spec.ClearField(contact.FieldEnrichedPhone, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichedPhoneConfidence(); ok {
		_spec.SetField(contact.FieldEnrichedPhoneConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEnrichedPhoneConfidence(); ok {
		_spec.AddField(contact.FieldEnrichedPhoneConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.EnrichedPhoneConfidenceCleared() {
		_spec.ClearField(contact.FieldEnrichedPhoneConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EnrichedPhoneSource(); ok {
		_spec.SetField(contact.FieldEnrichedPhoneSource, field.TypeString, value)
	}
	if _u.mutation.EnrichedPhoneSourceCleared() {
		_spec.ClearField(contact.FieldEnrichedPhoneSource, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichedPhoneFormatted(); ok {
		_spec.SetField(contact.FieldEnrichedPhoneFormatted, field.TypeString, value)
	}
	if _u.mutation.EnrichedPhoneFormattedCleared() {
		_spec.ClearField(contact.FieldEnrichedPhoneFormatted, field.TypeString)
	}
	if value, ok := _u.mutation.WebsiteEmails(); ok {
		_spec.SetField(contact.FieldWebsiteEmails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWebsiteEmails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contact.FieldWebsiteEmails, value)
		})
	}
	if _u.mutation.WebsiteEmailsCleared() {
		_spec.ClearField(contact.FieldWebsiteEmails, field.TypeJSON)
	}
	if value, ok := _u.mutation.WebsitePhones(); ok {
		_spec.SetField(contact.FieldWebsitePhones, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWebsitePhones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contact.FieldWebsitePhones, value)
		})
	}
	if _u.mutation.WebsitePhonesCleared() {
		_spec.ClearField(contact.FieldWebsitePhones, field.TypeJSON)
	}
	if value, ok := _u.mutation.SocialLinks(); ok {
		_spec.SetField(contact.FieldSocialLinks, field.TypeJSON, value)
	}
	if _u.mutation.SocialLinksCleared() {
		_spec.ClearField(contact.FieldSocialLinks, field.TypeJSON)
	}
	if value, ok := _u.mutation.SocialFollowers(); ok {
		_spec.SetField(contact.FieldSocialFollowers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSocialFollowers(); ok {
		_spec.AddField(contact.FieldSocialFollowers, field.TypeInt, value)
	}
	if _u.mutation.SocialFollowersCleared() {
		_spec.ClearField(contact.FieldSocialFollowers, field.TypeInt)
	}
	if value, ok := _u.mutation.SocialAbout(); ok {
		_spec.SetField(contact.FieldSocialAbout, field.TypeString, value)
	}
	if _u.mutation.SocialAboutCleared() {
		_spec.ClearField(contact.FieldSocialAbout, field.TypeString)
	}
	if value, ok := _u.mutation.CompletenessScore(); ok {
		_spec.SetField(contact.FieldCompletenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletenessScore(); ok {
		_spec.AddField(contact.FieldCompletenessScore, field.TypeFloat64, value)
	}
	if _u.mutation.CompletenessScoreCleared() {
		_spec.ClearField(contact.FieldCompletenessScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(contact.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(contact.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(contact.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(contact.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(contact.FieldErrorDetail, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contact.BatchTable,
			Columns: []string{contact.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contact.BatchTable,
			Columns: []string{contact.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
