// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
)

// ContactCreate is the builder for creating a Contact entity.
type ContactCreate struct {
	config
	mutation *ContactMutation
	hooks    []Hook
}

// SetFirstName sets the "first_name" field.
func (_c *ContactCreate) SetFirstName(v string) *ContactCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_c *ContactCreate) SetNillableFirstName(v *string) *ContactCreate {
	if v != nil {
		_c.SetFirstName(*v)
	}
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *ContactCreate) SetLastName(v string) *ContactCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_c *ContactCreate) SetNillableLastName(v *string) *ContactCreate {
	if v != nil {
		_c.SetLastName(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *ContactCreate) SetCompany(v string) *ContactCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *ContactCreate) SetNillableCompany(v *string) *ContactCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *ContactCreate) SetCity(v string) *ContactCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *ContactCreate) SetNillableCity(v *string) *ContactCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ContactCreate) SetState(v string) *ContactCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ContactCreate) SetNillableState(v *string) *ContactCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ContactCreate) SetPhone(v string) *ContactCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ContactCreate) SetNillablePhone(v *string) *ContactCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ContactCreate) SetEmail(v string) *ContactCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEmail(v *string) *ContactCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetWebsite sets the "website" field.
func (_c *ContactCreate) SetWebsite(v string) *ContactCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *ContactCreate) SetNillableWebsite(v *string) *ContactCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetFacebookURL sets the "facebook_url" field.
func (_c *ContactCreate) SetFacebookURL(v string) *ContactCreate {
	_c.mutation.SetFacebookURL(v)
	return _c
}

// SetNillableFacebookURL sets the "facebook_url" field if the given value is not nil.
func (_c *ContactCreate) SetNillableFacebookURL(v *string) *ContactCreate {
	if v != nil {
		_c.SetFacebookURL(*v)
	}
	return _c
}

// SetEnrichedEmail sets the "enriched_email" field.
func (_c *ContactCreate) SetEnrichedEmail(v string) *ContactCreate {
	_c.mutation.SetEnrichedEmail(v)
	return _c
}

// SetNillableEnrichedEmail sets the "enriched_email" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEnrichedEmail(v *string) *ContactCreate {
	if v != nil {
		_c.SetEnrichedEmail(*v)
	}
	return _c
}

// SetEnrichedEmailConfidence sets the "enriched_email_confidence" field.
func (_c *ContactCreate) SetEnrichedEmailConfidence(v float64) *ContactCreate {
	_c.mutation.SetEnrichedEmailConfidence(v)
	return _c
}

// SetNillableEnrichedEmailConfidence sets the "enriched_email_confidence" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEnrichedEmailConfidence(v *float64) *ContactCreate {
	if v != nil {
		_c.SetEnrichedEmailConfidence(*v)
	}
	return _c
}

// SetEnrichedEmailSource sets the "enriched_email_source" field.
func (_c *ContactCreate) SetEnrichedEmailSource(v string) *ContactCreate {
	_c.mutation.SetEnrichedEmailSource(v)
	return _c
}

// SetNillableEnrichedEmailSource sets the "enriched_email_source" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEnrichedEmailSource(v *string) *ContactCreate {
	if v != nil {
		_c.SetEnrichedEmailSource(*v)
	}
	return _c
}

// SetEmailValid sets the "email_valid" field.
func (_c *ContactCreate) SetEmailValid(v bool) *ContactCreate {
	_c.mutation.SetEmailValid(v)
	return _c
}

// SetNillableEmailValid sets the "email_valid" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEmailValid(v *bool) *ContactCreate {
	if v != nil {
		_c.SetEmailValid(*v)
	}
	return _c
}

// SetEmailValidationStatus sets the "email_validation_status" field.
func (_c *ContactCreate) SetEmailValidationStatus(v string) *ContactCreate {
	_c.mutation.SetEmailValidationStatus(v)
	return _c
}

// SetNillableEmailValidationStatus sets the "email_validation_status" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEmailValidationStatus(v *string) *ContactCreate {
	if v != nil {
		_c.SetEmailValidationStatus(*v)
	}
	return _c
}

// SetEnrichedPhone sets the "enriched_phone" field.
func (_c *ContactCreate) SetEnrichedPhone(v string) *ContactCreate {
	_c.mutation.SetEnrichedPhone(v)
	return _c
}

// SetNillableEnrichedPhone sets the "enriched_phone" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEnrichedPhone(v *string) *ContactCreate {
	if v != nil {
		_c.SetEnrichedPhone(*v)
	}
	return _c
}

// SetEnrichedPhoneConfidence sets the "enriched_phone_confidence" field.
func (_c *ContactCreate) SetEnrichedPhoneConfidence(v float64) *ContactCreate {
	_c.mutation.SetEnrichedPhoneConfidence(v)
	return _c
}

// SetNillableEnrichedPhoneConfidence sets the "enriched_phone_confidence" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEnrichedPhoneConfidence(v *float64) *ContactCreate {
	if v != nil {
		_c.SetEnrichedPhoneConfidence(*v)
	}
	return _c
}

// SetEnrichedPhoneSource sets the "enriched_phone_source" field.
func (_c *ContactCreate) SetEnrichedPhoneSource(v string) *ContactCreate {
	_c.mutation.SetEnrichedPhoneSource(v)
	return _c
}

// SetNillableEnrichedPhoneSource sets the "enriched_phone_source" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEnrichedPhoneSource(v *string) *ContactCreate {
	if v != nil {
		_c.SetEnrichedPhoneSource(*v)
	}
	return _c
}

// SetEnrichedPhoneFormatted sets the "enriched_phone_formatted" field.
func (_c *ContactCreate) SetEnrichedPhoneFormatted(v string) *ContactCreate {
	_c.mutation.SetEnrichedPhoneFormatted(v)
	return _c
}

// SetNillableEnrichedPhoneFormatted sets the "enriched_phone_formatted" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEnrichedPhoneFormatted(v *string) *ContactCreate {
	if v != nil {
		_c.SetEnrichedPhoneFormatted(*v)
	}
	return _c
}

// SetWebsiteEmails sets the "website_emails" field.
func (_c *ContactCreate) SetWebsiteEmails(v []string) *ContactCreate {
	_c.mutation.SetWebsiteEmails(v)
	return _c
}

// SetWebsitePhones sets the "website_phones" field.
func (_c *ContactCreate) SetWebsitePhones(v []string) *ContactCreate {
	_c.mutation.SetWebsitePhones(v)
	return _c
}

// SetSocialLinks sets the "social_links" field.
func (_c *ContactCreate) SetSocialLinks(v map[string]string) *ContactCreate {
	_c.mutation.SetSocialLinks(v)
	return _c
}

// SetSocialFollowers sets the "social_followers" field.
func (_c *ContactCreate) SetSocialFollowers(v int) *ContactCreate {
	_c.mutation.SetSocialFollowers(v)
	return _c
}

// SetNillableSocialFollowers sets the "social_followers" field if the given value is not nil.
func (_c *ContactCreate) SetNillableSocialFollowers(v *int) *ContactCreate {
	if v != nil {
		_c.SetSocialFollowers(*v)
	}
	return _c
}

// SetSocialAbout sets the "social_about" field.
func (_c *ContactCreate) SetSocialAbout(v string) *ContactCreate {
	_c.mutation.SetSocialAbout(v)
	return _c
}

// SetNillableSocialAbout sets the "social_about" field if the given value is not nil.
func (_c *ContactCreate) SetNillableSocialAbout(v *string) *ContactCreate {
	if v != nil {
		_c.SetSocialAbout(*v)
	}
	return _c
}

// SetCompletenessScore sets the "completeness_score" field.
func (_c *ContactCreate) SetCompletenessScore(v float64) *ContactCreate {
	_c.mutation.SetCompletenessScore(v)
	return _c
}

// SetNillableCompletenessScore sets the "completeness_score" field if the given value is not nil.
func (_c *ContactCreate) SetNillableCompletenessScore(v *float64) *ContactCreate {
	if v != nil {
		_c.SetCompletenessScore(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *ContactCreate) SetConfidenceScore(v float64) *ContactCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *ContactCreate) SetNillableConfidenceScore(v *float64) *ContactCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ContactCreate) SetStatus(v contact.Status) *ContactCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ContactCreate) SetNillableStatus(v *contact.Status) *ContactCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorDetail sets the "error_detail" field.
func (_c *ContactCreate) SetErrorDetail(v string) *ContactCreate {
	_c.mutation.SetErrorDetail(v)
	return _c
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_c *ContactCreate) SetNillableErrorDetail(v *string) *ContactCreate {
	if v != nil {
		_c.SetErrorDetail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContactCreate) SetCreatedAt(v time.Time) *ContactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContactCreate) SetNillableCreatedAt(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContactCreate) SetUpdatedAt(v time.Time) *ContactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContactCreate) SetNillableUpdatedAt(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBatchID sets the "batch" edge to the EnrichmentBatch entity by ID.
func (_c *ContactCreate) SetBatchID(id int) *ContactCreate {
	_c.mutation.SetBatchID(id)
	return _c
}

// SetNillableBatchID sets the "batch" edge to the EnrichmentBatch entity by ID if the given value is not nil.
func (_c *ContactCreate) SetNillableBatchID(id *int) *ContactCreate {
	if id != nil {
		_c = _c.SetBatchID(*id)
	}
	return _c
}

// SetBatch sets the "batch" edge to the EnrichmentBatch entity.
func (_c *ContactCreate) SetBatch(v *EnrichmentBatch) *ContactCreate {
	return _c.SetBatchID(v.ID)
}

// Mutation returns the ContactMutation object of the builder.
func (_c *ContactCreate) Mutation() *ContactMutation {
	return _c.mutation
}

// Save creates the Contact in the database.
func (_c *ContactCreate) Save(ctx context.Context) (*Contact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContactCreate) SaveX(ctx context.Context) *Contact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContactCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := contact.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContactCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Contact.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := contact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contact.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contact.updated_at"`)}
	}
	return nil
}

func (_c *ContactCreate) sqlSave(ctx context.Context) (*Contact, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContactCreate) createSpec() (*Contact, *sqlgraph.CreateSpec) {
	var (
		_node = &Contact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contact.Table, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(contact.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(contact.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(contact.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(contact.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(contact.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(contact.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(contact.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := _c.mutation.FacebookURL(); ok {
		_spec.SetField(contact.FieldFacebookURL, field.TypeString, value)
		_node.FacebookURL = value
	}
	if value, ok := _c.mutation.EnrichedEmail(); ok {
		_spec.SetField(contact.FieldEnrichedEmail, field.TypeString, value)
		_node.EnrichedEmail = value
	}
	if value, ok := _c.mutation.EnrichedEmailConfidence(); ok {
		_spec.SetField(contact.FieldEnrichedEmailConfidence, field.TypeFloat64, value)
		_node.EnrichedEmailConfidence = value
	}
	if value, ok := _c.mutation.EnrichedEmailSource(); ok {
		_spec.SetField(contact.FieldEnrichedEmailSource, field.TypeString, value)
		_node.EnrichedEmailSource = value
	}
	if value, ok := _c.mutation.EmailValid(); ok {
		_spec.SetField(contact.FieldEmailValid, field.TypeBool, value)
		_node.EmailValid = &value
	}
	if value, ok := _c.mutation.EmailValidationStatus(); ok {
		_spec.SetField(contact.FieldEmailValidationStatus, field.TypeString, value)
		_node.EmailValidationStatus = value
	}
	if value, ok := _c.mutation.EnrichedPhone(); ok {
		_spec.SetField(contact.FieldEnrichedPhone, field.TypeString, value)
		_node.EnrichedPhone = value
	}
	if value, ok := _c.mutation.EnrichedPhoneConfidence(); ok {
		_spec.SetField(contact.FieldEnrichedPhoneConfidence, field.TypeFloat64, value)
		_node.EnrichedPhoneConfidence = value
	}
	if value, ok := _c.mutation.EnrichedPhoneSource(); ok {
		_spec.SetField(contact.FieldEnrichedPhoneSource, field.TypeString, value)
		_node.EnrichedPhoneSource = value
	}
	if value, ok := _c.mutation.EnrichedPhoneFormatted(); ok {
		_spec.SetField(contact.FieldEnrichedPhoneFormatted, field.TypeString, value)
		_node.EnrichedPhoneFormatted = value
	}
	if value, ok := _c.mutation.WebsiteEmails(); ok {
		_spec.SetField(contact.FieldWebsiteEmails, field.TypeJSON, value)
		_node.WebsiteEmails = value
	}
	if value, ok := _c.mutation.WebsitePhones(); ok {
		_spec.SetField(contact.FieldWebsitePhones, field.TypeJSON, value)
		_node.WebsitePhones = value
	}
	if value, ok := _c.mutation.SocialLinks(); ok {
		_spec.SetField(contact.FieldSocialLinks, field.TypeJSON, value)
		_node.SocialLinks = value
	}
	if value, ok := _c.mutation.SocialFollowers(); ok {
		_spec.SetField(contact.FieldSocialFollowers, field.TypeInt, value)
		_node.SocialFollowers = value
	}
	if value, ok := _c.mutation.SocialAbout(); ok {
		_spec.SetField(contact.FieldSocialAbout, field.TypeString, value)
		_node.SocialAbout = value
	}
	if value, ok := _c.mutation.CompletenessScore(); ok {
		_spec.SetField(contact.FieldCompletenessScore, field.TypeFloat64, value)
		_node.CompletenessScore = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(contact.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(contact.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorDetail(); ok {
		_spec.SetField(contact.FieldErrorDetail, field.TypeString, value)
		_node.ErrorDetail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BatchIDs(); len(nodes) > 0 {
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
		_node.enrichment_batch_contacts = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContactCreateBulk is the builder for creating many Contact entities in bulk.
type ContactCreateBulk struct {
	config
	err      error
	builders []*ContactCreate
}

// Save creates the Contact entities in the database.
func (_c *ContactCreateBulk) Save(ctx context.Context) ([]*Contact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContactMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ContactCreateBulk) SaveX(ctx context.Context) []*Contact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
