// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promarkhq/marketingdb/ent/campaign"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCampaign        = "Campaign"
	TypeContact         = "Contact"
	TypeEnrichmentBatch = "EnrichmentBatch"
)

// CampaignMutation represents an operation that mutates the Campaign nodes in the graph.
type CampaignMutation struct {
	config
	op             Op
	typ            string
	id             *int
	name           *string
	owner_email    *string
	objective      *string
	status         *campaign.Status
	generated_copy *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	batches        map[int]struct{}
	removedbatches map[int]struct{}
	clearedbatches bool
	done           bool
	oldValue       func(context.Context) (*Campaign, error)
	predicates     []predicate.Campaign
}

var _ ent.Mutation = (*CampaignMutation)(nil)

// campaignOption allows management of the mutation configuration using functional options.
type campaignOption func(*CampaignMutation)

// newCampaignMutation creates new mutation for the Campaign entity.
func newCampaignMutation(c config, op Op, opts ...campaignOption) *CampaignMutation {
	m := &CampaignMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaign,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignID sets the ID field of the mutation.
func withCampaignID(id int) campaignOption {
	return func(m *CampaignMutation) {
		var (
			err   error
			once  sync.Once
			value *Campaign
		)
		m.oldValue = func(ctx context.Context) (*Campaign, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Campaign.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaign sets the old Campaign of the mutation.
func withCampaign(node *Campaign) campaignOption {
	return func(m *CampaignMutation) {
		m.oldValue = func(context.Context) (*Campaign, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Campaign.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CampaignMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CampaignMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CampaignMutation) ResetName() {
	m.name = nil
}

// SetOwnerEmail sets the "owner_email" field.
func (m *CampaignMutation) SetOwnerEmail(s string) {
	m.owner_email = &s
}

// OwnerEmail returns the value of the "owner_email" field in the mutation.
func (m *CampaignMutation) OwnerEmail() (r string, exists bool) {
	v := m.owner_email
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerEmail returns the old "owner_email" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldOwnerEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerEmail: %w", err)
	}
	return oldValue.OwnerEmail, nil
}

// ClearOwnerEmail clears the value of the "owner_email" field.
func (m *CampaignMutation) ClearOwnerEmail() {
	m.owner_email = nil
	m.clearedFields[campaign.FieldOwnerEmail] = struct{}{}
}

// OwnerEmailCleared returns if the "owner_email" field was cleared in this mutation.
func (m *CampaignMutation) OwnerEmailCleared() bool {
	_, ok := m.clearedFields[campaign.FieldOwnerEmail]
	return ok
}

// ResetOwnerEmail resets all changes to the "owner_email" field.
func (m *CampaignMutation) ResetOwnerEmail() {
	m.owner_email = nil
	delete(m.clearedFields, campaign.FieldOwnerEmail)
}

// SetObjective sets the "objective" field.
func (m *CampaignMutation) SetObjective(s string) {
	m.objective = &s
}

// Objective returns the value of the "objective" field in the mutation.
func (m *CampaignMutation) Objective() (r string, exists bool) {
	v := m.objective
	if v == nil {
		return
	}
	return *v, true
}

// OldObjective returns the old "objective" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldObjective(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjective is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjective requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjective: %w", err)
	}
	return oldValue.Objective, nil
}

// ClearObjective clears the value of the "objective" field.
func (m *CampaignMutation) ClearObjective() {
	m.objective = nil
	m.clearedFields[campaign.FieldObjective] = struct{}{}
}

// ObjectiveCleared returns if the "objective" field was cleared in this mutation.
func (m *CampaignMutation) ObjectiveCleared() bool {
	_, ok := m.clearedFields[campaign.FieldObjective]
	return ok
}

// ResetObjective resets all changes to the "objective" field.
func (m *CampaignMutation) ResetObjective() {
	m.objective = nil
	delete(m.clearedFields, campaign.FieldObjective)
}

// SetStatus sets the "status" field.
func (m *CampaignMutation) SetStatus(c campaign.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CampaignMutation) Status() (r campaign.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStatus(ctx context.Context) (v campaign.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CampaignMutation) ResetStatus() {
	m.status = nil
}

// SetGeneratedCopy sets the "generated_copy" field.
func (m *CampaignMutation) SetGeneratedCopy(s string) {
	m.generated_copy = &s
}

// GeneratedCopy returns the value of the "generated_copy" field in the mutation.
func (m *CampaignMutation) GeneratedCopy() (r string, exists bool) {
	v := m.generated_copy
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedCopy returns the old "generated_copy" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldGeneratedCopy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedCopy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedCopy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedCopy: %w", err)
	}
	return oldValue.GeneratedCopy, nil
}

// ClearGeneratedCopy clears the value of the "generated_copy" field.
func (m *CampaignMutation) ClearGeneratedCopy() {
	m.generated_copy = nil
	m.clearedFields[campaign.FieldGeneratedCopy] = struct{}{}
}

// GeneratedCopyCleared returns if the "generated_copy" field was cleared in this mutation.
func (m *CampaignMutation) GeneratedCopyCleared() bool {
	_, ok := m.clearedFields[campaign.FieldGeneratedCopy]
	return ok
}

// ResetGeneratedCopy resets all changes to the "generated_copy" field.
func (m *CampaignMutation) ResetGeneratedCopy() {
	m.generated_copy = nil
	delete(m.clearedFields, campaign.FieldGeneratedCopy)
}

// SetCreatedAt sets the "created_at" field.
func (m *CampaignMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampaignMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampaignMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CampaignMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CampaignMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CampaignMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBatchIDs adds the "batches" edge to the EnrichmentBatch entity by ids.
func (m *CampaignMutation) AddBatchIDs(ids ...int) {
	if m.batches == nil {
		m.batches = make(map[int]struct{})
	}
	for i := range ids {
		m.batches[ids[i]] = struct{}{}
	}
}

// ClearBatches clears the "batches" edge to the EnrichmentBatch entity.
func (m *CampaignMutation) ClearBatches() {
	m.clearedbatches = true
}

// BatchesCleared reports if the "batches" edge to the EnrichmentBatch entity was cleared.
func (m *CampaignMutation) BatchesCleared() bool {
	return m.clearedbatches
}

// RemoveBatchIDs removes the "batches" edge to the EnrichmentBatch entity by IDs.
func (m *CampaignMutation) RemoveBatchIDs(ids ...int) {
	if m.removedbatches == nil {
		m.removedbatches = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.batches, ids[i])
		m.removedbatches[ids[i]] = struct{}{}
	}
}

// RemovedBatches returns the removed IDs of the "batches" edge to the EnrichmentBatch entity.
func (m *CampaignMutation) RemovedBatchesIDs() (ids []int) {
	for id := range m.removedbatches {
		ids = append(ids, id)
	}
	return
}

// BatchesIDs returns the "batches" edge IDs in the mutation.
func (m *CampaignMutation) BatchesIDs() (ids []int) {
	for id := range m.batches {
		ids = append(ids, id)
	}
	return
}

// ResetBatches resets all changes to the "batches" edge.
func (m *CampaignMutation) ResetBatches() {
	m.batches = nil
	m.clearedbatches = false
	m.removedbatches = nil
}

// Where appends a list predicates to the CampaignMutation builder.
func (m *CampaignMutation) Where(ps ...predicate.Campaign) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Campaign, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Campaign).
func (m *CampaignMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, campaign.FieldName)
	}
	if m.owner_email != nil {
		fields = append(fields, campaign.FieldOwnerEmail)
	}
	if m.objective != nil {
		fields = append(fields, campaign.FieldObjective)
	}
	if m.status != nil {
		fields = append(fields, campaign.FieldStatus)
	}
	if m.generated_copy != nil {
		fields = append(fields, campaign.FieldGeneratedCopy)
	}
	if m.created_at != nil {
		fields = append(fields, campaign.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, campaign.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldName:
		return m.Name()
	case campaign.FieldOwnerEmail:
		return m.OwnerEmail()
	case campaign.FieldObjective:
		return m.Objective()
	case campaign.FieldStatus:
		return m.Status()
	case campaign.FieldGeneratedCopy:
		return m.GeneratedCopy()
	case campaign.FieldCreatedAt:
		return m.CreatedAt()
	case campaign.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaign.FieldName:
		return m.OldName(ctx)
	case campaign.FieldOwnerEmail:
		return m.OldOwnerEmail(ctx)
	case campaign.FieldObjective:
		return m.OldObjective(ctx)
	case campaign.FieldStatus:
		return m.OldStatus(ctx)
	case campaign.FieldGeneratedCopy:
		return m.OldGeneratedCopy(ctx)
	case campaign.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case campaign.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Campaign field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case campaign.FieldOwnerEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerEmail(v)
		return nil
	case campaign.FieldObjective:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjective(v)
		return nil
	case campaign.FieldStatus:
		v, ok := value.(campaign.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case campaign.FieldGeneratedCopy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedCopy(v)
		return nil
	case campaign.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case campaign.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Campaign numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(campaign.FieldOwnerEmail) {
		fields = append(fields, campaign.FieldOwnerEmail)
	}
	if m.FieldCleared(campaign.FieldObjective) {
		fields = append(fields, campaign.FieldObjective)
	}
	if m.FieldCleared(campaign.FieldGeneratedCopy) {
		fields = append(fields, campaign.FieldGeneratedCopy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignMutation) ClearField(name string) error {
	switch name {
	case campaign.FieldOwnerEmail:
		m.ClearOwnerEmail()
		return nil
	case campaign.FieldObjective:
		m.ClearObjective()
		return nil
	case campaign.FieldGeneratedCopy:
		m.ClearGeneratedCopy()
		return nil
	}
	return fmt.Errorf("unknown Campaign nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignMutation) ResetField(name string) error {
	switch name {
	case campaign.FieldName:
		m.ResetName()
		return nil
	case campaign.FieldOwnerEmail:
		m.ResetOwnerEmail()
		return nil
	case campaign.FieldObjective:
		m.ResetObjective()
		return nil
	case campaign.FieldStatus:
		m.ResetStatus()
		return nil
	case campaign.FieldGeneratedCopy:
		m.ResetGeneratedCopy()
		return nil
	case campaign.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case campaign.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.batches != nil {
		edges = append(edges, campaign.EdgeBatches)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeBatches:
		ids := make([]ent.Value, 0, len(m.batches))
		for id := range m.batches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedbatches != nil {
		edges = append(edges, campaign.EdgeBatches)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeBatches:
		ids := make([]ent.Value, 0, len(m.removedbatches))
		for id := range m.removedbatches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbatches {
		edges = append(edges, campaign.EdgeBatches)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignMutation) EdgeCleared(name string) bool {
	switch name {
	case campaign.EdgeBatches:
		return m.clearedbatches
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Campaign unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignMutation) ResetEdge(name string) error {
	switch name {
	case campaign.EdgeBatches:
		m.ResetBatches()
		return nil
	}
	return fmt.Errorf("unknown Campaign edge %s", name)
}

// ContactMutation represents an operation that mutates the Contact nodes in the graph.
type ContactMutation struct {
	config
	op                           Op
	typ                          string
	id                           *int
	first_name                   *string
	last_name                    *string
	company                      *string
	city                         *string
	state                        *string
	phone                        *string
	email                        *string
	website                      *string
	facebook_url                 *string
	enriched_email               *string
	enriched_email_confidence    *float64
	addenriched_email_confidence *float64
	enriched_email_source        *string
	email_valid                  *bool
	email_validation_status      *string
	enriched_phone               *string
	enriched_phone_confidence    *float64
	addenriched_phone_confidence *float64
	enriched_phone_source        *string
	enriched_phone_formatted     *string
	website_emails               *[]string
	appendwebsite_emails         []string
	website_phones               *[]string
	appendwebsite_phones         []string
	social_links                 *map[string]string
	social_followers             *int
	addsocial_followers          *int
	social_about                 *string
	completeness_score           *float64
	addcompleteness_score        *float64
	confidence_score             *float64
	addconfidence_score          *float64
	status                       *contact.Status
	error_detail                 *string
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	batch                        *int
	clearedbatch                 bool
	done                         bool
	oldValue                     func(context.Context) (*Contact, error)
	predicates                   []predicate.Contact
}

var _ ent.Mutation = (*ContactMutation)(nil)

// contactOption allows management of the mutation configuration using functional options.
type contactOption func(*ContactMutation)

// newContactMutation creates new mutation for the Contact entity.
func newContactMutation(c config, op Op, opts ...contactOption) *ContactMutation {
	m := &ContactMutation{
		config:        c,
		op:            op,
		typ:           TypeContact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContactID sets the ID field of the mutation.
func withContactID(id int) contactOption {
	return func(m *ContactMutation) {
		var (
			err   error
			once  sync.Once
			value *Contact
		)
		m.oldValue = func(ctx context.Context) (*Contact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContact sets the old Contact of the mutation.
func withContact(node *Contact) contactOption {
	return func(m *ContactMutation) {
		m.oldValue = func(context.Context) (*Contact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContactMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContactMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFirstName sets the "first_name" field.
func (m *ContactMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *ContactMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *ContactMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[contact.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *ContactMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[contact.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *ContactMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, contact.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *ContactMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *ContactMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *ContactMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[contact.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *ContactMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[contact.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *ContactMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, contact.FieldLastName)
}

// SetCompany sets the "company" field.
func (m *ContactMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *ContactMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *ContactMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[contact.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *ContactMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[contact.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *ContactMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, contact.FieldCompany)
}

// SetCity sets the "city" field.
func (m *ContactMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *ContactMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *ContactMutation) ClearCity() {
	m.city = nil
	m.clearedFields[contact.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *ContactMutation) CityCleared() bool {
	_, ok := m.clearedFields[contact.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *ContactMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, contact.FieldCity)
}

// SetState sets the "state" field.
func (m *ContactMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ContactMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *ContactMutation) ClearState() {
	m.state = nil
	m.clearedFields[contact.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *ContactMutation) StateCleared() bool {
	_, ok := m.clearedFields[contact.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *ContactMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, contact.FieldState)
}

// SetPhone sets the "phone" field.
func (m *ContactMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ContactMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ContactMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[contact.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ContactMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[contact.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ContactMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, contact.FieldPhone)
}

// SetEmail sets the "email" field.
func (m *ContactMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ContactMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ContactMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[contact.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ContactMutation) EmailCleared() bool {
	_, ok := m.clearedFields[contact.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ContactMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, contact.FieldEmail)
}

// SetWebsite sets the "website" field.
func (m *ContactMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *ContactMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldWebsite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *ContactMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[contact.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *ContactMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[contact.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *ContactMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, contact.FieldWebsite)
}

// SetFacebookURL sets the "facebook_url" field.
func (m *ContactMutation) SetFacebookURL(s string) {
	m.facebook_url = &s
}

// FacebookURL returns the value of the "facebook_url" field in the mutation.
func (m *ContactMutation) FacebookURL() (r string, exists bool) {
	v := m.facebook_url
	if v == nil {
		return
	}
	return *v, true
}

// OldFacebookURL returns the old "facebook_url" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldFacebookURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacebookURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacebookURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacebookURL: %w", err)
	}
	return oldValue.FacebookURL, nil
}

// ClearFacebookURL clears the value of the "facebook_url" field.
func (m *ContactMutation) ClearFacebookURL() {
	m.facebook_url = nil
	m.clearedFields[contact.FieldFacebookURL] = struct{}{}
}

// FacebookURLCleared returns if the "facebook_url" field was cleared in this mutation.
func (m *ContactMutation) FacebookURLCleared() bool {
	_, ok := m.clearedFields[contact.FieldFacebookURL]
	return ok
}

// ResetFacebookURL resets all changes to the "facebook_url" field.
func (m *ContactMutation) ResetFacebookURL() {
	m.facebook_url = nil
	delete(m.clearedFields, contact.FieldFacebookURL)
}

// SetEnrichedEmail sets the "enriched_email" field.
func (m *ContactMutation) SetEnrichedEmail(s string) {
	m.enriched_email = &s
}

// EnrichedEmail returns the value of the "enriched_email" field in the mutation.
func (m *ContactMutation) EnrichedEmail() (r string, exists bool) {
	v := m.enriched_email
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichedEmail returns the old "enriched_email" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEnrichedEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichedEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichedEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichedEmail: %w", err)
	}
	return oldValue.EnrichedEmail, nil
}

// ClearEnrichedEmail clears the value of the "enriched_email" field.
func (m *ContactMutation) ClearEnrichedEmail() {
	m.enriched_email = nil
	m.clearedFields[contact.FieldEnrichedEmail] = struct{}{}
}

// EnrichedEmailCleared returns if the "enriched_email" field was cleared in this mutation.
func (m *ContactMutation) EnrichedEmailCleared() bool {
	_, ok := m.clearedFields[contact.FieldEnrichedEmail]
	return ok
}

// ResetEnrichedEmail resets all changes to the "enriched_email" field.
func (m *ContactMutation) ResetEnrichedEmail() {
	m.enriched_email = nil
	delete(m.clearedFields, contact.FieldEnrichedEmail)
}

// SetEnrichedEmailConfidence sets the "enriched_email_confidence" field.
func (m *ContactMutation) SetEnrichedEmailConfidence(f float64) {
	m.enriched_email_confidence = &f
	m.addenriched_email_confidence = nil
}

// EnrichedEmailConfidence returns the value of the "enriched_email_confidence" field in the mutation.
func (m *ContactMutation) EnrichedEmailConfidence() (r float64, exists bool) {
	v := m.enriched_email_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichedEmailConfidence returns the old "enriched_email_confidence" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEnrichedEmailConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichedEmailConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichedEmailConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichedEmailConfidence: %w", err)
	}
	return oldValue.EnrichedEmailConfidence, nil
}

// AddEnrichedEmailConfidence adds f to the "enriched_email_confidence" field.
func (m *ContactMutation) AddEnrichedEmailConfidence(f float64) {
	if m.addenriched_email_confidence != nil {
		*m.addenriched_email_confidence += f
	} else {
		m.addenriched_email_confidence = &f
	}
}

// AddedEnrichedEmailConfidence returns the value that was added to the "enriched_email_confidence" field in this mutation.
func (m *ContactMutation) AddedEnrichedEmailConfidence() (r float64, exists bool) {
	v := m.addenriched_email_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearEnrichedEmailConfidence clears the value of the "enriched_email_confidence" field.
func (m *ContactMutation) ClearEnrichedEmailConfidence() {
	m.enriched_email_confidence = nil
	m.addenriched_email_confidence = nil
	m.clearedFields[contact.FieldEnrichedEmailConfidence] = struct{}{}
}

// EnrichedEmailConfidenceCleared returns if the "enriched_email_confidence" field was cleared in this mutation.
func (m *ContactMutation) EnrichedEmailConfidenceCleared() bool {
	_, ok := m.clearedFields[contact.FieldEnrichedEmailConfidence]
	return ok
}

// ResetEnrichedEmailConfidence resets all changes to the "enriched_email_confidence" field.
func (m *ContactMutation) ResetEnrichedEmailConfidence() {
	m.enriched_email_confidence = nil
	m.addenriched_email_confidence = nil
	delete(m.clearedFields, contact.FieldEnrichedEmailConfidence)
}

// SetEnrichedEmailSource sets the "enriched_email_source" field.
func (m *ContactMutation) SetEnrichedEmailSource(s string) {
	m.enriched_email_source = &s
}

// EnrichedEmailSource returns the value of the "enriched_email_source" field in the mutation.
func (m *ContactMutation) EnrichedEmailSource() (r string, exists bool) {
	v := m.enriched_email_source
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichedEmailSource returns the old "enriched_email_source" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEnrichedEmailSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichedEmailSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichedEmailSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichedEmailSource: %w", err)
	}
	return oldValue.EnrichedEmailSource, nil
}

// ClearEnrichedEmailSource clears the value of the "enriched_email_source" field.
func (m *ContactMutation) ClearEnrichedEmailSource() {
	m.enriched_email_source = nil
	m.clearedFields[contact.FieldEnrichedEmailSource] = struct{}{}
}

// EnrichedEmailSourceCleared returns if the "enriched_email_source" field was cleared in this mutation.
func (m *ContactMutation) EnrichedEmailSourceCleared() bool {
	_, ok := m.clearedFields[contact.FieldEnrichedEmailSource]
	return ok
}

// ResetEnrichedEmailSource resets all changes to the "enriched_email_source" field.
func (m *ContactMutation) ResetEnrichedEmailSource() {
	m.enriched_email_source = nil
	delete(m.clearedFields, contact.FieldEnrichedEmailSource)
}

// SetEmailValid sets the "email_valid" field.
func (m *ContactMutation) SetEmailValid(b bool) {
	m.email_valid = &b
}

// EmailValid returns the value of the "email_valid" field in the mutation.
func (m *ContactMutation) EmailValid() (r bool, exists bool) {
	v := m.email_valid
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailValid returns the old "email_valid" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEmailValid(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailValid: %w", err)
	}
	return oldValue.EmailValid, nil
}

// ClearEmailValid clears the value of the "email_valid" field.
func (m *ContactMutation) ClearEmailValid() {
	m.email_valid = nil
	m.clearedFields[contact.FieldEmailValid] = struct{}{}
}

// EmailValidCleared returns if the "email_valid" field was cleared in this mutation.
func (m *ContactMutation) EmailValidCleared() bool {
	_, ok := m.clearedFields[contact.FieldEmailValid]
	return ok
}

// ResetEmailValid resets all changes to the "email_valid" field.
func (m *ContactMutation) ResetEmailValid() {
	m.email_valid = nil
	delete(m.clearedFields, contact.FieldEmailValid)
}

// SetEmailValidationStatus sets the "email_validation_status" field.
func (m *ContactMutation) SetEmailValidationStatus(s string) {
	m.email_validation_status = &s
}

// EmailValidationStatus returns the value of the "email_validation_status" field in the mutation.
func (m *ContactMutation) EmailValidationStatus() (r string, exists bool) {
	v := m.email_validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailValidationStatus returns the old "email_validation_status" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEmailValidationStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailValidationStatus: %w", err)
	}
	return oldValue.EmailValidationStatus, nil
}

// ClearEmailValidationStatus clears the value of the "email_validation_status" field.
func (m *ContactMutation) ClearEmailValidationStatus() {
	m.email_validation_status = nil
	m.clearedFields[contact.FieldEmailValidationStatus] = struct{}{}
}

// EmailValidationStatusCleared returns if the "email_validation_status" field was cleared in this mutation.
func (m *ContactMutation) EmailValidationStatusCleared() bool {
	_, ok := m.clearedFields[contact.FieldEmailValidationStatus]
	return ok
}

// ResetEmailValidationStatus resets all changes to the "email_validation_status" field.
func (m *ContactMutation) ResetEmailValidationStatus() {
	m.email_validation_status = nil
	delete(m.clearedFields, contact.FieldEmailValidationStatus)
}

// SetEnrichedPhone sets the "enriched_phone" field.
func (m *ContactMutation) SetEnrichedPhone(s string) {
	m.enriched_phone = &s
}

// EnrichedPhone returns the value of the "enriched_phone" field in the mutation.
func (m *ContactMutation) EnrichedPhone() (r string, exists bool) {
	v := m.enriched_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichedPhone returns the old "enriched_phone" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEnrichedPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichedPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichedPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichedPhone: %w", err)
	}
	return oldValue.EnrichedPhone, nil
}

// ClearEnrichedPhone clears the value of the "enriched_phone" field.
func (m *ContactMutation) ClearEnrichedPhone() {
	m.enriched_phone = nil
	m.clearedFields[contact.FieldEnrichedPhone] = struct{}{}
}

// EnrichedPhoneCleared returns if the "enriched_phone" field was cleared in this mutation.
func (m *ContactMutation) EnrichedPhoneCleared() bool {
	_, ok := m.clearedFields[contact.FieldEnrichedPhone]
	return ok
}

// ResetEnrichedPhone resets all changes to the "enriched_phone" field.
func (m *ContactMutation) ResetEnrichedPhone() {
	m.enriched_phone = nil
	delete(m.clearedFields, contact.FieldEnrichedPhone)
}

// SetEnrichedPhoneConfidence sets the "enriched_phone_confidence" field.
func (m *ContactMutation) SetEnrichedPhoneConfidence(f float64) {
	m.enriched_phone_confidence = &f
	m.addenriched_phone_confidence = nil
}

// EnrichedPhoneConfidence returns the value of the "enriched_phone_confidence" field in the mutation.
func (m *ContactMutation) EnrichedPhoneConfidence() (r float64, exists bool) {
	v := m.enriched_phone_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichedPhoneConfidence returns the old "enriched_phone_confidence" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEnrichedPhoneConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichedPhoneConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichedPhoneConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichedPhoneConfidence: %w", err)
	}
	return oldValue.EnrichedPhoneConfidence, nil
}

// AddEnrichedPhoneConfidence adds f to the "enriched_phone_confidence" field.
func (m *ContactMutation) AddEnrichedPhoneConfidence(f float64) {
	if m.addenriched_phone_confidence != nil {
		*m.addenriched_phone_confidence += f
	} else {
		m.addenriched_phone_confidence = &f
	}
}

// AddedEnrichedPhoneConfidence returns the value that was added to the "enriched_phone_confidence" field in this mutation.
func (m *ContactMutation) AddedEnrichedPhoneConfidence() (r float64, exists bool) {
	v := m.addenriched_phone_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearEnrichedPhoneConfidence clears the value of the "enriched_phone_confidence" field.
func (m *ContactMutation) ClearEnrichedPhoneConfidence() {
	m.enriched_phone_confidence = nil
	m.addenriched_phone_confidence = nil
	m.clearedFields[contact.FieldEnrichedPhoneConfidence] = struct{}{}
}

// EnrichedPhoneConfidenceCleared returns if the "enriched_phone_confidence" field was cleared in this mutation.
func (m *ContactMutation) EnrichedPhoneConfidenceCleared() bool {
	_, ok := m.clearedFields[contact.FieldEnrichedPhoneConfidence]
	return ok
}

// ResetEnrichedPhoneConfidence resets all changes to the "enriched_phone_confidence" field.
func (m *ContactMutation) ResetEnrichedPhoneConfidence() {
	m.enriched_phone_confidence = nil
	m.addenriched_phone_confidence = nil
	delete(m.clearedFields, contact.FieldEnrichedPhoneConfidence)
}

// SetEnrichedPhoneSource sets the "enriched_phone_source" field.
func (m *ContactMutation) SetEnrichedPhoneSource(s string) {
	m.enriched_phone_source = &s
}

// EnrichedPhoneSource returns the value of the "enriched_phone_source" field in the mutation.
func (m *ContactMutation) EnrichedPhoneSource() (r string, exists bool) {
	v := m.enriched_phone_source
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichedPhoneSource returns the old "enriched_phone_source" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEnrichedPhoneSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichedPhoneSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichedPhoneSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichedPhoneSource: %w", err)
	}
	return oldValue.EnrichedPhoneSource, nil
}

// ClearEnrichedPhoneSource clears the value of the "enriched_phone_source" field.
func (m *ContactMutation) ClearEnrichedPhoneSource() {
	m.enriched_phone_source = nil
	m.clearedFields[contact.FieldEnrichedPhoneSource] = struct{}{}
}

// EnrichedPhoneSourceCleared returns if the "enriched_phone_source" field was cleared in this mutation.
func (m *ContactMutation) EnrichedPhoneSourceCleared() bool {
	_, ok := m.clearedFields[contact.FieldEnrichedPhoneSource]
	return ok
}

// ResetEnrichedPhoneSource resets all changes to the "enriched_phone_source" field.
func (m *ContactMutation) ResetEnrichedPhoneSource() {
	m.enriched_phone_source = nil
	delete(m.clearedFields, contact.FieldEnrichedPhoneSource)
}

// SetEnrichedPhoneFormatted sets the "enriched_phone_formatted" field.
func (m *ContactMutation) SetEnrichedPhoneFormatted(s string) {
	m.enriched_phone_formatted = &s
}

// EnrichedPhoneFormatted returns the value of the "enriched_phone_formatted" field in the mutation.
func (m *ContactMutation) EnrichedPhoneFormatted() (r string, exists bool) {
	v := m.enriched_phone_formatted
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichedPhoneFormatted returns the old "enriched_phone_formatted" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEnrichedPhoneFormatted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichedPhoneFormatted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichedPhoneFormatted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichedPhoneFormatted: %w", err)
	}
	return oldValue.EnrichedPhoneFormatted, nil
}

// ClearEnrichedPhoneFormatted clears the value of the "enriched_phone_formatted" field.
func (m *ContactMutation) ClearEnrichedPhoneFormatted() {
	m.enriched_phone_formatted = nil
	m.clearedFields[contact.FieldEnrichedPhoneFormatted] = struct{}{}
}

// EnrichedPhoneFormattedCleared returns if the "enriched_phone_formatted" field was cleared in this mutation.
func (m *ContactMutation) EnrichedPhoneFormattedCleared() bool {
	_, ok := m.clearedFields[contact.FieldEnrichedPhoneFormatted]
	return ok
}

// ResetEnrichedPhoneFormatted resets all changes to the "enriched_phone_formatted" field.
func (m *ContactMutation) ResetEnrichedPhoneFormatted() {
	m.enriched_phone_formatted = nil
	delete(m.clearedFields, contact.FieldEnrichedPhoneFormatted)
}

// SetWebsiteEmails sets the "website_emails" field.
func (m *ContactMutation) SetWebsiteEmails(s []string) {
	m.website_emails = &s
	m.appendwebsite_emails = nil
}

// WebsiteEmails returns the value of the "website_emails" field in the mutation.
func (m *ContactMutation) WebsiteEmails() (r []string, exists bool) {
	v := m.website_emails
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsiteEmails returns the old "website_emails" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldWebsiteEmails(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsiteEmails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsiteEmails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsiteEmails: %w", err)
	}
	return oldValue.WebsiteEmails, nil
}

// AppendWebsiteEmails adds s to the "website_emails" field.
func (m *ContactMutation) AppendWebsiteEmails(s []string) {
	m.appendwebsite_emails = append(m.appendwebsite_emails, s...)
}

// AppendedWebsiteEmails returns the list of values that were appended to the "website_emails" field in this mutation.
func (m *ContactMutation) AppendedWebsiteEmails() ([]string, bool) {
	if len(m.appendwebsite_emails) == 0 {
		return nil, false
	}
	return m.appendwebsite_emails, true
}

// ClearWebsiteEmails clears the value of the "website_emails" field.
func (m *ContactMutation) ClearWebsiteEmails() {
	m.website_emails = nil
	m.appendwebsite_emails = nil
	m.clearedFields[contact.FieldWebsiteEmails] = struct{}{}
}

// WebsiteEmailsCleared returns if the "website_emails" field was cleared in this mutation.
func (m *ContactMutation) WebsiteEmailsCleared() bool {
	_, ok := m.clearedFields[contact.FieldWebsiteEmails]
	return ok
}

// ResetWebsiteEmails resets all changes to the "website_emails" field.
func (m *ContactMutation) ResetWebsiteEmails() {
	m.website_emails = nil
	m.appendwebsite_emails = nil
	delete(m.clearedFields, contact.FieldWebsiteEmails)
}

// SetWebsitePhones sets the "website_phones" field.
func (m *ContactMutation) SetWebsitePhones(s []string) {
	m.website_phones = &s
	m.appendwebsite_phones = nil
}

// WebsitePhones returns the value of the "website_phones" field in the mutation.
func (m *ContactMutation) WebsitePhones() (r []string, exists bool) {
	v := m.website_phones
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsitePhones returns the old "website_phones" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldWebsitePhones(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsitePhones is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsitePhones requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsitePhones: %w", err)
	}
	return oldValue.WebsitePhones, nil
}

// AppendWebsitePhones adds s to the "website_phones" field.
func (m *ContactMutation) AppendWebsitePhones(s []string) {
	m.appendwebsite_phones = append(m.appendwebsite_phones, s...)
}

// AppendedWebsitePhones returns the list of values that were appended to the "website_phones" field in this mutation.
func (m *ContactMutation) AppendedWebsitePhones() ([]string, bool) {
	if len(m.appendwebsite_phones) == 0 {
		return nil, false
	}
	return m.appendwebsite_phones, true
}

// ClearWebsitePhones clears the value of the "website_phones" field.
func (m *ContactMutation) ClearWebsitePhones() {
	m.website_phones = nil
	m.appendwebsite_phones = nil
	m.clearedFields[contact.FieldWebsitePhones] = struct{}{}
}

// WebsitePhonesCleared returns if the "website_phones" field was cleared in this mutation.
func (m *ContactMutation) WebsitePhonesCleared() bool {
	_, ok := m.clearedFields[contact.FieldWebsitePhones]
	return ok
}

// ResetWebsitePhones resets all changes to the "website_phones" field.
func (m *ContactMutation) ResetWebsitePhones() {
	m.website_phones = nil
	m.appendwebsite_phones = nil
	delete(m.clearedFields, contact.FieldWebsitePhones)
}

// SetSocialLinks sets the "social_links" field.
func (m *ContactMutation) SetSocialLinks(value map[string]string) {
	m.social_links = &value
}

// SocialLinks returns the value of the "social_links" field in the mutation.
func (m *ContactMutation) SocialLinks() (r map[string]string, exists bool) {
	v := m.social_links
	if v == nil {
		return
	}
	return *v, true
}

// OldSocialLinks returns the old "social_links" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldSocialLinks(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSocialLinks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSocialLinks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSocialLinks: %w", err)
	}
	return oldValue.SocialLinks, nil
}

// ClearSocialLinks clears the value of the "social_links" field.
func (m *ContactMutation) ClearSocialLinks() {
	m.social_links = nil
	m.clearedFields[contact.FieldSocialLinks] = struct{}{}
}

// SocialLinksCleared returns if the "social_links" field was cleared in this mutation.
func (m *ContactMutation) SocialLinksCleared() bool {
	_, ok := m.clearedFields[contact.FieldSocialLinks]
	return ok
}

// ResetSocialLinks resets all changes to the "social_links" field.
func (m *ContactMutation) ResetSocialLinks() {
	m.social_links = nil
	delete(m.clearedFields, contact.FieldSocialLinks)
}

// SetSocialFollowers sets the "social_followers" field.
func (m *ContactMutation) SetSocialFollowers(i int) {
	m.social_followers = &i
	m.addsocial_followers = nil
}

// SocialFollowers returns the value of the "social_followers" field in the mutation.
func (m *ContactMutation) SocialFollowers() (r int, exists bool) {
	v := m.social_followers
	if v == nil {
		return
	}
	return *v, true
}

// OldSocialFollowers returns the old "social_followers" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldSocialFollowers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSocialFollowers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSocialFollowers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSocialFollowers: %w", err)
	}
	return oldValue.SocialFollowers, nil
}

// AddSocialFollowers adds i to the "social_followers" field.
func (m *ContactMutation) AddSocialFollowers(i int) {
	if m.addsocial_followers != nil {
		*m.addsocial_followers += i
	} else {
		m.addsocial_followers = &i
	}
}

// AddedSocialFollowers returns the value that was added to the "social_followers" field in this mutation.
func (m *ContactMutation) AddedSocialFollowers() (r int, exists bool) {
	v := m.addsocial_followers
	if v == nil {
		return
	}
	return *v, true
}

// ClearSocialFollowers clears the value of the "social_followers" field.
func (m *ContactMutation) ClearSocialFollowers() {
	m.social_followers = nil
	m.addsocial_followers = nil
	m.clearedFields[contact.FieldSocialFollowers] = struct{}{}
}

// SocialFollowersCleared returns if the "social_followers" field was cleared in this mutation.
func (m *ContactMutation) SocialFollowersCleared() bool {
	_, ok := m.clearedFields[contact.FieldSocialFollowers]
	return ok
}

// ResetSocialFollowers resets all changes to the "social_followers" field.
func (m *ContactMutation) ResetSocialFollowers() {
	m.social_followers = nil
	m.addsocial_followers = nil
	delete(m.clearedFields, contact.FieldSocialFollowers)
}

// SetSocialAbout sets the "social_about" field.
func (m *ContactMutation) SetSocialAbout(s string) {
	m.social_about = &s
}

// SocialAbout returns the value of the "social_about" field in the mutation.
func (m *ContactMutation) SocialAbout() (r string, exists bool) {
	v := m.social_about
	if v == nil {
		return
	}
	return *v, true
}

// OldSocialAbout returns the old "social_about" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldSocialAbout(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSocialAbout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSocialAbout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSocialAbout: %w", err)
	}
	return oldValue.SocialAbout, nil
}

// ClearSocialAbout clears the value of the "social_about" field.
func (m *ContactMutation) ClearSocialAbout() {
	m.social_about = nil
	m.clearedFields[contact.FieldSocialAbout] = struct{}{}
}

// SocialAboutCleared returns if the "social_about" field was cleared in this mutation.
func (m *ContactMutation) SocialAboutCleared() bool {
	_, ok := m.clearedFields[contact.FieldSocialAbout]
	return ok
}

// ResetSocialAbout resets all changes to the "social_about" field.
func (m *ContactMutation) ResetSocialAbout() {
	m.social_about = nil
	delete(m.clearedFields, contact.FieldSocialAbout)
}

// SetCompletenessScore sets the "completeness_score" field.
func (m *ContactMutation) SetCompletenessScore(f float64) {
	m.completeness_score = &f
	m.addcompleteness_score = nil
}

// CompletenessScore returns the value of the "completeness_score" field in the mutation.
func (m *ContactMutation) CompletenessScore() (r float64, exists bool) {
	v := m.completeness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletenessScore returns the old "completeness_score" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCompletenessScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletenessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletenessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletenessScore: %w", err)
	}
	return oldValue.CompletenessScore, nil
}

// AddCompletenessScore adds f to the "completeness_score" field.
func (m *ContactMutation) AddCompletenessScore(f float64) {
	if m.addcompleteness_score != nil {
		*m.addcompleteness_score += f
	} else {
		m.addcompleteness_score = &f
	}
}

// AddedCompletenessScore returns the value that was added to the "completeness_score" field in this mutation.
func (m *ContactMutation) AddedCompletenessScore() (r float64, exists bool) {
	v := m.addcompleteness_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletenessScore clears the value of the "completeness_score" field.
func (m *ContactMutation) ClearCompletenessScore() {
	m.completeness_score = nil
	m.addcompleteness_score = nil
	m.clearedFields[contact.FieldCompletenessScore] = struct{}{}
}

// CompletenessScoreCleared returns if the "completeness_score" field was cleared in this mutation.
func (m *ContactMutation) CompletenessScoreCleared() bool {
	_, ok := m.clearedFields[contact.FieldCompletenessScore]
	return ok
}

// ResetCompletenessScore resets all changes to the "completeness_score" field.
func (m *ContactMutation) ResetCompletenessScore() {
	m.completeness_score = nil
	m.addcompleteness_score = nil
	delete(m.clearedFields, contact.FieldCompletenessScore)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *ContactMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *ContactMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *ContactMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *ContactMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (m *ContactMutation) ClearConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	m.clearedFields[contact.FieldConfidenceScore] = struct{}{}
}

// ConfidenceScoreCleared returns if the "confidence_score" field was cleared in this mutation.
func (m *ContactMutation) ConfidenceScoreCleared() bool {
	_, ok := m.clearedFields[contact.FieldConfidenceScore]
	return ok
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *ContactMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	delete(m.clearedFields, contact.FieldConfidenceScore)
}

// SetStatus sets the "status" field.
func (m *ContactMutation) SetStatus(c contact.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ContactMutation) Status() (r contact.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldStatus(ctx context.Context) (v contact.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ContactMutation) ResetStatus() {
	m.status = nil
}

// SetErrorDetail sets the "error_detail" field.
func (m *ContactMutation) SetErrorDetail(s string) {
	m.error_detail = &s
}

// ErrorDetail returns the value of the "error_detail" field in the mutation.
func (m *ContactMutation) ErrorDetail() (r string, exists bool) {
	v := m.error_detail
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorDetail returns the old "error_detail" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldErrorDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorDetail: %w", err)
	}
	return oldValue.ErrorDetail, nil
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (m *ContactMutation) ClearErrorDetail() {
	m.error_detail = nil
	m.clearedFields[contact.FieldErrorDetail] = struct{}{}
}

// ErrorDetailCleared returns if the "error_detail" field was cleared in this mutation.
func (m *ContactMutation) ErrorDetailCleared() bool {
	_, ok := m.clearedFields[contact.FieldErrorDetail]
	return ok
}

// ResetErrorDetail resets all changes to the "error_detail" field.
func (m *ContactMutation) ResetErrorDetail() {
	m.error_detail = nil
	delete(m.clearedFields, contact.FieldErrorDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetBatchID sets the "batch" edge to the EnrichmentBatch entity by id.
func (m *ContactMutation) SetBatchID(id int) {
	m.batch = &id
}

// ClearBatch clears the "batch" edge to the EnrichmentBatch entity.
func (m *ContactMutation) ClearBatch() {
	m.clearedbatch = true
}

// BatchCleared reports if the "batch" edge to the EnrichmentBatch entity was cleared.
func (m *ContactMutation) BatchCleared() bool {
	return m.clearedbatch
}

// BatchID returns the "batch" edge ID in the mutation.
func (m *ContactMutation) BatchID() (id int, exists bool) {
	if m.batch != nil {
		return *m.batch, true
	}
	return
}

// BatchIDs returns the "batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BatchID instead. It exists only for internal usage by the builders.
func (m *ContactMutation) BatchIDs() (ids []int) {
	if id := m.batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBatch resets all changes to the "batch" edge.
func (m *ContactMutation) ResetBatch() {
	m.batch = nil
	m.clearedbatch = false
}

// Where appends a list predicates to the ContactMutation builder.
func (m *ContactMutation) Where(ps ...predicate.Contact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contact).
func (m *ContactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContactMutation) Fields() []string {
	fields := make([]string, 0, 29)
	if m.first_name != nil {
		fields = append(fields, contact.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, contact.FieldLastName)
	}
	if m.company != nil {
		fields = append(fields, contact.FieldCompany)
	}
	if m.city != nil {
		fields = append(fields, contact.FieldCity)
	}
	if m.state != nil {
		fields = append(fields, contact.FieldState)
	}
	if m.phone != nil {
		fields = append(fields, contact.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, contact.FieldEmail)
	}
	if m.website != nil {
		fields = append(fields, contact.FieldWebsite)
	}
	if m.facebook_url != nil {
		fields = append(fields, contact.FieldFacebookURL)
	}
	if m.enriched_email != nil {
		fields = append(fields, contact.FieldEnrichedEmail)
	}
	if m.enriched_email_confidence != nil {
		fields = append(fields, contact.FieldEnrichedEmailConfidence)
	}
	if m.enriched_email_source != nil {
		fields = append(fields, contact.FieldEnrichedEmailSource)
	}
	if m.email_valid != nil {
		fields = append(fields, contact.FieldEmailValid)
	}
	if m.email_validation_status != nil {
		fields = append(fields, contact.FieldEmailValidationStatus)
	}
	if m.enriched_phone != nil {
		fields = append(fields, contact.FieldEnrichedPhone)
	}
	if m.enriched_phone_confidence != nil {
		fields = append(fields, contact.FieldEnrichedPhoneConfidence)
	}
	if m.enriched_phone_source != nil {
		fields = append(fields, contact.FieldEnrichedPhoneSource)
	}
	if m.enriched_phone_formatted != nil {
		fields = append(fields, contact.FieldEnrichedPhoneFormatted)
	}
	if m.website_emails != nil {
		fields = append(fields, contact.FieldWebsiteEmails)
	}
	if m.website_phones != nil {
		fields = append(fields, contact.FieldWebsitePhones)
	}
	if m.social_links != nil {
		fields = append(fields, contact.FieldSocialLinks)
	}
	if m.social_followers != nil {
		fields = append(fields, contact.FieldSocialFollowers)
	}
	if m.social_about != nil {
		fields = append(fields, contact.FieldSocialAbout)
	}
	if m.completeness_score != nil {
		fields = append(fields, contact.FieldCompletenessScore)
	}
	if m.confidence_score != nil {
		fields = append(fields, contact.FieldConfidenceScore)
	}
	if m.status != nil {
		fields = append(fields, contact.FieldStatus)
	}
	if m.error_detail != nil {
		fields = append(fields, contact.FieldErrorDetail)
	}
	if m.created_at != nil {
		fields = append(fields, contact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contact.FieldFirstName:
		return m.FirstName()
	case contact.FieldLastName:
		return m.LastName()
	case contact.FieldCompany:
		return m.Company()
	case contact.FieldCity:
		return m.City()
	case contact.FieldState:
		return m.State()
	case contact.FieldPhone:
		return m.Phone()
	case contact.FieldEmail:
		return m.Email()
	case contact.FieldWebsite:
		return m.Website()
	case contact.FieldFacebookURL:
		return m.FacebookURL()
	case contact.FieldEnrichedEmail:
		return m.EnrichedEmail()
	case contact.FieldEnrichedEmailConfidence:
		return m.EnrichedEmailConfidence()
	case contact.FieldEnrichedEmailSource:
		return m.EnrichedEmailSource()
	case contact.FieldEmailValid:
		return m.EmailValid()
	case contact.FieldEmailValidationStatus:
		return m.EmailValidationStatus()
	case contact.FieldEnrichedPhone:
		return m.EnrichedPhone()
	case contact.FieldEnrichedPhoneConfidence:
		return m.EnrichedPhoneConfidence()
	case contact.FieldEnrichedPhoneSource:
		return m.EnrichedPhoneSource()
	case contact.FieldEnrichedPhoneFormatted:
		return m.EnrichedPhoneFormatted()
	case contact.FieldWebsiteEmails:
		return m.WebsiteEmails()
	case contact.FieldWebsitePhones:
		return m.WebsitePhones()
	case contact.FieldSocialLinks:
		return m.SocialLinks()
	case contact.FieldSocialFollowers:
		return m.SocialFollowers()
	case contact.FieldSocialAbout:
		return m.SocialAbout()
	case contact.FieldCompletenessScore:
		return m.CompletenessScore()
	case contact.FieldConfidenceScore:
		return m.ConfidenceScore()
	case contact.FieldStatus:
		return m.Status()
	case contact.FieldErrorDetail:
		return m.ErrorDetail()
	case contact.FieldCreatedAt:
		return m.CreatedAt()
	case contact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contact.FieldFirstName:
		return m.OldFirstName(ctx)
	case contact.FieldLastName:
		return m.OldLastName(ctx)
	case contact.FieldCompany:
		return m.OldCompany(ctx)
	case contact.FieldCity:
		return m.OldCity(ctx)
	case contact.FieldState:
		return m.OldState(ctx)
	case contact.FieldPhone:
		return m.OldPhone(ctx)
	case contact.FieldEmail:
		return m.OldEmail(ctx)
	case contact.FieldWebsite:
		return m.OldWebsite(ctx)
	case contact.FieldFacebookURL:
		return m.OldFacebookURL(ctx)
	case contact.FieldEnrichedEmail:
		return m.OldEnrichedEmail(ctx)
	case contact.FieldEnrichedEmailConfidence:
		return m.OldEnrichedEmailConfidence(ctx)
	case contact.FieldEnrichedEmailSource:
		return m.OldEnrichedEmailSource(ctx)
	case contact.FieldEmailValid:
		return m.OldEmailValid(ctx)
	case contact.FieldEmailValidationStatus:
		return m.OldEmailValidationStatus(ctx)
	case contact.FieldEnrichedPhone:
		return m.OldEnrichedPhone(ctx)
	case contact.FieldEnrichedPhoneConfidence:
		return m.OldEnrichedPhoneConfidence(ctx)
	case contact.FieldEnrichedPhoneSource:
		return m.OldEnrichedPhoneSource(ctx)
	case contact.FieldEnrichedPhoneFormatted:
		return m.OldEnrichedPhoneFormatted(ctx)
	case contact.FieldWebsiteEmails:
		return m.OldWebsiteEmails(ctx)
	case contact.FieldWebsitePhones:
		return m.OldWebsitePhones(ctx)
	case contact.FieldSocialLinks:
		return m.OldSocialLinks(ctx)
	case contact.FieldSocialFollowers:
		return m.OldSocialFollowers(ctx)
	case contact.FieldSocialAbout:
		return m.OldSocialAbout(ctx)
	case contact.FieldCompletenessScore:
		return m.OldCompletenessScore(ctx)
	case contact.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case contact.FieldStatus:
		return m.OldStatus(ctx)
	case contact.FieldErrorDetail:
		return m.OldErrorDetail(ctx)
	case contact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contact.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case contact.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case contact.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case contact.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case contact.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case contact.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case contact.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case contact.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case contact.FieldFacebookURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacebookURL(v)
		return nil
	case contact.FieldEnrichedEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichedEmail(v)
		return nil
	case contact.FieldEnrichedEmailConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichedEmailConfidence(v)
		return nil
	case contact.FieldEnrichedEmailSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichedEmailSource(v)
		return nil
	case contact.FieldEmailValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailValid(v)
		return nil
	case contact.FieldEmailValidationStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailValidationStatus(v)
		return nil
	case contact.FieldEnrichedPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichedPhone(v)
		return nil
	case contact.FieldEnrichedPhoneConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichedPhoneConfidence(v)
		return nil
	case contact.FieldEnrichedPhoneSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichedPhoneSource(v)
		return nil
	case contact.FieldEnrichedPhoneFormatted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichedPhoneFormatted(v)
		return nil
	case contact.FieldWebsiteEmails:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsiteEmails(v)
		return nil
	case contact.FieldWebsitePhones:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsitePhones(v)
		return nil
	case contact.FieldSocialLinks:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSocialLinks(v)
		return nil
	case contact.FieldSocialFollowers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSocialFollowers(v)
		return nil
	case contact.FieldSocialAbout:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSocialAbout(v)
		return nil
	case contact.FieldCompletenessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletenessScore(v)
		return nil
	case contact.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case contact.FieldStatus:
		v, ok := value.(contact.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case contact.FieldErrorDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorDetail(v)
		return nil
	case contact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContactMutation) AddedFields() []string {
	var fields []string
	if m.addenriched_email_confidence != nil {
		fields = append(fields, contact.FieldEnrichedEmailConfidence)
	}
	if m.addenriched_phone_confidence != nil {
		fields = append(fields, contact.FieldEnrichedPhoneConfidence)
	}
	if m.addsocial_followers != nil {
		fields = append(fields, contact.FieldSocialFollowers)
	}
	if m.addcompleteness_score != nil {
		fields = append(fields, contact.FieldCompletenessScore)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, contact.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contact.FieldEnrichedEmailConfidence:
		return m.AddedEnrichedEmailConfidence()
	case contact.FieldEnrichedPhoneConfidence:
		return m.AddedEnrichedPhoneConfidence()
	case contact.FieldSocialFollowers:
		return m.AddedSocialFollowers()
	case contact.FieldCompletenessScore:
		return m.AddedCompletenessScore()
	case contact.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contact.FieldEnrichedEmailConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnrichedEmailConfidence(v)
		return nil
	case contact.FieldEnrichedPhoneConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnrichedPhoneConfidence(v)
		return nil
	case contact.FieldSocialFollowers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSocialFollowers(v)
		return nil
	case contact.FieldCompletenessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletenessScore(v)
		return nil
	case contact.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Contact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contact.FieldFirstName) {
		fields = append(fields, contact.FieldFirstName)
	}
	if m.FieldCleared(contact.FieldLastName) {
		fields = append(fields, contact.FieldLastName)
	}
	if m.FieldCleared(contact.FieldCompany) {
		fields = append(fields, contact.FieldCompany)
	}
	if m.FieldCleared(contact.FieldCity) {
		fields = append(fields, contact.FieldCity)
	}
	if m.FieldCleared(contact.FieldState) {
		fields = append(fields, contact.FieldState)
	}
	if m.FieldCleared(contact.FieldPhone) {
		fields = append(fields, contact.FieldPhone)
	}
	if m.FieldCleared(contact.FieldEmail) {
		fields = append(fields, contact.FieldEmail)
	}
	if m.FieldCleared(contact.FieldWebsite) {
		fields = append(fields, contact.FieldWebsite)
	}
	if m.FieldCleared(contact.FieldFacebookURL) {
		fields = append(fields, contact.FieldFacebookURL)
	}
	if m.FieldCleared(contact.FieldEnrichedEmail) {
		fields = append(fields, contact.FieldEnrichedEmail)
	}
	if m.FieldCleared(contact.FieldEnrichedEmailConfidence) {
		fields = append(fields, contact.FieldEnrichedEmailConfidence)
	}
	if m.FieldCleared(contact.FieldEnrichedEmailSource) {
		fields = append(fields, contact.FieldEnrichedEmailSource)
	}
	if m.FieldCleared(contact.FieldEmailValid) {
		fields = append(fields, contact.FieldEmailValid)
	}
	if m.FieldCleared(contact.FieldEmailValidationStatus) {
		fields = append(fields, contact.FieldEmailValidationStatus)
	}
	if m.FieldCleared(contact.FieldEnrichedPhone) {
		fields = append(fields, contact.FieldEnrichedPhone)
	}
	if m.FieldCleared(contact.FieldEnrichedPhoneConfidence) {
		fields = append(fields, contact.FieldEnrichedPhoneConfidence)
	}
	if m.FieldCleared(contact.FieldEnrichedPhoneSource) {
		fields = append(fields, contact.FieldEnrichedPhoneSource)
	}
	if m.FieldCleared(contact.FieldEnrichedPhoneFormatted) {
		fields = append(fields, contact.FieldEnrichedPhoneFormatted)
	}
	if m.FieldCleared(contact.FieldWebsiteEmails) {
		fields = append(fields, contact.FieldWebsiteEmails)
	}
	if m.FieldCleared(contact.FieldWebsitePhones) {
		fields = append(fields, contact.FieldWebsitePhones)
	}
	if m.FieldCleared(contact.FieldSocialLinks) {
		fields = append(fields, contact.FieldSocialLinks)
	}
	if m.FieldCleared(contact.FieldSocialFollowers) {
		fields = append(fields, contact.FieldSocialFollowers)
	}
	if m.FieldCleared(contact.FieldSocialAbout) {
		fields = append(fields, contact.FieldSocialAbout)
	}
	if m.FieldCleared(contact.FieldCompletenessScore) {
		fields = append(fields, contact.FieldCompletenessScore)
	}
	if m.FieldCleared(contact.FieldConfidenceScore) {
		fields = append(fields, contact.FieldConfidenceScore)
	}
	if m.FieldCleared(contact.FieldErrorDetail) {
		fields = append(fields, contact.FieldErrorDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContactMutation) ClearField(name string) error {
	switch name {
	case contact.FieldFirstName:
		m.ClearFirstName()
		return nil
	case contact.FieldLastName:
		m.ClearLastName()
		return nil
	case contact.FieldCompany:
		m.ClearCompany()
		return nil
	case contact.FieldCity:
		m.ClearCity()
		return nil
	case contact.FieldState:
		m.ClearState()
		return nil
	case contact.FieldPhone:
		m.ClearPhone()
		return nil
	case contact.FieldEmail:
		m.ClearEmail()
		return nil
	case contact.FieldWebsite:
		m.ClearWebsite()
		return nil
	case contact.FieldFacebookURL:
		m.ClearFacebookURL()
		return nil
	case contact.FieldEnrichedEmail:
		m.ClearEnrichedEmail()
		return nil
	case contact.FieldEnrichedEmailConfidence:
		m.ClearEnrichedEmailConfidence()
		return nil
	case contact.FieldEnrichedEmailSource:
		m.ClearEnrichedEmailSource()
		return nil
	case contact.FieldEmailValid:
		m.ClearEmailValid()
		return nil
	case contact.FieldEmailValidationStatus:
		m.ClearEmailValidationStatus()
		return nil
	case contact.FieldEnrichedPhone:
		m.ClearEnrichedPhone()
		return nil
	case contact.FieldEnrichedPhoneConfidence:
		m.ClearEnrichedPhoneConfidence()
		return nil
	case contact.FieldEnrichedPhoneSource:
		m.ClearEnrichedPhoneSource()
		return nil
	case contact.FieldEnrichedPhoneFormatted:
		m.ClearEnrichedPhoneFormatted()
		return nil
	case contact.FieldWebsiteEmails:
		m.ClearWebsiteEmails()
		return nil
	case contact.FieldWebsitePhones:
		m.ClearWebsitePhones()
		return nil
	case contact.FieldSocialLinks:
		m.ClearSocialLinks()
		return nil
	case contact.FieldSocialFollowers:
		m.ClearSocialFollowers()
		return nil
	case contact.FieldSocialAbout:
		m.ClearSocialAbout()
		return nil
	case contact.FieldCompletenessScore:
		m.ClearCompletenessScore()
		return nil
	case contact.FieldConfidenceScore:
		m.ClearConfidenceScore()
		return nil
	case contact.FieldErrorDetail:
		m.ClearErrorDetail()
		return nil
	}
	return fmt.Errorf("unknown Contact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContactMutation) ResetField(name string) error {
	switch name {
	case contact.FieldFirstName:
		m.ResetFirstName()
		return nil
	case contact.FieldLastName:
		m.ResetLastName()
		return nil
	case contact.FieldCompany:
		m.ResetCompany()
		return nil
	case contact.FieldCity:
		m.ResetCity()
		return nil
	case contact.FieldState:
		m.ResetState()
		return nil
	case contact.FieldPhone:
		m.ResetPhone()
		return nil
	case contact.FieldEmail:
		m.ResetEmail()
		return nil
	case contact.FieldWebsite:
		m.ResetWebsite()
		return nil
	case contact.FieldFacebookURL:
		m.ResetFacebookURL()
		return nil
	case contact.FieldEnrichedEmail:
		m.ResetEnrichedEmail()
		return nil
	case contact.FieldEnrichedEmailConfidence:
		m.ResetEnrichedEmailConfidence()
		return nil
	case contact.FieldEnrichedEmailSource:
		m.ResetEnrichedEmailSource()
		return nil
	case contact.FieldEmailValid:
		m.ResetEmailValid()
		return nil
	case contact.FieldEmailValidationStatus:
		m.ResetEmailValidationStatus()
		return nil
	case contact.FieldEnrichedPhone:
		m.ResetEnrichedPhone()
		return nil
	case contact.FieldEnrichedPhoneConfidence:
		m.ResetEnrichedPhoneConfidence()
		return nil
	case contact.FieldEnrichedPhoneSource:
		m.ResetEnrichedPhoneSource()
		return nil
	case contact.FieldEnrichedPhoneFormatted:
		m.ResetEnrichedPhoneFormatted()
		return nil
	case contact.FieldWebsiteEmails:
		m.ResetWebsiteEmails()
		return nil
	case contact.FieldWebsitePhones:
		m.ResetWebsitePhones()
		return nil
	case contact.FieldSocialLinks:
		m.ResetSocialLinks()
		return nil
	case contact.FieldSocialFollowers:
		m.ResetSocialFollowers()
		return nil
	case contact.FieldSocialAbout:
		m.ResetSocialAbout()
		return nil
	case contact.FieldCompletenessScore:
		m.ResetCompletenessScore()
		return nil
	case contact.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case contact.FieldStatus:
		m.ResetStatus()
		return nil
	case contact.FieldErrorDetail:
		m.ResetErrorDetail()
		return nil
	case contact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.batch != nil {
		edges = append(edges, contact.EdgeBatch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contact.EdgeBatch:
		if id := m.batch; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbatch {
		edges = append(edges, contact.EdgeBatch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContactMutation) EdgeCleared(name string) bool {
	switch name {
	case contact.EdgeBatch:
		return m.clearedbatch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContactMutation) ClearEdge(name string) error {
	switch name {
	case contact.EdgeBatch:
		m.ClearBatch()
		return nil
	}
	return fmt.Errorf("unknown Contact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContactMutation) ResetEdge(name string) error {
	switch name {
	case contact.EdgeBatch:
		m.ResetBatch()
		return nil
	}
	return fmt.Errorf("unknown Contact edge %s", name)
}

// EnrichmentBatchMutation represents an operation that mutates the EnrichmentBatch nodes in the graph.
type EnrichmentBatchMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	name               *string
	owner_email        *string
	total_count        *int
	addtotal_count     *int
	processed_count    *int
	addprocessed_count *int
	succeeded_count    *int
	addsucceeded_count *int
	failed_count       *int
	addfailed_count    *int
	status             *enrichmentbatch.Status
	error_detail       *string
	started_at         *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	contacts           map[int]struct{}
	removedcontacts    map[int]struct{}
	clearedcontacts    bool
	campaign           *int
	clearedcampaign    bool
	done               bool
	oldValue           func(context.Context) (*EnrichmentBatch, error)
	predicates         []predicate.EnrichmentBatch
}

var _ ent.Mutation = (*EnrichmentBatchMutation)(nil)

// enrichmentbatchOption allows management of the mutation configuration using functional options.
type enrichmentbatchOption func(*EnrichmentBatchMutation)

// newEnrichmentBatchMutation creates new mutation for the EnrichmentBatch entity.
func newEnrichmentBatchMutation(c config, op Op, opts ...enrichmentbatchOption) *EnrichmentBatchMutation {
	m := &EnrichmentBatchMutation{
		config:        c,
		op:            op,
		typ:           TypeEnrichmentBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnrichmentBatchID sets the ID field of the mutation.
func withEnrichmentBatchID(id int) enrichmentbatchOption {
	return func(m *EnrichmentBatchMutation) {
		var (
			err   error
			once  sync.Once
			value *EnrichmentBatch
		)
		m.oldValue = func(ctx context.Context) (*EnrichmentBatch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EnrichmentBatch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnrichmentBatch sets the old EnrichmentBatch of the mutation.
func withEnrichmentBatch(node *EnrichmentBatch) enrichmentbatchOption {
	return func(m *EnrichmentBatchMutation) {
		m.oldValue = func(context.Context) (*EnrichmentBatch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnrichmentBatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnrichmentBatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnrichmentBatchMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnrichmentBatchMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EnrichmentBatch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *EnrichmentBatchMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EnrichmentBatchMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the EnrichmentBatch entity.
// If the EnrichmentBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentBatchMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EnrichmentBatchMutation) ResetName() {
	m.name = nil
}

// SetOwnerEmail sets the "owner_email" field.
func (m *EnrichmentBatchMutation) SetOwnerEmail(s string) {
	m.owner_email = &s
}

// OwnerEmail returns the value of the "owner_email" field in the mutation.
func (m *EnrichmentBatchMutation) OwnerEmail() (r string, exists bool) {
	v := m.owner_email
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerEmail returns the old "owner_email" field's value of the EnrichmentBatch entity.
// If the EnrichmentBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentBatchMutation) OldOwnerEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerEmail: %w", err)
	}
	return oldValue.OwnerEmail, nil
}

// ClearOwnerEmail clears the value of the "owner_email" field.
func (m *EnrichmentBatchMutation) ClearOwnerEmail() {
	m.owner_email = nil
	m.clearedFields[enrichmentbatch.FieldOwnerEmail] = struct{}{}
}

// OwnerEmailCleared returns if the "owner_email" field was cleared in this mutation.
func (m *EnrichmentBatchMutation) OwnerEmailCleared() bool {
	_, ok := m.clearedFields[enrichmentbatch.FieldOwnerEmail]
	return ok
}

// ResetOwnerEmail resets all changes to the "owner_email" field.
func (m *EnrichmentBatchMutation) ResetOwnerEmail() {
	m.owner_email = nil
	delete(m.clearedFields, enrichmentbatch.FieldOwnerEmail)
}

// SetTotalCount sets the "total_count" field.
func (m *EnrichmentBatchMutation) SetTotalCount(i int) {
	m.total_count = &i
	m.addtotal_count = nil
}

// TotalCount returns the value of the "total_count" field in the mutation.
func (m *EnrichmentBatchMutation) TotalCount() (r int, exists bool) {
	v := m.total_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCount returns the old "total_count" field's value of the EnrichmentBatch entity.
// If the EnrichmentBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentBatchMutation) OldTotalCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCount: %w", err)
	}
	return oldValue.TotalCount, nil
}

// AddTotalCount adds i to the "total_count" field.
func (m *EnrichmentBatchMutation) AddTotalCount(i int) {
	if m.addtotal_count != nil {
		*m.addtotal_count += i
	} else {
		m.addtotal_count = &i
	}
}

// AddedTotalCount returns the value that was added to the "total_count" field in this mutation.
func (m *EnrichmentBatchMutation) AddedTotalCount() (r int, exists bool) {
	v := m.addtotal_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCount resets all changes to the "total_count" field.
func (m *EnrichmentBatchMutation) ResetTotalCount() {
	m.total_count = nil
	m.addtotal_count = nil
}

// SetProcessedCount sets the "processed_count" field.
func (m *EnrichmentBatchMutation) SetProcessedCount(i int) {
	m.processed_count = &i
	m.addprocessed_count = nil
}

// ProcessedCount returns the value of the "processed_count" field in the mutation.
func (m *EnrichmentBatchMutation) ProcessedCount() (r int, exists bool) {
	v := m.processed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedCount returns the old "processed_count" field's value of the EnrichmentBatch entity.
// If the EnrichmentBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentBatchMutation) OldProcessedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedCount: %w", err)
	}
	return oldValue.ProcessedCount, nil
}

// AddProcessedCount adds i to the "processed_count" field.
func (m *EnrichmentBatchMutation) AddProcessedCount(i int) {
	if m.addprocessed_count != nil {
		*m.addprocessed_count += i
	} else {
		m.addprocessed_count = &i
	}
}

// AddedProcessedCount returns the value that was added to the "processed_count" field in this mutation.
func (m *EnrichmentBatchMutation) AddedProcessedCount() (r int, exists bool) {
	v := m.addprocessed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedCount resets all changes to the "processed_count" field.
func (m *EnrichmentBatchMutation) ResetProcessedCount() {
	m.processed_count = nil
	m.addprocessed_count = nil
}

// SetSucceededCount sets the "succeeded_count" field.
func (m *EnrichmentBatchMutation) SetSucceededCount(i int) {
	m.succeeded_count = &i
	m.addsucceeded_count = nil
}

// SucceededCount returns the value of the "succeeded_count" field in the mutation.
func (m *EnrichmentBatchMutation) SucceededCount() (r int, exists bool) {
	v := m.succeeded_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSucceededCount returns the old "succeeded_count" field's value of the EnrichmentBatch entity.
// If the EnrichmentBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentBatchMutation) OldSucceededCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSucceededCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSucceededCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSucceededCount: %w", err)
	}
	return oldValue.SucceededCount, nil
}

// AddSucceededCount adds i to the "succeeded_count" field.
func (m *EnrichmentBatchMutation) AddSucceededCount(i int) {
	if m.addsucceeded_count != nil {
		*m.addsucceeded_count += i
	} else {
		m.addsucceeded_count = &i
	}
}

// AddedSucceededCount returns the value that was added to the "succeeded_count" field in this mutation.
func (m *EnrichmentBatchMutation) AddedSucceededCount() (r int, exists bool) {
	v := m.addsucceeded_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSucceededCount resets all changes to the "succeeded_count" field.
func (m *EnrichmentBatchMutation) ResetSucceededCount() {
	m.succeeded_count = nil
	m.addsucceeded_count = nil
}

// SetFailedCount sets the "failed_count" field.
func (m *EnrichmentBatchMutation) SetFailedCount(i int) {
	m.failed_count = &i
	m.addfailed_count = nil
}

// FailedCount returns the value of the "failed_count" field in the mutation.
func (m *EnrichmentBatchMutation) FailedCount() (r int, exists bool) {
	v := m.failed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedCount returns the old "failed_count" field's value of the EnrichmentBatch entity.
// If the EnrichmentBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentBatchMutation) OldFailedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedCount: %w", err)
	}
	return oldValue.FailedCount, nil
}

// AddFailedCount adds i to the "failed_count" field.
func (m *EnrichmentBatchMutation) AddFailedCount(i int) {
	if m.addfailed_count != nil {
		*m.addfailed_count += i
	} else {
		m.addfailed_count = &i
	}
}

// AddedFailedCount returns the value that was added to the "failed_count" field in this mutation.
func (m *EnrichmentBatchMutation) AddedFailedCount() (r int, exists bool) {
	v := m.addfailed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedCount resets all changes to the "failed_count" field.
func (m *EnrichmentBatchMutation) ResetFailedCount() {
	m.failed_count = nil
	m.addfailed_count = nil
}

// SetStatus sets the "status" field.
func (m *EnrichmentBatchMutation) SetStatus(e enrichmentbatch.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EnrichmentBatchMutation) Status() (r enrichmentbatch.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EnrichmentBatch entity.
// If the EnrichmentBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentBatchMutation) OldStatus(ctx context.Context) (v enrichmentbatch.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EnrichmentBatchMutation) ResetStatus() {
	m.status = nil
}

// SetErrorDetail sets the "error_detail" field.
func (m *EnrichmentBatchMutation) SetErrorDetail(s string) {
	m.error_detail = &s
}

// ErrorDetail returns the value of the "error_detail" field in the mutation.
func (m *EnrichmentBatchMutation) ErrorDetail() (r string, exists bool) {
	v := m.error_detail
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorDetail returns the old "error_detail" field's value of the EnrichmentBatch entity.
// If the EnrichmentBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentBatchMutation) OldErrorDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorDetail: %w", err)
	}
	return oldValue.ErrorDetail, nil
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (m *EnrichmentBatchMutation) ClearErrorDetail() {
	m.error_detail = nil
	m.clearedFields[enrichmentbatch.FieldErrorDetail] = struct{}{}
}

// ErrorDetailCleared returns if the "error_detail" field was cleared in this mutation.
func (m *EnrichmentBatchMutation) ErrorDetailCleared() bool {
	_, ok := m.clearedFields[enrichmentbatch.FieldErrorDetail]
	return ok
}

// ResetErrorDetail resets all changes to the "error_detail" field.
func (m *EnrichmentBatchMutation) ResetErrorDetail() {
	m.error_detail = nil
	delete(m.clearedFields, enrichmentbatch.FieldErrorDetail)
}

// SetStartedAt sets the "started_at" field.
func (m *EnrichmentBatchMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *EnrichmentBatchMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the EnrichmentBatch entity.
// If the EnrichmentBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentBatchMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *EnrichmentBatchMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[enrichmentbatch.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *EnrichmentBatchMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[enrichmentbatch.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *EnrichmentBatchMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, enrichmentbatch.FieldStartedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *EnrichmentBatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EnrichmentBatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EnrichmentBatch entity.
// If the EnrichmentBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentBatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EnrichmentBatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EnrichmentBatchMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EnrichmentBatchMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EnrichmentBatch entity.
// If the EnrichmentBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentBatchMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EnrichmentBatchMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddContactIDs adds the "contacts" edge to the Contact entity by ids.
func (m *EnrichmentBatchMutation) AddContactIDs(ids ...int) {
	if m.contacts == nil {
		m.contacts = make(map[int]struct{})
	}
	for i := range ids {
		m.contacts[ids[i]] = struct{}{}
	}
}

// ClearContacts clears the "contacts" edge to the Contact entity.
func (m *EnrichmentBatchMutation) ClearContacts() {
	m.clearedcontacts = true
}

// ContactsCleared reports if the "contacts" edge to the Contact entity was cleared.
func (m *EnrichmentBatchMutation) ContactsCleared() bool {
	return m.clearedcontacts
}

// RemoveContactIDs removes the "contacts" edge to the Contact entity by IDs.
func (m *EnrichmentBatchMutation) RemoveContactIDs(ids ...int) {
	if m.removedcontacts == nil {
		m.removedcontacts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.contacts, ids[i])
		m.removedcontacts[ids[i]] = struct{}{}
	}
}

// RemovedContacts returns the removed IDs of the "contacts" edge to the Contact entity.
func (m *EnrichmentBatchMutation) RemovedContactsIDs() (ids []int) {
	for id := range m.removedcontacts {
		ids = append(ids, id)
	}
	return
}

// ContactsIDs returns the "contacts" edge IDs in the mutation.
func (m *EnrichmentBatchMutation) ContactsIDs() (ids []int) {
	for id := range m.contacts {
		ids = append(ids, id)
	}
	return
}

// ResetContacts resets all changes to the "contacts" edge.
func (m *EnrichmentBatchMutation) ResetContacts() {
	m.contacts = nil
	m.clearedcontacts = false
	m.removedcontacts = nil
}

// SetCampaignID sets the "campaign" edge to the Campaign entity by id.
func (m *EnrichmentBatchMutation) SetCampaignID(id int) {
	m.campaign = &id
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *EnrichmentBatchMutation) ClearCampaign() {
	m.clearedcampaign = true
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *EnrichmentBatchMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignID returns the "campaign" edge ID in the mutation.
func (m *EnrichmentBatchMutation) CampaignID() (id int, exists bool) {
	if m.campaign != nil {
		return *m.campaign, true
	}
	return
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *EnrichmentBatchMutation) CampaignIDs() (ids []int) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *EnrichmentBatchMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// Where appends a list predicates to the EnrichmentBatchMutation builder.
func (m *EnrichmentBatchMutation) Where(ps ...predicate.EnrichmentBatch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnrichmentBatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnrichmentBatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EnrichmentBatch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnrichmentBatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnrichmentBatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EnrichmentBatch).
func (m *EnrichmentBatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnrichmentBatchMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, enrichmentbatch.FieldName)
	}
	if m.owner_email != nil {
		fields = append(fields, enrichmentbatch.FieldOwnerEmail)
	}
	if m.total_count != nil {
		fields = append(fields, enrichmentbatch.FieldTotalCount)
	}
	if m.processed_count != nil {
		fields = append(fields, enrichmentbatch.FieldProcessedCount)
	}
	if m.succeeded_count != nil {
		fields = append(fields, enrichmentbatch.FieldSucceededCount)
	}
	if m.failed_count != nil {
		fields = append(fields, enrichmentbatch.FieldFailedCount)
	}
	if m.status != nil {
		fields = append(fields, enrichmentbatch.FieldStatus)
	}
	if m.error_detail != nil {
		fields = append(fields, enrichmentbatch.FieldErrorDetail)
	}
	if m.started_at != nil {
		fields = append(fields, enrichmentbatch.FieldStartedAt)
	}
	if m.created_at != nil {
		fields = append(fields, enrichmentbatch.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, enrichmentbatch.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnrichmentBatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case enrichmentbatch.FieldName:
		return m.Name()
	case enrichmentbatch.FieldOwnerEmail:
		return m.OwnerEmail()
	case enrichmentbatch.FieldTotalCount:
		return m.TotalCount()
	case enrichmentbatch.FieldProcessedCount:
		return m.ProcessedCount()
	case enrichmentbatch.FieldSucceededCount:
		return m.SucceededCount()
	case enrichmentbatch.FieldFailedCount:
		return m.FailedCount()
	case enrichmentbatch.FieldStatus:
		return m.Status()
	case enrichmentbatch.FieldErrorDetail:
		return m.ErrorDetail()
	case enrichmentbatch.FieldStartedAt:
		return m.StartedAt()
	case enrichmentbatch.FieldCreatedAt:
		return m.CreatedAt()
	case enrichmentbatch.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnrichmentBatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case enrichmentbatch.FieldName:
		return m.OldName(ctx)
	case enrichmentbatch.FieldOwnerEmail:
		return m.OldOwnerEmail(ctx)
	case enrichmentbatch.FieldTotalCount:
		return m.OldTotalCount(ctx)
	case enrichmentbatch.FieldProcessedCount:
		return m.OldProcessedCount(ctx)
	case enrichmentbatch.FieldSucceededCount:
		return m.OldSucceededCount(ctx)
	case enrichmentbatch.FieldFailedCount:
		return m.OldFailedCount(ctx)
	case enrichmentbatch.FieldStatus:
		return m.OldStatus(ctx)
	case enrichmentbatch.FieldErrorDetail:
		return m.OldErrorDetail(ctx)
	case enrichmentbatch.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case enrichmentbatch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case enrichmentbatch.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EnrichmentBatch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrichmentBatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case enrichmentbatch.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case enrichmentbatch.FieldOwnerEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerEmail(v)
		return nil
	case enrichmentbatch.FieldTotalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCount(v)
		return nil
	case enrichmentbatch.FieldProcessedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedCount(v)
		return nil
	case enrichmentbatch.FieldSucceededCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSucceededCount(v)
		return nil
	case enrichmentbatch.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedCount(v)
		return nil
	case enrichmentbatch.FieldStatus:
		v, ok := value.(enrichmentbatch.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case enrichmentbatch.FieldErrorDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorDetail(v)
		return nil
	case enrichmentbatch.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case enrichmentbatch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case enrichmentbatch.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EnrichmentBatch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnrichmentBatchMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_count != nil {
		fields = append(fields, enrichmentbatch.FieldTotalCount)
	}
	if m.addprocessed_count != nil {
		fields = append(fields, enrichmentbatch.FieldProcessedCount)
	}
	if m.addsucceeded_count != nil {
		fields = append(fields, enrichmentbatch.FieldSucceededCount)
	}
	if m.addfailed_count != nil {
		fields = append(fields, enrichmentbatch.FieldFailedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnrichmentBatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case enrichmentbatch.FieldTotalCount:
		return m.AddedTotalCount()
	case enrichmentbatch.FieldProcessedCount:
		return m.AddedProcessedCount()
	case enrichmentbatch.FieldSucceededCount:
		return m.AddedSucceededCount()
	case enrichmentbatch.FieldFailedCount:
		return m.AddedFailedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrichmentBatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case enrichmentbatch.FieldTotalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCount(v)
		return nil
	case enrichmentbatch.FieldProcessedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedCount(v)
		return nil
	case enrichmentbatch.FieldSucceededCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSucceededCount(v)
		return nil
	case enrichmentbatch.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedCount(v)
		return nil
	}
	return fmt.Errorf("unknown EnrichmentBatch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnrichmentBatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(enrichmentbatch.FieldOwnerEmail) {
		fields = append(fields, enrichmentbatch.FieldOwnerEmail)
	}
	if m.FieldCleared(enrichmentbatch.FieldErrorDetail) {
		fields = append(fields, enrichmentbatch.FieldErrorDetail)
	}
	if m.FieldCleared(enrichmentbatch.FieldStartedAt) {
		fields = append(fields, enrichmentbatch.FieldStartedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnrichmentBatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnrichmentBatchMutation) ClearField(name string) error {
	switch name {
	case enrichmentbatch.FieldOwnerEmail:
		m.ClearOwnerEmail()
		return nil
	case enrichmentbatch.FieldErrorDetail:
		m.ClearErrorDetail()
		return nil
	case enrichmentbatch.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	}
	return fmt.Errorf("unknown EnrichmentBatch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnrichmentBatchMutation) ResetField(name string) error {
	switch name {
	case enrichmentbatch.FieldName:
		m.ResetName()
		return nil
	case enrichmentbatch.FieldOwnerEmail:
		m.ResetOwnerEmail()
		return nil
	case enrichmentbatch.FieldTotalCount:
		m.ResetTotalCount()
		return nil
	case enrichmentbatch.FieldProcessedCount:
		m.ResetProcessedCount()
		return nil
	case enrichmentbatch.FieldSucceededCount:
		m.ResetSucceededCount()
		return nil
	case enrichmentbatch.FieldFailedCount:
		m.ResetFailedCount()
		return nil
	case enrichmentbatch.FieldStatus:
		m.ResetStatus()
		return nil
	case enrichmentbatch.FieldErrorDetail:
		m.ResetErrorDetail()
		return nil
	case enrichmentbatch.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case enrichmentbatch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case enrichmentbatch.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EnrichmentBatch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnrichmentBatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.contacts != nil {
		edges = append(edges, enrichmentbatch.EdgeContacts)
	}
	if m.campaign != nil {
		edges = append(edges, enrichmentbatch.EdgeCampaign)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnrichmentBatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case enrichmentbatch.EdgeContacts:
		ids := make([]ent.Value, 0, len(m.contacts))
		for id := range m.contacts {
			ids = append(ids, id)
		}
		return ids
	case enrichmentbatch.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnrichmentBatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcontacts != nil {
		edges = append(edges, enrichmentbatch.EdgeContacts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnrichmentBatchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case enrichmentbatch.EdgeContacts:
		ids := make([]ent.Value, 0, len(m.removedcontacts))
		for id := range m.removedcontacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnrichmentBatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcontacts {
		edges = append(edges, enrichmentbatch.EdgeContacts)
	}
	if m.clearedcampaign {
		edges = append(edges, enrichmentbatch.EdgeCampaign)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnrichmentBatchMutation) EdgeCleared(name string) bool {
	switch name {
	case enrichmentbatch.EdgeContacts:
		return m.clearedcontacts
	case enrichmentbatch.EdgeCampaign:
		return m.clearedcampaign
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnrichmentBatchMutation) ClearEdge(name string) error {
	switch name {
	case enrichmentbatch.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown EnrichmentBatch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnrichmentBatchMutation) ResetEdge(name string) error {
	switch name {
	case enrichmentbatch.EdgeContacts:
		m.ResetContacts()
		return nil
	case enrichmentbatch.EdgeCampaign:
		m.ResetCampaign()
		return nil
	}
	return fmt.Errorf("unknown EnrichmentBatch edge %s", name)
}
