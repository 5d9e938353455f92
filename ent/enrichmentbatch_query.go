// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promarkhq/marketingdb/ent/campaign"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/ent/predicate"
)

// EnrichmentBatchQuery is the builder for querying EnrichmentBatch entities.
type EnrichmentBatchQuery struct {
	config
	ctx          *QueryContext
	order        []enrichmentbatch.OrderOption
	inters       []Interceptor
	predicates   []predicate.EnrichmentBatch
	withContacts *ContactQuery
	withCampaign *CampaignQuery
	withFKs      bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EnrichmentBatchQuery builder.
func (_q *EnrichmentBatchQuery) Where(ps ...predicate.EnrichmentBatch) *EnrichmentBatchQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EnrichmentBatchQuery) Limit(limit int) *EnrichmentBatchQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EnrichmentBatchQuery) Offset(offset int) *EnrichmentBatchQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EnrichmentBatchQuery) Unique(unique bool) *EnrichmentBatchQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EnrichmentBatchQuery) Order(o ...enrichmentbatch.OrderOption) *EnrichmentBatchQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryContacts chains the current query on the "contacts" edge.
func (_q *EnrichmentBatchQuery) QueryContacts() *ContactQuery {
	query := (&ContactClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(enrichmentbatch.Table, enrichmentbatch.FieldID, selector),
			sqlgraph.To(contact.Table, contact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, enrichmentbatch.ContactsTable, enrichmentbatch.ContactsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCampaign chains the current query on the "campaign" edge.
func (_q *EnrichmentBatchQuery) QueryCampaign() *CampaignQuery {
	query := (&CampaignClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(enrichmentbatch.Table, enrichmentbatch.FieldID, selector),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, enrichmentbatch.CampaignTable, enrichmentbatch.CampaignColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first EnrichmentBatch entity from the query.
// Returns a *NotFoundError when no EnrichmentBatch was found.
func (_q *EnrichmentBatchQuery) First(ctx context.Context) (*EnrichmentBatch, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{enrichmentbatch.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EnrichmentBatchQuery) FirstX(ctx context.Context) *EnrichmentBatch {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first EnrichmentBatch ID from the query.
// Returns a *NotFoundError when no EnrichmentBatch ID was found.
func (_q *EnrichmentBatchQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{enrichmentbatch.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EnrichmentBatchQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single EnrichmentBatch entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one EnrichmentBatch entity is found.
// Returns a *NotFoundError when no EnrichmentBatch entities are found.
func (_q *EnrichmentBatchQuery) Only(ctx context.Context) (*EnrichmentBatch, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{enrichmentbatch.Label}
	default:
		return nil, &NotSingularError{enrichmentbatch.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EnrichmentBatchQuery) OnlyX(ctx context.Context) *EnrichmentBatch {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only EnrichmentBatch ID in the query.
// Returns a *NotSingularError when more than one EnrichmentBatch ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EnrichmentBatchQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{enrichmentbatch.Label}
	default:
		err = &NotSingularError{enrichmentbatch.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EnrichmentBatchQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of EnrichmentBatches.
func (_q *EnrichmentBatchQuery) All(ctx context.Context) ([]*EnrichmentBatch, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*EnrichmentBatch, *EnrichmentBatchQuery]()
	return withInterceptors[[]*EnrichmentBatch](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EnrichmentBatchQuery) AllX(ctx context.Context) []*EnrichmentBatch {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of EnrichmentBatch IDs.
func (_q *EnrichmentBatchQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(enrichmentbatch.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EnrichmentBatchQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EnrichmentBatchQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EnrichmentBatchQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EnrichmentBatchQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EnrichmentBatchQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *EnrichmentBatchQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EnrichmentBatchQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EnrichmentBatchQuery) Clone() *EnrichmentBatchQuery {
	if _q == nil {
		return nil
	}
	return &EnrichmentBatchQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]enrichmentbatch.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.EnrichmentBatch{}, _q.predicates...),
		withContacts: _q.withContacts.Clone(),
		withCampaign: _q.withCampaign.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithContacts tells the query-builder to eager-load the nodes that are connected to
// the "contacts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EnrichmentBatchQuery) WithContacts(opts ...func(*ContactQuery)) *EnrichmentBatchQuery {
	query := (&ContactClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withContacts = query
	return _q
}

// WithCampaign tells the query-builder to eager-load the nodes that are connected to
// the "campaign" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EnrichmentBatchQuery) WithCampaign(opts ...func(*CampaignQuery)) *EnrichmentBatchQuery {
	query := (&CampaignClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCampaign = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.EnrichmentBatch.Query().
//		GroupBy(enrichmentbatch.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *EnrichmentBatchQuery) GroupBy(field string, fields ...string) *EnrichmentBatchGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EnrichmentBatchGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = enrichmentbatch.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.EnrichmentBatch.Query().
//		Select(enrichmentbatch.FieldName).
//		Scan(ctx, &v)
func (_q *EnrichmentBatchQuery) Select(fields ...string) *EnrichmentBatchSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EnrichmentBatchSelect{EnrichmentBatchQuery: _q}
	sbuild.label = enrichmentbatch.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EnrichmentBatchSelect configured with the given aggregations.
func (_q *EnrichmentBatchQuery) Aggregate(fns ...AggregateFunc) *EnrichmentBatchSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EnrichmentBatchQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !enrichmentbatch.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *EnrichmentBatchQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*EnrichmentBatch, error) {
	var (
		nodes       = []*EnrichmentBatch{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withContacts != nil,
			_q.withCampaign != nil,
		}
	)
	if _q.withCampaign != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, enrichmentbatch.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*EnrichmentBatch).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &EnrichmentBatch{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withContacts; query != nil {
		if err := _q.loadContacts(ctx, query, nodes,
			func(n *EnrichmentBatch) { n.Edges.Contacts = []*Contact{} },
			func(n *EnrichmentBatch, e *Contact) { n.Edges.Contacts = append(n.Edges.Contacts, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCampaign; query != nil {
		if err := _q.loadCampaign(ctx, query, nodes, nil,
			func(n *EnrichmentBatch, e *Campaign) { n.Edges.Campaign = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EnrichmentBatchQuery) loadContacts(ctx context.Context, query *ContactQuery, nodes []*EnrichmentBatch, init func(*EnrichmentBatch), assign func(*EnrichmentBatch, *Contact)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*EnrichmentBatch)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Contact(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(enrichmentbatch.ContactsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.enrichment_batch_contacts
		if fk == nil {
			return fmt.Errorf(`foreign-key "enrichment_batch_contacts" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "enrichment_batch_contacts" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EnrichmentBatchQuery) loadCampaign(ctx context.Context, query *CampaignQuery, nodes []*EnrichmentBatch, init func(*EnrichmentBatch), assign func(*EnrichmentBatch, *Campaign)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*EnrichmentBatch)
	for i := range nodes {
		if nodes[i].campaign_batches == nil {
			continue
		}
		fk := *nodes[i].campaign_batches
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(campaign.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "campaign_batches" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *EnrichmentBatchQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *EnrichmentBatchQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(enrichmentbatch.Table, enrichmentbatch.Columns, sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enrichmentbatch.FieldID)
		for i := range fields {
			if fields[i] != enrichmentbatch.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *EnrichmentBatchQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(enrichmentbatch.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = enrichmentbatch.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// EnrichmentBatchGroupBy is the group-by builder for EnrichmentBatch entities.
type EnrichmentBatchGroupBy struct {
	selector
	build *EnrichmentBatchQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EnrichmentBatchGroupBy) Aggregate(fns ...AggregateFunc) *EnrichmentBatchGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EnrichmentBatchGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EnrichmentBatchQuery, *EnrichmentBatchGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EnrichmentBatchGroupBy) sqlScan(ctx context.Context, root *EnrichmentBatchQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// EnrichmentBatchSelect is the builder for selecting fields of EnrichmentBatch entities.
type EnrichmentBatchSelect struct {
	*EnrichmentBatchQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EnrichmentBatchSelect) Aggregate(fns ...AggregateFunc) *EnrichmentBatchSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EnrichmentBatchSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EnrichmentBatchQuery, *EnrichmentBatchSelect](ctx, _s.EnrichmentBatchQuery, _s, _s.inters, v)
}

func (_s *EnrichmentBatchSelect) sqlScan(ctx context.Context, root *EnrichmentBatchQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
