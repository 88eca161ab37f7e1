// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/calltracker/ent/lead"
	"github.com/jordanlanch/calltracker/ent/leadsource"
	"github.com/jordanlanch/calltracker/ent/predicate"
)

// LeadSourceQuery is the builder for querying LeadSource entities.
type LeadSourceQuery struct {
	config
	ctx        *QueryContext
	order      []leadsource.OrderOption
	inters     []Interceptor
	predicates []predicate.LeadSource
	withLeads  *LeadQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LeadSourceQuery builder.
func (lsq *LeadSourceQuery) Where(ps ...predicate.LeadSource) *LeadSourceQuery {
	lsq.predicates = append(lsq.predicates, ps...)
	return lsq
}

// Limit the number of records to be returned by this query.
func (lsq *LeadSourceQuery) Limit(limit int) *LeadSourceQuery {
	lsq.ctx.Limit = &limit
	return lsq
}

// Offset to start from.
func (lsq *LeadSourceQuery) Offset(offset int) *LeadSourceQuery {
	lsq.ctx.Offset = &offset
	return lsq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (lsq *LeadSourceQuery) Unique(unique bool) *LeadSourceQuery {
	lsq.ctx.Unique = &unique
	return lsq
}

// Order specifies how the records should be ordered.
func (lsq *LeadSourceQuery) Order(o ...leadsource.OrderOption) *LeadSourceQuery {
	lsq.order = append(lsq.order, o...)
	return lsq
}

// QueryLeads chains the current query on the "leads" edge.
func (lsq *LeadSourceQuery) QueryLeads() *LeadQuery {
	query := (&LeadClient{config: lsq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := lsq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := lsq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(leadsource.Table, leadsource.FieldID, selector),
			sqlgraph.To(lead.Table, lead.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, leadsource.LeadsTable, leadsource.LeadsColumn),
		)
		fromU = sqlgraph.SetNeighbors(lsq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first LeadSource entity from the query.
// Returns a *NotFoundError when no LeadSource was found.
func (lsq *LeadSourceQuery) First(ctx context.Context) (*LeadSource, error) {
	nodes, err := lsq.Limit(1).All(setContextOp(ctx, lsq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{leadsource.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (lsq *LeadSourceQuery) FirstX(ctx context.Context) *LeadSource {
	node, err := lsq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LeadSource ID from the query.
// Returns a *NotFoundError when no LeadSource ID was found.
func (lsq *LeadSourceQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = lsq.Limit(1).IDs(setContextOp(ctx, lsq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{leadsource.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (lsq *LeadSourceQuery) FirstIDX(ctx context.Context) int {
	id, err := lsq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LeadSource entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LeadSource entity is found.
// Returns a *NotFoundError when no LeadSource entities are found.
func (lsq *LeadSourceQuery) Only(ctx context.Context) (*LeadSource, error) {
	nodes, err := lsq.Limit(2).All(setContextOp(ctx, lsq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{leadsource.Label}
	default:
		return nil, &NotSingularError{leadsource.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (lsq *LeadSourceQuery) OnlyX(ctx context.Context) *LeadSource {
	node, err := lsq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LeadSource ID in the query.
// Returns a *NotSingularError when more than one LeadSource ID is found.
// Returns a *NotFoundError when no entities are found.
func (lsq *LeadSourceQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = lsq.Limit(2).IDs(setContextOp(ctx, lsq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{leadsource.Label}
	default:
		err = &NotSingularError{leadsource.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (lsq *LeadSourceQuery) OnlyIDX(ctx context.Context) int {
	id, err := lsq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LeadSources.
func (lsq *LeadSourceQuery) All(ctx context.Context) ([]*LeadSource, error) {
	ctx = setContextOp(ctx, lsq.ctx, "All")
	if err := lsq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LeadSource, *LeadSourceQuery]()
	return withInterceptors[[]*LeadSource](ctx, lsq, qr, lsq.inters)
}

// AllX is like All, but panics if an error occurs.
func (lsq *LeadSourceQuery) AllX(ctx context.Context) []*LeadSource {
	nodes, err := lsq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LeadSource IDs.
func (lsq *LeadSourceQuery) IDs(ctx context.Context) (ids []int, err error) {
	if lsq.ctx.Unique == nil && lsq.path != nil {
		lsq.Unique(true)
	}
	ctx = setContextOp(ctx, lsq.ctx, "IDs")
	if err = lsq.Select(leadsource.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (lsq *LeadSourceQuery) IDsX(ctx context.Context) []int {
	ids, err := lsq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (lsq *LeadSourceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, lsq.ctx, "Count")
	if err := lsq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, lsq, querierCount[*LeadSourceQuery](), lsq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (lsq *LeadSourceQuery) CountX(ctx context.Context) int {
	count, err := lsq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (lsq *LeadSourceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, lsq.ctx, "Exist")
	switch _, err := lsq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (lsq *LeadSourceQuery) ExistX(ctx context.Context) bool {
	exist, err := lsq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LeadSourceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (lsq *LeadSourceQuery) Clone() *LeadSourceQuery {
	if lsq == nil {
		return nil
	}
	return &LeadSourceQuery{
		config:     lsq.config,
		ctx:        lsq.ctx.Clone(),
		order:      append([]leadsource.OrderOption{}, lsq.order...),
		inters:     append([]Interceptor{}, lsq.inters...),
		predicates: append([]predicate.LeadSource{}, lsq.predicates...),
		withLeads:  lsq.withLeads.Clone(),
		// clone intermediate query.
		sql:  lsq.sql.Clone(),
		path: lsq.path,
	}
}

// WithLeads tells the query-builder to eager-load the nodes that are connected to
// the "leads" edge. The optional arguments are used to configure the query builder of the edge.
func (lsq *LeadSourceQuery) WithLeads(opts ...func(*LeadQuery)) *LeadSourceQuery {
	query := (&LeadClient{config: lsq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	lsq.withLeads = query
	return lsq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		IncomingNumber string `json:"incoming_number,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LeadSource.Query().
//		GroupBy(leadsource.FieldIncomingNumber).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (lsq *LeadSourceQuery) GroupBy(field string, fields ...string) *LeadSourceGroupBy {
	lsq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LeadSourceGroupBy{build: lsq}
	grbuild.flds = &lsq.ctx.Fields
	grbuild.label = leadsource.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		IncomingNumber string `json:"incoming_number,omitempty"`
//	}
//
//	client.LeadSource.Query().
//		Select(leadsource.FieldIncomingNumber).
//		Scan(ctx, &v)
func (lsq *LeadSourceQuery) Select(fields ...string) *LeadSourceSelect {
	lsq.ctx.Fields = append(lsq.ctx.Fields, fields...)
	sbuild := &LeadSourceSelect{LeadSourceQuery: lsq}
	sbuild.label = leadsource.Label
	sbuild.flds, sbuild.scan = &lsq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LeadSourceSelect configured with the given aggregations.
func (lsq *LeadSourceQuery) Aggregate(fns ...AggregateFunc) *LeadSourceSelect {
	return lsq.Select().Aggregate(fns...)
}

func (lsq *LeadSourceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range lsq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, lsq); err != nil {
				return err
			}
		}
	}
	for _, f := range lsq.ctx.Fields {
		if !leadsource.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if lsq.path != nil {
		prev, err := lsq.path(ctx)
		if err != nil {
			return err
		}
		lsq.sql = prev
	}
	return nil
}

func (lsq *LeadSourceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LeadSource, error) {
	var (
		nodes       = []*LeadSource{}
		_spec       = lsq.querySpec()
		loadedTypes = [1]bool{
			lsq.withLeads != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LeadSource).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LeadSource{config: lsq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, lsq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := lsq.withLeads; query != nil {
		if err := lsq.loadLeads(ctx, query, nodes,
			func(n *LeadSource) { n.Edges.Leads = []*Lead{} },
			func(n *LeadSource, e *Lead) { n.Edges.Leads = append(n.Edges.Leads, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (lsq *LeadSourceQuery) loadLeads(ctx context.Context, query *LeadQuery, nodes []*LeadSource, init func(*LeadSource), assign func(*LeadSource, *Lead)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*LeadSource)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(lead.FieldLeadSourceID)
	}
	query.Where(predicate.Lead(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(leadsource.LeadsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LeadSourceID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "lead_source_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (lsq *LeadSourceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := lsq.querySpec()
	_spec.Node.Columns = lsq.ctx.Fields
	if len(lsq.ctx.Fields) > 0 {
		_spec.Unique = lsq.ctx.Unique != nil && *lsq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, lsq.driver, _spec)
}

func (lsq *LeadSourceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(leadsource.Table, leadsource.Columns, sqlgraph.NewFieldSpec(leadsource.FieldID, field.TypeInt))
	_spec.From = lsq.sql
	if unique := lsq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if lsq.path != nil {
		_spec.Unique = true
	}
	if fields := lsq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leadsource.FieldID)
		for i := range fields {
			if fields[i] != leadsource.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := lsq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := lsq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := lsq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := lsq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (lsq *LeadSourceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(lsq.driver.Dialect())
	t1 := builder.Table(leadsource.Table)
	columns := lsq.ctx.Fields
	if len(columns) == 0 {
		columns = leadsource.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if lsq.sql != nil {
		selector = lsq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if lsq.ctx.Unique != nil && *lsq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range lsq.predicates {
		p(selector)
	}
	for _, p := range lsq.order {
		p(selector)
	}
	if offset := lsq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := lsq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// LeadSourceGroupBy is the group-by builder for LeadSource entities.
type LeadSourceGroupBy struct {
	selector
	build *LeadSourceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (lsgb *LeadSourceGroupBy) Aggregate(fns ...AggregateFunc) *LeadSourceGroupBy {
	lsgb.fns = append(lsgb.fns, fns...)
	return lsgb
}

// Scan applies the selector query and scans the result into the given value.
func (lsgb *LeadSourceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, lsgb.build.ctx, "GroupBy")
	if err := lsgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LeadSourceQuery, *LeadSourceGroupBy](ctx, lsgb.build, lsgb, lsgb.build.inters, v)
}

func (lsgb *LeadSourceGroupBy) sqlScan(ctx context.Context, root *LeadSourceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(lsgb.fns))
	for _, fn := range lsgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*lsgb.flds)+len(lsgb.fns))
		for _, f := range *lsgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*lsgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := lsgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// LeadSourceSelect is the builder for selecting fields of LeadSource entities.
type LeadSourceSelect struct {
	*LeadSourceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (lss *LeadSourceSelect) Aggregate(fns ...AggregateFunc) *LeadSourceSelect {
	lss.fns = append(lss.fns, fns...)
	return lss
}

// Scan applies the selector query and scans the result into the given value.
func (lss *LeadSourceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, lss.ctx, "Select")
	if err := lss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LeadSourceQuery, *LeadSourceSelect](ctx, lss.LeadSourceQuery, lss, lss.inters, v)
}

func (lss *LeadSourceSelect) sqlScan(ctx context.Context, root *LeadSourceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(lss.fns))
	for _, fn := range lss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*lss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := lss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
