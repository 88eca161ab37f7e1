// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/calltracker/ent/lead"
	"github.com/jordanlanch/calltracker/ent/leadsource"
	"github.com/jordanlanch/calltracker/ent/predicate"
)

// LeadSourceUpdate is the builder for updating LeadSource entities.
type LeadSourceUpdate struct {
	config
	hooks    []Hook
	mutation *LeadSourceMutation
}

// Where appends a list predicates to the LeadSourceUpdate builder.
func (lsu *LeadSourceUpdate) Where(ps ...predicate.LeadSource) *LeadSourceUpdate {
	lsu.mutation.Where(ps...)
	return lsu
}

// SetName sets the "name" field.
func (lsu *LeadSourceUpdate) SetName(s string) *LeadSourceUpdate {
	lsu.mutation.SetName(s)
	return lsu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (lsu *LeadSourceUpdate) SetNillableName(s *string) *LeadSourceUpdate {
	if s != nil {
		lsu.SetName(*s)
	}
	return lsu
}

// SetForwardingNumber sets the "forwarding_number" field.
func (lsu *LeadSourceUpdate) SetForwardingNumber(s string) *LeadSourceUpdate {
	lsu.mutation.SetForwardingNumber(s)
	return lsu
}

// SetNillableForwardingNumber sets the "forwarding_number" field if the given value is not nil.
func (lsu *LeadSourceUpdate) SetNillableForwardingNumber(s *string) *LeadSourceUpdate {
	if s != nil {
		lsu.SetForwardingNumber(*s)
	}
	return lsu
}

// SetUpdatedAt sets the "updated_at" field.
func (lsu *LeadSourceUpdate) SetUpdatedAt(t time.Time) *LeadSourceUpdate {
	lsu.mutation.SetUpdatedAt(t)
	return lsu
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (lsu *LeadSourceUpdate) AddLeadIDs(ids ...int) *LeadSourceUpdate {
	lsu.mutation.AddLeadIDs(ids...)
	return lsu
}

// AddLeads adds the "leads" edges to the Lead entity.
func (lsu *LeadSourceUpdate) AddLeads(l ...*Lead) *LeadSourceUpdate {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return lsu.AddLeadIDs(ids...)
}

// Mutation returns the LeadSourceMutation object of the builder.
func (lsu *LeadSourceUpdate) Mutation() *LeadSourceMutation {
	return lsu.mutation
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (lsu *LeadSourceUpdate) ClearLeads() *LeadSourceUpdate {
	lsu.mutation.ClearLeads()
	return lsu
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (lsu *LeadSourceUpdate) RemoveLeadIDs(ids ...int) *LeadSourceUpdate {
	lsu.mutation.RemoveLeadIDs(ids...)
	return lsu
}

// RemoveLeads removes "leads" edges to Lead entities.
func (lsu *LeadSourceUpdate) RemoveLeads(l ...*Lead) *LeadSourceUpdate {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return lsu.RemoveLeadIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (lsu *LeadSourceUpdate) Save(ctx context.Context) (int, error) {
	lsu.defaults()
	return withHooks(ctx, lsu.sqlSave, lsu.mutation, lsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lsu *LeadSourceUpdate) SaveX(ctx context.Context) int {
	affected, err := lsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (lsu *LeadSourceUpdate) Exec(ctx context.Context) error {
	_, err := lsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lsu *LeadSourceUpdate) ExecX(ctx context.Context) {
	if err := lsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lsu *LeadSourceUpdate) defaults() {
	if _, ok := lsu.mutation.UpdatedAt(); !ok {
		v := leadsource.UpdateDefaultUpdatedAt()
		lsu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lsu *LeadSourceUpdate) check() error {
	if v, ok := lsu.mutation.ForwardingNumber(); ok {
		if err := leadsource.ForwardingNumberValidator(v); err != nil {
			return &ValidationError{Name: "forwarding_number", err: fmt.Errorf(`ent: validator failed for field "LeadSource.forwarding_number": %w`, err)}
		}
	}
	return nil
}

func (lsu *LeadSourceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := lsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadsource.Table, leadsource.Columns, sqlgraph.NewFieldSpec(leadsource.FieldID, field.TypeInt))
	if ps := lsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lsu.mutation.Name(); ok {
		_spec.SetField(leadsource.FieldName, field.TypeString, value)
	}
	if value, ok := lsu.mutation.ForwardingNumber(); ok {
		_spec.SetField(leadsource.FieldForwardingNumber, field.TypeString, value)
	}
	if value, ok := lsu.mutation.UpdatedAt(); ok {
		_spec.SetField(leadsource.FieldUpdatedAt, field.TypeTime, value)
	}
	if lsu.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   leadsource.LeadsTable,
			Columns: []string{leadsource.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lsu.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !lsu.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   leadsource.LeadsTable,
			Columns: []string{leadsource.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lsu.mutation.LeadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   leadsource.LeadsTable,
			Columns: []string{leadsource.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, lsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadsource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	lsu.mutation.done = true
	return n, nil
}

// LeadSourceUpdateOne is the builder for updating a single LeadSource entity.
type LeadSourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadSourceMutation
}

// SetName sets the "name" field.
func (lsuo *LeadSourceUpdateOne) SetName(s string) *LeadSourceUpdateOne {
	lsuo.mutation.SetName(s)
	return lsuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (lsuo *LeadSourceUpdateOne) SetNillableName(s *string) *LeadSourceUpdateOne {
	if s != nil {
		lsuo.SetName(*s)
	}
	return lsuo
}

// SetForwardingNumber sets the "forwarding_number" field.
func (lsuo *LeadSourceUpdateOne) SetForwardingNumber(s string) *LeadSourceUpdateOne {
	lsuo.mutation.SetForwardingNumber(s)
	return lsuo
}

// SetNillableForwardingNumber sets the "forwarding_number" field if the given value is not nil.
func (lsuo *LeadSourceUpdateOne) SetNillableForwardingNumber(s *string) *LeadSourceUpdateOne {
	if s != nil {
		lsuo.SetForwardingNumber(*s)
	}
	return lsuo
}

// SetUpdatedAt sets the "updated_at" field.
func (lsuo *LeadSourceUpdateOne) SetUpdatedAt(t time.Time) *LeadSourceUpdateOne {
	lsuo.mutation.SetUpdatedAt(t)
	return lsuo
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (lsuo *LeadSourceUpdateOne) AddLeadIDs(ids ...int) *LeadSourceUpdateOne {
	lsuo.mutation.AddLeadIDs(ids...)
	return lsuo
}

// AddLeads adds the "leads" edges to the Lead entity.
func (lsuo *LeadSourceUpdateOne) AddLeads(l ...*Lead) *LeadSourceUpdateOne {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return lsuo.AddLeadIDs(ids...)
}

// Mutation returns the LeadSourceMutation object of the builder.
func (lsuo *LeadSourceUpdateOne) Mutation() *LeadSourceMutation {
	return lsuo.mutation
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (lsuo *LeadSourceUpdateOne) ClearLeads() *LeadSourceUpdateOne {
	lsuo.mutation.ClearLeads()
	return lsuo
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (lsuo *LeadSourceUpdateOne) RemoveLeadIDs(ids ...int) *LeadSourceUpdateOne {
	lsuo.mutation.RemoveLeadIDs(ids...)
	return lsuo
}

// RemoveLeads removes "leads" edges to Lead entities.
func (lsuo *LeadSourceUpdateOne) RemoveLeads(l ...*Lead) *LeadSourceUpdateOne {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return lsuo.RemoveLeadIDs(ids...)
}

// Where appends a list predicates to the LeadSourceUpdate builder.
func (lsuo *LeadSourceUpdateOne) Where(ps ...predicate.LeadSource) *LeadSourceUpdateOne {
	lsuo.mutation.Where(ps...)
	return lsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (lsuo *LeadSourceUpdateOne) Select(field string, fields ...string) *LeadSourceUpdateOne {
	lsuo.fields = append([]string{field}, fields...)
	return lsuo
}

// Save executes the query and returns the updated LeadSource entity.
func (lsuo *LeadSourceUpdateOne) Save(ctx context.Context) (*LeadSource, error) {
	lsuo.defaults()
	return withHooks(ctx, lsuo.sqlSave, lsuo.mutation, lsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lsuo *LeadSourceUpdateOne) SaveX(ctx context.Context) *LeadSource {
	node, err := lsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (lsuo *LeadSourceUpdateOne) Exec(ctx context.Context) error {
	_, err := lsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lsuo *LeadSourceUpdateOne) ExecX(ctx context.Context) {
	if err := lsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lsuo *LeadSourceUpdateOne) defaults() {
	if _, ok := lsuo.mutation.UpdatedAt(); !ok {
		v := leadsource.UpdateDefaultUpdatedAt()
		lsuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lsuo *LeadSourceUpdateOne) check() error {
	if v, ok := lsuo.mutation.ForwardingNumber(); ok {
		if err := leadsource.ForwardingNumberValidator(v); err != nil {
			return &ValidationError{Name: "forwarding_number", err: fmt.Errorf(`ent: validator failed for field "LeadSource.forwarding_number": %w`, err)}
		}
	}
	return nil
}

func (lsuo *LeadSourceUpdateOne) sqlSave(ctx context.Context) (_node *LeadSource, err error) {
	if err := lsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadsource.Table, leadsource.Columns, sqlgraph.NewFieldSpec(leadsource.FieldID, field.TypeInt))
	id, ok := lsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeadSource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := lsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leadsource.FieldID)
		for _, f := range fields {
			if !leadsource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leadsource.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := lsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lsuo.mutation.Name(); ok {
		_spec.SetField(leadsource.FieldName, field.TypeString, value)
	}
	if value, ok := lsuo.mutation.ForwardingNumber(); ok {
		_spec.SetField(leadsource.FieldForwardingNumber, field.TypeString, value)
	}
	if value, ok := lsuo.mutation.UpdatedAt(); ok {
		_spec.SetField(leadsource.FieldUpdatedAt, field.TypeTime, value)
	}
	if lsuo.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   leadsource.LeadsTable,
			Columns: []string{leadsource.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lsuo.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !lsuo.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   leadsource.LeadsTable,
			Columns: []string{leadsource.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lsuo.mutation.LeadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   leadsource.LeadsTable,
			Columns: []string{leadsource.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LeadSource{config: lsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, lsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadsource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	lsuo.mutation.done = true
	return _node, nil
}
