// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/calltracker/ent/lead"
	"github.com/jordanlanch/calltracker/ent/leadsource"
)

// LeadSourceCreate is the builder for creating a LeadSource entity.
type LeadSourceCreate struct {
	config
	mutation *LeadSourceMutation
	hooks    []Hook
}

// SetIncomingNumber sets the "incoming_number" field.
func (lsc *LeadSourceCreate) SetIncomingNumber(s string) *LeadSourceCreate {
	lsc.mutation.SetIncomingNumber(s)
	return lsc
}

// SetName sets the "name" field.
func (lsc *LeadSourceCreate) SetName(s string) *LeadSourceCreate {
	lsc.mutation.SetName(s)
	return lsc
}

// SetNillableName sets the "name" field if the given value is not nil.
func (lsc *LeadSourceCreate) SetNillableName(s *string) *LeadSourceCreate {
	if s != nil {
		lsc.SetName(*s)
	}
	return lsc
}

// SetForwardingNumber sets the "forwarding_number" field.
func (lsc *LeadSourceCreate) SetForwardingNumber(s string) *LeadSourceCreate {
	lsc.mutation.SetForwardingNumber(s)
	return lsc
}

// SetNillableForwardingNumber sets the "forwarding_number" field if the given value is not nil.
func (lsc *LeadSourceCreate) SetNillableForwardingNumber(s *string) *LeadSourceCreate {
	if s != nil {
		lsc.SetForwardingNumber(*s)
	}
	return lsc
}

// SetCreatedAt sets the "created_at" field.
func (lsc *LeadSourceCreate) SetCreatedAt(t time.Time) *LeadSourceCreate {
	lsc.mutation.SetCreatedAt(t)
	return lsc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (lsc *LeadSourceCreate) SetNillableCreatedAt(t *time.Time) *LeadSourceCreate {
	if t != nil {
		lsc.SetCreatedAt(*t)
	}
	return lsc
}

// SetUpdatedAt sets the "updated_at" field.
func (lsc *LeadSourceCreate) SetUpdatedAt(t time.Time) *LeadSourceCreate {
	lsc.mutation.SetUpdatedAt(t)
	return lsc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (lsc *LeadSourceCreate) SetNillableUpdatedAt(t *time.Time) *LeadSourceCreate {
	if t != nil {
		lsc.SetUpdatedAt(*t)
	}
	return lsc
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (lsc *LeadSourceCreate) AddLeadIDs(ids ...int) *LeadSourceCreate {
	lsc.mutation.AddLeadIDs(ids...)
	return lsc
}

// AddLeads adds the "leads" edges to the Lead entity.
func (lsc *LeadSourceCreate) AddLeads(l ...*Lead) *LeadSourceCreate {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return lsc.AddLeadIDs(ids...)
}

// Mutation returns the LeadSourceMutation object of the builder.
func (lsc *LeadSourceCreate) Mutation() *LeadSourceMutation {
	return lsc.mutation
}

// Save creates the LeadSource in the database.
func (lsc *LeadSourceCreate) Save(ctx context.Context) (*LeadSource, error) {
	lsc.defaults()
	return withHooks(ctx, lsc.sqlSave, lsc.mutation, lsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lsc *LeadSourceCreate) SaveX(ctx context.Context) *LeadSource {
	v, err := lsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lsc *LeadSourceCreate) Exec(ctx context.Context) error {
	_, err := lsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lsc *LeadSourceCreate) ExecX(ctx context.Context) {
	if err := lsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lsc *LeadSourceCreate) defaults() {
	if _, ok := lsc.mutation.Name(); !ok {
		v := leadsource.DefaultName
		lsc.mutation.SetName(v)
	}
	if _, ok := lsc.mutation.ForwardingNumber(); !ok {
		v := leadsource.DefaultForwardingNumber
		lsc.mutation.SetForwardingNumber(v)
	}
	if _, ok := lsc.mutation.CreatedAt(); !ok {
		v := leadsource.DefaultCreatedAt()
		lsc.mutation.SetCreatedAt(v)
	}
	if _, ok := lsc.mutation.UpdatedAt(); !ok {
		v := leadsource.DefaultUpdatedAt()
		lsc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lsc *LeadSourceCreate) check() error {
	if _, ok := lsc.mutation.IncomingNumber(); !ok {
		return &ValidationError{Name: "incoming_number", err: errors.New(`ent: missing required field "LeadSource.incoming_number"`)}
	}
	if v, ok := lsc.mutation.IncomingNumber(); ok {
		if err := leadsource.IncomingNumberValidator(v); err != nil {
			return &ValidationError{Name: "incoming_number", err: fmt.Errorf(`ent: validator failed for field "LeadSource.incoming_number": %w`, err)}
		}
	}
	if _, ok := lsc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "LeadSource.name"`)}
	}
	if _, ok := lsc.mutation.ForwardingNumber(); !ok {
		return &ValidationError{Name: "forwarding_number", err: errors.New(`ent: missing required field "LeadSource.forwarding_number"`)}
	}
	if v, ok := lsc.mutation.ForwardingNumber(); ok {
		if err := leadsource.ForwardingNumberValidator(v); err != nil {
			return &ValidationError{Name: "forwarding_number", err: fmt.Errorf(`ent: validator failed for field "LeadSource.forwarding_number": %w`, err)}
		}
	}
	if _, ok := lsc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LeadSource.created_at"`)}
	}
	if _, ok := lsc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LeadSource.updated_at"`)}
	}
	return nil
}

func (lsc *LeadSourceCreate) sqlSave(ctx context.Context) (*LeadSource, error) {
	if err := lsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := lsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, lsc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	lsc.mutation.id = &_node.ID
	lsc.mutation.done = true
	return _node, nil
}

func (lsc *LeadSourceCreate) createSpec() (*LeadSource, *sqlgraph.CreateSpec) {
	var (
		_node = &LeadSource{config: lsc.config}
		_spec = sqlgraph.NewCreateSpec(leadsource.Table, sqlgraph.NewFieldSpec(leadsource.FieldID, field.TypeInt))
	)
	if value, ok := lsc.mutation.IncomingNumber(); ok {
		_spec.SetField(leadsource.FieldIncomingNumber, field.TypeString, value)
		_node.IncomingNumber = value
	}
	if value, ok := lsc.mutation.Name(); ok {
		_spec.SetField(leadsource.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := lsc.mutation.ForwardingNumber(); ok {
		_spec.SetField(leadsource.FieldForwardingNumber, field.TypeString, value)
		_node.ForwardingNumber = value
	}
	if value, ok := lsc.mutation.CreatedAt(); ok {
		_spec.SetField(leadsource.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := lsc.mutation.UpdatedAt(); ok {
		_spec.SetField(leadsource.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := lsc.mutation.LeadsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LeadSourceCreateBulk is the builder for creating many LeadSource entities in bulk.
type LeadSourceCreateBulk struct {
	config
	err      error
	builders []*LeadSourceCreate
}

// Save creates the LeadSource entities in the database.
func (lscb *LeadSourceCreateBulk) Save(ctx context.Context) ([]*LeadSource, error) {
	if lscb.err != nil {
		return nil, lscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lscb.builders))
	nodes := make([]*LeadSource, len(lscb.builders))
	mutators := make([]Mutator, len(lscb.builders))
	for i := range lscb.builders {
		func(i int, root context.Context) {
			builder := lscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadSourceMutation)
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
					_, err = mutators[i+1].Mutate(root, lscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lscb *LeadSourceCreateBulk) SaveX(ctx context.Context) []*LeadSource {
	v, err := lscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lscb *LeadSourceCreateBulk) Exec(ctx context.Context) error {
	_, err := lscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lscb *LeadSourceCreateBulk) ExecX(ctx context.Context) {
	if err := lscb.Exec(ctx); err != nil {
		panic(err)
	}
}
