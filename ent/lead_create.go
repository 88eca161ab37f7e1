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

// LeadCreate is the builder for creating a Lead entity.
type LeadCreate struct {
	config
	mutation *LeadMutation
	hooks    []Hook
}

// SetLeadSourceID sets the "lead_source_id" field.
func (lc *LeadCreate) SetLeadSourceID(i int) *LeadCreate {
	lc.mutation.SetLeadSourceID(i)
	return lc
}

// SetPhoneNumber sets the "phone_number" field.
func (lc *LeadCreate) SetPhoneNumber(s string) *LeadCreate {
	lc.mutation.SetPhoneNumber(s)
	return lc
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (lc *LeadCreate) SetNillablePhoneNumber(s *string) *LeadCreate {
	if s != nil {
		lc.SetPhoneNumber(*s)
	}
	return lc
}

// SetCity sets the "city" field.
func (lc *LeadCreate) SetCity(s string) *LeadCreate {
	lc.mutation.SetCity(s)
	return lc
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (lc *LeadCreate) SetNillableCity(s *string) *LeadCreate {
	if s != nil {
		lc.SetCity(*s)
	}
	return lc
}

// SetState sets the "state" field.
func (lc *LeadCreate) SetState(s string) *LeadCreate {
	lc.mutation.SetState(s)
	return lc
}

// SetNillableState sets the "state" field if the given value is not nil.
func (lc *LeadCreate) SetNillableState(s *string) *LeadCreate {
	if s != nil {
		lc.SetState(*s)
	}
	return lc
}

// SetCallSid sets the "call_sid" field.
func (lc *LeadCreate) SetCallSid(s string) *LeadCreate {
	lc.mutation.SetCallSid(s)
	return lc
}

// SetNillableCallSid sets the "call_sid" field if the given value is not nil.
func (lc *LeadCreate) SetNillableCallSid(s *string) *LeadCreate {
	if s != nil {
		lc.SetCallSid(*s)
	}
	return lc
}

// SetCreatedAt sets the "created_at" field.
func (lc *LeadCreate) SetCreatedAt(t time.Time) *LeadCreate {
	lc.mutation.SetCreatedAt(t)
	return lc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (lc *LeadCreate) SetNillableCreatedAt(t *time.Time) *LeadCreate {
	if t != nil {
		lc.SetCreatedAt(*t)
	}
	return lc
}

// SetSourceID sets the "source" edge to the LeadSource entity by ID.
func (lc *LeadCreate) SetSourceID(id int) *LeadCreate {
	lc.mutation.SetSourceID(id)
	return lc
}

// SetSource sets the "source" edge to the LeadSource entity.
func (lc *LeadCreate) SetSource(l *LeadSource) *LeadCreate {
	return lc.SetSourceID(l.ID)
}

// Mutation returns the LeadMutation object of the builder.
func (lc *LeadCreate) Mutation() *LeadMutation {
	return lc.mutation
}

// Save creates the Lead in the database.
func (lc *LeadCreate) Save(ctx context.Context) (*Lead, error) {
	lc.defaults()
	return withHooks(ctx, lc.sqlSave, lc.mutation, lc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lc *LeadCreate) SaveX(ctx context.Context) *Lead {
	v, err := lc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lc *LeadCreate) Exec(ctx context.Context) error {
	_, err := lc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lc *LeadCreate) ExecX(ctx context.Context) {
	if err := lc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lc *LeadCreate) defaults() {
	if _, ok := lc.mutation.PhoneNumber(); !ok {
		v := lead.DefaultPhoneNumber
		lc.mutation.SetPhoneNumber(v)
	}
	if _, ok := lc.mutation.City(); !ok {
		v := lead.DefaultCity
		lc.mutation.SetCity(v)
	}
	if _, ok := lc.mutation.State(); !ok {
		v := lead.DefaultState
		lc.mutation.SetState(v)
	}
	if _, ok := lc.mutation.CallSid(); !ok {
		v := lead.DefaultCallSid
		lc.mutation.SetCallSid(v)
	}
	if _, ok := lc.mutation.CreatedAt(); !ok {
		v := lead.DefaultCreatedAt()
		lc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lc *LeadCreate) check() error {
	if _, ok := lc.mutation.LeadSourceID(); !ok {
		return &ValidationError{Name: "lead_source_id", err: errors.New(`ent: missing required field "Lead.lead_source_id"`)}
	}
	if _, ok := lc.mutation.PhoneNumber(); !ok {
		return &ValidationError{Name: "phone_number", err: errors.New(`ent: missing required field "Lead.phone_number"`)}
	}
	if _, ok := lc.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required field "Lead.city"`)}
	}
	if _, ok := lc.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Lead.state"`)}
	}
	if _, ok := lc.mutation.CallSid(); !ok {
		return &ValidationError{Name: "call_sid", err: errors.New(`ent: missing required field "Lead.call_sid"`)}
	}
	if _, ok := lc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lead.created_at"`)}
	}
	if _, ok := lc.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required edge "Lead.source"`)}
	}
	return nil
}

func (lc *LeadCreate) sqlSave(ctx context.Context) (*Lead, error) {
	if err := lc.check(); err != nil {
		return nil, err
	}
	_node, _spec := lc.createSpec()
	if err := sqlgraph.CreateNode(ctx, lc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	lc.mutation.id = &_node.ID
	lc.mutation.done = true
	return _node, nil
}

func (lc *LeadCreate) createSpec() (*Lead, *sqlgraph.CreateSpec) {
	var (
		_node = &Lead{config: lc.config}
		_spec = sqlgraph.NewCreateSpec(lead.Table, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	)
	if value, ok := lc.mutation.PhoneNumber(); ok {
		_spec.SetField(lead.FieldPhoneNumber, field.TypeString, value)
		_node.PhoneNumber = value
	}
	if value, ok := lc.mutation.City(); ok {
		_spec.SetField(lead.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := lc.mutation.State(); ok {
		_spec.SetField(lead.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := lc.mutation.CallSid(); ok {
		_spec.SetField(lead.FieldCallSid, field.TypeString, value)
		_node.CallSid = value
	}
	if value, ok := lc.mutation.CreatedAt(); ok {
		_spec.SetField(lead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := lc.mutation.SourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lead.SourceTable,
			Columns: []string{lead.SourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadsource.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LeadSourceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LeadCreateBulk is the builder for creating many Lead entities in bulk.
type LeadCreateBulk struct {
	config
	err      error
	builders []*LeadCreate
}

// Save creates the Lead entities in the database.
func (lcb *LeadCreateBulk) Save(ctx context.Context) ([]*Lead, error) {
	if lcb.err != nil {
		return nil, lcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lcb.builders))
	nodes := make([]*Lead, len(lcb.builders))
	mutators := make([]Mutator, len(lcb.builders))
	for i := range lcb.builders {
		func(i int, root context.Context) {
			builder := lcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadMutation)
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
					_, err = mutators[i+1].Mutate(root, lcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lcb *LeadCreateBulk) SaveX(ctx context.Context) []*Lead {
	v, err := lcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lcb *LeadCreateBulk) Exec(ctx context.Context) error {
	_, err := lcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lcb *LeadCreateBulk) ExecX(ctx context.Context) {
	if err := lcb.Exec(ctx); err != nil {
		panic(err)
	}
}
