// Code generated by ent, DO NOT EDIT.

package leadsource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/calltracker/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldLTE(FieldID, id))
}

// IncomingNumber applies equality check predicate on the "incoming_number" field. It's identical to IncomingNumberEQ.
func IncomingNumber(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEQ(FieldIncomingNumber, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEQ(FieldName, v))
}

// ForwardingNumber applies equality check predicate on the "forwarding_number" field. It's identical to ForwardingNumberEQ.
func ForwardingNumber(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEQ(FieldForwardingNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEQ(FieldUpdatedAt, v))
}

// IncomingNumberEQ applies the EQ predicate on the "incoming_number" field.
func IncomingNumberEQ(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEQ(FieldIncomingNumber, v))
}

// IncomingNumberNEQ applies the NEQ predicate on the "incoming_number" field.
func IncomingNumberNEQ(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldNEQ(FieldIncomingNumber, v))
}

// IncomingNumberIn applies the In predicate on the "incoming_number" field.
func IncomingNumberIn(vs ...string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldIn(FieldIncomingNumber, vs...))
}

// IncomingNumberNotIn applies the NotIn predicate on the "incoming_number" field.
func IncomingNumberNotIn(vs ...string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldNotIn(FieldIncomingNumber, vs...))
}

// IncomingNumberGT applies the GT predicate on the "incoming_number" field.
func IncomingNumberGT(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldGT(FieldIncomingNumber, v))
}

// IncomingNumberGTE applies the GTE predicate on the "incoming_number" field.
func IncomingNumberGTE(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldGTE(FieldIncomingNumber, v))
}

// IncomingNumberLT applies the LT predicate on the "incoming_number" field.
func IncomingNumberLT(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldLT(FieldIncomingNumber, v))
}

// IncomingNumberLTE applies the LTE predicate on the "incoming_number" field.
func IncomingNumberLTE(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldLTE(FieldIncomingNumber, v))
}

// IncomingNumberContains applies the Contains predicate on the "incoming_number" field.
func IncomingNumberContains(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldContains(FieldIncomingNumber, v))
}

// IncomingNumberHasPrefix applies the HasPrefix predicate on the "incoming_number" field.
func IncomingNumberHasPrefix(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldHasPrefix(FieldIncomingNumber, v))
}

// IncomingNumberHasSuffix applies the HasSuffix predicate on the "incoming_number" field.
func IncomingNumberHasSuffix(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldHasSuffix(FieldIncomingNumber, v))
}

// IncomingNumberEqualFold applies the EqualFold predicate on the "incoming_number" field.
func IncomingNumberEqualFold(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEqualFold(FieldIncomingNumber, v))
}

// IncomingNumberContainsFold applies the ContainsFold predicate on the "incoming_number" field.
func IncomingNumberContainsFold(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldContainsFold(FieldIncomingNumber, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldContainsFold(FieldName, v))
}

// ForwardingNumberEQ applies the EQ predicate on the "forwarding_number" field.
func ForwardingNumberEQ(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEQ(FieldForwardingNumber, v))
}

// ForwardingNumberNEQ applies the NEQ predicate on the "forwarding_number" field.
func ForwardingNumberNEQ(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldNEQ(FieldForwardingNumber, v))
}

// ForwardingNumberIn applies the In predicate on the "forwarding_number" field.
func ForwardingNumberIn(vs ...string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldIn(FieldForwardingNumber, vs...))
}

// ForwardingNumberNotIn applies the NotIn predicate on the "forwarding_number" field.
func ForwardingNumberNotIn(vs ...string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldNotIn(FieldForwardingNumber, vs...))
}

// ForwardingNumberGT applies the GT predicate on the "forwarding_number" field.
func ForwardingNumberGT(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldGT(FieldForwardingNumber, v))
}

// ForwardingNumberGTE applies the GTE predicate on the "forwarding_number" field.
func ForwardingNumberGTE(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldGTE(FieldForwardingNumber, v))
}

// ForwardingNumberLT applies the LT predicate on the "forwarding_number" field.
func ForwardingNumberLT(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldLT(FieldForwardingNumber, v))
}

// ForwardingNumberLTE applies the LTE predicate on the "forwarding_number" field.
func ForwardingNumberLTE(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldLTE(FieldForwardingNumber, v))
}

// ForwardingNumberContains applies the Contains predicate on the "forwarding_number" field.
func ForwardingNumberContains(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldContains(FieldForwardingNumber, v))
}

// ForwardingNumberHasPrefix applies the HasPrefix predicate on the "forwarding_number" field.
func ForwardingNumberHasPrefix(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldHasPrefix(FieldForwardingNumber, v))
}

// ForwardingNumberHasSuffix applies the HasSuffix predicate on the "forwarding_number" field.
func ForwardingNumberHasSuffix(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldHasSuffix(FieldForwardingNumber, v))
}

// ForwardingNumberEqualFold applies the EqualFold predicate on the "forwarding_number" field.
func ForwardingNumberEqualFold(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEqualFold(FieldForwardingNumber, v))
}

// ForwardingNumberContainsFold applies the ContainsFold predicate on the "forwarding_number" field.
func ForwardingNumberContainsFold(v string) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldContainsFold(FieldForwardingNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LeadSource {
	return predicate.LeadSource(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLeads applies the HasEdge predicate on the "leads" edge.
func HasLeads() predicate.LeadSource {
	return predicate.LeadSource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LeadsTable, LeadsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadsWith applies the HasEdge predicate on the "leads" edge with a given conditions (other predicates).
func HasLeadsWith(preds ...predicate.Lead) predicate.LeadSource {
	return predicate.LeadSource(func(s *sql.Selector) {
		step := newLeadsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LeadSource) predicate.LeadSource {
	return predicate.LeadSource(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LeadSource) predicate.LeadSource {
	return predicate.LeadSource(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LeadSource) predicate.LeadSource {
	return predicate.LeadSource(sql.NotPredicates(p))
}
