// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/calltracker/ent/leadsource"
)

// LeadSource is the model entity for the LeadSource schema.
type LeadSource struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Purchased tracking number (E.164 format)
	IncomingNumber string `json:"incoming_number,omitempty"`
	// Campaign label, blank until edited. Length is checked in characters by the service
	Name string `json:"name,omitempty"`
	// Destination callers are connected to (E.164 format)
	ForwardingNumber string `json:"forwarding_number,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LeadSourceQuery when eager-loading is set.
	Edges        LeadSourceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LeadSourceEdges holds the relations/edges for other nodes in the graph.
type LeadSourceEdges struct {
	// Calls received on this number
	Leads []*Lead `json:"leads,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LeadsOrErr returns the Leads value or an error if the edge
// was not loaded in eager-loading.
func (e LeadSourceEdges) LeadsOrErr() ([]*Lead, error) {
	if e.loadedTypes[0] {
		return e.Leads, nil
	}
	return nil, &NotLoadedError{edge: "leads"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LeadSource) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case leadsource.FieldID:
			values[i] = new(sql.NullInt64)
		case leadsource.FieldIncomingNumber, leadsource.FieldName, leadsource.FieldForwardingNumber:
			values[i] = new(sql.NullString)
		case leadsource.FieldCreatedAt, leadsource.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LeadSource fields.
func (ls *LeadSource) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case leadsource.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ls.ID = int(value.Int64)
		case leadsource.FieldIncomingNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incoming_number", values[i])
			} else if value.Valid {
				ls.IncomingNumber = value.String
			}
		case leadsource.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				ls.Name = value.String
			}
		case leadsource.FieldForwardingNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field forwarding_number", values[i])
			} else if value.Valid {
				ls.ForwardingNumber = value.String
			}
		case leadsource.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ls.CreatedAt = value.Time
			}
		case leadsource.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ls.UpdatedAt = value.Time
			}
		default:
			ls.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LeadSource.
// This includes values selected through modifiers, order, etc.
func (ls *LeadSource) Value(name string) (ent.Value, error) {
	return ls.selectValues.Get(name)
}

// QueryLeads queries the "leads" edge of the LeadSource entity.
func (ls *LeadSource) QueryLeads() *LeadQuery {
	return NewLeadSourceClient(ls.config).QueryLeads(ls)
}

// Update returns a builder for updating this LeadSource.
// Note that you need to call LeadSource.Unwrap() before calling this method if this LeadSource
// was returned from a transaction, and the transaction was committed or rolled back.
func (ls *LeadSource) Update() *LeadSourceUpdateOne {
	return NewLeadSourceClient(ls.config).UpdateOne(ls)
}

// Unwrap unwraps the LeadSource entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ls *LeadSource) Unwrap() *LeadSource {
	_tx, ok := ls.config.driver.(*txDriver)
	if !ok {
		panic("ent: LeadSource is not a transactional entity")
	}
	ls.config.driver = _tx.drv
	return ls
}

// String implements the fmt.Stringer.
func (ls *LeadSource) String() string {
	var builder strings.Builder
	builder.WriteString("LeadSource(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ls.ID))
	builder.WriteString("incoming_number=")
	builder.WriteString(ls.IncomingNumber)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(ls.Name)
	builder.WriteString(", ")
	builder.WriteString("forwarding_number=")
	builder.WriteString(ls.ForwardingNumber)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ls.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ls.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LeadSources is a parsable slice of LeadSource.
type LeadSources []*LeadSource
