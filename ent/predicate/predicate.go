// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// LeadSource is the predicate function for leadsource builders.
type LeadSource func(*sql.Selector)
