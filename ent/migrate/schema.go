// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "phone_number", Type: field.TypeString, Default: ""},
		{Name: "city", Type: field.TypeString, Default: ""},
		{Name: "state", Type: field.TypeString, Default: ""},
		{Name: "call_sid", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_source_id", Type: field.TypeInt},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leads_lead_sources_leads",
				Columns:    []*schema.Column{LeadsColumns[6]},
				RefColumns: []*schema.Column{LeadSourcesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lead_lead_source_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[6]},
			},
			{
				Name:    "lead_city",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[2]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[5]},
			},
		},
	}
	// LeadSourcesColumns holds the columns for the "lead_sources" table.
	LeadSourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "incoming_number", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "forwarding_number", Type: field.TypeString, Size: 20, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LeadSourcesTable holds the schema information for the "lead_sources" table.
	LeadSourcesTable = &schema.Table{
		Name:       "lead_sources",
		Columns:    LeadSourcesColumns,
		PrimaryKey: []*schema.Column{LeadSourcesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "leadsource_name",
				Unique:  false,
				Columns: []*schema.Column{LeadSourcesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LeadsTable,
		LeadSourcesTable,
	}
)

func init() {
	LeadsTable.ForeignKeys[0].RefTable = LeadSourcesTable
}
