// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jordanlanch/calltracker/ent/lead"
	"github.com/jordanlanch/calltracker/ent/leadsource"
	"github.com/jordanlanch/calltracker/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescPhoneNumber is the schema descriptor for phone_number field.
	leadDescPhoneNumber := leadFields[1].Descriptor()
	// lead.DefaultPhoneNumber holds the default value on creation for the phone_number field.
	lead.DefaultPhoneNumber = leadDescPhoneNumber.Default.(string)
	// leadDescCity is the schema descriptor for city field.
	leadDescCity := leadFields[2].Descriptor()
	// lead.DefaultCity holds the default value on creation for the city field.
	lead.DefaultCity = leadDescCity.Default.(string)
	// leadDescState is the schema descriptor for state field.
	leadDescState := leadFields[3].Descriptor()
	// lead.DefaultState holds the default value on creation for the state field.
	lead.DefaultState = leadDescState.Default.(string)
	// leadDescCallSid is the schema descriptor for call_sid field.
	leadDescCallSid := leadFields[4].Descriptor()
	// lead.DefaultCallSid holds the default value on creation for the call_sid field.
	lead.DefaultCallSid = leadDescCallSid.Default.(string)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[5].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	leadsourceFields := schema.LeadSource{}.Fields()
	_ = leadsourceFields
	// leadsourceDescIncomingNumber is the schema descriptor for incoming_number field.
	leadsourceDescIncomingNumber := leadsourceFields[0].Descriptor()
	// leadsource.IncomingNumberValidator is a validator for the "incoming_number" field. It is called by the builders before save.
	leadsource.IncomingNumberValidator = func() func(string) error {
		validators := leadsourceDescIncomingNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(incoming_number string) error {
			for _, fn := range fns {
				if err := fn(incoming_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// leadsourceDescName is the schema descriptor for name field.
	leadsourceDescName := leadsourceFields[1].Descriptor()
	// leadsource.DefaultName holds the default value on creation for the name field.
	leadsource.DefaultName = leadsourceDescName.Default.(string)
	// leadsourceDescForwardingNumber is the schema descriptor for forwarding_number field.
	leadsourceDescForwardingNumber := leadsourceFields[2].Descriptor()
	// leadsource.DefaultForwardingNumber holds the default value on creation for the forwarding_number field.
	leadsource.DefaultForwardingNumber = leadsourceDescForwardingNumber.Default.(string)
	// leadsource.ForwardingNumberValidator is a validator for the "forwarding_number" field. It is called by the builders before save.
	leadsource.ForwardingNumberValidator = leadsourceDescForwardingNumber.Validators[0].(func(string) error)
	// leadsourceDescCreatedAt is the schema descriptor for created_at field.
	leadsourceDescCreatedAt := leadsourceFields[3].Descriptor()
	// leadsource.DefaultCreatedAt holds the default value on creation for the created_at field.
	leadsource.DefaultCreatedAt = leadsourceDescCreatedAt.Default.(func() time.Time)
	// leadsourceDescUpdatedAt is the schema descriptor for updated_at field.
	leadsourceDescUpdatedAt := leadsourceFields[4].Descriptor()
	// leadsource.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	leadsource.DefaultUpdatedAt = leadsourceDescUpdatedAt.Default.(func() time.Time)
	// leadsource.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	leadsource.UpdateDefaultUpdatedAt = leadsourceDescUpdatedAt.UpdateDefault.(func() time.Time)
}
