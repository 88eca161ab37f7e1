package models

// AreaCodeForm is the number search form on the dashboard
type AreaCodeForm struct {
	AreaCode string `form:"area_code" validate:"required,len=3,number"`
}

// PurchaseNumberForm is submitted from the available numbers list
type PurchaseNumberForm struct {
	PhoneNumber string `form:"phone_number" validate:"required,max=32"`
}

// LeadSourceForm edits a lead source's name and forwarding number
type LeadSourceForm struct {
	Name             string `form:"name" validate:"max=255"`
	ForwardingNumber string `form:"forwarding_number" validate:"required,max=32"`
}

// ForwardCallRequest holds the voice webhook parameters we use.
// Missing parameters bind as empty strings.
type ForwardCallRequest struct {
	Called      string `form:"Called"`
	Caller      string `form:"Caller"`
	CallerCity  string `form:"CallerCity"`
	CallerState string `form:"CallerState"`
	CallSid     string `form:"CallSid"`
}
