package domain

import "github.com/shopspring/decimal"

// ClientDetails is a point-in-time snapshot of a client, safe to hand across
// the registry boundary.
type ClientDetails struct {
	TaxID        string
	Name         string
	BirthDate    string
	Address      string
	AccountCount int
}

// AccountDetails is a point-in-time snapshot of an account and its owner.
type AccountDetails struct {
	Number      int
	RoutingCode string
	Balance     decimal.Decimal
	OwnerTaxID  string
	OwnerName   string
}
