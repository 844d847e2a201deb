package models

// RosterEntry is one salesperson row from the "Roster & Tables" sheet.
// Pointer fields are nil when the source cell is empty.
type RosterEntry struct {
	EventID       string  `json:"event_id"`
	Name          *string `cell:"C" json:"name"`
	Phone         *string `cell:"D" json:"phone"`
	Role          string  `json:"role"`
	Confirmed     bool    `json:"confirmed"`
	CommissionPct float64 `json:"commission_pct"`
}

// Lender is one lender row from the "Roster & Tables" sheet.
type Lender struct {
	EventID    string   `json:"event_id"`
	Name       *string  `cell:"I" json:"name"`
	BuyRatePct *float64 `cell:"K" json:"buy_rate_pct"`
}
