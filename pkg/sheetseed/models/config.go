package models

// EventConfig is the per-event dealership and sale parameter record.
// Exactly one row exists per event; values come from run configuration
// rather than the workbook.
type EventConfig struct {
	EventID          string  `json:"event_id"`
	DealerName       string  `json:"dealer_name"`
	Franchise        string  `json:"franchise"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Zip              string  `json:"zip"`
	SaleDays         int     `json:"sale_days"`
	DocFee           float64 `json:"doc_fee"`
	TaxRate          float64 `json:"tax_rate"`
	Pack             float64 `json:"pack"`
	MailTitle        string  `json:"mail_title"`
	MailPieces       int     `json:"mail_pieces"`
	JDECommissionPct float64 `json:"jde_commission_pct"`
	RepCommissionPct float64 `json:"rep_commission_pct"`
	TargetUnits      int     `json:"target_units"`
	TargetAvgGross   float64 `json:"target_avg_gross"`
}
