package models

// InventoryItem is one vehicle row from the "INVENTORY" sheet.
//
// The jd_* valuation fields are J.D. Power clean trade/retail book values.
// Derived pricing fields carry omitempty so that rows missing a trade value
// or unit cost omit them entirely rather than writing zeroes.
type InventoryItem struct {
	EventID      string   `json:"event_id"`
	HatNumber    *int     `cell:"A" json:"hat_number"`
	StatusLabel  *string  `cell:"B" json:"status_label"`
	SoldStatus   string   `json:"sold_status"`
	StockNumber  *string  `cell:"D" json:"stock_number"`
	Year         *int     `cell:"E" json:"year"`
	Make         *string  `cell:"F" json:"make"`
	Model        *string  `cell:"G" json:"model"`
	Class        *string  `cell:"H" json:"class"`
	Color        *string  `cell:"I" json:"color"`
	Odometer     *int     `cell:"J" json:"odometer"`
	VIN          *string  `cell:"K" json:"vin"`
	SeriesTrim   *string  `cell:"L" json:"series_trim"`
	AgeDays      *int     `cell:"M" json:"age_days"`
	Drivetrain   *string  `cell:"N" json:"drivetrain"`
	JDTradeClean *float64 `cell:"O" json:"jd_trade_clean"`
	JDRetail     *float64 `cell:"P" json:"jd_retail_clean"`
	UnitCost     *float64 `cell:"Q" json:"unit_cost"`

	// Derived pricing tiers: trade value times a fixed multiplier, and the
	// profit each price leaves over unit cost.
	CostDiff     *float64 `json:"cost_diff,omitempty"`
	Price115     *float64 `json:"price_115,omitempty"`
	Profit115    *float64 `json:"profit_115,omitempty"`
	Price120     *float64 `json:"price_120,omitempty"`
	Profit120    *float64 `json:"profit_120,omitempty"`
	Price125     *float64 `json:"price_125,omitempty"`
	Profit125    *float64 `json:"profit_125,omitempty"`
	Price130     *float64 `json:"price_130,omitempty"`
	Profit130    *float64 `json:"profit_130,omitempty"`
	RetailSpread *float64 `json:"retail_spread,omitempty"`
}
