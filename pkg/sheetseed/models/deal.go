package models

// Deal is one closed deal from the "DEAL LOG" sheet.
type Deal struct {
	EventID           string   `json:"event_id"`
	DealNumber        *int     `cell:"E" json:"deal_number"`
	SaleDay           int      `json:"sale_day"`
	Store             *string  `cell:"G" json:"store"`
	StockNumber       *string  `cell:"H" json:"stock_number"`
	CustomerName      *string  `cell:"I" json:"customer_name"`
	ZipCode           *string  `cell:"J" json:"zip_code"`
	NewUsed           *string  `cell:"K" json:"new_used"`
	PurchaseYear      *int     `cell:"L" json:"purchase_year"`
	PurchaseMake      *string  `cell:"M" json:"purchase_make"`
	PurchaseModel     *string  `cell:"N" json:"purchase_model"`
	VehicleCost       *float64 `cell:"O" json:"vehicle_cost"`
	VehicleAge        *int     `cell:"P" json:"vehicle_age"`
	TradeYear         *int     `cell:"Q" json:"trade_year"`
	TradeMake         *string  `cell:"R" json:"trade_make"`
	TradeModel        *string  `cell:"S" json:"trade_model"`
	Salesperson       *string  `cell:"W" json:"salesperson"`
	SecondSalesperson *string  `cell:"X" json:"second_salesperson"`
	FrontGross        *float64 `cell:"Y" json:"front_gross"`
	Lender            *string  `cell:"Z" json:"lender"`
	Rate              *float64 `cell:"AA" json:"rate"`
	Reserve           *float64 `cell:"AB" json:"reserve"`
	Warranty          *float64 `cell:"AC" json:"warranty"`
	Aft1              *float64 `cell:"AD" json:"aft1"`
	Gap               *float64 `cell:"AE" json:"gap"`
	FITotal           *float64 `cell:"AF" json:"fi_total"`
	TotalGross        *float64 `cell:"AG" json:"total_gross"`
	JDEPay            *float64 `cell:"AK" json:"jde_pay"`
	Source            string   `json:"source"`
}
