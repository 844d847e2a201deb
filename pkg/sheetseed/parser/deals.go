package parser

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/dealerworks/sheetseed/pkg/sheetseed/models"
)

// The deal log carries header banners above the data; rows start at 9.
const dealsFirstRow = 9

// Deal constants not represented in the workbook.
const (
	dealSaleDay = 1
	dealSource  = "Mail"
)

// ExtractDeals reads the DEAL LOG sheet. A row qualifies when it has a
// customer name or a stock number.
func ExtractDeals(f *excelize.File, eventID string) ([]models.Deal, error) {
	var out []models.Deal
	last := LastRow(f, SheetDeals)
	for row := dealsFirstRow; row <= last; row++ {
		var d models.Deal
		if err := MapRow(f, SheetDeals, row, &d); err != nil {
			return nil, err
		}
		if d.CustomerName == nil && d.StockNumber == nil {
			continue
		}
		d.EventID = eventID
		d.SaleDay = dealSaleDay
		d.Source = dealSource
		out = append(out, d)
	}
	return out, nil
}

func cellName(col string, row int) string {
	return col + strconv.Itoa(row)
}
