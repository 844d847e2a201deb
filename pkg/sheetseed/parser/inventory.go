package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dealerworks/sheetseed/pkg/sheetseed/models"
)

const inventoryFirstRow = 2

// Sold status values stored on inventory rows.
const (
	SoldStatusSold      = "sold"
	SoldStatusAvailable = "available"
)

// ExtractInventory reads every data row of the INVENTORY sheet. A row
// qualifies when it has a model name or a hat number. Pricing tiers and
// spreads are derived only when the inputs are present and non-zero;
// unqualified rows simply omit them.
func ExtractInventory(f *excelize.File, eventID string) ([]models.InventoryItem, error) {
	var out []models.InventoryItem
	last := LastRow(f, SheetInventory)
	for row := inventoryFirstRow; row <= last; row++ {
		var item models.InventoryItem
		if err := MapRow(f, SheetInventory, row, &item); err != nil {
			return nil, err
		}
		if item.Model == nil && item.HatNumber == nil {
			continue
		}
		item.EventID = eventID
		item.SoldStatus = soldStatus(soldMarker(f, row))
		deriveInventoryPricing(&item)
		out = append(out, item)
	}
	return out, nil
}

// soldMarker reads the raw sold flag (column C), which is not part of the
// stored record and therefore carries no cell tag.
func soldMarker(f *excelize.File, row int) *string {
	raw, err := f.GetCellValue(SheetInventory, cellName("C", row))
	if err != nil {
		return nil
	}
	return Text(raw)
}

func soldStatus(soldRaw *string) string {
	if soldRaw != nil && strings.Contains(strings.ToLower(*soldRaw), "sold") {
		return SoldStatusSold
	}
	return SoldStatusAvailable
}

func deriveInventoryPricing(item *models.InventoryItem) {
	trade := truthy(item.JDTradeClean)
	retail := truthy(item.JDRetail)
	cost := truthy(item.UnitCost)

	if trade && cost {
		item.CostDiff = ptr(Spread(*item.JDTradeClean, *item.UnitCost))
		tiers := PricingTiers(*item.JDTradeClean, *item.UnitCost)
		item.Price115, item.Profit115 = ptr(tiers[0].Price), ptr(tiers[0].Profit)
		item.Price120, item.Profit120 = ptr(tiers[1].Price), ptr(tiers[1].Profit)
		item.Price125, item.Profit125 = ptr(tiers[2].Price), ptr(tiers[2].Profit)
		item.Price130, item.Profit130 = ptr(tiers[3].Price), ptr(tiers[3].Profit)
	}
	if retail && cost {
		item.RetailSpread = ptr(Spread(*item.JDRetail, *item.UnitCost))
	}
}

func truthy(v *float64) bool { return v != nil && *v != 0 }

func ptr(v float64) *float64 { return &v }
