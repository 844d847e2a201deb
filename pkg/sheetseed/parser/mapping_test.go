package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

type mappedRow struct {
	Name  *string  `cell:"C"`
	Qty   *int     `cell:"A"`
	Amt   *float64 `cell:"AA"`
	Count int      `cell:"B"`
	Plain string
}

func TestMapRow(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "C2", "  Jane Doe ")
	f.SetCellValue(sheet, "A2", "7.9")
	f.SetCellValue(sheet, "AA2", 12.345)

	var row mappedRow
	row.Plain = "untouched"
	if err := MapRow(f, sheet, 2, &row); err != nil {
		t.Fatalf("MapRow failed: %v", err)
	}

	if row.Name == nil || *row.Name != "Jane Doe" {
		t.Errorf("Name = %v, expected Jane Doe", row.Name)
	}
	if row.Qty == nil || *row.Qty != 7 {
		t.Errorf("Qty = %v, expected 7", row.Qty)
	}
	if row.Amt == nil || *row.Amt != 12.345 {
		t.Errorf("Amt = %v, expected 12.345", row.Amt)
	}
	if row.Count != 0 {
		t.Errorf("Count = %d, expected 0 for empty cell", row.Count)
	}
	if row.Plain != "untouched" {
		t.Errorf("untagged field modified: %q", row.Plain)
	}
}

func TestMapRowEmptyRow(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	var row mappedRow
	if err := MapRow(f, "Sheet1", 99, &row); err != nil {
		t.Fatalf("MapRow failed on empty row: %v", err)
	}
	if row.Name != nil || row.Qty != nil || row.Amt != nil {
		t.Errorf("empty row should map to nil pointers, got %+v", row)
	}
}

func TestMapRowRejectsNonStruct(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	var n int
	if err := MapRow(f, "Sheet1", 1, &n); err == nil {
		t.Error("expected error for non-struct dest")
	}
	var row mappedRow
	if err := MapRow(f, "Sheet1", 1, row); err == nil {
		t.Error("expected error for non-pointer dest")
	}
}

func TestLastRow(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	if got := LastRow(f, sheet); got != 0 {
		t.Errorf("LastRow on empty sheet = %d, expected 0", got)
	}

	f.SetCellValue(sheet, "A1", "header")
	f.SetCellValue(sheet, "D5", 42)
	if got := LastRow(f, sheet); got != 5 {
		t.Errorf("LastRow = %d, expected 5", got)
	}

	if got := LastRow(f, "NoSuchSheet"); got != 0 {
		t.Errorf("LastRow on missing sheet = %d, expected 0", got)
	}
}
