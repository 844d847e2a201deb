package parser

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names are a fixed contract with the upstream spreadsheet.
const (
	SheetRoster    = "Roster & Tables"
	SheetInventory = "INVENTORY"
	SheetDeals     = "DEAL LOG"
	SheetMail      = "MAIL TRACKING"
)

// MapRow fills dest from one sheet row using `cell` struct tags.
//
// The tag value is the source column letter ("C", "AA"). The coercion is
// chosen by field type: *string via Text, *float64 via Number, *int via
// Integer. Non-pointer int/float64/string fields take the zero value when
// the cell is absent. Fields without a cell tag are left untouched, which is
// where derived and constant fields live.
//
// Cell values are read with formulas resolved to their cached results.
func MapRow(f *excelize.File, sheet string, row int, dest interface{}) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("parser: MapRow dest must be a struct pointer, got %T", dest)
	}
	elem := v.Elem()
	t := elem.Type()

	for i := 0; i < t.NumField(); i++ {
		col, ok := t.Field(i).Tag.Lookup("cell")
		if !ok {
			continue
		}
		raw, err := f.GetCellValue(sheet, col+strconv.Itoa(row))
		if err != nil {
			// Out-of-range or malformed coordinates read as empty.
			raw = ""
		}
		if err := setField(elem.Field(i), raw); err != nil {
			return fmt.Errorf("parser: %s!%s%d: %w", sheet, col, row, err)
		}
	}
	return nil
}

func setField(field reflect.Value, raw string) error {
	switch field.Interface().(type) {
	case *string:
		field.Set(reflect.ValueOf(Text(raw)))
	case *float64:
		field.Set(reflect.ValueOf(Number(raw)))
	case *int:
		field.Set(reflect.ValueOf(Integer(raw)))
	case string:
		if s := Text(raw); s != nil {
			field.SetString(*s)
		}
	case float64:
		if n := Number(raw); n != nil {
			field.SetFloat(*n)
		}
	case int:
		if n := Integer(raw); n != nil {
			field.SetInt(int64(*n))
		}
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
	return nil
}

// LastRow returns the 1-based index of the last row carrying any data on
// the sheet, or 0 for an empty or missing sheet.
func LastRow(f *excelize.File, sheet string) int {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0
	}
	last := 0
	for idx, row := range rows {
		for _, cell := range row {
			if cell != "" {
				last = idx + 1
				break
			}
		}
	}
	return last
}
