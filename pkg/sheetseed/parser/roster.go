package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dealerworks/sheetseed/pkg/sheetseed/models"
)

// Row intervals on the "Roster & Tables" sheet. The roster block and the
// lender table sit side by side with known extents.
const (
	rosterFirstRow = 2
	rosterLastRow  = 17
	lenderFirstRow = 2
	lenderLastRow  = 19
)

// DefaultRole is assigned when a roster name has no entry in the role table.
const DefaultRole = "sales"

// RosterParams carries the non-workbook inputs of the roster extractor.
type RosterParams struct {
	// Roles maps an upper-cased salesperson name to a role.
	Roles map[string]string
	// CommissionPct is stamped on every entry.
	CommissionPct float64
}

// ExtractRoster reads the roster block. Rows with an empty name or a
// placeholder name ("none", "spare") are skipped.
func ExtractRoster(f *excelize.File, eventID string, p RosterParams) ([]models.RosterEntry, error) {
	var out []models.RosterEntry
	for row := rosterFirstRow; row <= rosterLastRow; row++ {
		var e models.RosterEntry
		if err := MapRow(f, SheetRoster, row, &e); err != nil {
			return nil, err
		}
		if e.Name == nil || isPlaceholderName(*e.Name) {
			continue
		}
		e.EventID = eventID
		e.Role = roleFor(*e.Name, p.Roles)
		e.Confirmed = true
		e.CommissionPct = p.CommissionPct
		out = append(out, e)
	}
	return out, nil
}

// ExtractLenders reads the lender table. A lender needs a name; the buy rate
// may be absent.
func ExtractLenders(f *excelize.File, eventID string) ([]models.Lender, error) {
	var out []models.Lender
	for row := lenderFirstRow; row <= lenderLastRow; row++ {
		var l models.Lender
		if err := MapRow(f, SheetRoster, row, &l); err != nil {
			return nil, err
		}
		if l.Name == nil {
			continue
		}
		l.EventID = eventID
		out = append(out, l)
	}
	return out, nil
}

func isPlaceholderName(name string) bool {
	switch strings.ToLower(name) {
	case "none", "spare":
		return true
	}
	return false
}

func roleFor(name string, roles map[string]string) string {
	if role, ok := roles[strings.ToUpper(name)]; ok {
		return role
	}
	return DefaultRole
}
