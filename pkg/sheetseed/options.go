// Package sheetseed seeds a sale-event backend from a dealership workbook:
// it resolves the parent event, extracts roster, lender, inventory, deal and
// mail-tracking records from fixed sheet coordinates, and writes them to the
// backend's REST API in bounded chunks.
package sheetseed

// Options configures a single run.
type Options struct {
	// DryRun extracts and reports counts without touching the backend.
	// Event resolution is skipped; records carry an empty event id.
	DryRun bool
}
