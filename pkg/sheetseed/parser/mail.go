package parser

import (
	"github.com/xuri/excelize/v2"

	"github.com/dealerworks/sheetseed/pkg/sheetseed/models"
)

const mailFirstRow = 2

// ExtractMailTracking reads the MAIL TRACKING sheet. A row qualifies only
// when both zip code and town are present. Per-day counts default to zero;
// the response rate is derived from total responses over pieces sent.
func ExtractMailTracking(f *excelize.File, eventID, campaign string) ([]models.MailTrackingEntry, error) {
	var out []models.MailTrackingEntry
	last := LastRow(f, SheetMail)
	for row := mailFirstRow; row <= last; row++ {
		var e models.MailTrackingEntry
		if err := MapRow(f, SheetMail, row, &e); err != nil {
			return nil, err
		}
		if e.ZipCode == nil || e.Town == nil {
			continue
		}
		e.EventID = eventID
		e.CampaignName = campaign
		if e.PiecesSent != nil {
			e.ResponseRate = ResponseRate(e.TotalResponses, *e.PiecesSent)
		}
		out = append(out, e)
	}
	return out, nil
}
