package models

// MailTrackingEntry is one zip-code row from the "MAIL TRACKING" sheet.
// Per-day counts default to zero when the cell is empty, so they are plain
// ints rather than pointers.
type MailTrackingEntry struct {
	EventID        string  `json:"event_id"`
	CampaignName   string  `json:"campaign_name"`
	ZipCode        *string `cell:"E" json:"zip_code"`
	Town           *string `cell:"D" json:"town"`
	PiecesSent     *int    `cell:"B" json:"pieces_sent"`
	Day1Responses  int     `cell:"G" json:"day1_responses"`
	Day2Responses  int     `cell:"H" json:"day2_responses"`
	Day3Responses  int     `cell:"I" json:"day3_responses"`
	Day4Responses  int     `cell:"J" json:"day4_responses"`
	Day5Responses  int     `cell:"K" json:"day5_responses"`
	Day6Responses  int     `cell:"L" json:"day6_responses"`
	Day7Responses  int     `cell:"M" json:"day7_responses"`
	TotalResponses int     `cell:"F" json:"total_responses"`
	// ResponseRate is TotalResponses over PiecesSent, rounded to 4 places,
	// zero when either side is zero or missing.
	ResponseRate float64 `json:"response_rate"`
}
