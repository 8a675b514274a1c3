package reports

import (
	"github.com/shopspring/decimal"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

// FeeLedgerSummary totals a set of fee records. Amounts stay decimal;
// formatting (separators, currency glyph) is the display layer's job.
type FeeLedgerSummary struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	PaidCount     int             `json:"paid_count"`
	PendingCount  int             `json:"pending_count"`
}

// SummarizeFees derives revenue and outstanding figures. Only records
// marked paid contribute revenue; amount_paid on an unsettled record is
// not authoritative money. Overdue records are unsettled, so they count
// with the pending bucket.
func SummarizeFees(records []models.FeeRecord) FeeLedgerSummary {
	s := FeeLedgerSummary{
		TotalRevenue:  decimal.Zero,
		PendingAmount: decimal.Zero,
	}
	for _, r := range records {
		switch r.Status {
		case models.FeePaid:
			s.TotalRevenue = s.TotalRevenue.Add(r.AmountPaid)
			s.PaidCount++
		case models.FeePending, models.FeeOverdue:
			s.PendingAmount = s.PendingAmount.Add(r.Outstanding())
			s.PendingCount++
		}
	}
	return s
}
