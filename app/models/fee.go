package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeRecord is a student's charge for one billing month. Amounts are
// decimals end to end; floats would lose cents.
type FeeRecord struct {
	ID            string          `json:"id"`
	StudentID     string          `json:"student_id" validate:"required,uuid"`
	Month         string          `json:"month" validate:"required"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Status        FeeStatus       `json:"status" validate:"required,oneof=paid pending overdue"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Student *Student `json:"student,omitempty"`
}

// Outstanding returns the unpaid balance on the record.
func (f *FeeRecord) Outstanding() decimal.Decimal {
	return f.AmountDue.Sub(f.AmountPaid)
}

// MarkPaid applies the paid transition: the full amount is settled, the
// payment date is stamped and the method recorded. Partial payments are
// not modeled.
func (f *FeeRecord) MarkPaid(method string, at time.Time) {
	f.AmountPaid = f.AmountDue
	f.Status = FeePaid
	f.PaymentDate = &at
	f.PaymentMethod = &method
}
