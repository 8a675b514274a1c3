package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

func fee(due, paid int64, status models.FeeStatus) models.FeeRecord {
	return models.FeeRecord{
		StudentID:  "s1",
		Month:      "2026-03",
		AmountDue:  decimal.NewFromInt(due),
		AmountPaid: decimal.NewFromInt(paid),
		Status:     status,
	}
}

func TestSummarizeFees(t *testing.T) {
	records := []models.FeeRecord{
		fee(1000, 0, models.FeePending),
		fee(1000, 1000, models.FeePaid),
	}

	got := SummarizeFees(records)
	assert.True(t, got.TotalRevenue.Equal(decimal.NewFromInt(1000)), "revenue %s", got.TotalRevenue)
	assert.True(t, got.PendingAmount.Equal(decimal.NewFromInt(1000)), "pending %s", got.PendingAmount)
	assert.Equal(t, 1, got.PaidCount)
	assert.Equal(t, 1, got.PendingCount)
}

func TestSummarizeFees_Empty(t *testing.T) {
	got := SummarizeFees(nil)
	assert.True(t, got.TotalRevenue.IsZero())
	assert.True(t, got.PendingAmount.IsZero())
	assert.Zero(t, got.PaidCount)
	assert.Zero(t, got.PendingCount)
}

func TestSummarizeFees_OverdueCountsAsPendingMoney(t *testing.T) {
	got := SummarizeFees([]models.FeeRecord{fee(1500, 0, models.FeeOverdue)})
	assert.True(t, got.PendingAmount.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, 1, got.PendingCount)
	assert.True(t, got.TotalRevenue.IsZero())
}

func TestSummarizeFees_UnpaidAmountOnUnsettledRecordIsNotRevenue(t *testing.T) {
	// amount_paid on a pending row is not authoritative revenue.
	got := SummarizeFees([]models.FeeRecord{fee(1000, 400, models.FeePending)})
	assert.True(t, got.TotalRevenue.IsZero())
	assert.True(t, got.PendingAmount.Equal(decimal.NewFromInt(600)))
}

func TestSummarizeFees_CentsSurvive(t *testing.T) {
	due := decimal.RequireFromString("999.99")
	records := []models.FeeRecord{
		{Status: models.FeePaid, AmountDue: due, AmountPaid: due},
		{Status: models.FeePaid, AmountDue: due, AmountPaid: due},
		{Status: models.FeePaid, AmountDue: due, AmountPaid: due},
	}
	got := SummarizeFees(records)
	assert.Equal(t, "2999.97", got.TotalRevenue.String())
}

func TestMarkPaidShiftsBalanceToRevenue(t *testing.T) {
	records := []models.FeeRecord{
		fee(1000, 0, models.FeePending),
		fee(500, 500, models.FeePaid),
	}
	before := SummarizeFees(records)
	outstanding := records[0].Outstanding()
	require.True(t, outstanding.Equal(decimal.NewFromInt(1000)))

	records[0].MarkPaid("cash", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	after := SummarizeFees(records)

	// Marking a pending record paid moves exactly its outstanding
	// balance from pending to revenue.
	assert.True(t, after.PendingAmount.Equal(before.PendingAmount.Sub(outstanding)))
	assert.True(t, after.TotalRevenue.Equal(before.TotalRevenue.Add(outstanding)))
	assert.Equal(t, before.PaidCount+1, after.PaidCount)
	assert.Equal(t, before.PendingCount-1, after.PendingCount)

	// The transition stamps the payment.
	require.NotNil(t, records[0].PaymentDate)
	require.NotNil(t, records[0].PaymentMethod)
	assert.Equal(t, "cash", *records[0].PaymentMethod)
	assert.True(t, records[0].AmountPaid.Equal(records[0].AmountDue))
}
