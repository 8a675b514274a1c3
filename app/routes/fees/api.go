package fees

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/SaifulSk/tuition-plus-connect/app/config"
	"github.com/SaifulSk/tuition-plus-connect/app/database"
	"github.com/SaifulSk/tuition-plus-connect/app/models"
	"github.com/SaifulSk/tuition-plus-connect/app/reports"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/auth"
	"github.com/SaifulSk/tuition-plus-connect/app/validation"
)

func scopedFilters(c *fiber.Ctx) (database.FeeFilters, error) {
	f := database.FeeFilters{
		StudentID: c.Query("student_id"),
		Month:     c.Query("month"),
		Status:    models.NormalizeStatus(c.Query("status")),
	}
	var err error
	f.StudentID, err = auth.ResolveStudentScope(config.GetDB(), auth.CurrentUser(c), f.StudentID)
	return f, err
}

func scopeError(c *fiber.Ctx, err error) error {
	switch err {
	case auth.ErrScopeForbidden:
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})
	case auth.ErrScopeRequired:
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case sql.ErrNoRows:
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve student scope"})
	}
}

func GetFeesAPI(c *fiber.Ctx) error {
	filters, err := scopedFilters(c)
	if err != nil {
		return scopeError(c, err)
	}

	fees, err := database.GetFees(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fees"})
	}

	return c.JSON(fiber.Map{
		"fees":  fees,
		"count": len(fees),
	})
}

// GetFeeSummaryAPI returns the ledger totals derived from the scoped records.
func GetFeeSummaryAPI(c *fiber.Ctx) error {
	filters, err := scopedFilters(c)
	if err != nil {
		return scopeError(c, err)
	}

	fees, err := database.GetFees(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fees"})
	}

	return c.JSON(fiber.Map{
		"summary": reports.SummarizeFees(fees),
	})
}

type feeRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	Month     string `json:"month" validate:"required"`
	AmountDue string `json:"amount_due" validate:"required"`
}

func CreateFeeAPI(c *fiber.Ctx) error {
	var req feeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": validation.Messages(err)})
	}

	amountDue, err := decimal.NewFromString(req.AmountDue)
	if err != nil || amountDue.IsNegative() {
		return c.Status(400).JSON(fiber.Map{"error": "amount_due must be a non-negative decimal"})
	}

	fee := &models.FeeRecord{
		StudentID:  req.StudentID,
		Month:      req.Month,
		AmountDue:  amountDue,
		AmountPaid: decimal.Zero,
		Status:     models.FeePending,
	}

	if err := database.CreateFee(config.GetDB(), fee); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Fee created successfully",
		"fee":     fee,
	})
}

func UpdateFeeAPI(c *fiber.Ctx) error {
	fee, err := database.GetFeeByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee"})
	}

	type updateRequest struct {
		Month     string `json:"month"`
		AmountDue string `json:"amount_due"`
	}
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Month != "" {
		fee.Month = req.Month
	}
	if req.AmountDue != "" {
		amountDue, err := decimal.NewFromString(req.AmountDue)
		if err != nil || amountDue.IsNegative() {
			return c.Status(400).JSON(fiber.Map{"error": "amount_due must be a non-negative decimal"})
		}
		fee.AmountDue = amountDue
	}

	if err := database.UpdateFee(config.GetDB(), fee); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fee"})
	}

	return c.JSON(fiber.Map{
		"message": "Fee updated successfully",
		"fee":     fee,
	})
}

// MarkFeePaidAPI applies the paid transition: the full amount settles,
// the payment date is stamped and the method recorded. Partial payments
// are not modeled.
func MarkFeePaidAPI(c *fiber.Ctx) error {
	type payRequest struct {
		PaymentMethod string `json:"payment_method" validate:"required"`
	}
	var req payRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": validation.Messages(err)})
	}

	fee, err := database.MarkFeePaid(config.GetDB(), c.Params("id"), req.PaymentMethod, time.Now())
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found or already paid"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark fee paid"})
	}

	return c.JSON(fiber.Map{
		"message": "Fee marked as paid",
		"fee":     fee,
	})
}
