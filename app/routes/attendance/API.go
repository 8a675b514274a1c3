package attendance

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SaifulSk/tuition-plus-connect/app/config"
	"github.com/SaifulSk/tuition-plus-connect/app/database"
	"github.com/SaifulSk/tuition-plus-connect/app/models"
	"github.com/SaifulSk/tuition-plus-connect/app/reports"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/auth"
	"github.com/SaifulSk/tuition-plus-connect/app/validation"
)

func parseFilters(c *fiber.Ctx) (database.AttendanceFilters, error) {
	f := database.AttendanceFilters{StudentID: c.Query("student_id")}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return f, err
		}
		f.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return f, err
		}
		f.To = t
	}
	return f, nil
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

func GetAttendanceAPI(c *fiber.Ctx) error {
	filters, err := parseFilters(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	filters.StudentID, err = auth.ResolveStudentScope(config.GetDB(), auth.CurrentUser(c), filters.StudentID)
	if err != nil {
		return scopeError(c, err)
	}

	records, err := database.GetAttendance(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
	})
}

// GetAttendanceSummaryAPI returns the derived totals and rate for the
// scoped records.
func GetAttendanceSummaryAPI(c *fiber.Ctx) error {
	filters, err := parseFilters(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	filters.StudentID, err = auth.ResolveStudentScope(config.GetDB(), auth.CurrentUser(c), filters.StudentID)
	if err != nil {
		return scopeError(c, err)
	}

	records, err := database.GetAttendance(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{
		"summary": reports.SummarizeAttendance(records),
	})
}

func GetAttendanceByDateAPI(c *fiber.Ctx) error {
	date, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	records, err := database.GetAttendanceByDate(config.GetDB(), date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
		"date":       c.Params("date"),
	})
}

func MarkAttendanceAPI(c *fiber.Ctx) error {
	type AttendanceRequest struct {
		StudentID string  `json:"student_id" validate:"required,uuid"`
		Date      string  `json:"date" validate:"required"`
		Status    string  `json:"status" validate:"required,oneof=present absent late"`
		Notes     *string `json:"notes"`
	}

	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Status = models.NormalizeStatus(req.Status)
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": validation.Messages(err)})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	record := &models.AttendanceRecord{
		StudentID: req.StudentID,
		ClassDate: date,
		Status:    models.AttendanceStatus(req.Status),
		Notes:     req.Notes,
		MarkedBy:  auth.CurrentUser(c).ID,
	}

	if err := database.UpsertAttendance(config.GetDB(), record); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record attendance"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Attendance recorded",
		"attendance": record,
	})
}
