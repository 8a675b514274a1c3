package schedule

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/SaifulSk/tuition-plus-connect/app/config"
	"github.com/SaifulSk/tuition-plus-connect/app/database"
	"github.com/SaifulSk/tuition-plus-connect/app/models"
	"github.com/SaifulSk/tuition-plus-connect/app/reports"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/auth"
	"github.com/SaifulSk/tuition-plus-connect/app/validation"
)

func GetScheduleAPI(c *fiber.Ctx) error {
	entries, err := database.GetScheduleEntries(config.GetDB(), c.Query("class"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schedule"})
	}
	return c.JSON(fiber.Map{
		"schedule": entries,
		"count":    len(entries),
	})
}

// GetScheduleMatrixAPI returns the weekly day-by-slot grid. A conflict
// between stored entries surfaces as a 409 naming both entries instead
// of silently dropping one.
func GetScheduleMatrixAPI(c *fiber.Ctx) error {
	entries, err := database.GetScheduleEntries(config.GetDB(), c.Query("class"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schedule"})
	}

	matrix, err := reports.BuildScheduleMatrix(entries)
	if err != nil {
		var conflict *reports.ScheduleConflictError
		if errors.As(err, &conflict) {
			return c.Status(409).JSON(fiber.Map{
				"error":    "Schedule conflict",
				"day":      conflict.Day,
				"slot":     conflict.Slot,
				"existing": conflict.Existing,
				"incoming": conflict.Incoming,
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build schedule matrix"})
	}

	return c.JSON(fiber.Map{"matrix": matrix})
}

type scheduleRequest struct {
	Subject    string `json:"subject" validate:"required"`
	ClassLabel string `json:"class" validate:"required"`
	Day        string `json:"day" validate:"required"`
	StartTime  string `json:"start_time" validate:"required"`
	EndTime    string `json:"end_time" validate:"required"`
}

func (r *scheduleRequest) validate() (models.DayOfWeek, error) {
	if err := validation.Struct(*r); err != nil {
		return "", errors.New(strings.Join(validation.Messages(err), "; "))
	}
	day := models.NormalizeDay(r.Day)
	if !ValidDay(day) {
		return "", errors.New("day must be Monday through Saturday")
	}
	if !ValidTime(r.StartTime) || !ValidTime(r.EndTime) {
		return "", errors.New("start_time and end_time must be 24-hour HH:MM")
	}
	if r.StartTime >= r.EndTime {
		return "", errors.New("start_time must be before end_time")
	}
	return day, nil
}

func CreateScheduleEntryAPI(c *fiber.Ctx) error {
	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	day, err := req.validate()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	conflict, err := database.CheckScheduleConflict(config.GetDB(), req.ClassLabel, string(day), req.StartTime, req.EndTime, "")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check schedule conflicts"})
	}
	if conflict {
		return c.Status(409).JSON(fiber.Map{"error": "Another lesson already occupies this day and time"})
	}

	entry := &models.ClassScheduleEntry{
		Subject:    req.Subject,
		ClassLabel: req.ClassLabel,
		Day:        day,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		CreatedBy:  auth.CurrentUser(c).ID,
	}
	if err := database.CreateScheduleEntry(config.GetDB(), entry); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create schedule entry"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Schedule entry created",
		"entry":   entry,
	})
}

func UpdateScheduleEntryAPI(c *fiber.Ctx) error {
	entry, err := database.GetScheduleEntryByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Schedule entry not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schedule entry"})
	}

	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	day, err := req.validate()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	conflict, err := database.CheckScheduleConflict(config.GetDB(), req.ClassLabel, string(day), req.StartTime, req.EndTime, entry.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check schedule conflicts"})
	}
	if conflict {
		return c.Status(409).JSON(fiber.Map{"error": "Another lesson already occupies this day and time"})
	}

	entry.Subject = req.Subject
	entry.ClassLabel = req.ClassLabel
	entry.Day = day
	entry.StartTime = req.StartTime
	entry.EndTime = req.EndTime

	if err := database.UpdateScheduleEntry(config.GetDB(), entry); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update schedule entry"})
	}

	return c.JSON(fiber.Map{
		"message": "Schedule entry updated",
		"entry":   entry,
	})
}

func DeleteScheduleEntryAPI(c *fiber.Ctx) error {
	if err := database.DeleteScheduleEntry(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Schedule entry not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete schedule entry"})
	}
	return c.JSON(fiber.Map{"message": "Schedule entry deleted"})
}
