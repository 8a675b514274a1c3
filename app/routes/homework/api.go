package homework

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

func GetHomeworkAPI(c *fiber.Ctx) error {
	list, err := database.GetHomework(config.GetDB(), c.Query("subject"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch homework"})
	}
	return c.JSON(fiber.Map{
		"homework": list,
		"count":    len(list),
	})
}

// GetHomeworkProgressAPI returns the derived completion counters for
// the scoped submissions.
func GetHomeworkProgressAPI(c *fiber.Ctx) error {
	studentID, err := auth.ResolveStudentScope(config.GetDB(), auth.CurrentUser(c), c.Query("student_id"))
	if err != nil {
		return scopeError(c, err)
	}

	subs, err := database.GetSubmissions(config.GetDB(), database.SubmissionFilters{StudentID: studentID})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch submissions"})
	}

	return c.JSON(fiber.Map{
		"progress": reports.SummarizeHomework(subs),
	})
}

func GetSubmissionsAPI(c *fiber.Ctx) error {
	filters := database.SubmissionFilters{HomeworkID: c.Params("id")}

	var err error
	filters.StudentID, err = auth.ResolveStudentScope(config.GetDB(), auth.CurrentUser(c), c.Query("student_id"))
	if err != nil {
		return scopeError(c, err)
	}

	subs, err := database.GetSubmissions(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch submissions"})
	}

	return c.JSON(fiber.Map{
		"submissions": subs,
		"count":       len(subs),
	})
}

// AddSubmissionAPI assigns an existing homework to one more student.
func AddSubmissionAPI(c *fiber.Ctx) error {
	hw, err := database.GetHomeworkByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Homework not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch homework"})
	}

	type assignRequest struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
	}
	var req assignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": validation.Messages(err)})
	}

	sub, err := database.AddSubmission(config.GetDB(), hw.ID, req.StudentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to assign submission"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Submission assigned",
		"submission": sub,
	})
}

func CreateHomeworkAPI(c *fiber.Ctx) error {
	type homeworkRequest struct {
		Title       string   `json:"title" validate:"required"`
		Subject     string   `json:"subject" validate:"required"`
		Description *string  `json:"description"`
		DueDate     string   `json:"due_date" validate:"required"`
		StudentIDs  []string `json:"student_ids" validate:"required,min=1,dive,uuid"`
	}

	var req homeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": validation.Messages(err)})
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid due_date format. Use YYYY-MM-DD"})
	}

	hw := &models.Homework{
		Title:        req.Title,
		Subject:      req.Subject,
		Description:  req.Description,
		AssignedDate: time.Now(),
		DueDate:      dueDate,
		AssignedBy:   auth.CurrentUser(c).ID,
	}

	if err := database.CreateHomework(config.GetDB(), hw, req.StudentIDs); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create homework"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Homework assigned successfully",
		"homework": hw,
	})
}

func UpdateHomeworkAPI(c *fiber.Ctx) error {
	hw, err := database.GetHomeworkByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Homework not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch homework"})
	}

	type updateRequest struct {
		Title       string  `json:"title"`
		Subject     string  `json:"subject"`
		Description *string `json:"description"`
		DueDate     string  `json:"due_date"`
	}
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Title != "" {
		hw.Title = req.Title
	}
	if req.Subject != "" {
		hw.Subject = req.Subject
	}
	if req.Description != nil {
		hw.Description = req.Description
	}
	if req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid due_date format. Use YYYY-MM-DD"})
		}
		hw.DueDate = dueDate
	}

	if err := database.UpdateHomework(config.GetDB(), hw); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update homework"})
	}

	return c.JSON(fiber.Map{
		"message":  "Homework updated successfully",
		"homework": hw,
	})
}

func DeleteHomeworkAPI(c *fiber.Ctx) error {
	if err := database.DeleteHomework(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Homework not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete homework"})
	}
	return c.JSON(fiber.Map{"message": "Homework deleted successfully"})
}

// UpdateSubmissionAPI moves a submission through its lifecycle. A
// student may only touch their own submission; teachers may touch any.
func UpdateSubmissionAPI(c *fiber.Ctx) error {
	sub, err := database.GetSubmissionByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Submission not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch submission"})
	}

	if _, err := auth.ResolveStudentScope(config.GetDB(), auth.CurrentUser(c), sub.StudentID); err != nil {
		return scopeError(c, err)
	}

	type statusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending completed late"`
	}
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Status = models.NormalizeStatus(req.Status)
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": validation.Messages(err)})
	}

	status := models.SubmissionStatus(req.Status)
	var submittedAt *time.Time
	if status == models.SubmissionCompleted || status == models.SubmissionLate {
		now := time.Now()
		submittedAt = &now
	}

	if err := database.UpdateSubmissionStatus(config.GetDB(), sub.ID, status, submittedAt); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update submission"})
	}

	return c.JSON(fiber.Map{"message": "Submission updated"})
}

// AcknowledgeSubmissionAPI lets a parent flag that they have seen the
// submission. The parent must be linked to the submission's student.
func AcknowledgeSubmissionAPI(c *fiber.Ctx) error {
	sub, err := database.GetSubmissionByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Submission not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch submission"})
	}

	if _, err := auth.ResolveStudentScope(config.GetDB(), auth.CurrentUser(c), sub.StudentID); err != nil {
		return scopeError(c, err)
	}

	if err := database.AcknowledgeSubmission(config.GetDB(), sub.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to acknowledge submission"})
	}

	return c.JSON(fiber.Map{"message": "Submission acknowledged"})
}
