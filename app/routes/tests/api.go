package tests

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

func GetTestsAPI(c *fiber.Ctx) error {
	list, err := database.GetTests(config.GetDB(), c.Query("subject"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tests"})
	}
	return c.JSON(fiber.Map{
		"tests": list,
		"count": len(list),
	})
}

// GetPerformanceAPI returns derived percentages, grades and the
// distribution for the scoped results. Results whose parent test
// declares zero max marks are skipped and counted, not fatal.
func GetPerformanceAPI(c *fiber.Ctx) error {
	studentID, err := auth.ResolveStudentScope(config.GetDB(), auth.CurrentUser(c), c.Query("student_id"))
	if err != nil {
		return scopeError(c, err)
	}

	results, testsByID, err := database.GetResultsWithTests(config.GetDB(), database.ResultFilters{StudentID: studentID})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch test results"})
	}

	perf, skipErrs := reports.SummarizeTests(results, testsByID, reports.DefaultGradeScale)
	return c.JSON(fiber.Map{
		"performance":     perf,
		"skipped_details": reports.SkipMessages(skipErrs),
	})
}

func GetResultsAPI(c *fiber.Ctx) error {
	studentID, err := auth.ResolveStudentScope(config.GetDB(), auth.CurrentUser(c), c.Query("student_id"))
	if err != nil {
		return scopeError(c, err)
	}

	results, testsByID, err := database.GetResultsWithTests(config.GetDB(), database.ResultFilters{
		TestID:    c.Params("id"),
		StudentID: studentID,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch test results"})
	}

	perf, skipErrs := reports.SummarizeTests(results, testsByID, reports.DefaultGradeScale)
	return c.JSON(fiber.Map{
		"results":         perf.Results,
		"skipped":         perf.Skipped,
		"skipped_details": reports.SkipMessages(skipErrs),
		"count":           len(perf.Results),
	})
}

func CreateTestAPI(c *fiber.Ctx) error {
	type testRequest struct {
		Title    string `json:"title" validate:"required"`
		Subject  string `json:"subject" validate:"required"`
		TestDate string `json:"test_date" validate:"required"`
		MaxMarks int    `json:"max_marks" validate:"required,gt=0"`
	}

	var req testRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": validation.Messages(err)})
	}

	testDate, err := time.Parse("2006-01-02", req.TestDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid test_date format. Use YYYY-MM-DD"})
	}

	test := &models.Test{
		Title:     req.Title,
		Subject:   req.Subject,
		TestDate:  testDate,
		MaxMarks:  req.MaxMarks,
		CreatedBy: auth.CurrentUser(c).ID,
	}

	if err := database.CreateTest(config.GetDB(), test); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create test"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Test created successfully",
		"test":    test,
	})
}

func UpdateTestAPI(c *fiber.Ctx) error {
	test, err := database.GetTestByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Test not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch test"})
	}

	type updateRequest struct {
		Title    string `json:"title"`
		Subject  string `json:"subject"`
		TestDate string `json:"test_date"`
		MaxMarks int    `json:"max_marks"`
	}
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Title != "" {
		test.Title = req.Title
	}
	if req.Subject != "" {
		test.Subject = req.Subject
	}
	if req.TestDate != "" {
		testDate, err := time.Parse("2006-01-02", req.TestDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid test_date format. Use YYYY-MM-DD"})
		}
		test.TestDate = testDate
	}
	if req.MaxMarks > 0 {
		test.MaxMarks = req.MaxMarks
	}

	if err := database.UpdateTest(config.GetDB(), test); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update test"})
	}

	return c.JSON(fiber.Map{
		"message": "Test updated successfully",
		"test":    test,
	})
}

func DeleteTestAPI(c *fiber.Ctx) error {
	if err := database.DeleteTest(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Test not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete test"})
	}
	return c.JSON(fiber.Map{"message": "Test deleted successfully"})
}

func RecordResultAPI(c *fiber.Ctx) error {
	test, err := database.GetTestByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Test not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch test"})
	}

	type resultRequest struct {
		StudentID     string `json:"student_id" validate:"required,uuid"`
		MarksObtained int    `json:"marks_obtained" validate:"gte=0"`
	}
	var req resultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": validation.Messages(err)})
	}
	if req.MarksObtained > test.MaxMarks {
		return c.Status(400).JSON(fiber.Map{"error": "marks_obtained cannot exceed the test's max_marks"})
	}

	result := &models.TestResult{
		TestID:        test.ID,
		StudentID:     req.StudentID,
		MarksObtained: req.MarksObtained,
	}
	if err := database.UpsertTestResult(config.GetDB(), result); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record result"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Result recorded",
		"result":  result,
	})
}
