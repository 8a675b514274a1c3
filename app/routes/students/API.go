package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/SaifulSk/tuition-plus-connect/app/config"
	"github.com/SaifulSk/tuition-plus-connect/app/database"
	"github.com/SaifulSk/tuition-plus-connect/app/models"
	"github.com/SaifulSk/tuition-plus-connect/app/validation"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func SearchStudentsAPI(c *fiber.Ctx) error {
	query := c.Query("q", "")
	if query == "" {
		return c.JSON(fiber.Map{"students": []interface{}{}, "count": 0})
	}

	students, err := database.SearchStudents(config.GetDB(), query)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to search students"})
	}
	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentsStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetStudentStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student statistics"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(fiber.Map{"student": student})
}

type studentRequest struct {
	Name       string   `json:"name" validate:"required"`
	ClassLabel string   `json:"class" validate:"required"`
	Subjects   []string `json:"subjects"`
	Email      string   `json:"email" validate:"required,email"`
	Phone      *string  `json:"phone"`
	ParentID   *string  `json:"parent_id" validate:"omitempty,uuid"`
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": validation.Messages(err)})
	}

	student := &models.Student{
		Name:       req.Name,
		ClassLabel: req.ClassLabel,
		Subjects:   req.Subjects,
		Email:      req.Email,
		Phone:      req.Phone,
		ParentID:   req.ParentID,
	}
	if student.Subjects == nil {
		student.Subjects = []string{}
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student created successfully",
		"student": student,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": validation.Messages(err)})
	}

	student.Name = req.Name
	student.ClassLabel = req.ClassLabel
	if req.Subjects != nil {
		student.Subjects = req.Subjects
	}
	student.Email = req.Email
	student.Phone = req.Phone
	student.ParentID = req.ParentID

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{
		"message": "Student updated successfully",
		"student": student,
	})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudent(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}
