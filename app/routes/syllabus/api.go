package syllabus

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SaifulSk/tuition-plus-connect/app/config"
	"github.com/SaifulSk/tuition-plus-connect/app/database"
	"github.com/SaifulSk/tuition-plus-connect/app/models"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/auth"
	"github.com/SaifulSk/tuition-plus-connect/app/validation"
)

func GetSyllabusAPI(c *fiber.Ctx) error {
	filters := database.SyllabusFilters{
		Subject:    c.Query("subject"),
		ClassLabel: c.Query("class"),
		Status:     models.NormalizeStatus(c.Query("status")),
	}
	topics, err := database.GetSyllabusTopics(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch syllabus topics"})
	}
	return c.JSON(fiber.Map{
		"topics": topics,
		"count":  len(topics),
	})
}

type topicRequest struct {
	Subject     string  `json:"subject" validate:"required"`
	ClassLabel  string  `json:"class" validate:"required"`
	Topic       string  `json:"topic" validate:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
}

func CreateTopicAPI(c *fiber.Ctx) error {
	var req topicRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Status = models.NormalizeStatus(req.Status)
	if req.Status == "" {
		req.Status = string(models.TopicPending)
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": validation.Messages(err)})
	}

	topic := &models.SyllabusTopic{
		Subject:     req.Subject,
		ClassLabel:  req.ClassLabel,
		Topic:       req.Topic,
		Description: req.Description,
		Status:      models.TopicStatus(req.Status),
		CreatedBy:   auth.CurrentUser(c).ID,
	}
	if err := database.CreateSyllabusTopic(config.GetDB(), topic); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create syllabus topic"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Syllabus topic created",
		"topic":   topic,
	})
}

func UpdateTopicAPI(c *fiber.Ctx) error {
	var req topicRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Status = models.NormalizeStatus(req.Status)
	if req.Status == "" {
		req.Status = string(models.TopicPending)
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": validation.Messages(err)})
	}

	topic := &models.SyllabusTopic{
		ID:          c.Params("id"),
		Subject:     req.Subject,
		ClassLabel:  req.ClassLabel,
		Topic:       req.Topic,
		Description: req.Description,
		Status:      models.TopicStatus(req.Status),
	}
	// Completing a topic stamps the completion date; reverting clears it.
	if topic.Status == models.TopicCompleted {
		now := time.Now()
		topic.CompletionDate = &now
	}

	if err := database.UpdateSyllabusTopic(config.GetDB(), topic); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Syllabus topic not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update syllabus topic"})
	}

	return c.JSON(fiber.Map{
		"message": "Syllabus topic updated",
		"topic":   topic,
	})
}

func DeleteTopicAPI(c *fiber.Ctx) error {
	if err := database.DeleteSyllabusTopic(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Syllabus topic not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete syllabus topic"})
	}
	return c.JSON(fiber.Map{"message": "Syllabus topic deleted"})
}
