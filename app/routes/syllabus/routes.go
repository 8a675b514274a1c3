package syllabus

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/auth"
)

func SetupSyllabusRoutes(app *fiber.App) {
	api := app.Group("/api/syllabus")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetSyllabusAPI)
	api.Post("/", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), CreateTopicAPI)
	api.Put("/:id", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), UpdateTopicAPI)
	api.Delete("/:id", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), DeleteTopicAPI)
}
