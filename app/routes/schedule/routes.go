package schedule

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/auth"
)

func SetupScheduleRoutes(app *fiber.App) {
	api := app.Group("/api/schedule")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetScheduleAPI)
	api.Get("/matrix", GetScheduleMatrixAPI)
	api.Post("/", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), CreateScheduleEntryAPI)
	api.Put("/:id", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), UpdateScheduleEntryAPI)
	api.Delete("/:id", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), DeleteScheduleEntryAPI)
}
