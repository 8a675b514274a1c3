package homework

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/auth"
)

func SetupHomeworkRoutes(app *fiber.App) {
	api := app.Group("/api/homework")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetHomeworkAPI)
	api.Get("/progress", GetHomeworkProgressAPI)
	api.Get("/:id/submissions", GetSubmissionsAPI)
	api.Post("/", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), CreateHomeworkAPI)
	api.Post("/:id/submissions", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), AddSubmissionAPI)
	api.Put("/:id", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), UpdateHomeworkAPI)
	api.Delete("/:id", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), DeleteHomeworkAPI)

	subs := app.Group("/api/submissions")
	subs.Use(auth.AuthMiddleware)
	subs.Put("/:id", UpdateSubmissionAPI)
	subs.Post("/:id/acknowledge", auth.RequireRole(models.RoleParent), AcknowledgeSubmissionAPI)
}
