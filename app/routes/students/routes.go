package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)
	api.Get("/search", SearchStudentsAPI)
	api.Get("/stats", GetStudentsStatsAPI)
	api.Get("/:id", GetStudentByIDAPI)

	// Writes are a teacher-role action.
	api.Post("/", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), CreateStudentAPI)
	api.Put("/:id", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), UpdateStudentAPI)
	api.Delete("/:id", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), DeleteStudentAPI)
}
