package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/teacher", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), TeacherDashboardAPI)
	api.Get("/student", auth.RequireRole(models.RoleStudent), StudentDashboardAPI)
	api.Get("/parent", auth.RequireRole(models.RoleParent), ParentDashboardAPI)
}
